package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	orchestrator "github.com/SwiggitySwerve/megamek-web-sub007/internal/orchestrators/mechlab"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/clock"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/idgen"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
	mechdraft "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/mech_draft"
	selectionmemory "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/selection_memory"
)

const envPrefix = "MECHLAB"

// serverConfig is the resolved server configuration: flags, then
// MECHLAB_* environment variables, then an optional config file.
type serverConfig struct {
	Port          int           `mapstructure:"port"`
	RedisAddrs    []string      `mapstructure:"redis-addrs"`
	RedisPassword string        `mapstructure:"redis-password"`
	RedisDB       int           `mapstructure:"redis-db"`
	CatalogPath   string        `mapstructure:"catalog"`
	LogLevel      string        `mapstructure:"log-level"`
	DraftTTL      time.Duration `mapstructure:"draft-ttl"`
	MemoryTTL     time.Duration `mapstructure:"memory-ttl"`
}

// Validate checks the resolved configuration
func (c *serverConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRange("port", c.Port, 1, 65535, vb)
	if len(c.RedisAddrs) == 0 {
		vb.RequiredField("redis-addrs")
	}
	if _, err := parseLogLevel(c.LogLevel); err != nil {
		vb.InvalidField("log-level", err.Error())
	}
	return vb.Build()
}

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC server",
	Long: `Start the mech lab gRPC server. Every flag can also be set through a
MECHLAB_ environment variable (e.g. MECHLAB_REDIS_ADDRS) or a config file.`,
	RunE: runServer,
}

var serverViper = viper.New()

func init() {
	flags := serverCmd.Flags()
	flags.String("config", "", "optional config file (yaml, json or toml)")
	flags.Int("port", 50051, "gRPC server port")
	flags.StringSlice("redis-addrs", []string{"localhost:6379"}, "Redis addresses; several select cluster mode")
	flags.String("redis-password", "", "Redis password")
	flags.Int("redis-db", 0, "Redis database")
	flags.String("catalog", "", "equipment catalog file; the built-in catalog when empty")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.Duration("draft-ttl", mechdraft.DefaultTTL, "how long untouched drafts are kept")
	flags.Duration("memory-ttl", selectionmemory.DefaultTTL, "how long idle selection memory is kept")

	_ = serverViper.BindPFlags(flags) // nolint:errcheck // flags are defined above
	serverViper.SetEnvPrefix(envPrefix)
	serverViper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	serverViper.AutomaticEnv()
}

func loadServerConfig() (*serverConfig, error) {
	if path := serverViper.GetString("config"); path != "" {
		serverViper.SetConfigFile(path)
		if err := serverViper.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg serverConfig
	if err := serverViper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parseLogLevel(level string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return 0, fmt.Errorf("unknown level %q", level)
	}
	return l, nil
}

func runServer(_ *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig()
	if err != nil {
		return err
	}

	level, _ := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		log.Println("Received shutdown signal, gracefully stopping...")
		cancel()
	}()

	redisClient, err := redis.NewClient(&redis.Config{
		Addrs:    cfg.RedisAddrs,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return fmt.Errorf("failed to create redis client: %w", err)
	}
	defer func() { _ = redisClient.Close() }()

	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	defer pingCancel()
	if err := redis.Ping(pingCtx, redisClient); err != nil {
		return fmt.Errorf("failed to reach redis at %v: %w", cfg.RedisAddrs, err)
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(&engine.Config{Registry: catalog})
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	mechLab, err := orchestrator.New(&orchestrator.Config{
		DraftRepo:   mechdraft.NewRedisRepository(redisClient, cfg.DraftTTL),
		MemoryRepo:  selectionmemory.NewRedisRepository(redisClient, cfg.MemoryTTL),
		Engine:      eng,
		IDGenerator: idgen.NewUUID("mech"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create mech lab orchestrator: %w", err)
	}

	handler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		MechLabService: mechLab,
	})
	if err != nil {
		return fmt.Errorf("failed to create mech lab handler: %w", err)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Port))
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	srv := newGRPCServer(logger)
	v1alpha1.RegisterMechLabServiceServer(srv, handler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(srv, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(v1alpha1.ServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	reflection.Register(srv)

	errChan := make(chan error, 1)
	go func() {
		log.Printf("gRPC server starting on port %d (%d catalog entries)...", cfg.Port, catalog.Len())
		if err := srv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("failed to serve: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Println("Shutting down gRPC server...")
		healthServer.Shutdown()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		stopped := make(chan struct{})
		go func() {
			srv.GracefulStop()
			close(stopped)
		}()

		select {
		case <-shutdownCtx.Done():
			log.Println("Graceful shutdown timeout exceeded, forcing stop")
			srv.Stop()
		case <-stopped:
			log.Println("Server stopped gracefully")
		}

		return nil
	case err := <-errChan:
		return err
	}
}

// newGRPCServer builds a server whose request logs and recovered panics go
// to logger.
func newGRPCServer(logger *slog.Logger) *grpc.Server {
	logFunc := grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		logger.Log(ctx, slog.Level(lvl), msg, fields...)
	})

	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		logger.ErrorContext(ctx, "recovered from panic", "panic", p)
		return status.Error(codes.Internal, "internal error")
	})

	return grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(logFunc),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(logFunc),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}

// loadCatalog reads the equipment catalog from path, or the built-in one
func loadCatalog(path string) (*registry.Catalog, error) {
	if path == "" {
		catalog, err := registry.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return catalog, nil
	}

	catalog, err := registry.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}

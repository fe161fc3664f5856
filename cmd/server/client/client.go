// Package client provides test commands for the mech lab gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client test commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Test client commands for the mech lab",
	Long:  `Client commands allow you to test the mech lab by making real gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Draft commands
	ClientCmd.AddCommand(createDraftCmd)
	ClientCmd.AddCommand(importUnitCmd)
	ClientCmd.AddCommand(getDraftCmd)
	ClientCmd.AddCommand(listDraftsCmd)
	ClientCmd.AddCommand(deleteDraftCmd)
	ClientCmd.AddCommand(exportDraftCmd)

	// Evaluation commands
	ClientCmd.AddCommand(validateDraftCmd)
	ClientCmd.AddCommand(calculateDraftCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createMechLabClient creates a mech lab service client
func createMechLabClient() (v1alpha1.MechLabServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewMechLabServiceClient(conn), cleanup, nil
}

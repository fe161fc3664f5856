package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/redis"
	mechdraft "github.com/SwiggitySwerve/megamek-web-sub007/internal/repositories/mech_draft"
)

var (
	repairRedisAddrs    []string
	repairRedisPassword string
	repairRedisDB       int
	repairYes           bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find and remove stored drafts that can no longer be loaded",
	Long: `Scan Redis for draft entries that fail to decode, carry no tonnage or
sit under the wrong key. Matching entries are listed and, after
confirmation, deleted along with their owner index entries.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := redis.NewClient(&redis.Config{
			Addrs:    repairRedisAddrs,
			Password: repairRedisPassword,
			DB:       repairRedisDB,
		})
		if err != nil {
			return err
		}
		defer func() { _ = client.Close() }()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		if err := redis.Ping(ctx, client); err != nil {
			return err
		}
		return runRepair(ctx, client, cmd.InOrStdin(), cmd.OutOrStdout(), repairYes)
	},
}

func init() {
	repairCmd.Flags().StringSliceVar(&repairRedisAddrs, "redis-addrs", []string{"localhost:6379"}, "Redis addresses")
	repairCmd.Flags().StringVar(&repairRedisPassword, "redis-password", "", "Redis password")
	repairCmd.Flags().IntVar(&repairRedisDB, "redis-db", 0, "Redis database")
	repairCmd.Flags().BoolVarP(&repairYes, "yes", "y", false, "delete without asking")
}

func runRepair(ctx context.Context, client redis.Client, in io.Reader, out io.Writer, yes bool) error {
	fmt.Fprintln(out, "Scanning for corrupted drafts...")

	found, err := mechdraft.FindCorrupted(ctx, client)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		fmt.Fprintln(out, "No corrupted drafts found")
		return nil
	}

	fmt.Fprintf(out, "\nFound %d corrupted drafts:\n", len(found))
	for _, c := range found {
		fmt.Fprintf(out, "  - %s: %s\n", c.Key, c.Reason)
	}

	if !yes {
		fmt.Fprint(out, "\nDelete these entries? (yes/no): ")
		answer, _ := bufio.NewReader(in).ReadString('\n')
		if strings.TrimSpace(answer) != "yes" {
			fmt.Fprintln(out, "Aborted, no changes made")
			return nil
		}
	}

	removed, err := mechdraft.Purge(ctx, client, found)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Deleted %d drafts\n", removed)
	return nil
}

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
)

var listLimit int

var listDraftsCmd = &cobra.Command{
	Use:   "list-drafts",
	Short: "List an owner's drafts",
	Long:  `List drafts belonging to an owner, most recently updated first.`,
	RunE:  runListDrafts,
}

func init() {
	listDraftsCmd.Flags().StringVar(&ownerID, "owner-id", "test-owner", "Owner ID")
	listDraftsCmd.Flags().IntVar(&listLimit, "limit", 0, "Maximum drafts to list (0 for all)")
}

func runListDrafts(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMechLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListDrafts(ctx, &v1alpha1.ListDraftsRequest{
		OwnerID: ownerID,
		Limit:   listLimit,
	})
	if err != nil {
		return fmt.Errorf("failed to list drafts: %w", err)
	}

	if len(resp.Drafts) == 0 {
		fmt.Printf("No drafts for %s\n", ownerID)
		return nil
	}

	fmt.Printf("Drafts for %s (%d):\n\n", ownerID, len(resp.Drafts))
	for _, d := range resp.Drafts {
		fmt.Printf("  - %s: %s (%dt %s), updated %s\n",
			d.ID, d.Name, d.Tonnage, d.TechBaseMode, time.Unix(d.UpdatedAt, 0).UTC().Format(time.DateTime))
	}
	return nil
}

package client

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/report"
)

var (
	draftID string
)

var getDraftCmd = &cobra.Command{
	Use:   "get-draft",
	Short: "Get a mech draft by ID",
	Long:  `Retrieve a mech draft to view its components, armor and equipment.`,
	RunE:  runGetDraft,
}

func init() {
	getDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = getDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runGetDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMechLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetDraft(ctx, &v1alpha1.GetDraftRequest{DraftID: draftID})
	if err != nil {
		return fmt.Errorf("failed to get draft: %w", err)
	}

	report.WriteDraft(os.Stdout, resp.Draft)
	fmt.Printf("\nCreated: %s\n", time.Unix(resp.Draft.CreatedAt, 0).UTC().Format(time.DateTime))
	fmt.Printf("Updated: %s\n", time.Unix(resp.Draft.UpdatedAt, 0).UTC().Format(time.DateTime))
	return nil
}

package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
)

var deleteDraftCmd = &cobra.Command{
	Use:   "delete-draft",
	Short: "Delete a mech draft",
	RunE:  runDeleteDraft,
}

func init() {
	deleteDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = deleteDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runDeleteDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMechLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.DeleteDraft(ctx, &v1alpha1.DeleteDraftRequest{DraftID: draftID})
	if err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}

	fmt.Println(resp.Message)
	return nil
}

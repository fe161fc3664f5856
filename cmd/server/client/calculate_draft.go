package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/report"
)

var calculateDraftCmd = &cobra.Command{
	Use:   "calculate-draft",
	Short: "Show weight, cost, heat, movement and battle value of a draft",
	RunE:  runCalculateDraft,
}

func init() {
	calculateDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = calculateDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runCalculateDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMechLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CalculateDraft(ctx, &v1alpha1.CalculateDraftRequest{DraftID: draftID})
	if err != nil {
		return fmt.Errorf("failed to calculate draft: %w", err)
	}

	report.WriteStats(os.Stdout, resp.Stats)
	return nil
}

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/report"
)

var validateDraftCmd = &cobra.Command{
	Use:   "validate-draft",
	Short: "Validate a draft against the construction rules",
	RunE:  runValidateDraft,
}

func init() {
	validateDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	_ = validateDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runValidateDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMechLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ValidateDraft(ctx, &v1alpha1.ValidateDraftRequest{DraftID: draftID})
	if err != nil {
		return fmt.Errorf("failed to validate draft: %w", err)
	}

	report.WriteValidation(os.Stdout, resp.Result)
	return nil
}

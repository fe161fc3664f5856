package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/clock"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/serializer"
)

// Version is written into exported envelopes; the root command sets it
var Version = "dev"

var outputPath string

var exportDraftCmd = &cobra.Command{
	Use:   "export-draft",
	Short: "Save a draft to a file",
	Long:  `Fetch a draft and write it as a saved-draft envelope that the check command can read.`,
	RunE:  runExportDraft,
}

func init() {
	exportDraftCmd.Flags().StringVar(&draftID, "draft-id", "", "Draft ID (required)")
	exportDraftCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (defaults to <draft-id>.json)")
	_ = exportDraftCmd.MarkFlagRequired("draft-id") // nolint:errcheck // safe to ignore in init
}

func runExportDraft(_ *cobra.Command, _ []string) error {
	s, err := serializer.New(&serializer.Config{
		AppVersion: Version,
		Clock:      clock.New(),
	})
	if err != nil {
		return err
	}

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

	data, err := s.Marshal(*resp.Draft)
	if err != nil {
		return fmt.Errorf("failed to serialize draft: %w", err)
	}

	path := outputPath
	if path == "" {
		path = draftID + ".json"
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Printf("Saved draft %s to %s\n", draftID, path)
	return nil
}

package client

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/handlers/mechlab/v1alpha1"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/report"
)

var importUnitCmd = &cobra.Command{
	Use:   "import-unit <file>",
	Short: "Import a unit record as a new draft",
	Long:  `Read a unit record (JSON, or YAML by .yaml/.yml extension) and import it as a new draft.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImportUnit,
}

func init() {
	importUnitCmd.Flags().StringVar(&ownerID, "owner-id", "test-owner", "Owner ID")
	importUnitCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID for selection memory")
}

func runImportUnit(_ *cobra.Command, args []string) error {
	unit, err := mech.ReadUnitFile(args[0])
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

	resp, err := client.ImportUnit(ctx, &v1alpha1.ImportUnitRequest{
		OwnerID:   ownerID,
		SessionID: sessionID,
		Unit:      *unit,
	})
	if err != nil {
		return fmt.Errorf("failed to import unit: %w", err)
	}

	fmt.Printf("Imported %s as draft %s\n\n", unit.Name(), resp.Draft.ID)
	report.WriteDraft(os.Stdout, resp.Draft)
	return nil
}

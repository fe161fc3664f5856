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

var (
	ownerID   string
	sessionID string
	draftName string
	tonnage   int
	techBase  string
)

var createDraftCmd = &cobra.Command{
	Use:   "create-draft",
	Short: "Create an empty mech draft",
	Long:  `Create a new mech draft with standard components and no armor or equipment.`,
	RunE:  runCreateDraft,
}

func init() {
	createDraftCmd.Flags().StringVar(&ownerID, "owner-id", "test-owner", "Owner ID")
	createDraftCmd.Flags().StringVar(&sessionID, "session-id", "", "Session ID for selection memory")
	createDraftCmd.Flags().StringVar(&draftName, "name", "", "Draft name")
	createDraftCmd.Flags().IntVar(&tonnage, "tonnage", 50, "Tonnage (20-100, multiple of 5)")
	createDraftCmd.Flags().StringVar(&techBase, "tech-base", string(mech.TechBaseInnerSphere), "INNER_SPHERE or CLAN")
}

func runCreateDraft(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createMechLabClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.CreateDraft(ctx, &v1alpha1.CreateDraftRequest{
		OwnerID:   ownerID,
		SessionID: sessionID,
		Name:      draftName,
		Tonnage:   tonnage,
		TechBase:  mech.TechBase(techBase),
	})
	if err != nil {
		return fmt.Errorf("failed to create draft: %w", err)
	}

	fmt.Printf("Created draft %s\n\n", resp.Draft.ID)
	report.WriteDraft(os.Stdout, resp.Draft)
	return nil
}

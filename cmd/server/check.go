package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/report"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/serializer"
)

var (
	checkAsUnit  bool
	checkCatalog string
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate and evaluate a saved draft or unit record offline",
	Long: `Read a saved draft (or, with --unit, a unit record in JSON or YAML),
then print its validation report and statistics. Exits non-zero when the
design breaks a construction rule.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd.Context(), cmd.OutOrStdout(), args[0], checkAsUnit, checkCatalog)
	},
}

func init() {
	checkCmd.Flags().BoolVar(&checkAsUnit, "unit", false, "treat the file as a unit record instead of a saved draft")
	checkCmd.Flags().StringVar(&checkCatalog, "catalog", "", "equipment catalog file; the built-in catalog when empty")
}

func runCheck(ctx context.Context, w io.Writer, path string, asUnit bool, catalogPath string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	draft, err := loadDraft(path, asUnit)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(catalogPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(&engine.Config{Registry: catalog})
	if err != nil {
		return err
	}

	validated, err := eng.ValidateDraft(ctx, &engine.ValidateDraftInput{Draft: draft})
	if err != nil {
		return err
	}
	calculated, err := eng.CalculateDraft(ctx, &engine.CalculateDraftInput{Draft: draft})
	if err != nil {
		return err
	}

	report.WriteDraft(w, draft)
	fmt.Fprintln(w)
	report.WriteValidation(w, validated.Result)
	fmt.Fprintln(w)
	report.WriteStats(w, calculated.Stats)

	if !validated.Result.IsValid {
		return errors.FailedPreconditionf("%s breaks %d construction rules", path, len(validated.Result.Errors))
	}
	return nil
}

func loadDraft(path string, asUnit bool) (*mech.Draft, error) {
	if asUnit {
		unit, err := mech.ReadUnitFile(path)
		if err != nil {
			return nil, err
		}
		d, err := builder.ImportUnit(*unit)
		if err != nil {
			return nil, err
		}
		return &d, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("draft file %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read draft file %s", path)
	}

	env, err := serializer.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &env.Draft, nil
}

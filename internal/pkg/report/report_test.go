package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/calculator"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/pkg/report"
)

type ReportTestSuite struct {
	suite.Suite
	buf bytes.Buffer
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(ReportTestSuite))
}

func (s *ReportTestSuite) SetupTest() {
	s.buf.Reset()
}

func (s *ReportTestSuite) TestWriteDraft() {
	d, err := builder.CreateEmpty(50, mech.TechBaseInnerSphere)
	s.Require().NoError(err)
	d.ID = "draft-1"
	d.Name = "Test Mech"
	d = builder.SetArmor(d, mech.ArmorAllocation{
		mech.LocationHead:        {Front: 9},
		mech.LocationCenterTorso: {Front: 20, Rear: 6},
	})
	d = builder.AddEquipment(d, "medium-laser", mech.LocationRightArm)

	report.WriteDraft(&s.buf, &d)
	out := s.buf.String()

	s.Contains(out, "Draft: draft-1")
	s.Contains(out, "Name: Test Mech")
	s.Contains(out, "Tonnage: 50")
	s.Contains(out, "Armor: STANDARD, 35 points")
	s.Contains(out, "20 / 6 rear")
	s.Contains(out, "0. medium-laser")
	s.Contains(out, "Unsaved changes")
}

func (s *ReportTestSuite) TestWriteValidation() {
	s.Run("valid", func() {
		s.buf.Reset()
		report.WriteValidation(&s.buf, validation.Result{IsValid: true})
		s.Equal("Valid: yes\n", s.buf.String())
	})

	s.Run("errors first", func() {
		s.buf.Reset()
		report.WriteValidation(&s.buf, validation.Result{
			Errors: []validation.Issue{{
				Code:     validation.CodeOverweight,
				Message:  "too heavy",
				Severity: validation.SeverityError,
			}},
			Warnings: []validation.Issue{{
				Code:     validation.CodeUnderweight,
				Message:  "too light",
				Severity: validation.SeverityWarning,
			}},
		})
		out := s.buf.String()
		s.Contains(out, "Valid: no (1 errors)")
		s.Less(bytes.Index(s.buf.Bytes(), []byte("OVERWEIGHT")), bytes.Index(s.buf.Bytes(), []byte("UNDERWEIGHT")))
	})
}

func (s *ReportTestSuite) TestWriteStats() {
	report.WriteStats(&s.buf, engine.Stats{
		Totals: calculator.Totals{
			Weight:          calculator.WeightBreakdown{Total: 42.5, Equipment: 9, Loaded: 51.5},
			Tonnage:         50,
			RemainingWeight: 7.5,
			RemainingLoaded: -1.5,
		},
		Cost:        calculator.CostBreakdown{Total: 4200000},
		Movement:    calculator.Movement{Walk: 4, Run: 6},
		BattleValue: calculator.BattleValue{Total: 1100},
	})
	out := s.buf.String()

	s.Contains(out, "Weight: 42.5 / 50 tons (7.5 remaining)")
	s.Contains(out, "Equipment: 9.0 tons, 51.5 loaded (-1.5 remaining)")
	s.Contains(out, "Movement: 4 / 6 / 0")
	s.Contains(out, "Cost: 4200000 C-bills")
	s.Contains(out, "Battle Value: 1100")
}

package engine_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/validation"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/registry"
	registrymock "github.com/SwiggitySwerve/megamek-web-sub007/internal/registry/mock"
)

type EngineTestSuite struct {
	suite.Suite
	ctx    context.Context
	engine engine.Engine
	draft  mech.Draft
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	catalog, err := registry.Default()
	s.Require().NoError(err)

	s.ctx = context.Background()
	s.engine, err = engine.New(&engine.Config{Registry: catalog})
	s.Require().NoError(err)

	s.draft, err = builder.CreateEmpty(50, mech.TechBaseInnerSphere)
	s.Require().NoError(err)
}

func (s *EngineTestSuite) TestNew() {
	s.Run("missing registry", func() {
		e, err := engine.New(&engine.Config{})
		s.Nil(e)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "Registry")
	})

	s.Run("nil config", func() {
		_, err := engine.New(nil)
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *EngineTestSuite) TestValidateDraft() {
	d := builder.SetArmor(s.draft, mech.ArmorAllocation{mech.LocationHead: {Front: 12}})

	out, err := s.engine.ValidateDraft(s.ctx, &engine.ValidateDraftInput{Draft: &d})
	s.Require().NoError(err)
	s.False(out.Result.IsValid)
	s.True(out.Result.HasCode(validation.CodeArmorExceedsMax))

	_, err = s.engine.ValidateDraft(s.ctx, &engine.ValidateDraftInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestCalculateDraft() {
	d, err := builder.SetEngine(s.draft, mech.EngineStandard, 4)
	s.Require().NoError(err)

	out, err := s.engine.CalculateDraft(s.ctx, &engine.CalculateDraftInput{Draft: &d})
	s.Require().NoError(err)
	s.Equal(int64(1600000), out.Stats.Cost.Total)
	s.Equal(4, out.Stats.Movement.Walk)
	s.Equal(10, out.Stats.Heat.Dissipated)
	s.Equal(78, out.Stats.Totals.TotalSlots)
	s.Positive(out.Stats.BattleValue.Total)
}

func (s *EngineTestSuite) TestCanAddEquipment() {
	out, err := s.engine.CanAddEquipment(s.ctx, &engine.CanAddEquipmentInput{
		Draft:       &s.draft,
		EquipmentID: "medium-laser",
		Location:    mech.LocationRightArm,
	})
	s.Require().NoError(err)
	s.True(out.Allowed)
}

func (s *EngineTestSuite) TestLookupEquipment() {
	out, err := s.engine.LookupEquipment(s.ctx, &engine.LookupEquipmentInput{EquipmentID: "ppc"})
	s.Require().NoError(err)
	s.True(out.Result.Found)
	s.Equal(10, out.Result.Equipment.Heat)

	out, err = s.engine.LookupEquipment(s.ctx, &engine.LookupEquipmentInput{EquipmentID: "nope"})
	s.Require().NoError(err)
	s.False(out.Result.Found)

	_, err = s.engine.LookupEquipment(s.ctx, &engine.LookupEquipmentInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *EngineTestSuite) TestResolvesThroughRegistry() {
	ctrl := gomock.NewController(s.T())
	reg := registrymock.NewMockRegistry(ctrl)

	eng, err := engine.New(&engine.Config{Registry: reg})
	s.Require().NoError(err)

	heavy := registry.Equipment{
		ID:            "test-cannon",
		Category:      registry.CategoryWeapon,
		Weight:        12,
		CriticalSlots: 2,
	}
	reg.EXPECT().Lookup("test-cannon").Return(registry.LookupResult{Equipment: heavy, Found: true}).AnyTimes()
	reg.EXPECT().Lookup("ghost").Return(registry.LookupResult{}).AnyTimes()

	d := builder.AddEquipment(s.draft, "test-cannon", mech.LocationRightTorso)
	d = builder.AddEquipment(d, "ghost", mech.LocationLeftTorso)

	out, err := eng.CalculateDraft(s.ctx, &engine.CalculateDraftInput{Draft: &d})
	s.Require().NoError(err)
	s.Equal(12.0, out.Stats.Totals.Weight.Equipment)

	lookup, err := eng.LookupEquipment(s.ctx, &engine.LookupEquipmentInput{EquipmentID: "ghost"})
	s.Require().NoError(err)
	s.False(lookup.Result.Found)
}

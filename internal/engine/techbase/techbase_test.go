package techbase_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/builder"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/engine/techbase"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
	"github.com/SwiggitySwerve/megamek-web-sub007/internal/errors"
)

type TechBaseTestSuite struct {
	suite.Suite
	draft  mech.Draft
	memory *techbase.Memory
}

func TestTechBaseSuite(t *testing.T) {
	suite.Run(t, new(TechBaseTestSuite))
}

func (s *TechBaseTestSuite) SetupTest() {
	d, err := builder.CreateEmpty(50, mech.TechBaseInnerSphere)
	s.Require().NoError(err)
	s.draft = d
	s.memory = techbase.NewMemory()
}

func (s *TechBaseTestSuite) TestValidators() {
	for _, category := range mech.AllComponentCategories() {
		s.Run(string(category), func() {
			v, err := techbase.ValidatorFor(category)
			s.Require().NoError(err)
			for _, tb := range mech.AllTechBases() {
				types := v.ValidTypes(tb)
				s.NotEmpty(types)
				s.Equal(types[0], v.Default(tb))
				for _, t := range types {
					s.True(v.IsValid(t, tb))
				}
				s.False(v.IsValid("NOT_A_COMPONENT", tb))
			}
		})
	}

	s.Run("unknown category", func() {
		v, err := techbase.ValidatorFor("TURRET")
		s.Nil(v)
		s.True(errors.IsInvalidArgument(err))
	})

	s.Run("tech specific variants", func() {
		engine, _ := techbase.ValidatorFor(mech.CategoryEngine)
		s.True(engine.IsValid(string(mech.EngineXLClan), mech.TechBaseClan))
		s.False(engine.IsValid(string(mech.EngineXLClan), mech.TechBaseInnerSphere))
		s.False(engine.IsValid(string(mech.EngineLight), mech.TechBaseClan))

		heatSink, _ := techbase.ValidatorFor(mech.CategoryHeatSink)
		s.Equal(string(mech.HeatSinkDoubleClan), heatSink.Default(mech.TechBaseClan))
		s.Equal(string(mech.HeatSinkSingle), heatSink.Default(mech.TechBaseInnerSphere))
	})
}

func (s *TechBaseTestSuite) TestSetModeCorrectsIllegalSelections() {
	d := s.draft
	d.EngineType = mech.EngineLight
	d.GyroType = mech.GyroXL
	d.ArmorType = mech.ArmorFerroFibrousIS

	result, err := techbase.SetMode(d, mech.TechBaseModeClan, s.memory)
	s.Require().NoError(err)

	out := result.Draft
	s.Equal(mech.TechBaseClan, out.TechBase)
	s.Equal(mech.TechBaseModeClan, out.TechBaseMode)
	s.Equal(mech.EngineStandard, out.EngineType)
	s.Equal(mech.GyroStandard, out.GyroType)
	s.Equal(mech.ArmorStandard, out.ArmorType)
	s.Equal(mech.StructureStandard, out.StructureType)
	s.True(out.IsDirty)
	s.Empty(techbase.Check(out))

	s.Len(result.Corrections, 3)
	for _, c := range result.Corrections {
		s.Equal(techbase.SourceDefault, c.Source)
		s.Equal(mech.TechBaseClan, c.TechBase)
	}

	// input untouched
	s.Equal(mech.EngineLight, d.EngineType)
	s.Equal(mech.TechBaseInnerSphere, d.TechBase)
}

func (s *TechBaseTestSuite) TestSetModeRestoresRememberedSelections() {
	d := s.draft
	d.EngineType = mech.EngineXLIS
	d.StructureType = mech.StructureEndoSteelIS
	techbase.Remember(d, s.memory)

	toClan, err := techbase.SetMode(d, mech.TechBaseModeClan, s.memory)
	s.Require().NoError(err)
	s.Equal(mech.EngineStandard, toClan.Draft.EngineType)
	s.Equal(mech.StructureStandard, toClan.Draft.StructureType)

	back, err := techbase.SetMode(toClan.Draft, mech.TechBaseModeInnerSphere, s.memory)
	s.Require().NoError(err)
	s.Equal(mech.EngineXLIS, back.Draft.EngineType)
	s.Equal(mech.StructureEndoSteelIS, back.Draft.StructureType)
	for _, c := range back.Corrections {
		s.Equal(techbase.SourceMemory, c.Source)
	}
}

func (s *TechBaseTestSuite) TestMixedModeRoundTrip() {
	mixed, err := techbase.SetMode(s.draft, mech.TechBaseModeMixed, s.memory)
	s.Require().NoError(err)
	s.Empty(mixed.Corrections)

	clanEngine, err := techbase.SetComponentTechBase(mixed.Draft, mech.SubsystemEngine, mech.TechBaseClan, s.memory)
	s.Require().NoError(err)
	s.Equal(mech.TechBaseClan, clanEngine.Draft.EffectiveTechBase(mech.SubsystemEngine))

	// pick a Clan-only engine and confirm it
	withXL, err := builder.SetEngine(clanEngine.Draft, mech.EngineXLClan)
	s.Require().NoError(err)
	techbase.Remember(withXL, s.memory)

	toIS, err := techbase.SetMode(withXL, mech.TechBaseModeInnerSphere, s.memory)
	s.Require().NoError(err)
	s.Equal(mech.EngineStandard, toIS.Draft.EngineType)
	s.Equal(mech.TechBaseClan, toIS.Draft.ComponentTechBases[mech.SubsystemEngine])

	backToMixed, err := techbase.SetMode(toIS.Draft, mech.TechBaseModeMixed, s.memory)
	s.Require().NoError(err)
	s.Equal(mech.EngineXLClan, backToMixed.Draft.EngineType)
	s.Require().Len(backToMixed.Corrections, 1)
	s.Equal(techbase.Correction{
		Category: mech.CategoryEngine,
		TechBase: mech.TechBaseClan,
		From:     string(mech.EngineStandard),
		To:       string(mech.EngineXLClan),
		Source:   techbase.SourceMemory,
	}, backToMixed.Corrections[0])
}

func (s *TechBaseTestSuite) TestSetComponentTechBase() {
	s.Run("outside mixed mode only records", func() {
		d := s.draft
		d.EngineType = mech.EngineLight

		result, err := techbase.SetComponentTechBase(d, mech.SubsystemEngine, mech.TechBaseClan, s.memory)
		s.Require().NoError(err)
		s.Equal(mech.EngineLight, result.Draft.EngineType)
		s.Equal(mech.TechBaseClan, result.Draft.ComponentTechBases[mech.SubsystemEngine])
		s.Empty(result.Corrections)
	})

	s.Run("mixed mode revalidates mapped categories only", func() {
		d := s.draft
		d.TechBaseMode = mech.TechBaseModeMixed
		d.StructureType = mech.StructureEndoSteelIS
		d.CockpitType = mech.CockpitSmall
		d.GyroType = mech.GyroXL

		result, err := techbase.SetComponentTechBase(d, mech.SubsystemChassis, mech.TechBaseClan, techbase.NewMemory())
		s.Require().NoError(err)
		s.Equal(mech.StructureStandard, result.Draft.StructureType)
		s.Equal(mech.CockpitStandard, result.Draft.CockpitType)
		s.Equal(mech.GyroXL, result.Draft.GyroType)
		s.Len(result.Corrections, 2)
	})

	s.Run("movement subsystem has no categories", func() {
		d := s.draft
		d.TechBaseMode = mech.TechBaseModeMixed

		result, err := techbase.SetComponentTechBase(d, mech.SubsystemMovement, mech.TechBaseClan, s.memory)
		s.Require().NoError(err)
		s.Empty(result.Corrections)
		s.Equal(mech.TechBaseClan, result.Draft.EffectiveTechBase(mech.SubsystemMovement))
	})

	s.Run("invalid input", func() {
		_, err := techbase.SetComponentTechBase(s.draft, "TURRET", "STAR_LEAGUE", s.memory)
		s.Require().Error(err)
		s.True(errors.IsInvalidArgument(err))
		s.Contains(err.Error(), "subsystem")
		s.Contains(err.Error(), "techBase")
	})
}

func (s *TechBaseTestSuite) TestSetModeRejectsUnknownMode() {
	_, err := techbase.SetMode(s.draft, "STAR_LEAGUE", s.memory)
	s.True(errors.IsInvalidArgument(err))
}

func (s *TechBaseTestSuite) TestNilMemory() {
	d := s.draft
	d.EngineType = mech.EngineLight

	result, err := techbase.SetMode(d, mech.TechBaseModeClan, nil)
	s.Require().NoError(err)
	s.Equal(mech.EngineStandard, result.Draft.EngineType)
}

type MemoryTestSuite struct {
	suite.Suite
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(MemoryTestSuite))
}

func (s *MemoryTestSuite) TestPutGet() {
	m := techbase.NewMemory()
	_, ok := m.Get(mech.CategoryEngine, mech.TechBaseClan)
	s.False(ok)

	m.Put(mech.CategoryEngine, mech.TechBaseClan, string(mech.EngineXLClan))
	v, ok := m.Get(mech.CategoryEngine, mech.TechBaseClan)
	s.True(ok)
	s.Equal(string(mech.EngineXLClan), v)

	_, ok = m.Get(mech.CategoryEngine, mech.TechBaseInnerSphere)
	s.False(ok)
}

func (s *MemoryTestSuite) TestCloneAndEntries() {
	m := techbase.NewMemory()
	m.Put(mech.CategoryGyro, mech.TechBaseInnerSphere, string(mech.GyroXL))
	m.Put(mech.CategoryArmor, mech.TechBaseClan, string(mech.ArmorFerroFibrousClan))
	m.Put(mech.CategoryArmor, mech.TechBaseInnerSphere, string(mech.ArmorStealth))

	clone := m.Clone()
	clone.Put(mech.CategoryGyro, mech.TechBaseInnerSphere, string(mech.GyroCompact))

	v, _ := m.Get(mech.CategoryGyro, mech.TechBaseInnerSphere)
	s.Equal(string(mech.GyroXL), v)

	entries := m.Entries()
	s.Equal([]techbase.Entry{
		{Category: mech.CategoryArmor, TechBase: mech.TechBaseClan, Value: string(mech.ArmorFerroFibrousClan)},
		{Category: mech.CategoryArmor, TechBase: mech.TechBaseInnerSphere, Value: string(mech.ArmorStealth)},
		{Category: mech.CategoryGyro, TechBase: mech.TechBaseInnerSphere, Value: string(mech.GyroXL)},
	}, entries)

	restored := techbase.MemoryFromEntries(entries)
	s.Equal(3, restored.Len())
	s.Equal(entries, restored.Entries())
}

func (s *MemoryTestSuite) TestNilSafe() {
	var m *techbase.Memory
	m.Put(mech.CategoryEngine, mech.TechBaseClan, "XL_CLAN")
	_, ok := m.Get(mech.CategoryEngine, mech.TechBaseClan)
	s.False(ok)
	s.Equal(0, m.Len())
	s.Nil(m.Entries())
	s.Equal(0, m.Clone().Len())
}

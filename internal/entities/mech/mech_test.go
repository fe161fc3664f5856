package mech_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/suite"
	"gopkg.in/yaml.v3"

	"github.com/SwiggitySwerve/megamek-web-sub007/internal/entities/mech"
)

type TablesTestSuite struct {
	suite.Suite
}

func TestTablesSuite(t *testing.T) {
	suite.Run(t, new(TablesTestSuite))
}

func (s *TablesTestSuite) TestStructurePoints() {
	s.Equal(3, mech.StructurePoints(50, mech.LocationHead))
	s.Equal(16, mech.StructurePoints(50, mech.LocationCenterTorso))
	s.Equal(12, mech.StructurePoints(50, mech.LocationLeftTorso))
	s.Equal(8, mech.StructurePoints(50, mech.LocationRightArm))
	s.Equal(12, mech.StructurePoints(50, mech.LocationLeftLeg))
	s.Equal(0, mech.StructurePoints(52, mech.LocationCenterTorso))
	s.Equal(83, mech.TotalStructurePoints(50))
}

func (s *TablesTestSuite) TestMaxArmor() {
	s.Equal(9, mech.MaxArmor(100, mech.LocationHead))
	s.Equal(62, mech.MaxArmor(100, mech.LocationCenterTorso))
	s.Equal(32, mech.MaxArmor(50, mech.LocationCenterTorso))
	s.Equal(169, mech.TotalMaxArmor(50))
}

func (s *TablesTestSuite) TestEngineWeight() {
	testCases := []struct {
		name       string
		engineType mech.EngineType
		rating     int
		expected   float64
	}{
		{"standard 200", mech.EngineStandard, 200, 8.5},
		{"standard 150", mech.EngineStandard, 150, 5.5},
		{"xl 200 halves", mech.EngineXLIS, 200, 4.5},
		{"clan xl 300", mech.EngineXLClan, 300, 9.5},
		{"light 300", mech.EngineLight, 300, 14.5},
		{"standard 400", mech.EngineStandard, 400, 52.5},
		{"rating above range", mech.EngineStandard, 405, 0},
		{"rating not multiple of five", mech.EngineStandard, 203, 0},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, mech.EngineWeight(tc.engineType, tc.rating))
		})
	}
}

func (s *TablesTestSuite) TestComponentWeights() {
	s.Equal(2.0, mech.GyroWeight(200))
	s.Equal(3.0, mech.GyroWeight(201))
	s.Equal(5.0, mech.StructureWeight(50))
	s.Equal(3.5, mech.StructureWeight(35))
	s.Equal(0.0, mech.HeatSinkWeight(10))
	s.Equal(4.0, mech.HeatSinkWeight(14))
	s.Equal(10.0, mech.ArmorWeight(mech.ArmorStandard, 160))
	s.Equal(10.5, mech.ArmorWeight(mech.ArmorStandard, 161))
	s.Equal(0.0, mech.ArmorWeight(mech.ArmorStandard, 0))
}

func (s *TablesTestSuite) TestSpeedFactorClamps() {
	s.Equal(0.44, mech.SpeedFactor(-1))
	s.Equal(1.24, mech.SpeedFactor(7))
	s.Equal(3.74, mech.SpeedFactor(25))
	s.Equal(3.74, mech.SpeedFactor(40))
}

func (s *TablesTestSuite) TestSlotCapacity() {
	s.Equal(6, mech.SlotCapacity(mech.LocationHead))
	s.Equal(6, mech.SlotCapacity(mech.LocationRightLeg))
	s.Equal(12, mech.SlotCapacity(mech.LocationCenterTorso))
	s.Equal(12, mech.SlotCapacity(mech.LocationLeftArm))

	total := 0
	for _, loc := range mech.AllLocations() {
		total += mech.SlotCapacity(loc)
	}
	s.Equal(mech.TotalCriticalSlot, total)
}

func (s *TablesTestSuite) TestIsValidTonnage() {
	s.True(mech.IsValidTonnage(20))
	s.True(mech.IsValidTonnage(100))
	s.False(mech.IsValidTonnage(15))
	s.False(mech.IsValidTonnage(105))
	s.False(mech.IsValidTonnage(52))
}

type DraftTestSuite struct {
	suite.Suite
}

func TestDraftSuite(t *testing.T) {
	suite.Run(t, new(DraftTestSuite))
}

func (s *DraftTestSuite) TestCloneIsIndependent() {
	original := mech.Draft{
		ID:      "draft_1",
		Tonnage: 50,
		Armor: mech.ArmorAllocation{
			mech.LocationHead: {Front: 9},
		},
		Equipment: []mech.MountedEquipment{
			{EquipmentID: "medium-laser", Location: mech.LocationRightArm},
		},
		ComponentTechBases: map[mech.Subsystem]mech.TechBase{
			mech.SubsystemEngine: mech.TechBaseClan,
		},
	}

	clone := original.Clone()
	clone.Armor[mech.LocationHead] = mech.ArmorValue{Front: 1}
	clone.Equipment[0].EquipmentID = "large-laser"
	clone.ComponentTechBases[mech.SubsystemEngine] = mech.TechBaseInnerSphere

	s.Equal(9, original.Armor[mech.LocationHead].Front)
	s.Equal("medium-laser", original.Equipment[0].EquipmentID)
	s.Equal(mech.TechBaseClan, original.ComponentTechBases[mech.SubsystemEngine])
}

func (s *DraftTestSuite) TestEffectiveTechBase() {
	s.Run("non-mixed follows draft", func() {
		d := mech.Draft{
			TechBase:     mech.TechBaseInnerSphere,
			TechBaseMode: mech.TechBaseModeClan,
			ComponentTechBases: map[mech.Subsystem]mech.TechBase{
				mech.SubsystemEngine: mech.TechBaseInnerSphere,
			},
		}
		s.Equal(mech.TechBaseClan, d.EffectiveTechBase(mech.SubsystemEngine))
	})

	s.Run("mixed uses tracked subsystem", func() {
		d := mech.Draft{
			TechBase:     mech.TechBaseInnerSphere,
			TechBaseMode: mech.TechBaseModeMixed,
			ComponentTechBases: map[mech.Subsystem]mech.TechBase{
				mech.SubsystemEngine: mech.TechBaseClan,
			},
		}
		s.Equal(mech.TechBaseClan, d.EffectiveTechBase(mech.SubsystemEngine))
		s.Equal(mech.TechBaseInnerSphere, d.EffectiveTechBase(mech.SubsystemArmor))
	})

	s.Run("unset mode falls back to tech base", func() {
		d := mech.Draft{TechBase: mech.TechBaseClan}
		s.Equal(mech.TechBaseModeClan, d.Mode())
		s.Equal(mech.TechBaseClan, d.EffectiveTechBase(mech.SubsystemGyro))
	})
}

func (s *DraftTestSuite) TestSubsystemMapping() {
	for _, sub := range mech.AllSubsystems() {
		for _, cat := range sub.Categories() {
			s.Equal(sub, mech.SubsystemOf(cat), "category %s", cat)
		}
	}
	s.Empty(mech.SubsystemMovement.Categories())
	s.Empty(mech.SubsystemEquipment.Categories())
	s.Equal(mech.Subsystem(""), mech.SubsystemOf("TURRET"))
}

func (s *DraftTestSuite) TestParseLocation() {
	testCases := []struct {
		input    string
		expected mech.Location
		ok       bool
	}{
		{"CENTER_TORSO", mech.LocationCenterTorso, true},
		{"ct", mech.LocationCenterTorso, true},
		{"HD", mech.LocationHead, true},
		{"Left Arm", mech.LocationLeftArm, true},
		{"RightLeg", mech.LocationRightLeg, true},
		{"TURRET", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			loc, ok := mech.ParseLocation(tc.input)
			s.Equal(tc.ok, ok)
			s.Equal(tc.expected, loc)
		})
	}
}

type UnitRecordTestSuite struct {
	suite.Suite
}

func TestUnitRecordSuite(t *testing.T) {
	suite.Run(t, new(UnitRecordTestSuite))
}

const testUnitJSON = `{
  "id": "hbk-4g",
  "chassis": "Hunchback",
  "model": "HBK-4G",
  "techBase": "Inner Sphere",
  "tonnage": 50,
  "engine": {"type": "Fusion", "rating": 200},
  "gyro": "Standard",
  "cockpit": "Standard",
  "structure": {"type": "Standard"},
  "armor": {
    "type": "Standard",
    "allocation": {
      "HD": 9,
      "CT": {"front": 26, "rear": 5},
      "LT_REAR": 4,
      "LT": 20,
      "RA": 16
    }
  },
  "heatSinks": {"type": "Single", "count": 13},
  "movement": {"walk": 4, "jump": 0},
  "equipment": [
    {"id": "ac-20", "location": "RT"},
    {"id": "medium-laser", "location": "LA"}
  ]
}`

func (s *UnitRecordTestSuite) TestDecodeJSON() {
	var unit mech.UnitRecord
	s.Require().NoError(json.Unmarshal([]byte(testUnitJSON), &unit))

	s.Equal("Hunchback HBK-4G", unit.Name())
	s.Equal(mech.ComponentRef{Type: "Fusion", Rating: 200}, unit.Engine)
	s.Equal(mech.ComponentRef{Type: "Standard"}, unit.Gyro)
	s.Equal(mech.UnitArmorValue{Front: 9}, unit.Armor.Allocation["HD"])
	s.Equal(mech.UnitArmorValue{Front: 26, Rear: 5}, unit.Armor.Allocation["CT"])

	tb, mode, err := unit.BaseTechBase()
	s.Require().NoError(err)
	s.Equal(mech.TechBaseInnerSphere, tb)
	s.Equal(mech.TechBaseModeInnerSphere, mode)

	armor, err := unit.ArmorAllocation()
	s.Require().NoError(err)
	s.Equal(mech.ArmorValue{Front: 9}, armor[mech.LocationHead])
	s.Equal(mech.ArmorValue{Front: 26, Rear: 5}, armor[mech.LocationCenterTorso])
	s.Equal(mech.ArmorValue{Front: 20, Rear: 4}, armor[mech.LocationLeftTorso])
	s.Equal(mech.ArmorValue{Front: 16}, armor[mech.LocationRightArm])
}

func (s *UnitRecordTestSuite) TestDecodeYAML() {
	doc := `
chassis: Timber Wolf
model: Prime
techBase: CLAN
tonnage: 75
engine:
  type: XL
  rating: 375
structure: Endo Steel
armor:
  type: {type: Ferro-Fibrous}
  allocation:
    HD: 9
    CT: {front: 36, rear: 10}
heatSinks:
  type: Double
  count: 17
`
	var unit mech.UnitRecord
	s.Require().NoError(yaml.Unmarshal([]byte(doc), &unit))

	comps, err := unit.Components()
	s.Require().NoError(err)
	s.Equal(mech.EngineXLClan, comps.EngineType)
	s.Equal(375, comps.EngineRating)
	s.Equal(mech.StructureEndoSteelClan, comps.StructureType)
	s.Equal(mech.ArmorFerroFibrousClan, comps.ArmorType)
	s.Equal(mech.HeatSinkDoubleClan, comps.HeatSinkType)
	s.Equal(17, comps.HeatSinkCount)
	s.Equal(mech.GyroStandard, comps.GyroType)
	s.Equal(mech.CockpitStandard, comps.CockpitType)
}

func (s *UnitRecordTestSuite) TestComponentTechBaseOverride() {
	unit := mech.UnitRecord{
		TechBase:  "MIXED",
		Tonnage:   50,
		Engine:    mech.ComponentRef{Type: "XL", TechBase: mech.TechBaseClan},
		HeatSinks: mech.UnitHeatSinks{Type: mech.ComponentRef{Type: "DOUBLE"}, Count: 10},
	}

	tb, mode, err := unit.BaseTechBase()
	s.Require().NoError(err)
	s.Equal(mech.TechBaseInnerSphere, tb)
	s.Equal(mech.TechBaseModeMixed, mode)

	comps, err := unit.Components()
	s.Require().NoError(err)
	s.Equal(mech.EngineXLClan, comps.EngineType)
	s.Equal(mech.HeatSinkDoubleIS, comps.HeatSinkType)
	s.Equal(mech.TechBaseClan, comps.TechBases[mech.SubsystemEngine])
	s.Equal(mech.TechBaseInnerSphere, comps.TechBases[mech.SubsystemHeatSink])
}

func (s *UnitRecordTestSuite) TestErrors() {
	s.Run("unknown component", func() {
		unit := mech.UnitRecord{Engine: mech.ComponentRef{Type: "ANTIMATTER"}}
		_, err := unit.Components()
		s.Error(err)
		s.Contains(err.Error(), "ANTIMATTER")
	})

	s.Run("unknown tech base", func() {
		unit := mech.UnitRecord{TechBase: "STAR_LEAGUE"}
		_, _, err := unit.BaseTechBase()
		s.Error(err)
	})

	s.Run("unknown armor location", func() {
		unit := mech.UnitRecord{Armor: mech.UnitArmor{
			Allocation: map[string]mech.UnitArmorValue{"TURRET": {Front: 4}},
		}}
		_, err := unit.ArmorAllocation()
		s.Error(err)
	})

	s.Run("malformed component", func() {
		var ref mech.ComponentRef
		s.Error(json.Unmarshal([]byte(`[1,2]`), &ref))
	})
}

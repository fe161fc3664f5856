package mech

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ComponentRef is a component as it appears in an imported unit: either a
// bare type name ("XL") or a record ({"type": "XL", "techBase": "CLAN"}).
// Engines may also carry a rating.
type ComponentRef struct {
	Type     string   `json:"type" yaml:"type"`
	TechBase TechBase `json:"techBase,omitempty" yaml:"techBase,omitempty"`
	Rating   int      `json:"rating,omitempty" yaml:"rating,omitempty"`
}

type componentRefRecord ComponentRef

// UnmarshalJSON accepts a string or an object
func (c *ComponentRef) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		*c = ComponentRef{Type: name}
		return nil
	}
	var rec componentRefRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("component must be a string or {type, techBase} record: %w", err)
	}
	*c = ComponentRef(rec)
	return nil
}

// UnmarshalYAML accepts a scalar or a mapping
func (c *ComponentRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*c = ComponentRef{Type: node.Value}
		return nil
	}
	var rec componentRefRecord
	if err := node.Decode(&rec); err != nil {
		return fmt.Errorf("component must be a string or {type, techBase} record: %w", err)
	}
	*c = ComponentRef(rec)
	return nil
}

// UnitArmorValue is a location's armor in an imported unit: a bare number
// (front only) or {front, rear}.
type UnitArmorValue struct {
	Front int `json:"front" yaml:"front"`
	Rear  int `json:"rear,omitempty" yaml:"rear,omitempty"`
}

type unitArmorRecord UnitArmorValue

// UnmarshalJSON accepts a number or an object
func (a *UnitArmorValue) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*a = UnitArmorValue{Front: n}
		return nil
	}
	var rec unitArmorRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("armor must be a number or {front, rear}: %w", err)
	}
	*a = UnitArmorValue(rec)
	return nil
}

// UnmarshalYAML accepts a number or a mapping
func (a *UnitArmorValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("armor must be a number or {front, rear}: %w", err)
		}
		*a = UnitArmorValue{Front: n}
		return nil
	}
	var rec unitArmorRecord
	if err := node.Decode(&rec); err != nil {
		return fmt.Errorf("armor must be a number or {front, rear}: %w", err)
	}
	*a = UnitArmorValue(rec)
	return nil
}

// UnitArmor is the armor block of an imported unit
type UnitArmor struct {
	Type       ComponentRef              `json:"type" yaml:"type"`
	Allocation map[string]UnitArmorValue `json:"allocation" yaml:"allocation"`
}

// UnitHeatSinks is the heat sink block of an imported unit
type UnitHeatSinks struct {
	Type  ComponentRef `json:"type" yaml:"type"`
	Count int          `json:"count" yaml:"count"`
}

// UnitMovement is the movement block of an imported unit
type UnitMovement struct {
	Walk int `json:"walk" yaml:"walk"`
	Jump int `json:"jump,omitempty" yaml:"jump,omitempty"`
}

// UnitEquipment is one mounted item of an imported unit
type UnitEquipment struct {
	ID       string `json:"id" yaml:"id"`
	Location string `json:"location" yaml:"location"`
}

// UnitRecord is an externally supplied unit, e.g. the output of the
// record-sheet conversion pipeline.
type UnitRecord struct {
	ID        string          `json:"id" yaml:"id"`
	Chassis   string          `json:"chassis" yaml:"chassis"`
	Model     string          `json:"model" yaml:"model"`
	TechBase  string          `json:"techBase" yaml:"techBase"`
	Tonnage   int             `json:"tonnage" yaml:"tonnage"`
	Engine    ComponentRef    `json:"engine" yaml:"engine"`
	Gyro      ComponentRef    `json:"gyro" yaml:"gyro"`
	Cockpit   ComponentRef    `json:"cockpit" yaml:"cockpit"`
	Structure ComponentRef    `json:"structure" yaml:"structure"`
	Armor     UnitArmor       `json:"armor" yaml:"armor"`
	HeatSinks UnitHeatSinks   `json:"heatSinks" yaml:"heatSinks"`
	Movement  UnitMovement    `json:"movement" yaml:"movement"`
	Equipment []UnitEquipment `json:"equipment" yaml:"equipment"`
}

// Name returns "Chassis Model", trimmed
func (u UnitRecord) Name() string {
	return strings.TrimSpace(u.Chassis + " " + u.Model)
}

// BaseTechBase resolves the unit's tech base; mixed units count as Inner
// Sphere chassis.
func (u UnitRecord) BaseTechBase() (TechBase, TechBaseMode, error) {
	switch normalizeToken(u.TechBase) {
	case "", "INNER_SPHERE", "IS":
		return TechBaseInnerSphere, TechBaseModeInnerSphere, nil
	case "CLAN":
		return TechBaseClan, TechBaseModeClan, nil
	case "MIXED", "MIXED_IS", "MIXED_INNER_SPHERE":
		return TechBaseInnerSphere, TechBaseModeMixed, nil
	case "MIXED_CLAN":
		return TechBaseClan, TechBaseModeMixed, nil
	default:
		return "", "", fmt.Errorf("unknown tech base %q", u.TechBase)
	}
}

// Components is the canonical form of an imported unit's component choices
type Components struct {
	EngineType    EngineType
	EngineRating  int
	GyroType      GyroType
	CockpitType   CockpitType
	StructureType StructureType
	ArmorType     ArmorType
	HeatSinkType  HeatSinkType
	HeatSinkCount int

	// TechBases records the tech base each subsystem's component resolved to
	TechBases map[Subsystem]TechBase
}

// Components normalizes every component reference against the unit's tech
// base. Empty references resolve to the standard variant.
func (u UnitRecord) Components() (Components, error) {
	base, _, err := u.BaseTechBase()
	if err != nil {
		return Components{}, err
	}

	out := Components{
		EngineRating:  u.Engine.Rating,
		HeatSinkCount: u.HeatSinks.Count,
		TechBases:     make(map[Subsystem]TechBase),
	}

	var errs []string
	resolve := func(ref ComponentRef, sub Subsystem) TechBase {
		tb := ref.TechBase
		if !tb.IsValid() {
			tb = base
		}
		out.TechBases[sub] = tb
		return tb
	}

	var ok bool
	if out.EngineType, ok = ParseEngineType(u.Engine.Type, resolve(u.Engine, SubsystemEngine)); !ok {
		errs = append(errs, fmt.Sprintf("engine %q", u.Engine.Type))
	}
	if out.GyroType, ok = ParseGyroType(u.Gyro.Type); !ok {
		errs = append(errs, fmt.Sprintf("gyro %q", u.Gyro.Type))
	}
	resolve(u.Gyro, SubsystemGyro)
	if out.CockpitType, ok = ParseCockpitType(u.Cockpit.Type); !ok {
		errs = append(errs, fmt.Sprintf("cockpit %q", u.Cockpit.Type))
	}
	if out.StructureType, ok = ParseStructureType(u.Structure.Type, resolve(u.Structure, SubsystemChassis)); !ok {
		errs = append(errs, fmt.Sprintf("structure %q", u.Structure.Type))
	}
	if out.ArmorType, ok = ParseArmorType(u.Armor.Type.Type, resolve(u.Armor.Type, SubsystemArmor)); !ok {
		errs = append(errs, fmt.Sprintf("armor %q", u.Armor.Type.Type))
	}
	if out.HeatSinkType, ok = ParseHeatSinkType(u.HeatSinks.Type.Type, resolve(u.HeatSinks.Type, SubsystemHeatSink)); !ok {
		errs = append(errs, fmt.Sprintf("heat sinks %q", u.HeatSinks.Type.Type))
	}

	if len(errs) > 0 {
		return Components{}, fmt.Errorf("unknown components: %s", strings.Join(errs, ", "))
	}
	return out, nil
}

// ArmorAllocation converts the unit's allocation, merging *_REAR keys into
// their torso.
func (u UnitRecord) ArmorAllocation() (ArmorAllocation, error) {
	out := make(ArmorAllocation)
	for key, value := range u.Armor.Allocation {
		name := normalizeToken(key)
		rear := false
		if trimmed := strings.TrimSuffix(name, "_REAR"); trimmed != name {
			name, rear = trimmed, true
		}
		switch name {
		case "RTC", "RTL", "RTR":
			rear = true
			name = map[string]string{"RTC": "CT", "RTL": "LT", "RTR": "RT"}[name]
		}
		loc, ok := ParseLocation(strings.ReplaceAll(name, "_", " "))
		if !ok {
			return nil, fmt.Errorf("unknown armor location %q", key)
		}
		current := out[loc]
		if rear {
			current.Rear += value.Front + value.Rear
		} else {
			current.Front += value.Front
			current.Rear += value.Rear
		}
		out[loc] = current
	}
	return out, nil
}

func normalizeToken(s string) string {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.NewReplacer("-", "_", " ", "_").Replace(s)
	return s
}

// ParseEngineType maps an engine name to its variant. Tech-specific names
// ("XL") use techBase to pick the IS or Clan variant.
func ParseEngineType(name string, techBase TechBase) (EngineType, bool) {
	token := normalizeToken(name)
	token = strings.TrimSuffix(strings.TrimSuffix(token, "_ENGINE"), "_FUSION")
	switch token {
	case "", "STANDARD", "FUSION", "STANDARD_FUSION":
		return EngineStandard, true
	case "XL":
		if techBase == TechBaseClan {
			return EngineXLClan, true
		}
		return EngineXLIS, true
	case "XL_IS", "IS_XL":
		return EngineXLIS, true
	case "XL_CLAN", "CLAN_XL":
		return EngineXLClan, true
	case "LIGHT":
		return EngineLight, true
	case "XXL":
		return EngineXXL, true
	case "COMPACT":
		return EngineCompact, true
	default:
		return "", false
	}
}

// ParseGyroType maps a gyro name to its variant
func ParseGyroType(name string) (GyroType, bool) {
	switch normalizeToken(name) {
	case "", "STANDARD":
		return GyroStandard, true
	case "XL":
		return GyroXL, true
	case "COMPACT":
		return GyroCompact, true
	case "HEAVY_DUTY", "HEAVYDUTY":
		return GyroHeavyDuty, true
	default:
		return "", false
	}
}

// ParseCockpitType maps a cockpit name to its variant
func ParseCockpitType(name string) (CockpitType, bool) {
	switch normalizeToken(name) {
	case "", "STANDARD":
		return CockpitStandard, true
	case "SMALL":
		return CockpitSmall, true
	case "TORSO_MOUNTED", "TORSO":
		return CockpitTorsoMounted, true
	case "COMMAND_CONSOLE":
		return CockpitCommandConsole, true
	default:
		return "", false
	}
}

// ParseStructureType maps a structure name to its variant
func ParseStructureType(name string, techBase TechBase) (StructureType, bool) {
	switch normalizeToken(name) {
	case "", "STANDARD":
		return StructureStandard, true
	case "ENDO_STEEL", "ENDO":
		if techBase == TechBaseClan {
			return StructureEndoSteelClan, true
		}
		return StructureEndoSteelIS, true
	case "ENDO_STEEL_IS":
		return StructureEndoSteelIS, true
	case "ENDO_STEEL_CLAN":
		return StructureEndoSteelClan, true
	default:
		return "", false
	}
}

// ParseArmorType maps an armor name to its variant
func ParseArmorType(name string, techBase TechBase) (ArmorType, bool) {
	clan := techBase == TechBaseClan
	switch normalizeToken(name) {
	case "", "STANDARD":
		return ArmorStandard, true
	case "FERRO_FIBROUS", "FERRO":
		if clan {
			return ArmorFerroFibrousClan, true
		}
		return ArmorFerroFibrousIS, true
	case "FERRO_FIBROUS_IS":
		return ArmorFerroFibrousIS, true
	case "FERRO_FIBROUS_CLAN":
		return ArmorFerroFibrousClan, true
	case "REACTIVE":
		if clan {
			return ArmorReactiveClan, true
		}
		return ArmorReactiveIS, true
	case "REACTIVE_IS":
		return ArmorReactiveIS, true
	case "REACTIVE_CLAN":
		return ArmorReactiveClan, true
	case "STEALTH":
		return ArmorStealth, true
	default:
		return "", false
	}
}

// ParseHeatSinkType maps a heat sink name to its variant
func ParseHeatSinkType(name string, techBase TechBase) (HeatSinkType, bool) {
	switch normalizeToken(name) {
	case "", "SINGLE":
		return HeatSinkSingle, true
	case "DOUBLE":
		if techBase == TechBaseClan {
			return HeatSinkDoubleClan, true
		}
		return HeatSinkDoubleIS, true
	case "DOUBLE_IS":
		return HeatSinkDoubleIS, true
	case "DOUBLE_CLAN":
		return HeatSinkDoubleClan, true
	default:
		return "", false
	}
}

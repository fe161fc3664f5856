// Package mech holds the mech draft data model and the construction tables
// shared by the builder, validator and calculator.
package mech

// TechBase is the faction technology a component is built with
type TechBase string

// Tech bases
const (
	TechBaseInnerSphere TechBase = "INNER_SPHERE"
	TechBaseClan        TechBase = "CLAN"
)

// IsValid checks the tech base is a known value
func (t TechBase) IsValid() bool {
	return t == TechBaseInnerSphere || t == TechBaseClan
}

// String returns the string representation of the tech base
func (t TechBase) String() string {
	return string(t)
}

// AllTechBases lists both tech bases in canonical order
func AllTechBases() []TechBase {
	return []TechBase{TechBaseInnerSphere, TechBaseClan}
}

// TechBaseMode is the draft-wide tech base setting
type TechBaseMode string

// Tech base modes
const (
	TechBaseModeInnerSphere TechBaseMode = "INNER_SPHERE"
	TechBaseModeClan        TechBaseMode = "CLAN"
	TechBaseModeMixed       TechBaseMode = "MIXED"
)

// IsValid checks the mode is a known value
func (m TechBaseMode) IsValid() bool {
	switch m {
	case TechBaseModeInnerSphere, TechBaseModeClan, TechBaseModeMixed:
		return true
	default:
		return false
	}
}

// TechBase returns the single tech base a non-mixed mode stands for
func (m TechBaseMode) TechBase() (TechBase, bool) {
	switch m {
	case TechBaseModeInnerSphere:
		return TechBaseInnerSphere, true
	case TechBaseModeClan:
		return TechBaseClan, true
	default:
		return "", false
	}
}

// ModeFor returns the non-mixed mode matching a tech base
func ModeFor(t TechBase) TechBaseMode {
	if t == TechBaseClan {
		return TechBaseModeClan
	}
	return TechBaseModeInnerSphere
}

// EngineType is the engine variant
type EngineType string

// Engine types
const (
	EngineStandard EngineType = "STANDARD"
	EngineXLIS     EngineType = "XL_IS"
	EngineXLClan   EngineType = "XL_CLAN"
	EngineLight    EngineType = "LIGHT"
	EngineXXL      EngineType = "XXL"
	EngineCompact  EngineType = "COMPACT"
)

// IsValid checks the engine type is known
func (e EngineType) IsValid() bool {
	switch e {
	case EngineStandard, EngineXLIS, EngineXLClan, EngineLight, EngineXXL, EngineCompact:
		return true
	default:
		return false
	}
}

// GyroType is the gyro variant
type GyroType string

// Gyro types
const (
	GyroStandard  GyroType = "STANDARD"
	GyroXL        GyroType = "XL"
	GyroCompact   GyroType = "COMPACT"
	GyroHeavyDuty GyroType = "HEAVY_DUTY"
)

// IsValid checks the gyro type is known
func (g GyroType) IsValid() bool {
	switch g {
	case GyroStandard, GyroXL, GyroCompact, GyroHeavyDuty:
		return true
	default:
		return false
	}
}

// StructureType is the internal structure variant
type StructureType string

// Structure types
const (
	StructureStandard      StructureType = "STANDARD"
	StructureEndoSteelIS   StructureType = "ENDO_STEEL_IS"
	StructureEndoSteelClan StructureType = "ENDO_STEEL_CLAN"
)

// IsValid checks the structure type is known
func (s StructureType) IsValid() bool {
	switch s {
	case StructureStandard, StructureEndoSteelIS, StructureEndoSteelClan:
		return true
	default:
		return false
	}
}

// IsEndoSteel reports whether the structure is any endo steel variant
func (s StructureType) IsEndoSteel() bool {
	return s == StructureEndoSteelIS || s == StructureEndoSteelClan
}

// CockpitType is the cockpit variant
type CockpitType string

// Cockpit types
const (
	CockpitStandard       CockpitType = "STANDARD"
	CockpitSmall          CockpitType = "SMALL"
	CockpitTorsoMounted   CockpitType = "TORSO_MOUNTED"
	CockpitCommandConsole CockpitType = "COMMAND_CONSOLE"
)

// IsValid checks the cockpit type is known
func (c CockpitType) IsValid() bool {
	switch c {
	case CockpitStandard, CockpitSmall, CockpitTorsoMounted, CockpitCommandConsole:
		return true
	default:
		return false
	}
}

// ArmorType is the armor variant
type ArmorType string

// Armor types
const (
	ArmorStandard         ArmorType = "STANDARD"
	ArmorFerroFibrousIS   ArmorType = "FERRO_FIBROUS_IS"
	ArmorFerroFibrousClan ArmorType = "FERRO_FIBROUS_CLAN"
	ArmorReactiveIS       ArmorType = "REACTIVE_IS"
	ArmorReactiveClan     ArmorType = "REACTIVE_CLAN"
	ArmorStealth          ArmorType = "STEALTH"
)

// IsValid checks the armor type is known
func (a ArmorType) IsValid() bool {
	_, ok := armorPointsPerTon[a]
	return ok
}

// IsFerroFibrous reports whether the armor is a ferro-fibrous variant
func (a ArmorType) IsFerroFibrous() bool {
	return a == ArmorFerroFibrousIS || a == ArmorFerroFibrousClan
}

// IsReactive reports whether the armor is a reactive variant
func (a ArmorType) IsReactive() bool {
	return a == ArmorReactiveIS || a == ArmorReactiveClan
}

// HeatSinkType is the heat sink variant
type HeatSinkType string

// Heat sink types
const (
	HeatSinkSingle     HeatSinkType = "SINGLE"
	HeatSinkDoubleIS   HeatSinkType = "DOUBLE_IS"
	HeatSinkDoubleClan HeatSinkType = "DOUBLE_CLAN"
)

// IsValid checks the heat sink type is known
func (h HeatSinkType) IsValid() bool {
	switch h {
	case HeatSinkSingle, HeatSinkDoubleIS, HeatSinkDoubleClan:
		return true
	default:
		return false
	}
}

// IsDouble reports whether each sink dissipates two points of heat
func (h HeatSinkType) IsDouble() bool {
	return h == HeatSinkDoubleIS || h == HeatSinkDoubleClan
}

// ComponentCategory is a selectable component slot on the draft. Each
// category has exactly one selection field.
type ComponentCategory string

// Component categories
const (
	CategoryEngine    ComponentCategory = "ENGINE"
	CategoryGyro      ComponentCategory = "GYRO"
	CategoryStructure ComponentCategory = "STRUCTURE"
	CategoryCockpit   ComponentCategory = "COCKPIT"
	CategoryHeatSink  ComponentCategory = "HEAT_SINK"
	CategoryArmor     ComponentCategory = "ARMOR"
)

// AllComponentCategories lists every category in revalidation order
func AllComponentCategories() []ComponentCategory {
	return []ComponentCategory{
		CategoryEngine,
		CategoryGyro,
		CategoryStructure,
		CategoryCockpit,
		CategoryHeatSink,
		CategoryArmor,
	}
}

// Subsystem is a group of components whose tech base can be chosen
// independently in mixed mode.
type Subsystem string

// Subsystems
const (
	SubsystemChassis   Subsystem = "CHASSIS"
	SubsystemGyro      Subsystem = "GYRO"
	SubsystemEngine    Subsystem = "ENGINE"
	SubsystemHeatSink  Subsystem = "HEAT_SINK"
	SubsystemArmor     Subsystem = "ARMOR"
	SubsystemMovement  Subsystem = "MOVEMENT"
	SubsystemEquipment Subsystem = "EQUIPMENT"
)

// AllSubsystems lists every subsystem
func AllSubsystems() []Subsystem {
	return []Subsystem{
		SubsystemChassis,
		SubsystemGyro,
		SubsystemEngine,
		SubsystemHeatSink,
		SubsystemArmor,
		SubsystemMovement,
		SubsystemEquipment,
	}
}

// IsValid checks the subsystem is known
func (s Subsystem) IsValid() bool {
	for _, known := range AllSubsystems() {
		if s == known {
			return true
		}
	}
	return false
}

// Categories returns the component categories a subsystem governs.
// MOVEMENT and EQUIPMENT own mounted items only.
func (s Subsystem) Categories() []ComponentCategory {
	switch s {
	case SubsystemChassis:
		return []ComponentCategory{CategoryStructure, CategoryCockpit}
	case SubsystemGyro:
		return []ComponentCategory{CategoryGyro}
	case SubsystemEngine:
		return []ComponentCategory{CategoryEngine}
	case SubsystemHeatSink:
		return []ComponentCategory{CategoryHeatSink}
	case SubsystemArmor:
		return []ComponentCategory{CategoryArmor}
	default:
		return nil
	}
}

// SubsystemOf returns the subsystem that governs a component category
func SubsystemOf(c ComponentCategory) Subsystem {
	switch c {
	case CategoryStructure, CategoryCockpit:
		return SubsystemChassis
	case CategoryGyro:
		return SubsystemGyro
	case CategoryEngine:
		return SubsystemEngine
	case CategoryHeatSink:
		return SubsystemHeatSink
	case CategoryArmor:
		return SubsystemArmor
	default:
		return ""
	}
}

package mech

import "math"

// Construction limits
const (
	MinTonnage        = 20
	MaxTonnage        = 100
	TonnageStep       = 5
	MinEngineRating   = 10
	MaxEngineRating   = 400
	EngineRatingStep  = 5
	MinHeatSinks      = 10
	MaxHeadArmor      = 9
	CockpitWeight     = 3.0
	TotalCriticalSlot = 78

	// IntegralHeatSinks is the number of heat sinks that weigh and cost
	// nothing beyond the engine.
	IntegralHeatSinks = 10
)

// structureRow holds internal structure points for one tonnage:
// center torso, each side torso, each arm, each leg. The head is always 3.
type structureRow struct {
	centerTorso int
	sideTorso   int
	arm         int
	leg         int
}

const headStructure = 3

var structureTable = map[int]structureRow{
	20:  {6, 5, 3, 4},
	25:  {8, 6, 4, 6},
	30:  {10, 7, 5, 7},
	35:  {11, 8, 6, 8},
	40:  {12, 10, 6, 10},
	45:  {14, 11, 7, 11},
	50:  {16, 12, 8, 12},
	55:  {18, 13, 9, 13},
	60:  {20, 14, 10, 14},
	65:  {21, 15, 10, 15},
	70:  {22, 15, 11, 15},
	75:  {23, 16, 12, 16},
	80:  {25, 17, 13, 17},
	85:  {27, 18, 14, 18},
	90:  {29, 19, 15, 19},
	95:  {30, 20, 16, 20},
	100: {31, 21, 17, 21},
}

// IsValidTonnage reports whether a tonnage is buildable
func IsValidTonnage(tonnage int) bool {
	return tonnage >= MinTonnage && tonnage <= MaxTonnage && tonnage%TonnageStep == 0
}

// StructurePoints returns the internal structure points of a location at a
// tonnage, or 0 for tonnages off the table.
func StructurePoints(tonnage int, loc Location) int {
	row, ok := structureTable[tonnage]
	if !ok {
		return 0
	}
	switch loc {
	case LocationHead:
		return headStructure
	case LocationCenterTorso:
		return row.centerTorso
	case LocationLeftTorso, LocationRightTorso:
		return row.sideTorso
	case LocationLeftArm, LocationRightArm:
		return row.arm
	case LocationLeftLeg, LocationRightLeg:
		return row.leg
	default:
		return 0
	}
}

// TotalStructurePoints sums structure points over all eight locations
func TotalStructurePoints(tonnage int) int {
	total := 0
	for _, loc := range AllLocations() {
		total += StructurePoints(tonnage, loc)
	}
	return total
}

// MaxArmor returns the most armor (front plus rear) a location may carry
func MaxArmor(tonnage int, loc Location) int {
	if loc == LocationHead {
		return MaxHeadArmor
	}
	return 2 * StructurePoints(tonnage, loc)
}

// TotalMaxArmor sums MaxArmor over all eight locations
func TotalMaxArmor(tonnage int) int {
	total := 0
	for _, loc := range AllLocations() {
		total += MaxArmor(tonnage, loc)
	}
	return total
}

// SlotCapacity returns the number of critical slots in a location
func SlotCapacity(loc Location) int {
	switch loc {
	case LocationHead, LocationLeftLeg, LocationRightLeg:
		return 6
	case LocationCenterTorso, LocationLeftTorso, LocationRightTorso,
		LocationLeftArm, LocationRightArm:
		return 12
	default:
		return 0
	}
}

// standardEngineWeight is the standard fusion engine weight in tons, indexed
// by rating/5.
var standardEngineWeight = [...]float64{
	0, 0, 0.5, 0.5, 0.5, 0.5, 1, 1, 1, 1, // 0-45
	1.5, 1.5, 1.5, 2, 2, 2, 2.5, 2.5, 3, 3, // 50-95
	3, 3.5, 3.5, 4, 4, 4, 4.5, 4.5, 5, 5, // 100-145
	5.5, 5.5, 6, 6, 6, 7, 7, 7.5, 7.5, 8, // 150-195
	8.5, 8.5, 9, 9.5, 10, 10, 10.5, 11, 11.5, 12, // 200-245
	12.5, 13, 13.5, 14, 14.5, 15.5, 16, 16.5, 17.5, 18, // 250-295
	19, 19.5, 20.5, 21.5, 22.5, 23.5, 24.5, 25.5, 27, 28.5, // 300-345
	29.5, 31.5, 33, 34.5, 36.5, 38.5, 41, 43.5, 46, 49, // 350-395
	52.5, // 400
}

var engineWeightMultiplier = map[EngineType]float64{
	EngineStandard: 1.0,
	EngineCompact:  1.0,
	EngineXXL:      1.0,
	EngineXLIS:     0.5,
	EngineLight:    0.75,
	EngineXLClan:   0.5,
}

// EngineWeight returns the engine weight in tons rounded up to the half ton.
// Ratings off the table weigh 0.
func EngineWeight(engineType EngineType, rating int) float64 {
	if rating < MinEngineRating || rating > MaxEngineRating || rating%EngineRatingStep != 0 {
		return 0
	}
	mult, ok := engineWeightMultiplier[engineType]
	if !ok {
		mult = 1.0
	}
	return CeilHalf(standardEngineWeight[rating/EngineRatingStep] * mult)
}

// GyroWeight returns ceil(rating/100) tons
func GyroWeight(rating int) float64 {
	if rating <= 0 {
		return 0
	}
	return math.Ceil(float64(rating) / 100)
}

// StructureWeight is ten percent of tonnage
func StructureWeight(tonnage int) float64 {
	return float64(tonnage) / 10
}

// HeatSinkWeight counts one ton per heat sink beyond the integral ten
func HeatSinkWeight(count int) float64 {
	return math.Max(0, float64(count-IntegralHeatSinks))
}

var armorPointsPerTon = map[ArmorType]float64{
	ArmorStandard:         16,
	ArmorFerroFibrousIS:   17.92,
	ArmorFerroFibrousClan: 19.2,
	ArmorReactiveIS:       16,
	ArmorReactiveClan:     16,
	ArmorStealth:          16,
}

// ArmorPointsPerTon returns armor points per ton, defaulting to standard
func ArmorPointsPerTon(a ArmorType) float64 {
	if v, ok := armorPointsPerTon[a]; ok {
		return v
	}
	return armorPointsPerTon[ArmorStandard]
}

// ArmorWeight returns the tonnage needed for points of armor, rounded up to
// the half ton.
func ArmorWeight(a ArmorType, points int) float64 {
	if points <= 0 {
		return 0
	}
	return CeilHalf(float64(points) / ArmorPointsPerTon(a))
}

// CeilHalf rounds up to the next half ton
func CeilHalf(v float64) float64 {
	return math.Ceil(v*2) / 2
}

// speedFactors is the BV2 speed factor indexed by effective MP, 0 through 25
var speedFactors = [...]float64{
	0.44, 0.54, 0.65, 0.77, 0.88, 1.0, 1.12, 1.24, 1.37, 1.5,
	1.63, 1.76, 1.89, 2.02, 2.16, 2.3, 2.44, 2.58, 2.72, 2.86,
	3.0, 3.15, 3.29, 3.44, 3.59, 3.74,
}

// SpeedFactor looks up the speed factor, clamping MP to the table domain
func SpeedFactor(effectiveMP int) float64 {
	if effectiveMP < 0 {
		effectiveMP = 0
	}
	if effectiveMP >= len(speedFactors) {
		effectiveMP = len(speedFactors) - 1
	}
	return speedFactors[effectiveMP]
}

var jumpJetIDs = map[string]bool{
	"jump-jet":               true,
	"jump-jet-clan":          true,
	"improved-jump-jet":      true,
	"improved-jump-jet-clan": true,
}

// IsJumpJet reports whether an equipment id is a jump jet
func IsJumpJet(equipmentID string) bool {
	return jumpJetIDs[equipmentID]
}

// RunMP is floor(walk x 1.5)
func RunMP(walkMP int) int {
	return int(math.Floor(float64(walkMP) * 1.5))
}

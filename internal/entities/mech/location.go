package mech

import "strings"

// Location is one of the eight fixed biped mech locations
type Location string

// Locations
const (
	LocationHead        Location = "HEAD"
	LocationCenterTorso Location = "CENTER_TORSO"
	LocationLeftTorso   Location = "LEFT_TORSO"
	LocationRightTorso  Location = "RIGHT_TORSO"
	LocationLeftArm     Location = "LEFT_ARM"
	LocationRightArm    Location = "RIGHT_ARM"
	LocationLeftLeg     Location = "LEFT_LEG"
	LocationRightLeg    Location = "RIGHT_LEG"
)

// AllLocations returns the locations in record-sheet order
func AllLocations() []Location {
	return []Location{
		LocationHead,
		LocationCenterTorso,
		LocationLeftTorso,
		LocationRightTorso,
		LocationLeftArm,
		LocationRightArm,
		LocationLeftLeg,
		LocationRightLeg,
	}
}

// IsValid checks the location is one of the eight fixed locations
func (l Location) IsValid() bool {
	switch l {
	case LocationHead, LocationCenterTorso, LocationLeftTorso, LocationRightTorso,
		LocationLeftArm, LocationRightArm, LocationLeftLeg, LocationRightLeg:
		return true
	default:
		return false
	}
}

// IsTorso reports whether the location can carry rear armor
func (l Location) IsTorso() bool {
	return l == LocationCenterTorso || l == LocationLeftTorso || l == LocationRightTorso
}

// String returns the string representation of the location
func (l Location) String() string {
	return string(l)
}

var locationAliases = map[string]Location{
	"HD":           LocationHead,
	"H":            LocationHead,
	"CT":           LocationCenterTorso,
	"LT":           LocationLeftTorso,
	"RT":           LocationRightTorso,
	"LA":           LocationLeftArm,
	"RA":           LocationRightArm,
	"LL":           LocationLeftLeg,
	"RL":           LocationRightLeg,
	"CENTERTORSO":  LocationCenterTorso,
	"LEFTTORSO":    LocationLeftTorso,
	"RIGHTTORSO":   LocationRightTorso,
	"LEFTARM":      LocationLeftArm,
	"RIGHTARM":     LocationRightArm,
	"LEFTLEG":      LocationLeftLeg,
	"RIGHTLEG":     LocationRightLeg,
	"CENTER TORSO": LocationCenterTorso,
	"LEFT TORSO":   LocationLeftTorso,
	"RIGHT TORSO":  LocationRightTorso,
	"LEFT ARM":     LocationLeftArm,
	"RIGHT ARM":    LocationRightArm,
	"LEFT LEG":     LocationLeftLeg,
	"RIGHT LEG":    LocationRightLeg,
}

// ParseLocation accepts canonical names, record-sheet abbreviations (CT, LA,
// ...) and spaced names ("Left Arm"), case-insensitively.
func ParseLocation(s string) (Location, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if loc := Location(upper); loc.IsValid() {
		return loc, true
	}
	if loc, ok := locationAliases[upper]; ok {
		return loc, true
	}
	return "", false
}

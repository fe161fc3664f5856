// Package validation checks a draft against the construction rules. It never
// changes the draft; every violation is reported as an Issue.
package validation

// Severity grades an issue
type Severity string

// Severities
const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
	SeverityInfo    Severity = "INFO"
)

// Issue codes
const (
	CodeInvalidTonnage        = "INVALID_TONNAGE"
	CodeOverweight            = "OVERWEIGHT"
	CodeArmorExceedsMax       = "ARMOR_EXCEEDS_MAX"
	CodeSlotsExceeded         = "SLOTS_EXCEEDED"
	CodeTechBaseIncompatible  = "TECH_BASE_INCOMPATIBLE"
	CodeInvalidEngineRating   = "INVALID_ENGINE_RATING"
	CodeInsufficientHeatSinks = "INSUFFICIENT_HEAT_SINKS"
	CodeRearArmorIgnored      = "REAR_ARMOR_IGNORED"
	CodeUnderweight           = "UNDERWEIGHT"
	CodeEngineRatingMismatch  = "ENGINE_RATING_MISMATCH"
	CodeEquipmentOverBudget   = "EQUIPMENT_OVER_BUDGET"
)

// Issue is one rule finding
type Issue struct {
	Code     string         `json:"code"`
	Message  string         `json:"message"`
	Severity Severity       `json:"severity"`
	Field    string         `json:"field,omitempty"`
	Expected any            `json:"expected,omitempty"`
	Actual   any            `json:"actual,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
}

// Result groups issues by severity. IsValid is true when there are no errors.
type Result struct {
	IsValid  bool    `json:"isValid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Info     []Issue `json:"info"`
}

// Issues returns every issue, errors first
func (r Result) Issues() []Issue {
	out := make([]Issue, 0, len(r.Errors)+len(r.Warnings)+len(r.Info))
	out = append(out, r.Errors...)
	out = append(out, r.Warnings...)
	return append(out, r.Info...)
}

// HasCode reports whether any issue carries the code
func (r Result) HasCode(code string) bool {
	for _, issue := range r.Issues() {
		if issue.Code == code {
			return true
		}
	}
	return false
}

func (r *Result) add(issue Issue) {
	switch issue.Severity {
	case SeverityError:
		r.Errors = append(r.Errors, issue)
	case SeverityWarning:
		r.Warnings = append(r.Warnings, issue)
	default:
		r.Info = append(r.Info, issue)
	}
}

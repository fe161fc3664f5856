package errors

// Code represents an error code
type Code string

// Error codes
const (
	CodeOK                 Code = "OK"
	CodeCanceled           Code = "CANCELED"
	CodeInvalidArgument    Code = "INVALID_ARGUMENT"
	CodeDeadlineExceeded   Code = "DEADLINE_EXCEEDED"
	CodeNotFound           Code = "NOT_FOUND"
	CodeAlreadyExists      Code = "ALREADY_EXISTS"
	CodeFailedPrecondition Code = "FAILED_PRECONDITION"
	CodeUnimplemented      Code = "UNIMPLEMENTED"
	CodeInternal           Code = "INTERNAL"
	CodeUnavailable        Code = "UNAVAILABLE"

	// Construction failures raised while building a mech draft. They carry
	// a human-readable reasons list in the "reasons" metadata entry.
	CodeInvalidTonnage      Code = "INVALID_TONNAGE"
	CodeInvalidEngineRating Code = "INVALID_ENGINE_RATING"
)

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// IsConstruction reports whether the code is a draft construction failure
func (c Code) IsConstruction() bool {
	return c == CodeInvalidTonnage || c == CodeInvalidEngineRating
}

package registry

import "errors"

// Status is the numeric outcome reported to callers across a process or
// language boundary. The values are part of the wire contract.
type Status int32

const (
	StatusOK                    Status = 0
	StatusUnknownUnit           Status = -1
	StatusIncompatibleDimension Status = -2
	StatusNullOutput            Status = -3
	StatusInvalidValue          Status = -4
)

var statusNames = map[Status]string{
	StatusOK:                    "OK",
	StatusUnknownUnit:           "UNKNOWN_UNIT",
	StatusIncompatibleDimension: "INCOMPATIBLE_DIM",
	StatusNullOutput:            "NULL_OUT",
	StatusInvalidValue:          "INVALID_VALUE",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "UNKNOWN_STATUS"
}

// StatusOf maps an error returned by this package to its Status. Errors
// that match no sentinel map to StatusInvalidValue.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrUnknownUnit):
		return StatusUnknownUnit
	case errors.Is(err, ErrIncompatibleDimension):
		return StatusIncompatibleDimension
	case errors.Is(err, ErrNilOutput):
		return StatusNullOutput
	default:
		return StatusInvalidValue
	}
}

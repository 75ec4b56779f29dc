package technician

import (
	"fmt"

	"fieldservice/internal/pkg/errs"
)

// Status represents the availability state of a technician.
// Unlike the work-order lifecycle there is no transition graph: any status may
// be replaced by any other valid status at any time.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the technician can accept new work orders.
	StatusAvailable

	// StatusBusy means the technician is occupied with assigned work.
	StatusBusy

	// StatusOnBreak means the technician is temporarily away.
	StatusOnBreak

	// StatusOffline means the technician is off shift.
	StatusOffline
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "UNKNOWN",
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
		StatusOnBreak:   "ON_BREAK",
		StatusOffline:   "OFFLINE",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusAvailable: "AVAILABLE",
		StatusBusy:      "BUSY",
		StatusOnBreak:   "ON_BREAK",
		StatusOffline:   "OFFLINE",
	}
}

// StatusFromString parses the wire representation of a technician status.
// Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid technician status", s),
	)
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid technician status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

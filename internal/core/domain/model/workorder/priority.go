package workorder

import (
	"fmt"

	"fieldservice/internal/pkg/errs"
)

// Priority represents the urgency of a work order.
// It is an ordered enumeration: higher values are more urgent.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow can be scheduled at convenience.
	PriorityLow

	// PriorityNormal follows standard scheduling.
	PriorityNormal

	// PriorityHigh should be scheduled soon.
	PriorityHigh

	// PriorityUrgent requires prompt attention.
	PriorityUrgent

	// PriorityEmergency requires immediate attention.
	PriorityEmergency
)

// getPriorityStrings returns a map of Priority values to their wire representations.
func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown:   "UNKNOWN",
		PriorityLow:       "LOW",
		PriorityNormal:    "NORMAL",
		PriorityHigh:      "HIGH",
		PriorityUrgent:    "URGENT",
		PriorityEmergency: "EMERGENCY",
	}
}

// getValidPriorityStrings returns a map of only valid Priority values.
func getValidPriorityStrings() map[Priority]string {
	//nolint:exhaustive // PriorityUnknown is intentionally excluded as it's invalid
	return map[Priority]string{
		PriorityLow:       "LOW",
		PriorityNormal:    "NORMAL",
		PriorityHigh:      "HIGH",
		PriorityUrgent:    "URGENT",
		PriorityEmergency: "EMERGENCY",
	}
}

// PriorityFromString parses the wire representation of a priority.
// Returns an error for unrecognized values.
func PriorityFromString(s string) (Priority, error) {
	for priority, str := range getValidPriorityStrings() {
		if str == s {
			return priority, nil
		}
	}
	return PriorityUnknown, errs.NewValueIsInvalidErrorWithCause(
		"priority is invalid",
		fmt.Errorf("%q is not a valid priority", s),
	)
}

// Validate checks if the Priority value is valid.
func (p Priority) Validate() error {
	if _, ok := getValidPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"priority is invalid",
			fmt.Errorf("%d is not a valid priority", p),
		)
	}
	return nil
}

// String returns the wire representation of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

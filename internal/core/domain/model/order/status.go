package order

import (
	"fmt"

	"kitchen/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Vocabulary (persisted and exchanged by these exact, case-sensitive names):
//
//	Pending ──> InPreparation ──> Ready
//	   ^              │             │
//	   └──────────────┴─────────────┘
//	      (any member may follow any member)
//
// The arrows describe the usual kitchen flow; the state machine itself only
// enforces vocabulary membership, so staff can correct a status in either
// direction.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota
	// Pending is the initial status: the order was received.
	Pending
	// InPreparation indicates the kitchen is working on the order.
	InPreparation
	// Ready indicates the order can be picked up or delivered.
	Ready
)

// getStatusStrings returns the wire names of every valid status.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:       "Pending",
		InPreparation: "InPreparation",
		Ready:         "Ready",
	}
}

// Statuses returns the vocabulary in its natural kitchen order.
func Statuses() []Status {
	return []Status{Pending, InPreparation, Ready}
}

// ParseStatus maps a wire name to its Status. Matching is case-sensitive:
// "pending" and "Pendiente" are rejected just like "bogus".
//
// Example:
//
//	s, err := order.ParseStatus("InPreparation")
//	if err != nil {
//	    // ValueIsInvalidError: not a member of the vocabulary
//	}
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == name {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not one of Pending, InPreparation, Ready", name),
	)
}

// Validate checks that s is a member of the vocabulary.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "Unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ChangeTo returns the status that results from moving s to target.
//
// Both ends must belong to the vocabulary; there is no ordering restriction
// between members. On error the returned status is Unknown and callers must
// keep their current value.
func (s Status) ChangeTo(target Status) (Status, error) {
	if err := s.Validate(); err != nil {
		return Unknown, err
	}
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	return target, nil
}

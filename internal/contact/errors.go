package contact

import (
	"errors"
	"fmt"
	"strings"
)

// Reason names a validation failure.
type Reason string

const (
	// ReasonMissingFields means at least one required field is empty.
	ReasonMissingFields Reason = "missing_fields"
	// ReasonInvalidEmail means the email does not look like local@domain.tld.
	ReasonInvalidEmail Reason = "invalid_email"
)

// ValidationError rejects a submission before anything is sent.
type ValidationError struct {
	Reason Reason
	// Fields lists offending JSON field names when known.
	Fields []string
}

func (e *ValidationError) Error() string {
	switch e.Reason {
	case ReasonMissingFields:
		if len(e.Fields) > 0 {
			return "missing fields: " + strings.Join(e.Fields, ", ")
		}
		return "missing fields"
	case ReasonInvalidEmail:
		return "invalid email"
	default:
		return "invalid submission"
	}
}

// IsValidationReason reports whether err is a ValidationError with reason.
func IsValidationReason(err error, reason Reason) bool {
	var vErr *ValidationError
	return errors.As(err, &vErr) && vErr.Reason == reason
}

// Stage identifies which outbound message failed.
type Stage string

const (
	StageNotify  Stage = "notify_operator"
	StageConfirm Stage = "confirm_submitter"
)

// DeliveryError wraps a provider failure for one stage.
type DeliveryError struct {
	Stage Stage
	Err   error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver %s: %v", e.Stage, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

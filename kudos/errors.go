package kudos

import "fmt"

// ValidationCode identifies which rule a submission failed.
type ValidationCode string

const (
	MissingChannel         ValidationCode = "missing_channel"
	MissingRecipient       ValidationCode = "missing_recipient"
	UnknownRecognitionType ValidationCode = "unknown_recognition_type"
	EmptyMessage           ValidationCode = "empty_message"
)

// ValidationError is a user-correctable input error. It is surfaced back
// into the form and never logged as an incident.
type ValidationError struct {
	Code    ValidationCode
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission (%s): %s", e.Code, e.Message)
}

// DeliveryError means posting the kudos message to the channel failed.
// The audit sinks are never attempted after one of these.
type DeliveryError struct {
	ChannelID string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("posting kudos to channel %s failed: %v", e.ChannelID, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

package kudos

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

// RawSubmission carries the flattened modal values together with the
// identity of the submitter and the target channel, before validation.
type RawSubmission struct {
	SenderID          string
	SenderName        string
	RecipientID       string
	RecipientName     string
	RecognitionTypeID string
	Message           string
	ChannelID         string
}

// Validate checks a raw submission against the catalog and promotes it to a
// Submission. Rules run in order and the first failure wins. The message
// body is kept verbatim; only a trimmed copy is inspected, never stored.
func Validate(raw RawSubmission, catalog *Catalog) (model.Submission, error) {
	if raw.ChannelID == "" {
		return model.Submission{}, &ValidationError{
			Code:    MissingChannel,
			Message: "Please pick a channel to post the kudos in.",
		}
	}
	if raw.RecipientID == "" {
		return model.Submission{}, &ValidationError{
			Code:    MissingRecipient,
			Message: "Please select a coworker to give kudos to.",
		}
	}
	if _, ok := catalog.Get(raw.RecognitionTypeID); !ok {
		return model.Submission{}, &ValidationError{
			Code:    UnknownRecognitionType,
			Message: "Please select a recognition type.",
		}
	}
	if strings.TrimSpace(raw.Message) == "" {
		return model.Submission{}, &ValidationError{
			Code:    EmptyMessage,
			Message: "Please write a kudos message.",
		}
	}

	return model.Submission{
		ID:                uuid.NewString(),
		SenderID:          raw.SenderID,
		SenderName:        raw.SenderName,
		RecipientID:       raw.RecipientID,
		RecipientName:     raw.RecipientName,
		RecognitionTypeID: raw.RecognitionTypeID,
		Message:           raw.Message,
		ChannelID:         raw.ChannelID,
		Timestamp:         time.Now(),
	}, nil
}

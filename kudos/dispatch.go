package kudos

import (
	"context"
	"log"
	"time"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

const (
	postTimeout  = 10 * time.Second
	auditTimeout = 5 * time.Second
)

// MessagePoster posts a rendered message to a channel. *bot.Poster adapts
// the Slack client to this; tests use fakes.
type MessagePoster interface {
	PostMessage(ctx context.Context, channelID, text string) (timestamp string, err error)
}

// AuditSink records a delivered recognition somewhere out of band. Sinks
// are best-effort: a failing sink never fails the dispatch.
type AuditSink interface {
	Name() string
	Log(ctx context.Context, rec model.AuditRecord) error
}

// Result describes a completed dispatch.
type Result struct {
	SubmissionID string
	// MessageTimestamp is the Slack ts of the posted message.
	MessageTimestamp string
	// Audited lists the sinks that recorded the recognition.
	Audited []string
}

// Dispatcher delivers validated submissions: format, post to the channel,
// then fan out to the audit sinks.
type Dispatcher struct {
	catalog         *Catalog
	formatter       Formatter
	poster          MessagePoster
	sinks           []AuditSink
	timestampLayout string
}

// NewDispatcher wires a dispatcher. sinks may be empty.
func NewDispatcher(catalog *Catalog, formatter Formatter, poster MessagePoster, timestampLayout string, sinks ...AuditSink) *Dispatcher {
	if timestampLayout == "" {
		timestampLayout = "2006-01-02 15:04:05"
	}
	return &Dispatcher{
		catalog:         catalog,
		formatter:       formatter,
		poster:          poster,
		sinks:           sinks,
		timestampLayout: timestampLayout,
	}
}

// Dispatch posts the kudos message and, on success, logs it to every
// configured audit sink. Posting failure is returned as *DeliveryError and
// stops the dispatch before any sink runs. Sink failures are logged as
// warnings and never affect the outcome: the user-visible recognition has
// already happened.
func (d *Dispatcher) Dispatch(ctx context.Context, sub model.Submission) (*Result, error) {
	rt, ok := d.catalog.Get(sub.RecognitionTypeID)
	if !ok {
		// The validator already checked this; a miss here means the
		// submission bypassed validation.
		return nil, &ValidationError{
			Code:    UnknownRecognitionType,
			Message: "Please select a recognition type.",
		}
	}

	text := d.formatter.Format(sub, rt)

	postCtx, cancel := context.WithTimeout(ctx, postTimeout)
	defer cancel()
	ts, err := d.poster.PostMessage(postCtx, sub.ChannelID, text)
	if err != nil {
		return nil, &DeliveryError{ChannelID: sub.ChannelID, Err: err}
	}

	result := &Result{SubmissionID: sub.ID, MessageTimestamp: ts}
	if len(d.sinks) == 0 {
		return result, nil
	}

	rec := d.auditRecord(sub, rt)
	for _, sink := range d.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, auditTimeout)
		err := sink.Log(sinkCtx, rec)
		cancel()
		if err != nil {
			log.Printf("Warning: audit sink %s failed for submission %s: %v", sink.Name(), sub.ID, err)
			continue
		}
		result.Audited = append(result.Audited, sink.Name())
	}
	return result, nil
}

func (d *Dispatcher) auditRecord(sub model.Submission, rt model.RecognitionType) model.AuditRecord {
	return model.AuditRecord{
		Timestamp:       sub.Timestamp.Format(d.timestampLayout),
		RecipientName:   sub.RecipientName,
		RecipientID:     sub.RecipientID,
		RecognitionType: rt.Title,
		Message:         sub.Message,
		SenderName:      sub.SenderName,
		SenderID:        sub.SenderID,
		ChannelID:       sub.ChannelID,
	}
}

package model

import "time"

// RecognitionType is one selectable category of kudos.
type RecognitionType struct {
	ID    string `mapstructure:"id"`
	Title string `mapstructure:"title"`
	Emoji string `mapstructure:"emoji"`
}

// Submission is a validated kudos submission flowing through the pipeline.
// It lives in memory only; persistence is the audit sinks' concern.
type Submission struct {
	ID                string
	SenderID          string
	SenderName        string
	RecipientID       string
	RecipientName     string
	RecognitionTypeID string
	Message           string
	ChannelID         string
	Timestamp         time.Time
}

// AuditRecord is the projection of a Submission written to the audit sinks.
// Field order matches the sink header row: Timestamp, Recipient,
// Recipient ID, Recognition Type, Message, Sender, Sender ID, Channel ID.
type AuditRecord struct {
	Timestamp       string
	RecipientName   string
	RecipientID     string
	RecognitionType string
	Message         string
	SenderName      string
	SenderID        string
	ChannelID       string
}

// Row returns the record's fields in sink column order.
func (r AuditRecord) Row() []string {
	return []string{
		r.Timestamp, r.RecipientName, r.RecipientID, r.RecognitionType,
		r.Message, r.SenderName, r.SenderID, r.ChannelID,
	}
}

package kudos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRaw() RawSubmission {
	return RawSubmission{
		SenderID:          "U1",
		SenderName:        "Alice",
		RecipientID:       "U2",
		RecipientName:     "Bob",
		RecognitionTypeID: "helping_hand",
		Message:           "Thanks for the review!",
		ChannelID:         "C1",
	}
}

func TestValidate(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	tests := []struct {
		name     string
		mutate   func(*RawSubmission)
		wantCode ValidationCode
	}{
		{
			name:     "missing channel",
			mutate:   func(r *RawSubmission) { r.ChannelID = "" },
			wantCode: MissingChannel,
		},
		{
			name:     "missing recipient",
			mutate:   func(r *RawSubmission) { r.RecipientID = "" },
			wantCode: MissingRecipient,
		},
		{
			name:     "missing recognition type",
			mutate:   func(r *RawSubmission) { r.RecognitionTypeID = "" },
			wantCode: UnknownRecognitionType,
		},
		{
			name:     "unknown recognition type",
			mutate:   func(r *RawSubmission) { r.RecognitionTypeID = "nonexistent" },
			wantCode: UnknownRecognitionType,
		},
		{
			name:     "empty message",
			mutate:   func(r *RawSubmission) { r.Message = "" },
			wantCode: EmptyMessage,
		},
		{
			name:     "whitespace-only message",
			mutate:   func(r *RawSubmission) { r.Message = "  \n\t " },
			wantCode: EmptyMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := validRaw()
			tt.mutate(&raw)

			_, err := Validate(raw, catalog)
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantCode, verr.Code)
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	raw := validRaw()
	raw.RecipientID = ""
	raw.Message = ""

	_, err = Validate(raw, catalog)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, MissingRecipient, verr.Code)
}

func TestValidateSuccess(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	sub, err := Validate(validRaw(), catalog)
	require.NoError(t, err)

	assert.NotEmpty(t, sub.ID)
	assert.False(t, sub.Timestamp.IsZero())
	assert.Equal(t, "U1", sub.SenderID)
	assert.Equal(t, "U2", sub.RecipientID)
	assert.Equal(t, "helping_hand", sub.RecognitionTypeID)
	assert.Equal(t, "C1", sub.ChannelID)
}

func TestValidateKeepsMessageVerbatim(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	raw := validRaw()
	raw.Message = "  leading and trailing kept  "

	sub, err := Validate(raw, catalog)
	require.NoError(t, err)
	assert.Equal(t, "  leading and trailing kept  ", sub.Message)
}

func TestValidateSubmissionsAreIndependent(t *testing.T) {
	catalog, err := NewCatalog(testTypes())
	require.NoError(t, err)

	a, err := Validate(validRaw(), catalog)
	require.NoError(t, err)
	b, err := Validate(validRaw(), catalog)
	require.NoError(t, err)

	// Repeated kudos to the same person are permitted and distinct.
	assert.NotEqual(t, a.ID, b.ID)
}

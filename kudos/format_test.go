package kudos

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

func sampleSubmission() model.Submission {
	return model.Submission{
		ID:                "sub-1",
		SenderID:          "U1",
		SenderName:        "Alice",
		RecipientID:       "U2",
		RecipientName:     "Bob",
		RecognitionTypeID: "helping_hand",
		Message:           "Thanks for the review!",
		ChannelID:         "C1",
	}
}

func TestFormatScenario(t *testing.T) {
	f := Formatter{DefaultEmoji: "👏"}
	rt := model.RecognitionType{ID: "helping_hand", Title: "Helping Hand", Emoji: "🤝"}

	text := f.Format(sampleSubmission(), rt)

	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Bob")
	assert.Contains(t, text, "🤝")
	assert.Contains(t, text, "Helping Hand")
	assert.Contains(t, text, "Thanks for the review!")
	assert.Contains(t, text, "<@U1>")
	assert.Contains(t, text, "<@U2>")
	assert.Contains(t, text, "gave kudos to")
}

func TestFormatIsPure(t *testing.T) {
	f := Formatter{DefaultEmoji: "👏"}
	rt := model.RecognitionType{ID: "helping_hand", Title: "Helping Hand", Emoji: "🤝"}
	sub := sampleSubmission()

	first := f.Format(sub, rt)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, f.Format(sub, rt))
	}
}

func TestFormatMessageVerbatim(t *testing.T) {
	f := Formatter{DefaultEmoji: "👏"}
	rt := model.RecognitionType{ID: "helping_hand", Title: "Helping Hand", Emoji: "🤝"}

	sub := sampleSubmission()
	sub.Message = "line one\nline two with *markup* and :tada: and <@U3>"

	text := f.Format(sub, rt)
	assert.Contains(t, text, sub.Message)
}

func TestFormatWithoutNames(t *testing.T) {
	f := Formatter{DefaultEmoji: "👏"}
	rt := model.RecognitionType{ID: "helping_hand", Title: "Helping Hand", Emoji: "🤝"}

	sub := sampleSubmission()
	sub.SenderName = ""
	sub.RecipientName = ""

	text := f.Format(sub, rt)
	assert.Contains(t, text, "<@U1> gave kudos to <@U2>")
	assert.NotContains(t, text, "()")
}

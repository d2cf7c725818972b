package kudos

import (
	"fmt"
	"strings"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

// Formatter renders a validated submission into the channel message.
type Formatter struct {
	// DefaultEmoji frames the headline, 👏 unless configured otherwise.
	DefaultEmoji string
}

// Format builds the kudos message. It is a pure function of its inputs:
// identical submission and recognition type always yield an identical
// string, and the message body is embedded verbatim.
func (f Formatter) Format(sub model.Submission, rt model.RecognitionType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s gave kudos to %s for being a *%s* %s %s\n\n",
		f.DefaultEmoji,
		mention(sub.SenderID, sub.SenderName),
		mention(sub.RecipientID, sub.RecipientName),
		rt.Title, rt.Emoji, f.DefaultEmoji)
	fmt.Fprintf(&b, "*Message:*\n%s\n\n", sub.Message)
	fmt.Fprintf(&b, "*From:* <@%s>\n", sub.SenderID)
	return b.String()
}

// mention renders a user mention, with the display name alongside when
// known so the recognition stays readable outside Slack (audit exports,
// notifications).
func mention(id, name string) string {
	if name == "" {
		return fmt.Sprintf("<@%s>", id)
	}
	return fmt.Sprintf("<@%s> (%s)", id, name)
}

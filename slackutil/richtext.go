// Package slackutil contains helpers for picking apart Slack payloads.
package slackutil

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"
)

// ExtractRichText flattens a rich_text_input value into message text.
// Plain text passes through verbatim, emoji become :name: tokens and user
// mentions become <@ID> so Slack re-renders them when the message is
// posted. Anything else (lists, quotes) is ignored, matching what the
// kudos form accepts.
func ExtractRichText(block slack.RichTextBlock) string {
	var b strings.Builder
	for _, el := range block.Elements {
		section, ok := el.(*slack.RichTextSection)
		if !ok {
			continue
		}
		for _, se := range section.Elements {
			switch e := se.(type) {
			case *slack.RichTextSectionTextElement:
				b.WriteString(e.Text)
			case *slack.RichTextSectionEmojiElement:
				fmt.Fprintf(&b, ":%s:", e.Name)
			case *slack.RichTextSectionUserElement:
				fmt.Fprintf(&b, "<@%s>", e.UserID)
			case *slack.RichTextSectionLinkElement:
				if e.Text != "" {
					b.WriteString(e.Text)
				} else {
					b.WriteString(e.URL)
				}
			}
		}
	}
	return b.String()
}

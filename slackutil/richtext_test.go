package slackutil

import (
	"testing"

	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func section(elements ...slack.RichTextSectionElement) *slack.RichTextSection {
	return slack.NewRichTextSection(elements...)
}

func TestExtractRichTextEmpty(t *testing.T) {
	assert.Equal(t, "", ExtractRichText(slack.RichTextBlock{}))
}

func TestExtractRichTextTextAndEmoji(t *testing.T) {
	block := slack.RichTextBlock{
		Elements: []slack.RichTextElement{
			section(
				slack.NewRichTextSectionTextElement("Great job ", nil),
				slack.NewRichTextSectionEmojiElement("tada", 2, nil),
				slack.NewRichTextSectionTextElement("!", nil),
			),
		},
	}
	assert.Equal(t, "Great job :tada:!", ExtractRichText(block))
}

func TestExtractRichTextMentionAndLink(t *testing.T) {
	block := slack.RichTextBlock{
		Elements: []slack.RichTextElement{
			section(
				slack.NewRichTextSectionTextElement("Thanks ", nil),
				slack.NewRichTextSectionUserElement("U2", nil),
				slack.NewRichTextSectionTextElement(" see ", nil),
				slack.NewRichTextSectionLinkElement("https://example.com", "the doc", nil),
			),
		},
	}
	assert.Equal(t, "Thanks <@U2> see the doc", ExtractRichText(block))
}

func TestExtractRichTextMultipleSections(t *testing.T) {
	block := slack.RichTextBlock{
		Elements: []slack.RichTextElement{
			section(slack.NewRichTextSectionTextElement("line one", nil)),
			section(slack.NewRichTextSectionTextElement("\nline two", nil)),
		},
	}
	assert.Equal(t, "line one\nline two", ExtractRichText(block))
}

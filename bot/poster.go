package bot

import (
	"context"

	"github.com/slack-go/slack"
)

// Poster adapts the Slack client to kudos.MessagePoster.
type Poster struct {
	api *slack.Client
}

// NewPoster wraps a Slack client for the dispatcher.
func NewPoster(api *slack.Client) Poster {
	return Poster{api: api}
}

// PostMessage posts text to a channel and returns the message timestamp.
func (p Poster) PostMessage(ctx context.Context, channelID, text string) (string, error) {
	_, ts, err := p.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	return ts, err
}

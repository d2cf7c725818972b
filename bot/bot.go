package bot

import (
	"context"
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/jinagamvasubabu/kudos-slack-bot/config"
)

var api *slack.Client

// NewClient creates the Slack API client from the loaded configuration.
func NewClient() *slack.Client {
	api = slack.New(
		config.Cfg.Slack.BotToken,
		slack.OptionAppLevelToken(config.Cfg.Slack.AppToken),
		slack.OptionDebug(config.Cfg.Slack.Debug),
	)
	return api
}

// GetClient returns the current Slack API client.
func GetClient() *slack.Client {
	return api
}

// Start opens the Socket Mode connection and blocks until ctx is cancelled
// or the connection fails for good.
func Start(ctx context.Context) error {
	client := socketmode.New(api, socketmode.OptionDebug(config.Cfg.Slack.Debug))

	go runEventLoop(client)

	log.Println("Bot is now running. Press CTRL-C to exit.")
	err := client.RunContext(ctx)
	if ctx.Err() != nil {
		return nil
	}
	return err
}

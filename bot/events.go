package bot

import (
	"log"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/socketmode"

	"github.com/jinagamvasubabu/kudos-slack-bot/handler"
)

// runEventLoop drains the socket-mode event channel and feeds the routers.
// Slash commands and shortcuts are acked immediately and handled in their
// own goroutine; view submissions are validated before the ack so the
// error payload can ride on it.
func runEventLoop(client *socketmode.Client) {
	for evt := range client.Events {
		switch evt.Type {
		case socketmode.EventTypeConnecting:
			log.Println("Connecting to Slack with Socket Mode...")
		case socketmode.EventTypeConnectionError:
			log.Printf("Connection failed: %v", evt.Data)
		case socketmode.EventTypeConnected:
			log.Println("Connected to Slack with Socket Mode.")
		case socketmode.EventTypeSlashCommand:
			cmd, ok := evt.Data.(slack.SlashCommand)
			if !ok {
				continue
			}
			client.Ack(*evt.Request)
			go handler.OnSlashCommand(api, cmd)
		case socketmode.EventTypeInteractive:
			callback, ok := evt.Data.(slack.InteractionCallback)
			if !ok {
				continue
			}
			if callback.Type == slack.InteractionTypeViewSubmission {
				if resp := handler.OnInteraction(api, callback); resp != nil {
					client.Ack(*evt.Request, resp)
				} else {
					client.Ack(*evt.Request)
				}
				continue
			}
			client.Ack(*evt.Request)
			go handler.OnInteraction(api, callback)
		}
	}
}

package handler

import (
	"github.com/slack-go/slack"
)

var (
	commandHandlers  = make(map[string]func(api *slack.Client, cmd slack.SlashCommand))
	shortcutHandlers = make(map[string]func(api *slack.Client, callback slack.InteractionCallback))
	viewHandlers     = make(map[string]func(api *slack.Client, callback slack.InteractionCallback) *slack.ViewSubmissionResponse)
)

// AddCommandHandler registers a handler for a slash command ("/kudos").
func AddCommandHandler(command string, handler func(api *slack.Client, cmd slack.SlashCommand)) {
	commandHandlers[command] = handler
}

// AddShortcutHandler registers a handler for a global shortcut callback id.
func AddShortcutHandler(callbackID string, handler func(api *slack.Client, callback slack.InteractionCallback)) {
	shortcutHandlers[callbackID] = handler
}

// AddViewHandler registers a handler for a modal view submission. The
// returned response, if any, is sent as the ack payload so validation
// errors render inline in the modal.
func AddViewHandler(callbackID string, handler func(api *slack.Client, callback slack.InteractionCallback) *slack.ViewSubmissionResponse) {
	viewHandlers[callbackID] = handler
}

// OnSlashCommand is the main slash command router.
func OnSlashCommand(api *slack.Client, cmd slack.SlashCommand) {
	if handler, ok := commandHandlers[cmd.Command]; ok {
		handler(api, cmd)
	}
}

// OnInteraction is the main interaction router. It should be fed every
// interactive payload from the socket-mode event loop.
func OnInteraction(api *slack.Client, callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	switch callback.Type {
	case slack.InteractionTypeShortcut:
		if handler, ok := shortcutHandlers[callback.CallbackID]; ok {
			handler(api, callback)
		}
	case slack.InteractionTypeViewSubmission:
		if handler, ok := viewHandlers[callback.View.CallbackID]; ok {
			return handler(api, callback)
		}
	}
	return nil
}

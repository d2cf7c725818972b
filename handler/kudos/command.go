package kudos

import (
	"log"

	"github.com/slack-go/slack"
)

// KudosCommandHandler handles /kudos: it opens the kudos form with the
// invoking channel carried in the modal's private metadata.
func KudosCommandHandler(api *slack.Client, cmd slack.SlashCommand) {
	openKudosModal(api, cmd.TriggerID, cmd.ChannelID, cmd.UserID)
}

// GiveKudosShortcutHandler handles the "give_kudos" global shortcut. A
// shortcut carries no channel, so the form asks for one.
func GiveKudosShortcutHandler(api *slack.Client, callback slack.InteractionCallback) {
	openKudosModal(api, callback.TriggerID, "", callback.User.ID)
}

func openKudosModal(api *slack.Client, triggerID, channelID, userID string) {
	modal := BuildKudosModal(deps.Catalog, channelID)
	if _, err := api.OpenView(triggerID, modal); err != nil {
		log.Printf("Error opening kudos modal: %v", err)
		_, _, err = api.PostMessage(userID, slack.MsgOptionText(
			"Sorry, there was an error opening the kudos form. Please try again.", false))
		if err != nil {
			log.Printf("Error notifying user %s: %v", userID, err)
		}
	}
}

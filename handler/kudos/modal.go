package kudos

import (
	"github.com/slack-go/slack"

	kudoscore "github.com/jinagamvasubabu/kudos-slack-bot/kudos"
)

// BuildKudosModal renders the kudos form. Every recognition type in the
// catalog becomes a selectable option, in catalog order. When channelID is
// known (slash command) it rides in private_metadata; when it is empty
// (global shortcut) a required channel selector is prepended instead.
func BuildKudosModal(catalog *kudoscore.Catalog, channelID string) slack.ModalViewRequest {
	var blocks []slack.Block

	if channelID == "" {
		channelSelect := slack.NewOptionsSelectBlockElement(
			slack.OptTypeConversations,
			plainText("Select a channel"),
			channelActionID,
		)
		blocks = append(blocks, slack.NewInputBlock(
			channelBlockID, plainText("📣 Post In"), nil, channelSelect))
	}

	recipientSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeUser,
		plainText("Select a coworker"),
		recipientActionID,
	)
	blocks = append(blocks, slack.NewInputBlock(
		recipientBlockID, plainText("👥 Select Coworker"), nil, recipientSelect))

	types := catalog.All()
	options := make([]*slack.OptionBlockObject, 0, len(types))
	for _, rt := range types {
		options = append(options, slack.NewOptionBlockObject(
			rt.ID, plainText(rt.Emoji+" "+rt.Title), nil))
	}
	typeSelect := slack.NewOptionsSelectBlockElement(
		slack.OptTypeStatic,
		plainText("Select recognition type"),
		typeActionID,
		options...,
	)
	blocks = append(blocks, slack.NewInputBlock(
		typeBlockID, plainText("🏆 Recognition Type"), nil, typeSelect))

	messageInput := slack.NewRichTextInputBlockElement(
		plainText("Write your kudos message here... You can use emojis and @mention people!"),
		messageActionID,
	)
	blocks = append(blocks, slack.NewInputBlock(
		messageBlockID, plainText("💬 Message"), nil, messageInput))

	return slack.ModalViewRequest{
		Type:            slack.VTModal,
		CallbackID:      ModalCallbackID,
		PrivateMetadata: channelID,
		Title:           plainText("🎉 Give Kudos"),
		Submit:          plainText("Send Kudos"),
		Close:           plainText("Cancel"),
		Blocks:          slack.Blocks{BlockSet: blocks},
	}
}

func plainText(text string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.PlainTextType, text, true, false)
}

package kudos

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/slack-go/slack"

	kudoscore "github.com/jinagamvasubabu/kudos-slack-bot/kudos"
	"github.com/jinagamvasubabu/kudos-slack-bot/model"
	"github.com/jinagamvasubabu/kudos-slack-bot/slackutil"
)

// KudosSubmissionHandler handles the kudos modal submission. Validation
// runs synchronously so its errors can ride on the ack and render inline;
// delivery happens in its own goroutine, one per submission.
func KudosSubmissionHandler(api *slack.Client, callback slack.InteractionCallback) *slack.ViewSubmissionResponse {
	raw := extractRawSubmission(callback)

	sub, err := kudoscore.Validate(raw, deps.Catalog)
	if err != nil {
		var verr *kudoscore.ValidationError
		if errors.As(err, &verr) {
			return slack.NewErrorsViewSubmissionResponse(map[string]string{
				blockIDFor(verr.Code): verr.Message,
			})
		}
		log.Printf("Error validating kudos submission: %v", err)
		return nil
	}

	go deliver(api, sub)
	return nil
}

// extractRawSubmission flattens the modal state values. The channel comes
// from private_metadata (slash command) or the channel selector (shortcut).
func extractRawSubmission(callback slack.InteractionCallback) kudoscore.RawSubmission {
	values := callback.View.State.Values

	channelID := callback.View.PrivateMetadata
	if channelID == "" {
		channelID = values[channelBlockID][channelActionID].SelectedConversation
	}

	return kudoscore.RawSubmission{
		SenderID:          callback.User.ID,
		SenderName:        callback.User.Name,
		RecipientID:       values[recipientBlockID][recipientActionID].SelectedUser,
		RecognitionTypeID: values[typeBlockID][typeActionID].SelectedOption.Value,
		Message:           slackutil.ExtractRichText(values[messageBlockID][messageActionID].RichTextValue),
		ChannelID:         channelID,
	}
}

func blockIDFor(code kudoscore.ValidationCode) string {
	switch code {
	case kudoscore.MissingChannel:
		return channelBlockID
	case kudoscore.MissingRecipient:
		return recipientBlockID
	case kudoscore.UnknownRecognitionType:
		return typeBlockID
	default:
		return messageBlockID
	}
}

func deliver(api *slack.Client, sub model.Submission) {
	ctx := context.Background()

	sub.SenderName = resolveName(ctx, api, sub.SenderID, sub.SenderName)
	sub.RecipientName = resolveName(ctx, api, sub.RecipientID, sub.RecipientName)

	if _, err := deps.Dispatcher.Dispatch(ctx, sub); err != nil {
		log.Printf("Warning: kudos %s not delivered: %v", sub.ID, err)
		notifyDeliveryFailure(api, sub, err)
	}
}

// resolveName looks up a user's display name, best-effort. The fallback is
// used whenever the lookup fails.
func resolveName(ctx context.Context, api *slack.Client, userID, fallback string) string {
	user, err := api.GetUserInfoContext(ctx, userID)
	if err != nil {
		return fallback
	}
	if user.RealName != "" {
		return user.RealName
	}
	if user.Name != "" {
		return user.Name
	}
	return fallback
}

// notifyDeliveryFailure DMs the sender that their kudos never made it. A
// bot that isn't in the target channel gets the actionable variant.
func notifyDeliveryFailure(api *slack.Client, sub model.Submission, err error) {
	text := "Sorry, there was an error submitting your kudos. Please try again."

	var derr *kudoscore.DeliveryError
	if errors.As(err, &derr) && derr.Err != nil && derr.Err.Error() == "not_in_channel" {
		text = fmt.Sprintf(
			"I need to be invited to the channel first. Please invite me to <#%s> and try again.",
			sub.ChannelID)
	}

	if _, _, err := api.PostMessage(sub.SenderID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("Error notifying user %s: %v", sub.SenderID, err)
	}
}

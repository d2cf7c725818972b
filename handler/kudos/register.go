package kudos

import (
	"github.com/jinagamvasubabu/kudos-slack-bot/handler"
	kudoscore "github.com/jinagamvasubabu/kudos-slack-bot/kudos"
)

// Custom ids used by the kudos form. The submission handler resolves its
// inputs by these, so they must match the modal builder.
const (
	CommandKudos      = "/kudos"
	CommandKudosStats = "/kudos-stats"
	ShortcutGiveKudos = "give_kudos"
	ModalCallbackID   = "kudos_modal"

	channelBlockID    = "channel_block"
	channelActionID   = "channel_select"
	recipientBlockID  = "recipient_block"
	recipientActionID = "recipient_select"
	typeBlockID       = "recognition_type_block"
	typeActionID      = "recognition_type_select"
	messageBlockID    = "message_block"
	messageActionID   = "message_input"
)

// Deps is everything the kudos handlers need, wired once at startup.
type Deps struct {
	Catalog      *kudoscore.Catalog
	Dispatcher   *kudoscore.Dispatcher
	StatsEnabled bool
}

var deps Deps

// RegisterHandlers wires the kudos handlers into the interaction router.
func RegisterHandlers(d Deps) {
	deps = d

	handler.AddCommandHandler(CommandKudos, KudosCommandHandler)
	handler.AddCommandHandler(CommandKudosStats, StatsCommandHandler)
	handler.AddShortcutHandler(ShortcutGiveKudos, GiveKudosShortcutHandler)
	handler.AddViewHandler(ModalCallbackID, KudosSubmissionHandler)
}

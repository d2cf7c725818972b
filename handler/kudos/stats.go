package kudos

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/slack-go/slack"

	"github.com/jinagamvasubabu/kudos-slack-bot/db"
)

const statsTopN = 5

// StatsCommandHandler handles /kudos-stats: an ephemeral leaderboard plus
// the caller's own sent/received counts, read from the local kudos log.
func StatsCommandHandler(api *slack.Client, cmd slack.SlashCommand) {
	if !deps.StatsEnabled {
		respondEphemeral(api, cmd,
			"Kudos stats are not available: the local kudos log is disabled.")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	top, err := db.TopRecipients(ctx, statsTopN)
	if err != nil {
		log.Printf("Error querying top recipients: %v", err)
		respondEphemeral(api, cmd, "Sorry, kudos stats are unavailable right now.")
		return
	}
	sent, received, err := db.UserCounts(ctx, cmd.UserID)
	if err != nil {
		log.Printf("Error querying counts for user %s: %v", cmd.UserID, err)
		respondEphemeral(api, cmd, "Sorry, kudos stats are unavailable right now.")
		return
	}

	respondEphemeral(api, cmd, buildStatsText(top, sent, received))
}

func buildStatsText(top []db.RecipientCount, sent, received int) string {
	var b strings.Builder
	b.WriteString("*🏆 Kudos Leaderboard*\n")
	if len(top) == 0 {
		b.WriteString("No kudos given yet. Be the first with `/kudos`!\n")
	}
	for i, rc := range top {
		fmt.Fprintf(&b, "%d. <@%s> — %d\n", i+1, rc.RecipientID, rc.Count)
	}
	fmt.Fprintf(&b, "\n*Your kudos:* sent %d · received %d\n", sent, received)
	return b.String()
}

func respondEphemeral(api *slack.Client, cmd slack.SlashCommand, text string) {
	if _, err := api.PostEphemeral(cmd.ChannelID, cmd.UserID, slack.MsgOptionText(text, false)); err != nil {
		log.Printf("Error sending ephemeral response to %s: %v", cmd.UserID, err)
	}
}

package db

import (
	"context"

	"github.com/google/uuid"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

// AddRecognition appends one recognition row. Rows are append-only; nothing
// in the bot updates or deletes them.
func AddRecognition(ctx context.Context, rec model.AuditRecord) error {
	stmt, err := DB.PrepareContext(ctx, `INSERT INTO recognitions(
		id, created_at, recipient_name, recipient_id, recognition_type,
		message, sender_name, sender_id, channel_id
	) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx, uuid.NewString(), rec.Timestamp,
		rec.RecipientName, rec.RecipientID, rec.RecognitionType,
		rec.Message, rec.SenderName, rec.SenderID, rec.ChannelID)
	return err
}

// RecipientCount is one leaderboard entry.
type RecipientCount struct {
	RecipientID   string
	RecipientName string
	Count         int
}

// TopRecipients returns the users who received the most kudos, most first.
func TopRecipients(ctx context.Context, limit int) ([]RecipientCount, error) {
	rows, err := DB.QueryContext(ctx, `
		SELECT recipient_id, MAX(recipient_name), COUNT(*) AS n
		FROM recognitions
		GROUP BY recipient_id
		ORDER BY n DESC, recipient_id
		LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RecipientCount
	for rows.Next() {
		var rc RecipientCount
		if err := rows.Scan(&rc.RecipientID, &rc.RecipientName, &rc.Count); err != nil {
			return nil, err
		}
		out = append(out, rc)
	}
	return out, rows.Err()
}

// UserCounts returns how many kudos a user has sent and received.
func UserCounts(ctx context.Context, userID string) (sent, received int, err error) {
	err = DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recognitions WHERE sender_id = ?`, userID).Scan(&sent)
	if err != nil {
		return 0, 0, err
	}
	err = DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM recognitions WHERE recipient_id = ?`, userID).Scan(&received)
	if err != nil {
		return 0, 0, err
	}
	return sent, received, nil
}

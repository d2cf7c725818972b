package db

import "fmt"

// createTables 如果数据库中不存在必要的表，则创建它们
func createTables() error {
	createRecognitionsTableSQL := `
	CREATE TABLE IF NOT EXISTS recognitions (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		recipient_name TEXT,
		recipient_id TEXT NOT NULL,
		recognition_type TEXT NOT NULL,
		message TEXT NOT NULL,
		sender_name TEXT,
		sender_id TEXT NOT NULL,
		channel_id TEXT
	);`

	if _, err := DB.Exec(createRecognitionsTableSQL); err != nil {
		return fmt.Errorf("failed to create recognitions table: %w", err)
	}

	createIndexSQL := `
	CREATE INDEX IF NOT EXISTS idx_recognitions_recipient ON recognitions(recipient_id);
	CREATE INDEX IF NOT EXISTS idx_recognitions_sender ON recognitions(sender_id);`

	if _, err := DB.Exec(createIndexSQL); err != nil {
		return fmt.Errorf("failed to create recognitions indexes: %w", err)
	}

	return nil
}

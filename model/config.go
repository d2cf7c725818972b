package model

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Slack        Slack             `mapstructure:"slack"`
	DefaultEmoji string            `mapstructure:"default_emoji"`
	Recognitions []RecognitionType `mapstructure:"recognitions"`
	Sheets       Sheets            `mapstructure:"sheets"`
	AuditDB      AuditDB           `mapstructure:"audit_db"`
}

// Slack 对应 "slack" 部分
type Slack struct {
	BotToken string `mapstructure:"bot_token"`
	AppToken string `mapstructure:"app_token"`
	Debug    bool   `mapstructure:"debug"`
}

// Sheets 对应 "sheets" 部分（Google Sheets 审计日志，可选）
type Sheets struct {
	Enabled         bool     `mapstructure:"enabled"`
	CredentialsPath string   `mapstructure:"credentials_path"`
	SpreadsheetID   string   `mapstructure:"spreadsheet_id"`
	SheetName       string   `mapstructure:"sheet_name"`
	TimestampFormat string   `mapstructure:"timestamp_format"`
	Headers         []string `mapstructure:"headers"`
}

// AuditDB 对应 "audit_db" 部分（本地 sqlite 审计日志，可选）
type AuditDB struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

var Cfg model.Config

// LoadConfig reads config.yaml from the working directory into Cfg.
// Secrets can be overridden from the environment.
func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.BindEnv("slack.bot_token", "SLACK_BOT_TOKEN")
	viper.BindEnv("slack.app_token", "SLACK_APP_TOKEN")
	viper.BindEnv("sheets.spreadsheet_id", "GOOGLE_SHEET_ID")
	viper.BindEnv("sheets.credentials_path", "GOOGLE_CREDENTIALS_PATH")

	viper.SetDefault("default_emoji", "👏")
	viper.SetDefault("sheets.sheet_name", "Sheet1")
	viper.SetDefault("sheets.timestamp_format", "2006-01-02 15:04:05")
	viper.SetDefault("sheets.credentials_path", "credentials.json")
	viper.SetDefault("sheets.headers", []string{
		"Timestamp", "Recipient", "Recipient ID", "Recognition Type",
		"Message", "Sender", "Sender ID", "Channel ID",
	})
	viper.SetDefault("audit_db.path", "./data/kudos.db")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	if err != nil {
		return
	}

	return Validate(&Cfg)
}

// Validate rejects configurations the bot must not start with. The form is
// never offered when this fails.
func Validate(cfg *model.Config) error {
	if cfg.Slack.BotToken == "" {
		return fmt.Errorf("config: slack.bot_token is required (or set SLACK_BOT_TOKEN)")
	}
	if cfg.Slack.AppToken == "" {
		return fmt.Errorf("config: slack.app_token is required (or set SLACK_APP_TOKEN)")
	}

	if len(cfg.Recognitions) == 0 {
		return fmt.Errorf("config: at least one recognition type is required")
	}
	seen := make(map[string]bool, len(cfg.Recognitions))
	for i, rt := range cfg.Recognitions {
		if rt.ID == "" || rt.Title == "" || rt.Emoji == "" {
			return fmt.Errorf("config: recognition #%d must have id, title and emoji", i+1)
		}
		if seen[rt.ID] {
			return fmt.Errorf("config: duplicate recognition id %q", rt.ID)
		}
		seen[rt.ID] = true
	}

	if cfg.Sheets.Enabled && cfg.Sheets.SpreadsheetID == "" {
		return fmt.Errorf("config: sheets.spreadsheet_id is required when sheets logging is enabled (or set GOOGLE_SHEET_ID)")
	}

	return nil
}

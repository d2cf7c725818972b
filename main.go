package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jinagamvasubabu/kudos-slack-bot/bot"
	"github.com/jinagamvasubabu/kudos-slack-bot/config"
	"github.com/jinagamvasubabu/kudos-slack-bot/db"
	kudoshandler "github.com/jinagamvasubabu/kudos-slack-bot/handler/kudos"
	"github.com/jinagamvasubabu/kudos-slack-bot/kudos"
	"github.com/jinagamvasubabu/kudos-slack-bot/sheets"
)

func main() {
	err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	catalog, err := kudos.NewCatalog(config.Cfg.Recognitions)
	if err != nil {
		log.Fatalf("Error building recognition catalog: %v", err)
	}

	api := bot.NewClient()

	var sinks []kudos.AuditSink
	if config.Cfg.AuditDB.Enabled {
		if err := db.Init(config.Cfg.AuditDB.Path); err != nil {
			log.Fatalf("Error initializing kudos database: %v", err)
		}
		defer db.Close()
		sinks = append(sinks, db.Sink{})
	}
	if config.Cfg.Sheets.Enabled {
		sink, err := sheets.New(context.Background(), config.Cfg.Sheets)
		if err != nil {
			// Sheets logging is best-effort; the bot still runs without it.
			log.Printf("Warning: Google Sheets integration disabled: %v", err)
		} else {
			sinks = append(sinks, sink)
		}
	}

	dispatcher := kudos.NewDispatcher(
		catalog,
		kudos.Formatter{DefaultEmoji: config.Cfg.DefaultEmoji},
		bot.NewPoster(api),
		config.Cfg.Sheets.TimestampFormat,
		sinks...,
	)

	kudoshandler.RegisterHandlers(kudoshandler.Deps{
		Catalog:      catalog,
		Dispatcher:   dispatcher,
		StatsEnabled: config.Cfg.AuditDB.Enabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		log.Fatalf("error opening connection: %v", err)
	}
}

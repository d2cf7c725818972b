package db

import (
	"context"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

// Sink is the local audit sink backed by the sqlite recognitions table.
// It satisfies kudos.AuditSink.
type Sink struct{}

func (Sink) Name() string { return "sqlite" }

func (Sink) Log(ctx context.Context, rec model.AuditRecord) error {
	return AddRecognition(ctx, rec)
}

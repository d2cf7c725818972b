// Package sheets logs recognitions to a Google Sheet for auditing.
package sheets

import (
	"context"
	"fmt"
	"log"
	"os"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/jinagamvasubabu/kudos-slack-bot/model"
)

// Sink appends one spreadsheet row per recognition. It satisfies
// kudos.AuditSink. Rows are append-only; existing rows are never touched.
type Sink struct {
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	headers       []string
}

// New authenticates with the service-account credentials file, opens the
// spreadsheet and auto-creates the header row when the sheet is empty.
func New(ctx context.Context, cfg model.Sheets) (*Sink, error) {
	if _, err := os.Stat(cfg.CredentialsPath); err != nil {
		return nil, fmt.Errorf("credentials file not found at %s", cfg.CredentialsPath)
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsPath),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("could not create sheets client: %w", err)
	}

	s := &Sink{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		headers:       cfg.Headers,
	}

	if err := s.ensureHeaders(ctx); err != nil {
		return nil, fmt.Errorf("could not prepare sheet %s: %w", cfg.SpreadsheetID, err)
	}

	log.Println("Google Sheets integration initialized successfully.")
	return s, nil
}

func (s *Sink) Name() string { return "sheets" }

// Log appends the recognition as a new row in header order.
func (s *Sink) Log(ctx context.Context, rec model.AuditRecord) error {
	vr := &sheets.ValueRange{Values: [][]interface{}{rowValues(rec)}}
	_, err := s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// ensureHeaders writes the header row, but only when row 1 is empty.
func (s *Sink) ensureHeaders(ctx context.Context) error {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName+"!1:1").
		Context(ctx).
		Do()
	if err != nil {
		return err
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}

	row := make([]interface{}, len(s.headers))
	for i, h := range s.headers {
		row[i] = h
	}
	vr := &sheets.ValueRange{Values: [][]interface{}{row}}
	_, err = s.svc.Spreadsheets.Values.Append(s.spreadsheetID, s.sheetName, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err == nil {
		log.Printf("Added headers to sheet: %v", s.headers)
	}
	return err
}

// rowValues lays the record out in header-row order.
func rowValues(rec model.AuditRecord) []interface{} {
	fields := rec.Row()
	row := make([]interface{}, len(fields))
	for i, f := range fields {
		row[i] = f
	}
	return row
}

package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/oakmoney/ledgerlens/internal/model"
)

// Lead is one opt-in report capture.
type Lead struct {
	CreatedAt time.Time
	Name      string
	Email     string
	Industry  string
	Scorecard map[string]string
	ID        int64
}

// SaveLead stores an opt-in lead together with a snapshot of the scorecard
// it was captured against.
func (s *SQLiteStorage) SaveLead(ctx context.Context, lead Lead, card *model.Scorecard) (int64, error) {
	if lead.Email == "" {
		return 0, fmt.Errorf("lead email must not be empty")
	}

	snapshot := make(map[string]string)
	if card != nil {
		for _, name := range card.Names() {
			value, _ := card.Get(name)
			snapshot[name] = value
		}
	}
	encoded, err := json.Marshal(snapshot)
	if err != nil {
		return 0, fmt.Errorf("failed to encode scorecard: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO leads (name, email, industry, scorecard) VALUES (?, ?, ?, ?)`,
		lead.Name, lead.Email, lead.Industry, string(encoded))
	if err != nil {
		return 0, fmt.Errorf("failed to save lead: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read lead id: %w", err)
	}
	return id, nil
}

// ListLeads returns all captured leads, newest first.
func (s *SQLiteStorage) ListLeads(ctx context.Context) ([]Lead, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, name, email, industry, scorecard FROM leads ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var leads []Lead
	for rows.Next() {
		var (
			lead    Lead
			encoded string
		)
		if err := rows.Scan(&lead.ID, &lead.CreatedAt, &lead.Name, &lead.Email, &lead.Industry, &encoded); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &lead.Scorecard); err != nil {
			return nil, fmt.Errorf("failed to decode scorecard for lead %d: %w", lead.ID, err)
		}
		leads = append(leads, lead)
	}
	return leads, rows.Err()
}

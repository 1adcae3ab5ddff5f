package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/hucha-finance/hucha/internal/audit"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) InsertEvent(ctx context.Context, spaceID uuid.UUID, event audit.Event) error {
	before, err := marshalNullable(event.Before)
	if err != nil {
		return fmt.Errorf("encoding before snapshot: %w", err)
	}

	after, err := marshalNullable(event.After)
	if err != nil {
		return fmt.Errorf("encoding after snapshot: %w", err)
	}

	metadata, err := marshalNullable(event.Metadata)
	if err != nil {
		return fmt.Errorf("encoding metadata: %w", err)
	}

	query := `
		INSERT INTO audit_events (space_id, entity_type, entity_id, action, before, after, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`

	if _, err := s.db.ExecContext(ctx, query,
		spaceID,
		event.EntityType,
		event.EntityID,
		event.Action,
		before,
		after,
		metadata,
	); err != nil {
		return fmt.Errorf("inserting audit event: %w", err)
	}

	return nil
}

func marshalNullable(v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return b, nil
}

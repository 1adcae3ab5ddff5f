// Package audit records entity change events. Recording is strictly
// best-effort: a failed audit write is logged and never propagated to
// the operation that produced it.
package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

//go:generate mockgen -source=audit.go -destination=store_mock.go -package=audit
type Store interface {
	InsertEvent(ctx context.Context, spaceID uuid.UUID, event Event) error
}

// Event describes one change to an entity.
type Event struct {
	EntityType string
	EntityID   string
	Action     string
	Before     any
	After      any
	Metadata   map[string]any
}

type Recorder struct {
	store Store
}

func NewRecorder(store Store) *Recorder {
	return &Recorder{store: store}
}

// Record persists the event, logging instead of failing when the sink
// is unavailable. A nil Recorder is a no-op, which keeps test wiring
// minimal.
func (r *Recorder) Record(ctx context.Context, spaceID uuid.UUID, event Event) {
	if r == nil || r.store == nil {
		return
	}

	if err := r.store.InsertEvent(ctx, spaceID, event); err != nil {
		slog.Warn("audit event dropped",
			"entity_type", event.EntityType,
			"entity_id", event.EntityID,
			"action", event.Action,
			"error", err)
	}
}

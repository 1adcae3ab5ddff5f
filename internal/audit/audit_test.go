package audit_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/hucha-finance/hucha/internal/audit"
)

func TestRecord_PassesEventToStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	event := audit.Event{
		EntityType: "debt",
		EntityID:   uuid.NewString(),
		Action:     "payment_confirmed",
		Metadata:   map[string]any{"payment_amount": "500"},
	}

	store := audit.NewMockStore(ctrl)
	store.EXPECT().InsertEvent(gomock.Any(), spaceID, event).Return(nil)

	audit.NewRecorder(store).Record(context.Background(), spaceID, event)
}

func TestRecord_SwallowsStoreFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := audit.NewMockStore(ctrl)
	store.EXPECT().
		InsertEvent(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("sink unavailable"))

	// Must not panic or propagate; recording is best-effort.
	audit.NewRecorder(store).Record(context.Background(), uuid.New(), audit.Event{
		EntityType: "obligation",
		Action:     "document_confirmed",
	})
}

func TestRecord_NilRecorderIsNoOp(t *testing.T) {
	var r *audit.Recorder

	assert.NotPanics(t, func() {
		r.Record(context.Background(), uuid.New(), audit.Event{Action: "noop"})
	})
}

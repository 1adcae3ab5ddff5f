package saga_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hucha-finance/hucha/internal/saga"
)

func TestRun_AllStepsCommit(t *testing.T) {
	var order []string

	steps := []saga.Step{
		{
			Name:     "first",
			Commit:   func(context.Context) error { order = append(order, "first"); return nil },
			Rollback: func(context.Context) error { order = append(order, "undo first"); return nil },
		},
		{
			Name:   "second",
			Commit: func(context.Context) error { order = append(order, "second"); return nil },
		},
	}

	require.NoError(t, saga.Run(context.Background(), steps))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRun_UnwindsInReverseOnFailure(t *testing.T) {
	var order []string

	boom := errors.New("insert failed")

	steps := []saga.Step{
		{
			Name:     "create obligation",
			Commit:   func(context.Context) error { order = append(order, "create obligation"); return nil },
			Rollback: func(context.Context) error { order = append(order, "delete obligation"); return nil },
		},
		{
			Name:     "create debt",
			Commit:   func(context.Context) error { order = append(order, "create debt"); return nil },
			Rollback: func(context.Context) error { order = append(order, "delete debt"); return nil },
		},
		{
			Name:   "create transaction",
			Commit: func(context.Context) error { return boom },
			Rollback: func(context.Context) error {
				t.Fatal("failed step must not be rolled back")
				return nil
			},
		},
	}

	err := saga.Run(context.Background(), steps)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "create transaction")
	assert.Equal(t, []string{
		"create obligation",
		"create debt",
		"delete debt",
		"delete obligation",
	}, order)
}

func TestRun_RollbackFailureDoesNotStopUnwind(t *testing.T) {
	var order []string

	steps := []saga.Step{
		{
			Name:     "first",
			Commit:   func(context.Context) error { return nil },
			Rollback: func(context.Context) error { order = append(order, "undo first"); return nil },
		},
		{
			Name:     "second",
			Commit:   func(context.Context) error { return nil },
			Rollback: func(context.Context) error { return errors.New("undo failed") },
		},
		{
			Name:   "third",
			Commit: func(context.Context) error { return errors.New("boom") },
		},
	}

	err := saga.Run(context.Background(), steps)
	require.Error(t, err)
	assert.Equal(t, []string{"undo first"}, order)
}

func TestRun_NilRollbackSkipped(t *testing.T) {
	steps := []saga.Step{
		{Name: "first", Commit: func(context.Context) error { return nil }},
		{Name: "second", Commit: func(context.Context) error { return errors.New("boom") }},
	}

	assert.Error(t, saga.Run(context.Background(), steps))
}

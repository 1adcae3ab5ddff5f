package obligation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hucha-finance/hucha/internal/obligation"
)

func TestService_List_FlipsOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	now := day("2024-03-10")

	pastDue := &obligation.Obligation{
		ID:      uuid.New(),
		SpaceID: spaceID,
		Title:   "Luz",
		Status:  obligation.StatusPending,
		DueDate: day("2024-03-01"),
	}
	upcoming := &obligation.Obligation{
		ID:      uuid.New(),
		SpaceID: spaceID,
		Title:   "Agua",
		Status:  obligation.StatusPending,
		DueDate: day("2024-03-20"),
	}
	alreadyPaid := &obligation.Obligation{
		ID:      uuid.New(),
		SpaceID: spaceID,
		Title:   "Gas",
		Status:  obligation.StatusPaid,
		DueDate: day("2024-02-01"),
	}

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		ListObligations(gomock.Any(), spaceID, obligation.ListFilter{}).
		Return([]*obligation.Obligation{pastDue, upcoming, alreadyPaid}, nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), spaceID, pastDue.ID, obligation.StatusOverdue).
		Return(nil)

	svc := obligation.NewService(repo)

	got, err := svc.List(context.Background(), spaceID, obligation.ListFilter{}, now)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, obligation.StatusOverdue, got[0].Status)
	assert.Equal(t, obligation.StatusPending, got[1].Status)
	assert.Equal(t, obligation.StatusPaid, got[2].Status)
}

func TestService_List_OverduePersistFailureIsNonFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()

	pastDue := &obligation.Obligation{
		ID:      uuid.New(),
		SpaceID: spaceID,
		Status:  obligation.StatusPending,
		DueDate: day("2024-01-01"),
	}

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		ListObligations(gomock.Any(), spaceID, gomock.Any()).
		Return([]*obligation.Obligation{pastDue}, nil)
	repo.EXPECT().
		UpdateStatus(gomock.Any(), spaceID, pastDue.ID, obligation.StatusOverdue).
		Return(errors.New("db unavailable"))

	svc := obligation.NewService(repo)

	got, err := svc.List(context.Background(), spaceID, obligation.ListFilter{}, day("2024-03-10"))
	require.NoError(t, err)
	assert.Equal(t, obligation.StatusOverdue, got[0].Status)
}

func TestService_ListOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		ListObligations(gomock.Any(), spaceID, obligation.ListFilter{
			Statuses: obligation.OpenStatuses,
			Limit:    50,
		}).
		Return([]*obligation.Obligation{{ID: uuid.New()}}, nil)

	svc := obligation.NewService(repo)

	got, err := svc.ListOpen(context.Background(), spaceID, 50)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()

	repo := obligation.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateObligation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, o *obligation.Obligation) error {
			o.ID = uuid.New()
			o.CreatedAt = time.Now()
			return nil
		})

	svc := obligation.NewService(repo)

	got, err := svc.Create(context.Background(), spaceID, obligation.CreateParams{
		Title:   "Tarjeta Visa",
		Amount:  amt("1500"),
		DueDate: day("2024-04-01"),
	})
	require.NoError(t, err)
	assert.Equal(t, obligation.StatusPending, got.Status)
	assert.Equal(t, spaceID, got.SpaceID)
}

package debt_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hucha-finance/hucha/internal/debt"
	"github.com/hucha-finance/hucha/internal/http/auth"
	debtHandler "github.com/hucha-finance/hucha/internal/http/debt"
	"github.com/hucha-finance/hucha/internal/transaction"
)

func amt(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newRouter(svc *debt.Service) http.Handler {
	r := chi.NewRouter()
	r.Route("/debts", debtHandler.NewHandler(svc).Routes)

	return r
}

func TestConfirmPayment_EmptyBodyUsesDefaults(t *testing.T) {
	// The payments endpoint has no required fields: no body at all must
	// behave like `{}` and fall back to the monthly payment.
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	spaceID := uuid.New()
	debtID := uuid.New()

	repo := debt.NewMockRepository(ctrl)
	ledger := debt.NewMockLedger(ctrl)
	obligations := debt.NewMockObligationBook(ctrl)

	repo.EXPECT().GetDebt(gomock.Any(), spaceID, debtID).Return(&debt.Debt{
		ID:                    debtID,
		SpaceID:               spaceID,
		Name:                  "Tarjeta Visa",
		TotalAmount:           amt("500"),
		MonthlyPayment:        amt("100"),
		RemainingInstallments: 5,
		Category:              "deudas",
		NextPaymentDate:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
	}, nil)
	repo.EXPECT().
		UpdateBalance(gomock.Any(), spaceID, debtID, gomock.Any(), 4, gomock.Any()).
		Return(nil)
	ledger.EXPECT().
		CreateTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tx *transaction.Transaction) error {
			tx.ID = uuid.New()
			return nil
		})
	obligations.EXPECT().ListOpen(gomock.Any(), spaceID, gomock.Any()).Return(nil, nil)

	router := newRouter(debt.NewService(repo, ledger, obligations, nil))

	req := httptest.NewRequest(http.MethodPost, "/debts/"+debtID.String()+"/payments", nil)
	req = req.WithContext(auth.WithSpaceID(req.Context(), spaceID))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Amount decimal.Decimal `json:"amount"`
		Debt   struct {
			TotalAmount           decimal.Decimal `json:"total_amount"`
			RemainingInstallments int             `json:"remaining_installments"`
		} `json:"debt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Amount.Equal(amt("100")))
	assert.True(t, resp.Debt.TotalAmount.Equal(amt("400")))
	assert.Equal(t, 4, resp.Debt.RemainingInstallments)
}

func TestConfirmPayment_MalformedBodyRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := debt.NewService(debt.NewMockRepository(ctrl), debt.NewMockLedger(ctrl), debt.NewMockObligationBook(ctrl), nil)
	router := newRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/debts/"+uuid.NewString()+"/payments",
		strings.NewReader(`{"amount": `))
	req = req.WithContext(auth.WithSpaceID(req.Context(), uuid.New()))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

package debt

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/debt"
	"github.com/hucha-finance/hucha/internal/http/auth"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/payments", h.confirmPayment)
}

type createDebtRequest struct {
	Name                  string          `json:"name"`
	TotalAmount           decimal.Decimal `json:"total_amount"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	RemainingInstallments int             `json:"remaining_installments"`
	TotalInstallments     int             `json:"total_installments"`
	Category              string          `json:"category"`
	NextPaymentDate       string          `json:"next_payment_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	var req createDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Create(r.Context(), spaceID, debt.CreateParams{
		Name:                  req.Name,
		TotalAmount:           req.TotalAmount,
		MonthlyPayment:        req.MonthlyPayment,
		RemainingInstallments: req.RemainingInstallments,
		TotalInstallments:     req.TotalInstallments,
		Category:              req.Category,
		NextPaymentDate:       dateutil.ToISODate(req.NextPaymentDate, time.Now()),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	debts, err := h.svc.List(r.Context(), spaceID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(debts)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), spaceID, id)
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateDebtRequest struct {
	Name                  *string          `json:"name,omitempty"`
	TotalAmount           *decimal.Decimal `json:"total_amount,omitempty"`
	MonthlyPayment        *decimal.Decimal `json:"monthly_payment,omitempty"`
	RemainingInstallments *int             `json:"remaining_installments,omitempty"`
	TotalInstallments     *int             `json:"total_installments,omitempty"`
	Category              *string          `json:"category,omitempty"`
	NextPaymentDate       *string          `json:"next_payment_date,omitempty"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req updateDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	d, err := h.svc.Get(r.Context(), spaceID, id)
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Name != nil {
		d.Name = *req.Name
	}

	if req.TotalAmount != nil {
		d.TotalAmount = *req.TotalAmount
	}

	if req.MonthlyPayment != nil {
		d.MonthlyPayment = *req.MonthlyPayment
	}

	if req.RemainingInstallments != nil {
		d.RemainingInstallments = *req.RemainingInstallments
	}

	if req.TotalInstallments != nil {
		d.TotalInstallments = *req.TotalInstallments
	}

	if req.Category != nil {
		d.Category = *req.Category
	}

	if req.NextPaymentDate != nil {
		d.NextPaymentDate = dateutil.ToISODate(*req.NextPaymentDate, time.Now())
	}

	if err := h.svc.Update(r.Context(), d); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(d)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := h.svc.Delete(r.Context(), spaceID, id); err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			http.Error(w, "debt not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type confirmPaymentRequest struct {
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Date        *string          `json:"date,omitempty"`
	Description string           `json:"description,omitempty"`
}

func (h *Handler) confirmPayment(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	// Every payment parameter is optional; an empty body means defaults.
	var req confirmPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	params := debt.PaymentParams{
		Amount:      req.Amount,
		Description: req.Description,
	}

	if req.Date != nil {
		if t, parseErr := time.Parse(time.DateOnly, *req.Date); parseErr == nil {
			params.Date = &t
		} else {
			http.Error(w, "invalid date, expected YYYY-MM-DD", http.StatusBadRequest)
			return
		}
	}

	result, err := h.svc.ConfirmPayment(r.Context(), spaceID, id, params, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, debt.ErrNotFound):
			http.Error(w, "debt not found", http.StatusNotFound)
		case errors.Is(err, debt.ErrAlreadySettled):
			http.Error(w, "debt is already settled", http.StatusConflict)
		case errors.Is(err, debt.ErrInvalidPayment):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toPaymentResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

package obligation

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/dateutil"
	"github.com/hucha-finance/hucha/internal/http/auth"
	"github.com/hucha-finance/hucha/internal/obligation"
)

type Handler struct {
	svc *obligation.Service
}

func NewHandler(svc *obligation.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/paid", h.markPaid)
}

type createObligationRequest struct {
	Title          string          `json:"title"`
	Amount         decimal.Decimal `json:"amount"`
	DueDate        string          `json:"due_date"`
	Category       string          `json:"category"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	var req createObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if req.Title == "" {
		http.Error(w, "title is required", http.StatusBadRequest)
		return
	}

	o, err := h.svc.Create(r.Context(), spaceID, obligation.CreateParams{
		Title:          req.Title,
		Amount:         req.Amount,
		DueDate:        dateutil.ToISODate(req.DueDate, time.Now()),
		Category:       req.Category,
		MinimumPayment: req.MinimumPayment,
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	filter := obligation.ListFilter{}

	if s := r.URL.Query().Get("status"); s != "" {
		filter.Statuses = []obligation.Status{obligation.Status(s)}
	}

	obligations, err := h.svc.List(r.Context(), spaceID, filter, time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(obligations)); err != nil {
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

	o, err := h.svc.Get(r.Context(), spaceID, id)
	if err != nil {
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateObligationRequest struct {
	Title          *string          `json:"title,omitempty"`
	Amount         *decimal.Decimal `json:"amount,omitempty"`
	DueDate        *string          `json:"due_date,omitempty"`
	Status         *string          `json:"status,omitempty"`
	Category       *string          `json:"category,omitempty"`
	MinimumPayment *decimal.Decimal `json:"minimum_payment,omitempty"`
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

	var req updateObligationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	o, err := h.svc.Get(r.Context(), spaceID, id)
	if err != nil {
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Title != nil {
		o.Title = *req.Title
	}

	if req.Amount != nil {
		o.Amount = *req.Amount
	}

	if req.DueDate != nil {
		o.DueDate = dateutil.ToISODate(*req.DueDate, time.Now())
	}

	if req.Status != nil {
		o.Status = obligation.Status(*req.Status)
	}

	if req.Category != nil {
		o.Category = *req.Category
	}

	if req.MinimumPayment != nil {
		o.MinimumPayment = *req.MinimumPayment
	}

	if err := h.svc.Update(r.Context(), o); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(o)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) markPaid(w http.ResponseWriter, r *http.Request) {
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

	if err := h.svc.MarkPaid(r.Context(), spaceID, id); err != nil {
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
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
		if errors.Is(err, obligation.ErrNotFound) {
			http.Error(w, "obligation not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

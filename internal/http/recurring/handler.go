package recurring

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
	"github.com/hucha-finance/hucha/internal/recurring"
	"github.com/hucha-finance/hucha/internal/transaction"
)

type Handler struct {
	svc *recurring.Service
}

func NewHandler(svc *recurring.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.create)
	r.Get("/", h.list)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/run", h.run)
}

type createRuleRequest struct {
	Type        transaction.Type   `json:"type"`
	Amount      decimal.Decimal    `json:"amount"`
	Description string             `json:"description"`
	Category    string             `json:"category"`
	Frequency   dateutil.Frequency `json:"frequency"`
	StartDate   string             `json:"start_date"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	var req createRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !req.Frequency.Valid() {
		http.Error(w, "invalid frequency, expected weekly, biweekly or monthly", http.StatusBadRequest)
		return
	}

	rule, err := h.svc.Create(r.Context(), spaceID, recurring.CreateParams{
		Type:        req.Type,
		Amount:      req.Amount,
		Description: req.Description,
		Category:    req.Category,
		Frequency:   req.Frequency,
		StartDate:   dateutil.ToISODate(req.StartDate, time.Now()),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	rules, err := h.svc.List(r.Context(), spaceID)
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponseList(rules)); err != nil {
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

	rule, err := h.svc.Get(r.Context(), spaceID, id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type updateRuleRequest struct {
	Type        *transaction.Type   `json:"type,omitempty"`
	Amount      *decimal.Decimal    `json:"amount,omitempty"`
	Description *string             `json:"description,omitempty"`
	Category    *string             `json:"category,omitempty"`
	Frequency   *dateutil.Frequency `json:"frequency,omitempty"`
	IsActive    *bool               `json:"is_active,omitempty"`
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

	var req updateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rule, err := h.svc.Get(r.Context(), spaceID, id)
	if err != nil {
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	if req.Type != nil {
		rule.Type = *req.Type
	}

	if req.Amount != nil {
		rule.Amount = *req.Amount
	}

	if req.Description != nil {
		rule.Description = *req.Description
	}

	if req.Category != nil {
		rule.Category = *req.Category
	}

	if req.Frequency != nil {
		if !req.Frequency.Valid() {
			http.Error(w, "invalid frequency, expected weekly, biweekly or monthly", http.StatusBadRequest)
			return
		}

		rule.Frequency = *req.Frequency
	}

	if req.IsActive != nil {
		rule.IsActive = *req.IsActive
	}

	if err := h.svc.Update(r.Context(), rule); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(toResponse(rule)); err != nil {
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
		if errors.Is(err, recurring.ErrNotFound) {
			http.Error(w, "recurring rule not found", http.StatusNotFound)
			return
		}

		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type runResponse struct {
	Generated    int `json:"generated"`
	UpdatedRules int `json:"updated_rules"`
}

func (h *Handler) run(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	result, err := h.svc.RunDue(r.Context(), spaceID, time.Now())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(runResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

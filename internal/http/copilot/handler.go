package copilot

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/hucha-finance/hucha/internal/copilot"
	"github.com/hucha-finance/hucha/internal/encoding"
	"github.com/hucha-finance/hucha/internal/http/auth"
)

type Handler struct {
	svc            *copilot.Service
	maxUploadBytes int64
}

func NewHandler(svc *copilot.Service, maxUploadBytes int64) *Handler {
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/extract", h.extract)
	r.Post("/confirm", h.confirm)
}

func (h *Handler) extract(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.SpaceID(r.Context()); !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxUploadBytes))
	if err != nil {
		http.Error(w, "failed to read file", http.StatusBadRequest)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	// Text uploads arrive in whatever charset the bank exported; the
	// model only gets UTF-8.
	if strings.HasPrefix(mimeType, "text/") {
		data, err = encoding.ToUTF8(data)
		if err != nil {
			http.Error(w, "failed to decode text file", http.StatusBadRequest)
			return
		}
	}

	extraction, err := h.svc.Extract(r.Context(), data, mimeType)
	if err != nil {
		if errors.Is(err, copilot.ErrInvalidInput) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		http.Error(w, "extraction failed", http.StatusBadGateway)

		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(extraction); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

type confirmRequest struct {
	Title                 string          `json:"title"`
	Amount                decimal.Decimal `json:"amount"`
	DueDate               string          `json:"due_date"`
	Category              string          `json:"category"`
	MinimumPayment        decimal.Decimal `json:"minimum_payment"`
	MonthlyPayment        decimal.Decimal `json:"monthly_payment"`
	TotalInstallments     int             `json:"total_installments"`
	RemainingInstallments int             `json:"remaining_installments"`
	PaymentAmount         decimal.Decimal `json:"payment_amount"`
	CreateDebt            bool            `json:"create_debt"`
	MarkPaid              bool            `json:"mark_paid"`
}

func (h *Handler) confirm(w http.ResponseWriter, r *http.Request) {
	spaceID, ok := auth.SpaceID(r.Context())
	if !ok {
		http.Error(w, "missing space scope", http.StatusUnauthorized)
		return
	}

	var req confirmRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.svc.ConfirmDocument(r.Context(), spaceID, copilot.ConfirmInput{
		Title:                 req.Title,
		Amount:                req.Amount,
		DueDate:               req.DueDate,
		Category:              req.Category,
		MinimumPayment:        req.MinimumPayment,
		MonthlyPayment:        req.MonthlyPayment,
		TotalInstallments:     req.TotalInstallments,
		RemainingInstallments: req.RemainingInstallments,
		PaymentAmount:         req.PaymentAmount,
		CreateDebt:            req.CreateDebt,
		MarkPaid:              req.MarkPaid,
	}, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, copilot.ErrInvalidInput), errors.Is(err, copilot.ErrInvalidPayment):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}

		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(toConfirmResponse(result)); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

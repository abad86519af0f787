package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/budget-tracker-backend/internal/api/httpx"
	"github.com/baharkarakas/budget-tracker-backend/internal/api/validate"
	"github.com/baharkarakas/budget-tracker-backend/internal/middleware"
	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	"github.com/baharkarakas/budget-tracker-backend/internal/services"
)

type TransactionHandler struct {
	svc *services.TransactionService
}

func NewTransactionHandler(svc *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Raw fields so a field that is absent can be told apart from one that is
// present but null (partial update semantics).
type transactionReq struct {
	Amount   json.RawMessage `json:"amount"`
	Category json.RawMessage `json:"category"`
	Date     json.RawMessage `json:"date"`
}

func parseTransactionInput(r *http.Request, requireAll bool) (services.TransactionInput, validate.Errs) {
	var (
		req  transactionReq
		in   services.TransactionInput
		errs validate.Errs
	)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return in, validate.Errs{{Field: "body", Msg: "invalid JSON"}}
	}

	switch {
	case req.Amount == nil:
		if requireAll {
			errs = append(errs, validate.ErrField{Field: "amount", Msg: "required"})
		}
	default:
		var amt money.Cents
		if err := amt.UnmarshalJSON(req.Amount); err != nil {
			errs = append(errs, validate.ErrField{Field: "amount", Msg: "must be a decimal amount"})
		} else {
			in.Amount = &amt
		}
	}

	switch {
	case req.Date == nil:
		if requireAll {
			errs = append(errs, validate.ErrField{Field: "date", Msg: "required"})
		}
	default:
		var d models.Date
		if err := json.Unmarshal(req.Date, &d); err != nil {
			errs = append(errs, validate.ErrField{Field: "date", Msg: "must be formatted YYYY-MM-DD"})
		} else {
			in.Date = &d
		}
	}

	if req.Category != nil {
		in.CategorySet = true
		if string(req.Category) != "null" {
			var c models.Category
			if err := json.Unmarshal(req.Category, &c); err != nil || !models.ValidCategory(c) {
				errs = append(errs, validate.ErrField{Field: "category", Msg: "unknown category code"})
			} else {
				in.Category = &c
			}
		}
	}

	return in, errs
}

// reconciled is the response body for writes that touched a budget.
type reconciled struct {
	Transaction models.Transaction `json:"transaction"`
	SpentAmount money.Cents        `json:"spent_amount"`
	Remaining   money.Cents        `json:"remaining_budget"`
}

func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := middleware.UserID(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "missing user identity", nil)
		return
	}
	in, errs := parseTransactionInput(r, true)
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid transaction", errs)
		return
	}

	tx, b, err := h.svc.Create(r.Context(), uid, in)
	switch {
	case errors.Is(err, models.ErrNoBudget):
		// The transaction is persisted; only the reconciliation is reported.
		httpx.WriteJSON(w, http.StatusNotFound, map[string]any{
			"detail":      models.ErrNoBudget.Error(),
			"transaction": tx,
		})
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "create failed", nil)
	default:
		httpx.WriteJSON(w, http.StatusCreated, reconciled{
			Transaction: tx,
			SpentAmount: b.SpentAmount,
			Remaining:   b.Remaining(),
		})
	}
}

func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	tx, err := h.svc.GetByID(r.Context(), uid, chi.URLParam(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		httpx.WriteDetail(w, http.StatusNotFound, "transaction not found")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "lookup failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, tx)
}

func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	txs, err := h.svc.ListByUser(r.Context(), uid)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "list failed", nil)
		return
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	httpx.WriteJSON(w, http.StatusOK, txs)
}

func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	in, errs := parseTransactionInput(r, false)
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid transaction", errs)
		return
	}

	tx, b, err := h.svc.Update(r.Context(), uid, chi.URLParam(r, "id"), in)
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, "transaction not found")
	case errors.Is(err, models.ErrNoBudget):
		httpx.WriteDetail(w, http.StatusNotFound, models.ErrNoBudget.Error())
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "update failed", nil)
	default:
		httpx.WriteJSON(w, http.StatusOK, reconciled{
			Transaction: tx,
			SpentAmount: b.SpentAmount,
			Remaining:   b.Remaining(),
		})
	}
}

func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	_, err := h.svc.Delete(r.Context(), uid, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, "transaction not found")
	case errors.Is(err, models.ErrNoBudget):
		httpx.WriteDetail(w, http.StatusNotFound, models.ErrNoBudget.Error())
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "delete failed", nil)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

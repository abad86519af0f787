package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/baharkarakas/budget-tracker-backend/internal/api/httpx"
	"github.com/baharkarakas/budget-tracker-backend/internal/api/validate"
	"github.com/baharkarakas/budget-tracker-backend/internal/middleware"
	"github.com/baharkarakas/budget-tracker-backend/internal/models"
	"github.com/baharkarakas/budget-tracker-backend/internal/money"
	"github.com/baharkarakas/budget-tracker-backend/internal/services"
)

type BudgetHandler struct {
	svc *services.BudgetService
}

func NewBudgetHandler(svc *services.BudgetService) *BudgetHandler {
	return &BudgetHandler{svc: svc}
}

type budgetReq struct {
	Month  *int            `json:"month"`
	Year   *int            `json:"year"`
	Amount json.RawMessage `json:"amount"`
}

func (h *BudgetHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())

	var req budgetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid JSON", nil)
		return
	}

	var errs validate.Errs
	if req.Month == nil {
		errs = append(errs, validate.ErrField{Field: "month", Msg: "required"})
	} else if ef := validate.IntRange("month", *req.Month, 1, 12); ef != nil {
		errs = append(errs, *ef)
	}
	if req.Year == nil {
		errs = append(errs, validate.ErrField{Field: "year", Msg: "required"})
	}
	var amount money.Cents
	if req.Amount == nil {
		errs = append(errs, validate.ErrField{Field: "amount", Msg: "required"})
	} else if err := amount.UnmarshalJSON(req.Amount); err != nil {
		errs = append(errs, validate.ErrField{Field: "amount", Msg: "must be a decimal amount"})
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid budget", errs)
		return
	}

	b, err := h.svc.Create(r.Context(), uid, *req.Month, *req.Year, amount)
	switch {
	case errors.Is(err, models.ErrConflict):
		httpx.WriteDetail(w, http.StatusBadRequest, "budget already exists for this month/year")
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "create failed", nil)
	default:
		httpx.WriteJSON(w, http.StatusCreated, b)
	}
}

func (h *BudgetHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	b, err := h.svc.GetByID(r.Context(), uid, chi.URLParam(r, "id"))
	if errors.Is(err, models.ErrNotFound) {
		httpx.WriteDetail(w, http.StatusNotFound, "budget not found")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "lookup failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, b)
}

func (h *BudgetHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	bs, err := h.svc.ListByUser(r.Context(), uid)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "list failed", nil)
		return
	}
	if bs == nil {
		bs = []models.Budget{}
	}
	httpx.WriteJSON(w, http.StatusOK, bs)
}

func (h *BudgetHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())

	var req budgetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid JSON", nil)
		return
	}

	var errs validate.Errs
	in := services.BudgetInput{Month: req.Month, Year: req.Year}
	if req.Month != nil {
		if ef := validate.IntRange("month", *req.Month, 1, 12); ef != nil {
			errs = append(errs, *ef)
		}
	}
	if req.Amount != nil {
		var amount money.Cents
		if err := amount.UnmarshalJSON(req.Amount); err != nil {
			errs = append(errs, validate.ErrField{Field: "amount", Msg: "must be a decimal amount"})
		} else {
			in.Amount = &amount
		}
	}
	if len(errs) > 0 {
		httpx.WriteError(w, http.StatusBadRequest, "validation_error", "invalid budget", errs)
		return
	}

	b, err := h.svc.Update(r.Context(), uid, chi.URLParam(r, "id"), in)
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, "budget not found")
	case errors.Is(err, models.ErrConflict):
		httpx.WriteDetail(w, http.StatusBadRequest, "budget already exists for this month/year")
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "update failed", nil)
	default:
		httpx.WriteJSON(w, http.StatusOK, b)
	}
}

func (h *BudgetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	err := h.svc.Delete(r.Context(), uid, chi.URLParam(r, "id"))
	switch {
	case errors.Is(err, models.ErrNotFound):
		httpx.WriteDetail(w, http.StatusNotFound, "budget not found")
	case err != nil:
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "delete failed", nil)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Summary is total over all periods: a period without a budget yields zeros,
// never 404. Month and year default to today's.
func (h *BudgetHandler) Summary(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())

	now := time.Now()
	p := models.Period{Month: int(now.Month()), Year: now.Year()}
	if v := r.URL.Query().Get("month"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httpx.WriteDetail(w, http.StatusBadRequest, "month and year must be integers")
			return
		}
		p.Month = n
	}
	if v := r.URL.Query().Get("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			httpx.WriteDetail(w, http.StatusBadRequest, "month and year must be integers")
			return
		}
		p.Year = n
	}

	sum, err := h.svc.SummaryFor(r.Context(), uid, p)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "summary failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sum)
}

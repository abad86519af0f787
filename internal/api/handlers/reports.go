package handlers

import (
	"net/http"

	"github.com/baharkarakas/budget-tracker-backend/internal/api/httpx"
	"github.com/baharkarakas/budget-tracker-backend/internal/middleware"
	"github.com/baharkarakas/budget-tracker-backend/internal/services"
)

type ReportHandler struct {
	svc *services.ReportService
}

func NewReportHandler(svc *services.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc}
}

func (h *ReportHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	out, err := h.svc.SpendingByCategory(r.Context(), uid)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "report failed", nil)
		return
	}
	if len(out) == 0 {
		httpx.WriteDetail(w, http.StatusOK, "no spending data available")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

func (h *ReportHandler) Monthly(w http.ResponseWriter, r *http.Request) {
	uid, _ := middleware.UserID(r.Context())
	out, err := h.svc.MonthlyTotals(r.Context(), uid)
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "internal_error", "report failed", nil)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

package handlers

import (
	"net/http"

	"github.com/baharkarakas/budget-tracker-backend/internal/api/httpx"
	"github.com/baharkarakas/budget-tracker-backend/internal/models"
)

// ListCategories returns the fixed category registry.
func ListCategories(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, models.Categories())
}

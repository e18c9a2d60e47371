package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"capsdiag/internal/service"
)

// AdminHandler handles admin report endpoints
type AdminHandler struct {
	reportSvc *service.ReportService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(reportSvc *service.ReportService) *AdminHandler {
	return &AdminHandler{reportSvc: reportSvc}
}

// Results handles GET /v1/admin/results
func (h *AdminHandler) Results(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	results, err := h.reportSvc.RecentResults(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"results": results})
}

// Result handles GET /v1/admin/results/{id}
func (h *AdminHandler) Result(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportSvc.Result(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if result == nil {
		writeError(w, http.StatusNotFound, "result not found")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Stats handles GET /v1/admin/stats
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.reportSvc.Distribution(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"distribution": counts})
}

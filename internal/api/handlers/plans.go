package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"smart-routing-service/internal/api/dto"
	"smart-routing-service/internal/ports"
)

// PlanHandler exposes read-only optimization history. When the service runs
// without Postgres the Repo is nil and the endpoints report 503.
type PlanHandler struct {
	Repo ports.PlanRepository
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "plan history is not configured")
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 500 {
			writeError(w, r, http.StatusBadRequest, "limit must be an integer between 1 and 500")
			return
		}
		limit = n
	}

	plans, err := h.Repo.ListPlans(r.Context(), limit)
	if err != nil {
		log.Printf("list plans failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPlansResponse{Plans: make([]dto.PlanSummaryResponse, 0, len(plans))}
	for _, p := range plans {
		res.Plans = append(res.Plans, planSummary(p))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	if h.Repo == nil {
		writeError(w, r, http.StatusServiceUnavailable, "plan history is not configured")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/v1/plans/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, r, http.StatusBadRequest, "plan id is required")
		return
	}

	rec, err := h.Repo.GetPlan(r.Context(), id)
	if errors.Is(err, ports.ErrPlanNotFound) {
		writeError(w, r, http.StatusNotFound, "plan not found")
		return
	}
	if err != nil {
		log.Printf("get plan failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.PlanDetailResponse{
		PlanSummaryResponse: planSummary(*rec),
		Route:               rec.Response,
	}

	writeJSON(w, r, http.StatusOK, res)
}

func planSummary(p ports.PlanRecord) dto.PlanSummaryResponse {
	return dto.PlanSummaryResponse{
		PlanID:                p.ID,
		DriverWilaya:          p.DriverWilaya,
		StopsCount:            p.StopsCount,
		TotalDistanceKm:       p.TotalDistanceKm,
		TotalEstimatedMinutes: p.TotalEstimatedMinutes,
		CreatedAt:             p.CreatedAt,
	}
}

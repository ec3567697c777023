package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"smart-routing-service/internal/api/dto"
	"smart-routing-service/internal/domain"
	"smart-routing-service/internal/metrics"
	"smart-routing-service/internal/ports"
	"smart-routing-service/internal/services"
)

// OptimizeHandler computes delivery routes. Cache and Repo are optional:
// a nil cache skips response caching, a nil repo skips history persistence.
type OptimizeHandler struct {
	Cache ports.PlanCache
	Repo  ports.PlanRepository
	Opts  services.Options
}

// Optimize validates the request, serves a cached response when the same
// request was seen recently, and otherwise runs the optimizer, persists the
// run, and returns the ordered route. Cache and repository failures degrade
// to recomputation / a lost history row; they never fail the request.
func (h *OptimizeHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	if msg := validateOptimizeRequest(&req); msg != "" {
		writeError(w, r, http.StatusBadRequest, msg)
		return
	}

	key, err := requestDigest(&req)
	if err != nil {
		log.Printf("request digest failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		payload, ok, err := h.Cache.Get(r.Context(), key)
		if err != nil {
			log.Printf("plan cache get failed: %v", err)
		}
		if ok {
			metrics.OptimizeRuns.WithLabelValues("hit").Inc()
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(payload)
			return
		}
	}

	driver := domain.DriverPosition{
		Coords: domain.Coordinates{Lat: *req.DriverLocation.Lat, Lng: *req.DriverLocation.Lng},
		Wilaya: req.DriverLocation.Wilaya,
	}

	deliveries := make([]domain.DeliveryPoint, 0, len(req.Deliveries))
	for _, d := range req.Deliveries {
		point := domain.DeliveryPoint{
			ID:           d.ID,
			CustomerName: d.CustomerName,
			Address:      d.Address,
			Wilaya:       d.Wilaya,
		}
		if d.Lat != nil && d.Lng != nil {
			point.Coords = &domain.Coordinates{Lat: *d.Lat, Lng: *d.Lng}
		}
		deliveries = append(deliveries, point)
	}

	plan := services.OptimizeRoute(driver, deliveries, h.Opts)

	metrics.OptimizeRuns.WithLabelValues("miss").Inc()
	metrics.OptimizeStops.Observe(float64(len(plan.Stops)))

	res := buildOptimizeResponse(plan)

	payload, err := json.Marshal(res)
	if err != nil {
		log.Printf("encode optimize response failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(r.Context(), key, payload); err != nil {
			log.Printf("plan cache put failed: %v", err)
		}
	}

	if h.Repo != nil {
		rec := ports.PlanRecord{
			ID:                    uuid.NewString(),
			DriverWilaya:          req.DriverLocation.Wilaya,
			StopsCount:            res.StopsCount,
			TotalDistanceKm:       res.TotalDistanceKm,
			TotalEstimatedMinutes: res.TotalEstimatedMinutes,
			Response:              payload,
		}
		if err := h.Repo.SavePlan(r.Context(), rec); err != nil {
			log.Printf("save plan failed: %v", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(payload)
}

// validateOptimizeRequest returns a 400 message, or "" when the request is
// acceptable. Unknown wilaya names are not rejected here; they resolve to
// the capital fallback downstream.
func validateOptimizeRequest(req *dto.OptimizeRequest) string {
	if req.DriverLocation.Lat == nil || req.DriverLocation.Lng == nil {
		return "driver_location.lat and driver_location.lng are required"
	}
	if strings.TrimSpace(req.DriverLocation.Wilaya) == "" {
		return "driver_location.wilaya is required"
	}
	for i, d := range req.Deliveries {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Sprintf("deliveries[%d].id is required", i)
		}
		if (d.Lat == nil) != (d.Lng == nil) {
			return fmt.Sprintf("deliveries[%d] must provide both lat and lng or neither", i)
		}
	}
	return ""
}

// requestDigest derives a stable cache key from the decoded request.
// Marshalling the typed struct (fixed field order) makes the digest
// independent of the caller's JSON formatting.
func requestDigest(req *dto.OptimizeRequest) (string, error) {
	canonical, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("request digest: marshal: %w", err)
	}
	sum := sha256.Sum256(canonical)
	return hex.EncodeToString(sum[:]), nil
}

func buildOptimizeResponse(plan *domain.RoutePlan) dto.OptimizeResponse {
	route := make([]dto.OptimizedStopResponse, 0, len(plan.Stops))
	for _, s := range plan.Stops {
		route = append(route, dto.OptimizedStopResponse{
			StopNumber: s.StopNumber,
			Delivery: dto.Delivery{
				ID:           s.Delivery.ID,
				CustomerName: s.Delivery.CustomerName,
				Address:      s.Delivery.Address,
				Wilaya:       s.Delivery.Wilaya,
				Lat:          latPtr(s.Delivery.Coords),
				Lng:          lngPtr(s.Delivery.Coords),
			},
			DistanceKm:       round1(s.DistanceKm),
			EstimatedMinutes: s.EstimatedMinutes,
			SameWilaya:       s.SameWilaya,
		})
	}

	return dto.OptimizeResponse{
		OptimizedRoute:        route,
		TotalDistanceKm:       round1(plan.TotalDistanceKm),
		TotalEstimatedMinutes: plan.TotalEstimatedMinutes,
		StopsCount:            len(plan.Stops),
		Algorithm:             services.AlgorithmName,
	}
}

func latPtr(c *domain.Coordinates) *float64 {
	if c == nil {
		return nil
	}
	v := c.Lat
	return &v
}

func lngPtr(c *domain.Coordinates) *float64 {
	if c == nil {
		return nil
	}
	v := c.Lng
	return &v
}

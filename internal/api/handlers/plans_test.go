package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"smart-routing-service/internal/api/dto"
	"smart-routing-service/internal/ports"
)

type fakePlanRepo struct {
	plans map[string]ports.PlanRecord
}

func (f *fakePlanRepo) SavePlan(_ context.Context, rec ports.PlanRecord) error {
	f.plans[rec.ID] = rec
	return nil
}

func (f *fakePlanRepo) ListPlans(_ context.Context, limit int) ([]ports.PlanRecord, error) {
	out := make([]ports.PlanRecord, 0, len(f.plans))
	for _, p := range f.plans {
		if len(out) == limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakePlanRepo) GetPlan(_ context.Context, id string) (*ports.PlanRecord, error) {
	p, ok := f.plans[id]
	if !ok {
		return nil, ports.ErrPlanNotFound
	}
	return &p, nil
}

func newFakeRepo() *fakePlanRepo {
	return &fakePlanRepo{plans: map[string]ports.PlanRecord{
		"p-1": {
			ID:                    "p-1",
			DriverWilaya:          "Alger",
			StopsCount:            2,
			TotalDistanceKm:       14.2,
			TotalEstimatedMinutes: 29,
			Response:              []byte(`{"stops_count":2}`),
			CreatedAt:             time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC),
		},
	}}
}

func TestPlanHandlerList(t *testing.T) {
	h := &PlanHandler{Repo: newFakeRepo()}
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/v1/plans", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var res dto.ListPlansResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(res.Plans) != 1 || res.Plans[0].PlanID != "p-1" {
		t.Fatalf("unexpected plans: %+v", res.Plans)
	}
}

func TestPlanHandlerListBadLimit(t *testing.T) {
	h := &PlanHandler{Repo: newFakeRepo()}
	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/v1/plans?limit=0", nil))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}

func TestPlanHandlerGet(t *testing.T) {
	h := &PlanHandler{Repo: newFakeRepo()}
	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/v1/plans/p-1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var res dto.PlanDetailResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if res.PlanID != "p-1" || res.StopsCount != 2 {
		t.Fatalf("unexpected plan: %+v", res)
	}
	if string(res.Route) != `{"stops_count":2}` {
		t.Fatalf("route payload = %s", res.Route)
	}
}

func TestPlanHandlerGetNotFound(t *testing.T) {
	h := &PlanHandler{Repo: newFakeRepo()}
	rr := httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/v1/plans/nope", nil))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestPlanHandlerUnconfigured(t *testing.T) {
	h := &PlanHandler{}

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/v1/plans", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("list status = %d, want 503", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.Get(rr, httptest.NewRequest(http.MethodGet, "/v1/plans/p-1", nil))
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("get status = %d, want 503", rr.Code)
	}
}

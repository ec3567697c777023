package ports

import (
	"context"
	"errors"
	"time"
)

// ErrPlanNotFound is returned when a plan id has no stored record.
var ErrPlanNotFound = errors.New("plan not found")

// PlanRecord is one persisted optimization run.
type PlanRecord struct {
	ID                    string
	DriverWilaya          string
	StopsCount            int
	TotalDistanceKm       float64
	TotalEstimatedMinutes int
	Response              []byte
	CreatedAt             time.Time
}

// Port: a boundary for persisting and retrieving optimization history.
type PlanRepository interface {
	// Store a completed optimization run.
	SavePlan(ctx context.Context, rec PlanRecord) error
	// Return the most recent runs, newest first.
	ListPlans(ctx context.Context, limit int) ([]PlanRecord, error)
	// Return one run by id, or ErrPlanNotFound.
	GetPlan(ctx context.Context, id string) (*PlanRecord, error)
}

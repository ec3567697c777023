package dto

import (
	"encoding/json"
	"time"
)

type PlanSummaryResponse struct {
	PlanID                string    `json:"plan_id"`
	DriverWilaya          string    `json:"driver_wilaya"`
	StopsCount            int       `json:"stops_count"`
	TotalDistanceKm       float64   `json:"total_distance_km"`
	TotalEstimatedMinutes int       `json:"total_estimated_minutes"`
	CreatedAt             time.Time `json:"created_at"`
}

type ListPlansResponse struct {
	Plans []PlanSummaryResponse `json:"plans"`
}

// PlanDetailResponse adds the stored optimize response to the summary.
type PlanDetailResponse struct {
	PlanSummaryResponse
	Route json.RawMessage `json:"route"`
}

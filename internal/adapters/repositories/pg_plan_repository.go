package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"smart-routing-service/internal/platform/obs"
	"smart-routing-service/internal/ports"
)

// Postgres-backed implementation of the PlanRepository port.
type PgPlanRepository struct{ DB *sql.DB }

func NewPgPlanRepository(db *sql.DB) *PgPlanRepository {
	return &PgPlanRepository{DB: db}
}

// Store a completed optimization run.
func (p *PgPlanRepository) SavePlan(ctx context.Context, rec ports.PlanRecord) (err error) {
	defer obs.Time(ctx, "plans.Save")(&err)

	if p.DB == nil {
		return errors.New("pg plan repository: DB is nil")
	}

	if strings.TrimSpace(rec.ID) == "" {
		return errors.New("save plan: plan id must not be empty")
	}

	query := `
	INSERT INTO route_plans (
		plan_id,
		driver_wilaya,
		stops_count,
		total_distance_km,
		total_estimated_minutes,
		response
	)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = p.DB.ExecContext(
		ctx,
		query,
		rec.ID,
		rec.DriverWilaya,
		rec.StopsCount,
		rec.TotalDistanceKm,
		rec.TotalEstimatedMinutes,
		rec.Response,
	)
	if err != nil {
		return fmt.Errorf("save plan: insert plan_id=%s: %w", rec.ID, err)
	}

	return nil
}

// Return the most recent optimization runs, newest first.
func (p *PgPlanRepository) ListPlans(ctx context.Context, limit int) (_ []ports.PlanRecord, err error) {
	defer obs.Time(ctx, "plans.List")(&err)

	if p.DB == nil {
		return nil, errors.New("pg plan repository: DB is nil")
	}

	if limit <= 0 {
		limit = 50
	}

	query := `
	SELECT
		plan_id,
		driver_wilaya,
		stops_count,
		total_distance_km,
		total_estimated_minutes,
		created_at
	FROM route_plans
	ORDER BY created_at DESC
	LIMIT $1;
	`
	rows, err := p.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list plans: query route_plans table: %w", err)
	}
	defer rows.Close()

	plans := make([]ports.PlanRecord, 0, limit)
	for rows.Next() {
		var rec ports.PlanRecord
		err := rows.Scan(
			&rec.ID,
			&rec.DriverWilaya,
			&rec.StopsCount,
			&rec.TotalDistanceKm,
			&rec.TotalEstimatedMinutes,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("list plans: scan row: %w", err)
		}
		plans = append(plans, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list plans: row iteration: %w", err)
	}

	return plans, nil
}

// Return one optimization run with its stored response body.
func (p *PgPlanRepository) GetPlan(ctx context.Context, id string) (_ *ports.PlanRecord, err error) {
	defer obs.Time(ctx, "plans.Get")(&err)

	if p.DB == nil {
		return nil, errors.New("pg plan repository: DB is nil")
	}

	query := `
	SELECT
		plan_id,
		driver_wilaya,
		stops_count,
		total_distance_km,
		total_estimated_minutes,
		response,
		created_at
	FROM route_plans
	WHERE plan_id = $1;
	`
	var rec ports.PlanRecord
	err = p.DB.QueryRowContext(ctx, query, id).Scan(
		&rec.ID,
		&rec.DriverWilaya,
		&rec.StopsCount,
		&rec.TotalDistanceKm,
		&rec.TotalEstimatedMinutes,
		&rec.Response,
		&rec.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ports.ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get plan: query plan_id=%s: %w", id, err)
	}

	return &rec, nil
}

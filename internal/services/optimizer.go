package services

import (
	"math"

	"smart-routing-service/internal/domain"
	"smart-routing-service/internal/geo"
)

// AlgorithmName identifies the routing heuristic on the wire.
const AlgorithmName = "proximity_nearest_neighbour"

// Tuning constants calibrated by the dispatch team. Overridable through
// Options; the defaults are the values the fleet runs with in production.
const (
	DefaultSameWilayaBias = 0.5
	DefaultAvgSpeedKmh    = 35.0
	DefaultMinStopMinutes = 5
)

// Options hold the optimizer's tuning knobs. Zero values fall back to the
// defaults above, so Options{} is always usable.
type Options struct {
	// Multiplier applied to a candidate's distance when its wilaya matches
	// the driver's current wilaya. Affects selection order only, never the
	// reported distance.
	SameWilayaBias float64
	// Assumed average urban travel speed.
	AvgSpeedKmh float64
	// Floor on the per-stop duration estimate, modelling handling time.
	MinStopMinutes int
}

func DefaultOptions() Options {
	return Options{
		SameWilayaBias: DefaultSameWilayaBias,
		AvgSpeedKmh:    DefaultAvgSpeedKmh,
		MinStopMinutes: DefaultMinStopMinutes,
	}
}

func (o Options) withDefaults() Options {
	if o.SameWilayaBias <= 0 {
		o.SameWilayaBias = DefaultSameWilayaBias
	}
	if o.AvgSpeedKmh <= 0 {
		o.AvgSpeedKmh = DefaultAvgSpeedKmh
	}
	if o.MinStopMinutes <= 0 {
		o.MinStopMinutes = DefaultMinStopMinutes
	}
	return o
}

type routeCandidate struct {
	point  domain.DeliveryPoint
	coords domain.Coordinates
	placed bool
}

// OptimizeRoute orders delivery points using a greedy nearest-neighbour
// construction with a same-wilaya locality bias.
//
// The algorithm minimizes immediate biased travel distance at each step.
// It does not attempt global route optimization (e.g., VRP solvers).
// The design prioritizes determinism and simplicity over optimality:
// ties on biased distance are broken by input order (first occurrence wins),
// never by map iteration order.
//
// The function is total: an empty delivery list yields an empty plan, and
// points without explicit coordinates are resolved through the wilaya table
// (unknown names degrade to the capital fallback). O(n²) over the stop
// count, which is bounded by a single driver's daily load.
func OptimizeRoute(driver domain.DriverPosition, deliveries []domain.DeliveryPoint, opts Options) *domain.RoutePlan {
	opts = opts.withDefaults()

	if len(deliveries) == 0 {
		return &domain.RoutePlan{Stops: []domain.OptimizedStop{}}
	}

	candidates := make([]routeCandidate, len(deliveries))
	for i, d := range deliveries {
		candidates[i] = routeCandidate{point: d, coords: resolveCoords(d)}
	}

	current := driver.Coords
	currentWilaya := driver.Wilaya

	stops := make([]domain.OptimizedStop, 0, len(deliveries))
	totalKm := 0.0
	totalMinutes := 0

	for seq := 1; seq <= len(deliveries); seq++ {
		best := -1
		bestBiased := math.MaxFloat64
		bestTrue := 0.0

		for i := range candidates {
			if candidates[i].placed {
				continue
			}

			trueKm := domain.HaversineKm(current, candidates[i].coords)
			biased := trueKm
			if candidates[i].point.Wilaya == currentWilaya {
				biased *= opts.SameWilayaBias
			}

			// Strict < keeps the earliest input position on equal biased
			// distances (deterministic tie-break).
			if biased < bestBiased {
				best = i
				bestBiased = biased
				bestTrue = trueKm
			}
		}

		chosen := &candidates[best]
		minutes := estimateMinutes(bestTrue, opts)

		// SameWilaya is judged against the wilaya held before advancing.
		stops = append(stops, domain.OptimizedStop{
			StopNumber:       seq,
			Delivery:         chosen.point,
			DistanceKm:       bestTrue,
			EstimatedMinutes: minutes,
			SameWilaya:       chosen.point.Wilaya == currentWilaya,
		})

		totalKm += bestTrue
		totalMinutes += minutes

		current = chosen.coords
		currentWilaya = chosen.point.Wilaya
		chosen.placed = true
	}

	return &domain.RoutePlan{
		Stops:                 stops,
		TotalDistanceKm:       totalKm,
		TotalEstimatedMinutes: totalMinutes,
	}
}

func resolveCoords(d domain.DeliveryPoint) domain.Coordinates {
	if d.Coords != nil {
		return *d.Coords
	}
	return geo.Resolve(d.Wilaya)
}

// estimateMinutes converts a leg distance into a duration estimate at the
// configured average speed, floored at MinStopMinutes so even a zero-length
// hop accounts for handling time.
func estimateMinutes(km float64, opts Options) int {
	m := int(math.Floor(km / opts.AvgSpeedKmh * 60))
	if m < opts.MinStopMinutes {
		return opts.MinStopMinutes
	}
	return m
}

package services

import (
	"math"
	"testing"

	"smart-routing-service/internal/domain"
)

// kmPerDegreeLat matches the haversine Earth radius: 6371 * pi / 180.
const kmPerDegreeLat = 111.19492664455873

// kmNorth returns a point the given number of kilometres due north of base,
// so the haversine distance from base is exactly km.
func kmNorth(base domain.Coordinates, km float64) *domain.Coordinates {
	return &domain.Coordinates{Lat: base.Lat + km/kmPerDegreeLat, Lng: base.Lng}
}

func TestOptimizeRouteEmptyInput(t *testing.T) {
	driver := domain.DriverPosition{
		Coords: domain.Coordinates{Lat: 36.75, Lng: 3.04},
		Wilaya: "Alger",
	}

	plan := OptimizeRoute(driver, nil, DefaultOptions())

	if len(plan.Stops) != 0 {
		t.Fatalf("expected empty route, got %d stops", len(plan.Stops))
	}
	if plan.TotalDistanceKm != 0 {
		t.Errorf("total distance = %v, want 0", plan.TotalDistanceKm)
	}
	if plan.TotalEstimatedMinutes != 0 {
		t.Errorf("total minutes = %d, want 0", plan.TotalEstimatedMinutes)
	}
}

func TestOptimizeRouteLocalityBias(t *testing.T) {
	// Driver in Alger. D1 is in Alger at 10 km true distance, D2 in Oran at
	// 6 km. Biased: D1 = 5, D2 = 6, so D1 must be picked first even though
	// it is farther in true distance — and its reported distance must stay
	// the unbiased 10 km.
	base := domain.Coordinates{Lat: 36.75, Lng: 3.04}
	driver := domain.DriverPosition{Coords: base, Wilaya: "Alger"}

	deliveries := []domain.DeliveryPoint{
		{ID: "D2", Wilaya: "Oran", Coords: kmNorth(base, 6)},
		{ID: "D1", Wilaya: "Alger", Coords: kmNorth(base, 10)},
	}

	plan := OptimizeRoute(driver, deliveries, DefaultOptions())

	if plan.Stops[0].Delivery.ID != "D1" {
		t.Fatalf("first stop = %s, want D1", plan.Stops[0].Delivery.ID)
	}
	if math.Abs(plan.Stops[0].DistanceKm-10) > 0.01 {
		t.Errorf("first leg distance = %v, want the true 10 km (bias must not leak into reporting)", plan.Stops[0].DistanceKm)
	}
	if !plan.Stops[0].SameWilaya {
		t.Error("D1 should be flagged same-wilaya")
	}
	if plan.Stops[1].Delivery.ID != "D2" {
		t.Fatalf("second stop = %s, want D2", plan.Stops[1].Delivery.ID)
	}
	if plan.Stops[1].SameWilaya {
		t.Error("D2 is in Oran while the driver advanced to Alger; flag must be false")
	}
}

func TestOptimizeRouteEqualDistanceSameWilayaWins(t *testing.T) {
	base := domain.Coordinates{Lat: 35.70, Lng: -0.65}
	driver := domain.DriverPosition{Coords: base, Wilaya: "Oran"}

	// The out-of-wilaya delivery comes first in input order, so only the
	// bias (not the tie-break) can put the Oran stop ahead.
	deliveries := []domain.DeliveryPoint{
		{ID: "away", Wilaya: "Mostaganem", Coords: kmNorth(base, 4)},
		{ID: "local", Wilaya: "Oran", Coords: &domain.Coordinates{Lat: base.Lat - 4/kmPerDegreeLat, Lng: base.Lng}},
	}

	plan := OptimizeRoute(driver, deliveries, DefaultOptions())

	if plan.Stops[0].Delivery.ID != "local" {
		t.Fatalf("first stop = %s, want the same-wilaya delivery", plan.Stops[0].Delivery.ID)
	}
}

func TestOptimizeRouteTieBreakIsInputOrder(t *testing.T) {
	base := domain.Coordinates{Lat: 36.75, Lng: 3.04}
	driver := domain.DriverPosition{Coords: base, Wilaya: "Alger"}

	// Identical coordinates and wilaya: biased distances are exactly equal,
	// so the first occurrence must win.
	spot := kmNorth(base, 2)
	deliveries := []domain.DeliveryPoint{
		{ID: "first", Wilaya: "Alger", Coords: spot},
		{ID: "second", Wilaya: "Alger", Coords: spot},
	}

	plan := OptimizeRoute(driver, deliveries, DefaultOptions())

	if plan.Stops[0].Delivery.ID != "first" || plan.Stops[1].Delivery.ID != "second" {
		t.Fatalf("tie-break broke input order: got %s, %s",
			plan.Stops[0].Delivery.ID, plan.Stops[1].Delivery.ID)
	}
}

func TestOptimizeRouteIsPermutationOfInput(t *testing.T) {
	driver := domain.DriverPosition{
		Coords: domain.Coordinates{Lat: 36.75, Lng: 3.04},
		Wilaya: "Alger",
	}

	// Mix of explicit coordinates, wilaya-resolved points, and an unknown
	// wilaya that falls back to the capital.
	deliveries := []domain.DeliveryPoint{
		{ID: "a", Wilaya: "Oran"},
		{ID: "b", Wilaya: "Constantine"},
		{ID: "c", Wilaya: "Alger", Coords: &domain.Coordinates{Lat: 36.76, Lng: 3.05}},
		{ID: "d", Wilaya: "Atlantis"},
		{ID: "e", Wilaya: "Tamanrasset"},
		{ID: "f", Wilaya: "Béjaïa"},
	}

	plan := OptimizeRoute(driver, deliveries, DefaultOptions())

	if len(plan.Stops) != len(deliveries) {
		t.Fatalf("got %d stops, want %d", len(plan.Stops), len(deliveries))
	}

	seen := make(map[string]bool, len(deliveries))
	for i, s := range plan.Stops {
		if s.StopNumber != i+1 {
			t.Errorf("stop %d has number %d, want %d", i, s.StopNumber, i+1)
		}
		if seen[s.Delivery.ID] {
			t.Errorf("delivery %s appears more than once", s.Delivery.ID)
		}
		seen[s.Delivery.ID] = true
	}
	for _, d := range deliveries {
		if !seen[d.ID] {
			t.Errorf("delivery %s missing from route", d.ID)
		}
	}
}

func TestOptimizeRouteTotalsAreSums(t *testing.T) {
	driver := domain.DriverPosition{
		Coords: domain.Coordinates{Lat: 36.75, Lng: 3.04},
		Wilaya: "Alger",
	}
	deliveries := []domain.DeliveryPoint{
		{ID: "a", Wilaya: "Blida"},
		{ID: "b", Wilaya: "Oran"},
		{ID: "c", Wilaya: "Sétif"},
	}

	plan := OptimizeRoute(driver, deliveries, DefaultOptions())

	var km float64
	var minutes int
	for _, s := range plan.Stops {
		km += s.DistanceKm
		minutes += s.EstimatedMinutes
	}

	if math.Abs(plan.TotalDistanceKm-km) > 1e-9 {
		t.Errorf("total distance = %v, sum of legs = %v", plan.TotalDistanceKm, km)
	}
	if plan.TotalEstimatedMinutes != minutes {
		t.Errorf("total minutes = %d, sum of legs = %d", plan.TotalEstimatedMinutes, minutes)
	}
}

func TestEstimateMinutes(t *testing.T) {
	opts := DefaultOptions()

	cases := []struct {
		km   float64
		want int
	}{
		{0, 5},    // zero-distance hop still costs handling time
		{1, 5},    // floor(1.71) below the 5-minute floor
		{3, 5},    // floor(5.14) = 5
		{10, 17},  // floor(17.14)
		{35, 60},  // exactly one hour at 35 km/h
		{70, 120},
	}

	for _, tc := range cases {
		if got := estimateMinutes(tc.km, opts); got != tc.want {
			t.Errorf("estimateMinutes(%v) = %d, want %d", tc.km, got, tc.want)
		}
	}
}

func TestOptimizeRouteMinutesNeverBelowFloor(t *testing.T) {
	base := domain.Coordinates{Lat: 36.75, Lng: 3.04}
	driver := domain.DriverPosition{Coords: base, Wilaya: "Alger"}

	// Two stops at the driver's exact position.
	deliveries := []domain.DeliveryPoint{
		{ID: "x", Wilaya: "Alger", Coords: &base},
		{ID: "y", Wilaya: "Alger", Coords: &base},
	}

	plan := OptimizeRoute(driver, deliveries, DefaultOptions())

	for _, s := range plan.Stops {
		if s.EstimatedMinutes < DefaultMinStopMinutes {
			t.Errorf("stop %d minutes = %d, want >= %d", s.StopNumber, s.EstimatedMinutes, DefaultMinStopMinutes)
		}
	}
}

func TestOptimizeRouteCustomOptions(t *testing.T) {
	base := domain.Coordinates{Lat: 36.75, Lng: 3.04}
	driver := domain.DriverPosition{Coords: base, Wilaya: "Alger"}

	deliveries := []domain.DeliveryPoint{
		{ID: "far-local", Wilaya: "Alger", Coords: kmNorth(base, 10)},
		{ID: "near-away", Wilaya: "Oran", Coords: kmNorth(base, 6)},
	}

	// With the bias disabled (factor 1.0) the nearer stop wins regardless
	// of wilaya.
	opts := Options{SameWilayaBias: 1.0, AvgSpeedKmh: 35, MinStopMinutes: 5}
	plan := OptimizeRoute(driver, deliveries, opts)

	if plan.Stops[0].Delivery.ID != "near-away" {
		t.Fatalf("with bias 1.0 first stop = %s, want near-away", plan.Stops[0].Delivery.ID)
	}
}

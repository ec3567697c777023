package domain

// Represents a single parcel drop-off handled by the optimizer.
// A DeliveryPoint carries a free-text address for the driver and a wilaya
// name for coarse geographic grouping. Coords is nil when the caller only
// knows the wilaya; the optimizer resolves a representative coordinate in
// that case.
type DeliveryPoint struct {
	ID           string
	CustomerName string
	Address      string
	Wilaya       string
	Coords       *Coordinates
}

// Current position of the driver, used only as the initial point of the
// route. Not persisted.
type DriverPosition struct {
	Coords Coordinates
	Wilaya string
}

// Represents one placed stop in an optimized route.
// DistanceKm is the true (unbiased) leg distance from the previous point.
// SameWilaya reflects the driver's wilaya at the moment the stop was chosen,
// before advancing.
type OptimizedStop struct {
	StopNumber       int
	Delivery         DeliveryPoint
	DistanceKm       float64
	EstimatedMinutes int
	SameWilaya       bool
}

// Represents the computed visiting order for a single driver.
// A RoutePlan is the output of the optimizer and describes the ordered
// sequence of stops along with aggregate distance and duration metrics.
// It is immutable planning data and contains no side effects.
type RoutePlan struct {
	Stops                 []OptimizedStop
	TotalDistanceKm       float64
	TotalEstimatedMinutes int
}

package dto

// DriverLocation is the driver's starting position. Lat/Lng are pointers so
// the validation layer can distinguish missing fields from zero values.
type DriverLocation struct {
	Lat    *float64 `json:"lat"`
	Lng    *float64 `json:"lng"`
	Wilaya string   `json:"wilaya"`
}

// Delivery is one requested stop. Lat/Lng are optional; when absent the
// wilaya name drives coordinate resolution.
type Delivery struct {
	ID           string   `json:"id"`
	CustomerName string   `json:"customer_name"`
	Address      string   `json:"address"`
	Wilaya       string   `json:"wilaya"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
}

type OptimizeRequest struct {
	DriverLocation DriverLocation `json:"driver_location"`
	Deliveries     []Delivery     `json:"deliveries"`
}

type OptimizedStopResponse struct {
	StopNumber       int      `json:"stop_number"`
	Delivery         Delivery `json:"delivery"`
	DistanceKm       float64  `json:"distance_km"`
	EstimatedMinutes int      `json:"estimated_minutes"`
	SameWilaya       bool     `json:"same_wilaya"`
}

type OptimizeResponse struct {
	OptimizedRoute        []OptimizedStopResponse `json:"optimized_route"`
	TotalDistanceKm       float64                 `json:"total_distance_km"`
	TotalEstimatedMinutes int                     `json:"total_estimated_minutes"`
	StopsCount            int                     `json:"stops_count"`
	Algorithm             string                  `json:"algorithm"`
}

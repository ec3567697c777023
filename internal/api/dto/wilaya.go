package dto

type WilayaResponse struct {
	Code     int     `json:"code"`
	Name     string  `json:"name"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Southern bool    `json:"southern"`
}

type ListWilayasResponse struct {
	Wilayas []WilayaResponse `json:"wilayas"`
	Count   int              `json:"count"`
}

package handlers

import (
	"net/http"

	"smart-routing-service/internal/api/dto"
	"smart-routing-service/internal/geo"
)

// WilayaHandler exposes the read-only wilaya reference table.
type WilayaHandler struct{}

func (h *WilayaHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	table := geo.All()
	res := dto.ListWilayasResponse{
		Wilayas: make([]dto.WilayaResponse, 0, len(table)),
		Count:   len(table),
	}
	for _, wil := range table {
		res.Wilayas = append(res.Wilayas, dto.WilayaResponse{
			Code:     wil.Code,
			Name:     wil.Name,
			Lat:      wil.Coords.Lat,
			Lng:      wil.Coords.Lng,
			Southern: wil.Southern,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

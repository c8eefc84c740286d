package handlers

import (
	"iss-display-gadget/internal/api/dto"
	"iss-display-gadget/internal/ports"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
)

const (
	defaultObservationLimit = 20
	MaxObservationLimit     = 500
)

// ObservationHandler lists recorded ISS fixes, newest first.
type ObservationHandler struct {
	Repo ports.ObservationRepository
}

func (h *ObservationHandler) List(w http.ResponseWriter, r *http.Request) {
	if h.Repo == nil {
		writeError(w, r, http.StatusNotFound, "observation history is disabled")
		return
	}

	limit := defaultObservationLimit
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, MaxObservationLimit)
	}

	obs, err := h.Repo.Recent(r.Context(), limit)
	if err != nil {
		log.Printf("req_id=%s list observations failed: %v", middleware.GetReqID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListObservationsResponse{
		Observations: make([]dto.ObservationResponse, 0, len(obs)),
	}
	for _, o := range obs {
		res.Observations = append(res.Observations, dto.ObservationResponse{
			ObservedAt:    o.ObservedAt,
			Lat:           o.Position.Lat,
			Lon:           o.Position.Lon,
			DistanceMiles: o.DistanceMiles,
			Country:       o.Country,
			City:          o.City,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

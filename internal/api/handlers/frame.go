package handlers

import (
	"iss-display-gadget/internal/api/dto"
	"iss-display-gadget/internal/ports"
	"iss-display-gadget/internal/render"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
)

// FrameHandler serves what the display currently shows.
type FrameHandler struct {
	Source ports.FrameSource
}

func (h *FrameHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, dto.NewFrameResponse(h.Source.Snapshot()))
}

// PNG renders the current frame as the panel would show it.
func (h *FrameHandler) PNG(w http.ResponseWriter, r *http.Request) {
	data, err := render.PNG(h.Source.Snapshot())
	if err != nil {
		log.Printf("req_id=%s render frame failed: %v", middleware.GetReqID(r.Context()), err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

package handlers

import (
	"iss-display-gadget/internal/api/dto"
	"iss-display-gadget/internal/domain"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Presser accepts software button presses.
type Presser interface {
	Press(b domain.Button)
}

type ButtonHandler struct {
	Panel Presser
}

// Press queues a press of {button} (a to e). The gadget picks it up on its
// next poll, so the response is 202.
func (h *ButtonHandler) Press(w http.ResponseWriter, r *http.Request) {
	b, err := domain.ParseButton(chi.URLParam(r, "button"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "button must be one of a, b, c, d, e")
		return
	}

	h.Panel.Press(b)
	log.Printf("req_id=%s virtual press button=%s mode=%s", middleware.GetReqID(r.Context()), b, b.Mode())

	writeJSON(w, r, http.StatusAccepted, dto.ButtonResponse{Button: b.String(), Mode: b.Mode().String()})
}

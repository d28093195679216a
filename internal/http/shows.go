package httpapp

import (
	"net/http"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/constants"
)

type rescheduleRequest struct {
	StartTime string `form:"start_time" json:"start_time"`
}

func (h *Handler) ListShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.App.Bookings.ListShows(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, shows)
}

// CreateShow answers 201 with the booked show or 409 with the conflict.
func (h *Handler) CreateShow(w http.ResponseWriter, r *http.Request) {
	var in app.ShowInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	outcome, err := h.App.Bookings.CreateShow(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOutcome(w, outcome, constants.StatusCreated)
}

func (h *Handler) RescheduleShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req rescheduleRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	outcome, err := h.App.Bookings.RescheduleShow(r.Context(), id, req.StartTime)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeOutcome(w, outcome, constants.StatusOK)
}

func (h *Handler) CancelShow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.App.Bookings.CancelShow(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(constants.StatusNoContent)
}

func (h *Handler) writeOutcome(w http.ResponseWriter, outcome app.BookingOutcome, okStatus int) {
	if outcome.Status == app.BookingConflict {
		h.writeJSON(w, constants.StatusConflict, outcome)
		return
	}
	h.writeJSON(w, okStatus, outcome)
}

package httpapp

import (
	"net/http"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/constants"
)

type searchRequest struct {
	SearchTerm string `form:"search_term" json:"search_term"`
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	home, err := h.App.Search.Recent(r.Context(), constants.DefaultRecentLimit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, home)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	areas, err := h.App.Search.VenuesByLocality(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, areas)
}

func (h *Handler) SearchVenues(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.App.Search.SearchVenues(r.Context(), req.SearchTerm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, res)
}

func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	detail, err := h.App.Venues.Detail(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, detail)
}

func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var in app.VenueInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.App.Venues.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusCreated, v)
}

func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.VenueInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	v, err := h.App.Venues.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, v)
}

func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.App.Venues.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(constants.StatusNoContent)
}

package httpapp

import (
	"net/http"

	"github.com/cesargomez89/fyyur/internal/app"
	"github.com/cesargomez89/fyyur/internal/constants"
)

func (h *Handler) ListArtists(w http.ResponseWriter, r *http.Request) {
	artists, err := h.App.Artists.List(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, artists)
}

func (h *Handler) SearchArtists(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.App.Search.SearchArtists(r.Context(), req.SearchTerm)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, res)
}

func (h *Handler) GetArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	detail, err := h.App.Artists.Detail(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, detail)
}

func (h *Handler) CreateArtist(w http.ResponseWriter, r *http.Request) {
	var in app.ArtistInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.App.Artists.Create(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusCreated, a)
}

func (h *Handler) UpdateArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.ArtistInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.App.Artists.Update(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, a)
}

func (h *Handler) DeleteArtist(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.App.Artists.Delete(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(constants.StatusNoContent)
}

func (h *Handler) AddAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.AvailabilityInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ArtistID = id
	window, err := h.App.Artists.AddAvailability(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusCreated, window)
}

func (h *Handler) UpdateAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.AvailabilityInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	window, err := h.App.Artists.UpdateAvailability(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, window)
}

func (h *Handler) DeleteAvailability(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.App.Artists.DeleteAvailability(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(constants.StatusNoContent)
}

func (h *Handler) AddAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.AlbumInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	in.ArtistID = id
	album, err := h.App.Artists.AddAlbum(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusCreated, album)
}

func (h *Handler) UpdateAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.AlbumInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	album, err := h.App.Artists.UpdateAlbum(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, album)
}

func (h *Handler) DeleteAlbum(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.App.Artists.DeleteAlbum(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(constants.StatusNoContent)
}

func (h *Handler) AddSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.SongInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	in.AlbumID = id
	song, err := h.App.Artists.AddSong(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusCreated, song)
}

func (h *Handler) UpdateSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var in app.SongInput
	if err := decode(r, &in); err != nil {
		h.writeError(w, r, err)
		return
	}
	song, err := h.App.Artists.UpdateSong(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, constants.StatusOK, song)
}

func (h *Handler) DeleteSong(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.App.Artists.DeleteSong(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(constants.StatusNoContent)
}

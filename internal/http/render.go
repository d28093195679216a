package httpapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"

	"github.com/cesargomez89/fyyur/internal/constants"
	"github.com/cesargomez89/fyyur/internal/domain"
)

var formDecoder = newFormDecoder()

// newFormDecoder accepts the checkbox values browsers send for booleans.
func newFormDecoder() *form.Decoder {
	d := form.NewDecoder()
	d.RegisterCustomTypeFunc(func(vals []string) (interface{}, error) {
		if len(vals) == 0 {
			return false, nil
		}
		switch strings.ToLower(strings.TrimSpace(vals[0])) {
		case "", "n", "no", "off", "false", "0":
			return false, nil
		case "y", "yes", "on", "true", "1":
			return true, nil
		}
		return nil, fmt.Errorf("invalid boolean %q", vals[0])
	}, false)
	return d
}

// decode reads a JSON or form-encoded body into dst.
func decode(r *http.Request, dst any) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
			return domain.ValidationErrors{{Field: "body", Message: "malformed JSON"}}
		}
		return nil
	}
	if err := r.ParseForm(); err != nil {
		return domain.ValidationErrors{{Field: "body", Message: "malformed form"}}
	}
	if err := formDecoder.Decode(dst, r.PostForm); err != nil {
		return domain.ValidationErrors{{Field: "body", Message: err.Error()}}
	}
	return nil
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ValidationErrors{{Field: "id", Message: "must be a positive integer"}}
	}
	return id, nil
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Error("Failed to encode response", "error", err)
	}
}

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		h.writeJSON(w, constants.StatusBadRequest, errorResponse{Error: domain.ErrValidation.Error(), Fields: verrs.ToMap()})
	case errors.Is(err, domain.ErrNotFound):
		h.writeJSON(w, constants.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		h.Logger.Error("Request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		h.writeJSON(w, constants.StatusInternalError, errorResponse{Error: "internal error"})
	}
}

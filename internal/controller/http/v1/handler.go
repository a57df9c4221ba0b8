package v1

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/kurochkinivan/document_ingest/internal/domain"
	"github.com/kurochkinivan/document_ingest/internal/queue"
)

type Enqueuer interface {
	Enqueue(ctx context.Context, jobType string, payload any, opts queue.Options) error
}

type response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response{Success: false, Message: message})
}

// writeLookupError maps repository and pipeline sentinels to status codes.
// Anything unexpected is logged and reported as 500.
func writeLookupError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, domain.ErrNotCompleted):
		writeError(w, http.StatusConflict, err.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// documentID returns raw in canonical form. A value that is not a uuid
// names no document, so it gets the notFound response.
func documentID(w http.ResponseWriter, raw, notFound string) (string, bool) {
	id, err := uuid.Parse(raw)
	if err != nil {
		writeError(w, http.StatusNotFound, notFound)
		return "", false
	}

	return id.String(), true
}

package web

import (
	"errors"
	"log"
	"net/http"
	"roster/internal/back"
	"roster/internal/metrics"

	"github.com/getsentry/sentry-go"
)

// errorResponse is the body sent along any non-2xx status.
type errorResponse struct {
	Error string `json:"error"`
}

// status maps an error returned by the back to an HTTP status and a message
// that can be shown to the client.
func status(err error) (int, string) {
	switch {
	case errors.Is(err, back.ErrBadRequest), errors.Is(err, back.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, back.ErrNotFound):
		return http.StatusNotFound, err.Error()
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, back.ErrValidation):
		return metrics.OutcomeInvalid
	case errors.Is(err, back.ErrBadRequest):
		return metrics.OutcomeBadRequest
	case errors.Is(err, back.ErrNotFound):
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

// observe counts the outcome of a player operation and returns err as is.
func observe(operation string, err error) error {
	metrics.PlayerOperations.WithLabelValues(operation, outcome(err)).Inc()
	return err
}

func (s *Server) error(w http.ResponseWriter, r *http.Request, err error) {
	code, msg := status(err)
	id := getRequestID(r.Context())

	if code >= http.StatusInternalServerError {
		log.Printf("error: %s %s (request %s): %s", r.Method, r.URL.Path, id, err)
		if hub := sentry.CurrentHub(); hub.Client() != nil {
			hub.WithScope(func(scope *sentry.Scope) {
				scope.SetTag("request_id", id)
				scope.SetRequest(r)
				hub.CaptureException(err)
			})
		}
	} else {
		log.Printf("debug: %s %s (request %s): %s", r.Method, r.URL.Path, id, err)
	}

	s.response(w, code, errorResponse{Error: msg})
}

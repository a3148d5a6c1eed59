package server

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/disksort/pkg/errors"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Code      errors.Code `json:"code"`
	Message   string      `json:"message"`
	RequestID string      `json:"request_id,omitempty"`
}

func errNotFound(path string) error {
	return errors.New(errors.ErrCodeNotFound, "no route for %s", path)
}

// statusFor maps an error code to an HTTP status.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeNotAlternating:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeNetwork:
		return http.StatusBadGateway
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	}
	if errors.IsInvalid(err) {
		return http.StatusBadRequest
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, r *http.Request, logger *log.Logger, err error) {
	status := statusFor(err)
	resp := errorResponse{
		Code:      errors.GetCode(err),
		Message:   errors.UserMessage(err),
		RequestID: RequestIDFrom(r.Context()),
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", r.URL.Path, "error", err, "request_id", resp.RequestID)
		if resp.Code == "" {
			resp.Code = errors.ErrCodeInternal
			resp.Message = "internal error"
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

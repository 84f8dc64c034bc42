package server

import (
	"encoding/json"
	"net/http"

	lerrors "github.com/matzehuels/lehmer/pkg/errors"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// statusFor maps an error code to its HTTP status.
func statusFor(err error) int {
	switch code := lerrors.GetCode(err); {
	case lerrors.IsInputError(err):
		return http.StatusBadRequest
	case code == lerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case code == lerrors.ErrCodeOutOfRange, code == lerrors.ErrCodeOverflow:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	resp := errorResponse{
		Code:    string(lerrors.GetCode(err)),
		Message: lerrors.UserMessage(err),
	}
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "err", err, "request_id", RequestIDFromContext(r.Context()))
		if resp.Code == "" {
			resp.Code = string(lerrors.ErrCodeInternal)
			resp.Message = "internal error"
		}
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

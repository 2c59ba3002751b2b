package web

// errors.go provides unified error response handling for the web layer.
//
// The error flow:
//  1. Handler encounters an error
//  2. Calls respondError(w, r, err, statusCode)
//  3. Technical error + context is logged with request ID for correlation
//  4. A sanitized JSON body with a stable code is returned to the client

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// Sentinel errors for the client-visible failure cases.
var (
	errNoSalesForYear = errors.New("There are no sales for this year")
	errInvalidYear    = errors.New("year must be an integer")
)

// ErrorResponse is the JSON structure for API error responses.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError logs the technical error server-side and writes a JSON error
// body. Internal errors are masked; client errors pass their message through.
func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error, statusCode int) {
	requestID := middleware.GetReqID(r.Context())

	slog.Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", statusCode,
		"error", err.Error(),
		"request_id", requestID,
	)

	msg := err.Error()
	code := "BAD_REQUEST"
	switch {
	case statusCode >= http.StatusInternalServerError:
		// Never leak driver or SQL details to clients.
		msg = "internal server error"
		code = "INTERNAL"
	case statusCode == http.StatusNotFound:
		code = "NOT_FOUND"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg, Code: code})
}

// respondJSON encodes v as JSON and writes it to w.
// Encoding errors are logged since headers are already sent.
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}

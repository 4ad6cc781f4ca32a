// Package httpjson registers unary JSON handlers on a chi router.
package httpjson

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Error wraps an error with the HTTP status it should surface as. Errors
// not wrapped this way surface as 500 with a generic message.
func Error(status int, msg string) error {
	return &statusError{status: status, msg: msg}
}

type statusError struct {
	status int
	msg    string
}

func (e *statusError) Error() string {
	return e.msg
}

type errorBody struct {
	Error string `json:"error"`
}

// Handle registers fn as a POST JSON endpoint: the request body is decoded
// into Req and the result encoded as the response body.
func Handle[Req any, Res any](mux chi.Router, pattern string, fn func(context.Context, *Req) (*Res, error)) {
	mux.Post(pattern, func(w http.ResponseWriter, r *http.Request) {
		var req Req
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(r.Context(), w, http.StatusBadRequest, errorBody{Error: "invalid request body"})
			return
		}
		res, err := fn(r.Context(), &req)
		if err != nil {
			var se *statusError
			if errors.As(err, &se) {
				writeJSON(r.Context(), w, se.status, errorBody{Error: se.msg})
				return
			}
			slog.ErrorContext(r.Context(), "httpjson: handler failed", "path", pattern, "error", err)
			writeJSON(r.Context(), w, http.StatusInternalServerError, errorBody{Error: "internal error"})
			return
		}
		writeJSON(r.Context(), w, http.StatusOK, res)
	})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.ErrorContext(ctx, "httpjson: encoding response", "error", err)
	}
}

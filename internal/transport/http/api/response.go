package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"hradmin/internal/domain/store"
)

// ErrorBody is the failure envelope: a summary plus optional diagnostic.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// MessageBody is the success envelope for writes. Generated ids start at
// 1, so omitempty never drops a real one.
type MessageBody struct {
	Message string `json:"message"`
	ID      int64  `json:"id,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Warn("write json failed", "err", err)
	}
}

// List writes a read result as a bare JSON array.
func List(w http.ResponseWriter, rows any) {
	WriteJSON(w, http.StatusOK, rows)
}

func Message(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, MessageBody{Message: message})
}

func Created(w http.ResponseWriter, message string, id int64) {
	WriteJSON(w, http.StatusCreated, MessageBody{Message: message, ID: id})
}

func Fail(w http.ResponseWriter, status int, summary string) {
	WriteJSON(w, status, ErrorBody{Error: summary})
}

// FailErr maps a store error onto a status code: missing records are 404,
// empty payloads and constraint violations 400, anything else 500. The
// underlying error rides along as the diagnostic.
func FailErr(w http.ResponseWriter, err error, summary string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, store.ErrNoFields), errors.Is(err, store.ErrConstraint):
		status = http.StatusBadRequest
	}
	WriteJSON(w, status, ErrorBody{Error: summary, Details: err.Error()})
}

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hradmin/internal/domain/store"
)

func TestCreatedEnvelopeCarriesID(t *testing.T) {
	rec := httptest.NewRecorder()

	Created(rec, "Employee added", 42)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["message"] != "Employee added" || body["id"] != float64(42) {
		t.Fatalf("unexpected envelope: %v", body)
	}
}

func TestMessageEnvelopeOmitsZeroID(t *testing.T) {
	rec := httptest.NewRecorder()

	Message(rec, "Employee deleted")

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if _, present := body["id"]; present {
		t.Fatalf("id must be omitted on plain messages: %v", body)
	}
}

func TestFailErrStatusMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("leave request 9: %w", store.ErrNotFound), http.StatusNotFound},
		{"no fields", store.ErrNoFields, http.StatusBadRequest},
		{"constraint", fmt.Errorf("%w: fk", store.ErrConstraint), http.StatusBadRequest},
		{"other", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			FailErr(rec, tc.err, "Failed to update record")
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
			var body ErrorBody
			if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
				t.Fatalf("invalid JSON: %v", err)
			}
			if body.Error != "Failed to update record" || body.Details == "" {
				t.Fatalf("unexpected error envelope: %+v", body)
			}
		})
	}
}

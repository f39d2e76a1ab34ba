package attendancehandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/attendance"
	attendancehandler "hradmin/internal/transport/http/handlers/attendance"
)

type insertCall struct {
	employeeID int64
	date       time.Time
	status     string
}

type fakeStore struct {
	insertID int64

	inserts []insertCall
	updates []attendance.UpdateRecord
	deleted []int64
}

func (s *fakeStore) List(context.Context) ([]attendance.Record, error) {
	return []attendance.Record{}, nil
}

func (s *fakeStore) Insert(_ context.Context, employeeID int64, date time.Time, status string) (int64, error) {
	s.inserts = append(s.inserts, insertCall{employeeID, date, status})
	return s.insertID, nil
}

func (s *fakeStore) Update(_ context.Context, _, _ int64, p attendance.UpdateRecord) error {
	s.updates = append(s.updates, p)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func newRouter(st *fakeStore) http.Handler {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		attendancehandler.NewHandler(st).RegisterRoutes(r)
	})
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateDefaultsToPresent(t *testing.T) {
	st := &fakeStore{insertID: 2}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/attendance",
		`{"employee_id":7,"date":"2025-06-02"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["message"] != "Attendance recorded" || body["id"] != float64(2) {
		t.Fatalf("unexpected envelope: %v", body)
	}
	if len(st.inserts) != 1 {
		t.Fatalf("expected one insert, got %d", len(st.inserts))
	}
	got := st.inserts[0]
	if got.status != attendance.StatusPresent {
		t.Fatalf("expected default status Present, got %q", got.status)
	}
	if got.date.Format("2006-01-02") != "2025-06-02" {
		t.Fatalf("date wrong: %v", got.date)
	}
}

func TestCreateRequiresDate(t *testing.T) {
	st := &fakeStore{}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/attendance", `{"employee_id":7}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if len(st.inserts) != 0 {
		t.Fatalf("store must not be called")
	}
}

func TestCreateAcceptsRFC3339Timestamp(t *testing.T) {
	st := &fakeStore{insertID: 4}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/attendance",
		`{"employee_id":7,"date":"2025-06-02T09:30:00Z","status":"Absent"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if st.inserts[0].status != attendance.StatusAbsent {
		t.Fatalf("explicit status dropped: %+v", st.inserts[0])
	}
}

func TestUpdateRequiresEmployeeID(t *testing.T) {
	st := &fakeStore{}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPatch, "/api/attendance/3", `{"status":"Absent"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without employee_id, got %d", rec.Code)
	}
	if len(st.updates) != 0 {
		t.Fatalf("store must not be called")
	}
}

func TestUpdateStatusOnly(t *testing.T) {
	st := &fakeStore{}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPut, "/api/attendance/3",
		`{"employee_id":7,"status":"Absent"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	p := st.updates[0]
	if p.Status == nil || *p.Status != attendance.StatusAbsent {
		t.Fatalf("status not passed: %+v", p)
	}
	if p.Date != nil {
		t.Fatalf("date must stay nil when not supplied")
	}
}

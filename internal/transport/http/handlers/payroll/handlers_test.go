package payrollhandler_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/payroll"
	"hradmin/internal/domain/store"
	payrollhandler "hradmin/internal/transport/http/handlers/payroll"
)

type fakeStore struct {
	insertID   int64
	insertErr  error
	updateErr  error
	payslip    payroll.Payslip
	payslipErr error

	inserted  []payroll.NewEntry
	updateIDs [][2]int64
	updates   []payroll.UpdateEntry
	deleted   []int64
}

func (s *fakeStore) List(context.Context) ([]payroll.Entry, error) {
	return []payroll.Entry{}, nil
}

func (s *fakeStore) Insert(_ context.Context, e payroll.NewEntry) (int64, error) {
	if s.insertErr != nil {
		return 0, s.insertErr
	}
	s.inserted = append(s.inserted, e)
	return s.insertID, nil
}

func (s *fakeStore) Update(_ context.Context, id, employeeID int64, p payroll.UpdateEntry) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updateIDs = append(s.updateIDs, [2]int64{id, employeeID})
	s.updates = append(s.updates, p)
	return nil
}

func (s *fakeStore) Delete(_ context.Context, id int64) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *fakeStore) Payslip(context.Context, int64) (payroll.Payslip, error) {
	if s.payslipErr != nil {
		return payroll.Payslip{}, s.payslipErr
	}
	return s.payslip, nil
}

func newRouter(st *fakeStore) http.Handler {
	router := chi.NewRouter()
	router.Route("/api", func(r chi.Router) {
		payrollhandler.NewHandler(st).RegisterRoutes(r)
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

func TestCreateForeignKeyViolationIs400(t *testing.T) {
	st := &fakeStore{insertErr: fmt.Errorf("%w: employee 99 missing", store.ErrConstraint)}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPost, "/api/payroll",
		`{"employee_id":99,"hours_worked":160,"final_salary":4000}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 on constraint violation, got %d", rec.Code)
	}
}

func TestUpdateRequiresEmployeeID(t *testing.T) {
	st := &fakeStore{}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPut, "/api/payroll/3", `{"hours_worked":150}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without employee_id, got %d", rec.Code)
	}
	if len(st.updates) != 0 {
		t.Fatalf("store must not be called")
	}
}

func TestUpdateScopedByRecordAndEmployee(t *testing.T) {
	st := &fakeStore{}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodPatch, "/api/payroll/3",
		`{"employee_id":7,"hours_worked":150}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if len(st.updateIDs) != 1 || st.updateIDs[0] != [2]int64{3, 7} {
		t.Fatalf("unexpected update key: %v", st.updateIDs)
	}
	p := st.updates[0]
	if p.HoursWorked == nil || *p.HoursWorked != 150 {
		t.Fatalf("hours not passed: %+v", p)
	}
	if p.LeaveDeductions != nil || p.FinalSalary != nil {
		t.Fatalf("unsupplied fields must stay nil: %+v", p)
	}
}

func TestUpdateWrongEmployeeIs404(t *testing.T) {
	router := newRouter(&fakeStore{updateErr: store.ErrNotFound})

	rec := doJSON(t, router, http.MethodPatch, "/api/payroll/3",
		`{"employee_id":8,"hours_worked":150}`)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPayslipMissingEntryIs404(t *testing.T) {
	router := newRouter(&fakeStore{payslipErr: fmt.Errorf("payslip 5: %w", store.ErrNotFound)})

	rec := doJSON(t, router, http.MethodGet, "/api/payroll/5/payslip", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestPayslipRendersPDF(t *testing.T) {
	st := &fakeStore{payslip: payroll.Payslip{
		EntryID:      5,
		EmployeeID:   7,
		EmployeeName: "Jane Doe",
		Position:     "Engineer",
		Department:   "R&D",
		HoursWorked:  160,
		FinalSalary:  5200,
		Month:        "2025-06",
		CreatedAt:    time.Now(),
	}}
	router := newRouter(st)

	rec := doJSON(t, router, http.MethodGet, "/api/payroll/5/payslip", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("expected application/pdf, got %q", got)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Fatalf("body is not a PDF document")
	}
}

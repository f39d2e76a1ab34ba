package payrollhandler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"hradmin/internal/domain/payroll"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/shared"
)

// Store is the slice of the payroll store the handlers use.
type Store interface {
	List(ctx context.Context) ([]payroll.Entry, error)
	Insert(ctx context.Context, e payroll.NewEntry) (int64, error)
	Update(ctx context.Context, id, employeeID int64, p payroll.UpdateEntry) error
	Delete(ctx context.Context, id int64) error
	Payslip(ctx context.Context, id int64) (payroll.Payslip, error)
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/payroll", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Patch("/{id}", h.handleUpdate)
		r.Put("/{id}", h.handleUpdate)
		r.Delete("/{id}", h.handleDelete)
		r.Get("/{id}/payslip", h.handlePayslip)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.List(r.Context())
	if err != nil {
		slog.Error("list payroll failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch payroll")
		return
	}
	api.List(w, rows)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload payroll.NewEntry
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.EmployeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "employee_id is required")
		return
	}

	id, err := h.Store.Insert(r.Context(), payload)
	if err != nil {
		slog.Error("create payroll failed", "err", err)
		api.FailErr(w, err, "Failed to add payroll")
		return
	}
	api.Created(w, "Payroll added", id)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	var payload struct {
		payroll.UpdateEntry
		EmployeeID *int64 `json:"employee_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.EmployeeID == nil || *payload.EmployeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "employee_id is required")
		return
	}

	if err := h.Store.Update(r.Context(), id, *payload.EmployeeID, payload.UpdateEntry); err != nil {
		slog.Warn("update payroll failed", "payrollId", id, "err", err)
		api.FailErr(w, err, "Failed to update payroll")
		return
	}
	api.Message(w, "Payroll updated")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		slog.Error("delete payroll failed", "payrollId", id, "err", err)
		api.FailErr(w, err, "Failed to delete payroll")
		return
	}
	api.Message(w, "Payroll deleted")
}

func (h *Handler) handlePayslip(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "id")
	if !ok {
		return
	}
	slip, err := h.Store.Payslip(r.Context(), id)
	if err != nil {
		slog.Warn("payslip lookup failed", "payrollId", id, "err", err)
		api.FailErr(w, err, "Failed to generate payslip")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.EmployeeName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Position: %s, %s", slip.Position, slip.Department))
	pdf.Ln(7)
	if slip.Month != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Month: %s", slip.Month))
	} else {
		pdf.Cell(0, 8, fmt.Sprintf("Issued: %s", slip.CreatedAt.Format("2006-01-02")))
	}
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Hours worked: %.2f", slip.HoursWorked))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Leave deductions: %.2f", slip.LeaveDeductions))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Final salary: %.2f", slip.FinalSalary))

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=payslip-%d.pdf", slip.EntryID))
	if err := pdf.Output(w); err != nil {
		slog.Warn("payslip write failed", "payrollId", id, "err", err)
	}
}

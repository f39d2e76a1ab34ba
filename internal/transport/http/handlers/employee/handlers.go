package employeehandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/employee"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/shared"
)

// Store is the slice of the employee store the handlers use.
type Store interface {
	List(ctx context.Context) ([]employee.Employee, error)
	Update(ctx context.Context, employeeID int64, p employee.UpdateEmployee) error
	Delete(ctx context.Context, employeeID int64) error
}

// Creator runs the employee-plus-payroll creation workflow.
type Creator interface {
	Create(ctx context.Context, e employee.NewEmployee) (int64, error)
}

type Handler struct {
	Store   Store
	Service Creator
}

func NewHandler(store Store, service Creator) *Handler {
	return &Handler{Store: store, Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employees", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Patch("/{employeeID}", h.handleUpdate)
		r.Put("/{employeeID}", h.handleUpdate)
		r.Delete("/{employeeID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.List(r.Context())
	if err != nil {
		slog.Error("list employees failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}
	api.List(w, rows)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload employee.NewEmployee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		api.Fail(w, http.StatusBadRequest, "name is required")
		return
	}

	id, err := h.Service.Create(r.Context(), payload)
	if err != nil {
		slog.Error("create employee failed", "err", err)
		api.FailErr(w, err, "Failed to add employee")
		return
	}
	api.Created(w, "Employee added", id)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "employeeID")
	if !ok {
		return
	}
	var payload employee.UpdateEmployee
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := h.Store.Update(r.Context(), id, payload); err != nil {
		slog.Warn("update employee failed", "employeeId", id, "err", err)
		api.FailErr(w, err, "Failed to update employee")
		return
	}
	api.Message(w, "Employee updated")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "employeeID")
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		slog.Error("delete employee failed", "employeeId", id, "err", err)
		api.FailErr(w, err, "Failed to delete employee")
		return
	}
	api.Message(w, "Employee deleted")
}

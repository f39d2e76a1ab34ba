package leavehandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/leave"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/shared"
)

// Store is the slice of the leave store the handlers use.
type Store interface {
	List(ctx context.Context) ([]leave.Request, error)
	Insert(ctx context.Context, r leave.NewRequest) (int64, error)
	Delete(ctx context.Context, leaveID int64) error
}

// Updater runs the approval workflow around partial updates.
type Updater interface {
	UpdateRequest(ctx context.Context, leaveID int64, p leave.UpdateRequest) error
}

type Handler struct {
	Store   Store
	Service Updater
}

func NewHandler(store Store, service Updater) *Handler {
	return &Handler{Store: store, Service: service}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/leave_requests", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Patch("/{leaveID}", h.handleUpdate)
		r.Put("/{leaveID}", h.handleUpdate)
		r.Delete("/{leaveID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.List(r.Context())
	if err != nil {
		slog.Error("list leave requests failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch leave requests")
		return
	}
	api.List(w, rows)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employee_id"`
		StartDate  string `json:"start_date"`
		EndDate    string `json:"end_date"`
		Reason     string `json:"reason"`
		Status     string `json:"status"`
		LeaveType  string `json:"leave_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.EmployeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	start, err := shared.ParseDate(payload.StartDate)
	if err != nil || start.IsZero() {
		api.Fail(w, http.StatusBadRequest, "start_date is required in YYYY-MM-DD format")
		return
	}
	end, err := shared.ParseDate(payload.EndDate)
	if err != nil || end.IsZero() {
		api.Fail(w, http.StatusBadRequest, "end_date is required in YYYY-MM-DD format")
		return
	}
	if payload.Status == "" {
		payload.Status = leave.StatusPending
	}
	if payload.LeaveType == "" {
		payload.LeaveType = leave.DefaultLeaveType
	}

	id, err := h.Store.Insert(r.Context(), leave.NewRequest{
		EmployeeID: payload.EmployeeID,
		StartDate:  start,
		EndDate:    end,
		Reason:     payload.Reason,
		Status:     payload.Status,
		LeaveType:  payload.LeaveType,
	})
	if err != nil {
		slog.Error("create leave request failed", "err", err)
		api.FailErr(w, err, "Failed to add leave request")
		return
	}
	api.Created(w, "Leave request added", id)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "leaveID")
	if !ok {
		return
	}
	var payload struct {
		StartDate *string `json:"start_date"`
		EndDate   *string `json:"end_date"`
		Reason    *string `json:"reason"`
		Status    *string `json:"status"`
		LeaveType *string `json:"leave_type"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	update := leave.UpdateRequest{
		Reason:    payload.Reason,
		Status:    payload.Status,
		LeaveType: payload.LeaveType,
	}
	if payload.StartDate != nil {
		start, err := shared.ParseDate(*payload.StartDate)
		if err != nil || start.IsZero() {
			api.Fail(w, http.StatusBadRequest, "start_date must be in YYYY-MM-DD format")
			return
		}
		update.StartDate = &start
	}
	if payload.EndDate != nil {
		end, err := shared.ParseDate(*payload.EndDate)
		if err != nil || end.IsZero() {
			api.Fail(w, http.StatusBadRequest, "end_date must be in YYYY-MM-DD format")
			return
		}
		update.EndDate = &end
	}

	if err := h.Service.UpdateRequest(r.Context(), id, update); err != nil {
		slog.Warn("update leave request failed", "leaveId", id, "err", err)
		api.FailErr(w, err, "Failed to update leave request")
		return
	}
	api.Message(w, "Leave request updated")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "leaveID")
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		slog.Error("delete leave request failed", "leaveId", id, "err", err)
		api.FailErr(w, err, "Failed to delete leave request")
		return
	}
	api.Message(w, "Leave request deleted")
}

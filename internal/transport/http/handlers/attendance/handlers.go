package attendancehandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/attendance"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/shared"
)

// Store is the slice of the attendance store the handlers use.
type Store interface {
	List(ctx context.Context) ([]attendance.Record, error)
	Insert(ctx context.Context, employeeID int64, date time.Time, status string) (int64, error)
	Update(ctx context.Context, id, employeeID int64, p attendance.UpdateRecord) error
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/attendance", func(r chi.Router) {
		r.Get("/", h.handleList)
		r.Post("/", h.handleCreate)
		r.Patch("/{attendanceID}", h.handleUpdate)
		r.Put("/{attendanceID}", h.handleUpdate)
		r.Delete("/{attendanceID}", h.handleDelete)
	})
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	rows, err := h.Store.List(r.Context())
	if err != nil {
		slog.Error("list attendance failed", "err", err)
		api.Fail(w, http.StatusInternalServerError, "Failed to fetch attendance")
		return
	}
	api.List(w, rows)
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		EmployeeID int64  `json:"employee_id"`
		Date       string `json:"date"`
		Status     string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.EmployeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "employee_id is required")
		return
	}
	date, err := shared.ParseDate(payload.Date)
	if err != nil || date.IsZero() {
		api.Fail(w, http.StatusBadRequest, "date is required in YYYY-MM-DD format")
		return
	}
	if payload.Status == "" {
		payload.Status = attendance.StatusPresent
	}

	id, err := h.Store.Insert(r.Context(), payload.EmployeeID, date, payload.Status)
	if err != nil {
		slog.Error("create attendance failed", "err", err)
		api.FailErr(w, err, "Failed to record attendance")
		return
	}
	api.Created(w, "Attendance recorded", id)
}

func (h *Handler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "attendanceID")
	if !ok {
		return
	}
	var payload struct {
		EmployeeID *int64  `json:"employee_id"`
		Date       *string `json:"date"`
		Status     *string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.EmployeeID == nil || *payload.EmployeeID <= 0 {
		api.Fail(w, http.StatusBadRequest, "employee_id is required")
		return
	}

	update := attendance.UpdateRecord{Status: payload.Status}
	if payload.Date != nil {
		date, err := shared.ParseDate(*payload.Date)
		if err != nil || date.IsZero() {
			api.Fail(w, http.StatusBadRequest, "date must be in YYYY-MM-DD format")
			return
		}
		update.Date = &date
	}

	if err := h.Store.Update(r.Context(), id, *payload.EmployeeID, update); err != nil {
		slog.Warn("update attendance failed", "attendanceId", id, "err", err)
		api.FailErr(w, err, "Failed to update attendance")
		return
	}
	api.Message(w, "Attendance updated")
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := shared.PathID(w, r, "attendanceID")
	if !ok {
		return
	}
	if err := h.Store.Delete(r.Context(), id); err != nil {
		slog.Error("delete attendance failed", "attendanceId", id, "err", err)
		api.FailErr(w, err, "Failed to delete attendance")
		return
	}
	api.Message(w, "Attendance deleted")
}

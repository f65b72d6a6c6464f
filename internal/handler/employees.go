package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.engine.Employees(r.Context())
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees retrieved", employees)
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Phone string `json:"phone" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.engine.AddEmployee(r.Context(), req.Name, req.Phone)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employee created", employee)
}

// GetEmployeeSchedule returns the employee's assigned shifts in assignment
// order. An unknown id yields an empty list rather than an error; the
// engine exposes no existence flag on this call.
func (h *Handler) GetEmployeeSchedule(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "id")

	schedule, err := h.engine.EmployeeSchedule(r.Context(), employeeID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if len(schedule) == 0 {
		h.successResponse(w, r, "no shifts found or employee does not exist", schedule)
		return
	}

	h.successResponse(w, r, "schedule retrieved", schedule)
}

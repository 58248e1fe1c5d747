package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"crm-backend/internal/domain"
	"crm-backend/internal/service"
)

type EmployeeHandler struct {
	employeeSvc service.EmployeeService
}

func NewEmployeeHandler(employeeSvc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeSvc: employeeSvc}
}

type employeeListResponse struct {
	Items []domain.Employee `json:"items"`
	Total int32             `json:"total"`
}

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	employees, total, err := h.employeeSvc.ListEmployees(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list employees")
		return
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	writeJSON(w, http.StatusOK, employeeListResponse{Items: employees, Total: total})
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	employee, err := h.employeeSvc.GetEmployee(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var employee domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if employee.Name == "" || employee.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	if err := h.employeeSvc.CreateEmployee(r.Context(), &employee); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create employee")
		return
	}
	writeJSON(w, http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	var employee domain.Employee
	if err := json.NewDecoder(r.Body).Decode(&employee); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	employee.ID = id
	if err := h.employeeSvc.UpdateEmployee(r.Context(), &employee); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid employee id")
		return
	}
	if err := h.employeeSvc.DeleteEmployee(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

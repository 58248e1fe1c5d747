package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"crm-backend/internal/domain"
	"crm-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
}

func NewCustomerHandler(customerSvc service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc}
}

type customerListResponse struct {
	Items []domain.Customer `json:"items"`
	Total int32             `json:"total"`
}

// List handles GET /customers?search=&page=&pageSize=
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	search := r.URL.Query().Get("search")

	customers, total, err := h.customerSvc.ListCustomers(r.Context(), search, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list customers")
		return
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	writeJSON(w, http.StatusOK, customerListResponse{Items: customers, Total: total})
}

// Get handles GET /customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	customer, err := h.customerSvc.GetCustomer(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load customer")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Create handles POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if customer.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.customerSvc.CreateCustomer(r.Context(), &customer); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create customer")
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

// Update handles PUT /customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	var customer domain.Customer
	if err := json.NewDecoder(r.Body).Decode(&customer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	customer.ID = id
	if err := h.customerSvc.UpdateCustomer(r.Context(), &customer); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update customer")
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	if err := h.customerSvc.DeleteCustomer(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete customer")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

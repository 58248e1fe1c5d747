package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"crm-backend/internal/domain"
	"crm-backend/internal/service"
)

type ContractHandler struct {
	contractSvc service.ContractService
}

func NewContractHandler(contractSvc service.ContractService) *ContractHandler {
	return &ContractHandler{contractSvc: contractSvc}
}

type contractListResponse struct {
	Items []domain.Contract `json:"items"`
	Total int32             `json:"total"`
}

// List handles GET /contracts?customerId=&status=&page=&pageSize=
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)

	var customerID int32
	if raw := r.URL.Query().Get("customerId"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid customerId")
			return
		}
		customerID = int32(v)
	}
	status := r.URL.Query().Get("status")

	contracts, total, err := h.contractSvc.ListContracts(r.Context(), customerID, status, page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list contracts")
		return
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}
	writeJSON(w, http.StatusOK, contractListResponse{Items: contracts, Total: total})
}

func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	contract, err := h.contractSvc.GetContract(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load contract")
		return
	}
	writeJSON(w, http.StatusOK, contract)
}

func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	var contract domain.Contract
	if err := json.NewDecoder(r.Body).Decode(&contract); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if contract.CustomerID == 0 || contract.ProductID == 0 {
		writeError(w, http.StatusBadRequest, "customer_id and product_id are required")
		return
	}
	if err := h.contractSvc.CreateContract(r.Context(), &contract); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "customer not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create contract")
		return
	}
	writeJSON(w, http.StatusCreated, contract)
}

type contractStatusRequest struct {
	Status domain.ContractStatus `json:"status"`
}

// UpdateStatus handles POST /contracts/{id}/status
func (h *ContractHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	var req contractStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		writeError(w, http.StatusBadRequest, "status is required")
		return
	}
	if err := h.contractSvc.UpdateContractStatus(r.Context(), id, req.Status); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			writeError(w, http.StatusNotFound, "contract not found")
		case errors.Is(err, service.ErrInvalidStatusTransition):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to update contract status")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid contract id")
		return
	}
	if err := h.contractSvc.DeleteContract(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "contract not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete contract")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"crm-backend/internal/domain"
	"crm-backend/internal/service"
)

type CampaignHandler struct {
	campaignSvc service.CampaignService
}

func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

type campaignListResponse struct {
	Items []domain.Campaign `json:"items"`
	Total int32             `json:"total"`
}

func (h *CampaignHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	campaigns, total, err := h.campaignSvc.ListCampaigns(r.Context(), page, pageSize)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list campaigns")
		return
	}
	if campaigns == nil {
		campaigns = []domain.Campaign{}
	}
	writeJSON(w, http.StatusOK, campaignListResponse{Items: campaigns, Total: total})
}

func (h *CampaignHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	campaign, err := h.campaignSvc.GetCampaign(r.Context(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "campaign not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to load campaign")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Create(w http.ResponseWriter, r *http.Request) {
	var campaign domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if campaign.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	if err := h.campaignSvc.CreateCampaign(r.Context(), &campaign); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create campaign")
		return
	}
	writeJSON(w, http.StatusCreated, campaign)
}

func (h *CampaignHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	var campaign domain.Campaign
	if err := json.NewDecoder(r.Body).Decode(&campaign); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	campaign.ID = id
	if err := h.campaignSvc.UpdateCampaign(r.Context(), &campaign); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "campaign not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update campaign")
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

// Launch handles POST /campaigns/{id}/launch
func (h *CampaignHandler) Launch(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	campaign, err := h.campaignSvc.LaunchCampaign(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			writeError(w, http.StatusNotFound, "campaign not found")
		case errors.Is(err, service.ErrCampaignNotLaunchable):
			writeError(w, http.StatusConflict, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, "failed to launch campaign")
		}
		return
	}
	writeJSON(w, http.StatusOK, campaign)
}

func (h *CampaignHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid campaign id")
		return
	}
	if err := h.campaignSvc.DeleteCampaign(r.Context(), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "campaign not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete campaign")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

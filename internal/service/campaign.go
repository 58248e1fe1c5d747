package service

import (
	"context"
	"errors"
	"fmt"

	"crm-backend/internal/domain"
	"crm-backend/internal/logger"
	"crm-backend/internal/repository"
)

var ErrCampaignNotLaunchable = errors.New("campaign is not in a launchable state")

type campaignService struct {
	campaignRepo repository.CampaignRepository
	customerRepo repository.CustomerRepository
	email        EmailService
	notifier     Notifier
}

func NewCampaignService(campaignRepo repository.CampaignRepository, customerRepo repository.CustomerRepository, email EmailService, notifier Notifier) CampaignService {
	return &campaignService{
		campaignRepo: campaignRepo,
		customerRepo: customerRepo,
		email:        email,
		notifier:     notifier,
	}
}

func (s *campaignService) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	if c.Status == "" {
		c.Status = domain.CampaignStatusDraft
	}
	return s.campaignRepo.Create(ctx, c)
}

func (s *campaignService) GetCampaign(ctx context.Context, id int32) (*domain.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *campaignService) ListCampaigns(ctx context.Context, page, pageSize int32) ([]domain.Campaign, int32, error) {
	return s.campaignRepo.List(ctx, page, pageSize)
}

func (s *campaignService) UpdateCampaign(ctx context.Context, c *domain.Campaign) error {
	return s.campaignRepo.Update(ctx, c)
}

// LaunchCampaign marks the campaign active, emails its target segment and
// raises a notification. Email failures are logged and skipped; a campaign
// launch must not abort halfway through the recipient list.
func (s *campaignService) LaunchCampaign(ctx context.Context, id int32) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign.Status != domain.CampaignStatusDraft && campaign.Status != domain.CampaignStatusScheduled {
		return nil, ErrCampaignNotLaunchable
	}

	var recipients []domain.Customer
	if campaign.Segment != "" {
		recipients, err = s.customerRepo.ListByStatus(ctx, campaign.Segment)
	} else {
		recipients, _, err = s.customerRepo.List(ctx, "", 1, 1000)
	}
	if err != nil {
		return nil, err
	}

	sent := 0
	for _, c := range recipients {
		if c.Email == "" {
			continue
		}
		if err := s.email.SendCampaignEmail(ctx, c.Email, c.Name, campaign.Subject, campaign.Body); err != nil {
			logger.Warn("Campaign email failed", "campaign_id", campaign.ID, "customer_id", c.ID, "error", err)
			continue
		}
		sent++
	}

	if err := s.campaignRepo.UpdateStatus(ctx, id, domain.CampaignStatusActive); err != nil {
		return nil, err
	}
	campaign.Status = domain.CampaignStatusActive

	logger.Info("Campaign launched", "campaign_id", campaign.ID, "recipients", len(recipients), "sent", sent)
	s.notifier.Publish("campaign", "Campaign launched",
		fmt.Sprintf("Campaign %q went out to %d customers", campaign.Name, sent))
	return campaign, nil
}

func (s *campaignService) DeleteCampaign(ctx context.Context, id int32) error {
	return s.campaignRepo.Delete(ctx, id)
}

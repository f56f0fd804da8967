package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/inflight"
	"github.com/maheshrc27/brandlab-api/internal/markdown"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/internal/validation"
	"go.uber.org/zap"
)

type CampaignService interface {
	List(ctx context.Context, filter transfer.CampaignFilter) ([]*models.Campaign, error)
	Detail(ctx context.Context, id string) (*transfer.CampaignDetail, error)
	Create(ctx context.Context, in *transfer.CampaignInput) (*models.Campaign, error)
	Update(ctx context.Context, id string, in *transfer.CampaignInput) (*models.Campaign, error)
	Remove(ctx context.Context, id string) error
}

type campaignService struct {
	car      repository.CampaignRepository
	cache    QueryCache
	deleting *inflight.Set
	logger   *zap.Logger
}

func NewCampaignService(car repository.CampaignRepository, cache QueryCache, deleting *inflight.Set, logger *zap.Logger) CampaignService {
	return &campaignService{car: car, cache: cache, deleting: deleting, logger: logger}
}

func (s *campaignService) List(ctx context.Context, filter transfer.CampaignFilter) ([]*models.Campaign, error) {
	key := "client=" + filter.ClientID + "&status=" + filter.Status
	campaigns, err := cachedList(ctx, s.cache, s.logger, "campaigns", key, func(ctx context.Context) ([]*models.Campaign, error) {
		return s.car.List(ctx, filter.ClientID, filter.Status)
	})
	if err != nil {
		return nil, err
	}
	campaigns = FilterCampaigns(campaigns, filter.Search)
	SortCampaigns(campaigns)
	return campaigns, nil
}

func (s *campaignService) Detail(ctx context.Context, id string) (*transfer.CampaignDetail, error) {
	c, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return &transfer.CampaignDetail{
		Campaign:                    c,
		TargetingRecommendationHTML: markdown.Render(c.TargetingRecommendation),
		MessageHookHTML:             markdown.Render(c.MessageHook),
		ToneRecommendationHTML:      markdown.Render(c.ToneRecommendation),
		FormatRecommendationHTML:    markdown.Render(c.FormatRecommendation),
		CreatorRecommendationHTML:   markdown.Render(c.CreatorRecommendation),
	}, nil
}

func (s *campaignService) get(ctx context.Context, id string) (*models.Campaign, error) {
	c, err := s.car.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("campaign", id)
	}
	return c, nil
}

func prepareCampaign(in *transfer.CampaignInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.ClientID = strings.TrimSpace(in.ClientID)
	in.ObjectiveID = optionalID(in.ObjectiveID)
	in.ChannelID = optionalID(in.ChannelID)
	if in.Status == "" {
		in.Status = models.CampaignStatusIdea
	}
	return validation.ValidateCampaign(in)
}

func applyCampaignInput(c *models.Campaign, in *transfer.CampaignInput) {
	c.Title = in.Title
	c.Status = in.Status
	c.ClientID = in.ClientID
	c.ObjectiveID = in.ObjectiveID
	c.ChannelID = in.ChannelID
	c.TargetAudience = in.TargetAudience
	c.TargetingRecommendation = in.TargetingRecommendation
	c.MessageHook = in.MessageHook
	c.ToneRecommendation = in.ToneRecommendation
	c.FormatRecommendation = in.FormatRecommendation
	c.CreatorRecommendation = in.CreatorRecommendation
}

func (s *campaignService) Create(ctx context.Context, in *transfer.CampaignInput) (*models.Campaign, error) {
	if err := prepareCampaign(in); err != nil {
		return nil, err
	}

	var c models.Campaign
	applyCampaignInput(&c, in)
	if err := s.car.Create(ctx, &c); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, "campaigns")

	s.logger.Info("Campaign created", zap.String("campaign_id", c.ID), zap.String("client_id", c.ClientID))
	return s.get(ctx, c.ID)
}

func (s *campaignService) Update(ctx context.Context, id string, in *transfer.CampaignInput) (*models.Campaign, error) {
	if err := prepareCampaign(in); err != nil {
		return nil, err
	}

	c := models.Campaign{ID: id}
	applyCampaignInput(&c, in)
	ok, err := s.car.Update(ctx, &c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("campaign", id)
	}
	invalidate(ctx, s.cache, s.logger, "campaigns", "videos")

	return s.get(ctx, id)
}

func (s *campaignService) Remove(ctx context.Context, id string) error {
	release, ok := s.deleting.Acquire("campaigns:" + id)
	if !ok {
		return apperrors.Conflict("campaign is already being deleted")
	}
	defer release()

	ok, err := s.car.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("campaign", id)
	}
	invalidate(ctx, s.cache, s.logger, "campaigns", "videos")

	s.logger.Info("Campaign deleted", zap.String("campaign_id", id))
	return nil
}

package service

import (
	"context"

	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"go.uber.org/zap"
)

type LookupService interface {
	Countries(ctx context.Context) ([]*models.Country, error)
	Channels(ctx context.Context) ([]*models.Channel, error)
	Objectives(ctx context.Context) ([]*models.Objective, error)
}

type lookupService struct {
	lr     repository.LookupRepository
	cache  QueryCache
	logger *zap.Logger
}

func NewLookupService(lr repository.LookupRepository, cache QueryCache, logger *zap.Logger) LookupService {
	return &lookupService{lr: lr, cache: cache, logger: logger}
}

func (s *lookupService) Countries(ctx context.Context) ([]*models.Country, error) {
	return cachedList(ctx, s.cache, s.logger, "countries", "all", s.lr.ListCountries)
}

func (s *lookupService) Channels(ctx context.Context) ([]*models.Channel, error) {
	return cachedList(ctx, s.cache, s.logger, "channels", "all", s.lr.ListChannels)
}

func (s *lookupService) Objectives(ctx context.Context) ([]*models.Objective, error) {
	return cachedList(ctx, s.cache, s.logger, "objectives", "all", s.lr.ListObjectives)
}

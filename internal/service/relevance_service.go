package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/internal/validation"
	"go.uber.org/zap"
)

type RelevanceService interface {
	ListByClient(ctx context.Context, clientID string) ([]*models.RelevanceScore, error)
	Update(ctx context.Context, id string, in *transfer.RelevanceScoreUpdate) (*models.RelevanceScore, error)
}

type relevanceService struct {
	cr     repository.ClientRepository
	rr     repository.RelevanceScoreRepository
	cache  QueryCache
	logger *zap.Logger
}

func NewRelevanceService(cr repository.ClientRepository, rr repository.RelevanceScoreRepository, cache QueryCache, logger *zap.Logger) RelevanceService {
	return &relevanceService{cr: cr, rr: rr, cache: cache, logger: logger}
}

func (s *relevanceService) ListByClient(ctx context.Context, clientID string) ([]*models.RelevanceScore, error) {
	c, err := s.cr.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("client", clientID)
	}
	return cachedList(ctx, s.cache, s.logger, "relevance_scores", "client="+clientID, func(ctx context.Context) ([]*models.RelevanceScore, error) {
		return s.rr.ListByClient(ctx, clientID)
	})
}

func (s *relevanceService) Update(ctx context.Context, id string, in *transfer.RelevanceScoreUpdate) (*models.RelevanceScore, error) {
	in.Rationale = strings.TrimSpace(in.Rationale)
	if err := validation.ValidateRelevanceScore(in); err != nil {
		return nil, err
	}

	ok, err := s.rr.Update(ctx, id, *in.Score, in.Rationale)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("relevance score", id)
	}
	invalidate(ctx, s.cache, s.logger, "relevance_scores")

	score, err := s.rr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if score == nil {
		return nil, apperrors.NotFound("relevance score", id)
	}
	return score, nil
}

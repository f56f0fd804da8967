package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/inflight"
	"github.com/maheshrc27/brandlab-api/internal/markdown"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/queue"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/internal/validation"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

type ClientService interface {
	List(ctx context.Context, search string) ([]*models.Client, error)
	Detail(ctx context.Context, id string) (*transfer.ClientDetail, error)
	Create(ctx context.Context, in *transfer.ClientInput) (*models.Client, error)
	Update(ctx context.Context, id string, in *transfer.ClientInput) (*models.Client, error)
	Remove(ctx context.Context, id string) error
	UploadLogo(ctx context.Context, id string, upload *transfer.Upload) (*models.Client, error)
	RequestAnalysis(ctx context.Context, id, userID string) error
}

type clientService struct {
	cr       repository.ClientRepository
	rr       repository.RelevanceScoreRepository
	car      repository.CampaignRepository
	storage  ObjectStorage
	tasks    TaskEnqueuer
	cache    QueryCache
	deleting *inflight.Set
	logger   *zap.Logger
}

func NewClientService(
	cr repository.ClientRepository,
	rr repository.RelevanceScoreRepository,
	car repository.CampaignRepository,
	storage ObjectStorage,
	tasks TaskEnqueuer,
	cache QueryCache,
	deleting *inflight.Set,
	logger *zap.Logger) ClientService {
	return &clientService{
		cr:       cr,
		rr:       rr,
		car:      car,
		storage:  storage,
		tasks:    tasks,
		cache:    cache,
		deleting: deleting,
		logger:   logger,
	}
}

func (s *clientService) List(ctx context.Context, search string) ([]*models.Client, error) {
	clients, err := cachedList(ctx, s.cache, s.logger, "clients", "all", s.cr.List)
	if err != nil {
		return nil, err
	}
	clients = FilterClients(clients, search)
	SortClients(clients)
	return clients, nil
}

// Detail loads the client, its channel scores and its campaigns in parallel.
func (s *clientService) Detail(ctx context.Context, id string) (*transfer.ClientDetail, error) {
	var (
		client    *models.Client
		scores    []*models.RelevanceScore
		campaigns []*models.Campaign
	)

	p := pool.New().WithErrors().WithContext(ctx)
	p.Go(func(ctx context.Context) error {
		var err error
		client, err = s.cr.GetByID(ctx, id)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		scores, err = s.rr.ListByClient(ctx, id)
		return err
	})
	p.Go(func(ctx context.Context) error {
		var err error
		campaigns, err = s.car.List(ctx, id, "")
		return err
	})
	if err := p.Wait(); err != nil {
		return nil, err
	}

	if client == nil {
		return nil, apperrors.NotFound("client", id)
	}
	SortCampaigns(campaigns)

	return &transfer.ClientDetail{
		Client:                   client,
		BrandPromiseHTML:         markdown.Render(client.BrandPromise),
		BrandChallengeHTML:       markdown.Render(client.BrandChallenge),
		B2CPrimaryAudienceHTML:   markdown.Render(client.B2CPrimaryAudience),
		B2CSecondaryAudienceHTML: markdown.Render(client.B2CSecondaryAudience),
		B2BPrimaryAudienceHTML:   markdown.Render(client.B2BPrimaryAudience),
		B2BSecondaryAudienceHTML: markdown.Render(client.B2BSecondaryAudience),
		RelevanceScores:          scores,
		Campaigns:                campaigns,
	}, nil
}

func prepareClient(in *transfer.ClientInput) error {
	in.BrandName = strings.TrimSpace(in.BrandName)
	in.Domain = strings.TrimSpace(in.Domain)
	in.CountryID = optionalID(in.CountryID)
	in.LogoURL = optionalID(in.LogoURL)
	return validation.ValidateClient(in)
}

func applyClientInput(c *models.Client, in *transfer.ClientInput) {
	c.BrandName = in.BrandName
	c.Domain = in.Domain
	c.LogoURL = in.LogoURL
	c.CountryID = in.CountryID
	c.AgentStatus = in.AgentStatus
	c.BrandPromise = in.BrandPromise
	c.BrandChallenge = in.BrandChallenge
	c.B2CPrimaryAudience = in.B2CPrimaryAudience
	c.B2CSecondaryAudience = in.B2CSecondaryAudience
	c.B2BPrimaryAudience = in.B2BPrimaryAudience
	c.B2BSecondaryAudience = in.B2BSecondaryAudience
}

func (s *clientService) Create(ctx context.Context, in *transfer.ClientInput) (*models.Client, error) {
	if err := prepareClient(in); err != nil {
		return nil, err
	}

	var c models.Client
	applyClientInput(&c, in)
	if c.AgentStatus == "" {
		c.AgentStatus = models.AgentStatusReady
	}
	if err := s.cr.Create(ctx, &c); err != nil {
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, "clients")

	s.logger.Info("Client created", zap.String("client_id", c.ID), zap.String("brand_name", c.BrandName))
	return s.reload(ctx, c.ID)
}

// Update leaves agent_status and logo_url as stored when the input omits
// them; both are normally written by the analysis and logo flows.
func (s *clientService) Update(ctx context.Context, id string, in *transfer.ClientInput) (*models.Client, error) {
	if err := prepareClient(in); err != nil {
		return nil, err
	}

	c := models.Client{ID: id}
	applyClientInput(&c, in)
	ok, err := s.cr.Update(ctx, &c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperrors.NotFound("client", id)
	}
	invalidate(ctx, s.cache, s.logger, "clients", "campaigns")

	return s.reload(ctx, id)
}

// reload re-reads the row so joined columns such as the country name are
// filled in.
func (s *clientService) reload(ctx context.Context, id string) (*models.Client, error) {
	c, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NotFound("client", id)
	}
	return c, nil
}

func (s *clientService) Remove(ctx context.Context, id string) error {
	release, ok := s.deleting.Acquire("clients:" + id)
	if !ok {
		return apperrors.Conflict("client is already being deleted")
	}
	defer release()

	ok, err := s.cr.Remove(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return apperrors.NotFound("client", id)
	}
	invalidate(ctx, s.cache, s.logger, "clients", "campaigns", "relevance_scores")

	s.logger.Info("Client deleted", zap.String("client_id", id))
	return nil
}

func (s *clientService) UploadLogo(ctx context.Context, id string, upload *transfer.Upload) (*models.Client, error) {
	existing, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound("client", id)
	}

	obj, err := storeUpload(ctx, s.storage, "logo", upload, imageTypes)
	if err != nil {
		return nil, err
	}

	ok, err := s.cr.UpdateLogo(ctx, id, obj.URL)
	if err == nil && !ok {
		err = apperrors.NotFound("client", id)
	}
	if err != nil {
		s.discard(obj.Key)
		return nil, err
	}
	invalidate(ctx, s.cache, s.logger, "clients")

	return s.reload(ctx, id)
}

func (s *clientService) discard(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.storage.Delete(ctx, key); err != nil {
		s.logger.Error("Removing orphaned object failed", zap.String("key", key), zap.Error(err))
	}
}

// RequestAnalysis hands the client to the upstream agent. The agent flips
// agent_status back to ready when it has written its results.
func (s *clientService) RequestAnalysis(ctx context.Context, id, userID string) error {
	c, err := s.cr.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return apperrors.NotFound("client", id)
	}
	if c.AgentStatus == models.AgentStatusInProgress {
		return apperrors.Conflict("analysis is already in progress for this client")
	}

	task, err := queue.NewAnalyzeClientTask(queue.AnalyzeClientPayload{
		ClientID:    id,
		RequestedBy: userID,
		RequestedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("building analysis task: %w", err)
	}

	if _, err := s.cr.UpdateAgentStatus(ctx, id, models.AgentStatusInProgress); err != nil {
		return err
	}
	if _, err := s.tasks.EnqueueContext(ctx, task); err != nil {
		if _, rerr := s.cr.UpdateAgentStatus(ctx, id, models.AgentStatusReady); rerr != nil {
			s.logger.Error("Resetting agent status failed", zap.String("client_id", id), zap.Error(rerr))
		}
		return fmt.Errorf("enqueueing analysis for client %s: %w", id, err)
	}
	invalidate(ctx, s.cache, s.logger, "clients")

	s.logger.Info("Client analysis requested", zap.String("client_id", id), zap.String("user_id", userID))
	return nil
}

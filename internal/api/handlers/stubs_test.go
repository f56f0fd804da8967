package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/api/middleware"
	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"go.uber.org/zap"
)

const testClientID = "5f0c6f8e-3b8a-4e7e-9a57-2b1e3c4d5e6f"

func newTestApp() *fiber.App {
	return fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler(zap.NewNop()),
		Immutable:    true,
	})
}

// signedIn stands in for the auth middleware.
func signedIn(info *transfer.SessionInfo, token string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalUserID, info.User.ID)
		c.Locals(middleware.LocalSession, info)
		c.Locals(middleware.LocalToken, token)
		return c.Next()
	}
}

type stubAuth struct {
	login        func(*transfer.LoginRequest) (*transfer.SessionToken, error)
	callback     func(code string) (*transfer.SessionToken, error)
	authenticate func(token string) (*transfer.SessionInfo, error)
	loggedOut    []string
}

func (s *stubAuth) Login(_ context.Context, req *transfer.LoginRequest) (*transfer.SessionToken, error) {
	return s.login(req)
}

func (s *stubAuth) GoogleAuthURL(state string) string {
	return "https://accounts.google.example/auth?state=" + state
}

func (s *stubAuth) GoogleCallback(_ context.Context, code string) (*transfer.SessionToken, error) {
	return s.callback(code)
}

func (s *stubAuth) Authenticate(_ context.Context, token string) (*transfer.SessionInfo, error) {
	if s.authenticate == nil {
		return nil, apperrors.Unauthorized("invalid or expired session")
	}
	return s.authenticate(token)
}

func (s *stubAuth) Logout(_ context.Context, sessionID string) error {
	s.loggedOut = append(s.loggedOut, sessionID)
	return nil
}

type stubClients struct {
	list      []*models.Client
	search    string
	created   *transfer.ClientInput
	removeErr error
	removed   []string
	analysis  []string
}

func (s *stubClients) List(_ context.Context, search string) ([]*models.Client, error) {
	s.search = search
	return s.list, nil
}

func (s *stubClients) Detail(_ context.Context, id string) (*transfer.ClientDetail, error) {
	for _, c := range s.list {
		if c.ID == id {
			return &transfer.ClientDetail{Client: c}, nil
		}
	}
	return nil, apperrors.NotFound("client", id)
}

func (s *stubClients) Create(_ context.Context, in *transfer.ClientInput) (*models.Client, error) {
	if in.BrandName == "" {
		return nil, apperrors.Validation("brand_name", "brand_name is required")
	}
	s.created = in
	return &models.Client{ID: testClientID, BrandName: in.BrandName, Domain: in.Domain}, nil
}

func (s *stubClients) Update(_ context.Context, id string, in *transfer.ClientInput) (*models.Client, error) {
	return &models.Client{ID: id, BrandName: in.BrandName}, nil
}

func (s *stubClients) Remove(_ context.Context, id string) error {
	s.removed = append(s.removed, id)
	return s.removeErr
}

func (s *stubClients) UploadLogo(_ context.Context, id string, upload *transfer.Upload) (*models.Client, error) {
	url := "https://cdn.example/" + upload.FileName
	return &models.Client{ID: id, LogoURL: &url}, nil
}

func (s *stubClients) RequestAnalysis(_ context.Context, id, userID string) error {
	s.analysis = append(s.analysis, id+"/"+userID)
	return nil
}

type stubCampaigns struct {
	filter transfer.CampaignFilter
}

func (s *stubCampaigns) List(_ context.Context, filter transfer.CampaignFilter) ([]*models.Campaign, error) {
	s.filter = filter
	return []*models.Campaign{}, nil
}

func (s *stubCampaigns) Detail(_ context.Context, id string) (*transfer.CampaignDetail, error) {
	return nil, apperrors.NotFound("campaign", id)
}

func (s *stubCampaigns) Create(_ context.Context, in *transfer.CampaignInput) (*models.Campaign, error) {
	return &models.Campaign{ID: "k-1", Title: in.Title, Status: models.CampaignStatusIdea}, nil
}

func (s *stubCampaigns) Update(_ context.Context, id string, in *transfer.CampaignInput) (*models.Campaign, error) {
	return &models.Campaign{ID: id, Title: in.Title}, nil
}

func (s *stubCampaigns) Remove(context.Context, string) error { return nil }

type stubVideos struct {
	input  *transfer.VideoInput
	upload *transfer.Upload
}

func (s *stubVideos) List(context.Context, transfer.VideoFilter) ([]*models.Video, error) {
	return []*models.Video{}, nil
}

func (s *stubVideos) Detail(_ context.Context, id string) (*transfer.VideoDetail, error) {
	return nil, apperrors.NotFound("video", id)
}

func (s *stubVideos) Upload(_ context.Context, in *transfer.VideoInput, upload *transfer.Upload) (*models.Video, error) {
	s.input = in
	s.upload = upload
	return &models.Video{ID: "v-1", Title: in.Title, Craft: in.Craft}, nil
}

func (s *stubVideos) Update(_ context.Context, id string, in *transfer.VideoInput) (*models.Video, error) {
	return &models.Video{ID: id, Title: in.Title}, nil
}

func (s *stubVideos) Remove(context.Context, string) error { return nil }

package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testScoreID = "0b6f3c1a-2d4e-4f5a-9b8c-7d6e5f4a3b2c"

type knownClients struct {
	repository.ClientRepository
}

func (knownClients) GetByID(_ context.Context, id string) (*models.Client, error) {
	if id != testClientID {
		return nil, nil
	}
	return &models.Client{ID: id, BrandName: "Acme"}, nil
}

type scoreRepo struct {
	scores  map[string]*models.RelevanceScore
	updates int
}

func (r *scoreRepo) ListByClient(_ context.Context, clientID string) ([]*models.RelevanceScore, error) {
	out := []*models.RelevanceScore{}
	for _, s := range r.scores {
		if s.ClientID == clientID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *scoreRepo) GetByID(_ context.Context, id string) (*models.RelevanceScore, error) {
	return r.scores[id], nil
}

func (r *scoreRepo) Update(_ context.Context, id string, score float64, rationale string) (bool, error) {
	r.updates++
	s, ok := r.scores[id]
	if !ok {
		return false, nil
	}
	s.Score = score
	s.Rationale = rationale
	return true, nil
}

func newRelevanceApp() (*fiber.App, *scoreRepo) {
	repo := &scoreRepo{scores: map[string]*models.RelevanceScore{
		testScoreID: {ID: testScoreID, ClientID: testClientID, ChannelLabel: "TikTok", Score: 72},
	}}
	h := NewRelevanceHandler(service.NewRelevanceService(knownClients{}, repo, nil, zap.NewNop()))

	app := newTestApp()
	app.Get("/api/clients/:id/relevance-scores", h.ListForClient)
	app.Put("/api/relevance-scores/:id", h.UpdateScore)
	return app, repo
}

func putScore(t *testing.T, app *fiber.App, id, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/relevance-scores/"+id, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestUpdateScoreRejectsOutOfRange(t *testing.T) {
	app, repo := newRelevanceApp()

	for _, body := range []string{`{"score":101}`, `{"score":-1}`, `{"rationale":"no score"}`} {
		resp := putScore(t, app, testScoreID, body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, body)
		assert.NotEmpty(t, decodeError(t, resp))
	}
	assert.Zero(t, repo.updates)
}

func TestUpdateScore(t *testing.T) {
	app, repo := newRelevanceApp()

	resp := putScore(t, app, testScoreID, `{"score":100,"rationale":" strong fit "}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var score models.RelevanceScore
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&score))
	assert.Equal(t, float64(100), score.Score)
	assert.Equal(t, "strong fit", score.Rationale)
	assert.Equal(t, 1, repo.updates)
}

func TestUpdateScoreUnknownID(t *testing.T) {
	app, _ := newRelevanceApp()

	resp := putScore(t, app, "9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d", `{"score":50}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = putScore(t, app, "not-a-uuid", `{"score":50}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestListScoresForUnknownClient(t *testing.T) {
	app, _ := newRelevanceApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/clients/9a8b7c6d-5e4f-4a3b-8c2d-1e0f9a8b7c6d/relevance-scores", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/api/clients/"+testClientID+"/relevance-scores", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var scores []models.RelevanceScore
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&scores))
	assert.Len(t, scores, 1)
}

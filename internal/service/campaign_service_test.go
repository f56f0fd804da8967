package service

import (
	"context"
	"testing"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/inflight"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCampaignService_CreateDefaultsToIdea(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo(), &fakeCache{}, inflight.NewSet(), zap.NewNop())
	empty := ""

	c, err := svc.Create(context.Background(), &transfer.CampaignInput{Title: "Spring", ClientID: clientID, ChannelID: &empty})
	require.NoError(t, err)

	assert.Equal(t, models.CampaignStatusIdea, c.Status)
	assert.Nil(t, c.ChannelID)
}

func TestCampaignService_CreateValidation(t *testing.T) {
	svc := NewCampaignService(newFakeCampaignRepo(), &fakeCache{}, inflight.NewSet(), zap.NewNop())

	_, err := svc.Create(context.Background(), &transfer.CampaignInput{Title: "Spring"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.Create(context.Background(), &transfer.CampaignInput{Title: "Spring", ClientID: clientID, Status: "Paused"})
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestCampaignService_ListOrdersByStatus(t *testing.T) {
	repo := newFakeCampaignRepo(
		&models.Campaign{ID: "1", ClientID: clientID, Title: "b", Status: models.CampaignStatusIdea},
		&models.Campaign{ID: "2", ClientID: clientID, Title: "a", Status: models.CampaignStatusFinished},
		&models.Campaign{ID: "3", ClientID: clientID, Title: "c", Status: models.CampaignStatusRunning},
		&models.Campaign{ID: "4", ClientID: "other", Title: "d", Status: models.CampaignStatusPlanned},
	)
	svc := NewCampaignService(repo, &fakeCache{}, inflight.NewSet(), zap.NewNop())

	all, err := svc.List(context.Background(), transfer.CampaignFilter{})
	require.NoError(t, err)
	ids := []string{}
	for _, c := range all {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"3", "4", "1", "2"}, ids)

	forClient, err := svc.List(context.Background(), transfer.CampaignFilter{ClientID: clientID, Search: "C"})
	require.NoError(t, err)
	require.Len(t, forClient, 1)
	assert.Equal(t, "3", forClient[0].ID)
}

func TestCampaignService_DetailRendersMarkdown(t *testing.T) {
	repo := newFakeCampaignRepo(&models.Campaign{ID: "1", Title: "Spring", MessageHook: "# Hook"})
	svc := NewCampaignService(repo, &fakeCache{}, inflight.NewSet(), zap.NewNop())

	detail, err := svc.Detail(context.Background(), "1")
	require.NoError(t, err)
	assert.Contains(t, detail.MessageHookHTML, "<h1>Hook</h1>")

	_, err = svc.Detail(context.Background(), "missing")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestCampaignService_Remove(t *testing.T) {
	cache := &fakeCache{}
	repo := newFakeCampaignRepo(&models.Campaign{ID: "1", Title: "Spring"})
	svc := NewCampaignService(repo, cache, inflight.NewSet(), zap.NewNop())

	require.NoError(t, svc.Remove(context.Background(), "1"))
	assert.Contains(t, cache.invalidated, "campaigns")

	err := svc.Remove(context.Background(), "1")
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

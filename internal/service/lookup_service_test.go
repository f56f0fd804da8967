package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memoryCache round-trips values through JSON and versions keys per table
// like the Redis cache does.
type memoryCache struct {
	entries  map[string][]byte
	versions map[string]int
	getErr   error
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}, versions: map[string]int{}}
}

func (m *memoryCache) Lookup(_ context.Context, table, key string, dest any) (bool, string, error) {
	if m.getErr != nil {
		return false, "", m.getErr
	}
	entry := fmt.Sprintf("%s:v%d:%s", table, m.versions[table], key)
	raw, ok := m.entries[entry]
	if !ok {
		return false, entry, nil
	}
	return true, entry, json.Unmarshal(raw, dest)
}

func (m *memoryCache) StoreAt(_ context.Context, entry string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.entries[entry] = raw
	return nil
}

func (m *memoryCache) Invalidate(_ context.Context, table string) error {
	m.versions[table]++
	return nil
}

type countingLookups struct {
	countryCalls int
}

func (c *countingLookups) ListCountries(context.Context) ([]*models.Country, error) {
	c.countryCalls++
	return []*models.Country{{ID: "c-1", Name: "Denmark"}}, nil
}

func (c *countingLookups) ListChannels(context.Context) ([]*models.Channel, error) {
	return []*models.Channel{{ID: "ch-1", Label: "TikTok"}}, nil
}

func (c *countingLookups) ListObjectives(context.Context) ([]*models.Objective, error) {
	return nil, errors.New("objectives unavailable")
}

func TestLookupServiceServesFromCache(t *testing.T) {
	repo := &countingLookups{}
	cache := newMemoryCache()
	svc := NewLookupService(repo, cache, zap.NewNop())

	first, err := svc.Countries(context.Background())
	require.NoError(t, err)
	second, err := svc.Countries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.countryCalls)
	assert.Equal(t, first[0].Name, second[0].Name)

	require.NoError(t, cache.Invalidate(context.Background(), "countries"))
	_, err = svc.Countries(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.countryCalls)
}

func TestLookupServiceFallsBackWhenCacheFails(t *testing.T) {
	repo := &countingLookups{}
	cache := newMemoryCache()
	cache.getErr = errors.New("redis down")
	svc := NewLookupService(repo, cache, zap.NewNop())

	channels, err := svc.Channels(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "TikTok", channels[0].Label)
}

func TestLookupServicePropagatesLoadErrors(t *testing.T) {
	svc := NewLookupService(&countingLookups{}, nil, zap.NewNop())

	_, err := svc.Objectives(context.Background())

	assert.EqualError(t, err, "objectives unavailable")
}

package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

type stubCacheRepo struct {
	mu      sync.Mutex
	store   map[string][]byte
	deleted []string
	getErr  error
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{store: map[string][]byte{}}
}

func (s *stubCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return s.getErr
	}
	raw, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (s *stubCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.store[key] = raw
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deleted = append(s.deleted, pattern)
	prefix := strings.TrimSuffix(pattern, "*")
	for key := range s.store {
		if strings.HasPrefix(key, prefix) {
			delete(s.store, key)
		}
	}
	return nil
}

func TestCacheServiceRoundTrip(t *testing.T) {
	repo := newStubCacheRepo()
	metrics := NewMetricsService()
	svc := NewCacheService(repo, metrics, 0, nil, true)
	ctx := context.Background()

	var out []string
	hit, err := svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, svc.Set(ctx, "k", []string{"a"}, 0))
	hit, err = svc.Get(ctx, "k", &out)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, []string{"a"}, out)
	assert.Equal(t, 0.5, metrics.Snapshot().CacheHitRatio)
}

func TestCacheServiceDisabledAndErrors(t *testing.T) {
	repo := newStubCacheRepo()
	disabled := NewCacheService(repo, nil, time.Minute, nil, false)
	hit, err := disabled.Get(context.Background(), "k", &struct{}{})
	assert.False(t, hit)
	assert.NoError(t, err)
	assert.NoError(t, disabled.Set(context.Background(), "k", 1, 0))
	assert.Empty(t, repo.store)

	repo.getErr = errors.New("redis down")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)
	hit, err = svc.Get(context.Background(), "k", &struct{}{})
	assert.False(t, hit)
	assert.Error(t, err)
}

func TestCacheServiceInvalidateCatalog(t *testing.T) {
	repo := newStubCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)
	ctx := context.Background()
	require.NoError(t, svc.Set(ctx, "scholarlink:catalog:all", []int{1}, 0))
	require.NoError(t, svc.Set(ctx, digestKey(cacheScopeListing, map[string]string{"q": "x"}), []int{1}, 0))
	require.NoError(t, svc.Set(ctx, "scholarlink:other", 1, 0))

	require.NoError(t, svc.InvalidateCatalog(ctx))
	assert.Equal(t, []string{"scholarlink:catalog*", "scholarlink:listing*"}, repo.deleted)
	assert.Len(t, repo.store, 1)
}

func TestDigestKeyStable(t *testing.T) {
	a := digestKey(cacheScopeListing, map[string]string{"state": "kerala", "page": "1"})
	b := digestKey(cacheScopeListing, map[string]string{"page": "1", "state": "kerala"})
	assert.Equal(t, a, b)
	assert.True(t, strings.HasPrefix(a, "scholarlink:listing:"))
	assert.NotEqual(t, a, digestKey(cacheScopeListing, map[string]string{"state": "goa"}))
}

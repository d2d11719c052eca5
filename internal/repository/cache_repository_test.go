package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/Rhea-16/scholarLink/pkg/errors"
)

func TestCacheRepositoryWithoutClient(t *testing.T) {
	repo := NewCacheRepository(nil, nil)
	ctx := context.Background()

	var dest map[string]int
	assert.ErrorIs(t, repo.Get(ctx, "scholarlink:catalog", &dest), appErrors.ErrCacheMiss)
	assert.NoError(t, repo.Set(ctx, "scholarlink:catalog", map[string]int{"a": 1}, time.Minute))
	assert.NoError(t, repo.DeleteByPattern(ctx, "scholarlink:*"))
	assert.NoError(t, repo.Close())
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCacheServiceDisabled(t *testing.T) {
	svc := NewCacheService(newMemoryCacheRepo(), nil, time.Minute, nil, false)
	require.False(t, svc.Enabled())

	var dest string
	hit, err := svc.Get(context.Background(), "key", &dest)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "key", "value", time.Minute))
}

func TestCacheServiceNilIsSafe(t *testing.T) {
	var svc *CacheService
	require.False(t, svc.Enabled())
}

func TestCacheServiceRoundTrip(t *testing.T) {
	svc := NewCacheService(newMemoryCacheRepo(), NewMetricsService(), time.Minute, nil, true)
	require.True(t, svc.Enabled())

	var dest string
	hit, err := svc.Get(context.Background(), "greeting", &dest)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "greeting", "hola", time.Minute))

	hit, err = svc.Get(context.Background(), "greeting", &dest)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "hola", dest)
}

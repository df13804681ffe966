package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

var errServiceNotFound = errors.New("service not found")

type fakeRepo struct {
	calls    map[string]int
	services map[string]*domain.Service
	staff    []*domain.StaffMember
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		calls: make(map[string]int),
		services: map[string]*domain.Service{
			"Knipbeurt": {ID: 1, Name: "Knipbeurt", Price: 20, DurationMinutes: 30},
		},
		staff: []*domain.StaffMember{{ID: 1, Name: "Max van Dijk"}},
	}
}

func (f *fakeRepo) ListStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	f.calls["ListStaff"]++
	return f.staff, nil
}

func (f *fakeRepo) GetStaffByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	f.calls["GetStaffByID"]++
	for _, s := range f.staff {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errors.New("staff not found")
}

func (f *fakeRepo) ListServices(ctx context.Context) ([]*domain.Service, error) {
	f.calls["ListServices"]++
	return []*domain.Service{f.services["Knipbeurt"]}, nil
}

func (f *fakeRepo) GetServiceByID(ctx context.Context, id int64) (*domain.Service, error) {
	f.calls["GetServiceByID"]++
	for _, s := range f.services {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, errServiceNotFound
}

func (f *fakeRepo) GetServiceByName(ctx context.Context, name string) (*domain.Service, error) {
	f.calls["GetServiceByName"]++
	if s, ok := f.services[name]; ok {
		return s, nil
	}
	return nil, errServiceNotFound
}

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func newCache(t *testing.T) (*Cache, *fakeRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	repo := newFakeRepo()
	return NewCache(repo, rdb, time.Minute, nopLogger{}), repo, mr
}

func TestCache_GetServiceByName_ReadThrough(t *testing.T) {
	cache, repo, mr := newCache(t)
	ctx := context.Background()

	first, err := cache.GetServiceByName(ctx, "Knipbeurt")
	require.NoError(t, err)
	second, err := cache.GetServiceByName(ctx, "Knipbeurt")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls["GetServiceByName"])
	assert.True(t, mr.Exists("salon:catalog:service:name:Knipbeurt"))

	mr.FastForward(2 * time.Minute)
	_, err = cache.GetServiceByName(ctx, "Knipbeurt")
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["GetServiceByName"])
}

func TestCache_NotFoundIsNotCached(t *testing.T) {
	cache, repo, mr := newCache(t)
	ctx := context.Background()

	_, err := cache.GetServiceByName(ctx, "Permanent")
	assert.ErrorIs(t, err, errServiceNotFound)
	_, err = cache.GetServiceByName(ctx, "Permanent")
	assert.ErrorIs(t, err, errServiceNotFound)

	assert.Equal(t, 2, repo.calls["GetServiceByName"])
	assert.False(t, mr.Exists("salon:catalog:service:name:Permanent"))
}

func TestCache_RedisDownFallsThrough(t *testing.T) {
	cache, repo, mr := newCache(t)
	mr.Close()

	staff, err := cache.ListStaff(context.Background())
	require.NoError(t, err)
	assert.Len(t, staff, 1)
	assert.Equal(t, 1, repo.calls["ListStaff"])
}

func TestCache_Invalidate(t *testing.T) {
	cache, repo, mr := newCache(t)
	ctx := context.Background()

	_, err := cache.ListServices(ctx)
	require.NoError(t, err)
	_, err = cache.GetStaffByID(ctx, 1)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx))
	assert.Empty(t, mr.Keys())

	_, err = cache.ListServices(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls["ListServices"])
}

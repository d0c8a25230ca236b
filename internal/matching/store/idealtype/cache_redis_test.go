package idealtype

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/matching/metrics"
	"matchmaker/internal/matching/models"
	id "matchmaker/pkg/domain"
	"matchmaker/pkg/platform/circuit"
)

// unreachableRedis points at a port nothing listens on, so every command
// fails fast with a connection error.
func unreachableRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestRedisCacheFallsBackToStore(t *testing.T) {
	ctx := context.Background()
	backing := NewInMemory()
	breaker := circuit.New("test", circuit.WithFailureThreshold(2))
	m := metrics.New(nil)
	cache := NewRedisCache(backing, unreachableRedis(t), time.Minute,
		WithBreaker(breaker),
		WithCacheMetrics(m),
		WithCacheLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	it := newIdealType(3)
	require.NoError(t, cache.Save(ctx, it), "a failed invalidation does not fail the write")

	found, err := cache.FindByProfileID(ctx, it.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, it.Preferences, found.Preferences)
	assert.True(t, breaker.IsOpen())

	got, err := cache.FindByProfileIDs(ctx, []id.ProfileID{it.ProfileID, id.NewProfileID()})
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRedisCachePropagatesStoreErrors(t *testing.T) {
	cache := NewRedisCache(NewInMemory(), unreachableRedis(t), time.Minute,
		WithCacheLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	_, err := cache.FindByProfileID(context.Background(), id.NewProfileID())
	assert.Error(t, err)
}

// gatedStore holds batch reads until released and reports saves.
type gatedStore struct {
	*InMemory
	once    sync.Once
	entered chan struct{}
	release chan struct{}
	saved   chan struct{}
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		InMemory: NewInMemory(),
		entered:  make(chan struct{}),
		release:  make(chan struct{}),
		saved:    make(chan struct{}, 1),
	}
}

func (s *gatedStore) FindByProfileIDs(ctx context.Context, pids []id.ProfileID) (map[id.ProfileID]*models.IdealType, error) {
	s.once.Do(func() { close(s.entered) })
	<-s.release
	return s.InMemory.FindByProfileIDs(ctx, pids)
}

func (s *gatedStore) Save(ctx context.Context, it *models.IdealType) error {
	err := s.InMemory.Save(ctx, it)
	s.saved <- struct{}{}
	return err
}

func TestRedisCacheBatchLoadHoldsSaves(t *testing.T) {
	ctx := context.Background()
	backing := newGatedStore()
	noSmokers := false
	old := &models.IdealType{
		ProfileID: id.NewProfileID(),
		Preferences: models.PreferenceSet{
			SmokingAllowed: &noSmokers,
			DealBreakers:   []models.ConditionKind{models.KindSmoking},
		},
	}
	require.NoError(t, backing.InMemory.Save(ctx, old))
	cache := NewRedisCache(backing, unreachableRedis(t), time.Minute,
		WithCacheLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)

	batch := make(chan map[id.ProfileID]*models.IdealType, 1)
	go func() {
		got, err := cache.FindByProfileIDs(ctx, []id.ProfileID{old.ProfileID})
		assert.NoError(t, err)
		batch <- got
	}()
	<-backing.entered

	updated := *old
	updated.Preferences = models.PreferenceSet{}
	saveErr := make(chan error, 1)
	go func() { saveErr <- cache.Save(ctx, &updated) }()

	select {
	case <-backing.saved:
		t.Fatal("save reached the store while a batch load was in flight")
	case <-time.After(50 * time.Millisecond):
	}

	close(backing.release)
	got := <-batch
	assert.Equal(t, old.Preferences, got[old.ProfileID].Preferences)
	require.NoError(t, <-saveErr)
	<-backing.saved

	stored, err := backing.InMemory.FindByProfileID(ctx, old.ProfileID)
	require.NoError(t, err)
	assert.Equal(t, updated.Preferences, stored.Preferences)
}

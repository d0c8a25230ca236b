package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/matching/compiler"
	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
)

func newProfile(rec models.CandidateRecord, updated time.Time) *models.Profile {
	return &models.Profile{ID: id.NewProfileID(), Record: rec, UpdatedAt: updated}
}

func TestInMemoryFindByID(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	p := newProfile(matchtest.Record(matchtest.Rand(1)), matchtest.Now)
	require.NoError(t, store.Save(ctx, p))

	found, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p, found)

	found.DisplayName = "changed"
	again, err := store.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, again.DisplayName, "callers cannot mutate stored profiles")

	_, err = store.FindByID(ctx, id.NewProfileID())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryFindMatchingOrderAndLimit(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	r := matchtest.Rand(2)

	owner := newProfile(matchtest.Record(r), matchtest.Now)
	require.NoError(t, store.Save(ctx, owner))
	var want []id.ProfileID
	for i := range 5 {
		p := newProfile(matchtest.Record(r), matchtest.Now.Add(-time.Duration(i)*time.Hour))
		require.NoError(t, store.Save(ctx, p))
		want = append(want, p.ID)
	}

	got, err := store.FindMatching(ctx, filter.Filter{}, owner.ID, nil, 3)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, p := range got {
		assert.Equal(t, want[i], p.ID)
	}
}

func TestInMemoryFindMatchingPagesAfterCursor(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	r := matchtest.Rand(4)

	var want []id.ProfileID
	for i := range 5 {
		// two profiles share each timestamp so the ID tiebreak is exercised
		p := newProfile(matchtest.Record(r), matchtest.Now.Add(-time.Duration(i/2)*time.Hour))
		require.NoError(t, store.Save(ctx, p))
	}
	all, err := store.FindMatching(ctx, filter.Filter{}, id.ProfileID{}, nil, 0)
	require.NoError(t, err)
	for _, p := range all {
		want = append(want, p.ID)
	}

	var got []id.ProfileID
	var after *models.Cursor
	for {
		page, err := store.FindMatching(ctx, filter.Filter{}, id.ProfileID{}, after, 2)
		require.NoError(t, err)
		for _, p := range page {
			got = append(got, p.ID)
		}
		if len(page) < 2 {
			break
		}
		after = models.CursorAfter(page[len(page)-1])
	}
	assert.Equal(t, want, got)
}

func TestInMemoryFindMatchingAgreesWithEvaluator(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()
	r := matchtest.Rand(3)

	records := make(map[id.ProfileID]models.CandidateRecord)
	for range 200 {
		p := newProfile(matchtest.Record(r), matchtest.Now)
		require.NoError(t, store.Save(ctx, p))
		records[p.ID] = p.Record
	}

	comp := compiler.New(compiler.WithClock(matchtest.Clock))
	eval := evaluator.New(evaluator.WithClock(matchtest.Clock))
	for range 50 {
		prefs := matchtest.Preferences(r, 5)
		f, err := comp.Compile(prefs)
		require.NoError(t, err)

		got, err := store.FindMatching(ctx, f, id.ProfileID{}, nil, 0)
		require.NoError(t, err)

		matched := make(map[id.ProfileID]bool, len(got))
		for _, p := range got {
			matched[p.ID] = true
		}
		for pid, rec := range records {
			res, err := eval.Evaluate(prefs, rec)
			require.NoError(t, err)
			assert.Equal(t, res.Pass, matched[pid])
		}
	}
}

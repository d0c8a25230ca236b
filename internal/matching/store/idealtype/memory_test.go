package idealtype

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
)

func newIdealType(seed uint64) *models.IdealType {
	return &models.IdealType{
		ProfileID:   id.NewProfileID(),
		Preferences: matchtest.Preferences(matchtest.Rand(seed), 5),
		UpdatedAt:   matchtest.Now,
	}
}

func TestInMemorySaveReplaces(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	it := newIdealType(1)
	require.NoError(t, store.Save(ctx, it))

	replacement := *it
	replacement.Preferences = models.PreferenceSet{}
	require.NoError(t, store.Save(ctx, &replacement))

	found, err := store.FindByProfileID(ctx, it.ProfileID)
	require.NoError(t, err)
	assert.Empty(t, found.Preferences.DealBreakers)
}

func TestInMemoryFindByProfileIDNotFound(t *testing.T) {
	_, err := NewInMemory().FindByProfileID(context.Background(), id.NewProfileID())
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
}

func TestInMemoryFindByProfileIDsOmitsMissing(t *testing.T) {
	store := NewInMemory()
	ctx := context.Background()

	a, b := newIdealType(1), newIdealType(2)
	require.NoError(t, store.Save(ctx, a))
	require.NoError(t, store.Save(ctx, b))
	missing := id.NewProfileID()

	got, err := store.FindByProfileIDs(ctx, []id.ProfileID{a.ProfileID, missing, b.ProfileID})
	require.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, a.Preferences, got[a.ProfileID].Preferences)
	assert.NotContains(t, got, missing)
}

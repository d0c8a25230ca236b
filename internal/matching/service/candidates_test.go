package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/store/idealtype"
	"matchmaker/internal/matching/store/profile"
	id "matchmaker/pkg/domain"
)

// Three recent members refuse smokers and the oldest states no ideal type.
// A smoking owner asking for one mutual candidate must get the oldest.
func TestFindCandidatesMutualPagesPastRejections(t *testing.T) {
	ctx := context.Background()
	profiles := profile.NewInMemory()
	idealTypes := idealtype.NewInMemory()
	svc := New(profiles, idealTypes, WithClock(matchtest.Clock))
	r := matchtest.Rand(11)

	save := func(age time.Duration, smoker bool) *models.Profile {
		rec := matchtest.Record(r)
		rec.Smoker = smoker
		p := &models.Profile{ID: id.NewProfileID(), DisplayName: "member", Record: rec, UpdatedAt: matchtest.Now.Add(-age)}
		require.NoError(t, profiles.Save(ctx, p))
		return p
	}

	owner := save(0, true)
	noSmokers := false
	for i := 1; i <= 3; i++ {
		p := save(time.Duration(i)*time.Hour, false)
		require.NoError(t, idealTypes.Save(ctx, &models.IdealType{
			ProfileID: p.ID,
			Preferences: models.PreferenceSet{
				SmokingAllowed: &noSmokers,
				DealBreakers:   []models.ConditionKind{models.KindSmoking},
			},
		}))
	}
	oldest := save(4*time.Hour, false)

	for _, limit := range []int{1, 2, 500} {
		got, err := svc.FindCandidates(ctx, owner.ID, FindOptions{Mutual: true, Limit: limit})
		require.NoError(t, err)
		require.Len(t, got, 1, "limit %d", limit)
		assert.Equal(t, oldest.ID, got[0].ID)
	}

	got, err := svc.FindCandidates(ctx, owner.ID, FindOptions{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

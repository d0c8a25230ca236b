//go:build integration

package profile_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"matchmaker/internal/matching/compiler"
	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/store/profile"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
	"matchmaker/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *profile.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = profile.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateMatchingTables(context.Background()))
}

func (s *PostgresStoreSuite) TestRoundTripKeepsUndisclosedValues() {
	ctx := context.Background()
	rec := matchtest.Record(matchtest.Rand(1))
	rec.MBTI = nil
	rec.Income = nil
	p := &models.Profile{
		ID:          id.NewProfileID(),
		DisplayName: "Jiwoo",
		Record:      rec,
		UpdatedAt:   matchtest.Now,
	}
	s.Require().NoError(s.store.Save(ctx, p))

	found, err := s.store.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(p.Record, found.Record)
	s.Equal("Jiwoo", found.DisplayName)
	s.True(p.UpdatedAt.Equal(found.UpdatedAt))

	_, err = s.store.FindByID(ctx, id.NewProfileID())
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestSaveReplaces() {
	ctx := context.Background()
	p := &models.Profile{ID: id.NewProfileID(), Record: matchtest.Record(matchtest.Rand(2)), UpdatedAt: matchtest.Now}
	s.Require().NoError(s.store.Save(ctx, p))

	p.Record.Height = 199
	p.UpdatedAt = matchtest.Now.Add(time.Hour)
	s.Require().NoError(s.store.Save(ctx, p))

	found, err := s.store.FindByID(ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(199, found.Record.Height)
}

// TestFilterAgreesWithEvaluator runs compiled filters as SQL and checks the
// result set is exactly what the evaluator accepts, nulls included.
func (s *PostgresStoreSuite) TestFilterAgreesWithEvaluator() {
	ctx := context.Background()
	r := matchtest.Rand(42)

	records := make(map[id.ProfileID]models.CandidateRecord)
	for i := range 300 {
		p := &models.Profile{
			ID:        id.NewProfileID(),
			Record:    matchtest.Record(r),
			UpdatedAt: matchtest.Now.Add(-time.Duration(i) * time.Minute),
		}
		s.Require().NoError(s.store.Save(ctx, p))
		records[p.ID] = p.Record
	}

	comp := compiler.New(compiler.WithClock(matchtest.Clock))
	eval := evaluator.New(evaluator.WithClock(matchtest.Clock))
	for range 100 {
		prefs := matchtest.Preferences(r, 5)
		f, err := comp.Compile(prefs)
		s.Require().NoError(err)

		rows, err := s.store.FindMatching(ctx, f, id.ProfileID{}, nil, len(records))
		s.Require().NoError(err)
		got := make(map[id.ProfileID]bool, len(rows))
		for _, p := range rows {
			got[p.ID] = true
		}

		for pid, rec := range records {
			res, err := eval.Evaluate(prefs, rec)
			s.Require().NoError(err)
			s.Equal(res.Pass, got[pid], "profile %s, deal-breakers %v", pid, prefs.DealBreakers)
		}
	}
}

func (s *PostgresStoreSuite) TestFindMatchingExcludesOwnerAndOrders() {
	ctx := context.Background()
	r := matchtest.Rand(3)
	owner := &models.Profile{ID: id.NewProfileID(), Record: matchtest.Record(r), UpdatedAt: matchtest.Now}
	older := &models.Profile{ID: id.NewProfileID(), Record: matchtest.Record(r), UpdatedAt: matchtest.Now.Add(-time.Hour)}
	newer := &models.Profile{ID: id.NewProfileID(), Record: matchtest.Record(r), UpdatedAt: matchtest.Now.Add(time.Hour)}
	for _, p := range []*models.Profile{owner, older, newer} {
		s.Require().NoError(s.store.Save(ctx, p))
	}

	rows, err := s.store.FindMatching(ctx, filter.Filter{}, owner.ID, nil, 10)
	s.Require().NoError(err)
	s.Require().Len(rows, 2)
	s.Equal(newer.ID, rows[0].ID)
	s.Equal(older.ID, rows[1].ID)

	rows, err = s.store.FindMatching(ctx, filter.Filter{}, owner.ID, nil, 1)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(newer.ID, rows[0].ID)

	rows, err = s.store.FindMatching(ctx, filter.Filter{}, owner.ID, models.CursorAfter(rows[0]), 1)
	s.Require().NoError(err)
	s.Require().Len(rows, 1)
	s.Equal(older.ID, rows[0].ID)

	rows, err = s.store.FindMatching(ctx, filter.Filter{}, owner.ID, models.CursorAfter(rows[0]), 1)
	s.Require().NoError(err)
	s.Empty(rows)
}

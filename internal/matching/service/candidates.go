package service

import (
	"context"
	"time"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/tracer"
	id "matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
)

// FindOptions narrows a candidate search.
type FindOptions struct {
	// Mutual keeps only candidates whose own deal-breakers accept the owner.
	Mutual bool
	// Limit caps the result; zero uses the configured default.
	Limit int
}

// FindCandidates returns profiles that pass the owner's deal-breakers, most
// recently updated first.
//
// The compiled filter narrows the search in the store and every row is
// re-checked with the evaluator. Rows the store returned but the evaluator
// rejects are dropped and counted as filter divergence. Dropped rows, and in
// mutual mode candidates who reject the owner, do not shorten the page: the
// store is read page by page until limit candidates are found or it runs out.
func (s *Service) FindCandidates(ctx context.Context, ownerID id.ProfileID, opts FindOptions) (_ []*models.Profile, err error) {
	start := time.Now()
	ctx, span := s.tracer.Start(ctx, tracer.SpanFindCandidates,
		tracer.String(tracer.AttrProfileID, ownerID.String()),
		tracer.Bool(tracer.AttrMutualOnly, opts.Mutual),
	)
	defer func() { span.End(err) }()

	limit := opts.Limit
	switch {
	case limit < 0:
		return nil, dErrors.New(dErrors.CodeBadRequest, "limit must not be negative")
	case limit == 0:
		limit = s.candidateLimit
	case limit > maxCandidateLimit:
		limit = maxCandidateLimit
	}

	owner, err := s.loadMember(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	f, err := s.compiler.Compile(owner.Preferences)
	if err != nil {
		return nil, s.engineError(ctx, err, "compile", "profile_id", ownerID)
	}
	span.SetAttributes(tracer.Int(tracer.AttrActiveClauses, len(f.Active())))

	var (
		after   *models.Cursor
		fetched int
		pages   int
	)
	eligible := make([]*models.Profile, 0, limit)
	for len(eligible) < limit {
		rows, err := s.profiles.FindMatching(ctx, f, ownerID, after, limit)
		if err != nil {
			return nil, storeError(err, "profile not found", "find candidates")
		}
		pages++
		fetched += len(rows)

		page, err := s.admit(ctx, span, owner, rows, opts.Mutual)
		if err != nil {
			return nil, err
		}
		eligible = append(eligible, page...)

		if len(rows) < limit {
			break
		}
		after = models.CursorAfter(rows[len(rows)-1])
	}
	if len(eligible) > limit {
		eligible = eligible[:limit]
	}

	span.SetAttributes(
		tracer.Int(tracer.AttrRowsFetched, fetched),
		tracer.Int(tracer.AttrPagesFetched, pages),
		tracer.Int(tracer.AttrEligible, len(eligible)),
	)
	s.metrics.ObserveSearch(start, len(eligible))
	return eligible, nil
}

// admit re-checks one store page with the evaluator and, in mutual mode, with
// the candidates' own preferences.
func (s *Service) admit(ctx context.Context, span tracer.Span, owner models.Member, rows []*models.Profile, mutualOnly bool) ([]*models.Profile, error) {
	out := make([]*models.Profile, 0, len(rows))
	for _, p := range rows {
		res, err := s.evaluator.Evaluate(owner.Preferences, p.Record)
		if err != nil {
			return nil, s.engineError(ctx, err, "evaluate", "profile_id", owner.ID, "candidate_id", p.ID)
		}
		if !res.Pass {
			s.metrics.IncFilterDivergence()
			span.AddEvent(tracer.EventFilterDivergence,
				tracer.String(tracer.AttrCandidateID, p.ID.String()),
				tracer.String("failed_on", failedOn(res)),
			)
			s.logger.WarnContext(ctx, "store returned a candidate the evaluator rejects",
				"profile_id", owner.ID,
				"candidate_id", p.ID,
				"failed_on", failedOn(res),
			)
			continue
		}
		out = append(out, p)
	}
	if mutualOnly && len(out) > 0 {
		return s.keepMutual(ctx, owner, out)
	}
	return out, nil
}

// keepMutual drops candidates whose own preferences reject the owner.
// Candidates without an ideal type accept everyone.
func (s *Service) keepMutual(ctx context.Context, owner models.Member, candidates []*models.Profile) ([]*models.Profile, error) {
	ids := make([]id.ProfileID, len(candidates))
	for i, p := range candidates {
		ids[i] = p.ID
	}
	idealTypes, err := s.idealTypes.FindByProfileIDs(ctx, ids)
	if err != nil {
		return nil, storeError(err, "ideal type not found", "find ideal types")
	}

	out := candidates[:0]
	for _, p := range candidates {
		other := models.Member{ID: p.ID, Record: p.Record}
		if it, ok := idealTypes[p.ID]; ok {
			other.Preferences = it.Preferences
		}
		v, err := s.mutual.Check(owner, other)
		if err != nil {
			return nil, s.engineError(ctx, err, "check_mutual", "a", owner.ID, "b", p.ID)
		}
		if v.Mutual {
			out = append(out, p)
		}
	}
	return out, nil
}

// ExplainFilter returns the compiled filter of a member's ideal type. Members
// without one get an empty filter.
func (s *Service) ExplainFilter(ctx context.Context, ownerID id.ProfileID) (filter.Filter, error) {
	if _, err := s.GetProfile(ctx, ownerID); err != nil {
		return filter.Filter{}, err
	}
	prefs, err := s.preferencesOf(ctx, ownerID)
	if err != nil {
		return filter.Filter{}, err
	}
	f, err := s.compiler.Compile(prefs)
	if err != nil {
		return filter.Filter{}, s.engineError(ctx, err, "compile", "profile_id", ownerID)
	}
	return f, nil
}

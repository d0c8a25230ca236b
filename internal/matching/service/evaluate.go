package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/mutual"
	"matchmaker/internal/matching/tracer"
	id "matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
)

// Evaluate checks one candidate against the owner's deal-breakers.
func (s *Service) Evaluate(ctx context.Context, ownerID, candidateID id.ProfileID) (_ evaluator.Result, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanEvaluate,
		tracer.String(tracer.AttrProfileID, ownerID.String()),
		tracer.String(tracer.AttrCandidateID, candidateID.String()),
	)
	defer func() { span.End(err) }()

	if ownerID == candidateID {
		return evaluator.Result{}, dErrors.New(dErrors.CodeBadRequest, "a profile cannot be evaluated against itself")
	}
	prefs, err := s.preferencesOf(ctx, ownerID)
	if err != nil {
		return evaluator.Result{}, err
	}
	candidate, err := s.GetProfile(ctx, candidateID)
	if err != nil {
		return evaluator.Result{}, err
	}

	res, err := s.evaluator.Evaluate(prefs, candidate.Record)
	if err != nil {
		return evaluator.Result{}, s.engineError(ctx, err, "evaluate", "profile_id", ownerID)
	}
	s.metrics.ObserveEvaluation(res.Pass, failedOn(res))
	span.SetAttributes(tracer.Bool(tracer.AttrPass, res.Pass))
	return res, nil
}

// CheckMutual evaluates a pairing in both directions. Both members are loaded
// concurrently.
func (s *Service) CheckMutual(ctx context.Context, aID, bID id.ProfileID) (_ mutual.Verdict, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanCheckMutual,
		tracer.String(tracer.AttrProfileID, aID.String()),
		tracer.String(tracer.AttrCandidateID, bID.String()),
	)
	defer func() { span.End(err) }()

	if aID == bID {
		return mutual.Verdict{}, dErrors.New(dErrors.CodeBadRequest, "a profile cannot be paired with itself")
	}

	var a, b models.Member
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		a, err = s.loadMember(gctx, aID)
		return err
	})
	g.Go(func() error {
		var err error
		b, err = s.loadMember(gctx, bID)
		return err
	})
	if err := g.Wait(); err != nil {
		return mutual.Verdict{}, err
	}

	v, err := s.mutual.Check(a, b)
	if err != nil {
		return mutual.Verdict{}, s.engineError(ctx, err, "check_mutual", "a", aID, "b", bID)
	}
	s.metrics.ObserveEvaluation(v.AAcceptsB.Pass, failedOn(v.AAcceptsB))
	s.metrics.ObserveEvaluation(v.BAcceptsA.Pass, failedOn(v.BAcceptsA))
	span.SetAttributes(tracer.Bool(tracer.AttrPass, v.Mutual))
	return v, nil
}

func failedOn(res evaluator.Result) string {
	if res.FailedOn == nil {
		return ""
	}
	return string(*res.FailedOn)
}

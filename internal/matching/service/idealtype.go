package service

import (
	"context"
	"errors"

	"matchmaker/internal/matching/catalog"
	"matchmaker/internal/matching/events"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/tracer"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
	"matchmaker/pkg/requestcontext"
)

// SaveProfile creates or replaces a profile.
func (s *Service) SaveProfile(ctx context.Context, profile *models.Profile) error {
	if err := profile.Record.Validate(); err != nil {
		return err
	}
	profile.UpdatedAt = s.stamp(ctx)
	if err := s.profiles.Save(ctx, profile); err != nil {
		return storeError(err, "profile not found", "save profile")
	}
	return nil
}

// GetProfile loads a profile.
func (s *Service) GetProfile(ctx context.Context, profileID id.ProfileID) (*models.Profile, error) {
	p, err := s.profiles.FindByID(ctx, profileID)
	if err != nil {
		return nil, storeError(err, "profile not found", "find profile")
	}
	return p, nil
}

// SaveIdealType validates and stores a member's preferences, replacing any
// previous ideal type, then emits an IdealTypeChanged event.
//
// Errors: CodeNotFound when the profile doesn't exist; CodeValidation when
// the preference set breaks an authoring rule. A failed event publish is
// logged and does not fail the write.
func (s *Service) SaveIdealType(ctx context.Context, profileID id.ProfileID, prefs models.PreferenceSet) (_ *models.IdealType, err error) {
	ctx, span := s.tracer.Start(ctx, tracer.SpanSaveIdealType,
		tracer.String(tracer.AttrProfileID, profileID.String()),
		tracer.Int(tracer.AttrDealBreakers, len(prefs.DealBreakers)),
	)
	defer func() { span.End(err) }()

	if err := catalog.ValidatePreferences(prefs, s.maxDealBreakers); err != nil {
		return nil, err
	}
	if _, err := s.profiles.FindByID(ctx, profileID); err != nil {
		return nil, storeError(err, "profile not found", "find profile")
	}

	it := &models.IdealType{
		ProfileID:   profileID,
		Preferences: prefs,
		UpdatedAt:   s.stamp(ctx),
	}
	if err := s.idealTypes.Save(ctx, it); err != nil {
		return nil, storeError(err, "ideal type not found", "save ideal type")
	}
	s.metrics.IncIdealTypeSaved()
	s.logger.InfoContext(ctx, "ideal type saved",
		"profile_id", profileID,
		"deal_breakers", len(prefs.DealBreakers),
		"request_id", requestcontext.RequestID(ctx),
	)

	s.publishChanged(ctx, it)
	return it, nil
}

func (s *Service) publishChanged(ctx context.Context, it *models.IdealType) {
	if s.publisher == nil {
		return
	}
	event := events.IdealTypeChanged{
		ProfileID:    it.ProfileID,
		DealBreakers: it.Preferences.DealBreakers,
		RequestID:    requestcontext.RequestID(ctx),
		OccurredAt:   it.UpdatedAt,
	}
	if err := s.publisher.PublishIdealTypeChanged(ctx, event); err != nil {
		s.logger.WarnContext(ctx, "failed to publish ideal type event",
			"profile_id", it.ProfileID,
			"error", err,
		)
	}
}

// GetIdealType returns the stored ideal type of a profile.
func (s *Service) GetIdealType(ctx context.Context, profileID id.ProfileID) (*models.IdealType, error) {
	it, err := s.idealTypes.FindByProfileID(ctx, profileID)
	if err != nil {
		return nil, storeError(err, "ideal type not found", "find ideal type")
	}
	return it, nil
}

// preferencesOf returns the member's preferences, or an empty set when the
// member never authored an ideal type. An empty set accepts everyone.
func (s *Service) preferencesOf(ctx context.Context, profileID id.ProfileID) (models.PreferenceSet, error) {
	it, err := s.idealTypes.FindByProfileID(ctx, profileID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return models.PreferenceSet{}, nil
	}
	if err != nil {
		return models.PreferenceSet{}, storeError(err, "ideal type not found", "find ideal type")
	}
	return it.Preferences, nil
}

// loadMember loads the profile and preferences of one side of a pairing.
func (s *Service) loadMember(ctx context.Context, profileID id.ProfileID) (models.Member, error) {
	p, err := s.GetProfile(ctx, profileID)
	if err != nil {
		return models.Member{}, err
	}
	prefs, err := s.preferencesOf(ctx, profileID)
	if err != nil {
		return models.Member{}, err
	}
	return models.Member{ID: profileID, Record: p.Record, Preferences: prefs}, nil
}

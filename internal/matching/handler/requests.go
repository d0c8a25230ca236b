package handler

import (
	"matchmaker/internal/matching/models"
	id "matchmaker/pkg/domain"
	dErrors "matchmaker/pkg/domain-errors"
	pstrings "matchmaker/pkg/platform/strings"
	"matchmaker/pkg/platform/validation"
	structvalidation "matchmaker/pkg/validation"
)

// PutProfileRequest replaces a member's profile.
type PutProfileRequest struct {
	DisplayName string                 `json:"display_name" validate:"required,notblank,max=100"`
	Record      models.CandidateRecord `json:"record"`
}

// Normalize sanitizes inputs.
func (r *PutProfileRequest) Normalize() {
	if r == nil {
		return
	}
	pstrings.TrimAll(&r.DisplayName)
}

// Validate checks that the request is well-formed. Enumerated attributes are
// already rejected while decoding; this also catches missing ones.
func (r *PutProfileRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := structvalidation.Validate(r); err != nil {
		return err
	}
	return r.Record.Validate()
}

// ToProfile builds the domain profile for the given path ID.
func (r *PutProfileRequest) ToProfile(profileID id.ProfileID) *models.Profile {
	return &models.Profile{
		ID:          profileID,
		DisplayName: r.DisplayName,
		Record:      r.Record,
	}
}

// PutIdealTypeRequest replaces a member's ideal type. The body is the
// preference set itself.
type PutIdealTypeRequest struct {
	models.PreferenceSet
}

// Normalize drops repeated set values and trims free text. Deal-breakers are
// left alone so that duplicates are reported rather than silently merged.
func (r *PutIdealTypeRequest) Normalize() {
	if r == nil {
		return
	}
	p := &r.PreferenceSet
	p.PreferredRegions = pstrings.Dedupe(p.PreferredRegions)
	p.BodyShapes = pstrings.Dedupe(p.BodyShapes)
	p.EyelidTypes = pstrings.Dedupe(p.EyelidTypes)
	p.OccupationStatuses = pstrings.Dedupe(p.OccupationStatuses)
	p.PreferredMBTI = pstrings.Dedupe(p.PreferredMBTI)
	p.DisfavoredMBTI = pstrings.Dedupe(p.DisfavoredMBTI)
	p.PreferredReligions = pstrings.Dedupe(p.PreferredReligions)
	p.DisfavoredReligions = pstrings.Dedupe(p.DisfavoredReligions)
	pstrings.TrimAll(
		&p.FacialFeatures, &p.SchoolTier, &p.DisfavoredWorkplaces, &p.DisfavoredJobs,
		&p.Hobbies, &p.Characteristics,
	)
}

// Validate enforces request size limits. Preference invariants are checked
// by the service.
func (r *PutIdealTypeRequest) Validate() error {
	if r == nil {
		return dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	p := r.PreferenceSet
	counts := []struct {
		field string
		n     int
	}{
		{"preferred_regions", len(p.PreferredRegions)},
		{"body_shapes", len(p.BodyShapes)},
		{"eyelid_types", len(p.EyelidTypes)},
		{"occupation_statuses", len(p.OccupationStatuses)},
		{"preferred_mbti", len(p.PreferredMBTI)},
		{"disfavored_mbti", len(p.DisfavoredMBTI)},
		{"preferred_religions", len(p.PreferredReligions)},
		{"disfavored_religions", len(p.DisfavoredReligions)},
		{"deal_breakers", len(p.DealBreakers)},
	}
	for _, c := range counts {
		if err := validation.CheckSliceCount(c.field, c.n, validation.MaxSetValues); err != nil {
			return err
		}
	}
	texts := []struct {
		field string
		value string
	}{
		{"facial_features", p.FacialFeatures},
		{"school_tier", p.SchoolTier},
		{"disfavored_workplaces", p.DisfavoredWorkplaces},
		{"disfavored_jobs", p.DisfavoredJobs},
		{"hobbies", p.Hobbies},
		{"characteristics", p.Characteristics},
	}
	for _, t := range texts {
		if err := validation.CheckStringLength(t.field, t.value, validation.MaxFreeTextLength); err != nil {
			return err
		}
	}
	return nil
}

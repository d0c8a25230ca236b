package models

import (
	"slices"

	"matchmaker/internal/matching/scale"
)

// PreferenceSet is one member's ideal type: an optional value per condition
// kind plus the ordered subset of kinds the member treats as deal-breakers.
//
// A nil pointer, empty slice or blank text means the member left that
// preference unset. Every kind named in DealBreakers must have its value set;
// callers enforce this with catalog.ValidatePreferences before persisting.
type PreferenceSet struct {
	MinAge *int `json:"min_age,omitempty"`
	MaxAge *int `json:"max_age,omitempty"`

	PreferredRegions []Region `json:"preferred_regions,omitempty"`

	MinHeight *int `json:"min_height,omitempty"`
	MaxHeight *int `json:"max_height,omitempty"`

	BodyShapes     []BodyShape  `json:"body_shapes,omitempty"`
	EyelidTypes    []EyelidType `json:"eyelid_types,omitempty"`
	FacialFeatures string       `json:"facial_features,omitempty"`

	MinEducation         *scale.Education   `json:"min_education,omitempty"`
	SchoolTier           string             `json:"school_tier,omitempty"`
	OccupationStatuses   []OccupationStatus `json:"occupation_statuses,omitempty"`
	DisfavoredWorkplaces string             `json:"disfavored_workplaces,omitempty"`
	DisfavoredJobs       string             `json:"disfavored_jobs,omitempty"`

	PreferredMBTI  []MBTI `json:"preferred_mbti,omitempty"`
	DisfavoredMBTI []MBTI `json:"disfavored_mbti,omitempty"`

	SmokingAllowed *bool              `json:"smoking_allowed,omitempty"`
	MinDrinking    *DrinkingFrequency `json:"min_drinking,omitempty"`

	PreferredReligions  []Religion `json:"preferred_religions,omitempty"`
	DisfavoredReligions []Religion `json:"disfavored_religions,omitempty"`

	MinIncome *scale.Income `json:"min_income,omitempty"`
	MinAssets *scale.Assets `json:"min_assets,omitempty"`

	Hobbies         string           `json:"hobbies,omitempty"`
	MinBooksRead    *scale.BooksRead `json:"min_books_read,omitempty"`
	Characteristics string           `json:"characteristics,omitempty"`
	TattooAllowed   *bool            `json:"tattoo_allowed,omitempty"`
	MinExercise     *scale.Exercise  `json:"min_exercise,omitempty"`
	CarRequired     *bool            `json:"car_required,omitempty"`
	GamingAllowed   *bool            `json:"gaming_allowed,omitempty"`
	PetAllowed      *bool            `json:"pet_allowed,omitempty"`

	DealBreakers []ConditionKind `json:"deal_breakers"`
}

// IsDealBreaker reports whether k is in the deal-breaker list.
func (p PreferenceSet) IsDealBreaker(k ConditionKind) bool {
	return slices.Contains(p.DealBreakers, k)
}

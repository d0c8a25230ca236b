package models

import (
	"fmt"

	"matchmaker/internal/matching/scale"
	dErrors "matchmaker/pkg/domain-errors"
)

// CandidateRecord holds the attributes of a profile that conditions are
// checked against. Pointer fields are the ones members may leave undisclosed.
type CandidateRecord struct {
	BirthYear  int                `json:"birth_year"`
	Region     Region             `json:"region"`
	Height     int                `json:"height"`
	BodyShape  BodyShape          `json:"body_shape"`
	Education  scale.Education    `json:"education"`
	Occupation OccupationStatus   `json:"occupation_status"`
	MBTI       *MBTI              `json:"mbti,omitempty"`
	Smoker     bool               `json:"smoker"`
	Drinking   *DrinkingFrequency `json:"drinking,omitempty"`
	Religion   Religion           `json:"religion"`
	Income     *scale.Income      `json:"income,omitempty"`
	Assets     *scale.Assets      `json:"assets,omitempty"`
	BooksRead  scale.BooksRead    `json:"books_read"`
	Tattoo     bool               `json:"tattoo"`
	Exercise   scale.Exercise     `json:"exercise"`
	CarOwner   bool               `json:"car_owner"`
	Gamer      bool               `json:"gamer"`
	PetOwner   bool               `json:"pet_owner"`
}

// Attribute names a CandidateRecord field. The names double as storage
// column names, so a filter clause can only ever address these.
type Attribute string

const (
	AttrBirthYear  Attribute = "birth_year"
	AttrRegion     Attribute = "region"
	AttrHeight     Attribute = "height"
	AttrBodyShape  Attribute = "body_shape"
	AttrEducation  Attribute = "education"
	AttrOccupation Attribute = "occupation_status"
	AttrMBTI       Attribute = "mbti"
	AttrSmoker     Attribute = "smoker"
	AttrDrinking   Attribute = "drinking"
	AttrReligion   Attribute = "religion"
	AttrIncome     Attribute = "income"
	AttrAssets     Attribute = "assets"
	AttrBooksRead  Attribute = "books_read"
	AttrTattoo     Attribute = "tattoo"
	AttrExercise   Attribute = "exercise"
	AttrCarOwner   Attribute = "car_owner"
	AttrGamer      Attribute = "gamer"
	AttrPetOwner   Attribute = "pet_owner"
)

// AllAttributes lists every addressable attribute.
var AllAttributes = []Attribute{
	AttrBirthYear, AttrRegion, AttrHeight, AttrBodyShape, AttrEducation, AttrOccupation,
	AttrMBTI, AttrSmoker, AttrDrinking, AttrReligion, AttrIncome, AttrAssets,
	AttrBooksRead, AttrTattoo, AttrExercise, AttrCarOwner, AttrGamer, AttrPetOwner,
}

// Nullable reports whether the attribute may be undisclosed.
func (a Attribute) Nullable() bool {
	switch a {
	case AttrMBTI, AttrDrinking, AttrIncome, AttrAssets:
		return true
	default:
		return false
	}
}

// Value returns the attribute as a string, int or bool. Undisclosed values
// come back as nil.
func (c CandidateRecord) Value(a Attribute) (any, error) {
	switch a {
	case AttrBirthYear:
		return c.BirthYear, nil
	case AttrRegion:
		return string(c.Region), nil
	case AttrHeight:
		return c.Height, nil
	case AttrBodyShape:
		return string(c.BodyShape), nil
	case AttrEducation:
		return string(c.Education), nil
	case AttrOccupation:
		return string(c.Occupation), nil
	case AttrMBTI:
		return optional(c.MBTI), nil
	case AttrSmoker:
		return c.Smoker, nil
	case AttrDrinking:
		return optional(c.Drinking), nil
	case AttrReligion:
		return string(c.Religion), nil
	case AttrIncome:
		return optional(c.Income), nil
	case AttrAssets:
		return optional(c.Assets), nil
	case AttrBooksRead:
		return string(c.BooksRead), nil
	case AttrTattoo:
		return c.Tattoo, nil
	case AttrExercise:
		return string(c.Exercise), nil
	case AttrCarOwner:
		return c.CarOwner, nil
	case AttrGamer:
		return c.Gamer, nil
	case AttrPetOwner:
		return c.PetOwner, nil
	default:
		return nil, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("unknown candidate attribute %q", a))
	}
}

func optional[T ~string](v *T) any {
	if v == nil {
		return nil
	}
	return string(*v)
}

// Validate checks that every enumerated attribute holds a declared value.
//
// Errors: returns CodeValidation naming the first offending attribute.
func (c CandidateRecord) Validate() error {
	checks := []struct {
		attr Attribute
		ok   bool
	}{
		{AttrBirthYear, c.BirthYear > 1900},
		{AttrHeight, c.Height > 0},
		{AttrRegion, c.Region.Valid()},
		{AttrBodyShape, c.BodyShape.Valid()},
		{AttrEducation, scale.Educations.Contains(c.Education)},
		{AttrOccupation, c.Occupation.Valid()},
		{AttrMBTI, c.MBTI == nil || c.MBTI.Valid()},
		{AttrDrinking, c.Drinking == nil || c.Drinking.Valid()},
		{AttrReligion, c.Religion.Valid()},
		{AttrIncome, c.Income == nil || scale.Incomes.Contains(*c.Income)},
		{AttrAssets, c.Assets == nil || scale.AssetBrackets.Contains(*c.Assets)},
		{AttrBooksRead, scale.BooksReadBrackets.Contains(c.BooksRead)},
		{AttrExercise, scale.ExerciseFrequencies.Contains(c.Exercise)},
	}
	for _, chk := range checks {
		if !chk.ok {
			return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("candidate attribute %s is missing or invalid", chk.attr))
		}
	}
	return nil
}

package catalog

import (
	"fmt"

	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	dErrors "matchmaker/pkg/domain-errors"
)

// ValidatePreferences checks a preference set before it is stored.
//
// Every deal-breaker must be a known kind with its value supplied (advisory
// kinds included), appear once, and the list may hold at most
// maxDealBreakers entries. Values must belong to their domains and ranges
// must not be inverted.
//
// Errors: returns CodeValidation describing the first problem found.
func ValidatePreferences(p models.PreferenceSet, maxDealBreakers int) error {
	if maxDealBreakers > 0 && len(p.DealBreakers) > maxDealBreakers {
		return invalid("at most %d deal-breakers may be chosen, got %d", maxDealBreakers, len(p.DealBreakers))
	}
	seen := make(map[models.ConditionKind]struct{}, len(p.DealBreakers))
	for _, k := range p.DealBreakers {
		e, ok := entries[k]
		if !ok {
			return invalid("unknown condition kind %q", k)
		}
		if _, dup := seen[k]; dup {
			return invalid("deal-breaker %s listed twice", k)
		}
		seen[k] = struct{}{}
		if !e.Supplied(p) {
			return invalid("deal-breaker %s needs a preference value", k)
		}
	}

	if err := checkRange("age", p.MinAge, p.MaxAge); err != nil {
		return err
	}
	if err := checkRange("height", p.MinHeight, p.MaxHeight); err != nil {
		return err
	}
	if err := checkFloor(scale.Educations, p.MinEducation); err != nil {
		return err
	}
	if err := checkFloor(scale.Incomes, p.MinIncome); err != nil {
		return err
	}
	if err := checkFloor(scale.AssetBrackets, p.MinAssets); err != nil {
		return err
	}
	if err := checkFloor(scale.BooksReadBrackets, p.MinBooksRead); err != nil {
		return err
	}
	if err := checkFloor(scale.ExerciseFrequencies, p.MinExercise); err != nil {
		return err
	}
	if p.MinDrinking != nil && !p.MinDrinking.Valid() {
		return invalid("unknown drinking frequency %q", *p.MinDrinking)
	}

	return firstInvalid(
		checkMembers("region", p.PreferredRegions),
		checkMembers("body shape", p.BodyShapes),
		checkMembers("eyelid type", p.EyelidTypes),
		checkMembers("occupation status", p.OccupationStatuses),
		checkMembers("MBTI", p.PreferredMBTI),
		checkMembers("MBTI", p.DisfavoredMBTI),
		checkMembers("religion", p.PreferredReligions),
		checkMembers("religion", p.DisfavoredReligions),
	)
}

type validEnum interface {
	~string
	Valid() bool
}

func checkMembers[T validEnum](name string, values []T) error {
	for _, v := range values {
		if !v.Valid() {
			return invalid("unknown %s %q", name, v)
		}
	}
	return nil
}

func checkFloor[T ~string](s *scale.Scale[T], floor *T) error {
	if floor == nil || s.Contains(*floor) {
		return nil
	}
	return invalid("unknown %s level %q", s.Domain(), *floor)
}

func checkRange(name string, lo, hi *int) error {
	if (lo != nil && *lo < 0) || (hi != nil && *hi < 0) {
		return invalid("%s bounds must not be negative", name)
	}
	if lo != nil && hi != nil && *lo > *hi {
		return invalid("minimum %s %d exceeds maximum %d", name, *lo, *hi)
	}
	return nil
}

func firstInvalid(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf(format, args...))
}

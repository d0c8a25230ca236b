package catalog

import (
	"slices"
	"strings"
	"time"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	id "matchmaker/pkg/domain"
)

func init() {
	// Checkable kinds.
	register(Entry{
		Kind:     models.KindAgeRange,
		Tag:      Checkable,
		Reads:    models.AttrBirthYear,
		Supplied: func(p prefs) bool { return p.MinAge != nil || p.MaxAge != nil },
		Rule: rangeRule(models.KindAgeRange, models.AttrBirthYear,
			func(p prefs, env Env) (*int, *int) { return birthYears(p, env.Now) },
			func(c record) int { return c.BirthYear }),
	})
	register(Entry{
		Kind:     models.KindHeightRange,
		Tag:      Checkable,
		Reads:    models.AttrHeight,
		Supplied: func(p prefs) bool { return p.MinHeight != nil || p.MaxHeight != nil },
		Rule: rangeRule(models.KindHeightRange, models.AttrHeight,
			func(p prefs, _ Env) (*int, *int) { return p.MinHeight, p.MaxHeight },
			func(c record) int { return c.Height }),
	})
	register(Entry{
		Kind:     models.KindEducation,
		Tag:      Checkable,
		Reads:    models.AttrEducation,
		Supplied: func(p prefs) bool { return p.MinEducation != nil },
		Rule: floorRule(models.KindEducation, models.AttrEducation, scale.Educations,
			func(p prefs) *scale.Education { return p.MinEducation },
			func(c record) *scale.Education { return &c.Education }),
	})
	register(Entry{
		Kind:     models.KindOccupationStatus,
		Tag:      Checkable,
		Reads:    models.AttrOccupation,
		Supplied: func(p prefs) bool { return len(p.OccupationStatuses) > 0 },
		Rule: memberRule(models.KindOccupationStatus, models.AttrOccupation, filter.OpIn, false,
			func(p prefs) []models.OccupationStatus { return p.OccupationStatuses },
			func(c record) *models.OccupationStatus { return &c.Occupation }),
	})
	register(Entry{
		Kind:     models.KindPreferredMBTI,
		Tag:      Checkable,
		Reads:    models.AttrMBTI,
		Supplied: func(p prefs) bool { return len(p.PreferredMBTI) > 0 },
		Rule: memberRule(models.KindPreferredMBTI, models.AttrMBTI, filter.OpIn, true,
			func(p prefs) []models.MBTI { return p.PreferredMBTI },
			func(c record) *models.MBTI { return c.MBTI }),
	})
	register(Entry{
		Kind:     models.KindDisfavoredMBTI,
		Tag:      Checkable,
		Reads:    models.AttrMBTI,
		Supplied: func(p prefs) bool { return len(p.DisfavoredMBTI) > 0 },
		Rule: memberRule(models.KindDisfavoredMBTI, models.AttrMBTI, filter.OpNotIn, true,
			func(p prefs) []models.MBTI { return p.DisfavoredMBTI },
			func(c record) *models.MBTI { return c.MBTI }),
	})
	register(Entry{
		Kind:     models.KindSmoking,
		Tag:      Checkable,
		Reads:    models.AttrSmoker,
		Supplied: func(p prefs) bool { return p.SmokingAllowed != nil },
		Rule: toleranceRule(models.KindSmoking, models.AttrSmoker,
			func(p prefs) *bool { return p.SmokingAllowed },
			func(c record) bool { return c.Smoker }),
	})
	register(Entry{
		Kind:     models.KindPreferredReligion,
		Tag:      Checkable,
		Reads:    models.AttrReligion,
		Supplied: func(p prefs) bool { return len(p.PreferredReligions) > 0 },
		Rule: memberRule(models.KindPreferredReligion, models.AttrReligion, filter.OpIn, false,
			func(p prefs) []models.Religion { return p.PreferredReligions },
			func(c record) *models.Religion { return &c.Religion }),
	})
	register(Entry{
		Kind:     models.KindDisfavoredReligion,
		Tag:      Checkable,
		Reads:    models.AttrReligion,
		Supplied: func(p prefs) bool { return len(p.DisfavoredReligions) > 0 },
		Rule: memberRule(models.KindDisfavoredReligion, models.AttrReligion, filter.OpNotIn, false,
			func(p prefs) []models.Religion { return p.DisfavoredReligions },
			func(c record) *models.Religion { return &c.Religion }),
	})
	register(Entry{
		Kind:     models.KindIncome,
		Tag:      Checkable,
		Reads:    models.AttrIncome,
		Supplied: func(p prefs) bool { return p.MinIncome != nil },
		Rule: floorRule(models.KindIncome, models.AttrIncome, scale.Incomes,
			func(p prefs) *scale.Income { return p.MinIncome },
			func(c record) *scale.Income { return c.Income }),
	})
	register(Entry{
		Kind:     models.KindAssets,
		Tag:      Checkable,
		Reads:    models.AttrAssets,
		Supplied: func(p prefs) bool { return p.MinAssets != nil },
		Rule: floorRule(models.KindAssets, models.AttrAssets, scale.AssetBrackets,
			func(p prefs) *scale.Assets { return p.MinAssets },
			func(c record) *scale.Assets { return c.Assets }),
	})
	register(Entry{
		Kind:     models.KindBooksRead,
		Tag:      Checkable,
		Reads:    models.AttrBooksRead,
		Supplied: func(p prefs) bool { return p.MinBooksRead != nil },
		Rule: floorRule(models.KindBooksRead, models.AttrBooksRead, scale.BooksReadBrackets,
			func(p prefs) *scale.BooksRead { return p.MinBooksRead },
			func(c record) *scale.BooksRead { return &c.BooksRead }),
	})
	register(Entry{
		Kind:     models.KindTattoo,
		Tag:      Checkable,
		Reads:    models.AttrTattoo,
		Supplied: func(p prefs) bool { return p.TattooAllowed != nil },
		Rule: toleranceRule(models.KindTattoo, models.AttrTattoo,
			func(p prefs) *bool { return p.TattooAllowed },
			func(c record) bool { return c.Tattoo }),
	})
	register(Entry{
		Kind:     models.KindExercise,
		Tag:      Checkable,
		Reads:    models.AttrExercise,
		Supplied: func(p prefs) bool { return p.MinExercise != nil },
		Rule:     exerciseRule(),
	})
	register(Entry{
		Kind:     models.KindCar,
		Tag:      Checkable,
		Reads:    models.AttrCarOwner,
		Supplied: func(p prefs) bool { return p.CarRequired != nil },
		Rule:     carRule(),
	})
	register(Entry{
		Kind:     models.KindGaming,
		Tag:      Checkable,
		Reads:    models.AttrGamer,
		Supplied: func(p prefs) bool { return p.GamingAllowed != nil },
		Rule: toleranceRule(models.KindGaming, models.AttrGamer,
			func(p prefs) *bool { return p.GamingAllowed },
			func(c record) bool { return c.Gamer }),
	})
	register(Entry{
		Kind:     models.KindPet,
		Tag:      Checkable,
		Reads:    models.AttrPetOwner,
		Supplied: func(p prefs) bool { return p.PetAllowed != nil },
		Rule: toleranceRule(models.KindPet, models.AttrPetOwner,
			func(p prefs) *bool { return p.PetAllowed },
			func(c record) bool { return c.PetOwner }),
	})

	// Advisory kinds.
	advisory(models.KindRegion, models.AttrRegion, func(p prefs) bool { return len(p.PreferredRegions) > 0 })
	advisory(models.KindBodyShape, models.AttrBodyShape, func(p prefs) bool { return len(p.BodyShapes) > 0 })
	advisory(models.KindEyelidType, "", func(p prefs) bool { return len(p.EyelidTypes) > 0 })
	advisory(models.KindFacialFeature, "", func(p prefs) bool { return hasText(p.FacialFeatures) })
	advisory(models.KindSchoolTier, "", func(p prefs) bool { return hasText(p.SchoolTier) })
	advisory(models.KindDisfavoredWorkplace, "", func(p prefs) bool { return hasText(p.DisfavoredWorkplaces) })
	advisory(models.KindDisfavoredJob, "", func(p prefs) bool { return hasText(p.DisfavoredJobs) })
	advisory(models.KindDrinking, models.AttrDrinking, func(p prefs) bool { return p.MinDrinking != nil })
	advisory(models.KindHobby, "", func(p prefs) bool { return hasText(p.Hobbies) })
	advisory(models.KindCharacteristics, "", func(p prefs) bool { return hasText(p.Characteristics) })
}

func advisory(kind models.ConditionKind, reads models.Attribute, supplied func(prefs) bool) {
	register(Entry{Kind: kind, Tag: Advisory, Reads: reads, Supplied: supplied})
}

func hasText(s string) bool { return strings.TrimSpace(s) != "" }

func birthYears(p prefs, now time.Time) (*int, *int) {
	return id.BirthYearBounds(p.MinAge, p.MaxAge, now)
}

// exerciseRule keeps only the distinction between "no exercise" and "some
// exercise": any floor above NONE admits every level above NONE.
func exerciseRule() *Rule {
	active := func(p prefs) ([]scale.Exercise, error) {
		if _, err := scale.ExerciseFrequencies.Rank(*p.MinExercise); err != nil {
			return nil, invalidValue(models.KindExercise, err)
		}
		if *p.MinExercise == scale.ExerciseNone {
			return nil, nil
		}
		return scale.ExerciseFrequencies.Above(scale.ExerciseNone)
	}
	return &Rule{
		Check: func(p prefs, c record, _ Env) (bool, error) {
			levels, err := active(p)
			if err != nil {
				return false, err
			}
			if levels == nil {
				return true, nil
			}
			return slices.Contains(levels, c.Exercise), nil
		},
		Clause: func(p prefs, _ Env) (filter.Clause, error) {
			levels, err := active(p)
			if err != nil {
				return filter.Clause{}, err
			}
			if levels == nil {
				return filter.Clause{Kind: models.KindExercise, Op: filter.OpNone}, nil
			}
			return filter.Clause{
				Kind:      models.KindExercise,
				Op:        filter.OpIn,
				Attribute: models.AttrExercise,
				Values:    toStrings(levels),
			}, nil
		},
	}
}

func carRule() *Rule {
	return &Rule{
		Check: func(p prefs, c record, _ Env) (bool, error) {
			return !*p.CarRequired || c.CarOwner, nil
		},
		Clause: func(p prefs, _ Env) (filter.Clause, error) {
			if !*p.CarRequired {
				return filter.Clause{Kind: models.KindCar, Op: filter.OpNone}, nil
			}
			yes := true
			return filter.Clause{Kind: models.KindCar, Op: filter.OpEq, Attribute: models.AttrCarOwner, Equals: &yes}, nil
		},
	}
}

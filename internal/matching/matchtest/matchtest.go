// Package matchtest builds random candidate records and preference sets for
// property tests of the matching engine.
package matchtest

import (
	"math/rand/v2"
	"time"

	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
)

// Now is the fixed reference instant fixtures are built against.
var Now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// Clock returns Now.
func Clock() time.Time { return Now }

// Rand returns a deterministic source so failures reproduce.
func Rand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Record returns a random candidate record. Nullable attributes are left
// undisclosed about a quarter of the time.
func Record(r *rand.Rand) models.CandidateRecord {
	return models.CandidateRecord{
		BirthYear:  1965 + r.IntN(45),
		Region:     pick(r, models.Regions()),
		Height:     150 + r.IntN(46),
		BodyShape:  pick(r, models.BodyShapes()),
		Education:  pick(r, scale.Educations.Levels()),
		Occupation: pick(r, models.OccupationStatuses()),
		MBTI:       maybe(r, models.MBTITypes()),
		Smoker:     r.IntN(2) == 0,
		Drinking:   maybe(r, models.DrinkingFrequencies()),
		Religion:   pick(r, models.Religions()),
		Income:     maybe(r, scale.Incomes.Levels()),
		Assets:     maybe(r, scale.AssetBrackets.Levels()),
		BooksRead:  pick(r, scale.BooksReadBrackets.Levels()),
		Tattoo:     r.IntN(2) == 0,
		Exercise:   pick(r, scale.ExerciseFrequencies.Levels()),
		CarOwner:   r.IntN(2) == 0,
		Gamer:      r.IntN(2) == 0,
		PetOwner:   r.IntN(2) == 0,
	}
}

// Supply sets a random value for kind on p. The value always satisfies the
// authoring rules, so a deal-breaker on kind becomes valid.
func Supply(r *rand.Rand, p *models.PreferenceSet, kind models.ConditionKind) {
	switch kind {
	case models.KindAgeRange:
		lo := 20 + r.IntN(20)
		hi := lo + r.IntN(15)
		p.MinAge, p.MaxAge = optionalBounds(r, lo, hi)
	case models.KindHeightRange:
		lo := 150 + r.IntN(30)
		hi := lo + r.IntN(25)
		p.MinHeight, p.MaxHeight = optionalBounds(r, lo, hi)
	case models.KindRegion:
		p.PreferredRegions = subset(r, models.Regions())
	case models.KindBodyShape:
		p.BodyShapes = subset(r, models.BodyShapes())
	case models.KindEyelidType:
		p.EyelidTypes = subset(r, models.EyelidTypes())
	case models.KindFacialFeature:
		p.FacialFeatures = "warm smile"
	case models.KindEducation:
		p.MinEducation = ptr(pick(r, scale.Educations.Levels()))
	case models.KindSchoolTier:
		p.SchoolTier = "any four-year university"
	case models.KindOccupationStatus:
		p.OccupationStatuses = subset(r, models.OccupationStatuses())
	case models.KindDisfavoredWorkplace:
		p.DisfavoredWorkplaces = "night-shift hospitals"
	case models.KindDisfavoredJob:
		p.DisfavoredJobs = "day trader"
	case models.KindPreferredMBTI:
		p.PreferredMBTI = subset(r, models.MBTITypes())
	case models.KindDisfavoredMBTI:
		p.DisfavoredMBTI = subset(r, models.MBTITypes())
	case models.KindSmoking:
		p.SmokingAllowed = ptr(r.IntN(2) == 0)
	case models.KindDrinking:
		p.MinDrinking = ptr(pick(r, models.DrinkingFrequencies()))
	case models.KindPreferredReligion:
		p.PreferredReligions = subset(r, models.Religions())
	case models.KindDisfavoredReligion:
		p.DisfavoredReligions = subset(r, models.Religions())
	case models.KindIncome:
		p.MinIncome = ptr(pick(r, scale.Incomes.Levels()))
	case models.KindAssets:
		p.MinAssets = ptr(pick(r, scale.AssetBrackets.Levels()))
	case models.KindHobby:
		p.Hobbies = "hiking"
	case models.KindBooksRead:
		p.MinBooksRead = ptr(pick(r, scale.BooksReadBrackets.Levels()))
	case models.KindCharacteristics:
		p.Characteristics = "patient"
	case models.KindTattoo:
		p.TattooAllowed = ptr(r.IntN(2) == 0)
	case models.KindExercise:
		p.MinExercise = ptr(pick(r, scale.ExerciseFrequencies.Levels()))
	case models.KindCar:
		p.CarRequired = ptr(r.IntN(2) == 0)
	case models.KindGaming:
		p.GamingAllowed = ptr(r.IntN(2) == 0)
	case models.KindPet:
		p.PetAllowed = ptr(r.IntN(2) == 0)
	}
}

// Preferences returns a random preference set with up to maxDealBreakers
// deal-breakers, each of them supplied.
func Preferences(r *rand.Rand, maxDealBreakers int) models.PreferenceSet {
	var p models.PreferenceSet
	for _, k := range models.AllConditionKinds {
		if r.IntN(2) == 0 {
			Supply(r, &p, k)
		}
	}
	n := r.IntN(maxDealBreakers + 1)
	for _, i := range r.Perm(len(models.AllConditionKinds))[:n] {
		k := models.AllConditionKinds[i]
		Supply(r, &p, k)
		p.DealBreakers = append(p.DealBreakers, k)
	}
	return p
}

func optionalBounds(r *rand.Rand, lo, hi int) (*int, *int) {
	switch r.IntN(3) {
	case 0:
		return &lo, nil
	case 1:
		return nil, &hi
	default:
		return &lo, &hi
	}
}

func pick[T any](r *rand.Rand, values []T) T {
	return values[r.IntN(len(values))]
}

func maybe[T any](r *rand.Rand, values []T) *T {
	if r.IntN(4) == 0 {
		return nil
	}
	return ptr(pick(r, values))
}

func subset[T any](r *rand.Rand, values []T) []T {
	n := 1 + r.IntN(len(values))
	out := make([]T, 0, n)
	for _, i := range r.Perm(len(values))[:n] {
		out = append(out, values[i])
	}
	return out
}

func ptr[T any](v T) *T { return &v }

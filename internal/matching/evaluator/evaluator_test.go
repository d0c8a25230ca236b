package evaluator

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	dErrors "matchmaker/pkg/domain-errors"
)

type EvaluatorSuite struct {
	suite.Suite
	eval *Evaluator
}

func TestEvaluatorSuite(t *testing.T) {
	suite.Run(t, new(EvaluatorSuite))
}

func (s *EvaluatorSuite) SetupTest() {
	s.eval = New(WithClock(matchtest.Clock))
}

func (s *EvaluatorSuite) TestNoDealBreakersPassesEveryone() {
	r := matchtest.Rand(1)
	for range 100 {
		p := matchtest.Preferences(r, 5)
		p.DealBreakers = nil
		res, err := s.eval.Evaluate(p, matchtest.Record(r))
		s.Require().NoError(err)
		s.True(res.Pass)
		s.Nil(res.FailedOn)
	}
}

func (s *EvaluatorSuite) TestIncomeFloorScenario() {
	floor := scale.Income50MTo70M
	p := models.PreferenceSet{MinIncome: &floor, DealBreakers: []models.ConditionKind{models.KindIncome}}

	high := scale.Income70MTo100M
	res, err := s.eval.Evaluate(p, models.CandidateRecord{Income: &high})
	s.Require().NoError(err)
	s.True(res.Pass)

	low := scale.Income30MTo50M
	res, err = s.eval.Evaluate(p, models.CandidateRecord{Income: &low})
	s.Require().NoError(err)
	s.False(res.Pass)
	s.Equal(models.KindIncome, *res.FailedOn)

	res, err = s.eval.Evaluate(p, models.CandidateRecord{})
	s.Require().NoError(err)
	s.False(res.Pass, "undisclosed income fails a floor")
}

func (s *EvaluatorSuite) TestDisfavoredReligionScenario() {
	p := models.PreferenceSet{
		DisfavoredReligions: []models.Religion{models.ReligionBuddhist},
		DealBreakers:        []models.ConditionKind{models.KindDisfavoredReligion},
	}

	res, err := s.eval.Evaluate(p, models.CandidateRecord{Religion: models.ReligionChristian})
	s.Require().NoError(err)
	s.True(res.Pass)

	res, err = s.eval.Evaluate(p, models.CandidateRecord{Religion: models.ReligionBuddhist})
	s.Require().NoError(err)
	s.False(res.Pass)
	s.Equal(models.KindDisfavoredReligion, *res.FailedOn)
}

func (s *EvaluatorSuite) TestUnknownValuePolicyIsAsymmetric() {
	floor := scale.AssetsUnder100M
	p := models.PreferenceSet{
		PreferredMBTI:  []models.MBTI{models.MBTIINTJ},
		DisfavoredMBTI: []models.MBTI{models.MBTIESFP},
		MinAssets:      &floor,
	}
	anon := models.CandidateRecord{}

	p.DealBreakers = []models.ConditionKind{models.KindPreferredMBTI, models.KindDisfavoredMBTI}
	res, err := s.eval.Evaluate(p, anon)
	s.Require().NoError(err)
	s.True(res.Pass, "undisclosed MBTI passes both MBTI conditions")

	p.DealBreakers = []models.ConditionKind{models.KindAssets}
	res, err = s.eval.Evaluate(p, anon)
	s.Require().NoError(err)
	s.False(res.Pass, "undisclosed assets fail even the lowest floor")
}

func (s *EvaluatorSuite) TestFailsFastInDealBreakerOrder() {
	no := false
	p := models.PreferenceSet{
		SmokingAllowed: &no,
		TattooAllowed:  &no,
		DealBreakers:   []models.ConditionKind{models.KindTattoo, models.KindSmoking},
	}
	res, err := s.eval.Evaluate(p, models.CandidateRecord{Smoker: true, Tattoo: true})
	s.Require().NoError(err)
	s.Equal(models.KindTattoo, *res.FailedOn)
}

func (s *EvaluatorSuite) TestFloorMonotonicity() {
	r := matchtest.Rand(2)
	levels := scale.Incomes.Levels()
	for range 300 {
		rec := matchtest.Record(r)
		passedAt := func(i int) bool {
			floor := levels[i]
			res, err := s.eval.Evaluate(models.PreferenceSet{
				MinIncome:    &floor,
				DealBreakers: []models.ConditionKind{models.KindIncome},
			}, rec)
			s.Require().NoError(err)
			return res.Pass
		}
		for i := 1; i < len(levels); i++ {
			if passedAt(i) {
				s.True(passedAt(i-1), "raising the floor must not admit %+v", rec)
			}
		}
	}
}

func (s *EvaluatorSuite) TestAdvisoryDealBreakersChangeNothing() {
	r := matchtest.Rand(3)
	advisory := []models.ConditionKind{
		models.KindRegion, models.KindBodyShape, models.KindHobby, models.KindDrinking, models.KindCharacteristics,
	}
	for range 200 {
		p := matchtest.Preferences(r, 3)
		rec := matchtest.Record(r)
		before, err := s.eval.Evaluate(p, rec)
		s.Require().NoError(err)

		withAdvisory := p
		for _, k := range advisory {
			matchtest.Supply(r, &withAdvisory, k)
		}
		before, err = s.eval.Evaluate(withAdvisory, rec)
		s.Require().NoError(err)
		withAdvisory.DealBreakers = append(append([]models.ConditionKind{}, advisory...), p.DealBreakers...)
		after, err := s.eval.Evaluate(withAdvisory, rec)
		s.Require().NoError(err)
		s.Equal(before, after)
	}
}

func (s *EvaluatorSuite) TestInvariantViolations() {
	s.Run("deal-breaker without value", func() {
		_, err := s.eval.Evaluate(models.PreferenceSet{
			DealBreakers: []models.ConditionKind{models.KindCar},
		}, models.CandidateRecord{CarOwner: true})
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("advisory deal-breaker without value", func() {
		_, err := s.eval.Evaluate(models.PreferenceSet{
			DealBreakers: []models.ConditionKind{models.KindRegion, models.KindHobby},
		}, models.CandidateRecord{Region: models.RegionBusan})
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("unknown kind", func() {
		_, err := s.eval.Evaluate(models.PreferenceSet{
			DealBreakers: []models.ConditionKind{"zodiac"},
		}, models.CandidateRecord{})
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})
}

func (s *EvaluatorSuite) TestAgeUsesInjectedClock() {
	minAge, maxAge := 28, 35
	p := models.PreferenceSet{MinAge: &minAge, MaxAge: &maxAge, DealBreakers: []models.ConditionKind{models.KindAgeRange}}

	res, err := s.eval.Evaluate(p, models.CandidateRecord{BirthYear: 1997})
	s.Require().NoError(err)
	s.True(res.Pass, "28 in 2025")

	res, err = s.eval.Evaluate(p, models.CandidateRecord{BirthYear: 1998})
	s.Require().NoError(err)
	s.False(res.Pass, "27 in 2025")
}

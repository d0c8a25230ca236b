package catalog

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	dErrors "matchmaker/pkg/domain-errors"
)

type CatalogSuite struct {
	suite.Suite
	env Env
}

func TestCatalogSuite(t *testing.T) {
	suite.Run(t, new(CatalogSuite))
}

func (s *CatalogSuite) SetupTest() {
	s.env = Env{Now: matchtest.Now}
}

func (s *CatalogSuite) TestEveryKindIsRegistered() {
	s.Len(Entries(), len(models.AllConditionKinds))
	for _, e := range Entries() {
		s.NotNil(e.Supplied, e.Kind)
		if e.Tag == Advisory {
			s.Nil(e.Rule, e.Kind)
		} else {
			s.Require().NotNil(e.Rule, e.Kind)
			s.NotEmpty(e.Reads, e.Kind)
		}
	}
}

func (s *CatalogSuite) TestAdvisoryKinds() {
	var got []models.ConditionKind
	for _, e := range Entries() {
		if e.Tag == Advisory {
			got = append(got, e.Kind)
		}
	}
	s.ElementsMatch([]models.ConditionKind{
		models.KindRegion, models.KindBodyShape, models.KindEyelidType, models.KindFacialFeature,
		models.KindSchoolTier, models.KindDisfavoredWorkplace, models.KindDisfavoredJob,
		models.KindHobby, models.KindCharacteristics, models.KindDrinking,
	}, got)
}

func (s *CatalogSuite) TestResolve() {
	s.Run("unknown kind", func() {
		_, err := Resolve(models.PreferenceSet{}, models.ConditionKind("zodiac"))
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("checkable kind without value", func() {
		_, err := Resolve(models.PreferenceSet{}, models.KindIncome)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("empty set counts as no value", func() {
		_, err := Resolve(models.PreferenceSet{DisfavoredReligions: []models.Religion{}}, models.KindDisfavoredReligion)
		s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	})

	s.Run("advisory kind without value", func() {
		for _, k := range []models.ConditionKind{models.KindHobby, models.KindRegion, models.KindDrinking} {
			_, err := Resolve(models.PreferenceSet{}, k)
			s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation), "%s", k)
		}
	})

	s.Run("advisory kind with value", func() {
		e, err := Resolve(models.PreferenceSet{Hobbies: "climbing"}, models.KindHobby)
		s.Require().NoError(err)
		s.Equal(Advisory, e.Tag)
	})
}

// Each checkable rule's two forms must agree on every record.
func (s *CatalogSuite) TestCheckAgreesWithClause() {
	r := matchtest.Rand(7)
	for _, e := range Entries() {
		if e.Rule == nil {
			continue
		}
		for range 200 {
			var p models.PreferenceSet
			matchtest.Supply(r, &p, e.Kind)
			rec := matchtest.Record(r)

			want, err := e.Rule.Check(p, rec, s.env)
			s.Require().NoError(err)
			clause, err := e.Rule.Clause(p, s.env)
			s.Require().NoError(err)
			got, err := clause.Matches(rec)
			s.Require().NoError(err)
			s.Require().Equal(want, got, "kind %s prefs %+v record %+v clause %+v", e.Kind, p, rec, clause)
		}
	}
}

func (s *CatalogSuite) TestRuleTable() {
	income := func(v scale.Income) *scale.Income { return &v }
	boolp := func(v bool) *bool { return &v }

	cases := []struct {
		name string
		kind models.ConditionKind
		p    models.PreferenceSet
		rec  models.CandidateRecord
		want bool
	}{
		{"age inside", models.KindAgeRange, models.PreferenceSet{MinAge: ptr(28), MaxAge: ptr(35)}, models.CandidateRecord{BirthYear: 1993}, true},
		{"age too young", models.KindAgeRange, models.PreferenceSet{MinAge: ptr(28)}, models.CandidateRecord{BirthYear: 2000}, false},
		{"age lower edge", models.KindAgeRange, models.PreferenceSet{MaxAge: ptr(35)}, models.CandidateRecord{BirthYear: 1990}, true},
		{"income above floor", models.KindIncome, models.PreferenceSet{MinIncome: income(scale.Income50MTo70M)}, models.CandidateRecord{Income: income(scale.Income70MTo100M)}, true},
		{"income below floor", models.KindIncome, models.PreferenceSet{MinIncome: income(scale.Income50MTo70M)}, models.CandidateRecord{Income: income(scale.Income30MTo50M)}, false},
		{"income undisclosed", models.KindIncome, models.PreferenceSet{MinIncome: income(scale.Income50MTo70M)}, models.CandidateRecord{}, false},
		{"mbti undisclosed passes preferred", models.KindPreferredMBTI, models.PreferenceSet{PreferredMBTI: []models.MBTI{models.MBTIENFP}}, models.CandidateRecord{}, true},
		{"mbti undisclosed passes disfavored", models.KindDisfavoredMBTI, models.PreferenceSet{DisfavoredMBTI: []models.MBTI{models.MBTIENFP}}, models.CandidateRecord{}, true},
		{"smoker tolerated", models.KindSmoking, models.PreferenceSet{SmokingAllowed: boolp(true)}, models.CandidateRecord{Smoker: true}, true},
		{"smoker rejected", models.KindSmoking, models.PreferenceSet{SmokingAllowed: boolp(false)}, models.CandidateRecord{Smoker: true}, false},
		{"car not required", models.KindCar, models.PreferenceSet{CarRequired: boolp(false)}, models.CandidateRecord{}, true},
		{"car required", models.KindCar, models.PreferenceSet{CarRequired: boolp(true)}, models.CandidateRecord{}, false},
		{"exercise floor none", models.KindExercise, models.PreferenceSet{MinExercise: ptr(scale.ExerciseNone)}, models.CandidateRecord{Exercise: scale.ExerciseNone}, true},
		{"exercise floor daily admits monthly", models.KindExercise, models.PreferenceSet{MinExercise: ptr(scale.ExerciseDaily)}, models.CandidateRecord{Exercise: scale.ExerciseMonthly}, true},
		{"exercise floor rejects none", models.KindExercise, models.PreferenceSet{MinExercise: ptr(scale.ExerciseMonthly)}, models.CandidateRecord{Exercise: scale.ExerciseNone}, false},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			e, err := Resolve(tc.p, tc.kind)
			s.Require().NoError(err)
			got, err := e.Rule.Check(tc.p, tc.rec, s.env)
			s.Require().NoError(err)
			s.Equal(tc.want, got)
		})
	}
}

func (s *CatalogSuite) TestCorruptFloorIsInvariantViolation() {
	bogus := scale.Income("LOTS")
	p := models.PreferenceSet{MinIncome: &bogus}
	e, err := Lookup(models.KindIncome)
	s.Require().NoError(err)

	_, err = e.Rule.Check(p, models.CandidateRecord{}, s.env)
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
	_, err = e.Rule.Clause(p, s.env)
	s.True(dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func (s *CatalogSuite) TestAgeClauseUsesInjectedClock() {
	e, err := Lookup(models.KindAgeRange)
	s.Require().NoError(err)
	c, err := e.Rule.Clause(models.PreferenceSet{MinAge: ptr(28), MaxAge: ptr(35)}, s.env)
	s.Require().NoError(err)
	s.Equal(filter.OpRange, c.Op)
	s.Equal(1990, *c.Min)
	s.Equal(1997, *c.Max)
}

func ptr[T any](v T) *T { return &v }

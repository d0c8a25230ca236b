package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/matchtest"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	dErrors "matchmaker/pkg/domain-errors"
)

func TestCompiledFilterAgreesWithEvaluator(t *testing.T) {
	c := New(WithClock(matchtest.Clock))
	e := evaluator.New(evaluator.WithClock(matchtest.Clock))
	r := matchtest.Rand(42)

	for range 500 {
		p := matchtest.Preferences(r, 5)
		f, err := c.Compile(p)
		require.NoError(t, err)

		for range 20 {
			rec := matchtest.Record(r)
			res, err := e.Evaluate(p, rec)
			require.NoError(t, err)
			got, err := f.Matches(rec)
			require.NoError(t, err)
			require.Equal(t, res.Pass, got, "prefs %+v record %+v filter %+v", p, rec, f)
		}
	}
}

func TestCompileEmptyDealBreakers(t *testing.T) {
	f, err := New().Compile(models.PreferenceSet{})
	require.NoError(t, err)
	assert.Empty(t, f.Clauses)
}

func TestCompileIncomeFloor(t *testing.T) {
	floor := scale.Income70MTo100M
	f, err := New().Compile(models.PreferenceSet{
		MinIncome:    &floor,
		Hobbies:      "tennis",
		DealBreakers: []models.ConditionKind{models.KindHobby, models.KindIncome},
	})
	require.NoError(t, err)
	require.Len(t, f.Clauses, 2)

	assert.Equal(t, filter.Clause{Kind: models.KindHobby, Op: filter.OpNone}, f.Clauses[0])
	assert.Equal(t, filter.Clause{
		Kind:      models.KindIncome,
		Op:        filter.OpIn,
		Attribute: models.AttrIncome,
		Values:    []string{"70M_100M", "100M_150M", "150M_200M", "OVER_200M"},
	}, f.Clauses[1])
}

func TestCompileMBTIIncludesUndisclosed(t *testing.T) {
	f, err := New().Compile(models.PreferenceSet{
		DisfavoredMBTI: []models.MBTI{models.MBTIENTJ},
		DealBreakers:   []models.ConditionKind{models.KindDisfavoredMBTI},
	})
	require.NoError(t, err)
	require.Len(t, f.Clauses, 1)
	assert.Equal(t, filter.OpNotIn, f.Clauses[0].Op)
	assert.True(t, f.Clauses[0].NullsMatch)
}

func TestCompileExerciseKeepsOnlySomeVersusNone(t *testing.T) {
	daily := scale.ExerciseDaily
	f, err := New().Compile(models.PreferenceSet{
		MinExercise:  &daily,
		DealBreakers: []models.ConditionKind{models.KindExercise},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"MONTHLY", "WEEKLY_1_2", "WEEKLY_3_4", "DAILY"}, f.Clauses[0].Values)
}

func TestCompileRejectsMissingValue(t *testing.T) {
	_, err := New().Compile(models.PreferenceSet{
		DealBreakers: []models.ConditionKind{models.KindPreferredReligion},
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

func TestCompileRejectsAdvisoryWithoutValue(t *testing.T) {
	_, err := New().Compile(models.PreferenceSet{
		DealBreakers: []models.ConditionKind{models.KindRegion, models.KindHobby},
	})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvariantViolation))
}

package catalog

import (
	"fmt"
	"slices"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/matching/scale"
	dErrors "matchmaker/pkg/domain-errors"
)

type (
	prefs  = models.PreferenceSet
	record = models.CandidateRecord
)

// rangeRule bounds an integer attribute. Either bound may be open.
func rangeRule(kind models.ConditionKind, attr models.Attribute, bounds func(prefs, Env) (lo, hi *int), read func(record) int) *Rule {
	return &Rule{
		Check: func(p prefs, c record, env Env) (bool, error) {
			lo, hi := bounds(p, env)
			v := read(c)
			return (lo == nil || v >= *lo) && (hi == nil || v <= *hi), nil
		},
		Clause: func(p prefs, env Env) (filter.Clause, error) {
			lo, hi := bounds(p, env)
			return filter.Clause{Kind: kind, Op: filter.OpRange, Attribute: attr, Min: lo, Max: hi}, nil
		},
	}
}

// memberRule is set membership (OpIn) or exclusion (OpNotIn). read returns nil
// for an undisclosed attribute, which yields nullsMatch in both forms.
func memberRule[T ~string](kind models.ConditionKind, attr models.Attribute, op filter.Op, nullsMatch bool, set func(prefs) []T, read func(record) *T) *Rule {
	return &Rule{
		Check: func(p prefs, c record, _ Env) (bool, error) {
			v := read(c)
			if v == nil {
				return nullsMatch, nil
			}
			in := slices.Contains(set(p), *v)
			if op == filter.OpIn {
				return in, nil
			}
			return !in, nil
		},
		Clause: func(p prefs, _ Env) (filter.Clause, error) {
			return filter.Clause{
				Kind:       kind,
				Op:         op,
				Attribute:  attr,
				Values:     toStrings(set(p)),
				NullsMatch: nullsMatch,
			}, nil
		},
	}
}

// floorRule requires the candidate's level to rank at or above the preferred
// floor. An undisclosed level never meets a floor; the compiled form is the
// set of levels at or above it.
func floorRule[T ~string](kind models.ConditionKind, attr models.Attribute, s *scale.Scale[T], floor func(prefs) *T, read func(record) *T) *Rule {
	return &Rule{
		Check: func(p prefs, c record, _ Env) (bool, error) {
			v := read(c)
			if v == nil {
				if _, err := s.Rank(*floor(p)); err != nil {
					return false, invalidValue(kind, err)
				}
				return false, nil
			}
			ok, err := s.Meets(*v, *floor(p))
			if err != nil {
				return false, invalidValue(kind, err)
			}
			return ok, nil
		},
		Clause: func(p prefs, _ Env) (filter.Clause, error) {
			levels, err := s.AtOrAbove(*floor(p))
			if err != nil {
				return filter.Clause{}, invalidValue(kind, err)
			}
			return filter.Clause{Kind: kind, Op: filter.OpIn, Attribute: attr, Values: toStrings(levels)}, nil
		},
	}
}

// toleranceRule passes everyone when the member tolerates the trait and
// otherwise requires the candidate not to have it.
func toleranceRule(kind models.ConditionKind, attr models.Attribute, allowed func(prefs) *bool, read func(record) bool) *Rule {
	return &Rule{
		Check: func(p prefs, c record, _ Env) (bool, error) {
			return *allowed(p) || !read(c), nil
		},
		Clause: func(p prefs, _ Env) (filter.Clause, error) {
			if *allowed(p) {
				return filter.Clause{Kind: kind, Op: filter.OpNone}, nil
			}
			no := false
			return filter.Clause{Kind: kind, Op: filter.OpEq, Attribute: attr, Equals: &no}, nil
		},
	}
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}

// invalidValue reports a stored preference value outside its domain. Unlike
// Wrap it does not keep the cause's code: by now the value is corrupt data.
func invalidValue(kind models.ConditionKind, err error) error {
	return &dErrors.Error{
		Code:    dErrors.CodeInvariantViolation,
		Message: fmt.Sprintf("preference value for %s is invalid", kind),
		Err:     err,
	}
}

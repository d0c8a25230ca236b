// Package filter is the storage-agnostic form of a compiled preference set: a
// conjunction of clauses over CandidateRecord attributes. Storage adapters
// translate a Filter verbatim; Matches interprets it in memory.
package filter

import (
	"fmt"
	"slices"

	"matchmaker/internal/matching/models"
	dErrors "matchmaker/pkg/domain-errors"
)

// Op is the shape of a clause.
type Op string

const (
	// OpNone matches everything. Advisory and tolerant conditions compile to it.
	OpNone Op = "none"
	// OpIn requires the attribute to be one of Values.
	OpIn Op = "in"
	// OpNotIn requires the attribute not to be one of Values.
	OpNotIn Op = "not_in"
	// OpRange requires Min <= attribute <= Max; a nil bound is open.
	OpRange Op = "range"
	// OpEq requires a boolean attribute to equal Equals.
	OpEq Op = "eq"
)

// Clause is one condition of a Filter.
//
// NullsMatch decides what an undisclosed attribute yields, so adapters do not
// fall back on their own null semantics.
type Clause struct {
	Kind       models.ConditionKind `json:"kind"`
	Op         Op                   `json:"op"`
	Attribute  models.Attribute     `json:"attribute,omitempty"`
	Values     []string             `json:"values,omitempty"`
	Min        *int                 `json:"min,omitempty"`
	Max        *int                 `json:"max,omitempty"`
	Equals     *bool                `json:"equals,omitempty"`
	NullsMatch bool                 `json:"nulls_match"`
}

// Filter is the conjunction of its clauses. The zero Filter matches every record.
type Filter struct {
	Clauses []Clause `json:"clauses"`
}

// Active returns the clauses that constrain anything.
func (f Filter) Active() []Clause {
	out := make([]Clause, 0, len(f.Clauses))
	for _, c := range f.Clauses {
		if c.Op != OpNone {
			out = append(out, c)
		}
	}
	return out
}

// Matches reports whether rec satisfies every clause.
func (f Filter) Matches(rec models.CandidateRecord) (bool, error) {
	for _, c := range f.Clauses {
		ok, err := c.Matches(rec)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Matches evaluates a single clause against rec.
func (c Clause) Matches(rec models.CandidateRecord) (bool, error) {
	if c.Op == OpNone {
		return true, nil
	}
	v, err := rec.Value(c.Attribute)
	if err != nil {
		return false, err
	}
	if v == nil {
		return c.NullsMatch, nil
	}

	switch c.Op {
	case OpIn, OpNotIn:
		s, ok := v.(string)
		if !ok {
			return false, c.mismatch(v)
		}
		in := slices.Contains(c.Values, s)
		if c.Op == OpIn {
			return in, nil
		}
		return !in, nil
	case OpRange:
		n, ok := v.(int)
		if !ok {
			return false, c.mismatch(v)
		}
		if c.Min != nil && n < *c.Min {
			return false, nil
		}
		if c.Max != nil && n > *c.Max {
			return false, nil
		}
		return true, nil
	case OpEq:
		b, ok := v.(bool)
		if !ok || c.Equals == nil {
			return false, c.mismatch(v)
		}
		return b == *c.Equals, nil
	default:
		return false, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("clause %s: unknown op %q", c.Kind, c.Op))
	}
}

func (c Clause) mismatch(v any) error {
	return dErrors.New(dErrors.CodeInvariantViolation,
		fmt.Sprintf("clause %s: op %s cannot apply to %s value %T", c.Kind, c.Op, c.Attribute, v))
}

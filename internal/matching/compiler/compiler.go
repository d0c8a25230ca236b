// Package compiler turns a member's deal-breakers into a filter.Filter that
// storage can apply in bulk. A record matches the compiled filter exactly
// when the evaluator passes it under the same clock.
package compiler

import (
	"time"

	"matchmaker/internal/matching/catalog"
	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
)

// Compiler is stateless apart from its clock and safe for concurrent use.
type Compiler struct {
	now func() time.Time
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithClock sets the reference clock for age conditions.
func WithClock(now func() time.Time) Option {
	return func(c *Compiler) {
		c.now = now
	}
}

// New builds a Compiler on the system clock.
func New(opts ...Option) *Compiler {
	c := &Compiler{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile emits one clause per deal-breaker, in deal-breaker order. Advisory
// deal-breakers become OpNone clauses so operators can see they were ignored.
//
// Errors: returns CodeInvariantViolation under the same conditions as
// evaluator.Evaluate.
func (c *Compiler) Compile(prefs models.PreferenceSet) (filter.Filter, error) {
	env := catalog.Env{Now: c.now()}
	clauses := make([]filter.Clause, 0, len(prefs.DealBreakers))
	for _, kind := range prefs.DealBreakers {
		entry, err := catalog.Resolve(prefs, kind)
		if err != nil {
			return filter.Filter{}, err
		}
		if entry.Rule == nil {
			clauses = append(clauses, filter.Clause{Kind: kind, Op: filter.OpNone})
			continue
		}
		clause, err := entry.Rule.Clause(prefs, env)
		if err != nil {
			return filter.Filter{}, err
		}
		clauses = append(clauses, clause)
	}
	return filter.Filter{Clauses: clauses}, nil
}

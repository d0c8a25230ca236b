// Package evaluator decides whether one candidate satisfies one member's
// deal-breakers.
package evaluator

import (
	"time"

	"matchmaker/internal/matching/catalog"
	"matchmaker/internal/matching/models"
)

// Result is the outcome of an evaluation. FailedOn names the first
// deal-breaker the candidate violated and is nil when Pass is true.
type Result struct {
	Pass     bool                  `json:"pass"`
	FailedOn *models.ConditionKind `json:"failed_on,omitempty"`
}

// Evaluator is stateless apart from its clock and safe for concurrent use.
type Evaluator struct {
	now func() time.Time
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithClock sets the reference clock for age conditions.
func WithClock(now func() time.Time) Option {
	return func(e *Evaluator) {
		e.now = now
	}
}

// New builds an Evaluator on the system clock.
func New(opts ...Option) *Evaluator {
	e := &Evaluator{now: time.Now}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Evaluate checks the deal-breakers of prefs in order and stops at the first
// one the candidate fails. An empty list passes.
//
// Errors: returns CodeInvariantViolation when a deal-breaker is unknown or has
// no value, or when a stored value is outside its domain. These are never
// reported as a failed match.
func (e *Evaluator) Evaluate(prefs models.PreferenceSet, candidate models.CandidateRecord) (Result, error) {
	env := catalog.Env{Now: e.now()}
	for _, kind := range prefs.DealBreakers {
		entry, err := catalog.Resolve(prefs, kind)
		if err != nil {
			return Result{}, err
		}
		if entry.Rule == nil {
			continue
		}
		ok, err := entry.Rule.Check(prefs, candidate, env)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{Pass: false, FailedOn: &kind}, nil
		}
	}
	return Result{Pass: true}, nil
}

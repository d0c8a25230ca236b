// Package mutual decides whether two members are acceptable to each other.
package mutual

import (
	"matchmaker/internal/matching/evaluator"
	"matchmaker/internal/matching/models"
)

// Verdict holds both directional results.
type Verdict struct {
	// AAcceptsB is a's preferences evaluated against b's record.
	AAcceptsB evaluator.Result `json:"a_accepts_b"`
	// BAcceptsA is b's preferences evaluated against a's record.
	BAcceptsA evaluator.Result `json:"b_accepts_a"`
	Mutual    bool             `json:"mutual"`
}

// Evaluator is the one-directional check the coordinator runs both ways.
type Evaluator interface {
	Evaluate(prefs models.PreferenceSet, candidate models.CandidateRecord) (evaluator.Result, error)
}

// Coordinator runs the evaluator in both directions.
type Coordinator struct {
	eval Evaluator
}

// New builds a Coordinator.
func New(eval Evaluator) *Coordinator {
	if eval == nil {
		panic("mutual: evaluator is required")
	}
	return &Coordinator{eval: eval}
}

// Check evaluates both directions. Both are always evaluated so callers can
// report why a pairing failed on either side.
func (c *Coordinator) Check(a, b models.Member) (Verdict, error) {
	ab, err := c.eval.Evaluate(a.Preferences, b.Record)
	if err != nil {
		return Verdict{}, err
	}
	ba, err := c.eval.Evaluate(b.Preferences, a.Record)
	if err != nil {
		return Verdict{}, err
	}
	return Verdict{AAcceptsB: ab, BAcceptsA: ba, Mutual: ab.Pass && ba.Pass}, nil
}

// IsMutuallyCompatible reports whether each member passes the other's
// deal-breakers. It is symmetric in a and b.
func (c *Coordinator) IsMutuallyCompatible(a, b models.Member) (bool, error) {
	v, err := c.Check(a, b)
	if err != nil {
		return false, err
	}
	return v.Mutual, nil
}

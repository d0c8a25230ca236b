// Package catalog is the single table of condition kinds. Each entry carries
// its tag, the attribute it reads, how to tell whether a preference set
// supplies it, and for checkable kinds both the in-memory check and the
// clause builder. Keeping the two rules side by side is what lets the
// evaluator and the compiler agree.
package catalog

import (
	"fmt"
	"time"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	dErrors "matchmaker/pkg/domain-errors"
)

// Tag says whether a kind constrains matching at all.
type Tag string

const (
	Checkable Tag = "checkable"
	// Advisory kinds are recorded for staff but never filter candidates.
	Advisory Tag = "advisory"
)

// Env carries the inputs a rule may need beyond the two records.
type Env struct {
	// Now is the reference instant for age translation.
	Now time.Time
}

// Rule is the pair of equivalent forms of one checkable kind. Both are only
// called once Supplied has returned true.
type Rule struct {
	Check  func(p models.PreferenceSet, c models.CandidateRecord, env Env) (bool, error)
	Clause func(p models.PreferenceSet, env Env) (filter.Clause, error)
}

// Entry describes one condition kind.
type Entry struct {
	Kind     models.ConditionKind
	Tag      Tag
	Reads    models.Attribute
	Supplied func(p models.PreferenceSet) bool
	Rule     *Rule
}

var entries = map[models.ConditionKind]Entry{}

func register(e Entry) {
	if _, dup := entries[e.Kind]; dup {
		panic(fmt.Sprintf("catalog: %s registered twice", e.Kind))
	}
	if (e.Tag == Checkable) != (e.Rule != nil) {
		panic(fmt.Sprintf("catalog: %s has tag %s but rule presence %t", e.Kind, e.Tag, e.Rule != nil))
	}
	entries[e.Kind] = e
}

// Lookup returns the entry for k.
func Lookup(k models.ConditionKind) (Entry, error) {
	e, ok := entries[k]
	if !ok {
		return Entry{}, dErrors.New(dErrors.CodeInvariantViolation, fmt.Sprintf("condition kind %q is not in the catalog", k))
	}
	return e, nil
}

// Entries returns every entry in catalog order.
func Entries() []Entry {
	out := make([]Entry, 0, len(models.AllConditionKinds))
	for _, k := range models.AllConditionKinds {
		out = append(out, entries[k])
	}
	return out
}

// Resolve looks up a deal-breaker and confirms the preference set supplies
// it. It is the shared precondition of evaluation and compilation, and holds
// for advisory kinds too: they never constrain, but a valueless one is still
// an authoring bug.
func Resolve(p models.PreferenceSet, k models.ConditionKind) (Entry, error) {
	e, err := Lookup(k)
	if err != nil {
		return Entry{}, err
	}
	if !e.Supplied(p) {
		return Entry{}, dErrors.New(dErrors.CodeInvariantViolation,
			fmt.Sprintf("deal-breaker %s has no value in the preference set", k))
	}
	return e, nil
}

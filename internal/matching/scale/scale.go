// Package scale is the registry of ordered categorical domains (education,
// income, assets, books read, exercise). Each domain declares its levels once,
// lowest first, and the declaration order is the rank. Reordering a domain
// changes past matching decisions, so it is a versioned schema change (see
// Version), never a runtime operation.
package scale

import (
	"fmt"
	"slices"

	dErrors "matchmaker/pkg/domain-errors"
)

// Version is bumped whenever any declared order changes.
const Version = 1

// Domain names an ordered categorical scale.
type Domain string

const (
	DomainEducation Domain = "education"
	DomainIncome    Domain = "income"
	DomainAssets    Domain = "assets"
	DomainBooksRead Domain = "books_read"
	DomainExercise  Domain = "exercise"
)

// Scale is a fixed total order over the levels of one domain.
type Scale[T ~string] struct {
	domain Domain
	levels []T
	ranks  map[T]int
}

func newScale[T ~string](domain Domain, levels ...T) *Scale[T] {
	ranks := make(map[T]int, len(levels))
	for i, l := range levels {
		if _, dup := ranks[l]; dup {
			panic(fmt.Sprintf("scale %s: duplicate level %q", domain, l))
		}
		ranks[l] = i
	}
	return &Scale[T]{domain: domain, levels: levels, ranks: ranks}
}

// Domain returns the scale's name.
func (s *Scale[T]) Domain() Domain { return s.domain }

// Levels returns every level, lowest first.
func (s *Scale[T]) Levels() []T { return slices.Clone(s.levels) }

// Contains reports whether v is a declared level.
func (s *Scale[T]) Contains(v T) bool {
	_, ok := s.ranks[v]
	return ok
}

// Rank returns the zero-based position of v in the order.
func (s *Scale[T]) Rank(v T) (int, error) {
	r, ok := s.ranks[v]
	if !ok {
		return 0, unknownLevel(s.domain, string(v))
	}
	return r, nil
}

// AtOrAbove returns every level ranked at or above v, lowest first.
func (s *Scale[T]) AtOrAbove(v T) ([]T, error) {
	r, err := s.Rank(v)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.levels[r:]), nil
}

// Above returns every level ranked strictly above v, lowest first.
func (s *Scale[T]) Above(v T) ([]T, error) {
	r, err := s.Rank(v)
	if err != nil {
		return nil, err
	}
	return slices.Clone(s.levels[r+1:]), nil
}

// Meets reports whether v ranks at or above floor. An unknown floor is an
// error; an unknown v simply does not meet any floor, which is what the
// compiled set-membership form of the same check yields.
func (s *Scale[T]) Meets(v, floor T) (bool, error) {
	fr, err := s.Rank(floor)
	if err != nil {
		return false, err
	}
	vr, ok := s.ranks[v]
	if !ok {
		return false, nil
	}
	return vr >= fr, nil
}

// Parse converts a wire value into a level of this scale.
func (s *Scale[T]) Parse(raw string) (T, error) {
	v := T(raw)
	if !s.Contains(v) {
		return "", unknownLevel(s.domain, raw)
	}
	return v, nil
}

func (s *Scale[T]) rank(raw string) (int, bool) {
	r, ok := s.ranks[T(raw)]
	return r, ok
}

func (s *Scale[T]) names() []string {
	out := make([]string, len(s.levels))
	for i, l := range s.levels {
		out[i] = string(l)
	}
	return out
}

func unknownLevel(domain Domain, value string) error {
	return dErrors.New(dErrors.CodeInvalidInput, fmt.Sprintf("unknown %s level %q", domain, value))
}

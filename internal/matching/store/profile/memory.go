// Package profile stores member profiles and answers compiled candidate
// filters.
package profile

import (
	"context"
	"slices"
	"sync"

	"matchmaker/internal/matching/filter"
	"matchmaker/internal/matching/models"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
)

// InMemory keeps profiles in a map and interprets filters with
// filter.Matches. Used in tests and when no database is configured.
type InMemory struct {
	mu       sync.RWMutex
	profiles map[id.ProfileID]models.Profile
}

func NewInMemory() *InMemory {
	return &InMemory{profiles: make(map[id.ProfileID]models.Profile)}
}

func (s *InMemory) Save(_ context.Context, p *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.ID] = *p
	return nil
}

// FindByID returns sentinel.ErrNotFound when no profile has the ID.
func (s *InMemory) FindByID(_ context.Context, profileID id.ProfileID) (*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[profileID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &p, nil
}

// FindMatching scans every profile. Ordering and paging match the Postgres
// store.
func (s *InMemory) FindMatching(_ context.Context, f filter.Filter, exclude id.ProfileID, after *models.Cursor, limit int) ([]*models.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Profile
	for pid, p := range s.profiles {
		if pid == exclude || !after.Admits(&p) {
			continue
		}
		ok, err := f.Matches(p.Record)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, &p)
		}
	}
	slices.SortFunc(out, models.CompareRecency)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

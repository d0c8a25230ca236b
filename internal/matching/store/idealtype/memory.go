// Package idealtype stores members' ideal types: an in-memory store, a
// PostgreSQL store and a Redis read-through cache in front of either.
package idealtype

import (
	"context"
	"slices"
	"sync"

	"matchmaker/internal/matching/models"
	"matchmaker/internal/sentinel"
	id "matchmaker/pkg/domain"
)

// InMemory stores ideal types in a map. Used in tests and when no database
// is configured.
type InMemory struct {
	mu         sync.RWMutex
	idealTypes map[id.ProfileID]models.IdealType
}

func NewInMemory() *InMemory {
	return &InMemory{idealTypes: make(map[id.ProfileID]models.IdealType)}
}

// Save replaces any previous ideal type of the profile.
func (s *InMemory) Save(_ context.Context, it *models.IdealType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *it
	cp.Preferences.DealBreakers = slices.Clone(it.Preferences.DealBreakers)
	s.idealTypes[it.ProfileID] = cp
	return nil
}

// FindByProfileID returns sentinel.ErrNotFound when none was authored.
func (s *InMemory) FindByProfileID(_ context.Context, profileID id.ProfileID) (*models.IdealType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.idealTypes[profileID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	return &it, nil
}

func (s *InMemory) FindByProfileIDs(_ context.Context, profileIDs []id.ProfileID) (map[id.ProfileID]*models.IdealType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[id.ProfileID]*models.IdealType, len(profileIDs))
	for _, pid := range profileIDs {
		if it, ok := s.idealTypes[pid]; ok {
			out[pid] = &it
		}
	}
	return out, nil
}

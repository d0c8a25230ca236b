package models

import (
	"strings"
	"time"

	id "matchmaker/pkg/domain"
)

// Profile is a member's stored profile.
type Profile struct {
	ID          id.ProfileID    `json:"id"`
	DisplayName string          `json:"display_name"`
	Record      CandidateRecord `json:"record"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Cursor is a position in candidate order: most recently updated first, ties
// broken by ascending ID. A page read after a cursor starts strictly past it.
type Cursor struct {
	UpdatedAt time.Time
	ID        id.ProfileID
}

// CursorAfter returns the cursor positioned on p.
func CursorAfter(p *Profile) *Cursor {
	return &Cursor{UpdatedAt: p.UpdatedAt, ID: p.ID}
}

// Admits reports whether p sorts strictly after the cursor. A nil cursor
// admits everything.
func (c *Cursor) Admits(p *Profile) bool {
	if c == nil {
		return true
	}
	return CompareRecency(&Profile{ID: c.ID, UpdatedAt: c.UpdatedAt}, p) < 0
}

// CompareRecency orders profiles the way candidate searches return them.
func CompareRecency(a, b *Profile) int {
	if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
		return c
	}
	return strings.Compare(a.ID.String(), b.ID.String())
}

// IdealType is the preference set a member authored, keyed by their profile.
type IdealType struct {
	ProfileID   id.ProfileID  `json:"profile_id"`
	Preferences PreferenceSet `json:"preferences"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// Member pairs a profile's record with its ideal type, the two things a
// mutual check needs from each side.
type Member struct {
	ID          id.ProfileID
	Record      CandidateRecord
	Preferences PreferenceSet
}

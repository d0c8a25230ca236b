// Package domain provides type-safe identifiers to prevent mixing up IDs at compile time.
package domain

import (
	"github.com/google/uuid"

	dErrors "matchmaker/pkg/domain-errors"
)

// ProfileID identifies a member profile. Both the owner of an ideal type and
// every candidate are profiles.
type ProfileID uuid.UUID

// NewProfileID allocates a random profile identifier.
func NewProfileID() ProfileID { return ProfileID(uuid.New()) }

// ParseProfileID is used at trust boundaries (handlers, API inputs).
func ParseProfileID(s string) (ProfileID, error) {
	id, err := parseUUID(s, "profile ID")
	return ProfileID(id), err
}

func (id ProfileID) String() string { return uuid.UUID(id).String() }

func (id ProfileID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }

// MarshalText keeps JSON and cache payloads in canonical UUID form.
func (id ProfileID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText rejects malformed and nil identifiers.
func (id *ProfileID) UnmarshalText(b []byte) error {
	parsed, err := ParseProfileID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// parseUUID is the shared validation logic.
func parseUUID(s, label string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be empty")
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "invalid "+label+" format")
	}
	if id == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, label+" cannot be nil")
	}
	return id, nil
}

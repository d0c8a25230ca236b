package validation

import (
	"fmt"

	dErrors "matchmaker/pkg/domain-errors"
)

// HTTP body limits
const (
	// MaxBodySize is the maximum allowed request body size (64 KB).
	MaxBodySize = 64 * 1024
)

// Slice element count limits
const (
	// MaxSetValues caps any enumerated preference list (regions, MBTI types...).
	MaxSetValues = 32
)

// String element length limits
const (
	// MaxDisplayNameLength is the maximum length of a profile display name.
	MaxDisplayNameLength = 100

	// MaxFreeTextLength is the maximum length of a free-text preference such
	// as hobbies or disfavored workplaces.
	MaxFreeTextLength = 500
)

// CheckSliceCount validates that a slice does not exceed the maximum count.
func CheckSliceCount(fieldName string, count, max int) error {
	if count > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("too many %s: max %d allowed", fieldName, max))
	}
	return nil
}

// CheckStringLength validates that a string does not exceed the maximum length.
func CheckStringLength(fieldName, value string, max int) error {
	if len(value) > max {
		return dErrors.New(dErrors.CodeValidation, fmt.Sprintf("%s exceeds max length of %d", fieldName, max))
	}
	return nil
}

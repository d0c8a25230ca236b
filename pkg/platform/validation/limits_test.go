package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "matchmaker/pkg/domain-errors"
)

// LimitsSuite pins the boundary behavior: max passes, max+1 fails.
type LimitsSuite struct {
	suite.Suite
}

func TestLimitsSuite(t *testing.T) {
	suite.Run(t, new(LimitsSuite))
}

func (s *LimitsSuite) TestCheckSliceCount() {
	s.NoError(CheckSliceCount("preferred_regions", MaxSetValues, MaxSetValues))
	s.NoError(CheckSliceCount("preferred_regions", 0, MaxSetValues))

	err := CheckSliceCount("preferred_regions", MaxSetValues+1, MaxSetValues)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(err.Error(), "too many preferred_regions")
}

func (s *LimitsSuite) TestCheckStringLength() {
	s.NoError(CheckStringLength("hobbies", strings.Repeat("a", MaxFreeTextLength), MaxFreeTextLength))

	err := CheckStringLength("hobbies", strings.Repeat("a", MaxFreeTextLength+1), MaxFreeTextLength)
	s.Require().Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	s.Contains(err.Error(), "hobbies exceeds max length")
}

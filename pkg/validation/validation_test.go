package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "matchmaker/pkg/domain-errors"
)

type sample struct {
	DisplayName string `validate:"notblank"`
	BirthYear   int    `validate:"required,gte=1900,lte=2100"`
	HeightCM    int    `validate:"omitempty,min=100,max=250"`
}

func TestValidate(t *testing.T) {
	t.Run("valid struct passes", func(t *testing.T) {
		assert.NoError(t, Validate(sample{DisplayName: "Jiwoo", BirthYear: 1994, HeightCM: 172}))
	})

	t.Run("blank name", func(t *testing.T) {
		err := Validate(sample{DisplayName: "  ", BirthYear: 1994})
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		assert.Equal(t, "display_name must not be blank", err.Error())
	})

	t.Run("birth year below range", func(t *testing.T) {
		err := Validate(sample{DisplayName: "Jiwoo", BirthYear: 1800})
		require.Error(t, err)
		assert.Equal(t, "birth_year must be at least 1900", err.Error())
	})

	t.Run("height above range", func(t *testing.T) {
		err := Validate(sample{DisplayName: "Jiwoo", BirthYear: 1994, HeightCM: 300})
		require.Error(t, err)
		assert.Equal(t, "height_cm must be at most 250", err.Error())
	})
}

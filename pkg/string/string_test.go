package string

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToSnakeCase(t *testing.T) {
	cases := map[string]string{
		"BirthYear":   "birth_year",
		"MBTI":        "mbti",
		"DisplayName": "display_name",
		"HeightCM":    "height_cm",
		"region":      "region",
	}
	for in, want := range cases {
		assert.Equal(t, want, ToSnakeCase(in), in)
	}
}

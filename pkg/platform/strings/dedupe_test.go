package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type region string

func TestDedupe(t *testing.T) {
	assert.Equal(t, []region{"SEOUL", "BUSAN"}, Dedupe([]region{"SEOUL", "BUSAN", "SEOUL"}))
	assert.Nil(t, Dedupe[region](nil))
}

func TestTrimAll(t *testing.T) {
	a, b := "  books ", "hiking"
	TrimAll(&a, &b, nil)
	assert.Equal(t, "books", a)
	assert.Equal(t, "hiking", b)
}

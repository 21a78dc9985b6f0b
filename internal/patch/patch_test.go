package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "old", Value("old", nil))
	assert.Equal(t, "new", Value("old", ptr("new")))
	assert.Equal(t, "", Value("old", ptr("")), "explicit empty string overrides")
	assert.False(t, Value(true, ptr(false)), "explicit false overrides")
	assert.True(t, Value(true, (*bool)(nil)))
	assert.Equal(t, 0, Value(3, ptr(0)))
}

func TestApply(t *testing.T) {
	t.Parallel()

	adopted := true
	Apply(&adopted, nil)
	assert.True(t, adopted)

	Apply(&adopted, ptr(false))
	assert.False(t, adopted)
}

package collect

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMap_KeepsKeyOrder(t *testing.T) {
	t.Parallel()

	m, err := ToMap([]string{"one", "two", "three"}, func(k string) (int, error) {
		return len(k), nil
	})
	require.NoError(t, err)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"one", "two", "three"}, m.Keys())

	v, ok := m.Get("three")
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = m.Get("four")
	assert.False(t, ok)

	var seen []string
	for k, v := range m.All() {
		seen = append(seen, k)
		assert.Equal(t, len(k), v)
	}
	assert.Equal(t, []string{"one", "two", "three"}, seen)
}

func TestToMap_ShortCircuitsOnFirstFailure(t *testing.T) {
	t.Parallel()

	failed := errors.New("b is broken")
	evaluated := []string{}

	m, err := ToMap([]string{"a", "b", "c"}, func(k string) (string, error) {
		evaluated = append(evaluated, k)
		if k == "b" {
			return "", failed
		}
		return strings.ToUpper(k), nil
	})

	assert.Same(t, failed, err)
	assert.Nil(t, m, "no mapping at all on failure")
	assert.Equal(t, []string{"a", "b"}, evaluated, "later keys must not be evaluated")
}

func TestToMap_DuplicateKeyPanics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_, _ = ToMap([]string{"a", "a"}, func(k string) (string, error) {
			return k, nil
		})
	})
}

func TestToMap_Empty(t *testing.T) {
	t.Parallel()

	m, err := ToMap(nil, func(k string) (int, error) { return 0, nil })
	require.NoError(t, err)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.Keys())
}

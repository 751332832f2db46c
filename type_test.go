// FILE: lixenwraith/settings/type_test.go
package settings

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypedAccessors(t *testing.T) {
	s, _ := newTestSettings(t, map[string]any{
		"name":    "svc",
		"port":    int64(8080),
		"ratio":   0.75,
		"enabled": true,
		"count":   "42",
		"hex":     "0x10",
		"yes":     "yes",
		"tags":    []any{"a", "b"},
		"nested":  map[string]any{"k": "v"},
		"nan":     math.NaN(),
		"big":     uint64(math.MaxUint64),
		"word":    "abc",
	})

	t.Run("String", func(t *testing.T) {
		v, err := s.String("name")
		require.NoError(t, err)
		assert.Equal(t, "svc", v)

		v, err = s.String("port")
		require.NoError(t, err)
		assert.Equal(t, "8080", v)

		v, err = s.String("enabled")
		require.NoError(t, err)
		assert.Equal(t, "true", v)

		v, err = s.String("tags")
		require.NoError(t, err)
		assert.Equal(t, "a,b", v)

		_, err = s.String("nested")
		assert.Error(t, err)
	})

	t.Run("Int64", func(t *testing.T) {
		v, err := s.Int64("port")
		require.NoError(t, err)
		assert.Equal(t, int64(8080), v)

		v, err = s.Int64("count")
		require.NoError(t, err)
		assert.Equal(t, int64(42), v)

		v, err = s.Int64("hex")
		require.NoError(t, err)
		assert.Equal(t, int64(16), v)

		v, err = s.Int64("ratio")
		require.NoError(t, err)
		assert.Equal(t, int64(0), v)

		_, err = s.Int64("nan")
		assert.Error(t, err)

		_, err = s.Int64("big")
		assert.Error(t, err)

		_, err = s.Int64("word")
		assert.Error(t, err)
	})

	t.Run("Float64", func(t *testing.T) {
		v, err := s.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.75, v)

		v, err = s.Float64("count")
		require.NoError(t, err)
		assert.Equal(t, 42.0, v)

		_, err = s.Float64("word")
		assert.Error(t, err)
	})

	t.Run("Bool", func(t *testing.T) {
		v, err := s.Bool("enabled")
		require.NoError(t, err)
		assert.True(t, v)

		v, err = s.Bool("yes")
		require.NoError(t, err)
		assert.True(t, v)

		v, err = s.Bool("port")
		require.NoError(t, err)
		assert.True(t, v)

		v, err = s.Bool("word")
		require.NoError(t, err)
		assert.False(t, v)

		_, err = s.Bool("tags")
		assert.Error(t, err)
	})

	t.Run("PathNotFound", func(t *testing.T) {
		_, err := s.String("missing")
		assert.True(t, errors.Is(err, ErrPathNotFound))
		_, err = s.Int64("missing")
		assert.True(t, errors.Is(err, ErrPathNotFound))
		_, err = s.Float64("missing")
		assert.True(t, errors.Is(err, ErrPathNotFound))
		_, err = s.Bool("missing")
		assert.True(t, errors.Is(err, ErrPathNotFound))
	})
}

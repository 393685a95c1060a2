package shortener_test

import (
	"testing"

	"github.com/phylsix/tinyurl/internal/shortener"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator(t *testing.T) {
	t.Run("produces codes of the requested length over the alphabet", func(t *testing.T) {
		gen, err := shortener.NewRandomGenerator(6)
		require.NoError(t, err)

		for i := 0; i < 100; i++ {
			code := gen("https://example.com", 1)

			assert.Len(t, string(code), 6)
			assert.True(t, code.Valid(), "code %q outside alphabet", code)
		}
	})

	t.Run("rejects a non-positive length", func(t *testing.T) {
		_, err := shortener.NewRandomGenerator(0)

		assert.Error(t, err)
	})

	t.Run("collisions are rare", func(t *testing.T) {
		gen, err := shortener.NewRandomGenerator(6)
		require.NoError(t, err)

		seen := make(map[shortener.Code]bool)
		for i := 0; i < 1000; i++ {
			seen[gen("", 1)] = true
		}

		assert.Len(t, seen, 1000)
	})
}

func TestHashGenerator(t *testing.T) {
	t.Run("is deterministic for the same url and attempt", func(t *testing.T) {
		gen := shortener.NewHashGenerator(6)

		a := gen("https://example.com/a", 1)
		b := gen("https://example.com/a", 1)

		assert.Equal(t, a, b)
		assert.Len(t, string(a), 6)
		assert.True(t, a.Valid())
	})

	t.Run("the attempt salt changes the candidate", func(t *testing.T) {
		gen := shortener.NewHashGenerator(6)

		first := gen("https://example.com/a", 1)
		second := gen("https://example.com/a", 2)

		assert.NotEqual(t, first, second)
	})

	t.Run("different urls get different candidates", func(t *testing.T) {
		gen := shortener.NewHashGenerator(6)

		assert.NotEqual(t,
			gen("https://example.com/a", 1),
			gen("https://example.com/b", 1),
		)
	})
}

func TestCodeValid(t *testing.T) {
	assert.True(t, shortener.Code("QxidHT").Valid())
	assert.True(t, shortener.Code("000000").Valid())
	assert.False(t, shortener.Code("").Valid())
	assert.False(t, shortener.Code("abc-12").Valid())
	assert.False(t, shortener.Code("abc_12").Valid())
	assert.False(t, shortener.Code("a b").Valid())
}

package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShortHash_KnownVectors(t *testing.T) {
	// First 6 hex chars of the MD5 digest.
	assert.Equal(t, "d41d8c", ShortHash(""))
	assert.Equal(t, "900150", ShortHash("abc"))
}

func TestShortHash_FormatAndDeterminism(t *testing.T) {
	inputs := []string{"photo.jpg", "café résumé.JPG", "照片.png", ""}
	for _, in := range inputs {
		got := ShortHash(in)
		assert.Len(t, got, 6)
		assert.Regexp(t, `^[0-9a-f]{6}$`, got)
		assert.Equal(t, got, ShortHash(in), "same input must yield same tag")
	}
	assert.NotEqual(t, ShortHash("a.jpg"), ShortHash("b.jpg"))
}

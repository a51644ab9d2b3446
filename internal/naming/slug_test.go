package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain ascii", "holiday", "holiday"},
		{"uppercase lowered", "IMG_1234", "img_1234"},
		{"accents dropped", "café résumé", "cafe_resume"},
		{"cjk falls back", "照片", "img"},
		{"mixed cjk and ascii", "照片 2024", "2024"},
		{"emoji dropped", "🎉party🎉", "party"},
		{"punctuation runs collapse", "a - (copy) -- b", "a_copy_b"},
		{"leading and trailing junk stripped", "  --photo-- ", "photo"},
		{"digits kept", "2024-01-31 14.25.01", "2024_01_31_14_25_01"},
		{"ligature decomposed", "ﬁle", "file"},
		{"sharp s has no ascii decomposition", "straße", "strae"},
		{"empty input", "", "img"},
		{"only symbols", "!!!", "img"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugify_CharsetAndIdempotence(t *testing.T) {
	inputs := []string{
		"holiday", "café résumé", "照片", "🎉party🎉", "", "!!!",
		"Mixed CASE with (parens) [brackets] & symbols!",
		"___already___slugged___",
	}
	for _, in := range inputs {
		got := Slugify(in)
		assert.NotEmpty(t, got)
		assert.Regexp(t, `^[a-z0-9_]+$`, got)
		assert.Equal(t, got, Slugify(got), "Slugify must be idempotent for %q", in)
	}
}

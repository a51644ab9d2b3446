package display

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/backmassage/imgrename/internal/config"
	"github.com/backmassage/imgrename/internal/term"
)

func TestRenameLine_Plain(t *testing.T) {
	term.Configure(config.ColorNever)

	assert.Equal(t, "a.jpg → b.jpg", RenameLine("a.jpg", "b.jpg", false))
	assert.Equal(t, "[DRY] a.jpg → b.jpg", RenameLine("a.jpg", "b.jpg", true))
}

func TestRenameLine_Colored(t *testing.T) {
	term.Configure(config.ColorAlways)
	defer term.Configure(config.ColorNever)

	got := RenameLine("a.jpg", "b.jpg", true)
	assert.Contains(t, got, "\033[")
	assert.Contains(t, got, "[DRY]")
	assert.Contains(t, got, "b.jpg")
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeDirArg(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no trailing slash", "/photos/holiday", "/photos/holiday"},
		{"single trailing slash", "/photos/holiday/", "/photos/holiday"},
		{"multiple trailing slashes", "/photos/holiday///", "/photos/holiday"},
		{"root path", "/", "/"},
		{"relative path", "photos", "photos"},
		{"relative with slash", "photos/", "photos"},
		{"empty string", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeDirArg(tt.in))
		})
	}
}

func TestDefaultConfig_SaneDefaults(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, ModeSlug, cfg.Mode)
	assert.Equal(t, ColorAuto, cfg.ColorMode)
	assert.False(t, cfg.DryRun)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.LogFile)
}

func TestValidate_Mode(t *testing.T) {
	tests := []struct {
		name    string
		mode    NamingMode
		wantErr bool
	}{
		{"slug is valid", ModeSlug, false},
		{"seq is valid", ModeSequential, false},
		{"date is valid", ModeDate, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "random", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Mode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_ColorMode(t *testing.T) {
	tests := []struct {
		name    string
		mode    ColorMode
		wantErr bool
	}{
		{"auto is valid", ColorAuto, false},
		{"always is valid", ColorAlways, false},
		{"never is valid", ColorNever, false},
		{"empty is invalid", "", true},
		{"unknown is invalid", "sometimes", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ColorMode = tt.mode
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidate_RequiresDir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Dir = ""
	require.Error(t, cfg.Validate())
}

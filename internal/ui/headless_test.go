package ui

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHeadlessManager_Force(t *testing.T) {
	hm := NewHeadlessManager()

	hm.ForceHeadless(true)
	assert.True(t, hm.IsHeadless())

	hm.ForceHeadless(false)
	assert.False(t, hm.IsHeadless())
}

func TestHeadlessManager_RegularFileIsHeadless(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "stdin")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	defer func() { _ = f.Close() }()

	hm := &HeadlessManager{file: f}
	assert.True(t, hm.IsHeadless())

	hm.ForceHeadless(false)
	assert.False(t, hm.IsHeadless())
}

func TestNewTheme_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.True(t, NewTheme().NoColor)
}

func TestNewTheme_Palette(t *testing.T) {
	theme := NewTheme()
	assert.Equal(t, ColorPrimary, theme.Colors.Primary)
	assert.Equal(t, ColorSecondary, theme.Colors.Secondary)
}

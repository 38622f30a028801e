package main

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akeil/picnotes"
	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/pkg/ink"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "picnotes.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, pictures, err := loadConfig(settings{})
	require.NoError(t, err)
	assert.Equal(t, picnotes.DefaultConfig(), cfg)
	assert.Empty(t, pictures)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
pictures = ["bear.png", "cat.png"]
slider_width = 30

[canvas]
x = 320
y = 0
width = 800
height = 600

[ink]
color = "#0000ff"
tip = "rectangle"
`)

	cfg, pictures, err := loadConfig(settings{configPath: path})
	require.NoError(t, err)

	assert.Equal(t, []string{"bear.png", "cat.png"}, pictures)
	assert.Equal(t, 30.0, cfg.SliderWidth)
	assert.Equal(t, 800.0, cfg.CanvasFrame.Width)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, cfg.Ink.Color)
	assert.Equal(t, ink.Rectangle, cfg.Ink.PenTip)

	// unchanged values keep their defaults
	def := picnotes.DefaultConfig()
	assert.Equal(t, def.PickerFrame, cfg.PickerFrame)
	assert.Equal(t, def.Ink.Size, cfg.Ink.Size)
	assert.True(t, cfg.Ink.FitToCurve)
	assert.Equal(t, def.PreviewColor, cfg.PreviewColor)
}

func TestLoadConfigInvalid(t *testing.T) {
	docs := []string{
		`image_size = -1`,
		`[ink]
tip = "brush"`,
		`[preview]
color = "sparkly"`,
		`pictures = [`,
	}
	for _, doc := range docs {
		_, _, err := loadConfig(settings{configPath: writeConfig(t, doc)})
		if !errors.IsConfig(err) {
			t.Errorf("expected config error for %q, got %v", doc, err)
		}
	}
}

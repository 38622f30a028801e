package main

import (
	"fmt"
	"image/color"

	"github.com/BurntSushi/toml"

	"github.com/akeil/picnotes"
	"github.com/akeil/picnotes/internal/errors"
	"github.com/akeil/picnotes/internal/logging"
	"github.com/akeil/picnotes/pkg/ink"
	"github.com/akeil/picnotes/pkg/scene"
)

// settings are the global command line options.
type settings struct {
	logLevel   string
	configPath string
	dataDir    string
}

type rectConfig struct {
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type inkConfig struct {
	Color      string  `toml:"color"`
	Size       float64 `toml:"size"`
	Tip        string  `toml:"tip"`
	FitToCurve bool    `toml:"fit_to_curve"`
}

type previewConfig struct {
	Color          string  `toml:"color"`
	Width          float64 `toml:"width"`
	UseActiveColor bool    `toml:"use_active_color"`
}

// fileConfig is the layout of the TOML configuration file.
// Keys that are not present keep their default values.
type fileConfig struct {
	Pictures    []string      `toml:"pictures"`
	Picker      rectConfig    `toml:"picker"`
	Canvas      rectConfig    `toml:"canvas"`
	ImageSize   float64       `toml:"image_size"`
	ItemInset   float64       `toml:"item_inset"`
	ItemPitch   float64       `toml:"item_pitch"`
	SliderWidth float64       `toml:"slider_width"`
	Ink         inkConfig     `toml:"ink"`
	Preview     previewConfig `toml:"preview"`
}

// loadConfig returns the board configuration and the initial pictures.
// Without a config file, the defaults are used.
func loadConfig(s settings) (picnotes.Config, []string, error) {
	cfg := picnotes.DefaultConfig()
	if s.configPath == "" {
		return cfg, nil, nil
	}

	fc := toFile(cfg)
	logging.Debug("Read config from %q", s.configPath)
	md, err := toml.DecodeFile(s.configPath, &fc)
	if err != nil {
		return cfg, nil, errors.NewConfigError("%v", err)
	}
	for _, key := range md.Undecoded() {
		logging.Warning("unknown config key %q in %q", key.String(), s.configPath)
	}

	cfg, err = fromFile(fc)
	if err != nil {
		return cfg, nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return cfg, nil, errors.NewConfigError("%v", err)
	}
	return cfg, fc.Pictures, nil
}

func toFile(c picnotes.Config) fileConfig {
	return fileConfig{
		Picker:      toRect(c.PickerFrame),
		Canvas:      toRect(c.CanvasFrame),
		ImageSize:   c.ImageSize,
		ItemInset:   c.ItemInset,
		ItemPitch:   c.ItemPitch,
		SliderWidth: c.SliderWidth,
		Ink: inkConfig{
			Color:      hexColor(c.Ink.Color),
			Size:       c.Ink.Size,
			Tip:        c.Ink.PenTip.String(),
			FitToCurve: c.Ink.FitToCurve,
		},
		Preview: previewConfig{
			Color:          hexColor(c.PreviewColor),
			Width:          c.PreviewWidth,
			UseActiveColor: c.UseActiveColor,
		},
	}
}

func fromFile(fc fileConfig) (picnotes.Config, error) {
	c := picnotes.Config{
		PickerFrame:    fromRect(fc.Picker),
		CanvasFrame:    fromRect(fc.Canvas),
		ImageSize:      fc.ImageSize,
		ItemInset:      fc.ItemInset,
		ItemPitch:      fc.ItemPitch,
		SliderWidth:    fc.SliderWidth,
		PreviewWidth:   fc.Preview.Width,
		UseActiveColor: fc.Preview.UseActiveColor,
	}

	var err error
	c.Ink.Color, err = picnotes.ParseColor(fc.Ink.Color)
	if err != nil {
		return c, errors.NewConfigError("ink color: %v", err)
	}
	c.Ink.PenTip, err = ink.ParsePenTip(fc.Ink.Tip)
	if err != nil {
		return c, errors.NewConfigError("%v", err)
	}
	c.Ink.Size = fc.Ink.Size
	c.Ink.FitToCurve = fc.Ink.FitToCurve

	c.PreviewColor, err = picnotes.ParseColor(fc.Preview.Color)
	if err != nil {
		return c, errors.NewConfigError("preview color: %v", err)
	}
	return c, nil
}

func toRect(r scene.Rect) rectConfig {
	return rectConfig{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func fromRect(r rectConfig) scene.Rect {
	return scene.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

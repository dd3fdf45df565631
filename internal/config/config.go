// Package config holds the fixed rendering and layout constants for gauge
// video generation, plus optional partial overrides loaded from JSON.
package config

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
)

// Config carries every constant the generation pipeline needs. The zero
// value is not usable; start from Default and override selectively.
type Config struct {
	// Video output
	FPS         float64
	FrameWidth  int
	FrameHeight int

	// Rider
	BodyWeightKg float64

	// Colors. The background is a flat fill; text is drawn filled with an
	// outline stroke of OutlineWidth pixels.
	Background  color.RGBA
	TextFill    color.RGBA
	TextOutline color.RGBA
	OutlineWidth int

	// Assets
	FontPath          string
	LightningIconPath string
	HeartIconPath     string
	FontSizeXL        float64
	FontSizeL         float64

	// Layout
	LayoutStartX     int
	LayoutStartY     int
	LineSpacing      int
	IconSpacing      int
	IconTargetHeight int
	LineHeightXL     int
	LineHeightL      int

	// Animation
	HeartAnimationStrength float64
}

// Default returns the canonical configuration: 1280x720 at 30 fps with the
// stock gauge layout.
func Default() Config {
	return Config{
		FPS:         30,
		FrameWidth:  1280,
		FrameHeight: 720,

		BodyWeightKg: 65.0,

		Background:   color.RGBA{R: 0, G: 0, B: 255, A: 255},
		TextFill:     color.RGBA{R: 255, G: 255, B: 255, A: 255},
		TextOutline:  color.RGBA{R: 0, G: 0, B: 0, A: 255},
		OutlineWidth: 5,

		FontPath:          "assets/CartoonVibes-Regular.otf",
		LightningIconPath: "assets/lightning.png",
		HeartIconPath:     "assets/heart.png",
		FontSizeXL:        120,
		FontSizeL:         90,

		LayoutStartX:     100,
		LayoutStartY:     100,
		LineSpacing:      30,
		IconSpacing:      20,
		IconTargetHeight: 90,
		LineHeightXL:     130,
		LineHeightL:      100,

		HeartAnimationStrength: 0.15,
	}
}

// fileConfig is the JSON override schema. Fields omitted from the file keep
// their defaults, so partial configs are safe.
type fileConfig struct {
	BodyWeightKg           *float64 `json:"body_weight_kg,omitempty"`
	FontPath               *string  `json:"font_path,omitempty"`
	LightningIconPath      *string  `json:"lightning_icon_path,omitempty"`
	HeartIconPath          *string  `json:"heart_icon_path,omitempty"`
	HeartAnimationStrength *float64 `json:"heart_animation_strength,omitempty"`
}

// maxFileSize caps override files at 1MB.
const maxFileSize = 1 * 1024 * 1024

// Load reads a partial JSON override file and applies it on top of the
// default configuration. The file must have a .json extension.
func Load(path string) (Config, error) {
	cfg := Default()

	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return cfg, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return cfg, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if fc.BodyWeightKg != nil {
		cfg.BodyWeightKg = *fc.BodyWeightKg
	}
	if fc.FontPath != nil {
		cfg.FontPath = *fc.FontPath
	}
	if fc.LightningIconPath != nil {
		cfg.LightningIconPath = *fc.LightningIconPath
	}
	if fc.HeartIconPath != nil {
		cfg.HeartIconPath = *fc.HeartIconPath
	}
	if fc.HeartAnimationStrength != nil {
		cfg.HeartAnimationStrength = *fc.HeartAnimationStrength
	}

	return cfg, nil
}

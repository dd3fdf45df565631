// Package gauge renders composited metric frames: a flat background, cached
// outlined-text layers, static icons, and a per-frame animated heart icon.
package gauge

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // heart and lightning icons are PNG
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"

	"github.com/Njaaped/gauge-creator/internal/config"
)

// ErrMissingAsset is returned when a required font or icon file cannot be
// loaded. Asset loading happens before any frame work so a broken install
// never produces a partial video.
var ErrMissingAsset = errors.New("gauge: required asset missing")

// Assets bundles the font faces and icon rasters used by the renderer.
// Loaded once per run and never mutated afterwards.
type Assets struct {
	FontXL    font.Face
	FontL     font.Face
	Lightning *image.RGBA
	Heart     *image.RGBA
}

// LoadAssets reads the font and both icons named by cfg. Icons are
// normalized to the configured target height, preserving aspect ratio.
func LoadAssets(cfg config.Config) (*Assets, error) {
	fontData, err := os.ReadFile(cfg.FontPath)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrMissingAsset, cfg.FontPath, err)
	}
	ft, err := opentype.Parse(fontData)
	if err != nil {
		return nil, fmt.Errorf("%w: font %s: %v", ErrMissingAsset, cfg.FontPath, err)
	}

	faceXL, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: cfg.FontSizeXL, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face %s: %v", ErrMissingAsset, cfg.FontPath, err)
	}
	faceL, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size: cfg.FontSizeL, DPI: 72, Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: font face %s: %v", ErrMissingAsset, cfg.FontPath, err)
	}

	lightning, err := loadIcon(cfg.LightningIconPath, cfg.IconTargetHeight)
	if err != nil {
		return nil, err
	}
	heart, err := loadIcon(cfg.HeartIconPath, cfg.IconTargetHeight)
	if err != nil {
		return nil, err
	}

	return &Assets{
		FontXL:    faceXL,
		FontL:     faceL,
		Lightning: lightning,
		Heart:     heart,
	}, nil
}

// loadIcon decodes an icon image and scales it to the target height.
func loadIcon(path string, targetHeight int) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: icon %s: %v", ErrMissingAsset, path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%w: icon %s: %v", ErrMissingAsset, path, err)
	}

	b := img.Bounds()
	if b.Dy() == 0 {
		return nil, fmt.Errorf("%w: icon %s: zero height", ErrMissingAsset, path)
	}
	aspect := float64(b.Dx()) / float64(b.Dy())
	targetWidth := int(float64(targetHeight) * aspect)
	return resizeRGBA(img, targetWidth, targetHeight), nil
}

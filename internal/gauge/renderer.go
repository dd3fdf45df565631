package gauge

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"

	"github.com/Njaaped/gauge-creator/internal/config"
	"github.com/Njaaped/gauge-creator/internal/resample"
)

// cacheKey quantizes the continuous metric space to a finite set of static
// visual states. Rounding to the nearest integer trades display precision
// for base-frame reuse across consecutive frames.
type cacheKey struct {
	power     int
	heartRate int
}

func keyFor(f resample.Frame) cacheKey {
	return cacheKey{
		power:     int(math.Round(f.Power)),
		heartRate: int(math.Round(f.HeartRate)),
	}
}

// Renderer composites one raster per resampled frame. Both caches are
// scoped to a single generation run; create a fresh Renderer per run and
// let it go out of scope when the run ends.
//
// Renderer is not safe for concurrent use: frames reuse cached base rasters
// by cloning, and the caches have a single producer.
type Renderer struct {
	cfg    config.Config
	assets *Assets

	// base holds fully composited static frames keyed by quantized
	// (power, heartRate). The animated heart icon is never part of a
	// cached base.
	base map[cacheKey]*image.RGBA

	// glyphs caches outlined text rasters by exact string content, so
	// recurring numeric strings are rasterized once across base frames.
	// The unit suffixes ("W", " W/kg", " bpm") keep strings drawn with
	// different faces from colliding.
	glyphs map[string]*image.RGBA
}

// NewRenderer creates a renderer for one generation run.
func NewRenderer(cfg config.Config, assets *Assets) *Renderer {
	return &Renderer{
		cfg:    cfg,
		assets: assets,
		base:   make(map[cacheKey]*image.RGBA),
		glyphs: make(map[string]*image.RGBA),
	}
}

// Render produces the fully composited raster for one frame. The static
// base comes from the cache when the quantized metric state was seen
// before; the beating heart overlay is recomputed every frame because its
// scale varies continuously with elapsed video time.
func (r *Renderer) Render(f resample.Frame) *image.RGBA {
	key := keyFor(f)
	hrText := fmt.Sprintf("%d bpm", key.heartRate)

	var frame *image.RGBA
	if cached, ok := r.base[key]; ok {
		frame = cloneRGBA(cached)
	} else {
		frame = r.renderBase(key, f.WattsPerKg)
		r.base[key] = cloneRGBA(frame)
	}

	// The hr glyph was rasterized by renderBase for this key; its width
	// positions the heart beside the text.
	hrImg := r.glyph(hrText, r.assets.FontL)

	r.overlayBeatingHeart(frame, key.heartRate, f.Index, hrImg.Bounds().Dx())
	return frame
}

// renderBase draws the background fill and all static text/icon layers for
// one quantized metric state.
func (r *Renderer) renderBase(key cacheKey, wattsPerKg float64) *image.RGBA {
	cfg := r.cfg
	frame := image.NewRGBA(image.Rect(0, 0, cfg.FrameWidth, cfg.FrameHeight))
	draw.Draw(frame, frame.Bounds(), image.NewUniform(cfg.Background), image.Point{}, draw.Src)

	y := cfg.LayoutStartY

	// Power row: large text plus the lightning icon beside it.
	powerImg := r.glyph(fmt.Sprintf("%dW", key.power), r.assets.FontXL)
	textY := y + (cfg.LineHeightXL-powerImg.Bounds().Dy())/2
	overlayRGBA(frame, powerImg, cfg.LayoutStartX, textY)
	iconX := cfg.LayoutStartX + powerImg.Bounds().Dx() + cfg.IconSpacing
	iconY := y + (cfg.LineHeightXL-r.assets.Lightning.Bounds().Dy())/2
	overlayRGBA(frame, r.assets.Lightning, iconX, iconY)
	y += cfg.LineHeightXL + cfg.LineSpacing

	// Watts-per-kilogram row.
	wkgImg := r.glyph(fmt.Sprintf("%.1f W/kg", wattsPerKg), r.assets.FontL)
	textY = y + (cfg.LineHeightL-wkgImg.Bounds().Dy())/2
	overlayRGBA(frame, wkgImg, cfg.LayoutStartX, textY)
	y += cfg.LineHeightL + cfg.LineSpacing

	// Heart-rate row: static text only; the heart icon is animated and
	// composited per frame, never cached.
	hrImg := r.glyph(fmt.Sprintf("%d bpm", key.heartRate), r.assets.FontL)
	textY = y + (cfg.LineHeightL-hrImg.Bounds().Dy())/2
	overlayRGBA(frame, hrImg, cfg.LayoutStartX, textY)

	return frame
}

// overlayBeatingHeart scales the heart icon by the cardiac pulse factor and
// composites it beside the heart-rate text. The beat frequency is
// heartRate/60 Hz of output video time, so the visual pulse tracks
// wall-clock-equivalent elapsed time regardless of frame rate.
func (r *Renderer) overlayBeatingHeart(frame *image.RGBA, heartRate, frameIndex, hrTextWidth int) {
	cfg := r.cfg

	beatHz := float64(heartRate) / 60.0
	elapsed := float64(frameIndex) / cfg.FPS
	scale := 1 + cfg.HeartAnimationStrength*(0.5+0.5*math.Sin(2*math.Pi*beatHz*elapsed))

	hb := r.assets.Heart.Bounds()
	beating := resizeRGBA(r.assets.Heart,
		int(float64(hb.Dx())*scale), int(float64(hb.Dy())*scale))

	heartRowY := cfg.LayoutStartY + cfg.LineHeightXL + cfg.LineSpacing +
		cfg.LineHeightL + cfg.LineSpacing
	iconX := cfg.LayoutStartX + hrTextWidth + cfg.IconSpacing
	iconY := heartRowY + (cfg.LineHeightL-beating.Bounds().Dy())/2
	overlayRGBA(frame, beating, iconX, iconY)
}

// HeartScale reports the pulse scale factor for a heart rate at a frame
// index. Exposed for animation periodicity tests.
func (r *Renderer) HeartScale(heartRate, frameIndex int) float64 {
	beatHz := float64(heartRate) / 60.0
	elapsed := float64(frameIndex) / r.cfg.FPS
	return 1 + r.cfg.HeartAnimationStrength*(0.5+0.5*math.Sin(2*math.Pi*beatHz*elapsed))
}

// glyph returns the cached outlined-text raster for s, rasterizing it on
// first use.
func (r *Renderer) glyph(s string, face font.Face) *image.RGBA {
	if img, ok := r.glyphs[s]; ok {
		return img
	}
	img := renderOutlinedText(s, face, r.cfg.TextFill, r.cfg.TextOutline, r.cfg.OutlineWidth)
	r.glyphs[s] = img
	return img
}

// CachedBaseFrames reports how many quantized metric states have a cached
// base raster.
func (r *Renderer) CachedBaseFrames() int { return len(r.base) }

// CachedGlyphs reports how many distinct strings have been rasterized.
func (r *Renderer) CachedGlyphs() int { return len(r.glyphs) }

package gauge

import (
	"image"
	"image/color"
	"sync"

	"waterbalance/internal/core/bottle"
	"waterbalance/internal/core/wave"
	"waterbalance/internal/ui/animation"

	"golang.org/x/image/vector"
)

// Bubble is a decorative ellipse inside the liquid, in bottle-relative units
// (0..1 on both axes).
type Bubble struct {
	X, Y    float64
	RadiusX float64
	RadiusY float64
	Opacity float64
}

// DefaultBubbles scatters a few highlights through the bottle body.
func DefaultBubbles() []Bubble {
	return []Bubble{
		{X: 0.42, Y: 0.50, RadiusX: 0.032, RadiusY: 0.016, Opacity: 0.2},
		{X: 0.66, Y: 0.57, RadiusX: 0.032, RadiusY: 0.016, Opacity: 0.2},
		{X: 0.40, Y: 0.72, RadiusX: 0.048, RadiusY: 0.024, Opacity: 0.2},
		{X: 0.35, Y: 0.79, RadiusX: 0.020, RadiusY: 0.024, Opacity: 0.2},
		{X: 0.35, Y: 0.43, RadiusX: 0.032, RadiusY: 0.024, Opacity: 0.1},
		{X: 0.60, Y: 0.30, RadiusX: 0.020, RadiusY: 0.024, Opacity: 0.4},
	}
}

// Liquid paints the wave clipped to the bottle into an image.
type Liquid struct {
	mu         sync.Mutex
	color      color.NRGBA
	bubbles    []Bubble
	rasterizer *vector.Rasterizer
	bottleMask *image.Alpha
}

// NewLiquid creates a liquid painter.
func NewLiquid(fill color.NRGBA, bubbles []Bubble) *Liquid {
	return &Liquid{
		color:      fill,
		bubbles:    bubbles,
		rasterizer: vector.NewRasterizer(0, 0),
	}
}

// Render draws one frame at the given pixel size.
func (liquid *Liquid) Render(frame animation.Frame, width, height int) image.Image {
	dst := image.NewNRGBA(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width <= 0 || height <= 0 {
		return dst
	}

	liquid.mu.Lock()
	defer liquid.mu.Unlock()

	outline := wave.Generate(frame.Phase, frame.Percent, float64(width), float64(height))
	waterMask := liquid.rasterize(outline, width, height)
	bottleMask := liquid.bottleMaskLocked(width, height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := y*width + x
			coverage := uint32(waterMask.Pix[offset]) * uint32(bottleMask.Pix[offset]) / 255
			if coverage == 0 {
				continue
			}
			pixel := liquid.shade(float64(x)+0.5, float64(y)+0.5, float64(width), float64(height))
			pixel.A = uint8(coverage * uint32(pixel.A) / 255)
			dst.SetNRGBA(x, y, pixel)
		}
	}
	return dst
}

func (liquid *Liquid) shade(x, y, width, height float64) color.NRGBA {
	pixel := liquid.color
	for _, bubble := range liquid.bubbles {
		dx := (x/width - bubble.X) / bubble.RadiusX
		dy := (y/height - bubble.Y) / bubble.RadiusY
		if dx*dx+dy*dy > 1 {
			continue
		}
		pixel = blend(pixel, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, bubble.Opacity)
	}
	return pixel
}

func (liquid *Liquid) rasterize(points []wave.Point, width, height int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if len(points) < 3 {
		return mask
	}
	liquid.rasterizer.Reset(width, height)
	liquid.rasterizer.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, point := range points[1:] {
		liquid.rasterizer.LineTo(float32(point.X), float32(point.Y))
	}
	liquid.rasterizer.ClosePath()
	liquid.rasterizer.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func (liquid *Liquid) bottleMaskLocked(width, height int) *image.Alpha {
	if liquid.bottleMask != nil {
		size := liquid.bottleMask.Bounds().Size()
		if size.X == width && size.Y == height {
			return liquid.bottleMask
		}
	}
	silhouette := bottle.Fit(float64(width), float64(height))
	liquid.bottleMask = liquid.rasterize(silhouette.Points, width, height)
	return liquid.bottleMask
}

func blend(base, over color.NRGBA, amount float64) color.NRGBA {
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a)*(1-amount) + float64(b)*amount + 0.5)
	}
	return color.NRGBA{
		R: mix(base.R, over.R),
		G: mix(base.G, over.G),
		B: mix(base.B, over.B),
		A: base.A,
	}
}

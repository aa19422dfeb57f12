// Package wave generates the liquid outline drawn inside the gauge.
package wave

import (
	"math"
	"time"
)

const (
	lowestFill  = 0.02
	highestFill = 1.00

	amplitudeFraction = 0.015

	// SampleStep is the angular distance between two wave samples, in degrees.
	SampleStep = 5.0
	// Sweep overshoots a full turn so the last sample reaches the right edge.
	Sweep = 360.0 + 10.0
)

// Point is a 2-D coordinate in viewport space (y grows downwards).
type Point struct {
	X float64
	Y float64
}

// Outline is a closed polygon: the wavy surface from left to right followed by
// the bottom-right and bottom-left corners.
type Outline []Point

// FillFraction maps a percent in [0,100] to the internal fill range [0.02,1].
func FillFraction(percent float64) float64 {
	return lowestFill + (highestFill-lowestFill)*(percent/100)
}

// Amplitude returns the wave height for a viewport height.
func Amplitude(height float64) float64 {
	return amplitudeFraction * height
}

// Baseline returns the vertical centre of the wave for a fill percent.
func Baseline(percent, height float64) float64 {
	amplitude := Amplitude(height)
	return (1-FillFraction(percent))*(height-4*amplitude) + 2*amplitude
}

// PhaseAt converts time elapsed since the wave started into a phase angle.
// The result keeps growing; it is never wrapped to [0,360).
func PhaseAt(elapsed, period time.Duration) float64 {
	if period <= 0 {
		return 0
	}
	return 360 * elapsed.Seconds() / period.Seconds()
}

// Generate builds the outline for the given phase, fill percent and viewport.
// It is a pure function: identical inputs give identical outlines.
func Generate(phaseDegrees, percent, width, height float64) Outline {
	amplitude := Amplitude(height)
	baseline := Baseline(percent, height)

	steps := int(Sweep/SampleStep) + 1
	outline := make(Outline, 0, steps+3)
	outline = append(outline, Point{X: 0, Y: baseline + amplitude*math.Sin(radians(phaseDegrees))})

	for i := 0; i < steps; i++ {
		angle := phaseDegrees + float64(i)*SampleStep
		outline = append(outline, Point{
			X: (angle - phaseDegrees) / 360 * width,
			Y: baseline + amplitude*math.Sin(radians(angle)),
		})
	}

	outline = append(outline,
		Point{X: width, Y: height},
		Point{X: 0, Y: height},
	)
	return outline
}

// Surface returns the wave edge of the outline, without the closing corners.
func (outline Outline) Surface() []Point {
	if len(outline) < 2 {
		return nil
	}
	return outline[:len(outline)-2]
}

// SurfaceY interpolates the height of the wave edge at x. Values of x outside
// the sampled range are clamped to the first or last sample.
func (outline Outline) SurfaceY(x float64) float64 {
	surface := outline.Surface()
	if len(surface) == 0 {
		return 0
	}
	if x <= surface[0].X {
		return surface[0].Y
	}
	for i := 1; i < len(surface); i++ {
		left := surface[i-1]
		right := surface[i]
		if x > right.X {
			continue
		}
		if right.X == left.X {
			return right.Y
		}
		t := (x - left.X) / (right.X - left.X)
		return left.Y + t*(right.Y-left.Y)
	}
	return surface[len(surface)-1].Y
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

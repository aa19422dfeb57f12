// Package bottle describes the water bottle silhouette the liquid is clipped to.
package bottle

import "waterbalance/internal/core/wave"

// AspectRatio is width over height of the bottle when drawn undistorted.
const AspectRatio = 0.5

// unitOutline is the bottle traced clockwise inside a 1x1 box: cap, neck,
// shoulders and a body with rounded bottom corners.
var unitOutline = []wave.Point{
	{X: 0.38, Y: 0.00},
	{X: 0.62, Y: 0.00},
	{X: 0.62, Y: 0.07},
	{X: 0.66, Y: 0.07},
	{X: 0.66, Y: 0.14},
	{X: 0.78, Y: 0.20},
	{X: 0.86, Y: 0.27},
	{X: 0.89, Y: 0.34},
	{X: 0.89, Y: 0.45},
	{X: 0.85, Y: 0.50},
	{X: 0.89, Y: 0.55},
	{X: 0.89, Y: 0.93},
	{X: 0.875, Y: 0.97},
	{X: 0.84, Y: 0.99},
	{X: 0.80, Y: 1.00},
	{X: 0.20, Y: 1.00},
	{X: 0.16, Y: 0.99},
	{X: 0.125, Y: 0.97},
	{X: 0.11, Y: 0.93},
	{X: 0.11, Y: 0.55},
	{X: 0.15, Y: 0.50},
	{X: 0.11, Y: 0.45},
	{X: 0.11, Y: 0.34},
	{X: 0.14, Y: 0.27},
	{X: 0.22, Y: 0.20},
	{X: 0.34, Y: 0.14},
	{X: 0.34, Y: 0.07},
	{X: 0.38, Y: 0.07},
}

// Silhouette is the bottle polygon scaled to a viewport.
type Silhouette struct {
	Width  float64
	Height float64
	Points []wave.Point
}

// Fit scales the bottle to a width x height viewport.
func Fit(width, height float64) Silhouette {
	points := make([]wave.Point, len(unitOutline))
	for i, point := range unitOutline {
		points[i] = wave.Point{X: point.X * width, Y: point.Y * height}
	}
	return Silhouette{Width: width, Height: height, Points: points}
}

// Contains reports whether (x, y) lies inside the bottle (even-odd rule).
func (silhouette Silhouette) Contains(x, y float64) bool {
	inside := false
	points := silhouette.Points
	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > y) == (b.Y > y) {
			continue
		}
		crossX := a.X + (y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x < crossX {
			inside = !inside
		}
	}
	return inside
}

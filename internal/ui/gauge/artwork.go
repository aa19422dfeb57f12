package gauge

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"waterbalance/internal/core/bottle"

	"fyne.io/fyne/v2"
	svg "github.com/ajstarks/svgo"
)

const artworkScale = 1000

// BottleSVG draws the bottle silhouette as an SVG document.
func BottleSVG(fill color.NRGBA) []byte {
	width := int(math.Round(artworkScale * bottle.AspectRatio))
	height := artworkScale
	silhouette := bottle.Fit(float64(width), float64(height))

	xs := make([]int, len(silhouette.Points))
	ys := make([]int, len(silhouette.Points))
	for i, point := range silhouette.Points {
		xs[i] = int(math.Round(point.X))
		ys[i] = int(math.Round(point.Y))
	}

	var buffer bytes.Buffer
	canvas := svg.New(&buffer)
	canvas.Startview(width, height, 0, 0, width, height)
	canvas.Title("Water bottle")
	canvas.Polygon(xs, ys, fmt.Sprintf("fill:%s;fill-opacity:%.2f", hexColor(fill), float64(fill.A)/255))
	canvas.End()
	return buffer.Bytes()
}

// BottleResource wraps the bottle artwork as a Fyne resource.
func BottleResource(fill color.NRGBA) fyne.Resource {
	return fyne.NewStaticResource("bottle.svg", BottleSVG(fill))
}

func hexColor(value color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", value.R, value.G, value.B)
}

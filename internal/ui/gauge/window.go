package gauge

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"waterbalance/internal/core/bottle"
	"waterbalance/internal/ui/animation"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

var (
	backgroundColor = color.NRGBA{R: 232, G: 235, B: 239, A: 255}
	liquidColor     = color.NRGBA{R: 79, G: 146, B: 246, A: 255}
	bottleColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	labelColor      = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
)

const (
	defaultWidth    = float32(360)
	defaultHeight   = float32(640)
	maxBottleHeight = float32(450)
	labelTextSize   = 40
	// The white bottle is drawn slightly wider than the liquid so it reads as
	// a rim around it.
	rimScale = float32(1.1)
)

// Callbacks defines gauge action handlers.
type Callbacks struct {
	OnAdd    func()
	OnRemove func()
}

// Window manages the gauge UI.
type Window struct {
	window       fyne.Window
	label        *canvas.Text
	bottle       *canvas.Image
	liquid       *canvas.Raster
	addButton    *widget.Button
	removeButton *widget.Button
	painter      *Liquid
	callbacks    Callbacks

	mu    sync.Mutex
	frame animation.Frame
}

// New creates the gauge window.
func New(app fyne.App, title string, callbacks Callbacks) *Window {
	window := app.NewWindow(title)
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	gauge := &Window{
		window:    window,
		painter:   NewLiquid(liquidColor, DefaultBubbles()),
		callbacks: callbacks,
	}

	background := canvas.NewRectangle(backgroundColor)

	gauge.label = canvas.NewText(formatVolume(0), labelColor)
	gauge.label.Alignment = fyne.TextAlignCenter
	gauge.label.TextStyle = fyne.TextStyle{Bold: true}
	gauge.label.TextSize = labelTextSize

	gauge.bottle = canvas.NewImageFromResource(BottleResource(bottleColor))
	gauge.bottle.FillMode = canvas.ImageFillStretch

	gauge.liquid = canvas.NewRaster(func(width, height int) image.Image {
		return gauge.painter.Render(gauge.currentFrame(), width, height)
	})

	gauge.addButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), gauge.handleAdd)
	gauge.removeButton = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), gauge.handleRemove)
	buttons := container.NewHBox(gauge.addButton, gauge.removeButton)

	content := container.New(&gaugeLayout{}, gauge.label, gauge.bottle, gauge.liquid, buttons)
	window.SetContent(container.NewStack(background, content))
	window.Canvas().SetOnTypedRune(gauge.handleRune)
	window.Resize(fyne.NewSize(defaultWidth, defaultHeight))

	return gauge
}

// Show displays the gauge window.
func (gauge *Window) Show() {
	gauge.window.Show()
	gauge.window.RequestFocus()
}

// Hide hides the gauge window.
func (gauge *Window) Hide() {
	gauge.window.Hide()
}

// SetCloseIntercept replaces the default close behaviour.
func (gauge *Window) SetCloseIntercept(handler func()) {
	gauge.window.SetCloseIntercept(handler)
}

// Render queues a frame for drawing. Safe to call from any goroutine.
func (gauge *Window) Render(frame animation.Frame) {
	gauge.mu.Lock()
	gauge.frame = frame
	gauge.mu.Unlock()

	fyne.Do(func() {
		gauge.apply(frame)
	})
}

func (gauge *Window) apply(frame animation.Frame) {
	if text := formatVolume(frame.Volume); gauge.label.Text != text {
		gauge.label.Text = text
		gauge.label.Refresh()
	}
	gauge.liquid.Refresh()
}

func (gauge *Window) currentFrame() animation.Frame {
	gauge.mu.Lock()
	defer gauge.mu.Unlock()
	return gauge.frame
}

func (gauge *Window) handleAdd() {
	if gauge.callbacks.OnAdd != nil {
		gauge.callbacks.OnAdd()
	}
}

func (gauge *Window) handleRemove() {
	if gauge.callbacks.OnRemove != nil {
		gauge.callbacks.OnRemove()
	}
}

func (gauge *Window) handleRune(r rune) {
	switch r {
	case '+', '=':
		gauge.handleAdd()
	case '-', '_':
		gauge.handleRemove()
	}
}

func formatVolume(volume int) string {
	return fmt.Sprintf("%d ml", volume)
}

// gaugeLayout stacks the volume label above a bottle that keeps its aspect
// ratio, with the liquid on top of the bottle and the buttons along its base.
type gaugeLayout struct{}

func (layout *gaugeLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 4 {
		return
	}
	label := objects[0]
	bottleImage := objects[1]
	liquid := objects[2]
	buttons := objects[3]

	pad := theme.Padding() * 4
	labelSize := label.MinSize()
	label.Move(fyne.NewPos(0, pad))
	label.Resize(fyne.NewSize(size.Width, labelSize.Height))

	top := pad*2 + labelSize.Height
	bottleHeight, bottleWidth := bottleBox(size.Width-pad*2, size.Height-top-pad)
	x := (size.Width - bottleWidth) / 2

	liquid.Move(fyne.NewPos(x, top))
	liquid.Resize(fyne.NewSize(bottleWidth, bottleHeight))

	rimWidth := bottleWidth * rimScale
	bottleImage.Move(fyne.NewPos((size.Width-rimWidth)/2, top-1))
	bottleImage.Resize(fyne.NewSize(rimWidth, bottleHeight))

	buttonsSize := buttons.MinSize()
	buttonsY := top + bottleHeight - buttonsSize.Height - pad
	if buttonsY < top {
		buttonsY = top
	}
	buttons.Move(fyne.NewPos((size.Width-buttonsSize.Width)/2, buttonsY))
	buttons.Resize(buttonsSize)
}

func (layout *gaugeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 4 {
		return fyne.NewSize(0, 0)
	}
	labelSize := objects[0].MinSize()
	buttonsSize := objects[3].MinSize()
	width := labelSize.Width
	if buttonsSize.Width > width {
		width = buttonsSize.Width
	}
	pad := theme.Padding() * 4
	return fyne.NewSize(width+pad*2, labelSize.Height+buttonsSize.Height*3+pad*3)
}

// bottleBox fits the bottle into the available space without distortion.
func bottleBox(availableWidth, availableHeight float32) (height, width float32) {
	height = availableHeight
	if height > maxBottleHeight {
		height = maxBottleHeight
	}
	if height < 0 {
		height = 0
	}
	width = height * float32(bottle.AspectRatio)
	if width > availableWidth && availableWidth > 0 {
		width = availableWidth
		height = width / float32(bottle.AspectRatio)
	}
	return height, width
}

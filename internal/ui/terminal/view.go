// Package terminal renders the gauge into a character terminal with tcell.
package terminal

import (
	"context"
	"fmt"
	"sync"

	"waterbalance/internal/ui/animation"

	"github.com/gdamore/tcell/v2"
)

var (
	liquidStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(79, 146, 246))
	glassStyle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(232, 235, 239))
	labelStyle  = tcell.StyleDefault.Bold(true)
	hintStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

const (
	liquidRune = '█'
	glassRune  = '░'
	hintText   = "+ add 200 ml   - remove 150 ml   q quit"
)

type quitSignal struct{}

// Callbacks defines key action handlers.
type Callbacks struct {
	OnAdd    func()
	OnRemove func()
}

// View draws frames on a tcell screen and turns keys into gauge actions.
type View struct {
	screen    tcell.Screen
	callbacks Callbacks

	mu    sync.Mutex
	frame animation.Frame
}

// New creates a view on an initialised screen.
func New(screen tcell.Screen, callbacks Callbacks) *View {
	return &View{screen: screen, callbacks: callbacks}
}

// Render stores a frame and wakes the event loop to draw it. Safe to call
// from any goroutine.
func (view *View) Render(frame animation.Frame) {
	view.mu.Lock()
	view.frame = frame
	view.mu.Unlock()
	_ = view.screen.PostEvent(tcell.NewEventInterrupt(nil))
}

// Run processes screen events until the user quits or ctx is done.
func (view *View) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		_ = view.screen.PostEvent(tcell.NewEventInterrupt(quitSignal{}))
	}()

	view.draw()
	for {
		event := view.screen.PollEvent()
		if event == nil {
			return
		}
		if !view.handle(event) {
			return
		}
	}
}

func (view *View) handle(event tcell.Event) bool {
	switch event := event.(type) {
	case *tcell.EventInterrupt:
		if _, ok := event.Data().(quitSignal); ok {
			return false
		}
		view.draw()
	case *tcell.EventResize:
		view.screen.Sync()
		view.draw()
	case *tcell.EventKey:
		switch {
		case event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyCtrlC:
			return false
		case event.Key() == tcell.KeyRune:
			switch event.Rune() {
			case 'q', 'Q':
				return false
			case '+', '=':
				if view.callbacks.OnAdd != nil {
					view.callbacks.OnAdd()
				}
			case '-', '_':
				if view.callbacks.OnRemove != nil {
					view.callbacks.OnRemove()
				}
			}
		}
	}
	return true
}

func (view *View) draw() {
	view.mu.Lock()
	frame := view.frame
	view.mu.Unlock()

	view.screen.Clear()
	width, height := view.screen.Size()
	if width <= 0 || height < 4 {
		view.screen.Show()
		return
	}

	view.drawText((width-len(volumeLabel(frame.Volume)))/2, 0, volumeLabel(frame.Volume), labelStyle)

	rows := height - 3
	columns := BottleColumns(rows, width)
	grid := Rasterize(frame, columns, rows)
	left := (width - columns) / 2
	for row, cells := range grid.Cells {
		for column, cell := range cells {
			switch cell {
			case CellLiquid:
				view.screen.SetContent(left+column, row+2, liquidRune, nil, liquidStyle)
			case CellGlass:
				view.screen.SetContent(left+column, row+2, glassRune, nil, glassStyle)
			}
		}
	}

	hintX := (width - len(hintText)) / 2
	if hintX < 0 {
		hintX = 0
	}
	view.drawText(hintX, height-1, hintText, hintStyle)
	view.screen.Show()
}

func (view *View) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range text {
		view.screen.SetContent(x+i, y, r, nil, style)
	}
}

func volumeLabel(volume int) string {
	return fmt.Sprintf("%d ml", volume)
}

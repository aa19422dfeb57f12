package animation

import (
	"context"
	"sync"
	"time"

	"waterbalance/internal/core/wave"

	"github.com/charmbracelet/harmonica"
)

// Config contains frame loop timing and smoothing values.
type Config struct {
	FrameRate  int
	WavePeriod time.Duration

	Smoothing       bool
	SpringFrequency float64
	SpringDamping   float64
}

// FrameInterval returns the delay between two frames.
func (config Config) FrameInterval() time.Duration {
	if config.FrameRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(config.FrameRate)
}

// Smoother eases the drawn level toward the controller's level so that
// discrete one-point steps read as continuous motion.
type Smoother struct {
	spring   harmonica.Spring
	enabled  bool
	primed   bool
	position float64
	velocity float64
}

// NewSmoother creates a spring smoother tuned for the frame rate.
func NewSmoother(config Config) *Smoother {
	frameRate := config.FrameRate
	if frameRate <= 0 {
		frameRate = 60
	}
	return &Smoother{
		spring:  harmonica.NewSpring(harmonica.FPS(frameRate), config.SpringFrequency, config.SpringDamping),
		enabled: config.Smoothing,
	}
}

// Step advances one frame toward target and returns the value to draw.
func (smoother *Smoother) Step(target float64) float64 {
	if !smoother.enabled || !smoother.primed {
		smoother.primed = true
		smoother.position = target
		smoother.velocity = 0
		return target
	}
	smoother.position, smoother.velocity = smoother.spring.Update(smoother.position, smoother.velocity, target)
	return smoother.position
}

// Engine runs the perpetual wave animation and hands frames to the host.
type Engine struct {
	mu       sync.Mutex
	config   Config
	source   LevelSource
	render   func(Frame)
	smoother *Smoother
	phase    float64
	parent   context.Context
	cancel   context.CancelFunc
}

// New creates a new animation engine.
func New(config Config, source LevelSource, render func(Frame)) *Engine {
	if config.WavePeriod <= 0 {
		config.WavePeriod = DefaultConfig().WavePeriod
	}
	return &Engine{
		config:   config,
		source:   source,
		render:   render,
		smoother: NewSmoother(config),
	}
}

// Start launches the frame loop, replacing a loop that is already running.
// The loop has no end of its own; it stops on Stop or when ctx is done.
func (engine *Engine) Start(ctx context.Context) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.parent = ctx
	engine.startLocked()
}

// Stop terminates the frame loop.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
	engine.parent = nil
}

// Running reports whether a frame loop is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

// UpdateConfig swaps timing values; a running loop picks up the new frame rate.
func (engine *Engine) UpdateConfig(config Config) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if config.WavePeriod <= 0 {
		config.WavePeriod = DefaultConfig().WavePeriod
	}
	engine.config = config
	engine.smoother = NewSmoother(config)
	if engine.cancel != nil {
		engine.startLocked()
	}
}

// Advance computes the frame that follows a delay of delta. The phase only
// ever grows.
func (engine *Engine) Advance(delta time.Duration) Frame {
	state := engine.source.Snapshot()

	engine.mu.Lock()
	defer engine.mu.Unlock()
	if delta > 0 {
		engine.phase += wave.PhaseAt(delta, engine.config.WavePeriod)
	}
	percent := engine.smoother.Step(state.Percent)
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return Frame{
		Phase:   engine.phase,
		Percent: percent,
		Volume:  state.Volume,
		Target:  state.Target,
	}
}

func (engine *Engine) startLocked() {
	if engine.cancel != nil {
		engine.cancel()
	}
	parent := engine.parent
	if parent == nil {
		parent = context.Background()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel

	go engine.run(runCtx, engine.config.FrameInterval())
}

func (engine *Engine) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	engine.render(engine.Advance(0))
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			frame := engine.Advance(now.Sub(last))
			last = now
			if ctx.Err() != nil {
				return
			}
			engine.render(frame)
		}
	}
}

package field

import (
	"context"
	"sync"
	"time"
)

// DefaultInterval is the animator's frame period.
const DefaultInterval = time.Second / 60

// Sink receives each frame's draw list on the animation goroutine. The list
// is only valid until the sink returns. A sink must not call Stop, which
// waits for the sink to return; cancel the Start context instead.
type Sink func(frame uint64, list DrawList)

// Animator runs a Compositor on its own goroutine, one frame per tick. Input
// setters may be called from any goroutine; they are folded into the next
// frame's FrameInput.
type Animator struct {
	comp     *Compositor
	sink     Sink
	interval time.Duration

	mu     sync.Mutex
	input  FrameInput
	cancel context.CancelFunc
	done   chan struct{}
}

// AnimatorOption configures an Animator.
type AnimatorOption func(*Animator)

// WithInterval sets the frame period.
func WithInterval(d time.Duration) AnimatorOption {
	return func(a *Animator) {
		if d > 0 {
			a.interval = d
		}
	}
}

// NewAnimator wraps c. sink may be nil.
func NewAnimator(c *Compositor, sink Sink, opts ...AnimatorOption) *Animator {
	a := &Animator{comp: c, sink: sink, interval: DefaultInterval}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start launches the frame loop. It reports false, and does nothing, when a
// loop is already running.
func (a *Animator) Start(ctx context.Context) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cancel != nil {
		return false
	}
	ctx, a.cancel = context.WithCancel(ctx)
	a.done = make(chan struct{})
	go a.run(ctx, a.done)
	return true
}

// Stop cancels the loop and waits for the in-flight frame to finish. Stopping
// an idle animator is a no-op. Stop must not be called from the Sink.
func (a *Animator) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Running reports whether the frame loop is active.
func (a *Animator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.cancel != nil
}

func (a *Animator) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer a.finish(done)
	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			a.Step(dt)
		}
	}
}

// finish clears the loop state when the loop ends on its own, so a cancelled
// Start context leaves the animator restartable. A Stop that already took
// the state, or a newer loop, is left alone.
func (a *Animator) finish(done chan struct{}) {
	a.mu.Lock()
	if a.done == done {
		a.cancel()
		a.cancel, a.done = nil, nil
	}
	a.mu.Unlock()
}

// Step computes one frame synchronously with the pending input. The loop
// calls it on every tick; tests and single-shot drivers may call it directly
// while the loop is stopped.
func (a *Animator) Step(dt time.Duration) DrawList {
	a.mu.Lock()
	in := a.input
	a.input.HasPointer = false
	a.input.HasTilt = false
	a.mu.Unlock()

	in.Dt = dt
	list := a.comp.Frame(in)
	if a.sink != nil {
		a.sink(a.comp.Frames(), list)
	}
	return list
}

// SetViewport records the viewport size for the next frame.
func (a *Animator) SetViewport(width, height float64) {
	a.mu.Lock()
	a.input.Width, a.input.Height = width, height
	a.mu.Unlock()
}

// SetPointer records the latest pointer position.
func (a *Animator) SetPointer(x, y float64) {
	a.mu.Lock()
	a.input.PointerX, a.input.PointerY = x, y
	a.input.HasPointer = true
	a.mu.Unlock()
}

// SetOrientation records the latest device tilt.
func (a *Animator) SetOrientation(beta, gamma float64) {
	a.mu.Lock()
	a.input.Beta, a.input.Gamma = beta, gamma
	a.input.HasTilt = true
	a.mu.Unlock()
}

// SetAssetReady toggles drawing.
func (a *Animator) SetAssetReady(ready bool) {
	a.mu.Lock()
	a.input.AssetReady = ready
	a.mu.Unlock()
}

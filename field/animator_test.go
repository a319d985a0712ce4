package field

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestAnimatorStartStopIdempotent(t *testing.T) {
	c := newNoiseCompositor(t, DefaultConfig())
	var frames atomic.Int64
	first := make(chan struct{}, 1)
	a := NewAnimator(c, func(_ uint64, _ DrawList) {
		frames.Add(1)
		select {
		case first <- struct{}{}:
		default:
		}
	}, WithInterval(time.Millisecond))

	a.Stop() // never started
	if !a.Start(context.Background()) {
		t.Fatal("first Start returned false")
	}
	if a.Start(context.Background()) {
		t.Fatal("second Start scheduled another loop")
	}
	if !a.Running() {
		t.Fatal("animator not running")
	}
	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame within 2s")
	}
	a.Stop()
	a.Stop()
	if a.Running() {
		t.Fatal("animator still running after Stop")
	}
	n := frames.Load()
	time.Sleep(20 * time.Millisecond)
	if frames.Load() != n {
		t.Fatal("frames produced after Stop")
	}

	if !a.Start(context.Background()) {
		t.Fatal("restart failed")
	}
	a.Stop()
}

func TestAnimatorStepAppliesInput(t *testing.T) {
	c := newNoiseCompositor(t, DefaultConfig())
	a := NewAnimator(c, nil)
	a.SetViewport(1000, 800)
	a.SetPointer(100, 100)
	if list := a.Step(frame); len(list) != 0 {
		t.Fatal("drew before asset ready")
	}
	if x, y := c.Tracker().Current(); x != 100 || y != 100 {
		t.Fatalf("target = (%v,%v), want (100,100)", x, y)
	}
	a.SetAssetReady(true)
	if list := a.Step(frame); len(list) == 0 {
		t.Fatal("empty draw list once ready")
	}
}

func TestAnimatorContextCancelEndsLoop(t *testing.T) {
	c := newNoiseCompositor(t, DefaultConfig())
	a := NewAnimator(c, nil, WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	a.Start(ctx)
	cancel()
	done := make(chan struct{})
	go func() {
		a.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Stop hung after context cancel")
	}
}

func TestAnimatorRestartsAfterContextCancel(t *testing.T) {
	c := newNoiseCompositor(t, DefaultConfig())
	var frames atomic.Int64
	a := NewAnimator(c, func(_ uint64, _ DrawList) { frames.Add(1) }, WithInterval(time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	if !a.Start(ctx) {
		t.Fatal("first Start returned false")
	}
	cancel()

	deadline := time.Now().Add(2 * time.Second)
	for a.Running() {
		if time.Now().After(deadline) {
			t.Fatal("Running still true after context cancel")
		}
		time.Sleep(time.Millisecond)
	}

	n := frames.Load()
	if !a.Start(context.Background()) {
		t.Fatal("Start after context cancel returned false")
	}
	defer a.Stop()
	deadline = time.Now().Add(2 * time.Second)
	for frames.Load() == n {
		if time.Now().After(deadline) {
			t.Fatal("no frames after restart")
		}
		time.Sleep(time.Millisecond)
	}
}

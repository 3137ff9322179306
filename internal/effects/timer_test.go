package effects

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-5
}

func TestEffectTimerReachesEasingEndExactly(t *testing.T) {
	easings := map[string]EasingFunc{
		"linear":       EaseLinear,
		"in_out_cubic": EaseInOutCubic,
		"out_elastic":  EaseOutElastic,
		"out_bounce":   EaseOutBounce,
		"in_back":      EaseInBack,
	}
	for name, easing := range easings {
		timer := NewEffectTimer(time.Second, easing)
		for i := 0; i < 3; i++ {
			timer.Advance(300 * time.Millisecond)
			if timer.Done() {
				t.Fatalf("%s: done after %v", name, timer.Elapsed())
			}
		}
		timer.Advance(100 * time.Millisecond)
		if !timer.Done() {
			t.Fatalf("%s: expected done at %v", name, timer.Elapsed())
		}
		if got, want := timer.Progress(), easing(1); got != want {
			t.Fatalf("%s: progress %v, want %v", name, got, want)
		}
		timer.Advance(time.Second)
		if !timer.Done() || timer.Progress() != easing(1) {
			t.Fatalf("%s: expected to stay done at the end value", name)
		}
	}
}

func TestEffectTimerIgnoresNegativeDelta(t *testing.T) {
	timer := NewEffectTimer(time.Second, nil)
	timer.Advance(400 * time.Millisecond)
	timer.Advance(-time.Second)
	if timer.Elapsed() != 400*time.Millisecond {
		t.Fatalf("elapsed went backwards: %v", timer.Elapsed())
	}
	if !approx(timer.Progress(), 0.4) {
		t.Fatalf("progress = %v, want 0.4", timer.Progress())
	}
}

func TestEffectTimerZeroDuration(t *testing.T) {
	timer := NewEffectTimer(0, EaseLinear)
	if timer.Done() {
		t.Fatalf("zero timer done before any tick")
	}
	if timer.Ratio() != 0 {
		t.Fatalf("ratio before tick = %v", timer.Ratio())
	}
	timer.Advance(time.Millisecond)
	if !timer.Done() || timer.Progress() != 1 {
		t.Fatalf("zero timer should complete on the first tick, progress %v", timer.Progress())
	}
}

func TestEffectTimerRoundTripLaws(t *testing.T) {
	base := NewEffectTimer(800*time.Millisecond, EaseInOutQuad)
	for step := 0; step <= 10; step++ {
		elapsed := time.Duration(step) * 100 * time.Millisecond
		timer := base
		timer.Advance(elapsed)
		if got, want := timer.Mirrored().Mirrored().Progress(), timer.Progress(); got != want {
			t.Fatalf("mirror round trip at %v: %v != %v", elapsed, got, want)
		}
		if got, want := timer.Reversed().Reversed().Progress(), timer.Progress(); got != want {
			t.Fatalf("reverse round trip at %v: %v != %v", elapsed, got, want)
		}
	}
}

func TestEffectTimerMirroredAndReversed(t *testing.T) {
	timer := NewEffectTimer(time.Second, EaseInQuad)
	timer.Advance(250 * time.Millisecond)

	if got := timer.Mirrored().Progress(); !approx(got, 0.5625) {
		t.Fatalf("mirrored progress = %v, want in_quad(0.75)", got)
	}
	if got := timer.Reversed().Progress(); !approx(got, 1-0.0625) {
		t.Fatalf("reversed progress = %v, want 1-in_quad(0.25)", got)
	}
	a := timer.Mirrored().Reversed().Progress()
	b := timer.Reversed().Mirrored().Progress()
	if a != b {
		t.Fatalf("mirror and reverse should commute: %v vs %v", a, b)
	}
	if timer.Mirrored().Done() != timer.Done() {
		t.Fatalf("mirroring must not change completion")
	}
}

func TestEffectTimerOvershootDoesNotDelayDone(t *testing.T) {
	timer := NewEffectTimer(500*time.Millisecond, EaseOutBack)
	timer.Advance(300 * time.Millisecond)
	if timer.Progress() <= 1 {
		t.Fatalf("expected out_back to overshoot at 0.6, got %v", timer.Progress())
	}
	if timer.Done() {
		t.Fatalf("overshoot must not finish the timer early")
	}
	timer.Advance(200 * time.Millisecond)
	if !timer.Done() {
		t.Fatalf("timer should be done at its duration")
	}
}

func TestEffectTimerReset(t *testing.T) {
	timer := NewEffectTimer(time.Second, nil).Mirrored()
	timer.Advance(2 * time.Second)
	fresh := timer.Reset()
	if fresh.Done() || fresh.Elapsed() != 0 {
		t.Fatalf("reset timer should be fresh, elapsed %v", fresh.Elapsed())
	}
	if !fresh.IsMirrored() {
		t.Fatalf("reset must keep flags")
	}
}

func TestParseEasing(t *testing.T) {
	tests := []struct {
		name string
		want EasingFunc
	}{
		{"linear", EaseLinear},
		{"in_out_cubic", EaseInOutCubic},
		{"InOutCubic", EaseInOutCubic},
		{"in-out-cubic", EaseInOutCubic},
		{"out_elastic", EaseOutElastic},
		{"OutBounce", EaseOutBounce},
		{"smoothstep", EaseSmoothstep},
	}
	for _, tt := range tests {
		fn, ok := ParseEasing(tt.name)
		if !ok {
			t.Fatalf("ParseEasing(%q) not found", tt.name)
		}
		for _, x := range []float32{0, 0.3, 0.7, 1} {
			if fn(x) != tt.want(x) {
				t.Fatalf("ParseEasing(%q)(%v) = %v, want %v", tt.name, x, fn(x), tt.want(x))
			}
		}
	}
	if _, ok := ParseEasing("wobbly"); ok {
		t.Fatalf("unknown easing should not resolve")
	}
}

func TestEasingEndpoints(t *testing.T) {
	// in_expo lands at 0.999 by construction.
	const tol = 2e-3
	near := func(a, b float32) bool { return math.Abs(float64(a-b)) < tol }
	for _, name := range EasingNames() {
		fn, _ := ParseEasing(name)
		if got := fn(0); !near(got, 0) {
			t.Fatalf("%s(0) = %v", name, got)
		}
		if got := fn(1); !near(got, 1) {
			t.Fatalf("%s(1) = %v", name, got)
		}
	}
}

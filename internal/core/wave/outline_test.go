package wave

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func TestFillFraction_Endpoints(t *testing.T) {
	if got := FillFraction(0); got != 0.02 {
		t.Errorf("FillFraction(0) = %v, want 0.02", got)
	}
	if got := FillFraction(100); got != 1.00 {
		t.Errorf("FillFraction(100) = %v, want 1.00", got)
	}
	if got := FillFraction(50); math.Abs(got-0.51) > epsilon {
		t.Errorf("FillFraction(50) = %v, want 0.51", got)
	}
}

func TestGenerate_SurfaceWithinBand(t *testing.T) {
	const width, height = 300.0, 450.0
	amplitude := Amplitude(height)

	for percent := 0.0; percent <= 100; percent += 12.5 {
		for _, phase := range []float64{0, 45, 90, 217, 360, 1234.5} {
			outline := Generate(phase, percent, width, height)
			baseline := Baseline(percent, height)

			minY := math.Inf(1)
			for _, point := range outline {
				minY = math.Min(minY, point.Y)
			}
			if minY < baseline-amplitude-epsilon || minY > baseline+amplitude+epsilon {
				t.Errorf("percent=%v phase=%v: min y %v outside [%v, %v]",
					percent, phase, minY, baseline-amplitude, baseline+amplitude)
			}
		}
	}
}

func TestGenerate_HorizontalCoverage(t *testing.T) {
	const width, height = 240.0, 400.0
	outline := Generate(33, 60, width, height)
	surface := outline.Surface()

	if surface[0].X != 0 {
		t.Fatalf("first x = %v, want 0", surface[0].X)
	}
	for i := 1; i < len(surface); i++ {
		if surface[i].X < surface[i-1].X {
			t.Fatalf("x decreases at %d: %v -> %v", i, surface[i-1].X, surface[i].X)
		}
	}
	if last := surface[len(surface)-1].X; last < width {
		t.Errorf("last surface x = %v, want >= %v", last, width)
	}
}

func TestGenerate_ClosesAtBottom(t *testing.T) {
	const width, height = 100.0, 200.0
	outline := Generate(0, 20, width, height)

	// move + 75 samples (0..370 by 5) + 2 corners
	if len(outline) != 78 {
		t.Fatalf("outline has %d points, want 78", len(outline))
	}
	bottomRight := outline[len(outline)-2]
	bottomLeft := outline[len(outline)-1]
	if bottomRight != (Point{X: width, Y: height}) {
		t.Errorf("bottom-right corner = %+v", bottomRight)
	}
	if bottomLeft != (Point{X: 0, Y: height}) {
		t.Errorf("bottom-left corner = %+v", bottomLeft)
	}
}

func TestGenerate_AmplitudeIndependentOfPercent(t *testing.T) {
	const width, height = 200.0, 300.0
	for _, percent := range []float64{0, 35, 100} {
		surface := Generate(0, percent, width, height).Surface()
		minY, maxY := math.Inf(1), math.Inf(-1)
		for _, point := range surface {
			minY = math.Min(minY, point.Y)
			maxY = math.Max(maxY, point.Y)
		}
		if span := maxY - minY; math.Abs(span-2*Amplitude(height)) > 1e-6 {
			t.Errorf("percent=%v: crest-to-trough %v, want %v", percent, span, 2*Amplitude(height))
		}
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	first := Generate(123.4, 56.7, 320, 480)
	second := Generate(123.4, 56.7, 320, 480)
	if len(first) != len(second) {
		t.Fatalf("lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestGenerate_FullerSitsHigher(t *testing.T) {
	const height = 400.0
	if Baseline(80, height) >= Baseline(20, height) {
		t.Errorf("baseline at 80%% (%v) should be above 20%% (%v)", Baseline(80, height), Baseline(20, height))
	}
	if got := Baseline(100, height); math.Abs(got-2*Amplitude(height)) > epsilon {
		t.Errorf("full baseline = %v, want %v", got, 2*Amplitude(height))
	}
}

func TestOutline_SurfaceY(t *testing.T) {
	outline := Outline{
		{X: 0, Y: 10},
		{X: 0, Y: 10},
		{X: 10, Y: 20},
		{X: 20, Y: 0},
		{X: 20, Y: 50},
		{X: 0, Y: 50},
	}

	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "left of range", x: -5, want: 10},
		{name: "first segment midpoint", x: 5, want: 15},
		{name: "sample point", x: 10, want: 20},
		{name: "second segment", x: 15, want: 10},
		{name: "right of range", x: 40, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outline.SurfaceY(tt.x); math.Abs(got-tt.want) > epsilon {
				t.Errorf("SurfaceY(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestPhaseAt(t *testing.T) {
	period := 1700 * time.Millisecond
	if got := PhaseAt(0, period); got != 0 {
		t.Errorf("PhaseAt(0) = %v", got)
	}
	if got := PhaseAt(period, period); math.Abs(got-360) > epsilon {
		t.Errorf("PhaseAt(period) = %v, want 360", got)
	}
	if got := PhaseAt(3*period, period); math.Abs(got-1080) > 1e-6 {
		t.Errorf("PhaseAt(3*period) = %v, want 1080 (unwrapped)", got)
	}
	if got := PhaseAt(time.Second, 0); got != 0 {
		t.Errorf("PhaseAt with zero period = %v, want 0", got)
	}
}

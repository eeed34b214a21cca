package systems

import (
	"math"
	"testing"

	"github.com/automoto/muffinattack/components"
)

func TestUpdateParallax(t *testing.T) {
	tests := []struct {
		name  string
		speed float64
		start [4]float64
		want  [4]float64
	}{
		{
			name:  "stopped level only drifts clouds",
			start: [4]float64{0, 0, 0.1, 0.2},
			want:  [4]float64{0.00005, 0, 0.1, 0.2},
		},
		{
			name:  "moving level scrolls by rate",
			speed: 0.002,
			start: [4]float64{0, 0, 0.1, 0.2},
			want:  [4]float64{0.00045, 0.0012, 0.102, 0.2035},
		},
		{
			name:  "offsets wrap",
			speed: 0.002,
			start: [4]float64{0.99990, 0.9995, 0.999, 0.999},
			want:  [4]float64{0.00035, 0.0007, 0.001, 0.0025},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestLevel(t)
			level := testLevel(t, e)
			level.Speed = tt.speed
			level.Scroll = tt.start

			UpdateParallax(e)

			for i := range tt.want {
				if math.Abs(level.Scroll[i]-tt.want[i]) > 1e-9 {
					t.Errorf("layer %d offset %v, want %v", i, level.Scroll[i], tt.want[i])
				}
				if level.Scroll[i] < 0 || level.Scroll[i] >= 1 {
					t.Errorf("layer %d offset %v outside [0,1)", i, level.Scroll[i])
				}
			}
		})
	}
}

func TestParallaxScalesWithTickRate(t *testing.T) {
	e := newTestLevel(t)
	level := testLevel(t, e)
	level.TPS = 120
	level.Speed = 0.002
	level.Scroll = [4]float64{}

	UpdateParallax(e)

	if got, want := level.Scroll[components.StageLayer], 0.001; math.Abs(got-want) > 1e-12 {
		t.Errorf("stage moved %v in one 120 TPS tick, want %v", got, want)
	}
}

func TestWrapUnit(t *testing.T) {
	for _, tt := range []struct{ in, want float64 }{
		{0, 0}, {0.5, 0.5}, {1, 0}, {1.25, 0.25}, {-0.25, 0.75},
	} {
		if got := wrapUnit(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("wrapUnit(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

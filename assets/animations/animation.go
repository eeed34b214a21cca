package animations

// Animation walks the frames of a sprite sheet grid, row by row. Frames is the
// number of playable frames; blank trailing cells of the grid are never reached.
type Animation struct {
	Frames  int
	counter float64
	frame   int
	Looped  bool
}

// Update adds step to the frame counter and advances one frame once the
// counter reaches threshold.
func (a *Animation) Update(step, threshold float64) {
	a.counter += step
	if a.counter >= threshold {
		a.frame++
		a.counter = 0
	}
	if a.frame >= a.Frames {
		a.Looped = true
		a.frame = 0
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = 0
	a.counter = 0
	a.Looped = false
}

func NewAnimation(frames int) *Animation {
	return &Animation{
		Frames: frames,
	}
}

package animations

// Animation steps through sprite-sheet frame indices on a fixed tick budget.
// It carries no image data so the simulation can drive it headless.
type Animation struct {
	First         int
	Last          int
	TicksPerFrame int
	OneShot       bool // stop on the last frame and report Finished

	ticks    int
	frame    int
	finished bool
	Looped   bool
}

func (a *Animation) Update() {
	if a.finished {
		return
	}
	a.ticks++
	if a.ticks < a.TicksPerFrame {
		return
	}
	a.ticks = 0
	a.frame++
	if a.frame > a.Last {
		a.Looped = true
		if a.OneShot {
			a.frame = a.Last
			a.finished = true
		} else {
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Finished reports whether a one-shot animation has played its last frame.
func (a *Animation) Finished() bool {
	return a.finished
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.finished = false
	a.Looped = false
}

func NewAnimation(first, last, ticksPerFrame int) *Animation {
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}
	return &Animation{
		First:         first,
		Last:          last,
		TicksPerFrame: ticksPerFrame,
		frame:         first,
	}
}

// NewOneShot returns an animation over frames [0, frames) that plays once.
func NewOneShot(frames, ticksPerFrame int) *Animation {
	a := NewAnimation(0, frames-1, ticksPerFrame)
	a.OneShot = true
	return a
}

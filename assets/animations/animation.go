package animations

// Animation is a tick-driven frame counter over a sprite sheet row.
type Animation struct {
	First      int
	Last       int
	Step       int // how many indices do we move per frame
	SpeedInTps int // how many ticks before next frame
	ticks      int
	frame      int
	Looped     bool
}

// Update counts one tick. Once SpeedInTps ticks have passed and the
// animation is playing, it advances one step and resets the tick count.
// A stopped animation keeps counting but holds its frame, so it moves on
// the first tick it plays again. It reports whether the frame changed.
func (a *Animation) Update(playing bool) bool {
	a.ticks++
	if a.ticks < a.SpeedInTps || !playing {
		return false
	}
	a.ticks = 0
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
	return true
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.Looped = false
}

func NewAnimation(first, last, step, speed int) *Animation {
	if step <= 0 {
		step = 1
	}
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		frame:      first,
	}
}

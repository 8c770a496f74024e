package shell

// fpsWindow is how long frames are counted before the estimate is updated.
const fpsWindow = 1.0

// FPSCounter estimates frames per second by counting frames over windows of
// at least one second. The estimate is not smoothed.
type FPSCounter struct {
	fps    float64
	last   float64
	frames int
}

// NewFPSCounter starts counting at now, in seconds.
func NewFPSCounter(now float64) *FPSCounter {
	return &FPSCounter{last: now}
}

// Tick counts one frame at time now and reports whether the estimate was
// recomputed.
func (c *FPSCounter) Tick(now float64) bool {
	c.frames++
	elapsed := now - c.last
	if elapsed < fpsWindow {
		return false
	}
	c.fps = float64(c.frames) / elapsed
	c.frames = 0
	c.last = now
	return true
}

// FPS returns the latest estimate, 0 before the first full second.
func (c *FPSCounter) FPS() float64 {
	return c.fps
}

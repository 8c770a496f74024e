package shell

import "testing"

func TestFPSCounter(t *testing.T) {
	c := NewFPSCounter(10)

	// Seven ticks short of a full second leave the estimate alone.
	for i := 1; i <= 7; i++ {
		if c.Tick(10 + float64(i)*0.125) {
			t.Fatalf("tick %d recomputed before one second elapsed", i)
		}
	}
	if c.FPS() != 0 {
		t.Fatalf("FPS = %v before the first second, want 0", c.FPS())
	}

	if !c.Tick(11) {
		t.Fatal("tick at one second did not recompute")
	}
	if c.FPS() != 8 {
		t.Errorf("FPS = %v, want 8", c.FPS())
	}
	if c.frames != 0 || c.last != 11 {
		t.Errorf("counter not reset: frames=%d last=%v", c.frames, c.last)
	}

	// Two frames in the next second.
	if c.Tick(11.5) {
		t.Fatal("recomputed after half a second")
	}
	c.Tick(12)
	if c.FPS() != 2 {
		t.Errorf("FPS in the second window = %v, want 2", c.FPS())
	}
}

func TestFPSCounterLongStall(t *testing.T) {
	c := NewFPSCounter(0)
	if !c.Tick(4) {
		t.Fatal("stall did not recompute")
	}
	if c.FPS() != 0.25 {
		t.Errorf("FPS = %v, want 0.25", c.FPS())
	}
}

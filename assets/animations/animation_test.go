package animations

import "testing"

func TestUpdateAdvancesEverySpeedTicks(t *testing.T) {
	a := NewAnimation(0, 3, 1, 6)

	for i := 0; i < 5; i++ {
		if a.Update(true) {
			t.Fatalf("advanced after %d ticks, want 6", i+1)
		}
	}
	if !a.Update(true) {
		t.Fatal("did not advance on the sixth tick")
	}
	if a.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", a.Frame())
	}
}

func TestUpdateWraps(t *testing.T) {
	a := NewAnimation(0, 3, 1, 1)
	for i := 0; i < 4; i++ {
		a.Update(true)
	}
	if a.Frame() != 0 {
		t.Errorf("Frame() = %d, want 0 after a full cycle", a.Frame())
	}
	if !a.Looped {
		t.Error("Looped = false after a full cycle")
	}
}

func TestStoppedAnimationHoldsFrame(t *testing.T) {
	a := NewAnimation(0, 3, 1, 6)
	for i := 0; i < 20; i++ {
		a.Update(false)
	}
	if a.Frame() != 0 {
		t.Fatalf("Frame() = %d while stopped, want 0", a.Frame())
	}
	// the timer kept running, so the first moving tick advances
	if !a.Update(true) {
		t.Fatal("did not advance on the first moving tick")
	}
	if a.Frame() != 1 {
		t.Errorf("Frame() = %d, want 1", a.Frame())
	}
}

func TestRestart(t *testing.T) {
	a := NewAnimation(0, 3, 1, 1)
	a.Update(true)
	a.Update(true)
	a.Restart()
	if a.Frame() != 0 || a.Looped {
		t.Errorf("after Restart: frame %d looped %v", a.Frame(), a.Looped)
	}
}

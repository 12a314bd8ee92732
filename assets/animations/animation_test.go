package animations

import "testing"

func TestLoopingAnimation(t *testing.T) {
	a := NewAnimation(2, 4, 3)
	var frames []int
	for i := 0; i < 10; i++ {
		a.Update()
		frames = append(frames, a.Frame())
	}
	expected := []int{2, 2, 3, 3, 3, 4, 4, 4, 2, 2}
	for i := range expected {
		if frames[i] != expected[i] {
			t.Fatalf("frame after %d updates = %d, want %d", i+1, frames[i], expected[i])
		}
	}
	if !a.Looped {
		t.Fatal("Looped = false after wrapping")
	}
	if a.Finished() {
		t.Fatal("looping animation reported Finished")
	}
}

func TestOneShotFinishes(t *testing.T) {
	a := NewOneShot(3, 6)
	for i := 1; i < 18; i++ {
		a.Update()
		if a.Finished() {
			t.Fatalf("finished after %d updates, want 18", i)
		}
	}
	a.Update()
	if !a.Finished() {
		t.Fatal("not finished after 18 updates")
	}
	if a.Frame() != 2 {
		t.Fatalf("Frame() = %d, want last frame 2", a.Frame())
	}
	a.Update()
	if a.Frame() != 2 {
		t.Fatal("finished animation kept advancing")
	}
}

func TestRestart(t *testing.T) {
	a := NewOneShot(2, 1)
	a.Update()
	a.Update()
	a.Restart()
	if a.Finished() || a.Frame() != 0 {
		t.Fatalf("after Restart: finished=%v frame=%d", a.Finished(), a.Frame())
	}
}

package clock

import "testing"

func TestTickAccumulates(t *testing.T) {
	c := New()
	c.Tick(16.0)
	c.Tick(17.5)
	if got := c.NowMs(); got != 33.5 {
		t.Errorf("expected 33.5, got %f", got)
	}
}

func TestPauseFreezesTime(t *testing.T) {
	c := New()
	c.Tick(100)
	c.Pause()
	for i := 0; i < 1000; i++ {
		c.Tick(16.6)
	}
	if got := c.NowMs(); got != 100 {
		t.Errorf("paused clock advanced: %f", got)
	}
	if !c.Paused() {
		t.Error("expected paused")
	}
}

func TestResumeKeepsTimeline(t *testing.T) {
	c := New()
	c.Tick(100)
	c.Pause()
	c.Tick(500)
	c.Resume()
	if got := c.NowMs(); got != 100 {
		t.Errorf("resume altered time: %f", got)
	}
	c.Tick(50)
	if got := c.NowMs(); got != 150 {
		t.Errorf("expected 150 after resume+tick, got %f", got)
	}
}

func TestNegativeDeltaIgnored(t *testing.T) {
	c := New()
	c.Tick(100)
	c.Tick(-30)
	if got := c.NowMs(); got != 100 {
		t.Errorf("negative delta moved clock: %f", got)
	}
}

package engine

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFrameCallbackRunsOnce(t *testing.T) {
	loop := NewLoop(epoch)
	calls := 0
	loop.ScheduleFrame(func(time.Time) { calls++ })

	loop.Advance(epoch.Add(16 * time.Millisecond))
	loop.Advance(epoch.Add(32 * time.Millisecond))

	if calls != 1 {
		t.Errorf("frame callback ran %d times, want 1", calls)
	}
	if loop.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", loop.Pending())
	}
}

func TestFrameRearmRunsNextAdvance(t *testing.T) {
	loop := NewLoop(epoch)
	var seen []time.Time
	var frame FrameFunc
	frame = func(now time.Time) {
		seen = append(seen, now)
		loop.ScheduleFrame(frame)
	}
	loop.ScheduleFrame(frame)

	for i := 1; i <= 3; i++ {
		loop.Advance(epoch.Add(time.Duration(i) * 16 * time.Millisecond))
	}

	if len(seen) != 3 {
		t.Fatalf("got %d frames, want 3 (one per advance)", len(seen))
	}
	for i, ts := range seen {
		want := epoch.Add(time.Duration(i+1) * 16 * time.Millisecond)
		if !ts.Equal(want) {
			t.Errorf("frame %d time = %v, want %v", i, ts, want)
		}
	}
}

func TestAfterDeadlineOrder(t *testing.T) {
	loop := NewLoop(epoch)
	var order []string
	loop.After(300*time.Millisecond, func(time.Time) { order = append(order, "c") })
	loop.After(150*time.Millisecond, func(time.Time) { order = append(order, "b") })
	loop.After(0, func(time.Time) { order = append(order, "a") })
	loop.ScheduleFrame(func(time.Time) { order = append(order, "frame") })

	loop.Advance(epoch.Add(time.Second))

	want := []string{"a", "b", "c", "frame"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("order[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestAfterNotDueYet(t *testing.T) {
	loop := NewLoop(epoch)
	fired := false
	loop.After(150*time.Millisecond, func(time.Time) { fired = true })

	loop.Advance(epoch.Add(100 * time.Millisecond))
	if fired {
		t.Fatal("timer fired before deadline")
	}
	loop.Advance(epoch.Add(150 * time.Millisecond))
	if !fired {
		t.Error("timer did not fire at deadline")
	}
}

func TestEveryCatchesUp(t *testing.T) {
	loop := NewLoop(epoch)
	ticks := 0
	loop.Every(100*time.Millisecond, func(time.Time) { ticks++ })

	// A 1s stall yields one tick, not ten
	loop.Advance(epoch.Add(time.Second))
	if ticks != 1 {
		t.Fatalf("ticks after stall = %d, want 1", ticks)
	}
	loop.Advance(epoch.Add(time.Second + 50*time.Millisecond))
	if ticks != 1 {
		t.Errorf("ticks before next period = %d, want 1", ticks)
	}
	loop.Advance(epoch.Add(time.Second + 100*time.Millisecond))
	if ticks != 2 {
		t.Errorf("ticks after next period = %d, want 2", ticks)
	}
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name     string
		schedule func(l *Loop, fn FrameFunc) Handle
	}{
		{"frame", func(l *Loop, fn FrameFunc) Handle { return l.ScheduleFrame(fn) }},
		{"after", func(l *Loop, fn FrameFunc) Handle { return l.After(10*time.Millisecond, fn) }},
		{"every", func(l *Loop, fn FrameFunc) Handle { return l.Every(10*time.Millisecond, fn) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loop := NewLoop(epoch)
			fired := false
			h := tt.schedule(loop, func(time.Time) { fired = true })
			loop.Cancel(h)
			loop.Advance(epoch.Add(time.Second))
			if fired {
				t.Error("cancelled callback ran")
			}
			if loop.Pending() != 0 {
				t.Errorf("Pending() = %d, want 0", loop.Pending())
			}
		})
	}
}

func TestCancelFromEarlierCallback(t *testing.T) {
	loop := NewLoop(epoch)
	fired := false
	var victim Handle
	loop.After(0, func(time.Time) { loop.Cancel(victim) })
	victim = loop.ScheduleFrame(func(time.Time) { fired = true })

	loop.Advance(epoch.Add(time.Millisecond))
	if fired {
		t.Error("frame cancelled by a timer in the same advance still ran")
	}
}

func TestScheduledDuringAdvanceWaits(t *testing.T) {
	loop := NewLoop(epoch)
	fired := false
	loop.ScheduleFrame(func(time.Time) {
		loop.After(0, func(time.Time) { fired = true })
	})

	loop.Advance(epoch.Add(time.Millisecond))
	if fired {
		t.Fatal("timer armed during advance ran in the same advance")
	}
	loop.Advance(epoch.Add(2 * time.Millisecond))
	if !fired {
		t.Error("timer armed during advance never ran")
	}
}

func TestAdvanceNeverGoesBackward(t *testing.T) {
	loop := NewLoop(epoch)
	loop.Advance(epoch.Add(time.Second))
	loop.Advance(epoch)
	if got := loop.Now(); !got.Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, want %v", got, epoch.Add(time.Second))
	}
}

func TestMockDrive(t *testing.T) {
	mock := NewMockTimeProvider(epoch)
	loop := NewLoop(mock.Now())
	frames := 0
	var frame FrameFunc
	frame = func(time.Time) {
		frames++
		loop.ScheduleFrame(frame)
	}
	loop.ScheduleFrame(frame)

	mock.Drive(loop, time.Second, 10*time.Millisecond)
	if frames != 100 {
		t.Errorf("frames = %d, want 100", frames)
	}
	if !loop.Now().Equal(epoch.Add(time.Second)) {
		t.Errorf("Now() = %v, want %v", loop.Now(), epoch.Add(time.Second))
	}
}

package engine

import (
	"sort"
	"sync"
	"time"
)

// Handle identifies a scheduled frame callback or timer; zero is never issued
type Handle uint64

// FrameFunc receives the logical time of the advance that runs it
type FrameFunc func(now time.Time)

// Scheduler is the cooperative scheduling surface game logic is written against
// Frame callbacks are one-shot and must re-arm themselves; timers fire on deadlines
type Scheduler interface {
	Now() time.Time
	ScheduleFrame(fn FrameFunc) Handle
	After(d time.Duration, fn FrameFunc) Handle
	Every(d time.Duration, fn FrameFunc) Handle
	Cancel(h Handle)
}

type timer struct {
	handle   Handle
	deadline time.Time
	interval time.Duration // 0 = one-shot
	fn       FrameFunc
}

// Loop is a single-threaded frame and timer scheduler driven by Advance
// Nothing runs on its own: the owner calls Advance once per display frame
type Loop struct {
	mu     sync.Mutex
	now    time.Time
	seq    Handle
	frames map[Handle]FrameFunc
	timers map[Handle]*timer

	advancing bool
}

var _ Scheduler = (*Loop)(nil)

// NewLoop creates a scheduler whose logical clock starts at start
func NewLoop(start time.Time) *Loop {
	return &Loop{
		now:    start,
		frames: make(map[Handle]FrameFunc),
		timers: make(map[Handle]*timer),
	}
}

// Now returns the logical time of the most recent advance
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.now
}

func (l *Loop) nextHandle() Handle {
	l.seq++
	return l.seq
}

// ScheduleFrame arms fn to run once on the next Advance
func (l *Loop) ScheduleFrame(fn FrameFunc) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.nextHandle()
	l.frames[h] = fn
	return h
}

// After arms fn to run once d after the current logical time
func (l *Loop) After(d time.Duration, fn FrameFunc) Handle {
	return l.addTimer(d, 0, fn)
}

// Every arms fn to run every d; late runs are not replayed
func (l *Loop) Every(d time.Duration, fn FrameFunc) Handle {
	if d <= 0 {
		panic("engine: Every requires a positive interval")
	}
	return l.addTimer(d, d, fn)
}

func (l *Loop) addTimer(d, interval time.Duration, fn FrameFunc) Handle {
	l.mu.Lock()
	defer l.mu.Unlock()
	h := l.nextHandle()
	l.timers[h] = &timer{
		handle:   h,
		deadline: l.now.Add(d),
		interval: interval,
		fn:       fn,
	}
	return h
}

// Cancel removes a pending frame callback or timer; unknown handles are ignored
func (l *Loop) Cancel(h Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.frames, h)
	delete(l.timers, h)
}

// Pending returns the number of armed frame callbacks and timers
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.frames) + len(l.timers)
}

// Advance moves logical time to now, runs due timers in deadline order, then
// the frame callbacks armed before this call
// Anything scheduled from inside a callback waits for a later Advance
func (l *Loop) Advance(now time.Time) {
	l.mu.Lock()
	if l.advancing {
		l.mu.Unlock()
		panic("engine: re-entrant Advance")
	}
	l.advancing = true
	if now.After(l.now) {
		l.now = now
	}
	now = l.now
	barrier := l.seq

	due := make([]*timer, 0, len(l.timers))
	for _, t := range l.timers {
		if t.handle <= barrier && !t.deadline.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].deadline.Equal(due[j].deadline) {
			return due[i].handle < due[j].handle
		}
		return due[i].deadline.Before(due[j].deadline)
	})

	frameHandles := make([]Handle, 0, len(l.frames))
	for h := range l.frames {
		frameHandles = append(frameHandles, h)
	}
	sort.Slice(frameHandles, func(i, j int) bool { return frameHandles[i] < frameHandles[j] })
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.advancing = false
		l.mu.Unlock()
	}()

	for _, t := range due {
		l.mu.Lock()
		if _, live := l.timers[t.handle]; !live {
			l.mu.Unlock()
			continue
		}
		if t.interval == 0 {
			delete(l.timers, t.handle)
		} else {
			t.deadline = t.deadline.Add(t.interval)
			// Catch up after a stall instead of replaying every missed period
			if !t.deadline.After(now) {
				t.deadline = now.Add(t.interval)
			}
		}
		l.mu.Unlock()
		t.fn(now)
	}

	for _, h := range frameHandles {
		l.mu.Lock()
		fn, live := l.frames[h]
		if live {
			delete(l.frames, h)
		}
		l.mu.Unlock()
		if live {
			fn(now)
		}
	}
}

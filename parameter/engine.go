package parameter

import "time"

// Game Loop Timing
const (
	// FrameUpdateInterval is the frame callback cadence (~60 FPS), every per-frame constant assumes it
	FrameUpdateInterval = time.Second / 60

	// ClockPollInterval is the elapsed-time polling cadence, independent of the frame callback
	ClockPollInterval = 100 * time.Millisecond

	// InputQueueSize is the buffered capacity between the terminal poller and the main loop
	InputQueueSize = 256
)

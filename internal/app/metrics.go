package app

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Metrics tracks event handling and drawing cost. All methods are safe for
// concurrent use.
type Metrics struct {
	// Frame timing
	frameCount   atomic.Uint64
	frameTotalNs atomic.Int64
	frameMinNs   atomic.Int64
	frameMaxNs   atomic.Int64
	lastFrameNs  atomic.Int64

	// Input handling
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64
	keyCount     atomic.Uint64
	mouseCount   atomic.Uint64

	reloads atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{startTime: time.Now()}
	m.frameMinNs.Store(1<<63 - 1)
	return m
}

// RecordFrame records the time taken to draw and show one frame.
func (m *Metrics) RecordFrame(duration time.Duration) {
	ns := duration.Nanoseconds()

	m.frameCount.Add(1)
	m.frameTotalNs.Add(ns)
	m.lastFrameNs.Store(ns)

	for {
		old := m.frameMinNs.Load()
		if ns >= old || m.frameMinNs.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.frameMaxNs.Load()
		if ns <= old || m.frameMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordKey records the handling time of a key event.
func (m *Metrics) RecordKey(duration time.Duration) {
	m.keyCount.Add(1)
	m.recordEvent(duration)
}

// RecordMouse records the handling time of a mouse sample.
func (m *Metrics) RecordMouse(duration time.Duration) {
	m.mouseCount.Add(1)
	m.recordEvent(duration)
}

func (m *Metrics) recordEvent(duration time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(duration.Nanoseconds())
}

// RecordReload counts an applied configuration reload.
func (m *Metrics) RecordReload() {
	m.reloads.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	frames := m.frameCount.Load()
	events := m.eventCount.Load()

	var avgFrame, avgEvent int64
	if frames > 0 {
		avgFrame = m.frameTotalNs.Load() / int64(frames)
	}
	if events > 0 {
		avgEvent = m.eventTotalNs.Load() / int64(events)
	}

	minFrame := m.frameMinNs.Load()
	if minFrame == 1<<63-1 {
		minFrame = 0
	}

	return MetricsSnapshot{
		Uptime:         time.Since(m.startTime),
		FrameCount:     frames,
		AvgFrameTimeNs: avgFrame,
		MinFrameTimeNs: minFrame,
		MaxFrameTimeNs: m.frameMaxNs.Load(),
		LastFrameNs:    m.lastFrameNs.Load(),
		EventCount:     events,
		KeyCount:       m.keyCount.Load(),
		MouseCount:     m.mouseCount.Load(),
		AvgEventNs:     avgEvent,
		Reloads:        m.reloads.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime         time.Duration
	FrameCount     uint64
	AvgFrameTimeNs int64
	MinFrameTimeNs int64
	MaxFrameTimeNs int64
	LastFrameNs    int64
	EventCount     uint64
	KeyCount       uint64
	MouseCount     uint64
	AvgEventNs     int64
	Reloads        uint64
}

// String summarizes the snapshot on one line for the log.
func (s MetricsSnapshot) String() string {
	return fmt.Sprintf("uptime=%s frames=%d avg_frame=%s max_frame=%s events=%d keys=%d mouse=%d avg_event=%s reloads=%d",
		s.Uptime.Round(time.Millisecond),
		s.FrameCount,
		time.Duration(s.AvgFrameTimeNs),
		time.Duration(s.MaxFrameTimeNs),
		s.EventCount,
		s.KeyCount,
		s.MouseCount,
		time.Duration(s.AvgEventNs),
		s.Reloads,
	)
}

// Timer measures elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop returns the elapsed time and restarts the timer.
func (t *Timer) Stop() time.Duration {
	elapsed := t.Elapsed()
	t.start = time.Now()
	return elapsed
}

// Metrics returns the application's metrics.
func (app *Application) Metrics() *Metrics {
	return app.metrics
}

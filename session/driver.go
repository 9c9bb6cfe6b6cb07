package session

import (
	"context"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// DriverStats provides statistics about the work a Driver has processed.
type DriverStats struct {
	Ticks    ProcessStats
	Inputs   ProcessStats
	Controls ProcessStats
	// Interval is the gravity period currently armed, zero while gravity is
	// stopped.
	Interval time.Duration
}

// ProcessStats provides execution statistics for one kind of work.
type ProcessStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type processStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

func newProcessStats(name string) *processStatsInternal {
	return &processStatsInternal{
		name:        name,
		minDuration: time.Duration(1<<63 - 1),
	}
}

func (p *processStatsInternal) record(duration time.Duration) {
	p.executionCount++
	p.lastDuration = duration
	p.totalDuration += duration

	if duration < p.minDuration {
		p.minDuration = duration
	}
	if duration > p.maxDuration {
		p.maxDuration = duration
	}
}

func (p *processStatsInternal) export() ProcessStats {
	avgDuration := time.Duration(0)
	minDuration := time.Duration(0)
	if p.executionCount > 0 {
		avgDuration = p.totalDuration / time.Duration(p.executionCount)
		minDuration = p.minDuration
	}

	return ProcessStats{
		Name:           p.name,
		ExecutionCount: p.executionCount,
		MinDuration:    minDuration,
		MaxDuration:    p.maxDuration,
		AvgDuration:    avgDuration,
		LastDuration:   p.lastDuration,
		TotalDuration:  p.totalDuration,
	}
}

type requestKind uint8

const (
	requestInput requestKind = iota
	requestStart
	requestReset
	requestCall
)

type request struct {
	kind   requestKind
	action Action
	fn     func(*Session)
	done   chan struct{}
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithLogger makes the driver log lifecycle changes to logger.
func WithLogger(logger *log.Logger) DriverOption {
	return func(d *Driver) {
		d.logger = logger
	}
}

// WithQueueSize sets how many requests may wait before senders block.
func WithQueueSize(n int) DriverOption {
	return func(d *Driver) {
		d.requests = make(chan request, n)
	}
}

// Driver runs a Session in real time. A single goroutine, started by Run,
// owns the session: it applies gravity at the session's drop interval and
// processes inputs and control requests one at a time, so no two operations
// ever overlap.
type Driver struct {
	session  *Session
	requests chan request
	logger   *log.Logger

	latest atomic.Pointer[Snapshot]
	done   chan struct{}

	mu       sync.Mutex
	ticks    *processStatsInternal
	inputs   *processStatsInternal
	controls *processStatsInternal
	armed    time.Duration
}

// NewDriver creates a driver for s. The driver subscribes to s to keep its
// latest snapshot current.
func NewDriver(s *Session, opts ...DriverOption) *Driver {
	d := &Driver{
		session:  s,
		requests: make(chan request, 64),
		logger:   log.New(io.Discard, "", 0),
		done:     make(chan struct{}),
		ticks:    newProcessStats("tick"),
		inputs:   newProcessStats("input"),
		controls: newProcessStats("control"),
	}
	for _, opt := range opts {
		opt(d)
	}

	snap := s.Snapshot()
	d.latest.Store(&snap)
	s.Subscribe(ObserverFunc(func(snap Snapshot, events []Event) {
		d.latest.Store(&snap)
		for _, e := range events {
			if e.Kind == EventGameOver {
				d.logger.Printf("game over: score=%d level=%d lines=%d", snap.Score, snap.Level, snap.Lines)
			}
		}
	}))
	return d
}

// Run processes gravity and requests until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) {
	defer close(d.done)

	ticker := time.NewTicker(time.Hour)
	ticker.Stop()
	defer ticker.Stop()

	var tick <-chan time.Time
	rearm := func() {
		if d.session.Phase() != Playing {
			if tick != nil {
				ticker.Stop()
				tick = nil
				d.setArmed(0)
				d.logger.Printf("gravity stopped")
			}
			return
		}

		interval := d.session.DropInterval()
		if tick != nil && interval == d.Armed() {
			return
		}
		ticker.Reset(interval)
		tick = ticker.C
		d.setArmed(interval)
		d.logger.Printf("gravity armed at %s", interval)
	}

	rearm()
	for {
		select {
		case <-ctx.Done():
			return
		case <-tick:
			d.measure(d.ticks, d.session.Tick)
			rearm()
		case req := <-d.requests:
			d.handle(req)
			rearm()
			if req.done != nil {
				close(req.done)
			}
		}
	}
}

func (d *Driver) handle(req request) {
	switch req.kind {
	case requestInput:
		d.measure(d.inputs, func() { d.session.Input(req.action) })
	case requestStart:
		d.logger.Printf("starting game")
		d.measure(d.controls, d.session.Start)
	case requestReset:
		d.measure(d.controls, d.session.Reset)
	case requestCall:
		req.fn(d.session)
	}
}

func (d *Driver) measure(stats *processStatsInternal, fn func()) {
	start := time.Now()
	fn()
	duration := time.Since(start)

	d.mu.Lock()
	stats.record(duration)
	d.mu.Unlock()
}

func (d *Driver) submit(req request) bool {
	select {
	case <-d.done:
		return false
	default:
	}

	select {
	case d.requests <- req:
		return true
	case <-d.done:
		return false
	}
}

// Send queues a player action. It returns false if the driver has stopped.
func (d *Driver) Send(action Action) bool {
	return d.submit(request{kind: requestInput, action: action})
}

// Start queues a request to start a new game.
func (d *Driver) Start() bool {
	return d.submit(request{kind: requestStart})
}

// Reset queues a request to reset the session.
func (d *Driver) Reset() bool {
	return d.submit(request{kind: requestReset})
}

// Do runs fn on the driver goroutine and waits for it to return. It returns
// false without calling fn if the driver has stopped.
func (d *Driver) Do(fn func(*Session)) bool {
	done := make(chan struct{})
	if !d.submit(request{kind: requestCall, fn: fn, done: done}) {
		return false
	}
	select {
	case <-done:
		return true
	case <-d.done:
		return false
	}
}

// Snapshot returns the state published by the most recent transition.
func (d *Driver) Snapshot() Snapshot {
	return *d.latest.Load()
}

// Done is closed when Run returns.
func (d *Driver) Done() <-chan struct{} {
	return d.done
}

// Armed returns the gravity period currently in effect, or zero when gravity
// is stopped.
func (d *Driver) Armed() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.armed
}

func (d *Driver) setArmed(interval time.Duration) {
	d.mu.Lock()
	d.armed = interval
	d.mu.Unlock()
}

// GetStats returns statistics about processed work.
func (d *Driver) GetStats() DriverStats {
	d.mu.Lock()
	defer d.mu.Unlock()

	return DriverStats{
		Ticks:    d.ticks.export(),
		Inputs:   d.inputs.export(),
		Controls: d.controls.export(),
		Interval: d.armed,
	}
}

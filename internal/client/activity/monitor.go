// Package activity drives refresh cadence from user input. Two states:
// Active while qualifying events keep arriving, Idle after a quiet period.
// Idle polls the booking collection on a slow ticker; waking up refreshes
// the interactive collections once, immediately.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/sjhoeksma/myfleetboatrobot/internal/logging"
)

type State int

const (
	Active State = iota
	Idle
)

func (s State) String() string {
	if s == Idle {
		return "idle"
	}
	return "active"
}

const (
	// DefaultIdleAfter is how long without a qualifying event before the
	// monitor goes Idle.
	DefaultIdleAfter = 30 * time.Second
	// DefaultPollEvery is the booking refresh period while Idle.
	DefaultPollEvery = 60 * time.Second
)

// Monitor is the Active/Idle state machine. It owns its timer handles and
// tears them down deterministically on Stop; there is no terminal state
// otherwise.
type Monitor struct {
	idleAfter time.Duration
	pollEvery time.Duration

	// authorized guards every refresh: while the server requires auth and
	// the session is absent, neither state performs any network call.
	authorized func() bool
	// onIdlePoll refreshes the booking collection (Idle ticker).
	onIdlePoll func(ctx context.Context)
	// onWake refreshes booking, user and boat collections (Idle → Active).
	onWake func(ctx context.Context)

	log logging.Logger

	touch  chan struct{}
	stopc  chan struct{}
	done   chan struct{}
	stopMu sync.Once

	mu      sync.Mutex
	state   State
	started bool
}

func NewMonitor(idleAfter, pollEvery time.Duration, authorized func() bool,
	onIdlePoll, onWake func(ctx context.Context), log logging.Logger) *Monitor {
	if idleAfter <= 0 {
		idleAfter = DefaultIdleAfter
	}
	if pollEvery <= 0 {
		pollEvery = DefaultPollEvery
	}
	return &Monitor{
		idleAfter:  idleAfter,
		pollEvery:  pollEvery,
		authorized: authorized,
		onIdlePoll: onIdlePoll,
		onWake:     onWake,
		log:        log.With("component", "activity"),
		touch:      make(chan struct{}, 1),
		stopc:      make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the state machine. Initial state is Active. Calling Start
// twice is a no-op.
func (m *Monitor) Start(ctx context.Context) {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	m.mu.Unlock()
	go m.run(ctx)
}

// Touch records one qualifying input event; in this client that is any
// dispatched CLI command. Never blocks.
func (m *Monitor) Touch() {
	select {
	case m.touch <- struct{}{}:
	default:
	}
}

// Stop shuts the machine down and waits for its goroutine to exit.
func (m *Monitor) Stop() {
	m.stopMu.Do(func() { close(m.stopc) })
	m.mu.Lock()
	started := m.started
	m.mu.Unlock()
	if started {
		<-m.done
	}
}

func (m *Monitor) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Monitor) setState(ctx context.Context, s State) {
	m.mu.Lock()
	changed := m.state != s
	m.state = s
	m.mu.Unlock()
	if changed {
		m.log.Debug(ctx, "state changed", "state", s.String())
	}
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	idle := time.NewTimer(m.idleAfter)
	defer idle.Stop()

	var ticker *time.Ticker
	var tick <-chan time.Time
	stopTicker := func() {
		if ticker != nil {
			ticker.Stop()
			ticker = nil
			tick = nil
		}
	}
	defer stopTicker()

	for {
		select {
		case <-m.touch:
			wasIdle := m.State() == Idle
			if wasIdle {
				stopTicker()
				m.setState(ctx, Active)
				if m.authorized() {
					m.onWake(ctx)
				}
			}
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(m.idleAfter)

		case <-idle.C:
			m.setState(ctx, Idle)
			ticker = time.NewTicker(m.pollEvery)
			tick = ticker.C

		case <-tick:
			if m.authorized() {
				m.onIdlePoll(ctx)
			}

		case <-m.stopc:
			return
		case <-ctx.Done():
			return
		}
	}
}

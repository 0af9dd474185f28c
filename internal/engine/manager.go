package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/tonhe/slant/internal/config"
	"github.com/tonhe/slant/internal/prefs"
)

// errlogDepth is how many poll failures the error log retains.
const errlogDepth = 64

// Manager runs one Poller per configured host and aggregates their state
// for the dashboard.
type Manager struct {
	mu          sync.RWMutex
	pollers     []*Poller // config declaration order
	errlog      *RingBuffer[PollError]
	subscribers []chan Event
	running     bool
}

// NewManager creates an idle Manager.
func NewManager() *Manager {
	return &Manager{
		errlog: NewRingBuffer[PollError](errlogDepth),
	}
}

// Start launches a Poller for every host in the configuration, each at
// its own effective waittime.
func (m *Manager) Start(cfg *config.Config, pr *prefs.Prefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.running {
		return errors.New("engine already running")
	}
	if len(cfg.Hosts) == 0 {
		return errors.New("no hosts to monitor")
	}

	for _, h := range cfg.Hosts {
		p := newPoller(h, cfg.Waittime, pr, m.notify, m.reportError)
		m.pollers = append(m.pollers, p)
		go p.Run()
	}
	m.running = true
	return nil
}

// Snapshot returns the current state of every host, in display order.
func (m *Manager) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Manager) snapshotLocked() *Snapshot {
	snap := &Snapshot{Errors: m.errlog.All()}
	for _, p := range m.pollers {
		hs := p.stats()
		if hs.LastPoll.After(snap.LastPoll) {
			snap.LastPoll = hs.LastPoll
		}
		snap.Hosts = append(snap.Hosts, hs)
	}
	return snap
}

// RefreshAll asks every poller to poll now.
func (m *Manager) RefreshAll() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.pollers {
		p.Refresh()
	}
}

// Subscribe returns a channel receiving an event after each poll cycle.
func (m *Manager) Subscribe() <-chan Event {
	ch := make(chan Event, 1)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, ch)
	return ch
}

// notify fans the current snapshot out to subscribers without blocking.
func (m *Manager) notify() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	snap := m.snapshotLocked()
	for _, ch := range m.subscribers {
		select {
		case ch <- Event{Snapshot: snap}:
		default:
		}
	}
}

// reportError appends a failure to the error log shown on the layout's
// errlog lines.
func (m *Manager) reportError(host string, err error) {
	m.errlog.Add(PollError{Time: time.Now(), Host: host, Err: err})
}

// StopAll halts every poller.
func (m *Manager) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.pollers {
		p.Stop()
	}
	m.pollers = nil
	m.running = false
}

package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/tonhe/slant/internal/config"
	"github.com/tonhe/slant/internal/prefs"
)

// historyDepth is how many samples each host retains. The dashboard's
// time-window options slice into this via Window.
const historyDepth = 4096

// Poller polls a single host at its effective waittime and accumulates
// its sample history.
type Poller struct {
	mu        sync.RWMutex
	url       string
	interval  time.Duration
	pr        *prefs.Prefs
	client    *Client
	history   *RingBuffer[HostSample]
	prev      *OctetSample
	lastPoll  time.Time
	lastSeen  time.Time
	pollErr   error
	stopCh    chan struct{}
	refreshCh chan struct{}

	// notify is called after every poll cycle; report after every
	// failed one. Both are supplied by the Manager.
	notify func()
	report func(host string, err error)
}

func newPoller(h config.HostEntry, global int, pr *prefs.Prefs,
	notify func(), report func(string, error)) *Poller {
	return &Poller{
		url:       h.URL,
		interval:  h.PollInterval(global),
		pr:        pr,
		history:   NewRingBuffer[HostSample](historyDepth),
		stopCh:    make(chan struct{}),
		refreshCh: make(chan struct{}, 1),
		notify:    notify,
		report:    report,
	}
}

// Run polls immediately, then on every tick of the host's interval. It
// blocks until Stop is called.
func (p *Poller) Run() {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll()
	for {
		select {
		case <-ticker.C:
			p.poll()
		case <-p.refreshCh:
			p.poll()
			ticker.Reset(p.interval)
		case <-p.stopCh:
			p.cleanup()
			return
		}
	}
}

// poll performs one collection cycle against the host.
func (p *Poller) poll() {
	client, err := p.getOrConnect()
	if err != nil {
		p.fail(err)
		return
	}

	sample, oct, err := client.Collect()
	if err != nil {
		p.fail(err)
		return
	}

	p.mu.Lock()
	if p.prev != nil && sample.HasNet {
		in, out, rerr := NetRate(*p.prev, oct)
		switch {
		case rerr == nil:
			sample.NetInBps, sample.NetOutBps = in, out
		case errors.Is(rerr, ErrCounterWrap):
			// First sample after a wrap has no usable rate.
			sample.HasNet = false
		}
	}
	if sample.HasNet {
		p.prev = &oct
	} else {
		p.prev = nil
		if oct.InOctets > 0 || oct.OutOctets > 0 {
			p.prev = &oct
		}
	}
	p.history.Add(sample)
	p.lastPoll = sample.Timestamp
	p.lastSeen = sample.Timestamp
	p.pollErr = nil
	p.mu.Unlock()

	p.notify()
}

func (p *Poller) fail(err error) {
	p.mu.Lock()
	p.lastPoll = time.Now()
	p.pollErr = err
	p.mu.Unlock()
	p.report(p.url, err)
	p.notify()
}

func (p *Poller) getOrConnect() (*Client, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		return p.client, nil
	}
	client, err := NewClient(p.url, p.pr, 5*time.Second)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(); err != nil {
		return nil, err
	}
	p.client = client
	return client, nil
}

// stats returns a copy of the poller's current state.
func (p *Poller) stats() HostStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return HostStats{
		URL:       p.url,
		Interval:  p.interval,
		History:   p.history,
		LastPoll:  p.lastPoll,
		LastSeen:  p.lastSeen,
		PollError: p.pollErr,
	}
}

// Refresh nudges the polling loop to poll now instead of waiting for the
// next tick.
func (p *Poller) Refresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

// Stop signals the polling loop to exit.
func (p *Poller) Stop() {
	close(p.stopCh)
}

func (p *Poller) cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client != nil {
		p.client.Close()
		p.client = nil
	}
}

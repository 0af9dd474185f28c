package engine

import "time"

// LinkState is the state of one network interface on a monitored host,
// drawn by the layout's link box.
type LinkState struct {
	Name string
	Addr string
	Up   bool
}

// HostSample is one poll's worth of metrics from a single host. Fields a
// host's agent does not expose stay at their zero value with the matching
// Has flag unset.
type HostSample struct {
	Timestamp time.Time
	CPUPct    float64 // average processor load, percent
	MemPct    float64 // physical memory in use, percent
	DiscPct   float64 // fullest fixed disk, percent
	NetInBps  float64 // aggregate inbound rate, bits/sec
	NetOutBps float64 // aggregate outbound rate, bits/sec
	Procs     int     // running process count
	ProcsPct  float64 // process table in use, percent
	Files     int     // open file/descriptor count, where exposed
	Links     []LinkState
	Uptime    time.Duration

	HasCPU   bool
	HasMem   bool
	HasDisc  bool
	HasNet   bool
	HasProcs bool
	HasFiles bool
}

// HostStats is the accumulated state for a single monitored host.
type HostStats struct {
	URL       string
	Interval  time.Duration
	History   *RingBuffer[HostSample]
	LastPoll  time.Time
	LastSeen  time.Time // last successful poll
	PollError error
}

// Snapshot is a point-in-time view of every monitored host, in the
// display order the configuration declared them.
type Snapshot struct {
	Hosts    []HostStats
	LastPoll time.Time
	Errors   []PollError
}

// PollError is one entry in the engine's error log, shown on the
// layout's errlog lines.
type PollError struct {
	Time time.Time
	Host string
	Err  error
}

// Event is emitted to subscribers after any host completes a poll cycle.
type Event struct {
	Host     string
	Snapshot *Snapshot
}

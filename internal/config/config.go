// Package config implements the slant monitor configuration language: a
// small whitespace-separated statement language naming the hosts to poll
// and, optionally, the dashboard layout used to draw them.
package config

import "time"

// Polling interval bounds, in seconds.
const (
	DefaultWaittime = 60
	MinWaittime     = 15
)

// Config is the parsed monitor configuration.
type Config struct {
	// Waittime is the global poll interval in seconds.
	Waittime int
	// Hosts lists the monitored hosts in declaration order. The order is
	// meaningful: it is the display order on the dashboard.
	Hosts []HostEntry
	// Layout is the dashboard layout, or nil when the configuration has
	// none and the default applies.
	Layout *Layout
}

// HostEntry is a single monitored host.
type HostEntry struct {
	URL string
	// Waittime overrides the global poll interval for this host.
	// Zero means inherit Config.Waittime.
	Waittime int
}

// PollInterval returns the effective poll interval for the host given the
// global waittime.
func (h HostEntry) PollInterval(global int) time.Duration {
	if h.Waittime > 0 {
		return time.Duration(h.Waittime) * time.Second
	}
	return time.Duration(global) * time.Second
}

// Layout describes the dashboard: whether a header line is drawn, how many
// error-log lines are reserved, and the widget boxes in drawing order.
type Layout struct {
	Header bool
	Errlog int
	Boxes  []DrawBox
}

// Category identifies the metric family a box draws.
type Category int

const (
	CatCPU Category = iota
	CatMem
	CatNet
	CatDisc
	CatLink
	CatHost
	CatProcs
	CatRProcs
	CatFiles
)

func (c Category) String() string {
	switch c {
	case CatCPU:
		return "cpu"
	case CatMem:
		return "mem"
	case CatNet:
		return "net"
	case CatDisc:
		return "disc"
	case CatLink:
		return "link"
	case CatHost:
		return "host"
	case CatProcs:
		return "nprocs"
	case CatRProcs:
		return "rprocs"
	case CatFiles:
		return "nfiles"
	}
	return "unknown"
}

// Arg is a display option set on a box. Which args are legal depends on
// the box category; see the per-category vocabularies in parser.go.
type Arg uint

const (
	ArgQminBars Arg = 1 << iota
	ArgQmin
	ArgMin
	ArgHour
	ArgDay
	ArgWeek
	ArgYear
	ArgIP
	ArgState
	ArgAccess
)

// DrawBox is one widget definition inside a layout.
type DrawBox struct {
	Cat  Category
	Args Arg
}

// Has reports whether the box has the given arg set.
func (b DrawBox) Has(a Arg) bool { return b.Args&a != 0 }

// New returns a Config with defaults applied and no hosts.
func New() *Config {
	return &Config{Waittime: DefaultWaittime}
}

// FromHosts builds a Config directly from a host list, bypassing the
// configuration language. Each host inherits the global waittime and no
// layout is set. An empty list yields an all-defaults Config.
func FromHosts(urls []string) *Config {
	cfg := New()
	for _, u := range urls {
		cfg.Hosts = append(cfg.Hosts, HostEntry{URL: u})
	}
	return cfg
}

// DefaultLayout is the layout drawn when the configuration has none.
func DefaultLayout() *Layout {
	return &Layout{
		Header: true,
		Boxes: []DrawBox{
			{Cat: CatHost, Args: ArgAccess},
			{Cat: CatCPU, Args: ArgQmin | ArgHour},
			{Cat: CatMem, Args: ArgQmin | ArgHour},
			{Cat: CatProcs, Args: ArgQmin},
			{Cat: CatNet, Args: ArgQmin},
			{Cat: CatDisc, Args: ArgQmin},
			{Cat: CatLink, Args: ArgIP | ArgState | ArgAccess},
		},
	}
}

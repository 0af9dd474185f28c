package engine

import (
	"errors"
	"time"
)

// ErrCounterWrap indicates that an SNMP octet counter has wrapped around
// or the agent restarted between polls.
var ErrCounterWrap = errors.New("counter wrap detected")

// OctetSample holds the host-wide raw octet counters at a point in time,
// summed across all interfaces.
type OctetSample struct {
	InOctets  uint64
	OutOctets uint64
	Timestamp time.Time
}

// NetRate computes inbound and outbound bit rates between two octet
// samples. Returns ErrCounterWrap if either counter decreased.
func NetRate(prev, curr OctetSample) (inBps, outBps float64, err error) {
	elapsed := curr.Timestamp.Sub(prev.Timestamp).Seconds()
	if elapsed <= 0 {
		return 0, 0, errors.New("zero or negative elapsed time")
	}
	if curr.InOctets < prev.InOctets || curr.OutOctets < prev.OutOctets {
		return 0, 0, ErrCounterWrap
	}
	inBps = float64(curr.InOctets-prev.InOctets) * 8 / elapsed
	outBps = float64(curr.OutOctets-prev.OutOctets) * 8 / elapsed
	return inBps, outBps, nil
}

// UsedPct converts a used/total pair into a percentage, clamped to 100.
// A zero total yields zero rather than a division failure; agents report
// zero-sized storage entries for pseudo devices.
func UsedPct(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	pct := float64(used) / float64(total) * 100
	if pct > 100 {
		pct = 100
	}
	return pct
}

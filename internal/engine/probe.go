package engine

import (
	"fmt"
	"time"

	"github.com/tonhe/slant/internal/prefs"
)

// ProbeResult describes which metric families a host's SNMP agent
// exposes, so a user can tell which layout boxes will have data.
type ProbeResult struct {
	Host    string
	SysName string
	SysDesc string
	Uptime  time.Duration
	CPU     bool
	Mem     bool
	Disc    bool
	Net     bool
	Procs   bool
	Links   []LinkState
}

const (
	oidSysDescr = "1.3.6.1.2.1.1.1.0"
	oidSysName  = "1.3.6.1.2.1.1.5.0"
)

// Probe performs a one-shot capability check against host. It is used by
// the discover subcommand, not the polling loop.
func Probe(host string, p *prefs.Prefs) (*ProbeResult, error) {
	client, err := NewClient(host, p, 10*time.Second)
	if err != nil {
		return nil, err
	}
	if err := client.Connect(); err != nil {
		return nil, fmt.Errorf("connect to %s: %w", host, err)
	}
	defer client.Close()

	res := &ProbeResult{Host: host}

	vals, err := client.snmp.Get([]string{oidSysDescr, oidSysName})
	if err != nil {
		return nil, fmt.Errorf("probe %s: %w", host, err)
	}
	for _, v := range vals.Variables {
		b, ok := v.Value.([]byte)
		if !ok {
			continue
		}
		switch v.Name {
		case "." + oidSysDescr, oidSysDescr:
			res.SysDesc = string(b)
		case "." + oidSysName, oidSysName:
			res.SysName = string(b)
		}
	}
	if up, err := client.getUptime(); err == nil {
		res.Uptime = up
	}

	sample, _, err := client.Collect()
	if err != nil {
		return res, nil
	}
	res.CPU = sample.HasCPU
	res.Mem = sample.HasMem
	res.Disc = sample.HasDisc
	res.Net = sample.HasNet
	res.Procs = sample.HasProcs
	res.Links = sample.Links
	return res, nil
}

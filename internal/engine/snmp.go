package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/gosnmp/gosnmp"
	"github.com/tonhe/slant/internal/prefs"
)

// OIDs for the host metrics the dashboard boxes draw. CPU, memory, disk,
// and process figures come from HOST-RESOURCES-MIB; network figures from
// IF-MIB.
const (
	OIDSysUpTime          = "1.3.6.1.2.1.1.3.0"
	OIDhrProcessorLoad    = "1.3.6.1.2.1.25.3.3.1.2"
	OIDhrStorageType      = "1.3.6.1.2.1.25.2.3.1.2"
	OIDhrStorageAllocUnit = "1.3.6.1.2.1.25.2.3.1.4"
	OIDhrStorageSize      = "1.3.6.1.2.1.25.2.3.1.5"
	OIDhrStorageUsed      = "1.3.6.1.2.1.25.2.3.1.6"
	OIDhrSystemProcesses  = "1.3.6.1.2.1.25.1.6.0"
	OIDhrSystemMaxProc    = "1.3.6.1.2.1.25.1.7.0"
	OIDifDescr            = "1.3.6.1.2.1.2.2.1.2"
	OIDifOperStatus       = "1.3.6.1.2.1.2.2.1.8"
	OIDifHCInOctets       = "1.3.6.1.2.1.31.1.1.1.6"
	OIDifHCOutOctets      = "1.3.6.1.2.1.31.1.1.1.10"
	OIDipAdEntIfIndex     = "1.3.6.1.2.1.4.20.1.2"
)

// Storage type OIDs distinguishing RAM from fixed disks in hrStorageTable.
const (
	storageTypeRAM  = "1.3.6.1.2.1.25.2.1.2"
	storageTypeDisk = "1.3.6.1.2.1.25.2.1.4"
)

// Client wraps a gosnmp connection to a single monitored host.
type Client struct {
	snmp *gosnmp.GoSNMP
}

// NewClient builds an SNMP client for host using the credentials from the
// user preferences.
func NewClient(host string, p *prefs.Prefs, timeout time.Duration) (*Client, error) {
	port := p.SNMPPort
	if port == 0 {
		port = 161
	}
	c := &gosnmp.GoSNMP{
		Target:    host,
		Port:      uint16(port),
		Community: p.Community,
		Timeout:   timeout,
		Retries:   2,
	}
	switch p.SNMPVersion {
	case "1":
		c.Version = gosnmp.Version1
	case "", "2c":
		c.Version = gosnmp.Version2c
	default:
		return nil, fmt.Errorf("unsupported SNMP version: %s", p.SNMPVersion)
	}
	return &Client{snmp: c}, nil
}

// Connect opens the underlying UDP socket.
func (c *Client) Connect() error { return c.snmp.Connect() }

// Close releases the underlying socket.
func (c *Client) Close() {
	if c.snmp.Conn != nil {
		c.snmp.Conn.Close()
	}
}

// Collect performs one poll of the host and returns the metric sample
// (without network rates, which need a previous sample to compute) plus
// the raw octet counters for the rate calculation.
func (c *Client) Collect() (HostSample, OctetSample, error) {
	now := time.Now()
	s := HostSample{Timestamp: now}
	oct := OctetSample{Timestamp: now}

	if up, err := c.getUptime(); err == nil {
		s.Uptime = up
	}
	if pct, ok := c.collectCPU(); ok {
		s.CPUPct, s.HasCPU = pct, true
	}
	c.collectStorage(&s)
	c.collectProcs(&s)
	c.collectLinks(&s)

	in, out, ok := c.collectOctets()
	if ok {
		oct.InOctets, oct.OutOctets = in, out
		s.HasNet = true
	}

	// A host that answered nothing at all is down; report the failure
	// rather than an empty sample.
	if !s.HasCPU && !s.HasMem && !s.HasProcs && !s.HasNet {
		return s, oct, fmt.Errorf("%s: no response", c.snmp.Target)
	}
	return s, oct, nil
}

func (c *Client) getUptime() (time.Duration, error) {
	res, err := c.snmp.Get([]string{OIDSysUpTime})
	if err != nil || len(res.Variables) == 0 {
		return 0, fmt.Errorf("sysUpTime: %w", err)
	}
	ticks := gosnmp.ToBigInt(res.Variables[0].Value).Int64()
	return time.Duration(ticks) * 10 * time.Millisecond, nil
}

// collectCPU averages hrProcessorLoad over all processors.
func (c *Client) collectCPU() (float64, bool) {
	var sum, n int64
	c.walk(OIDhrProcessorLoad, func(idx int, pdu gosnmp.SnmpPDU) {
		sum += gosnmp.ToBigInt(pdu.Value).Int64()
		n++
	})
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}

// collectStorage walks hrStorageTable and fills memory (RAM entry) and
// disk (fullest fixed disk) usage percentages.
func (c *Client) collectStorage(s *HostSample) {
	types := map[int]string{}
	sizes := map[int]uint64{}
	useds := map[int]uint64{}

	c.walk(OIDhrStorageType, func(idx int, pdu gosnmp.SnmpPDU) {
		if oid, ok := pdu.Value.(string); ok {
			types[idx] = strings.TrimPrefix(oid, ".")
		}
	})
	c.walk(OIDhrStorageSize, func(idx int, pdu gosnmp.SnmpPDU) {
		sizes[idx] = gosnmp.ToBigInt(pdu.Value).Uint64()
	})
	c.walk(OIDhrStorageUsed, func(idx int, pdu gosnmp.SnmpPDU) {
		useds[idx] = gosnmp.ToBigInt(pdu.Value).Uint64()
	})

	for idx, typ := range types {
		pct := UsedPct(useds[idx], sizes[idx])
		switch typ {
		case storageTypeRAM:
			s.MemPct, s.HasMem = pct, true
		case storageTypeDisk:
			if !s.HasDisc || pct > s.DiscPct {
				s.DiscPct = pct
			}
			s.HasDisc = true
		}
	}
}

func (c *Client) collectProcs(s *HostSample) {
	res, err := c.snmp.Get([]string{OIDhrSystemProcesses, OIDhrSystemMaxProc})
	if err != nil {
		return
	}
	var procs, maxProcs int64
	for _, v := range res.Variables {
		if v.Type == gosnmp.NoSuchObject || v.Type == gosnmp.NoSuchInstance {
			continue
		}
		switch {
		case strings.HasSuffix(v.Name, OIDhrSystemProcesses), v.Name == "."+OIDhrSystemProcesses:
			procs = gosnmp.ToBigInt(v.Value).Int64()
			s.HasProcs = true
		case strings.HasSuffix(v.Name, OIDhrSystemMaxProc), v.Name == "."+OIDhrSystemMaxProc:
			maxProcs = gosnmp.ToBigInt(v.Value).Int64()
		}
	}
	s.Procs = int(procs)
	if maxProcs > 0 {
		s.ProcsPct = UsedPct(uint64(procs), uint64(maxProcs))
	}
}

// collectLinks builds the per-interface link states for the link box:
// name, operational status, and any IPv4 address bound to the interface.
func (c *Client) collectLinks(s *HostSample) {
	names := map[int]string{}
	ups := map[int]bool{}
	addrs := map[int]string{}

	c.walk(OIDifDescr, func(idx int, pdu gosnmp.SnmpPDU) {
		if b, ok := pdu.Value.([]byte); ok {
			names[idx] = string(b)
		}
	})
	if len(names) == 0 {
		return
	}
	c.walk(OIDifOperStatus, func(idx int, pdu gosnmp.SnmpPDU) {
		ups[idx] = gosnmp.ToBigInt(pdu.Value).Int64() == 1
	})
	// ipAdEntIfIndex is indexed by address, valued by ifIndex.
	walkFn := c.snmp.BulkWalk
	if c.snmp.Version == gosnmp.Version1 {
		walkFn = c.snmp.Walk
	}
	_ = walkFn(OIDipAdEntIfIndex, func(pdu gosnmp.SnmpPDU) error {
		addr := strings.TrimPrefix(pdu.Name, "."+OIDipAdEntIfIndex+".")
		idx := int(gosnmp.ToBigInt(pdu.Value).Int64())
		if _, ok := addrs[idx]; !ok {
			addrs[idx] = addr
		}
		return nil
	})

	idxs := make([]int, 0, len(names))
	for idx := range names {
		idxs = append(idxs, idx)
	}
	sort.Ints(idxs)
	for _, idx := range idxs {
		s.Links = append(s.Links, LinkState{
			Name: names[idx],
			Addr: addrs[idx],
			Up:   ups[idx],
		})
	}
}

// collectOctets sums HC octet counters across all interfaces.
func (c *Client) collectOctets() (in, out uint64, ok bool) {
	c.walk(OIDifHCInOctets, func(idx int, pdu gosnmp.SnmpPDU) {
		in += gosnmp.ToBigInt(pdu.Value).Uint64()
		ok = true
	})
	c.walk(OIDifHCOutOctets, func(idx int, pdu gosnmp.SnmpPDU) {
		out += gosnmp.ToBigInt(pdu.Value).Uint64()
	})
	return in, out, ok
}

// walk walks oid, handing each PDU to handler along with the index parsed
// from the last OID component. GetBulk needs v2c, so v1 gets a plain walk.
func (c *Client) walk(oid string, handler func(int, gosnmp.SnmpPDU)) {
	walkFn := c.snmp.BulkWalk
	if c.snmp.Version == gosnmp.Version1 {
		walkFn = c.snmp.Walk
	}
	_ = walkFn(oid, func(pdu gosnmp.SnmpPDU) error {
		parts := strings.Split(pdu.Name, ".")
		if len(parts) == 0 {
			return nil
		}
		idx, err := strconv.Atoi(parts[len(parts)-1])
		if err != nil {
			return nil
		}
		handler(idx, pdu)
		return nil
	})
}

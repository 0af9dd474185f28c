package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/tonhe/slant/internal/engine"
)

func discoverCmd(args []string) {
	fs := flag.NewFlagSet("discover", flag.ExitOnError)
	port := fs.Int("port", 0, "SNMP port (default from preferences)")
	community := fs.String("community", "", "SNMP community (default from preferences)")

	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: slant discover [--port PORT] [--community NAME] HOST")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: HOST argument is required")
		fs.Usage()
		os.Exit(1)
	}

	host := fs.Arg(0)
	p := loadOrDefaultPrefs()
	if *port > 0 {
		p.SNMPPort = *port
	}
	if *community != "" {
		p.Community = *community
	}

	fmt.Fprintf(os.Stderr, "Probing %s...\n", host)

	res, err := engine.Probe(host, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error probing %s: %v\n", host, err)
		os.Exit(1)
	}

	if res.SysName != "" {
		fmt.Printf("Name:     %s\n", res.SysName)
	}
	if res.SysDesc != "" {
		fmt.Printf("System:   %s\n", truncate(res.SysDesc, 70))
	}
	if res.Uptime > 0 {
		fmt.Printf("Uptime:   %s\n", res.Uptime.Round(0))
	}

	fmt.Printf("Metrics:  %s\n", capabilityList(res))

	if len(res.Links) > 0 {
		fmt.Printf("\n%-20s  %-16s  %s\n", "Link", "Address", "State")
		for _, l := range res.Links {
			state := "down"
			if l.Up {
				state = "up"
			}
			addr := l.Addr
			if addr == "" {
				addr = "-"
			}
			fmt.Printf("%-20s  %-16s  %s\n", truncate(l.Name, 20), addr, state)
		}
	}
}

// capabilityList names the layout categories the probed host can feed.
func capabilityList(res *engine.ProbeResult) string {
	var caps []string
	if res.CPU {
		caps = append(caps, "cpu")
	}
	if res.Mem {
		caps = append(caps, "mem")
	}
	if res.Disc {
		caps = append(caps, "disc")
	}
	if res.Net {
		caps = append(caps, "net")
	}
	if res.Procs {
		caps = append(caps, "nprocs")
	}
	if len(res.Links) > 0 {
		caps = append(caps, "link")
	}
	if len(caps) == 0 {
		return "none"
	}
	out := caps[0]
	for _, c := range caps[1:] {
		out += " " + c
	}
	return out
}

// truncate shortens a string to the given max length, adding "..." if needed.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}

package cmd

import (
	"fmt"
	"os"

	"github.com/tonhe/slant/internal/config"
	"github.com/tonhe/slant/internal/prefs"
)

// checkCmd parses a monitor configuration and reports what it found,
// without starting the dashboard.
func checkCmd(args []string) {
	var path string
	if len(args) > 0 {
		path = args[0]
	} else {
		p := loadOrDefaultPrefs()
		var err error
		path, err = prefs.MonitorConfigPath(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Parse(path, buf)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s: ok\n", path)
	fmt.Printf("waittime: %ds\n", cfg.Waittime)
	fmt.Printf("hosts:    %d\n", len(cfg.Hosts))
	for _, h := range cfg.Hosts {
		if h.Waittime > 0 {
			fmt.Printf("  %s (waittime %ds)\n", h.URL, h.Waittime)
		} else {
			fmt.Printf("  %s\n", h.URL)
		}
	}
	if cfg.Layout == nil {
		fmt.Println("layout:   default")
		return
	}
	fmt.Printf("layout:   %d boxes", len(cfg.Layout.Boxes))
	if cfg.Layout.Header {
		fmt.Print(", header")
	}
	if cfg.Layout.Errlog > 0 {
		fmt.Printf(", errlog %d", cfg.Layout.Errlog)
	}
	fmt.Println()
	for _, b := range cfg.Layout.Boxes {
		fmt.Printf("  %s\n", b.Cat)
	}
}

package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tonhe/slant/cmd"
	"github.com/tonhe/slant/internal/config"
	"github.com/tonhe/slant/internal/engine"
	"github.com/tonhe/slant/internal/prefs"
	"github.com/tonhe/slant/tui"
	"golang.org/x/term"
)

func main() {
	args := os.Args[1:]
	if len(args) > 0 && cmd.IsSubcommand(args[0]) {
		cmd.Execute(args)
		return
	}

	themeFlag := flag.String("theme", "", "theme override")
	configFlag := flag.String("config", "", "monitor configuration file")
	flag.Parse()

	prefsPath, err := prefs.PrefsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	p, err := prefs.Load(prefsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading preferences: %v\n", err)
		os.Exit(1)
	}

	cfgPath := *configFlag
	if cfgPath == "" {
		cfgPath, err = prefs.MonitorConfigPath(p)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Hosts given on the command line override the configured server
	// list; the file's layout still applies.
	cfg, err := config.ParseFile(cfgPath, flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if len(cfg.Hosts) == 0 {
		fmt.Fprintln(os.Stderr, "No hosts to monitor.")
		fmt.Fprintf(os.Stderr, "Add a servers statement to %s or pass hosts on the command line.\n", cfgPath)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Standard output is not a terminal.")
		os.Exit(1)
	}

	mgr := engine.NewManager()
	if err := mgr.Start(cfg, p); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	themeName := p.Theme
	if *themeFlag != "" {
		themeName = *themeFlag
	}

	model := tui.NewAppModel(cfg, mgr, themeName)
	prog := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

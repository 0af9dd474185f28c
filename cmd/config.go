package cmd

import (
	"fmt"
	"os"

	"github.com/tonhe/slant/internal/prefs"
	"github.com/tonhe/slant/tui/styles"
)

func configCmd(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: slant config <path|file|theme|example>")
		os.Exit(1)
	}

	switch args[0] {
	case "path":
		configPath()
	case "theme":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: slant config theme NAME")
			os.Exit(1)
		}
		configSetTheme(args[1])
	case "file":
		if len(args) < 2 {
			fmt.Fprintln(os.Stderr, "Usage: slant config file PATH")
			os.Exit(1)
		}
		configSetFile(args[1])
	case "example":
		configExample()
	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "Usage: slant config <path|file|theme|example>")
		os.Exit(1)
	}
}

func configPath() {
	dir, err := prefs.ConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(dir)
}

func configSetTheme(name string) {
	if styles.GetThemeByName(name) == nil {
		fmt.Fprintf(os.Stderr, "Error: unknown theme %q\n", name)
		fmt.Fprintln(os.Stderr, "Run 'slant themes' to see available themes.")
		os.Exit(1)
	}

	p := loadOrDefaultPrefs()
	p.Theme = name
	savePrefs(p)

	fmt.Printf("Default theme set to %q.\n", name)
}

func configSetFile(path string) {
	p := loadOrDefaultPrefs()
	p.ConfigPath = path
	savePrefs(p)

	fmt.Printf("Monitor configuration path set to %q.\n", path)
}

func configExample() {
	fmt.Print(`# Poll every host once a minute.
waittime 60 ;

# Hosts to monitor, in display order. The block overrides the poll
# interval for the hosts of this statement only.
servers gateway.example.com db1.example.com { waittime 30 ; } ;
servers web1.example.com web2.example.com ;

layout {
	header ;
	errlog 3 ;
	host access ;
	cpu qmin_bars qmin hour day ;
	mem qmin hour ;
	nprocs qmin ;
	net qmin hour ;
	disc qmin ;
	link ip state access ;
} ;
`)
}

func themesCmd() {
	for _, name := range styles.ListThemes() {
		fmt.Println(name)
	}
}

// loadOrDefaultPrefs loads the preferences from disk, falling back to
// defaults.
func loadOrDefaultPrefs() *prefs.Prefs {
	path, err := prefs.PrefsPath()
	if err != nil {
		return prefs.Default()
	}
	p, err := prefs.Load(path)
	if err != nil {
		return prefs.Default()
	}
	return p
}

// savePrefs writes the preferences to disk, creating directories as needed.
func savePrefs(p *prefs.Prefs) {
	if err := prefs.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating config directories: %v\n", err)
		os.Exit(1)
	}

	path, err := prefs.PrefsPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := prefs.Save(p, path); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving preferences: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/1broseidon/remonitor/internal/config"
	"github.com/1broseidon/remonitor/internal/paths"
	"github.com/1broseidon/remonitor/internal/placement"
	"github.com/1broseidon/remonitor/internal/platform"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

type monitorJSON struct {
	Index   int    `json:"index"`
	Handle  uint32 `json:"handle"`
	Name    string `json:"name"`
	X       int    `json:"x"`
	Y       int    `json:"y"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Primary bool   `json:"primary"`
}

type placementJSON struct {
	Path    string                     `json:"path"`
	Saved   bool                       `json:"saved"`
	Current *placement.PlacementConfig `json:"placement,omitempty"`
}

// wantJSON reports whether output should be JSON: when forced, or when stdout
// is not a terminal.
func wantJSON(forced bool) bool {
	return forced || !term.IsTerminal(int(os.Stdout.Fd()))
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func runShow(args []string) int {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var opts commonOptions
	opts.register(fs, false)
	asJSON := fs.Bool("json", false, "Output JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: remonitor show [--json] [--state PATH]")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := opts.load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	store, err := newStore(cfg, newLogger(cfg))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	saved, ok := store.Load()
	if wantJSON(*asJSON) {
		out := placementJSON{Path: store.Path(), Saved: ok}
		if ok {
			out.Current = &saved
		}
		if err := writeJSON(os.Stdout, out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	fmt.Printf("path:          %s\n", store.Path())
	if !ok {
		fmt.Println("no saved placement")
		return 0
	}
	fmt.Printf("monitor_index: %d\n", saved.MonitorIndex)
	fmt.Printf("fullscreen:    %v\n", saved.Fullscreen)
	return 0
}

func runMonitors(args []string) int {
	fs := flag.NewFlagSet("monitors", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	display := fs.String("display", "", "X display (default: $DISPLAY)")
	asJSON := fs.Bool("json", false, "Output JSON")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: remonitor monitors [--json] [--display DISPLAY]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "List monitors in the order saved monitor indexes refer to.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	host, err := platform.NewHost(*display, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect to display: %v\n", err)
		return 1
	}
	defer host.Disconnect()

	displays, err := host.Displays()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}

	if wantJSON(*asJSON) {
		out := make([]monitorJSON, 0, len(displays))
		for _, d := range displays {
			out = append(out, monitorJSON{
				Index:   d.Index,
				Handle:  uint32(d.ID),
				Name:    d.Name,
				X:       d.Bounds.X,
				Y:       d.Bounds.Y,
				Width:   d.Bounds.Width,
				Height:  d.Bounds.Height,
				Primary: d.Primary,
			})
		}
		if err := writeJSON(os.Stdout, out); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		return 0
	}

	if len(displays) == 0 {
		fmt.Println("no monitors")
		return 0
	}
	for _, d := range displays {
		primary := ""
		if d.Primary {
			primary = " (primary)"
		}
		fmt.Printf("%d  %-10s %dx%d+%d+%d%s\n", d.Index, d.Name, d.Bounds.Width, d.Bounds.Height, d.Bounds.X, d.Bounds.Y, primary)
	}
	return 0
}

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  remonitor config validate [--path PATH]")
		fmt.Fprintln(os.Stderr, "  remonitor config print [--path PATH] [--defaults]")
		fmt.Fprintln(os.Stderr, "  remonitor config path")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/remonitor/config.yaml)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		if _, err := loadConfigFile(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("path", "", "Config file path (default: ~/.config/remonitor/config.yaml)")
		printDefaults := fs.Bool("defaults", false, "Print built-in defaults (no files)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}

		cfg := config.DefaultConfig()
		if !*printDefaults {
			res, err := loadConfigFile(*path)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				return 1
			}
			if res.File != "" {
				fmt.Printf("# source: %s\n", res.File)
			}
			cfg = res.Config
		}
		data, err := yaml.Marshal(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	case "path":
		settings, err := paths.SettingsPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		state, err := paths.PlacementPath()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Printf("config: %s\n", settings)
		fmt.Printf("state:  %s\n", state)
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config subcommand: %s\n", args[0])
		return 2
	}
}

func loadConfigFile(path string) (*config.LoadResult, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFromPath(path)
}

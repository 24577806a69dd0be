package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "run":
		os.Exit(runRun(os.Args[2:]))
	case "restore":
		os.Exit(runRestore(os.Args[2:]))
	case "capture":
		os.Exit(runCapture(os.Args[2:]))
	case "show":
		os.Exit(runShow(os.Args[2:]))
	case "monitors":
		os.Exit(runMonitors(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: remonitor <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  run                 Restore placement, then save it again on SIGINT/SIGTERM")
	fmt.Fprintln(w, "  restore             Move the window to its saved monitor")
	fmt.Fprintln(w, "  capture             Save the window's current monitor and fullscreen state")
	fmt.Fprintln(w, "  show                Print the saved placement")
	fmt.Fprintln(w, "  monitors            List monitors in enumeration order")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate configuration")
	fmt.Fprintln(w, "  config print        Print effective configuration")
	fmt.Fprintln(w, "  config path         Print configuration and state file paths")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'remonitor <command> --help' for command-specific options.")
}

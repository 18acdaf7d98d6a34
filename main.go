package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/atomicstack/tmenu/internal/app"
	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/atomicstack/tmenu/internal/config"
	"github.com/atomicstack/tmenu/internal/logging"
	"github.com/atomicstack/tmenu/internal/logging/events"
	"golang.org/x/term"
)

const (
	exitOK          = 0
	exitFailure     = 1
	exitConfig      = 2
	exitScanFailure = 3
	exitRunning     = 4
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(exitConfig)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	traceStartup(runtimeCfg)

	code := exitOK
	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		code = exitCode(err)
	}
	events.App.Exit(code)
	os.Exit(code)
}

// exitCode maps a failure from app.Run to the process status.
func exitCode(err error) int {
	var scanErr *catalog.ScanError
	switch {
	case err == nil:
		return exitOK
	case errors.As(err, &scanErr):
		return exitScanFailure
	case errors.Is(err, app.ErrAlreadyRunning):
		return exitRunning
	default:
		return exitFailure
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags)+2)
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = logging.Path()
	payload := map[string]interface{}{
		"argv":       cfg.Args,
		"flags":      flags,
		"config":     cfg,
		"configFile": cfg.File,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttySize   `json:"detected,omitempty"`
	Probes   []ttyProbe `json:"probes"`
}

type ttySize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbe struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails reports which standard descriptors are terminals and the
// first size that could be read. The picker needs stdin to be one.
func collectTTYDetails() ttyDetails {
	files := []*os.File{os.Stdin, os.Stdout, os.Stderr}
	names := []string{"stdin", "stdout", "stderr"}
	details := ttyDetails{Probes: make([]ttyProbe, 0, len(files))}
	for i, f := range files {
		probe := ttyProbe{Name: names[i]}
		fd := int(f.Fd())
		if fd >= 0 && term.IsTerminal(fd) {
			probe.IsTerminal = true
			width, height, err := term.GetSize(fd)
			if err != nil {
				probe.Error = err.Error()
			} else {
				probe.Width, probe.Height = width, height
				if details.Detected == nil {
					details.Detected = &ttySize{Source: probe.Name, Width: width, Height: height}
				}
			}
		}
		details.Probes = append(details.Probes, probe)
	}
	return details
}

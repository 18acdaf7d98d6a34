package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/atomicstack/tmenu/internal/app"
	"github.com/atomicstack/tmenu/internal/catalog"
	"github.com/atomicstack/tmenu/internal/config"
)

func TestCollectTTYDetailsIncludesStandardDescriptors(t *testing.T) {
	info := collectTTYDetails()
	if len(info.Probes) != 3 {
		t.Fatalf("expected 3 probe entries, got %d", len(info.Probes))
	}
	expected := []string{"stdin", "stdout", "stderr"}
	for i, name := range expected {
		if info.Probes[i].Name != name {
			t.Fatalf("expected probe %d name %q, got %q", i, name, info.Probes[i].Name)
		}
	}
}

func TestStartupTracePayloadIncludesFlags(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Directories: []string{"/usr/share/applications"},
			Shell:       "sh",
			Width:       80,
			Height:      24,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		File: "/home/me/.config/tmenu/config.toml",
		Flags: map[string]string{
			"dir":    "/usr/share/applications",
			"shell":  "sh",
			"width":  "80",
			"height": "24",
		},
		Args: []string{"--width", "80"},
	}

	payload := startupTracePayload(cfg)

	flagsValue, ok := payload["flags"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected flags map in payload")
	}
	if flagsValue["dir"] != "/usr/share/applications" {
		t.Fatalf("expected dir flag, got %v", flagsValue["dir"])
	}
	if flagsValue["width"] != "80" {
		t.Fatalf("expected width 80, got %v", flagsValue["width"])
	}
	if flagsValue["trace"] != true {
		t.Fatalf("expected trace flag true, got %v", flagsValue["trace"])
	}
	if payload["configFile"] != cfg.File {
		t.Fatalf("expected config file %q, got %v", cfg.File, payload["configFile"])
	}
	if _, ok := payload["tty"].(ttyDetails); !ok {
		t.Fatalf("expected tty details in payload")
	}
	cfgValue, ok := payload["config"].(config.Config)
	if !ok {
		t.Fatalf("expected config in payload")
	}
	if cfgValue.App.Shell != "sh" || cfgValue.App.Width != 80 {
		t.Fatalf("expected app config carried through, got %#v", cfgValue.App)
	}
}

func TestExitCode(t *testing.T) {
	scan := &catalog.ScanError{Dir: "/nope", Err: errors.New("missing")}
	cases := []struct {
		err  error
		want int
	}{
		{nil, exitOK},
		{errors.New("boom"), exitFailure},
		{scan, exitScanFailure},
		{fmt.Errorf("build: %w", scan), exitScanFailure},
		{app.ErrAlreadyRunning, exitRunning},
	}
	for _, tc := range cases {
		if got := exitCode(tc.err); got != tc.want {
			t.Fatalf("exitCode(%v): expected %d, got %d", tc.err, tc.want, got)
		}
	}
}

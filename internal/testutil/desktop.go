// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteDesktop writes a .desktop file into dir whose [Desktop Entry] section
// holds body.
func WriteDesktop(t *testing.T, dir, file, body string) string {
	t.Helper()
	path := filepath.Join(dir, file)
	if err := os.WriteFile(path, []byte("[Desktop Entry]\n"+body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// DesktopDir creates a temporary directory holding one .desktop file per
// entry of files, keyed by file name.
func DesktopDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		WriteDesktop(t, dir, name, body)
	}
	return dir
}

// ScenarioDir holds a browser with a description, an entry hidden with
// NoDisplay and a plain terminal entry.
func ScenarioDir(t *testing.T) string {
	t.Helper()
	return DesktopDir(t, map[string]string{
		"firefox.desktop":  "Name=Firefox\nExec=firefox %u\nGenericName=Web Browser\n",
		"files.desktop":    "Name=Files\nExec=nautilus\nNoDisplay=true\n",
		"terminal.desktop": "Name=Terminal\nExec=xterm\n",
	})
}

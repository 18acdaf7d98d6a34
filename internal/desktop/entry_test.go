package desktop

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReadsDesktopEntryGroup(t *testing.T) {
	src := []byte(`# comment
[Desktop Entry]
Type=Application
Name=Firefox
Name[de]=Feuerfuchs
GenericName=Web Browser
Exec=firefox %u
Keywords=web;browser;internet;

[Desktop Action new-window]
Name=New Window
Exec=firefox --new-window %u
`)

	entry, err := Parse(src)
	require.NoError(t, err)
	assert.Equal(t, "Application", entry.Type)
	assert.Equal(t, "Firefox", entry.Name)
	assert.Equal(t, "Web Browser", entry.GenericName)
	assert.Equal(t, "firefox %u", entry.Exec)
	assert.True(t, entry.Visible())
	assert.NoError(t, entry.Validate())
}

func TestParseKeepsSemicolonsAndHashesInExec(t *testing.T) {
	entry, err := Parse([]byte("[Desktop Entry]\nName=Shell\nExec=sh -c 'echo a; echo b # c'\n"))
	require.NoError(t, err)
	assert.Equal(t, "sh -c 'echo a; echo b # c'", entry.Exec)
}

func TestParseNoDisplayOnlyHidesOnLiteralTrue(t *testing.T) {
	cases := map[string]bool{
		"NoDisplay=true\n":  false,
		"NoDisplay=false\n": true,
		"NoDisplay=TRUE\n":  true,
		"NoDisplay=yes\n":   true,
		"":                  true,
		"Hidden=true\n":     false,
	}
	for extra, visible := range cases {
		entry, err := Parse([]byte("[Desktop Entry]\nName=Files\nExec=nautilus\n" + extra))
		require.NoError(t, err, extra)
		assert.Equal(t, visible, entry.Visible(), "line %q", extra)
	}
}

func TestParseMissingSection(t *testing.T) {
	_, err := Parse([]byte("[Other]\nName=x\n"))
	assert.ErrorIs(t, err, ErrNoSection)
}

func TestValidateRequiresNameAndExec(t *testing.T) {
	assert.ErrorIs(t, Entry{Exec: "x"}.Validate(), ErrMissingField)
	assert.ErrorIs(t, Entry{Name: "x"}.Validate(), ErrMissingField)
	assert.NoError(t, Entry{Name: "x", Exec: "y"}.Validate())
}

func TestParseFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "term"+Suffix)
	require.NoError(t, os.WriteFile(path, []byte("[Desktop Entry]\nName=Terminal\nExec=xterm\n"), 0o644))

	entry, err := Parse(path)
	require.NoError(t, err)
	assert.Equal(t, "Terminal", entry.Name)
	assert.Empty(t, entry.GenericName)

	_, err = Parse(filepath.Join(t.TempDir(), "missing"+Suffix))
	assert.Error(t, err)
}

package terminal

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReleaseRunsRestoreOnce(t *testing.T) {
	calls := 0
	g := NewGuard(func() error {
		calls++
		return nil
	})
	require.NoError(t, g.Release())
	require.NoError(t, g.Release())
	assert.Equal(t, 1, calls)
}

func TestReleaseRepeatsFirstError(t *testing.T) {
	boom := errors.New("boom")
	g := NewGuard(func() error { return boom })
	assert.ErrorIs(t, g.Release(), boom)
	assert.ErrorIs(t, g.Release(), boom)
}

func TestReleaseRunsDuringPanic(t *testing.T) {
	restored := false
	func() {
		defer func() {
			r := recover()
			assert.Equal(t, "kaboom", r)
		}()
		g := NewGuard(func() error {
			restored = true
			return nil
		})
		defer g.Release()
		panic("kaboom")
	}()
	assert.True(t, restored)
}

func TestNilGuardIsSafe(t *testing.T) {
	var g *Guard
	assert.NoError(t, g.Release())
	assert.NoError(t, NewGuard(nil).Release())
}

func TestCaptureNonTerminalIsNoOp(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "input"))
	require.NoError(t, err)
	defer f.Close()

	var out bytes.Buffer
	g := Capture(f, &out)
	require.NoError(t, g.Release())
	assert.Empty(t, out.String())

	require.NoError(t, Capture(nil, &out).Release())
}

func TestResetSequenceRestoresScreenAndCursor(t *testing.T) {
	assert.Contains(t, resetSequence, "\x1b[?1049l")
	assert.Contains(t, resetSequence, "\x1b[?25h")
	assert.Contains(t, resetSequence, "\x1b[?1002l")
}

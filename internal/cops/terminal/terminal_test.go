package terminal_test

import (
	"image"
	"os"
	"testing"

	"github.com/pkg/term/termios"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/borkshop/kickball/internal/cops/terminal"
)

func TestTerminal_notATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "not-a-tty")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, terminal.IsTerminal(f.Fd()))

	term := terminal.New(f.Fd())
	assert.Error(t, term.SetRaw())
	assert.False(t, term.Raw())
	assert.Error(t, term.Restore())
	_, err = term.Bounds()
	assert.Error(t, err)
}

func TestTerminal_pty(t *testing.T) {
	leader, follower, err := termios.Pty()
	if err != nil {
		t.Skipf("no pseudo terminal available: %v", err)
	}
	defer leader.Close()
	defer follower.Close()

	term := terminal.New(follower.Fd())
	assert.True(t, terminal.IsTerminal(follower.Fd()))

	bounds, err := term.Bounds()
	require.NoError(t, err)
	assert.Equal(t, image.Point{}, bounds.Min)

	require.NoError(t, term.SetRaw())
	assert.True(t, term.Raw())
	require.NoError(t, term.Restore())
	assert.False(t, term.Raw())
}

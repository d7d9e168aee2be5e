package toast_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/toastkit/pkg/notice"
	"github.com/dmitrymomot/toastkit/pkg/toast"
)

func TestTerminalRenderer_Render(t *testing.T) {
	r := toast.NewTerminalRenderer(40)
	tt := toast.New(toast.KindError, "Build failed", "exit 1", toast.WithLifetime(time.Second)).Spawn("a", epoch, 0)

	out, err := r.Render(context.Background(), tt, notice.Handlers{ID: "a"})
	require.NoError(t, err)

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "Build failed")
	assert.Contains(t, out, "exit 1")
	assert.Contains(t, out, "╭")
	assert.NotContains(t, out, "paused")

	paused, err := r.Render(context.Background(), tt.Tick(500*time.Millisecond).Pause(), notice.Handlers{})
	require.NoError(t, err)
	assert.Contains(t, paused, "paused")
	assert.Contains(t, paused, "━━━━━")
}

func TestTerminalRenderer_Width(t *testing.T) {
	tt := toast.New(toast.KindInfo, "T", "B").Spawn("a", epoch, time.Second)

	narrow, err := toast.NewTerminalRenderer(0).Render(context.Background(), tt, notice.Handlers{})
	require.NoError(t, err)

	first := strings.Split(narrow, "\n")[0]
	assert.Equal(t, toast.DefaultTerminalWidth, lipgloss.Width(first))
}

func TestStack(t *testing.T) {
	assert.Empty(t, toast.Stack(nil))
	out := toast.Stack([]string{"a", "b"})
	assert.Equal(t, []string{"a", "b"}, strings.Split(out, "\n"))
}

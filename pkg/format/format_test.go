package format_test

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	. "github.com/grizzlydata/csa2grizzly/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestFprintf(t *testing.T) {
	t.Run("plain text when color is disabled", func(t *testing.T) {
		prev := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = prev }()

		var buf bytes.Buffer
		Fprintf(&buf, Error, "Unexpected error: %v\n", "boom")
		require.Equal(t, "Unexpected error: boom\n", buf.String())
	})

	t.Run("escape codes when color is enabled", func(t *testing.T) {
		prev := color.NoColor
		color.NoColor = false
		defer func() { color.NoColor = prev }()

		var buf bytes.Buffer
		Fprintf(&buf, Error, "boom")
		require.Contains(t, buf.String(), "\x1b[")
		require.Contains(t, buf.String(), "boom")
	})

	t.Run("unknown style falls back to plain", func(t *testing.T) {
		prev := color.NoColor
		color.NoColor = true
		defer func() { color.NoColor = prev }()

		var buf bytes.Buffer
		Fprintf(&buf, Style(42), "hello")
		require.Equal(t, "hello", buf.String())
	})
}

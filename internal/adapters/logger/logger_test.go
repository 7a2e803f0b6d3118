package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"

	"github.com/MarcelBraghetto/forge/internal/adapters/logger"
)

func TestLogger_WritesToConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New()
	l.SetOutput(&buf)

	l.Info("hello")
	l.Warn("careful")
	l.Error(zerr.New("boom"))

	out := buf.String()
	require.Contains(t, out, "hello")
	require.Contains(t, out, "careful")
	require.Contains(t, out, "boom")
}

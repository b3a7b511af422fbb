package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, log.DebugLevel, ParseLevel("debug"))
	require.Equal(t, log.WarnLevel, ParseLevel(" WARNING "))
	require.Equal(t, log.ErrorLevel, ParseLevel("error"))
	require.Equal(t, log.InfoLevel, ParseLevel("chatty"))
}

func TestNew_JSONFormatterWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, log.InfoLevel, true)

	l.Info("todo created", "id", "abc")
	l.Debug("hidden")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "todo created", entry["msg"])
	require.Equal(t, "abc", entry["id"])
	require.NotContains(t, buf.String(), "hidden")
}

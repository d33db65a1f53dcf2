package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"twopane/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugGating(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()

	SetDebug(false)
	Debug("hidden message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	Debug("visible message")
	assert.Contains(t, buf.String(), "visible message")
	SetDebug(false)
}

func TestStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("pane", "left")).Info("json message")

	var entry map[string]interface{}
	err := json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry)
	require.NoError(t, err)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "json message", entry["msg"])
	assert.Equal(t, "left", entry["pane"])
	assert.Contains(t, entry, "time")
}

func TestLogWithError(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()

	fileErr := errors.NewFileError("rename failed", "/mods/armor", errors.RenameConflict, nil)
	LogWithError(fileErr).Error("toggle failed")
	output := buf.String()
	assert.Contains(t, output, "toggle failed")
	assert.Contains(t, output, "rename failed: /mods/armor")
	assert.Contains(t, output, "path=/mods/armor")
	assert.Contains(t, output, fmt.Sprintf("error_kind=%d", errors.RenameConflict))
	buf.Reset()

	storeErr := errors.NewStoreError("write failed", "/tags.json", errors.PersistFailure, nil)
	LogWithError(storeErr).Error("persist failed")
	output = buf.String()
	assert.Contains(t, output, "store=/tags.json")
	assert.Contains(t, output, fmt.Sprintf("error_kind=%d", errors.PersistFailure))
}

func TestLogWithNilError(t *testing.T) {
	var buf bytes.Buffer
	originalLogger := logger
	Configure(WithOutput(&buf))
	defer func() { logger = originalLogger }()

	// Must not panic
	LogWithError(nil).Error("nil error test")
	output := buf.String()
	assert.Contains(t, output, "nil error test")
	assert.Contains(t, output, "error=\"<nil>\"")
}

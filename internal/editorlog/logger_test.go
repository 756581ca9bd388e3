package editorlog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelWarn, Output: &buf})

	log.Debug("should not appear", nil)
	log.Info("also not appear", nil)
	log.Warn("visible warning", map[string]any{"name": "crate"})

	out := buf.String()
	assert.NotContains(t, out, "should not appear")
	assert.NotContains(t, out, "also not appear")
	assert.Contains(t, out, "visible warning")
	assert.Contains(t, out, "name=crate")
}

func TestWithComponentAttachesFieldToEveryLine(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: LevelDebug, Output: &buf}).WithComponent("asset")

	log.Info("loaded", map[string]any{"bytes": 128})

	out := buf.String()
	assert.True(t, strings.Contains(out, "component=asset"))
	assert.True(t, strings.Contains(out, "bytes=128"))
}

func TestParseLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel("warning"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewReporter(t *testing.T) {
	t.Run("Should drop debug messages by default", func(t *testing.T) {
		var buf bytes.Buffer
		report := NewReporter(&buf, false)
		report.Debug("hidden message")
		report.Info("generated enum", "enum", "Color")
		out := buf.String()
		assert.NotContains(t, out, "hidden message")
		assert.Contains(t, out, "generated enum")
		assert.Contains(t, out, "enum=Color")
	})

	t.Run("Should write debug messages when enabled", func(t *testing.T) {
		var buf bytes.Buffer
		report := NewReporter(&buf, true)
		report.Debug("visible message", "line", 3)
		report.Warn("ignoring line")
		out := buf.String()
		assert.Contains(t, out, "visible message")
		assert.Contains(t, out, "line=3")
		assert.Contains(t, out, "ignoring line")
	})
}

func TestUnderRoot(t *testing.T) {
	assert.Equal(t, "/proj/enum_definitions.impl", underRoot("/proj", DefinitionsFile))
	assert.Equal(t, "/elsewhere/defs.impl", underRoot("/proj", "/elsewhere/defs.impl"))
}

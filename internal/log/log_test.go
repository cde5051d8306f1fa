package log_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/adrianhall/scssflat/internal/log"
	"github.com/stretchr/testify/assert"
)

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)

	log.SetLevel(log.LevelWarn)
	defer log.SetLevel(log.LevelInfo)

	log.Info("info %d", 1)
	log.Warn("warn %d", 2)
	log.Error("error %d", 3)

	out := buf.String()
	assert.False(t, strings.Contains(out, "info 1"))
	assert.True(t, strings.Contains(out, "warn 2"))
	assert.True(t, strings.Contains(out, "error 3"))
}

func TestLogPrefix(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(nil)

	log.SetLevel(log.LevelDebug)
	defer log.SetLevel(log.LevelInfo)

	log.Debug("at byte %d: %s", 12, "UnexpectedCharacter")
	assert.Contains(t, buf.String(), "[scssflat]")
	assert.Contains(t, buf.String(), "at byte 12: UnexpectedCharacter")
}

func TestGetLevel(t *testing.T) {
	log.SetLevel(log.LevelError)
	defer log.SetLevel(log.LevelInfo)
	assert.Equal(t, log.LevelError, log.GetLevel())
}

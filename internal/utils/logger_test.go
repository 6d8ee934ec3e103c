package utils

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Init(&buf, "warn")

	assert.Same(t, l, Logger())
	assert.Equal(t, log.WarnLevel, l.GetLevel())

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown", "round", 1)
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "round=1")
}

func TestInitBadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := Init(&buf, "loud")
	assert.Equal(t, log.InfoLevel, l.GetLevel())
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}

package logger

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestInit_SetsLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Init("debug", false)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())

	Init("warn", true)
	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	Init("chatty", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())

	Init("", false)
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

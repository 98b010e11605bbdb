package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
	}{
		{"empty disables", "", LevelNone},
		{"error", "error", LevelError},
		{"error uppercase", "ERROR", LevelError},
		{"info", "info", LevelInfo},
		{"info uppercase", "INFO", LevelInfo},
		{"debug", "debug", LevelDebug},
		{"debug uppercase", "DEBUG", LevelDebug},
		{"unknown disables", "verbose", LevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.input))
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvVar, "debug")
	assert.Equal(t, LevelDebug, FromEnv().Level())

	t.Setenv(EnvVar, "")
	assert.Equal(t, LevelNone, FromEnv().Level())
}

func TestNewLevel(t *testing.T) {
	assert.Equal(t, LevelInfo, New(LevelInfo).Level())
	assert.Equal(t, LevelNone, New(LevelNone).Level())
}

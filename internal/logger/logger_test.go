package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewNamed(t *testing.T) {
	tests := []struct {
		env       string
		debugging bool
	}{
		{env: "development", debugging: true},
		{env: "test", debugging: true},
		{env: "production", debugging: false},
		{env: "staging", debugging: false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			log, err := NewNamed(tt.env, "service-shareit")
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.Equal(t, tt.debugging, log.Core().Enabled(zapcore.DebugLevel))
		})
	}
}

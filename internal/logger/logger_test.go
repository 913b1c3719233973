// SPDX-License-Identifier: MIT
package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	for _, env := range []string{"prod", "local", "dev"} {
		l, err := NewLogger(env, "warn")
		require.NoError(t, err, env)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel), "%s: level override", env)
		assert.True(t, l.Core().Enabled(zapcore.ErrorLevel))
	}

	l, err := NewLogger("prod")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel), "production default is info")

	nop, err := NewLogger("test")
	require.NoError(t, err)
	assert.False(t, nop.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewLogger_Errors(t *testing.T) {
	_, err := NewLogger("staging")
	assert.Error(t, err)

	_, err = NewLogger("dev", "loud")
	assert.Error(t, err)
}

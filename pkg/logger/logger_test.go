package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFor("debug"))
	assert.Equal(t, zapcore.InfoLevel, levelFor("release"))
	assert.Equal(t, zapcore.InfoLevel, levelFor(""))
}

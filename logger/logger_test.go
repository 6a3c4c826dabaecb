package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}},
		{name: "console debug", cfg: Config{Level: "DEBUG", Format: "console"}},
		{name: "json warn", cfg: Config{Level: "warn", Format: "json"}},
		{name: "bad level", cfg: Config{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "xml"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestNamedWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewFromZap(zap.New(core)).Named("lookup").With(String("city", "Lima"))

	l.Debug("dropped")
	l.Error("failed", Error(errors.New("boom")), Int("attempt", 1))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "lookup", entry.LoggerName)
	assert.Equal(t, "failed", entry.Message)

	fields := entry.ContextMap()
	assert.Equal(t, "Lima", fields["city"])
	assert.Equal(t, "boom", fields["error"])
	assert.EqualValues(t, 1, fields["attempt"])
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestConfig_TrustHeaderEnabled(t *testing.T) {
	tests := []struct {
		name   string
		mode   string
		header bool
		want   bool
	}{
		{"test mode with flag", "test", true, true},
		{"test mode without flag", "test", false, false},
		{"release mode ignores flag", "release", true, false},
		{"debug mode ignores flag", "debug", true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Gin: GinConfig{Mode: tt.mode}, Auth: AuthConfig{TrustHeader: tt.header}}
			assert.Equal(t, tt.want, cfg.TrustHeaderEnabled())
		})
	}
}

func TestBookingConfig_Location(t *testing.T) {
	loc, err := BookingConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = BookingConfig{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestLoggerConfig_LogLevel(t *testing.T) {
	assert.Equal(t, logger.DebugLevel, LoggerConfig{Level: "debug"}.LogLevel())
	assert.Equal(t, logger.ErrorLevel, LoggerConfig{Level: "error"}.LogLevel())
	assert.Equal(t, logger.InfoLevel, LoggerConfig{Level: "unknown"}.LogLevel())
}

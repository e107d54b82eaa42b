package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Ivan200424/Voltyk/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]string{"": "INFO", "debug": "DEBUG", " WARN ": "WARN", "warning": "WARN", "error": "ERROR"} {
		lv, err := parseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, lv.Level().String(), in)
	}

	_, err := parseLevel("trace")
	assert.Error(t, err)
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, &config.LoggerConfig{Level: "info", Format: "json"})

	log.Debug("hidden")
	log.Info("schedule published", "telegram_id", "42")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "INFO", rec["level"])
	assert.Equal(t, "voltyk", rec["service"])
	assert.Equal(t, "42", rec["telegram_id"])
	assert.Regexp(t, `^logger_test\.go:\d+$`, rec["source"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestTokenRedacted(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, &config.LoggerConfig{Format: "text"})

	log.Error("send failed", "err", `Post "https://api.telegram.org/bot123:SECRET/sendMessage": timeout`)
	assert.NotContains(t, buf.String(), "SECRET")
	assert.Contains(t, buf.String(), "api.telegram.org/bot***/sendMessage")
}

func TestRedactToken(t *testing.T) {
	assert.Equal(t, "no url here", redactToken("no url here"))
	assert.Equal(t, "https://api.telegram.org/bot***", redactToken("https://api.telegram.org/bot123:abc"))
}

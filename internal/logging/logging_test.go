package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel(" debug ", zerolog.InfoLevel))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warning", zerolog.InfoLevel))
	assert.Equal(t, zerolog.Disabled, ParseLevel("off", zerolog.InfoLevel))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel("nonsense", zerolog.ErrorLevel))
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", JSON: true}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Int("task", 3).Msg("shown")

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "shown", line["message"])
	assert.Equal(t, float64(3), line["task"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug"}, &buf)

	log.Debug().Str("expr", "* * * * *").Msg("parsed rule")
	assert.Contains(t, buf.String(), "parsed rule")
	assert.Contains(t, buf.String(), "expr=")
}

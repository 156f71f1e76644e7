package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupWriter_JSON(t *testing.T) {
	prev := zlog.Logger
	defer func() {
		zlog.Logger = prev
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}()

	var buf bytes.Buffer
	SetupWriter(&buf, "warn", "json")

	zlog.Info().Msg("dropped")
	zlog.Warn().Str("order_id", "os-1").Msg("[order][usecase] kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "os-1", entry["order_id"])
	assert.Equal(t, "[order][usecase] kept", entry["message"])
}

func TestSetupWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	prev := zlog.Logger
	defer func() { zlog.Logger = prev }()

	var buf bytes.Buffer
	SetupWriter(&buf, "loud", "json")
	assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
}

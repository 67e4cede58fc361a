package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	apperrors "csv-flashcards/internal/errors"
	"csv-flashcards/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var events []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var event map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &event))
		events = append(events, event)
	}
	return events
}

func TestZerologAdapter_Fields(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("DeckService", "deck loaded", map[string]interface{}{"cards": 3})
	log.Error("DeckService", errors.New("boom"), map[string]interface{}{"file": "a.csv"})

	events := decodeLines(t, &buf)
	require.Len(t, events, 2)

	assert.Equal(t, "info", events[0]["level"])
	assert.Equal(t, "DeckService", events[0]["component"])
	assert.Equal(t, "deck loaded", events[0]["message"])
	assert.EqualValues(t, 3, events[0]["cards"])

	assert.Equal(t, "error", events[1]["level"])
	assert.Equal(t, "boom", events[1]["error"])
	assert.Equal(t, "a.csv", events[1]["file"])
}

func TestZerologAdapter_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, "warn", true)

	log.Debug("c", "hidden", nil)
	log.Info("c", "hidden", nil)
	log.Warning("c", "shown", nil)

	events := decodeLines(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "shown", events[0]["message"])
}

func TestZerologAdapter_With(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.InfoLevel).With(map[string]interface{}{"deck_id": "abc"})

	log.Info("c", "hello", nil)

	events := decodeLines(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, "abc", events[0]["deck_id"])
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel("warning"))
	assert.Equal(t, zerolog.ErrorLevel, logger.ParseLevel("error"))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("nonsense"))
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		logger.Nop().Error("c", errors.New("x"), nil)
	})
}

func TestZerologAdapter_AppErrorCode(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewZerolog(&buf, zerolog.InfoLevel)

	log.Error("MainController", apperrors.NewFileReadError("deck.csv", errors.New("stalled")), nil)

	events := decodeLines(t, &buf)
	require.Len(t, events, 1)
	assert.Equal(t, apperrors.ErrCodeFileRead, events[0]["error_code"])
	assert.Equal(t, "File Load Error", events[0]["message"])
}

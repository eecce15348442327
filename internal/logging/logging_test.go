// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	glog "github.com/goliatone/go-logger/glog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/presentation-formatter/pkg/types"
)

func TestNew(t *testing.T) {
	for _, format := range append([]string{""}, Formats...) {
		t.Run("format="+format, func(t *testing.T) {
			var buf bytes.Buffer
			log, err := New(types.LogConfig{Level: "info", Format: format}, "test", &buf)
			require.NoError(t, err)
			require.NotNil(t, log)

			log.Info("document converted", "sections", 2)
			assert.Contains(t, buf.String(), "document converted")
		})
	}
}

func TestNew_WritesToGivenWriter(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Level: "debug", Format: "json"}, "convert", &buf)
	require.NoError(t, err)

	log.Debug("resolved formats", "input", "json")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "debug", record["level"])
	assert.Equal(t, "resolved formats", record["msg"])
	assert.Equal(t, "convert", record["logger"])
	assert.Equal(t, "json", record["input"])
	assert.Contains(t, record, "ts")
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(types.LogConfig{Level: "warn", Format: "console"}, "", &buf)
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=warn")
}

func TestNew_UnsupportedFormat(t *testing.T) {
	_, err := New(types.LogConfig{Format: "xml"}, "test", &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported format "xml"`)
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelFor(""))
	assert.Equal(t, slog.LevelInfo, levelFor("loud"))
	assert.Equal(t, glog.LevelTrace, levelFor("trace"))
	assert.Equal(t, slog.LevelDebug, levelFor(" Debug "))
	assert.Equal(t, levelFor("warn"), levelFor("warning"))
	assert.Equal(t, slog.LevelError, levelFor("error"))
}

func TestNoOp(t *testing.T) {
	log := NoOp()
	log.Debug("ignored", "k", "v")
	log.Info("ignored")
	log.Warn("ignored")
	log.Error("ignored")
}

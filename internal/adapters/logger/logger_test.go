package logger_adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type recordedPost struct {
	tag  string
	data port.Fields
}

type fakeFluent struct {
	posts []recordedPost
}

func (f *fakeFluent) Post(tag string, message interface{}) error {
	f.posts = append(f.posts, recordedPost{tag: tag, data: message.(port.Fields)})
	return nil
}

func TestSlogAdapter_JSONOutputCarriesFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelDebug, IsJSON: true})

	logger.WithFields(port.Fields{"component": "test"}).Info("listing created", port.Fields{"listing_id": 7})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "listing created", line["msg"])
	assert.Equal(t, "test", line["component"])
	assert.EqualValues(t, 7, line["listing_id"])
}

func TestSlogAdapter_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(SlogConfig{Writer: &buf, Level: slog.LevelWarn, IsJSON: true})

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	assert.Zero(t, buf.Len())

	logger.Warn("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestFluentLoggerAdapter_FiltersByLevelAndMergesFields(t *testing.T) {
	client := &fakeFluent{}
	adapter, err := NewFluentLoggerAdapter(client, slog.LevelInfo)
	require.NoError(t, err)

	scoped := adapter.WithFields(port.Fields{"trace_id": "abc"})
	scoped.Debug("dropped", nil)
	scoped.Error("failed", errors.New("boom"), port.Fields{"listing_id": 1})

	require.Len(t, client.posts, 1)
	post := client.posts[0]
	assert.Equal(t, "error", post.tag)
	assert.Equal(t, "abc", post.data["trace_id"])
	assert.Equal(t, "boom", post.data["error"])
	assert.Equal(t, "failed", post.data["message"])
	assert.Equal(t, 1, post.data["listing_id"])
}

func TestFluentLoggerAdapter_RejectsNilClient(t *testing.T) {
	_, err := NewFluentLoggerAdapter(nil, nil)
	assert.Error(t, err)
}

func TestMultiLogger_FansOut(t *testing.T) {
	first, second := &fakeFluent{}, &fakeFluent{}
	a, _ := NewFluentLoggerAdapter(first, slog.LevelDebug)
	b, _ := NewFluentLoggerAdapter(second, slog.LevelDebug)

	multi, err := NewMultiloggerAdapter(a, b)
	require.NoError(t, err)

	multi.WithFields(port.Fields{"component": "app"}).Warn("careful", nil)

	require.Len(t, first.posts, 1)
	require.Len(t, second.posts, 1)
	assert.Equal(t, "app", second.posts[0].data["component"])
}

func TestMultiLogger_RequiresLoggers(t *testing.T) {
	_, err := NewMultiloggerAdapter()
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLogLevel("DEBUG"))
	assert.Equal(t, slog.LevelError, ParseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLogLevel("verbose"))
}

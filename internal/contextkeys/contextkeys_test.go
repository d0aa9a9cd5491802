package contextkeys

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/UA-classroom/db-l2-mo-hemnet/internal/core/port"
)

type stubLogger struct {
	port.LoggerPort
	name string
}

func TestLoggerFromContext_FallsBackToNoop(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)
	assert.NotPanics(t, func() {
		logger.WithFields(port.Fields{"k": "v"}).Info("ignored", nil)
	})
}

func TestLoggerFromContext_ReturnsStoredLogger(t *testing.T) {
	stored := &stubLogger{name: "request"}
	ctx := ContextWithLogger(context.Background(), stored)

	assert.Same(t, stored, LoggerFromContext(ctx))
}

func TestTraceID(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))

	ctx := ContextWithTraceID(context.Background(), "6f1f3c1e-8a4a-4d7b-9e59-1c0a2b7f6a11")
	assert.Equal(t, "6f1f3c1e-8a4a-4d7b-9e59-1c0a2b7f6a11", TraceIDFromContext(ctx))
}

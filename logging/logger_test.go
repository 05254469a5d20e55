package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogTrial(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelDebug)

	logger.LogTrial(3, 2, 4, true)
	assert.Contains(t, buf.String(), "trial completed")
	assert.Contains(t, buf.String(), "trial=3")
	assert.Contains(t, buf.String(), "hit=false")

	buf.Reset()
	logger.LogTrial(4, 2, 0, false)
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "lsh found no pair")
}

func TestLogLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelInfo)

	logger.LogRound(0, 10, 4, 12, 3, true)
	assert.Empty(t, buf.String())

	logger.LogExperiment(5, 80, 12.5, nil)
	assert.Contains(t, buf.String(), "experiment completed")
	assert.Contains(t, buf.String(), "hit_rate=80")

	buf.Reset()
	logger.LogExperiment(5, 0, 0, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")
	assert.Contains(t, buf.String(), "error=boom")
}

func TestWithTrial(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelDebug).WithTrial(7)

	logger.LogSearch(100, 32, 10, 4, 5, 321)
	assert.Contains(t, buf.String(), "trial=7")
	assert.Contains(t, buf.String(), "comparisons=321")
}

func TestNoopLogger(t *testing.T) {
	logger := NoopLogger()
	logger.LogExperiment(1, 0, 0, errors.New("ignored"))
	assert.False(t, logger.Enabled(context.Background(), slog.LevelError))
}

package logging_test

import (
	"bytes"
	"context"
	"testing"

	"log/slog"

	"github.com/m-mizutani/gt"
	"github.com/harsh2b/WellMate/pkg/utils/logging"
)

func TestLogger(t *testing.T) {
	t.Run("secret fields are masked", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON)
		logger.Info("hello",
			slog.String("secret_key", "xxx"),
			slog.String("normal_key", "aaa"),
		)

		gt.S(t, buf.String()).Contains("aaa").NotContains("xxx")
	})

	t.Run("level filter", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf, slog.LevelWarn, logging.FormatJSON)
		logger.Info("quiet please")
		logger.Warn("important")

		gt.S(t, buf.String()).Contains("important").NotContains("quiet please")
	})
}

func TestContextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, slog.LevelInfo, logging.FormatJSON).With("request_id", "req-1")

	ctx := logging.With(context.Background(), logger)
	logging.From(ctx).Info("hello")

	gt.S(t, buf.String()).Contains("req-1")
}

func TestContextWithoutLogger(t *testing.T) {
	// Falls back to the default logger instead of panicking.
	logging.From(context.Background()).Debug("no-op")
}

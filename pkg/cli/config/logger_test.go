package config_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
	"github.com/harsh2b/WellMate/pkg/cli/config"
)

func configureLogger(t *testing.T, args ...string) error {
	t.Helper()

	var cfg config.Logger
	var closer func()
	cmd := &cli.Command{
		Name:  "test",
		Flags: cfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			f, err := cfg.Configure()
			closer = f
			return err
		},
	}
	err := cmd.Run(context.Background(), append([]string{"test"}, args...))
	if closer != nil {
		closer()
	}
	return err
}

func TestLoggerConfigure(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		gt.NoError(t, configureLogger(t))
	})

	t.Run("json format", func(t *testing.T) {
		gt.NoError(t, configureLogger(t, "--log-format", "json", "--log-level", "debug"))
	})

	t.Run("invalid level", func(t *testing.T) {
		gt.Error(t, configureLogger(t, "--log-level", "verbose"))
	})

	t.Run("invalid format", func(t *testing.T) {
		gt.Error(t, configureLogger(t, "--log-format", "xml"))
	})

	t.Run("quiet", func(t *testing.T) {
		gt.NoError(t, configureLogger(t, "--log-quiet"))
	})
}

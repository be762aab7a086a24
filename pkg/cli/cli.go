package cli

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/harsh2b/WellMate/pkg/cli/config"
	"github.com/harsh2b/WellMate/pkg/utils/logging"
)

func Run(ctx context.Context, args []string) error {
	// A missing .env file is not an error; env vars may come from the shell.
	_ = godotenv.Load()

	var loggerCfg config.Logger
	var closer func()
	app := &cli.Command{
		Name:  "wellmate",
		Usage: "Conversational front-end for guest medical chat",
		Flags: loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Info("base options", "logger", loggerCfg)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdServe(),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		logging.Default().Error("failed to run app", "error", err)
		return err
	}

	return nil
}

func joinFlags(flags ...[]cli.Flag) []cli.Flag {
	var result []cli.Flag
	for _, flag := range flags {
		result = append(result, flag...)
	}
	return result
}

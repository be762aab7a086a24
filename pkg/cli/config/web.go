package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Web struct {
	addr        string
	secretKey   string
	corsOrigins []string
}

func (x *Web) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Aliases:     []string{"a"},
			Usage:       "Listen address",
			Category:    "Web",
			Sources:     cli.EnvVars("WELLMATE_ADDR"),
			Value:       "127.0.0.1:8080",
			Destination: &x.addr,
		},
		&cli.StringFlag{
			Name:        "secret-key",
			Usage:       "Key for signing session cookies",
			Category:    "Web",
			Sources:     cli.EnvVars("WELLMATE_SECRET_KEY"),
			Destination: &x.secretKey,
		},
		&cli.StringSliceFlag{
			Name:        "cors-origins",
			Usage:       "Origins allowed for cross-origin requests",
			Category:    "Web",
			Sources:     cli.EnvVars("WELLMATE_CORS_ORIGINS"),
			Destination: &x.corsOrigins,
		},
	}
}

func (x Web) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", x.addr),
		slog.Int("secret_key.len", len(x.secretKey)),
		slog.Any("cors_origins", x.corsOrigins),
	)
}

func (x *Web) Addr() string {
	return x.addr
}

func (x *Web) SecretKey() string {
	return x.secretKey
}

func (x *Web) CORSOrigins() []string {
	return x.corsOrigins
}

func (x *Web) Validate() error {
	if x.secretKey == "" {
		return goerr.New("secret key is required")
	}
	return nil
}

package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"github.com/harsh2b/WellMate/pkg/adapter/llm"
)

type OpenAI struct {
	apiKey string
	model  string
}

func (x *OpenAI) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "openai-api-key",
			Usage:       "OpenAI API key",
			Category:    "OpenAI",
			Sources:     cli.EnvVars("WELLMATE_OPENAI_API_KEY", "OPENAI_API_KEY"),
			Destination: &x.apiKey,
		},
		&cli.StringFlag{
			Name:        "openai-model",
			Usage:       "OpenAI chat model",
			Category:    "OpenAI",
			Sources:     cli.EnvVars("WELLMATE_OPENAI_MODEL"),
			Value:       llm.DefaultModel,
			Destination: &x.model,
		},
	}
}

func (x OpenAI) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("api_key.len", len(x.apiKey)),
		slog.String("model", x.model),
	)
}

func (x *OpenAI) Configure() (*llm.OpenAIGateway, error) {
	if x.apiKey == "" {
		return nil, goerr.New("OpenAI API key is required")
	}
	return llm.NewOpenAIGateway(x.apiKey, x.model), nil
}

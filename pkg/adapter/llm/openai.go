package llm

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	openai "github.com/sashabaranov/go-openai"
	"github.com/harsh2b/WellMate/pkg/domain/interfaces"
	"github.com/harsh2b/WellMate/pkg/domain/model/errs"
	"github.com/harsh2b/WellMate/pkg/domain/model/guest"
)

// OpenAIGateway calls the OpenAI chat completion API to produce the
// assistant's reply for a turn. One blocking call per turn; errors propagate
// to the caller so the turn is never persisted partially.
type OpenAIGateway struct {
	client *openai.Client
	model  string
}

var _ interfaces.ResponseGateway = &OpenAIGateway{}

const DefaultModel = openai.GPT4oMini

func NewOpenAIGateway(apiKey, model string) *OpenAIGateway {
	if model == "" {
		model = DefaultModel
	}
	return &OpenAIGateway{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (x *OpenAIGateway) Generate(ctx context.Context, systemPrompt string, history []guest.Message, userMessage string) (string, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: systemPrompt,
	})
	for _, msg := range history {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    roleOf(msg.Type),
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: userMessage,
	})

	resp, err := x.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    x.model,
		Messages: messages,
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to create chat completion",
			goerr.V("model", x.model),
			goerr.T(errs.TagLLMError))
	}
	if len(resp.Choices) == 0 {
		return "", goerr.New("no response from generation service",
			goerr.V("model", x.model),
			goerr.T(errs.TagLLMError))
	}

	return resp.Choices[0].Message.Content, nil
}

func roleOf(t guest.MessageType) string {
	if t == guest.MessageTypeAI {
		return openai.ChatMessageRoleAssistant
	}
	return openai.ChatMessageRoleUser
}

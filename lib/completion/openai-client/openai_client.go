package openaiclient

import (
	"context"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"

	"medfy-backend/lib/completion"
)

func NewClient(apiKey string) completion.Provider {
	return impl{
		client: openai.NewClient(apiKey),
	}
}

type impl struct {
	client *openai.Client
}

func (i impl) Complete(ctx context.Context, params completion.Params, messages []completion.Message) (generatedText string, err error) {
	oaMsgs := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		role := m.Role
		if role != openai.ChatMessageRoleSystem && role != openai.ChatMessageRoleUser && role != openai.ChatMessageRoleAssistant {
			role = openai.ChatMessageRoleUser
		}
		oaMsgs = append(oaMsgs, openai.ChatCompletionMessage{Role: role, Content: m.Content})
	}

	resp, err := i.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       params.Model,
		Messages:    oaMsgs,
		Temperature: params.Temperature,
		MaxTokens:   params.MaxTokens,
	})
	if err != nil {
		// o erro original é preservado na cadeia: a classificação depende do *openai.APIError
		return "", errors.Wrap(err, "erro na chamada à API da OpenAI")
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("resposta da OpenAI sem alternativas")
	}
	return resp.Choices[0].Message.Content, nil
}

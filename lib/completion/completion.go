package completion

import (
	"context"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message é uma mensagem do prompt enviado ao provedor de completions
type Message struct {
	Role    string
	Content string
}

// Params são os parâmetros fixos de geração de cada tipo de documento
type Params struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

type Provider interface {
	Complete(ctx context.Context, params Params, messages []Message) (generatedText string, err error)
}

package completion

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
)

type ErrKind string

const (
	KindCredentialMissing ErrKind = "credential_missing"
	KindCredentialInvalid ErrKind = "credential_invalid"
	KindRateLimited       ErrKind = "rate_limited"
	KindUnknown           ErrKind = "unknown"
)

// ErrAPIKeyMissing indica ausência de credencial antes de qualquer chamada de rede
var ErrAPIKeyMissing = errors.New("API Key da OpenAI não configurada")

type ClassifiedError struct {
	Kind       ErrKind
	HTTPStatus int
	Message    string
}

// Classify mapeia a falha do provedor para a taxonomia fechada de erros.
// A classificação olha apenas o status reportado pelo provedor, nunca o
// texto da mensagem.
func Classify(err error) ClassifiedError {
	if errors.Is(err, ErrAPIKeyMissing) {
		return ClassifiedError{
			Kind:       KindCredentialMissing,
			HTTPStatus: http.StatusInternalServerError,
			Message:    "API Key da OpenAI não configurada",
		}
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusUnauthorized:
			return ClassifiedError{
				Kind:       KindCredentialInvalid,
				HTTPStatus: http.StatusUnauthorized,
				Message:    "API Key da OpenAI inválida. Verifique sua API Key.",
			}
		case http.StatusTooManyRequests:
			return ClassifiedError{
				Kind:       KindRateLimited,
				HTTPStatus: http.StatusTooManyRequests,
				Message:    "Limite de uso da API da OpenAI atingido. Tente novamente em instantes.",
			}
		}
		return ClassifiedError{
			Kind:       KindUnknown,
			HTTPStatus: http.StatusInternalServerError,
			Message:    fmt.Sprintf("Erro ao processar requisição: %s", apiErr.Message),
		}
	}
	return ClassifiedError{
		Kind:       KindUnknown,
		HTTPStatus: http.StatusInternalServerError,
		Message:    "Erro ao processar requisição",
	}
}

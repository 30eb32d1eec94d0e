package completion

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	t.Run(`credencial ausente check`, func(t *testing.T) {
		ce := Classify(ErrAPIKeyMissing)
		require.Equal(t, KindCredentialMissing, ce.Kind)
		require.Equal(t, http.StatusInternalServerError, ce.HTTPStatus)
		require.Equal(t, "API Key da OpenAI não configurada", ce.Message)
	})

	t.Run(`credencial inválida reportada pelo provedor check`, func(t *testing.T) {
		err := &openai.APIError{HTTPStatusCode: http.StatusUnauthorized, Message: "Incorrect API key provided"}
		ce := Classify(err)
		require.Equal(t, KindCredentialInvalid, ce.Kind)
		require.Equal(t, http.StatusUnauthorized, ce.HTTPStatus)
	})

	t.Run(`classificação atravessa erro encadeado check`, func(t *testing.T) {
		wrapped := errors.Wrap(&openai.APIError{HTTPStatusCode: http.StatusUnauthorized}, "erro na chamada à API da OpenAI")
		ce := Classify(wrapped)
		require.Equal(t, KindCredentialInvalid, ce.Kind)
		require.Equal(t, http.StatusUnauthorized, ce.HTTPStatus)
	})

	t.Run(`limite de requisições check`, func(t *testing.T) {
		err := &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests, Message: "Rate limit reached"}
		ce := Classify(err)
		require.Equal(t, KindRateLimited, ce.Kind)
		require.Equal(t, http.StatusTooManyRequests, ce.HTTPStatus)
	})

	t.Run(`demais erros do provedor mantêm a mensagem reportada`, func(t *testing.T) {
		err := &openai.APIError{HTTPStatusCode: http.StatusServiceUnavailable, Message: "The server is overloaded"}
		ce := Classify(err)
		require.Equal(t, KindUnknown, ce.Kind)
		require.Equal(t, http.StatusInternalServerError, ce.HTTPStatus)
		require.Contains(t, ce.Message, "The server is overloaded")
	})

	t.Run(`erro de rede genérico check`, func(t *testing.T) {
		ce := Classify(errors.New("dial tcp: connection refused"))
		require.Equal(t, KindUnknown, ce.Kind)
		require.Equal(t, http.StatusInternalServerError, ce.HTTPStatus)
		require.Equal(t, "Erro ao processar requisição", ce.Message)
	})
}

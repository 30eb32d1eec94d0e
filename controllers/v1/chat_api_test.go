package apiv1

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	chathandler "medfy-backend/lib/chat"
	chatstore "medfy-backend/lib/chat/store"
	"medfy-backend/lib/completion"
	dbmodels "medfy-backend/models/db"
)

type chatStoreMock struct {
	saved []dbmodels.ChatMessage
}

func (m *chatStoreMock) Save(rec dbmodels.ChatMessage) (string, error) {
	m.saved = append(m.saved, rec)
	return "msg-1", nil
}

func (m *chatStoreMock) ListBySession(userID, sessionID string) ([]dbmodels.ChatMessage, error) {
	return m.saved, nil
}

var _ chatstore.Provider = &chatStoreMock{}

func chatTestApp(t *testing.T, apiKey string, provider completion.Provider, store chatstore.Provider) *fiber.App {
	t.Helper()
	initTestConfig(t)
	chathandler.Instance = chathandler.NewInstance(apiKey, provider, store)
	app := fiber.New()
	InitChatApiRouters(app)
	return app
}

func TestChatSupportEndpoint(t *testing.T) {
	t.Run(`sucesso devolve o corpo fixado`, func(t *testing.T) {
		provider := &completionMock{reply: "Claro, posso ajudar com isso."}
		store := &chatStoreMock{}
		app := chatTestApp(t, "sk-test", provider, store)

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodPost, "/chat/support", map[string]interface{}{
			"message": "Como gero um laudo?",
			"conversationHistory": []map[string]string{
				{"role": "user", "content": "Olá"},
				{"role": "assistant", "content": "Olá! Como posso ajudar?"},
			},
		}))
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		require.Equal(t, "Claro, posso ajudar com isso.", body["response"])
		require.Equal(t, true, body["success"])
		require.Len(t, store.saved, 2)
	})

	t.Run(`mensagem vazia devolve 400`, func(t *testing.T) {
		provider := &completionMock{reply: "ok"}
		app := chatTestApp(t, "sk-test", provider, &chatStoreMock{})

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodPost, "/chat/support", map[string]interface{}{
			"message": "",
		}))
		require.Nil(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, 0, provider.calls)
	})

	t.Run(`credencial não configurada devolve 500`, func(t *testing.T) {
		provider := &completionMock{reply: "ok"}
		app := chatTestApp(t, "", provider, &chatStoreMock{})

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodPost, "/chat/support", map[string]interface{}{
			"message": "oi",
		}))
		require.Nil(t, err)
		require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		body := decodeBody(t, resp)
		require.Equal(t, "API Key da OpenAI não configurada", body["error"])
		require.Equal(t, 0, provider.calls)
	})
}

func TestChatAssistantEndpoint(t *testing.T) {
	t.Run(`resposta usa o campo legado`, func(t *testing.T) {
		provider := &completionMock{reply: "O Medfy gera documentos médicos."}
		store := &chatStoreMock{}
		app := chatTestApp(t, "sk-test", provider, store)

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodPost, "/chat/assistant", map[string]interface{}{
			"messages": []map[string]string{
				{"role": "user", "content": "O que é o Medfy?"},
			},
		}))
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		require.Equal(t, "O Medfy gera documentos médicos.", body["message"])
		// variante legada não persiste a conversa
		require.Empty(t, store.saved)
	})

	t.Run(`conversa vazia devolve 400`, func(t *testing.T) {
		provider := &completionMock{reply: "ok"}
		app := chatTestApp(t, "sk-test", provider, &chatStoreMock{})

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodPost, "/chat/assistant", map[string]interface{}{
			"messages": []map[string]string{},
		}))
		require.Nil(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		require.Equal(t, 0, provider.calls)
	})
}

func TestChatHistoryEndpoint(t *testing.T) {
	t.Run(`sessão é obrigatória`, func(t *testing.T) {
		app := chatTestApp(t, "sk-test", &completionMock{}, &chatStoreMock{})

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodGet, "/chat/history", nil))
		require.Nil(t, err)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run(`mensagens da sessão são devolvidas em ordem`, func(t *testing.T) {
		store := &chatStoreMock{saved: []dbmodels.ChatMessage{
			{UserID: "user-1", SessionID: "sessao-1", Role: completion.RoleUser, Content: "oi"},
			{UserID: "user-1", SessionID: "sessao-1", Role: completion.RoleAssistant, Content: "olá"},
		}}
		app := chatTestApp(t, "sk-test", &completionMock{}, store)

		resp, err := app.Test(authorizedJSONRequest(t, http.MethodGet, "/chat/history?session_id=sessao-1", nil))
		require.Nil(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		body := decodeBody(t, resp)
		data, ok := body["data"].([]interface{})
		require.True(t, ok)
		require.Len(t, data, 2)
	})
}

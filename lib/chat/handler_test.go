package chathandler

import (
	"context"
	"fmt"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"medfy-backend/lib/completion"
	chatapimodels "medfy-backend/models/api/chat"
	dbmodels "medfy-backend/models/db"
)

type providerMock struct {
	calls    int
	lastMsgs []completion.Message
	reply    string
	err      error
}

func (m *providerMock) Complete(ctx context.Context, params completion.Params, messages []completion.Message) (string, error) {
	m.calls++
	m.lastMsgs = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type storeMock struct {
	saved []dbmodels.ChatMessage
}

func (m *storeMock) Save(rec dbmodels.ChatMessage) (string, error) {
	m.saved = append(m.saved, rec)
	return fmt.Sprintf("msg-%d", len(m.saved)), nil
}

func (m *storeMock) ListBySession(userID, sessionID string) ([]dbmodels.ChatMessage, error) {
	list := []dbmodels.ChatMessage{}
	for _, rec := range m.saved {
		if rec.UserID == userID && rec.SessionID == sessionID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func TestSupportReply(t *testing.T) {
	t.Run(`histórico é reenviado inteiro e em ordem`, func(t *testing.T) {
		provider := &providerMock{reply: "Claro, posso ajudar."}
		handler := NewInstance("sk-test", provider, &storeMock{})

		history := []chatapimodels.ChatMessage{
			{Role: "user", Content: "Como gero um laudo?"},
			{Role: "assistant", Content: "Acesse a aba Laudos."},
			{Role: "user", Content: "E para ultrassom?"},
			{Role: "assistant", Content: "Selecione Ultrassom no tipo de exame."},
		}
		req := chatapimodels.SupportRequest{
			Message:             "Obrigado! E as receitas?",
			ConversationHistory: history,
		}
		_, err := handler.SupportReply(context.TODO(), "user-1", req)
		require.Nil(t, err)

		// persona + N turnos anteriores + nova mensagem
		require.Len(t, provider.lastMsgs, len(history)+2)
		require.Equal(t, completion.RoleSystem, provider.lastMsgs[0].Role)
		for k, turn := range history {
			require.Equal(t, turn.Role, provider.lastMsgs[k+1].Role)
			require.Equal(t, turn.Content, provider.lastMsgs[k+1].Content)
		}
		last := provider.lastMsgs[len(provider.lastMsgs)-1]
		require.Equal(t, completion.RoleUser, last.Role)
		require.Equal(t, "Obrigado! E as receitas?", last.Content)
	})

	t.Run(`turno é persistido na mesma sessão`, func(t *testing.T) {
		provider := &providerMock{reply: "Resposta do assistente"}
		store := &storeMock{}
		handler := NewInstance("sk-test", provider, store)

		req := chatapimodels.SupportRequest{
			Message:   "Primeira dúvida",
			SessionID: "sessao-1",
		}
		_, err := handler.SupportReply(context.TODO(), "user-1", req)
		require.Nil(t, err)
		require.Len(t, store.saved, 2)
		require.Equal(t, "sessao-1", store.saved[0].SessionID)
		require.Equal(t, "sessao-1", store.saved[1].SessionID)
		require.Equal(t, completion.RoleUser, store.saved[0].Role)
		require.Equal(t, "Primeira dúvida", store.saved[0].Content)
		require.Equal(t, completion.RoleAssistant, store.saved[1].Role)
		require.Equal(t, "Resposta do assistente", store.saved[1].Content)
	})

	t.Run(`sessão é gerada no servidor quando ausente`, func(t *testing.T) {
		provider := &providerMock{reply: "ok"}
		store := &storeMock{}
		handler := NewInstance("sk-test", provider, store)

		_, err := handler.SupportReply(context.TODO(), "user-1", chatapimodels.SupportRequest{Message: "oi"})
		require.Nil(t, err)
		require.Len(t, store.saved, 2)
		require.NotEmpty(t, store.saved[0].SessionID)
		require.Equal(t, store.saved[0].SessionID, store.saved[1].SessionID)
	})

	t.Run(`sem credencial nenhuma chamada ao provedor é feita`, func(t *testing.T) {
		provider := &providerMock{reply: "ok"}
		store := &storeMock{}
		handler := NewInstance("", provider, store)

		_, err := handler.SupportReply(context.TODO(), "user-1", chatapimodels.SupportRequest{Message: "oi"})
		require.NotNil(t, err)
		require.True(t, pkgerrors.Is(err, completion.ErrAPIKeyMissing))
		require.Equal(t, 0, provider.calls)
		require.Empty(t, store.saved)
	})
}

func TestAssistantReply(t *testing.T) {
	t.Run(`persona é acrescentada à conversa do cliente`, func(t *testing.T) {
		provider := &providerMock{reply: "Posso ajudar com o Medfy."}
		store := &storeMock{}
		handler := NewInstance("sk-test", provider, store)

		req := chatapimodels.AssistantRequest{
			Messages: []chatapimodels.ChatMessage{
				{Role: "user", Content: "O que é o Medfy?"},
			},
		}
		reply, err := handler.AssistantReply(context.TODO(), req)
		require.Nil(t, err)
		require.Equal(t, "Posso ajudar com o Medfy.", reply)
		require.Len(t, provider.lastMsgs, 2)
		require.Equal(t, completion.RoleSystem, provider.lastMsgs[0].Role)
		require.Equal(t, "O que é o Medfy?", provider.lastMsgs[1].Content)
		// variante legada não persiste a conversa
		require.Empty(t, store.saved)
	})
}

func TestBuildSupportMessagesDeterminism(t *testing.T) {
	history := []chatapimodels.ChatMessage{
		{Role: "user", Content: "pergunta"},
		{Role: "assistant", Content: "resposta"},
	}
	require.Equal(t, BuildSupportMessages("nova", history), BuildSupportMessages("nova", history))
}

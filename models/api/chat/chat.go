package chatapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"

	dbmodels "medfy-backend/models/db"
)

type ChatMessage struct {
	Role    string `json:"role"` // user/assistant
	Content string `json:"content"`
}

type SupportRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversationHistory"`
	SessionID           string        `json:"session_id"` // opcional; gerado no servidor quando ausente
}

func (r SupportRequest) Validate() error {
	if len(strings.TrimSpace(r.Message)) == 0 {
		return errors.New("mensagem não pode ser vazia")
	}
	return nil
}

type SupportResponse struct {
	Response string `json:"response"` // resposta do assistente
	Success  bool   `json:"success"`
}

// AssistantRequest é o corpo da variante legada do chat: o cliente envia
// a lista completa de mensagens, sem campo message separado.
type AssistantRequest struct {
	Messages []ChatMessage `json:"messages"`
}

func (r AssistantRequest) Validate() error {
	if len(r.Messages) == 0 {
		return errors.New("lista de mensagens não pode ser vazia")
	}
	return nil
}

type AssistantResponse struct {
	Message string `json:"message"`
}

type ChatMessageView struct {
	ID        string    `json:"id"`
	SessionID string    `json:"session_id"`
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func ChatMessageConvert(rec dbmodels.ChatMessage) ChatMessageView {
	return ChatMessageView{
		ID:        rec.ID,
		SessionID: rec.SessionID,
		Role:      rec.Role,
		Content:   rec.Content,
		CreatedAt: rec.CreatedAt,
	}
}

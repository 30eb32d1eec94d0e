package chathandler

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"medfy-backend/config"
	"medfy-backend/db"
	chatstore "medfy-backend/lib/chat/store"
	"medfy-backend/lib/completion"
	openaiclient "medfy-backend/lib/completion/openai-client"
	chatapimodels "medfy-backend/models/api/chat"
	dbmodels "medfy-backend/models/db"
)

const modelID = "gpt-4o"

var (
	supportParams   = completion.Params{Model: modelID, Temperature: 0.8, MaxTokens: 1500}
	assistantParams = completion.Params{Model: modelID, Temperature: 0.7, MaxTokens: 1000}
)

type Provider interface {
	SupportReply(ctx context.Context, userID string, req chatapimodels.SupportRequest) (reply string, err error)
	AssistantReply(ctx context.Context, req chatapimodels.AssistantRequest) (reply string, err error)
	History(userID, sessionID string) ([]chatapimodels.ChatMessageView, error)
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		config.Conf.OpenAI.APIKey,
		openaiclient.NewClient(config.Conf.OpenAI.APIKey),
		chatstore.NewInstance(db.DB),
	)
}

func NewInstance(apiKey string, client completion.Provider, store chatstore.Provider) Provider {
	return impl{
		apiKey: apiKey,
		client: client,
		store:  store,
	}
}

type impl struct {
	apiKey string
	client completion.Provider
	store  chatstore.Provider
}

func (i impl) SupportReply(ctx context.Context, userID string, req chatapimodels.SupportRequest) (reply string, err error) {
	if i.apiKey == "" {
		return "", completion.ErrAPIKeyMissing
	}
	reply, err = i.client.Complete(ctx, supportParams, BuildSupportMessages(req.Message, req.ConversationHistory))
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("erro no chat de suporte")
		return "", err
	}
	i.saveTurn(userID, req.SessionID, req.Message, reply)
	return reply, nil
}

// AssistantReply é a variante legada: sem persistência, o cliente mantém
// a conversa inteira no corpo da requisição.
func (i impl) AssistantReply(ctx context.Context, req chatapimodels.AssistantRequest) (reply string, err error) {
	if i.apiKey == "" {
		return "", completion.ErrAPIKeyMissing
	}
	reply, err = i.client.Complete(ctx, assistantParams, BuildAssistantMessages(req.Messages))
	if err != nil {
		log.
			WithError(err).
			Error("erro no chat do assistente")
		return "", err
	}
	return reply, nil
}

// saveTurn grava a pergunta do médico e a resposta do assistente na mesma
// sessão. A conversa já aconteceu: falha de persistência é registrada e a
// resposta ainda é devolvida.
func (i impl) saveTurn(userID, sessionID, userMessage, assistantReply string) {
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	for _, rec := range []dbmodels.ChatMessage{
		{UserID: userID, SessionID: sessionID, Role: completion.RoleUser, Content: userMessage},
		{UserID: userID, SessionID: sessionID, Role: completion.RoleAssistant, Content: assistantReply},
	} {
		if _, err := i.store.Save(rec); err != nil {
			log.
				WithField("user_id", userID).
				WithField("session_id", sessionID).
				WithError(err).
				Error("erro ao salvar mensagem do chat")
		}
	}
}

func (i impl) History(userID, sessionID string) ([]chatapimodels.ChatMessageView, error) {
	recs, err := i.store.ListBySession(userID, sessionID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("session_id", sessionID).
			WithError(err).
			Error("erro ao buscar histórico do chat")
		return nil, err
	}
	list := make([]chatapimodels.ChatMessageView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, chatapimodels.ChatMessageConvert(rec))
	}
	return list, nil
}

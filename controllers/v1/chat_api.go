package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"medfy-backend/controllers"
	chathandler "medfy-backend/lib/chat"
	"medfy-backend/lib/completion"
	"medfy-backend/middleware"
	apimodels "medfy-backend/models/api"
	chatapimodels "medfy-backend/models/api/chat"
)

type chatApiController struct {
	controllers.BaseAPIController
}

func InitChatApiRouters(app *fiber.App) {
	controller := chatApiController{}
	app.Route("chat", func(chatRootRoute fiber.Router) {
		chatRootRoute.Use(middleware.AuthorizationRequired())
		chatRootRoute.Post("support", controller.Support)
		chatRootRoute.Post("assistant", controller.Assistant)
		chatRootRoute.Get("history", controller.History)
	})
}

// @Summary Chat de suporte
// @Tags Chat
// @Description Enviar mensagem ao chat de suporte com histórico da conversa
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		chatapimodels.SupportRequest	true	"request body"
// @Success 200 {object} chatapimodels.SupportResponse
// @Failure 400 {object} apimodels.GenerationError
// @Failure 401 {object} apimodels.GenerationError
// @Failure 429 {object} apimodels.GenerationError
// @Failure 500 {object} apimodels.GenerationError
// @router /api/v1/chat/support [post]
func (c *chatApiController) Support(ctx *fiber.Ctx) error {
	var payload chatapimodels.SupportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	reply, err := chathandler.Instance.SupportReply(ctx.UserContext(), userID, payload)
	if err != nil {
		ce := completion.Classify(err)
		return ctx.Status(ce.HTTPStatus).JSON(apimodels.NewGenerationError(ce.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(chatapimodels.SupportResponse{
		Response: reply,
		Success:  true,
	})
}

// @Summary Chat do assistente (variante legada)
// @Tags Chat
// @Description Enviar a lista completa de mensagens da conversa
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		chatapimodels.AssistantRequest	true	"request body"
// @Success 200 {object} chatapimodels.AssistantResponse
// @Failure 400 {object} apimodels.GenerationError
// @Failure 401 {object} apimodels.GenerationError
// @Failure 429 {object} apimodels.GenerationError
// @Failure 500 {object} apimodels.GenerationError
// @router /api/v1/chat/assistant [post]
func (c *chatApiController) Assistant(ctx *fiber.Ctx) error {
	var payload chatapimodels.AssistantRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	reply, err := chathandler.Instance.AssistantReply(ctx.UserContext(), payload)
	if err != nil {
		ce := completion.Classify(err)
		return ctx.Status(ce.HTTPStatus).JSON(apimodels.NewGenerationError(ce.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(chatapimodels.AssistantResponse{
		Message: reply,
	})
}

// @Summary Histórico do chat
// @Tags Chat
// @Description Buscar mensagens de uma sessão do chat de suporte
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	session_id			query		string	true	"Identificador da sessão"
// @Success 200 {object} apimodels.Response{data=[]chatapimodels.ChatMessageView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/chat/history [get]
func (c *chatApiController) History(ctx *fiber.Ctx) error {
	sessionID := ctx.Query("session_id")
	if sessionID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("session_id não pode ser vazio"))
	}
	userID := middleware.GetUserID(ctx)
	list, err := chathandler.Instance.History(userID, sessionID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

package apiv1

import (
	"github.com/gofiber/fiber/v2"

	"medfy-backend/controllers"
	"medfy-backend/lib/completion"
	documentshandler "medfy-backend/lib/documents"
	"medfy-backend/middleware"
	apimodels "medfy-backend/models/api"
	docapimodels "medfy-backend/models/api/documents"
)

type documentsApiController struct {
	controllers.BaseAPIController
}

func InitDocumentsApiRouters(app *fiber.App) {
	controller := documentsApiController{}
	app.Route("documents", func(documentsRootRoute fiber.Router) {
		documentsRootRoute.Use(middleware.AuthorizationRequired())
		documentsRootRoute.Post("generate_laudo", controller.GenerateLaudo)
		documentsRootRoute.Post("generate_receita", controller.GenerateReceita)
		documentsRootRoute.Post("generate_relatorio", controller.GenerateRelatorio)
		documentsRootRoute.Get("", controller.List)
		documentsRootRoute.Get(":id", controller.GetByID)
		documentsRootRoute.Delete(":id", controller.Delete)
	})
}

// @Summary Gerar laudo médico
// @Tags Documentos
// @Description Gerar laudo médico com IA
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		docapimodels.LaudoRequest	true	"request body"
// @Success 200 {object} docapimodels.LaudoResponse
// @Failure 400 {object} apimodels.GenerationError
// @Failure 401 {object} apimodels.GenerationError
// @Failure 429 {object} apimodels.GenerationError
// @Failure 500 {object} apimodels.GenerationError
// @router /api/v1/documents/generate_laudo [post]
func (c *documentsApiController) GenerateLaudo(ctx *fiber.Ctx) error {
	var payload docapimodels.LaudoRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	laudo, err := documentshandler.Instance.GenerateLaudo(ctx.UserContext(), userID, payload)
	if err != nil {
		ce := completion.Classify(err)
		return ctx.Status(ce.HTTPStatus).JSON(apimodels.NewGenerationError(ce.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(docapimodels.LaudoResponse{
		Laudo:   laudo,
		Success: true,
	})
}

// @Summary Gerar receita médica
// @Tags Documentos
// @Description Gerar receita médica com IA
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		docapimodels.ReceitaRequest	true	"request body"
// @Success 200 {object} docapimodels.ReceitaResponse
// @Failure 400 {object} apimodels.GenerationError
// @Failure 401 {object} apimodels.GenerationError
// @Failure 429 {object} apimodels.GenerationError
// @Failure 500 {object} apimodels.GenerationError
// @router /api/v1/documents/generate_receita [post]
func (c *documentsApiController) GenerateReceita(ctx *fiber.Ctx) error {
	var payload docapimodels.ReceitaRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	receita, err := documentshandler.Instance.GenerateReceita(ctx.UserContext(), userID, payload)
	if err != nil {
		ce := completion.Classify(err)
		return ctx.Status(ce.HTTPStatus).JSON(apimodels.NewGenerationError(ce.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(docapimodels.ReceitaResponse{
		Receita: receita,
		Success: true,
	})
}

// @Summary Gerar relatório médico
// @Tags Documentos
// @Description Gerar relatório médico com IA
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		docapimodels.RelatorioRequest	true	"request body"
// @Success 200 {object} docapimodels.RelatorioResponse
// @Failure 400 {object} apimodels.GenerationError
// @Failure 401 {object} apimodels.GenerationError
// @Failure 429 {object} apimodels.GenerationError
// @Failure 500 {object} apimodels.GenerationError
// @router /api/v1/documents/generate_relatorio [post]
func (c *documentsApiController) GenerateRelatorio(ctx *fiber.Ctx) error {
	var payload docapimodels.RelatorioRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewGenerationError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	relatorio, err := documentshandler.Instance.GenerateRelatorio(ctx.UserContext(), userID, payload)
	if err != nil {
		ce := completion.Classify(err)
		return ctx.Status(ce.HTTPStatus).JSON(apimodels.NewGenerationError(ce.Message))
	}
	return ctx.Status(fiber.StatusOK).JSON(docapimodels.RelatorioResponse{
		Relatorio: relatorio,
		Success:   true,
	})
}

// @Summary Listar documentos gerados
// @Tags Documentos
// @Description Listar documentos gerados pelo médico autenticado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	page				query		int		false	"Página"
// @Param	limit				query		int		false	"Registros por página"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]docapimodels.DocumentView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents [get]
func (c *documentsApiController) List(ctx *fiber.Ctx) error {
	pagination := apimodels.Pagination{
		Page:  ctx.QueryInt("page"),
		Limit: ctx.QueryInt("limit"),
	}
	userID := middleware.GetUserID(ctx)
	list, rowCount, err := documentshandler.Instance.List(userID, pagination)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Buscar documento
// @Tags Documentos
// @Description Buscar documento gerado pelo identificador
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"Identificador do documento"
// @Success 200 {object} apimodels.Response{data=docapimodels.DocumentView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [get]
func (c *documentsApiController) GetByID(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := middleware.GetUserID(ctx)
	rec, err := documentshandler.Instance.GetByID(userID, id)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	if rec == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError("documento não encontrado"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(rec))
}

// @Summary Excluir documento
// @Tags Documentos
// @Description Excluir documento gerado
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"Identificador do documento"
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/documents/{id} [delete]
func (c *documentsApiController) Delete(ctx *fiber.Ctx) error {
	id := ctx.Params("id")
	userID := middleware.GetUserID(ctx)
	if err := documentshandler.Instance.Delete(userID, id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

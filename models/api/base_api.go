package apimodels

type Response struct {
	Status  string      `json:"status"`            //resultado do processamento fail/success
	Message string      `json:"message,omitempty"` //mensagem de erro
	Data    interface{} `json:"data,omitempty"`    //dados da resposta
}

type ScrollerResponse struct {
	Response
	RowCount int64 `json:"row_count,omitempty"` //para listas, total de registros considerando o filtro (se houver)
}

func NewError(message string) Response {
	return Response{
		Status:  "fail",
		Message: message,
	}
}

func NewResponse(data interface{}) Response {
	return Response{
		Status: "success",
		Data:   data,
	}
}

type Pagination struct {
	Limit int `json:"limit"` // Registros por página
	Page  int `json:"page"`  // Página (1,2,3..)
}

func (r Pagination) Validate() error {
	return nil
}

func (r Pagination) GetPage() (page, limit int) {
	page = 1
	limit = 10
	if r.Page > 0 {
		page = r.Page
	}
	if r.Limit > 0 {
		limit = r.Limit
	}
	if limit > 100 {
		limit = 100
	}
	return page, limit
}

func NewScrollerResponse(data interface{}, rowCount int64) ScrollerResponse {
	return ScrollerResponse{
		Response: Response{
			Status: "success",
			Data:   data,
		},
		RowCount: rowCount,
	}
}

// GenerationError é o envelope de erro dos endpoints de geração
// (formato herdado da API original: {"error": "..."}).
type GenerationError struct {
	Error string `json:"error"`
}

func NewGenerationError(message string) GenerationError {
	return GenerationError{Error: message}
}

package documentshandler

import (
	"context"
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"medfy-backend/config"
	"medfy-backend/db"
	"medfy-backend/lib/completion"
	openaiclient "medfy-backend/lib/completion/openai-client"
	documentstore "medfy-backend/lib/documents/store"
	apimodels "medfy-backend/models/api"
	docapimodels "medfy-backend/models/api/documents"
	dbmodels "medfy-backend/models/db"
)

const modelID = "gpt-4o"

// Parâmetros fixos de geração por tipo de documento
var (
	laudoParams     = completion.Params{Model: modelID, Temperature: 0.7, MaxTokens: 2000}
	receitaParams   = completion.Params{Model: modelID, Temperature: 0.7, MaxTokens: 2000}
	relatorioParams = completion.Params{Model: modelID, Temperature: 0.7, MaxTokens: 2500}
)

type Provider interface {
	GenerateLaudo(ctx context.Context, userID string, req docapimodels.LaudoRequest) (laudo string, err error)
	GenerateReceita(ctx context.Context, userID string, req docapimodels.ReceitaRequest) (receita string, err error)
	GenerateRelatorio(ctx context.Context, userID string, req docapimodels.RelatorioRequest) (relatorio string, err error)
	List(userID string, pagination apimodels.Pagination) (list []docapimodels.DocumentView, rowCount int64, err error)
	GetByID(userID, id string) (*docapimodels.DocumentView, error)
	Delete(userID, id string) error
}

var Instance Provider

func NewHandler() {
	Instance = NewInstance(
		config.Conf.OpenAI.APIKey,
		openaiclient.NewClient(config.Conf.OpenAI.APIKey),
		documentstore.NewInstance(db.DB),
	)
}

// NewInstance recebe a credencial e o cliente explicitamente; não há
// consulta ambiente de configuração no momento da chamada.
func NewInstance(apiKey string, client completion.Provider, store documentstore.Provider) Provider {
	return impl{
		apiKey: apiKey,
		client: client,
		store:  store,
	}
}

type impl struct {
	apiKey string
	client completion.Provider
	store  documentstore.Provider
}

func (i impl) GenerateLaudo(ctx context.Context, userID string, req docapimodels.LaudoRequest) (laudo string, err error) {
	if i.apiKey == "" {
		return "", completion.ErrAPIKeyMissing
	}
	laudo, err = i.client.Complete(ctx, laudoParams, BuildLaudoMessages(req))
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("exam_type", req.ExamType).
			WithError(err).
			Error("erro ao gerar laudo")
		return "", err
	}
	i.saveDocument(userID, dbmodels.DocumentTypeLaudo, req.ExamType, req.PatientData, laudo, req)
	return laudo, nil
}

func (i impl) GenerateReceita(ctx context.Context, userID string, req docapimodels.ReceitaRequest) (receita string, err error) {
	if i.apiKey == "" {
		return "", completion.ErrAPIKeyMissing
	}
	receita, err = i.client.Complete(ctx, receitaParams, BuildReceitaMessages(req))
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("diagnosis", req.Diagnosis).
			WithError(err).
			Error("erro ao gerar receita")
		return "", err
	}
	i.saveDocument(userID, dbmodels.DocumentTypeReceita, req.Diagnosis, req.PatientData, receita, req)
	return receita, nil
}

func (i impl) GenerateRelatorio(ctx context.Context, userID string, req docapimodels.RelatorioRequest) (relatorio string, err error) {
	if i.apiKey == "" {
		return "", completion.ErrAPIKeyMissing
	}
	relatorio, err = i.client.Complete(ctx, relatorioParams, BuildRelatorioMessages(req))
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("report_type", req.ReportType).
			WithError(err).
			Error("erro ao gerar relatório")
		return "", err
	}
	i.saveDocument(userID, dbmodels.DocumentTypeRelatorio, req.ReportType, req.PatientData, relatorio, req)
	return relatorio, nil
}

// saveDocument persiste o documento gerado. A geração já foi concluída:
// falha de persistência é registrada e o texto ainda é devolvido ao médico.
func (i impl) saveDocument(userID string, docType dbmodels.DocumentType, subtype string, patient docapimodels.PatientData, content string, form interface{}) {
	metadata, err := json.Marshal(form)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("erro ao serializar metadados do documento")
		metadata = []byte("{}")
	}
	rec := dbmodels.Document{
		UserID:      userID,
		Type:        docType,
		Subtype:     subtype,
		PatientName: patient.Paciente,
		PatientAge:  patient.Idade,
		PatientSex:  patient.Sexo,
		Content:     content,
		Metadata:    string(metadata),
	}
	if _, err := i.store.Save(rec); err != nil {
		log.
			WithField("user_id", userID).
			WithField("type", string(docType)).
			WithError(err).
			Error("erro ao salvar documento gerado")
	}
}

func (i impl) List(userID string, pagination apimodels.Pagination) (list []docapimodels.DocumentView, rowCount int64, err error) {
	page, limit := pagination.GetPage()
	recs, rowCount, err := i.store.List(userID, page, limit)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("erro ao listar documentos")
		return nil, 0, err
	}
	list = make([]docapimodels.DocumentView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, docapimodels.DocumentConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) GetByID(userID, id string) (*docapimodels.DocumentView, error) {
	rec, err := i.store.GetByID(userID, id)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("document_id", id).
			WithError(err).
			Error("erro ao buscar documento")
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	view := docapimodels.DocumentConvert(*rec)
	return &view, nil
}

func (i impl) Delete(userID, id string) error {
	err := i.store.Delete(userID, id)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithField("document_id", id).
			WithError(err).
			Error("erro ao excluir documento")
	}
	return err
}

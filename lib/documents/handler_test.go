package documentshandler

import (
	"context"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/require"

	"medfy-backend/lib/completion"
	docapimodels "medfy-backend/models/api/documents"
	dbmodels "medfy-backend/models/db"
)

type providerMock struct {
	calls      int
	lastParams completion.Params
	lastMsgs   []completion.Message
	reply      string
	err        error
}

func (m *providerMock) Complete(ctx context.Context, params completion.Params, messages []completion.Message) (string, error) {
	m.calls++
	m.lastParams = params
	m.lastMsgs = messages
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type storeMock struct {
	saved []dbmodels.Document
	err   error
}

func (m *storeMock) Save(rec dbmodels.Document) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, rec)
	return "doc-1", nil
}

func (m *storeMock) List(userID string, page, limit int) ([]dbmodels.Document, int64, error) {
	return m.saved, int64(len(m.saved)), nil
}

func (m *storeMock) GetByID(userID, id string) (*dbmodels.Document, error) {
	for _, rec := range m.saved {
		if rec.ID == id {
			return &rec, nil
		}
	}
	return nil, nil
}

func (m *storeMock) Delete(userID, id string) error {
	return nil
}

func laudoRequest() docapimodels.LaudoRequest {
	return docapimodels.LaudoRequest{
		ExamType:    "Raio-X Tórax",
		PatientInfo: "João Silva, 45 anos, sexo M",
		Findings:    "Queixa principal: dor torácica\nHistórico: Não informado\nExame: Não especificado\nObservações: Nenhuma",
	}
}

func TestGenerateLaudo(t *testing.T) {
	t.Run(`sem credencial nenhuma chamada ao provedor é feita`, func(t *testing.T) {
		provider := &providerMock{reply: "LAUDO: normal"}
		store := &storeMock{}
		handler := NewInstance("", provider, store)

		_, err := handler.GenerateLaudo(context.TODO(), "user-1", laudoRequest())
		require.NotNil(t, err)
		require.True(t, pkgerrors.Is(err, completion.ErrAPIKeyMissing))
		require.Equal(t, 0, provider.calls)
		require.Empty(t, store.saved)
	})

	t.Run(`sucesso repassa o texto do provedor sem alteração`, func(t *testing.T) {
		provider := &providerMock{reply: "LAUDO: normal"}
		store := &storeMock{}
		handler := NewInstance("sk-test", provider, store)

		laudo, err := handler.GenerateLaudo(context.TODO(), "user-1", laudoRequest())
		require.Nil(t, err)
		require.Equal(t, "LAUDO: normal", laudo)
		require.Equal(t, 1, provider.calls)
		require.Equal(t, "gpt-4o", provider.lastParams.Model)
		require.Equal(t, float32(0.7), provider.lastParams.Temperature)
		require.Equal(t, 2000, provider.lastParams.MaxTokens)
	})

	t.Run(`documento gerado é persistido com os dados do paciente`, func(t *testing.T) {
		provider := &providerMock{reply: "LAUDO: sem alterações"}
		store := &storeMock{}
		handler := NewInstance("sk-test", provider, store)

		req := docapimodels.LaudoRequest{
			ExamType: "Ultrassom Abdominal",
			PatientData: docapimodels.PatientData{
				Paciente: "Maria Souza",
				Idade:    37,
				Sexo:     "F",
			},
			QueixaPrincipal: "dor abdominal",
		}
		_, err := handler.GenerateLaudo(context.TODO(), "user-1", req)
		require.Nil(t, err)
		require.Len(t, store.saved, 1)
		rec := store.saved[0]
		require.Equal(t, "user-1", rec.UserID)
		require.Equal(t, dbmodels.DocumentTypeLaudo, rec.Type)
		require.Equal(t, "Ultrassom Abdominal", rec.Subtype)
		require.Equal(t, "Maria Souza", rec.PatientName)
		require.Equal(t, 37, rec.PatientAge)
		require.Equal(t, "F", rec.PatientSex)
		require.Equal(t, "LAUDO: sem alterações", rec.Content)
		require.Contains(t, rec.Metadata, "dor abdominal")
	})

	t.Run(`falha de persistência não descarta o texto gerado`, func(t *testing.T) {
		provider := &providerMock{reply: "LAUDO: normal"}
		store := &storeMock{err: pkgerrors.New("conexão com o banco perdida")}
		handler := NewInstance("sk-test", provider, store)

		laudo, err := handler.GenerateLaudo(context.TODO(), "user-1", laudoRequest())
		require.Nil(t, err)
		require.Equal(t, "LAUDO: normal", laudo)
	})

	t.Run(`erro do provedor é propagado sem persistir`, func(t *testing.T) {
		provider := &providerMock{err: &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}}
		store := &storeMock{}
		handler := NewInstance("sk-test", provider, store)

		_, err := handler.GenerateLaudo(context.TODO(), "user-1", laudoRequest())
		require.NotNil(t, err)
		ce := completion.Classify(err)
		require.Equal(t, completion.KindCredentialInvalid, ce.Kind)
		require.Empty(t, store.saved)
	})
}

func TestGenerateReceitaRelatorioParams(t *testing.T) {
	t.Run(`receita usa os parâmetros fixos do tipo`, func(t *testing.T) {
		provider := &providerMock{reply: "RECEITA"}
		handler := NewInstance("sk-test", provider, &storeMock{})

		_, err := handler.GenerateReceita(context.TODO(), "user-1", docapimodels.ReceitaRequest{
			PatientInfo:  "Carlos Lima, 29 anos, sexo M",
			Diagnosis:    "Amigdalite",
			Medicamentos: "Amoxicilina",
		})
		require.Nil(t, err)
		require.Equal(t, float32(0.7), provider.lastParams.Temperature)
		require.Equal(t, 2000, provider.lastParams.MaxTokens)
	})

	t.Run(`relatório usa teto maior de tokens`, func(t *testing.T) {
		provider := &providerMock{reply: "RELATÓRIO"}
		handler := NewInstance("sk-test", provider, &storeMock{})

		_, err := handler.GenerateRelatorio(context.TODO(), "user-1", docapimodels.RelatorioRequest{
			ReportType:  "Alta",
			PatientInfo: "Pedro Alves, 61 anos, sexo M",
			Evolucao:    "melhora progressiva",
		})
		require.Nil(t, err)
		require.Equal(t, float32(0.7), provider.lastParams.Temperature)
		require.Equal(t, 2500, provider.lastParams.MaxTokens)
	})
}

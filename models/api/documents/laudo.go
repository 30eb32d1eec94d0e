package docapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type LaudoRequest struct {
	ExamType    string `json:"examType"`    // tipo do exame (Raio-X, Ultrassom, ...)
	PatientInfo string `json:"patientInfo"` // texto já composto; se vazio, composto a partir de PatientData
	Findings    string `json:"findings"`    // achados já compostos; se vazio, compostos a partir dos campos do formulário
	PatientData
	QueixaPrincipal string `json:"queixaPrincipal"`
	Historico       string `json:"historico"`
	Exame           string `json:"exame"`
	Observacoes     string `json:"observacoes"`
}

func (r LaudoRequest) Validate() error {
	if len(strings.TrimSpace(r.ExamType)) == 0 {
		return errors.New("tipo de exame não pode ser vazio")
	}
	if len(strings.TrimSpace(r.PatientInfo)) == 0 && len(strings.TrimSpace(r.Paciente)) == 0 {
		return errors.New("informações do paciente não podem ser vazias")
	}
	if len(strings.TrimSpace(r.Findings)) == 0 && len(strings.TrimSpace(r.QueixaPrincipal)) == 0 {
		return errors.New("achados clínicos não podem ser vazios")
	}
	return nil
}

func (r LaudoRequest) ComposedPatientInfo() string {
	if strings.TrimSpace(r.PatientInfo) != "" {
		return r.PatientInfo
	}
	return r.Compose()
}

func (r LaudoRequest) ComposedFindings() string {
	if strings.TrimSpace(r.Findings) != "" {
		return r.Findings
	}
	lines := []string{
		"Queixa principal: " + r.QueixaPrincipal,
		"Histórico: " + orFallback(r.Historico, FallbackNaoInformado),
		"Exame: " + orFallback(r.Exame, FallbackNaoEspecificado),
		"Observações: " + orFallback(r.Observacoes, FallbackNenhuma),
	}
	return strings.Join(lines, "\n")
}

type LaudoResponse struct {
	Laudo   string `json:"laudo"` // texto do laudo gerado
	Success bool   `json:"success"`
}

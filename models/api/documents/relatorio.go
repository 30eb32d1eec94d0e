package docapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type RelatorioRequest struct {
	ReportType   string `json:"reportType"` // tipo do relatório (Evolução, Alta, Atestado, ...)
	PatientInfo  string `json:"patientInfo"`
	ClinicalData string `json:"clinicalData"` // dados clínicos já compostos; se vazio, compostos a partir do formulário
	PatientData
	MotivoInternacao string `json:"motivoInternacao"`
	Evolucao         string `json:"evolucao"`
	Procedimentos    string `json:"procedimentos"`
	CondicaoAlta     string `json:"condicaoAlta"`
	Recomendacoes    string `json:"recomendacoes"`
	Observacoes      string `json:"observacoes"`
}

func (r RelatorioRequest) Validate() error {
	if len(strings.TrimSpace(r.ReportType)) == 0 {
		return errors.New("tipo de relatório não pode ser vazio")
	}
	if len(strings.TrimSpace(r.PatientInfo)) == 0 && len(strings.TrimSpace(r.Paciente)) == 0 {
		return errors.New("informações do paciente não podem ser vazias")
	}
	if len(strings.TrimSpace(r.ClinicalData)) == 0 && len(strings.TrimSpace(r.Evolucao)) == 0 {
		return errors.New("dados clínicos não podem ser vazios")
	}
	return nil
}

func (r RelatorioRequest) ComposedPatientInfo() string {
	if strings.TrimSpace(r.PatientInfo) != "" {
		return r.PatientInfo
	}
	return r.Compose()
}

func (r RelatorioRequest) ComposedClinicalData() string {
	if strings.TrimSpace(r.ClinicalData) != "" {
		return r.ClinicalData
	}
	lines := []string{
		"Motivo de internação: " + orFallback(r.MotivoInternacao, FallbackNaoInformado),
		"Evolução clínica: " + r.Evolucao,
		"Procedimentos realizados: " + r.Procedimentos,
		"Condição de alta: " + orFallback(r.CondicaoAlta, FallbackNaoEspecificada),
		"Recomendações: " + orFallback(r.Recomendacoes, FallbackNenhuma),
		"Observações: " + orFallback(r.Observacoes, FallbackNenhuma),
	}
	return strings.Join(lines, "\n")
}

type RelatorioResponse struct {
	Relatorio string `json:"relatorio"` // texto do relatório gerado
	Success   bool   `json:"success"`
}

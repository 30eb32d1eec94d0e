package docapimodels

import (
	"strings"

	"github.com/pkg/errors"
)

type ReceitaRequest struct {
	PatientInfo string `json:"patientInfo"`
	Diagnosis   string `json:"diagnosis"`
	Symptoms    string `json:"symptoms"` // quadro já composto; se vazio, composto a partir dos campos do formulário
	PatientData
	Medicamentos string `json:"medicamentos"`
	Posologia    string `json:"posologia"`
	Duracao      string `json:"duracao"`
	Observacoes  string `json:"observacoes"`
}

func (r ReceitaRequest) Validate() error {
	if len(strings.TrimSpace(r.Diagnosis)) == 0 {
		return errors.New("diagnóstico não pode ser vazio")
	}
	if len(strings.TrimSpace(r.PatientInfo)) == 0 && len(strings.TrimSpace(r.Paciente)) == 0 {
		return errors.New("informações do paciente não podem ser vazias")
	}
	if len(strings.TrimSpace(r.Symptoms)) == 0 && len(strings.TrimSpace(r.Medicamentos)) == 0 {
		return errors.New("medicamentos não podem ser vazios")
	}
	return nil
}

func (r ReceitaRequest) ComposedPatientInfo() string {
	if strings.TrimSpace(r.PatientInfo) != "" {
		return r.PatientInfo
	}
	return r.Compose()
}

func (r ReceitaRequest) ComposedSymptoms() string {
	if strings.TrimSpace(r.Symptoms) != "" {
		return r.Symptoms
	}
	lines := []string{
		"Medicamentos: " + r.Medicamentos,
		"Posologia: " + orFallback(r.Posologia, FallbackPosologia),
		"Duração: " + orFallback(r.Duracao, FallbackDuracao),
		"Observações: " + orFallback(r.Observacoes, FallbackNenhuma),
	}
	return strings.Join(lines, "\n")
}

type ReceitaResponse struct {
	Receita string `json:"receita"` // texto da receita gerada
	Success bool   `json:"success"`
}

package docapimodels

import (
	"fmt"
	"strings"
)

// Literais de preenchimento dos campos opcionais do formulário.
// Campos em branco nunca são interpolados vazios: o formato do prompt
// é constante independentemente do que o médico preencheu.
const (
	FallbackNaoInformado    = "Não informado"
	FallbackNaoEspecificado = "Não especificado"
	FallbackNaoEspecificada = "Não especificada"
	FallbackNenhuma         = "Nenhuma"
	FallbackPosologia       = "Conforme orientação médica"
	FallbackDuracao         = "Uso contínuo"
)

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// PatientData são os campos brutos do paciente vindos do formulário
type PatientData struct {
	Paciente string `json:"paciente"` // nome do paciente
	Idade    int    `json:"idade"`
	Sexo     string `json:"sexo"` // M/F
}

func (p PatientData) Compose() string {
	return fmt.Sprintf("%s, %d anos, sexo %s", p.Paciente, p.Idade, p.Sexo)
}

package documentshandler

import (
	"fmt"

	"medfy-backend/lib/completion"
	docapimodels "medfy-backend/models/api/documents"
)

// Instruções fixas por tipo de documento. Os textos são os mesmos usados
// em produção; mudanças aqui alteram o formato dos documentos gerados.
const (
	laudoSystemPrompt = "Você é um médico especialista em laudos médicos. Gere laudos profissionais, detalhados e tecnicamente precisos seguindo os padrões médicos brasileiros."

	laudoUserPrompt = `Gere um laudo médico completo e profissional para:

Tipo de exame: %s
Informações do paciente: %s
Achados clínicos: %s

O laudo deve conter:
1. Identificação do exame
2. Técnica utilizada
3. Descrição detalhada dos achados
4. Impressão diagnóstica
5. Conclusão médica

Use terminologia médica adequada e seja preciso nas observações.`

	receitaSystemPrompt = "Você é um médico experiente. Gere receitas médicas completas, seguras e adequadas aos padrões brasileiros. Inclua medicamentos apropriados, dosagens corretas, posologia e orientações ao paciente."

	receitaUserPrompt = `Gere uma receita médica completa e profissional para:

Informações do paciente: %s
Diagnóstico: %s
Sintomas: %s

A receita deve conter:
1. Medicamentos prescritos com nome comercial e genérico
2. Dosagem precisa
3. Posologia (como tomar)
4. Duração do tratamento
5. Orientações gerais ao paciente
6. Observações importantes

Seja preciso e siga as normas da ANVISA e CFM.`

	relatorioSystemPrompt = "Você é um médico especialista em documentação médica. Gere relatórios médicos completos, detalhados e profissionais seguindo os padrões do CFM e normas brasileiras."

	relatorioUserPrompt = `Gere um relatório médico completo e profissional:

Tipo de relatório: %s
Informações do paciente: %s
Dados clínicos: %s

O relatório deve conter:
1. Identificação do paciente
2. Histórico clínico relevante
3. Exame físico e achados
4. Evolução do quadro
5. Conduta médica adotada
6. Prognóstico
7. Recomendações e orientações

Use linguagem técnica adequada e seja detalhado nas informações.`
)

// BuildLaudoMessages monta o prompt de laudo. Função pura: a mesma
// requisição sempre produz a mesma sequência de mensagens.
func BuildLaudoMessages(req docapimodels.LaudoRequest) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: laudoSystemPrompt},
		{Role: completion.RoleUser, Content: fmt.Sprintf(laudoUserPrompt, req.ExamType, req.ComposedPatientInfo(), req.ComposedFindings())},
	}
}

func BuildReceitaMessages(req docapimodels.ReceitaRequest) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: receitaSystemPrompt},
		{Role: completion.RoleUser, Content: fmt.Sprintf(receitaUserPrompt, req.ComposedPatientInfo(), req.Diagnosis, req.ComposedSymptoms())},
	}
}

func BuildRelatorioMessages(req docapimodels.RelatorioRequest) []completion.Message {
	return []completion.Message{
		{Role: completion.RoleSystem, Content: relatorioSystemPrompt},
		{Role: completion.RoleUser, Content: fmt.Sprintf(relatorioUserPrompt, req.ReportType, req.ComposedPatientInfo(), req.ComposedClinicalData())},
	}
}

package chathandler

import (
	"medfy-backend/lib/completion"
	chatapimodels "medfy-backend/models/api/chat"
)

const (
	supportSystemPrompt = `Você é um assistente virtual especializado da Medfy, uma plataforma médica profissional.

Suas responsabilidades:
- Auxiliar médicos com dúvidas sobre o uso da plataforma
- Fornecer informações sobre funcionalidades (laudos, receitas, relatórios)
- Orientar sobre melhores práticas médicas e documentação
- Responder questões técnicas sobre a plataforma
- Ser sempre profissional, preciso e prestativo

Mantenha um tom profissional mas acessível. Seja claro e objetivo nas respostas.`

	assistantSystemPrompt = `Você é o assistente de suporte oficial do Medfy, uma plataforma premium de geração inteligente de documentos médicos com IA.

**Sobre o Medfy:**
- Plataforma para médicos gerarem laudos, receitas e relatórios médicos com IA
- Usa inteligência artificial (OpenAI GPT-4) para criar documentos profissionais
- Armazenamento seguro dos documentos gerados
- Disponível 24/7 para auxiliar profissionais de saúde

**Funcionalidades principais:**
1. **Laudos Médicos**: Raio-X, Ultrassom, Ressonância, Tomografia, Ecocardiograma, Mamografia
2. **Receitas**: Simples, Controlada, Especial, Antimicrobiana
3. **Relatórios**: Evolução, Alta, Atestado, Cirúrgico, Parecer Técnico, Sumário

**Como ajudar os usuários:**
- Explique como usar cada funcionalidade
- Oriente sobre preenchimento de formulários
- Ajude com dúvidas sobre documentos médicos
- Explique sobre autenticação e segurança
- Auxilie com problemas técnicos
- Seja profissional, claro e empático
- Use linguagem médica quando apropriado

**Diretrizes:**
- Sempre mantenha tom profissional e respeitoso
- Seja conciso mas completo nas respostas
- Ofereça exemplos práticos quando relevante
- Se não souber algo específico, seja honesto
- Priorize a segurança e privacidade dos dados médicos
- Incentive boas práticas médicas

Você está aqui para tornar a experiência no Medfy excepcional!`
)

// BuildSupportMessages monta o prompt do chat de suporte: persona fixa,
// histórico completo na ordem original e a nova mensagem do usuário por
// último. O histórico é reenviado inteiro a cada turno, sem janela nem
// resumo: o tamanho da requisição cresce com a conversa.
func BuildSupportMessages(message string, history []chatapimodels.ChatMessage) []completion.Message {
	messages := make([]completion.Message, 0, len(history)+2)
	messages = append(messages, completion.Message{Role: completion.RoleSystem, Content: supportSystemPrompt})
	for _, m := range history {
		messages = append(messages, completion.Message{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, completion.Message{Role: completion.RoleUser, Content: message})
	return messages
}

// BuildAssistantMessages monta o prompt da variante legada: o cliente já
// envia a lista completa de mensagens, apenas a persona é acrescentada.
func BuildAssistantMessages(clientMessages []chatapimodels.ChatMessage) []completion.Message {
	messages := make([]completion.Message, 0, len(clientMessages)+1)
	messages = append(messages, completion.Message{Role: completion.RoleSystem, Content: assistantSystemPrompt})
	for _, m := range clientMessages {
		messages = append(messages, completion.Message{Role: m.Role, Content: m.Content})
	}
	return messages
}

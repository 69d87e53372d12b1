package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/suagrafica/leads-api/internal/entity"
)

const chatSystemPromptTemplate = `Você é o Sua Gráfica Bot, um assistente virtual amigável e proativo da Sua Gráfica.
Seu objetivo principal é coletar os seguintes 6 dados do cliente: "nome", "empresa_ramo", "cargo", "email", "ja_e_cliente", "whatsapp".

Estes são os dados que já temos: %s

REGRAS DA CONVERSA:
1.  Converse naturalmente. Peça o próximo dado FALTANDO da lista (nome -> empresa_ramo -> cargo -> email -> ja_e_cliente -> whatsapp). Faltando agora: %s.
2.  NÃO peça por dados que já estão preenchidos.
3.  Após coletar o "email", a próxima pergunta DEVE ser "Você já é cliente da Sua Gráfica? (Sim ou Não)".
4.  Após coletar o "ja_e_cliente", a próxima pergunta DEVE ser "Ótimo! E qual o seu WhatsApp com DDD? (para agilizar o contato)".
5.  Se o usuário fornecer vários dados de uma vez, capture todos.

FORMATO DA RESPOSTA (JSON obrigatório):
{
    "botResponse": "O texto da sua resposta para o usuário.",
    "extractedData": {
        "nome": "[O nome extraído ESTA RODADA]",
        "empresa_ramo": "[O ramo extraído ESTA RODADA]",
        "cargo": "[O cargo extraído ESTA RODADA]",
        "email": "[O email extraído ESTA RODADA]",
        "ja_e_cliente": "[O 'Sim' ou 'Não' extraído ESTA RODADA]",
        "whatsapp": "[O whatsapp extraído ESTA RODADA]"
    }
}`

type ChatUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	IA       AIClientInterface
}

func NewChatUseCase(leadRepo entity.LeadRepositoryInterface, ia AIClientInterface) *ChatUseCase {
	return &ChatUseCase{
		LeadRepo: leadRepo,
		IA:       ia,
	}
}

// chatReply é o contrato de saída exigido da IA nesta rodada. Chaves
// desconhecidas do modelo são ignoradas em vez de confiadas.
type chatReply struct {
	BotResponse   string          `json:"botResponse"`
	ExtractedData entity.LeadData `json:"extractedData"`
}

func (uc *ChatUseCase) Execute(ctx context.Context, input ChatInput) (*ChatOutput, error) {
	if uc.IA == nil {
		return nil, ErrIAIndisponivel
	}

	systemPrompt := buildChatSystemPrompt(input.LeadData)

	log.Printf("ℹ️  [Gemini] Chamando IA com dados: %+v", input.LeadData)
	raw, err := uc.IA.GenerateChat(ctx, systemPrompt, input.ConversationHistory)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "IA_ERROR",
			Message: "erro ao gerar resposta do chat: " + err.Error(),
		}
	}

	var reply chatReply
	if err := json.Unmarshal([]byte(raw), &reply); err != nil {
		return nil, &TechnicalError{
			Code:    "IA_BAD_OUTPUT",
			Message: "resposta da IA fora do formato JSON exigido: " + err.Error(),
		}
	}

	if reply.BotResponse == "" {
		reply.BotResponse = "Desculpe, não entendi. Pode repetir?"
	}

	merged := input.LeadData.Merge(reply.ExtractedData)

	historico := append(input.ConversationHistory, entity.ChatMessage{
		Role: "bot",
		Text: reply.BotResponse,
		Time: "now",
	})

	output := &ChatOutput{
		BotResponse: reply.BotResponse,
		LeadData:    merged,
		LeadID:      input.LeadID,
		IsComplete:  merged.IsComplete(),
	}

	// Falha de banco aqui não derruba a resposta: o usuário ainda recebe
	// o texto do bot e o erro fica só no log.
	if input.LeadID != nil {
		if err := uc.LeadRepo.UpdateData(ctx, *input.LeadID, merged, historico); err != nil {
			log.Printf("❌ ERRO [DB-Chat] ao salvar o lead: %v", err)
		} else {
			log.Printf("✅  [DB-Chat] Lead atualizado com ID: %d", *input.LeadID)
		}
	} else {
		id, err := uc.LeadRepo.Insert(ctx, merged, historico)
		if err != nil {
			log.Printf("❌ ERRO [DB-Chat] ao salvar o lead: %v", err)
		} else {
			output.LeadID = &id
			log.Printf("✅  [DB-Chat] Lead salvo com ID: %d", id)
		}
	}

	if output.IsComplete {
		log.Println("✅  [IA] Coleta de dados (6/6) completa!")
	}

	return output, nil
}

func buildChatSystemPrompt(data entity.LeadData) string {
	known, _ := json.Marshal(data)

	missing := data.Missing()
	missingList := "nenhum"
	if len(missing) > 0 {
		missingList = strings.Join(missing, " -> ")
	}

	return fmt.Sprintf(chatSystemPromptTemplate, string(known), missingList)
}

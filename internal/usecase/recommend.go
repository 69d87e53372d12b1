package usecase

import (
	"context"
	"fmt"
	"log"

	"github.com/suagrafica/leads-api/internal/entity"
)

// Status de funil que o N8N observa para disparar o email da isca.
const statusAguardandoEnvio = "Aguardando Envio N8N"

const iscaPromptTemplate = `Você é um especialista de marketing sênior da Sua Gráfica.
Um cliente do ramo de "%s" pediu 5 ideias de brindes.

Gere uma lista com 5 ideias de brindes que se encaixam perfeitamente nesse nicho.
Para cada brinde, dê o NOME DO BRINDE e uma frase curta (1 linha) explicando POR QUE ele é bom para esse ramo.

Separe as ideias por faixas de preço:

**Brindes de Alto Impacto (Premium):**
1. [Nome do Brinde 1]: [Explicação de 1 linha]
2. [Nome do Brinde 2]: [Explicação de 1 linha]

**Brindes do Dia-a-Dia (Custo-Benefício):**
3. [Nome do Brinde 3]: [Explicação de 1 linha]
4. [Nome do Brinde 4]: [Explicação de 1 linha]

**Brindes de Grande Volume (Econômico):**
5. [Nome do Brinde 5]: [Explicação de 1 linha]`

type RecommendUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	IA       AIClientInterface
}

func NewRecommendUseCase(leadRepo entity.LeadRepositoryInterface, ia AIClientInterface) *RecommendUseCase {
	return &RecommendUseCase{
		LeadRepo: leadRepo,
		IA:       ia,
	}
}

func (uc *RecommendUseCase) Execute(ctx context.Context, input RecommendInput) (*RecommendOutput, error) {
	if uc.IA == nil {
		return nil, ErrIAIndisponivel
	}

	log.Printf("ℹ️  [Gemini] Gerando recomendações para o ramo: %s", input.Ramo)
	texto, err := uc.IA.GenerateText(ctx, fmt.Sprintf(iscaPromptTemplate, input.Ramo))
	if err != nil {
		return nil, &TechnicalError{
			Code:    "IA_ERROR",
			Message: "erro ao gerar as recomendações: " + err.Error(),
		}
	}
	log.Println("✅  [Gemini] Recomendações (Isca) geradas.")

	// A isca é texto livre, aceita como veio. Falha de banco fica no log;
	// a geração em si deu certo.
	if err := uc.LeadRepo.SaveIsca(ctx, input.LeadID, texto, statusAguardandoEnvio); err != nil {
		log.Printf("❌ ERRO [DB] ao ATUALIZAR lead com a isca: %v", err)
	} else {
		log.Printf("✅  [DB] Isca salva e status atualizado para '%s' no Lead ID: %d", statusAguardandoEnvio, input.LeadID)
	}

	return &RecommendOutput{
		Success: true,
		Message: "Isca gerada e salva no DB.",
	}, nil
}

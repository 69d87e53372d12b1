package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/suagrafica/leads-api/internal/entity"
	"github.com/suagrafica/leads-api/internal/infra/queue"
	"github.com/suagrafica/leads-api/internal/infra/webhook"
)

const (
	WebhookDisparado         = "disparado"
	WebhookNaoConfigurado    = "nao_configurado"
	WebhookLeadNaoEncontrado = "erro_lead_nao_encontrado"
)

type SaveQuoteUseCase struct {
	QuoteRepo entity.QuoteRepositoryInterface
	LeadRepo  entity.LeadRepositoryInterface
	Notifier  WebhookNotifierInterface
	Queue     queue.EventPublisherInterface
}

func NewSaveQuoteUseCase(
	quoteRepo entity.QuoteRepositoryInterface,
	leadRepo entity.LeadRepositoryInterface,
	notifier WebhookNotifierInterface,
	eventQueue queue.EventPublisherInterface,
) *SaveQuoteUseCase {
	return &SaveQuoteUseCase{
		QuoteRepo: quoteRepo,
		LeadRepo:  leadRepo,
		Notifier:  notifier,
		Queue:     eventQueue,
	}
}

func (uc *SaveQuoteUseCase) Execute(ctx context.Context, input SaveQuoteInput) (*SaveQuoteOutput, error) {
	if input.LeadID == 0 || input.QuoteData.ProdutoDesejado == "" || input.QuoteData.QuantidadeEstimada == "" {
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: "lead_id, produto e quantidade são obrigatórios.",
		}
	}

	quote := &entity.QuoteRequest{
		LeadID:             input.LeadID,
		ProdutoDesejado:    input.QuoteData.ProdutoDesejado,
		QuantidadeEstimada: input.QuoteData.QuantidadeEstimada,
		PrazoEntrega:       input.QuoteData.PrazoEntrega,
		TipoDeGravacao:     input.QuoteData.TipoDeGravacao,
		CidadeEntrega:      input.QuoteData.CidadeEntrega,
		EstadoEntrega:      input.QuoteData.EstadoEntrega,
	}

	log.Printf("ℹ️  [DB] Salvando orçamento para Lead ID: %d...", input.LeadID)
	orcamentoID, err := uc.QuoteRepo.Insert(ctx, quote)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "erro ao salvar o orçamento: " + err.Error(),
		}
	}
	log.Printf("✅  [DB] Orçamento ID: %d salvo com sucesso.", orcamentoID)

	// Os dados de contato são relidos do banco; a cópia do front não é
	// confiável para o payload do webhook.
	webhookStatus := WebhookNaoConfigurado
	contato, err := uc.LeadRepo.FindContact(ctx, input.LeadID)
	switch {
	case errors.Is(err, entity.ErrLeadNotFound):
		log.Printf("❌ ERRO [Webhook]: Lead ID %d não encontrado para disparar o webhook.", input.LeadID)
		webhookStatus = WebhookLeadNaoEncontrado

	case err != nil:
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "erro ao buscar dados do lead: " + err.Error(),
		}

	case uc.Notifier != nil:
		payload := webhook.QuotePayload{
			LeadID:             input.LeadID,
			OrcamentoID:        orcamentoID,
			Nome:               contato.Nome,
			Email:              contato.Email,
			EmpresaRamo:        contato.EmpresaRamo,
			Cargo:              contato.Cargo,
			JaECliente:         contato.JaECliente,
			Whatsapp:           contato.Whatsapp,
			ProdutoDesejado:    input.QuoteData.ProdutoDesejado,
			QuantidadeEstimada: input.QuoteData.QuantidadeEstimada,
			PrazoEntrega:       input.QuoteData.PrazoEntrega,
			TipoDeGravacao:     input.QuoteData.TipoDeGravacao,
			CidadeEntrega:      input.QuoteData.CidadeEntrega,
			EstadoEntrega:      input.QuoteData.EstadoEntrega,
		}

		// Fire-and-forget: o disparo conta como feito mesmo que o
		// receptor esteja fora do ar.
		log.Println("ℹ️  [Webhook] Disparando webhook de VENDAS...")
		if err := uc.Notifier.DispatchQuote(ctx, payload); err != nil {
			log.Printf("❌ ERRO [Webhook] Falha ao disparar o webhook: %v", err)
		} else {
			log.Println("✅  [Webhook] Webhook de VENDAS disparado.")
		}
		webhookStatus = WebhookDisparado

	default:
		log.Println("⚠️  [Webhook] SALES_WEBHOOK_URL não configurada. Webhook não disparado.")
	}

	if uc.Queue != nil {
		err := uc.Queue.PublishLeadEvent(ctx, queue.LeadEventPayload{
			Type:        queue.EventQuoteSaved,
			LeadID:      input.LeadID,
			OrcamentoID: orcamentoID,
		})
		if err != nil {
			log.Printf("❌ ERRO [Fila] ao publicar evento de orçamento: %v", err)
		}
	}

	return &SaveQuoteOutput{
		Success:       true,
		OrcamentoID:   orcamentoID,
		WebhookStatus: webhookStatus,
	}, nil
}

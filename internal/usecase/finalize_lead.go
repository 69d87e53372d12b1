package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/suagrafica/leads-api/internal/entity"
	"github.com/suagrafica/leads-api/internal/infra/mail"
	"github.com/suagrafica/leads-api/internal/infra/queue"
)

// Cargos com poder de compra: qualquer um deles + CNPJ real classifica
// o lead como Quente.
var cargosQuentes = []string{"marketing", "comprador", "diretor", "compras", "ceo", "agencia", "mkt"}

type FinalizeLeadUseCase struct {
	LeadRepo     entity.LeadRepositoryInterface
	EmailService EmailService
	Queue        queue.EventPublisherInterface
	AlertTo      string
}

func NewFinalizeLeadUseCase(
	leadRepo entity.LeadRepositoryInterface,
	emailService EmailService,
	eventQueue queue.EventPublisherInterface,
	alertTo string,
) *FinalizeLeadUseCase {
	return &FinalizeLeadUseCase{
		LeadRepo:     leadRepo,
		EmailService: emailService,
		Queue:        eventQueue,
		AlertTo:      alertTo,
	}
}

func (uc *FinalizeLeadUseCase) Execute(ctx context.Context, input FinalizeLeadInput) (*FinalizeLeadOutput, error) {
	status := ClassifyTemperature(input.Cargo, input.CnpjFornecido)

	log.Printf("ℹ️  [DB] Executando UPDATE para Lead ID: %d (CNPJ/Final)", input.LeadID)
	if err := uc.LeadRepo.Finalize(ctx, input.LeadID, input.CnpjFornecido, status, input.HistoricoChat); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "erro ao salvar o lead: " + err.Error(),
		}
	}
	log.Printf("✅  [DB] Lead finalizado com ID: %d (Status: %s)", input.LeadID, status)

	if status == "Quente" {
		uc.notifyHotLead(input)
	}

	return &FinalizeLeadOutput{
		Success: true,
		LeadID:  input.LeadID,
		Status:  status,
	}, nil
}

// notifyHotLead avisa o time de vendas em background. Falha de entrega
// não afeta a resposta da finalização.
func (uc *FinalizeLeadUseCase) notifyHotLead(input FinalizeLeadInput) {
	go func() {
		if uc.EmailService != nil && uc.AlertTo != "" {
			alert := mail.HotLeadAlertData{
				LeadID: input.LeadID,
				Cargo:  input.Cargo,
			}

			// Nome e WhatsApp vêm do banco; a finalização só recebe cargo e CNPJ.
			contato, err := uc.LeadRepo.FindContact(context.Background(), input.LeadID)
			if err != nil {
				log.Printf("⚠️ AVISO [Mail]: contato do lead %d não encontrado para o alerta: %v", input.LeadID, err)
			} else {
				alert.Nome = contato.Nome
				alert.Whatsapp = contato.Whatsapp
			}

			if err := uc.EmailService.SendHotLeadAlert(uc.AlertTo, alert); err != nil {
				log.Printf("❌ ERRO [Mail] ao enviar alerta de lead quente: %v", err)
			}
		}

		if uc.Queue != nil {
			err := uc.Queue.PublishLeadEvent(context.Background(), queue.LeadEventPayload{
				Type:   queue.EventLeadQuente,
				LeadID: input.LeadID,
				Status: "Quente",
			})
			if err != nil {
				log.Printf("❌ ERRO [Fila] ao publicar evento de lead quente: %v", err)
			}
		}
	}()
}

// ClassifyTemperature aplica a regra binária de temperatura: cargo com
// palavra-chave de compra/marketing E CNPJ fornecido que não seja um
// placeholder negativo.
func ClassifyTemperature(cargo, cnpj string) string {
	if cargo == "" || cnpj == "" {
		return "Frio"
	}

	cargoLower := strings.ToLower(cargo)
	temCargoQuente := false
	for _, c := range cargosQuentes {
		if strings.Contains(cargoLower, c) {
			temCargoQuente = true
			break
		}
	}
	if !temCargoQuente {
		return "Frio"
	}

	switch strings.ToLower(strings.TrimSpace(cnpj)) {
	case "nao", "não", "n", "":
		return "Frio"
	}

	return "Quente"
}

package usecase

import (
	"context"

	"github.com/suagrafica/leads-api/internal/entity"
	"github.com/suagrafica/leads-api/internal/infra/mail"
	"github.com/suagrafica/leads-api/internal/infra/webhook"
)

type AIClientInterface interface {
	GenerateChat(ctx context.Context, systemInstruction string, history []entity.ChatMessage) (string, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type WebhookNotifierInterface interface {
	DispatchQuote(ctx context.Context, payload webhook.QuotePayload) error
}

type EmailService interface {
	SendHotLeadAlert(to string, data mail.HotLeadAlertData) error
}

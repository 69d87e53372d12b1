package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Tipos de evento publicados para consumidores externos.
const (
	EventQuoteSaved = "lead.quote_saved"
	EventLeadQuente = "lead.quente"
)

type LeadEventPayload struct {
	EventID     string    `json:"event_id"`
	Type        string    `json:"type"`
	LeadID      int       `json:"lead_id"`
	OrcamentoID int       `json:"orcamento_id,omitempty"`
	Status      string    `json:"status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type EventPublisherInterface interface {
	PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error
}

type LeadEventProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *LeadEventProducer {
	return &LeadEventProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *LeadEventProducer) PublishLeadEvent(ctx context.Context, payload LeadEventPayload) error {
	if payload.EventID == "" {
		payload.EventID = uuid.New().String()
	}
	if payload.OccurredAt.IsZero() {
		payload.OccurredAt = time.Now()
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}

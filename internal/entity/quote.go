package entity

import (
	"context"
	"time"
)

// QuoteRequest é um pedido de orçamento vinculado a um Lead.
// Criado uma única vez por submissão, nunca atualizado ou removido.
type QuoteRequest struct {
	ID                 int       `json:"id"`
	LeadID             int       `json:"lead_id"`
	ProdutoDesejado    string    `json:"produto_desejado"`
	QuantidadeEstimada string    `json:"quantidade_estimada"`
	PrazoEntrega       string    `json:"prazo_entrega,omitempty"`
	TipoDeGravacao     string    `json:"tipo_de_gravacao,omitempty"`
	CidadeEntrega      string    `json:"cidade_entrega,omitempty"`
	EstadoEntrega      string    `json:"estado_entrega,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type QuoteRepositoryInterface interface {
	Insert(ctx context.Context, q *QuoteRequest) (int, error)
}

package database

import (
	"context"
	"database/sql"

	"github.com/suagrafica/leads-api/internal/entity"
)

type QuoteRepository struct {
	DB *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

// Insert grava o orçamento e devolve o id gerado. Orçamento nunca é
// atualizado ou removido depois de criado.
func (r *QuoteRepository) Insert(ctx context.Context, q *entity.QuoteRequest) (int, error) {
	query := `
		INSERT INTO quote_requests
			(lead_id, produto_desejado, quantidade_estimada, prazo_entrega, tipo_de_gravacao, cidade_entrega, estado_entrega)
		VALUES
			($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int
	err := r.DB.QueryRowContext(ctx, query,
		q.LeadID,
		q.ProdutoDesejado,
		q.QuantidadeEstimada,
		nullString(q.PrazoEntrega),
		nullString(q.TipoDeGravacao),
		nullString(q.CidadeEntrega),
		nullString(q.EstadoEntrega),
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	q.ID = id
	return id, nil
}

var _ entity.QuoteRepositoryInterface = (*QuoteRepository)(nil)
var _ entity.LeadRepositoryInterface = (*LeadRepository)(nil)

package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/suagrafica/leads-api/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Insert cria o lead na primeira rodada do chat, com status de funil
// 'Coletando'. Sem trava de unicidade no email.
func (r *LeadRepository) Insert(ctx context.Context, data entity.LeadData, historico []entity.ChatMessage) (int, error) {
	historicoJSON, err := marshalHistorico(historico)
	if err != nil {
		return 0, err
	}

	query := `
		INSERT INTO leads (nome, email, empresa_ramo, cargo, ja_e_cliente, whatsapp, historico_chat, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'Coletando')
		RETURNING id
	`

	var id int
	err = r.DB.QueryRowContext(ctx, query,
		nullString(data.Nome),
		nullString(data.Email),
		nullString(data.EmpresaRamo),
		nullString(data.Cargo),
		nullString(data.JaECliente),
		nullString(data.Whatsapp),
		historicoJSON,
	).Scan(&id)
	if err != nil {
		return 0, err
	}

	return id, nil
}

// UpdateData aplica a rodada no registro existente. COALESCE garante que
// campo já coletado nunca é apagado por uma rodada que o omite.
func (r *LeadRepository) UpdateData(ctx context.Context, id int, data entity.LeadData, historico []entity.ChatMessage) error {
	historicoJSON, err := marshalHistorico(historico)
	if err != nil {
		return err
	}

	query := `
		UPDATE leads SET
			nome = COALESCE($1, nome),
			email = COALESCE($2, email),
			empresa_ramo = COALESCE($3, empresa_ramo),
			cargo = COALESCE($4, cargo),
			ja_e_cliente = COALESCE($5, ja_e_cliente),
			whatsapp = COALESCE($6, whatsapp),
			historico_chat = $7
		WHERE id = $8
		RETURNING id
	`

	var returnedID int
	err = r.DB.QueryRowContext(ctx, query,
		nullString(data.Nome),
		nullString(data.Email),
		nullString(data.EmpresaRamo),
		nullString(data.Cargo),
		nullString(data.JaECliente),
		nullString(data.Whatsapp),
		historicoJSON,
		id,
	).Scan(&returnedID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrLeadNotFound
	}

	return err
}

// Finalize grava CNPJ (mantendo o antigo se o novo vier vazio), a
// classificação de temperatura e o transcript final.
func (r *LeadRepository) Finalize(ctx context.Context, id int, cnpj, statusLead string, historico []entity.ChatMessage) error {
	historicoJSON, err := marshalHistorico(historico)
	if err != nil {
		return err
	}

	query := `
		UPDATE leads SET
			cnpj_fornecido = COALESCE($1, cnpj_fornecido),
			status_lead = $2,
			historico_chat = $3
		WHERE id = $4
		RETURNING id
	`

	var returnedID int
	err = r.DB.QueryRowContext(ctx, query, nullString(cnpj), statusLead, historicoJSON, id).Scan(&returnedID)
	if errors.Is(err, sql.ErrNoRows) {
		return entity.ErrLeadNotFound
	}

	return err
}

// SaveIsca grava o texto da isca e marca o lead como aguardando o envio
// do email pelo N8N.
func (r *LeadRepository) SaveIsca(ctx context.Context, id int, isca, status string) error {
	query := `
		UPDATE leads SET
			isca = $1,
			status = $2,
			email_enviado = false
		WHERE id = $3
	`

	_, err := r.DB.ExecContext(ctx, query, isca, status, id)
	return err
}

// UpdateStatus é chamado pelo N8N depois de enviar o email da isca.
// email_enviado vira true incondicionalmente.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
		UPDATE leads SET
			status = $1,
			email_enviado = true
		WHERE id = $2
	`

	_, err := r.DB.ExecContext(ctx, query, status, id)
	return err
}

// FindContact relê os dados de contato direto do banco. O payload do
// webhook nunca confia na cópia enviada pelo front.
func (r *LeadRepository) FindContact(ctx context.Context, id int) (*entity.LeadData, error) {
	query := `
		SELECT nome, email, empresa_ramo, cargo, ja_e_cliente, whatsapp
		FROM leads
		WHERE id = $1
	`

	var nome, email, ramo, cargo, cliente, whatsapp sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&nome, &email, &ramo, &cargo, &cliente, &whatsapp)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	return &entity.LeadData{
		Nome:        nome.String,
		Email:       email.String,
		EmpresaRamo: ramo.String,
		Cargo:       cargo.String,
		JaECliente:  cliente.String,
		Whatsapp:    whatsapp.String,
	}, nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := `
		SELECT id, nome, email, empresa_ramo, cargo, cnpj_fornecido, ja_e_cliente,
		       whatsapp, status_lead, status, isca, email_enviado, historico_chat, created_at
		FROM leads
		WHERE id = $1
	`

	var lead entity.Lead
	var nome, email, ramo, cargo, cnpj, cliente, whatsapp, statusLead, status, isca sql.NullString
	var historicoJSON []byte

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&lead.ID,
		&nome,
		&email,
		&ramo,
		&cargo,
		&cnpj,
		&cliente,
		&whatsapp,
		&statusLead,
		&status,
		&isca,
		&lead.EmailEnviado,
		&historicoJSON,
		&lead.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	if err != nil {
		return nil, err
	}

	lead.Data = entity.LeadData{
		Nome:        nome.String,
		Email:       email.String,
		EmpresaRamo: ramo.String,
		Cargo:       cargo.String,
		JaECliente:  cliente.String,
		Whatsapp:    whatsapp.String,
	}
	lead.CnpjFornecido = cnpj.String
	lead.StatusLead = statusLead.String
	lead.Status = status.String
	lead.Isca = isca.String

	if len(historicoJSON) > 0 {
		if err := json.Unmarshal(historicoJSON, &lead.Historico); err != nil {
			return nil, fmt.Errorf("erro ao decodificar historico_chat: %w", err)
		}
	}

	return &lead, nil
}

func marshalHistorico(historico []entity.ChatMessage) ([]byte, error) {
	if historico == nil {
		historico = []entity.ChatMessage{}
	}
	b, err := json.Marshal(historico)
	if err != nil {
		return nil, fmt.Errorf("erro ao codificar historico_chat: %w", err)
	}
	return b, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

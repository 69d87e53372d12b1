package database

import (
	"context"
	"database/sql"
	"log"
)

const createLeadsTableSQL = `
CREATE TABLE IF NOT EXISTS leads (
    id SERIAL PRIMARY KEY,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    nome VARCHAR(255),
    email VARCHAR(255),
    empresa_ramo VARCHAR(255),
    cargo VARCHAR(255),
    cnpj_fornecido VARCHAR(50),
    status_lead VARCHAR(50) DEFAULT 'Frio',
    historico_chat JSONB,
    email_enviado BOOLEAN DEFAULT false,
    ja_e_cliente VARCHAR(50)
);
`

const createQuoteRequestsTableSQL = `
CREATE TABLE IF NOT EXISTS quote_requests (
    id SERIAL PRIMARY KEY,
    created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
    produto_desejado TEXT,
    quantidade_estimada VARCHAR(100),
    prazo_entrega VARCHAR(255),
    tipo_de_gravacao VARCHAR(255),
    cidade_entrega VARCHAR(255),
    estado_entrega VARCHAR(100),
    lead_id INTEGER REFERENCES leads(id)
);
`

// Colunas que entraram depois da primeira versão do schema.
const addNewColumnsSQL = `
ALTER TABLE leads
ADD COLUMN IF NOT EXISTS whatsapp VARCHAR(50),
ADD COLUMN IF NOT EXISTS isca TEXT,
ADD COLUMN IF NOT EXISTS status VARCHAR(100) DEFAULT 'Novo';
`

// RunMigrations garante que as tabelas e colunas existam. Idempotente,
// roda em todo boot do processo.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	log.Println("ℹ️  [DB] Verificando tabelas 'leads' e 'quote_requests'...")

	for _, stmt := range []string{createLeadsTableSQL, createQuoteRequestsTableSQL, addNewColumnsSQL} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			log.Printf("❌ ERRO [DB] ao configurar as tabelas: %v", err)
			return err
		}
	}

	log.Println("✅  [DB] Tabelas e colunas verificadas/criadas com sucesso.")
	return nil
}

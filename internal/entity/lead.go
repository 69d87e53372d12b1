package entity

import (
	"context"
	"errors"
	"time"
)

var ErrLeadNotFound = errors.New("lead não encontrado")

// ChatMessage é um turno da conversa do widget ('user' ou 'bot').
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
	Time string `json:"time,omitempty"`
}

// LeadData são os 6 dados que o bot coleta durante a conversa.
// A ordem de coleta é fixa: nome -> empresa_ramo -> cargo -> email ->
// ja_e_cliente -> whatsapp.
type LeadData struct {
	Nome        string `json:"nome,omitempty"`
	EmpresaRamo string `json:"empresa_ramo,omitempty"`
	Cargo       string `json:"cargo,omitempty"`
	Email       string `json:"email,omitempty"`
	JaECliente  string `json:"ja_e_cliente,omitempty"`
	Whatsapp    string `json:"whatsapp,omitempty"`
}

// Merge sobrescreve apenas os campos que vieram preenchidos nesta rodada.
// Campo já coletado nunca é apagado por uma rodada que o omite.
func (d LeadData) Merge(extracted LeadData) LeadData {
	if extracted.Nome != "" {
		d.Nome = extracted.Nome
	}
	if extracted.EmpresaRamo != "" {
		d.EmpresaRamo = extracted.EmpresaRamo
	}
	if extracted.Cargo != "" {
		d.Cargo = extracted.Cargo
	}
	if extracted.Email != "" {
		d.Email = extracted.Email
	}
	if extracted.JaECliente != "" {
		d.JaECliente = extracted.JaECliente
	}
	if extracted.Whatsapp != "" {
		d.Whatsapp = extracted.Whatsapp
	}
	return d
}

// IsComplete indica se os 6 dados já foram coletados.
func (d LeadData) IsComplete() bool {
	return d.Nome != "" &&
		d.EmpresaRamo != "" &&
		d.Cargo != "" &&
		d.Email != "" &&
		d.JaECliente != "" &&
		d.Whatsapp != ""
}

// Missing devolve os campos faltantes na ordem de coleta.
func (d LeadData) Missing() []string {
	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"nome", d.Nome},
		{"empresa_ramo", d.EmpresaRamo},
		{"cargo", d.Cargo},
		{"email", d.Email},
		{"ja_e_cliente", d.JaECliente},
		{"whatsapp", d.Whatsapp},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Lead é o registro acumulado de um prospect ao longo da sessão de chat.
// O id é atribuído pelo banco e imutável; email não tem trava UNIQUE
// (a coleta incremental grava linhas parcialmente preenchidas).
type Lead struct {
	ID            int           `json:"id"`
	Data          LeadData      `json:"data"`
	CnpjFornecido string        `json:"cnpj_fornecido,omitempty"`
	StatusLead    string        `json:"status_lead"` // Frio | Quente
	Status        string        `json:"status"`      // funil (conjunto aberto, também mutado pelo N8N)
	Isca          string        `json:"isca,omitempty"`
	EmailEnviado  bool          `json:"email_enviado"`
	Historico     []ChatMessage `json:"historico_chat,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, data LeadData, historico []ChatMessage) (int, error)
	UpdateData(ctx context.Context, id int, data LeadData, historico []ChatMessage) error
	Finalize(ctx context.Context, id int, cnpj, statusLead string, historico []ChatMessage) error
	SaveIsca(ctx context.Context, id int, isca, status string) error
	UpdateStatus(ctx context.Context, id int, status string) error
	FindContact(ctx context.Context, id int) (*LeadData, error)
	FindByID(ctx context.Context, id int) (*Lead, error)
}

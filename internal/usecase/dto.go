package usecase

import "github.com/suagrafica/leads-api/internal/entity"

type ChatInput struct {
	ConversationHistory []entity.ChatMessage `json:"conversationHistory"`
	LeadData            entity.LeadData      `json:"leadData"`
	LeadID              *int                 `json:"leadId"`
}

type ChatOutput struct {
	BotResponse string          `json:"botResponse"`
	LeadData    entity.LeadData `json:"leadData"`
	LeadID      *int            `json:"leadId"`
	IsComplete  bool            `json:"isComplete"`
}

type FinalizeLeadInput struct {
	LeadID        int                  `json:"lead_id"`
	Cargo         string               `json:"cargo"`
	CnpjFornecido string               `json:"cnpj_fornecido"`
	HistoricoChat []entity.ChatMessage `json:"historico_chat"`
}

type FinalizeLeadOutput struct {
	Success bool   `json:"success"`
	LeadID  int    `json:"lead_id"`
	Status  string `json:"status"`
}

type RecommendInput struct {
	LeadID int    `json:"lead_id"`
	Ramo   string `json:"ramo"`
}

type RecommendOutput struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type QuoteData struct {
	ProdutoDesejado    string `json:"produto_desejado"`
	QuantidadeEstimada string `json:"quantidade_estimada"`
	PrazoEntrega       string `json:"prazo_entrega"`
	TipoDeGravacao     string `json:"tipo_de_gravacao"`
	CidadeEntrega      string `json:"cidade_entrega"`
	EstadoEntrega      string `json:"estado_entrega"`
}

type SaveQuoteInput struct {
	LeadID    int       `json:"lead_id"`
	QuoteData QuoteData `json:"quote_data"`
}

type SaveQuoteOutput struct {
	Success       bool   `json:"success"`
	OrcamentoID   int    `json:"orcamento_id"`
	WebhookStatus string `json:"webhook_status"`
}

package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// QuotePayload é o que o orçamentista recebe no N8N: dados do orçamento
// mais os dados de contato relidos do banco.
type QuotePayload struct {
	LeadID             int    `json:"lead_id"`
	OrcamentoID        int    `json:"orcamento_id"`
	Nome               string `json:"nome"`
	Email              string `json:"email"`
	EmpresaRamo        string `json:"empresa_ramo"`
	Cargo              string `json:"cargo"`
	JaECliente         string `json:"ja_e_cliente"`
	Whatsapp           string `json:"whatsapp"`
	ProdutoDesejado    string `json:"produto_desejado"`
	QuantidadeEstimada string `json:"quantidade_estimada"`
	PrazoEntrega       string `json:"prazo_entrega"`
	TipoDeGravacao     string `json:"tipo_de_gravacao"`
	CidadeEntrega      string `json:"cidade_entrega"`
	EstadoEntrega      string `json:"estado_entrega"`
}

// Notifier dispara o webhook de vendas. Timeout curto e sem retry:
// falha de entrega é registrada no log e esquecida.
type Notifier struct {
	url  string
	http *http.Client
}

func NewNotifier(url string) *Notifier {
	return &Notifier{
		url:  url,
		http: &http.Client{Timeout: 3 * time.Second},
	}
}

func (n *Notifier) DispatchQuote(ctx context.Context, payload QuotePayload) error {
	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao gerar json do webhook: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao disparar o webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook recusou (status %d)", resp.StatusCode)
	}

	return nil
}

package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/suagrafica/leads-api/internal/entity"
)

const modelName = "gemini-2.5-flash-preview-09-2025"

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(apiKey, baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// GenerateChat envia o histórico com a instrução de sistema da rodada e
// exige resposta em JSON (responseMimeType). Papéis do widget viram os
// papéis da API: 'user' -> user, resto -> model.
func (c *Client) GenerateChat(ctx context.Context, systemInstruction string, history []entity.ChatMessage) (string, error) {
	contents := make([]content, 0, len(history))
	for _, msg := range history {
		role := "model"
		if msg.Role == "user" {
			role = "user"
		}
		contents = append(contents, content{
			Role:  role,
			Parts: []part{{Text: msg.Text}},
		})
	}

	payload := generateContentRequest{
		SystemInstruction: &content{Parts: []part{{Text: systemInstruction}}},
		Contents:          contents,
		GenerationConfig: generationConfig{
			Temperature:      0.7,
			ResponseMimeType: "application/json",
		},
	}

	return c.generate(ctx, payload)
}

// GenerateText dispara um prompt avulso, sem conversa, resposta livre.
func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	payload := generateContentRequest{
		Contents: []content{
			{Role: "user", Parts: []part{{Text: prompt}}},
		},
		GenerationConfig: generationConfig{Temperature: 0.5},
	}

	return c.generate(ctx, payload)
}

func (c *Client) generate(ctx context.Context, payload generateContentRequest) (string, error) {
	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, modelName)

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("erro ao gerar json: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("erro na conexão com gemini: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("api gemini rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	var response generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("erro ao ler resposta gemini: %w", err)
	}

	if len(response.Candidates) == 0 || len(response.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("resposta gemini vazia")
	}

	return response.Candidates[0].Content.Parts[0].Text, nil
}

// setHeaders centraliza os headers obrigatórios.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("x-goog-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
}

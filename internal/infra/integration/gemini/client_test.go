package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/suagrafica/leads-api/internal/entity"
)

func geminiReply(text string) string {
	return `{"candidates": [{"content": {"parts": [{"text": ` + mustQuote(text) + `}]}}]}`
}

func mustQuote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestClientGenerateChat(t *testing.T) {
	var receivedPath, receivedKey string
	var receivedReq generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedPath = r.URL.Path
		receivedKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&receivedReq)
		w.Write([]byte(geminiReply(`{"botResponse": "Olá!", "extractedData": {}}`)))
	}))
	defer server.Close()

	client := NewClient("chave-teste", server.URL)

	texto, err := client.GenerateChat(context.Background(), "instrução do sistema", []entity.ChatMessage{
		{Role: "bot", Text: "Qual o seu nome?"},
		{Role: "user", Text: "João"},
	})

	assert.NoError(t, err)
	assert.Equal(t, `{"botResponse": "Olá!", "extractedData": {}}`, texto)
	assert.Equal(t, "/models/"+modelName+":generateContent", receivedPath)
	assert.Equal(t, "chave-teste", receivedKey)

	// Papéis do widget mapeados para os papéis da API.
	if assert.Len(t, receivedReq.Contents, 2) {
		assert.Equal(t, "model", receivedReq.Contents[0].Role)
		assert.Equal(t, "user", receivedReq.Contents[1].Role)
	}
	if assert.NotNil(t, receivedReq.SystemInstruction) {
		assert.Equal(t, "instrução do sistema", receivedReq.SystemInstruction.Parts[0].Text)
	}
	assert.Equal(t, "application/json", receivedReq.GenerationConfig.ResponseMimeType)
}

func TestClientGenerateText(t *testing.T) {
	var receivedReq generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&receivedReq)
		w.Write([]byte(geminiReply("lista de brindes")))
	}))
	defer server.Close()

	client := NewClient("chave-teste", server.URL)

	texto, err := client.GenerateText(context.Background(), "5 ideias de brindes")

	assert.NoError(t, err)
	assert.Equal(t, "lista de brindes", texto)

	// Prompt avulso: sem instrução de sistema e resposta em texto livre.
	assert.Nil(t, receivedReq.SystemInstruction)
	assert.Empty(t, receivedReq.GenerationConfig.ResponseMimeType)
	if assert.Len(t, receivedReq.Contents, 1) {
		assert.Equal(t, "user", receivedReq.Contents[0].Role)
	}
}

func TestClientStatusNao2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "quota"}`))
	}))
	defer server.Close()

	client := NewClient("chave-teste", server.URL)

	_, err := client.GenerateText(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 429")
}

func TestClientRespostaSemCandidatos(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := NewClient("chave-teste", server.URL)

	_, err := client.GenerateText(context.Background(), "prompt")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "vazia")
}

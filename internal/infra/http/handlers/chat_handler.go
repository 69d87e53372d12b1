package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/suagrafica/leads-api/internal/infra/http/middleware"
	"github.com/suagrafica/leads-api/internal/usecase"
)

type ChatHandler struct {
	ChatUC *usecase.ChatUseCase
}

func NewChatHandler(uc *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{ChatUC: uc}
}

func (h *ChatHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ChatInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	output, err := h.ChatUC.Execute(r.Context(), input)
	if errors.Is(err, usecase.ErrIAIndisponivel) {
		writeError(w, http.StatusServiceUnavailable, "Serviço de IA não está disponível.")
		return
	}
	if err != nil {
		log.Printf("❌ ERRO [Gemini] ao gerar resposta do chat: %v", err)
		middleware.RecordIAError("chat")
		writeError(w, http.StatusInternalServerError, "Erro ao processar a resposta da IA.")
		return
	}

	middleware.RecordChatTurn(output.IsComplete)
	writeJSON(w, http.StatusOK, output)
}

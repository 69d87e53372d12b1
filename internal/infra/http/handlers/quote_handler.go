package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/suagrafica/leads-api/internal/infra/http/middleware"
	"github.com/suagrafica/leads-api/internal/usecase"
)

type QuoteHandler struct {
	SaveQuoteUC *usecase.SaveQuoteUseCase
}

func NewQuoteHandler(uc *usecase.SaveQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{SaveQuoteUC: uc}
}

func (h *QuoteHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaveQuoteInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	output, err := h.SaveQuoteUC.Execute(r.Context(), input)
	if err != nil {
		if usecase.IsDomainError(err) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("❌ ERRO [DB] ao salvar o orçamento: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao salvar o orçamento.")
		return
	}

	middleware.RecordQuoteSaved(output.WebhookStatus)
	writeJSON(w, http.StatusCreated, output)
}

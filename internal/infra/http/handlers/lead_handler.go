package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/suagrafica/leads-api/internal/infra/http/middleware"
	"github.com/suagrafica/leads-api/internal/usecase"
)

// LeadHandler fecha a coleta: grava CNPJ, classifica a temperatura e
// persiste o transcript final.
type LeadHandler struct {
	FinalizeUC *usecase.FinalizeLeadUseCase
}

func NewLeadHandler(uc *usecase.FinalizeLeadUseCase) *LeadHandler {
	return &LeadHandler{FinalizeUC: uc}
}

func (h *LeadHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.FinalizeLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if input.LeadID == 0 {
		writeError(w, http.StatusBadRequest, "lead_id é obrigatório.")
		return
	}

	output, err := h.FinalizeUC.Execute(r.Context(), input)
	if err != nil {
		log.Printf("❌ ERRO [DB] ao salvar o lead (final): %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao salvar o lead.")
		return
	}

	middleware.RecordLeadFinalizado(output.Status)
	writeJSON(w, http.StatusCreated, output)
}

package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/suagrafica/leads-api/internal/infra/http/middleware"
	"github.com/suagrafica/leads-api/internal/usecase"
)

type RecommendationHandler struct {
	RecommendUC *usecase.RecommendUseCase
}

func NewRecommendationHandler(uc *usecase.RecommendUseCase) *RecommendationHandler {
	return &RecommendationHandler{RecommendUC: uc}
}

func (h *RecommendationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.RecommendInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if input.LeadID == 0 || input.Ramo == "" {
		writeError(w, http.StatusBadRequest, "ID do Lead e Ramo são obrigatórios.")
		return
	}

	output, err := h.RecommendUC.Execute(r.Context(), input)
	if errors.Is(err, usecase.ErrIAIndisponivel) {
		writeError(w, http.StatusServiceUnavailable, "Serviço de IA não está disponível.")
		return
	}
	if err != nil {
		log.Printf("❌ ERRO [Gemini] ao gerar recomendações: %v", err)
		middleware.RecordIAError("recommendations")
		writeError(w, http.StatusInternalServerError, "Erro ao gerar as recomendações.")
		return
	}

	writeJSON(w, http.StatusOK, output)
}

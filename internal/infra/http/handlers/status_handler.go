package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/suagrafica/leads-api/internal/entity"
)

// StatusHandler é a porta de entrada do N8N: depois de enviar o email da
// isca, o workflow devolve o novo status do funil por aqui.
type StatusHandler struct {
	LeadRepo  entity.LeadRepositoryInterface
	SecretKey string
}

func NewStatusHandler(leadRepo entity.LeadRepositoryInterface, secretKey string) *StatusHandler {
	return &StatusHandler{
		LeadRepo:  leadRepo,
		SecretKey: secretKey,
	}
}

type UpdateStatusRequest struct {
	LeadID    int    `json:"lead_id"`
	NewStatus string `json:"new_status"`
}

type UpdateStatusResponse struct {
	Success   bool   `json:"success"`
	LeadID    int    `json:"lead_id"`
	NewStatus string `json:"new_status"`
}

func (h *StatusHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// Sem segredo configurado não existe token válido: tudo é 401.
	auth := r.Header.Get("Authorization")
	if h.SecretKey == "" || auth != "Bearer "+h.SecretKey {
		log.Println("❌ ERRO [Auth]: Tentativa de acesso não autorizada ao /api/update-status-n8n.")
		writeError(w, http.StatusUnauthorized, "Não autorizado")
		return
	}

	var req UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "JSON inválido.")
		return
	}

	if req.LeadID == 0 || req.NewStatus == "" {
		writeError(w, http.StatusBadRequest, "lead_id e new_status são obrigatórios.")
		return
	}

	log.Printf("ℹ️  [DB-N8N] Atualizando status do Lead ID: %d para '%s'...", req.LeadID, req.NewStatus)
	if err := h.LeadRepo.UpdateStatus(r.Context(), req.LeadID, req.NewStatus); err != nil {
		log.Printf("❌ ERRO [DB-N8N] ao atualizar o status: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro ao atualizar o status.")
		return
	}
	log.Println("✅  [DB-N8N] Status atualizado com sucesso.")

	writeJSON(w, http.StatusOK, UpdateStatusResponse{
		Success:   true,
		LeadID:    req.LeadID,
		NewStatus: req.NewStatus,
	})
}

package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AKastantin/BPP-LP/internal/usecase"
)

type EmailHandler struct {
	EmailResultsUC *usecase.EmailResultsUseCase
}

func NewEmailHandler(emailResultsUC *usecase.EmailResultsUseCase) *EmailHandler {
	return &EmailHandler{EmailResultsUC: emailResultsUC}
}

func (h *EmailHandler) HandleEmailResults(w http.ResponseWriter, r *http.Request) {
	var input usecase.EmailResultsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	request, err := h.EmailResultsUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, map[string]any{"emailRequest": request})
}

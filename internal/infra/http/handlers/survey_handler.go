package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AKastantin/BPP-LP/internal/usecase"
)

type SurveyHandler struct {
	SurveyUC  *usecase.SubmitSurveyUseCase
	UpdatesUC *usecase.PropertyUpdatesSurveyUseCase
}

func NewSurveyHandler(surveyUC *usecase.SubmitSurveyUseCase, updatesUC *usecase.PropertyUpdatesSurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		SurveyUC:  surveyUC,
		UpdatesUC: updatesUC,
	}
}

func (h *SurveyHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	var input usecase.SubmitSurveyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	response, err := h.SurveyUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, map[string]any{"response": response})
}

func (h *SurveyHandler) HandlePropertyUpdates(w http.ResponseWriter, r *http.Request) {
	var input usecase.PropertyUpdatesSurveyInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	response, err := h.UpdatesUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, map[string]any{"response": response})
}

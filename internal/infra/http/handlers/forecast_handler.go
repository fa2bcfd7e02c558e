package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/AKastantin/BPP-LP/internal/infra/http/middleware"
	"github.com/AKastantin/BPP-LP/internal/usecase"
)

type ForecastHandler struct {
	ForecastUC *usecase.PropertyForecastUseCase
	SearchUC   *usecase.PropertySearchUseCase
}

func NewForecastHandler(forecastUC *usecase.PropertyForecastUseCase, searchUC *usecase.PropertySearchUseCase) *ForecastHandler {
	return &ForecastHandler{
		ForecastUC: forecastUC,
		SearchUC:   searchUC,
	}
}

func (h *ForecastHandler) HandleForecast(w http.ResponseWriter, r *http.Request) {
	var input usecase.PropertyForecastInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.ForecastUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordForecastGenerated()
	respondSuccess(w, map[string]any{
		"forecast": output.Forecast,
		"results":  output.Results,
	})
}

func (h *ForecastHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	var input usecase.PropertySearchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	results, err := h.SearchUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	respondSuccess(w, map[string]any{"results": results})
}

package handlers

import (
	"net/http"

	"github.com/AKastantin/BPP-LP/internal/infra/addresses"
	"github.com/AKastantin/BPP-LP/internal/usecase"
)

type AddressHandler struct {
	Repo usecase.AddressSearcher
}

func NewAddressHandler(repo usecase.AddressSearcher) *AddressHandler {
	return &AddressHandler{Repo: repo}
}

// HandleSearch answers the typeahead widget. No q parameter browses the
// first 20 entries; a q under 2 characters short-circuits without scanning
// and says so, so the widget can show its "type more" hint.
func (h *AddressHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if !query.Has("q") {
		respondSuccess(w, map[string]any{"addresses": h.Repo.Browse(r.Context())})
		return
	}

	term := query.Get("q")
	if len(term) < addresses.MinSearchLength {
		respondSuccess(w, map[string]any{
			"addresses": []any{},
			"message":   "Search term must be at least 2 characters",
		})
		return
	}

	respondSuccess(w, map[string]any{"addresses": h.Repo.Search(r.Context(), term)})
}

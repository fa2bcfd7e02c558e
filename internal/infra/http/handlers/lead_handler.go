package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/http/middleware"
	"github.com/AKastantin/BPP-LP/internal/usecase"
)

// LeadHandler serves the four lead-producing forms. They all share the IP
// rate limiter: bots hammer exactly these endpoints.
type LeadHandler struct {
	CaptureLeadUC *usecase.CaptureLeadUseCase
	DemoRequestUC *usecase.DemoRequestUseCase
	NewsletterUC  *usecase.NewsletterUseCase
	ContactUC     *usecase.ContactUseCase

	rateLimiter *RateLimiter
}

func NewLeadHandler(
	captureLeadUC *usecase.CaptureLeadUseCase,
	demoRequestUC *usecase.DemoRequestUseCase,
	newsletterUC *usecase.NewsletterUseCase,
	contactUC *usecase.ContactUseCase,
) *LeadHandler {
	return &LeadHandler{
		CaptureLeadUC: captureLeadUC,
		DemoRequestUC: demoRequestUC,
		NewsletterUC:  newsletterUC,
		ContactUC:     contactUC,
		rateLimiter:   NewRateLimiter(10, time.Minute), // 10 req/min per IP
	}
}

func (h *LeadHandler) allow(w http.ResponseWriter, r *http.Request) bool {
	if h.rateLimiter.Allow(getClientIP(r)) {
		return true
	}
	respondError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
	return false
}

func (h *LeadHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.CaptureLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.CaptureLeadUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(lead.LeadSource)
	respondSuccess(w, map[string]any{"lead": lead})
}

func (h *LeadHandler) HandleDemoRequest(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.DemoRequestInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.DemoRequestUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(entity.SourceDemoRequest)
	respondSuccess(w, map[string]any{"lead": lead})
}

func (h *LeadHandler) HandleNewsletter(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.NewsletterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.NewsletterUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(entity.SourceNewsletter)
	respondSuccess(w, map[string]any{"lead": lead})
}

func (h *LeadHandler) HandleContact(w http.ResponseWriter, r *http.Request) {
	if !h.allow(w, r) {
		return
	}

	var input usecase.ContactInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.ContactUC.Execute(r.Context(), input)
	if err != nil {
		respondUseCaseError(w, err)
		return
	}

	middleware.RecordLeadCaptured(entity.SourceContactForm)
	respondSuccess(w, map[string]any{"lead": lead})
}

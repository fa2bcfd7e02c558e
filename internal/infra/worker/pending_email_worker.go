package worker

import (
	"context"
	"log"
	"time"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/queue"
)

type PendingRequestStore interface {
	FindPending(ctx context.Context) ([]*entity.EmailRequest, error)
}

type ReportPublisher interface {
	PublishEmailReport(ctx context.Context, payload queue.EmailReportPayload) error
}

// PendingEmailWorker sweeps email requests that never reached the delivery
// queue (broker briefly down, process restarted between store and publish)
// and republishes them. Requests younger than retryAfter are left alone so
// the sweep never races the publish done on the request path.
type PendingEmailWorker struct {
	repo         PendingRequestStore
	producer     ReportPublisher
	retryAfter   time.Duration
	tickInterval time.Duration
}

func NewPendingEmailWorker(repo PendingRequestStore, producer ReportPublisher) *PendingEmailWorker {
	return &PendingEmailWorker{
		repo:         repo,
		producer:     producer,
		retryAfter:   2 * time.Minute,
		tickInterval: 1 * time.Minute,
	}
}

func (w *PendingEmailWorker) Start(ctx context.Context) {
	log.Println("🕒 Pending email worker started (2min retry window)")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Pending email worker stopped")
			return
		case <-ticker.C:
			w.republishPending(ctx)
		}
	}
}

func (w *PendingEmailWorker) republishPending(ctx context.Context) {
	pending, err := w.repo.FindPending(ctx)
	if err != nil {
		log.Printf("❌ Failed to load pending email requests: %v", err)
		return
	}

	republished := 0
	for _, request := range pending {
		if time.Since(request.CreatedAt) < w.retryAfter {
			continue
		}

		payload := queue.EmailReportPayload{
			RequestID:       request.ID,
			Email:           request.Email,
			PropertyAddress: request.PropertyAddress,
			Results:         request.PropertyResults,
		}

		if err := w.producer.PublishEmailReport(ctx, payload); err != nil {
			log.Printf("⚠️ Failed to republish email request %s: %v", request.ID, err)
			continue
		}
		republished++
	}

	if republished > 0 {
		log.Printf("✅ %d pending email request(s) republished", republished)
	}
}

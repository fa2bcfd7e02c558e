package usecase

import (
	"context"
	"log"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/integration/telegram"
	"github.com/AKastantin/BPP-LP/internal/infra/queue"
)

type EmailResultsUseCase struct {
	EmailRequestRepo EmailRequestRepositoryInterface
	Queue            QueueProducerInterface
	Notifier         Notifier
}

func NewEmailResultsUseCase(
	emailRequestRepo EmailRequestRepositoryInterface,
	producer QueueProducerInterface,
	notifier Notifier,
) *EmailResultsUseCase {
	return &EmailResultsUseCase{
		EmailRequestRepo: emailRequestRepo,
		Queue:            producer,
		Notifier:         notifier,
	}
}

// Execute records the "email me this report" intent. The request succeeds
// once the record is stored; handing it to the delivery queue is best
// effort, and the pending sweeper retries anything that missed the queue.
func (uc *EmailResultsUseCase) Execute(ctx context.Context, input EmailResultsInput) (*entity.EmailRequest, error) {
	if err := firstError(ValidateEmailResultsInput(input)); err != nil {
		return nil, err
	}

	request, err := entity.NewEmailRequest(input.Email, input.PropertyAddress, input.PropertyResults)
	if err != nil {
		return nil, err
	}

	if err := uc.EmailRequestRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	if uc.Queue != nil {
		payload := queue.EmailReportPayload{
			RequestID:       request.ID,
			Email:           request.Email,
			PropertyAddress: request.PropertyAddress,
			Results:         request.PropertyResults,
		}
		if err := uc.Queue.PublishEmailReport(ctx, payload); err != nil {
			log.Printf("⚠️ Email report %s not queued: %v", request.ID, err)
		}
	}

	if uc.Notifier != nil {
		message := telegram.FormatEmailRequestMessage(telegram.EmailRequestMessage{
			Email:           input.Email,
			PropertyAddress: input.PropertyAddress,
			Results:         input.PropertyResults,
		})
		go uc.Notifier.SendMessage(context.Background(), message)
	}

	return request, nil
}

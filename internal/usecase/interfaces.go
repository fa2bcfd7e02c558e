package usecase

import (
	"context"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/queue"
)

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *entity.Lead) error
	FindByID(ctx context.Context, id string) (*entity.Lead, error)
	FindByEmail(ctx context.Context, email string) (*entity.Lead, error)
}

type ForecastRepositoryInterface interface {
	Create(ctx context.Context, forecast *entity.PropertyForecast) error
	FindByID(ctx context.Context, id string) (*entity.PropertyForecast, error)
}

type SurveyRepositoryInterface interface {
	Create(ctx context.Context, response *entity.SurveyResponse) error
	FindByID(ctx context.Context, id string) (*entity.SurveyResponse, error)
}

type EmailRequestRepositoryInterface interface {
	Create(ctx context.Context, request *entity.EmailRequest) error
	FindByID(ctx context.Context, id string) (*entity.EmailRequest, error)
	MarkAsSent(ctx context.Context, id string) error
	FindPending(ctx context.Context) ([]*entity.EmailRequest, error)
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}

type AddressSearcher interface {
	Search(ctx context.Context, term string) []*entity.PropertyAddress
	Browse(ctx context.Context) []*entity.PropertyAddress
}

// Notifier pushes a pre-formatted message to the operator channel. Returns
// whether delivery succeeded; callers never treat false as a request failure.
type Notifier interface {
	SendMessage(ctx context.Context, text string) bool
}

type QueueProducerInterface interface {
	PublishEmailReport(ctx context.Context, payload queue.EmailReportPayload) error
}

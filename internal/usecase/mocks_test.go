package usecase

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/AKastantin/BPP-LP/internal/entity"
	"github.com/AKastantin/BPP-LP/internal/infra/queue"
)

// MockLeadRepository
type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

func (m *MockLeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

func (m *MockLeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Lead), args.Error(1)
}

// chanNotifier records messages on a channel so tests can wait for the
// fire-and-forget goroutine.
type chanNotifier struct {
	messages chan string
}

func newChanNotifier() *chanNotifier {
	return &chanNotifier{messages: make(chan string, 4)}
}

func (n *chanNotifier) SendMessage(ctx context.Context, text string) bool {
	n.messages <- text
	return true
}

func (n *chanNotifier) wait(timeout time.Duration) (string, bool) {
	select {
	case message := <-n.messages:
		return message, true
	case <-time.After(timeout):
		return "", false
	}
}

// fakeProducer records published payloads synchronously.
type fakeProducer struct {
	published []queue.EmailReportPayload
	err       error
}

func (p *fakeProducer) PublishEmailReport(ctx context.Context, payload queue.EmailReportPayload) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, payload)
	return nil
}

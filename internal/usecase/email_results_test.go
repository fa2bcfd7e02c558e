package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AKastantin/BPP-LP/internal/infra/database"
)

func TestEmailResultsStoresAndQueues(t *testing.T) {
	repo := database.NewMemoryEmailRequestRepository()
	producer := &fakeProducer{}
	uc := NewEmailResultsUseCase(repo, producer, nil)
	ctx := context.Background()

	results := map[string]any{"currentValue": 350000.0, "confidence": 94.0}
	request, err := uc.Execute(ctx, EmailResultsInput{
		Email:           "a@b.com",
		PropertyAddress: "1 Test St",
		PropertyResults: results,
	})

	assert.NoError(t, err)
	assert.False(t, request.Sent)

	pending, err := repo.FindPending(ctx)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	assert.Len(t, producer.published, 1)
	assert.Equal(t, request.ID, producer.published[0].RequestID)
	assert.Equal(t, "1 Test St", producer.published[0].PropertyAddress)
}

func TestEmailResultsSucceedsWhenQueueFails(t *testing.T) {
	repo := database.NewMemoryEmailRequestRepository()
	producer := &fakeProducer{err: errors.New("broker down")}
	uc := NewEmailResultsUseCase(repo, producer, nil)

	request, err := uc.Execute(context.Background(), EmailResultsInput{
		Email:           "a@b.com",
		PropertyAddress: "1 Test St",
		PropertyResults: map[string]any{},
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, request.ID)
}

func TestEmailResultsWithoutProducer(t *testing.T) {
	repo := database.NewMemoryEmailRequestRepository()
	uc := NewEmailResultsUseCase(repo, nil, nil)

	request, err := uc.Execute(context.Background(), EmailResultsInput{
		Email:           "a@b.com",
		PropertyAddress: "1 Test St",
		PropertyResults: map[string]any{},
	})

	assert.NoError(t, err)
	assert.False(t, request.Sent)
}

func TestEmailResultsValidation(t *testing.T) {
	uc := NewEmailResultsUseCase(database.NewMemoryEmailRequestRepository(), nil, nil)
	ctx := context.Background()

	_, err := uc.Execute(ctx, EmailResultsInput{PropertyAddress: "1 Test St", PropertyResults: map[string]any{}})
	assert.True(t, IsValidationError(err))

	_, err = uc.Execute(ctx, EmailResultsInput{Email: "a@b.com", PropertyResults: map[string]any{}})
	assert.True(t, IsValidationError(err))

	_, err = uc.Execute(ctx, EmailResultsInput{Email: "a@b.com", PropertyAddress: "1 Test St"})
	assert.True(t, IsValidationError(err))
}

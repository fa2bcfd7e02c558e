package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AKastantin/BPP-LP/internal/entity"
)

func mustEmailRequest(t *testing.T, email string) *entity.EmailRequest {
	t.Helper()
	request, err := entity.NewEmailRequest(email, "1 Test St", map[string]any{"currentValue": 350000})
	assert.NoError(t, err)
	return request
}

func TestEmailRequestRepositoryMarkAsSent(t *testing.T) {
	repo := NewMemoryEmailRequestRepository()
	ctx := context.Background()

	request := mustEmailRequest(t, "a@b.com")
	assert.NoError(t, repo.Create(ctx, request))

	pending, err := repo.FindPending(ctx)
	assert.NoError(t, err)
	assert.Len(t, pending, 1)

	assert.NoError(t, repo.MarkAsSent(ctx, request.ID))

	pending, err = repo.FindPending(ctx)
	assert.NoError(t, err)
	assert.Empty(t, pending)

	found, err := repo.FindByID(ctx, request.ID)
	assert.NoError(t, err)
	assert.True(t, found.Sent)
}

func TestEmailRequestRepositoryMarkAsSentUnknownID(t *testing.T) {
	repo := NewMemoryEmailRequestRepository()

	err := repo.MarkAsSent(context.Background(), "no-such-id")
	assert.Error(t, err)
}

func TestEmailRequestRepositoryFindPendingOldestFirst(t *testing.T) {
	repo := NewMemoryEmailRequestRepository()
	ctx := context.Background()

	first := mustEmailRequest(t, "first@b.com")
	second := mustEmailRequest(t, "second@b.com")
	third := mustEmailRequest(t, "third@b.com")

	assert.NoError(t, repo.Create(ctx, second))
	assert.NoError(t, repo.Create(ctx, third))
	assert.NoError(t, repo.Create(ctx, first))

	pending, err := repo.FindPending(ctx)
	assert.NoError(t, err)
	assert.Len(t, pending, 3)
	for i := 1; i < len(pending); i++ {
		assert.False(t, pending[i].CreatedAt.Before(pending[i-1].CreatedAt))
	}
}

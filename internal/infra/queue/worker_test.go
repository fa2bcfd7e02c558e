package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubSender struct {
	sent []EmailReportPayload
	err  error
}

func (s *stubSender) SendPropertyReport(payload EmailReportPayload) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, payload)
	return nil
}

type stubMarker struct {
	marked []string
	err    error
}

func (m *stubMarker) MarkAsSent(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	m.marked = append(m.marked, id)
	return nil
}

func TestProcessMessageSendsAndMarks(t *testing.T) {
	sender := &stubSender{}
	marker := &stubMarker{}
	w := NewWorker(nil, sender, marker)

	payload := EmailReportPayload{
		RequestID:       "req-1",
		Email:           "report@example.com",
		PropertyAddress: "12 Oxford Street",
		Results:         map[string]any{"currentValue": float64(350000)},
	}

	assert.NoError(t, w.processMessage(context.Background(), payload))
	assert.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"req-1"}, marker.marked)
}

func TestProcessMessageSendFailureSkipsMark(t *testing.T) {
	sender := &stubSender{err: errors.New("smtp down")}
	marker := &stubMarker{}
	w := NewWorker(nil, sender, marker)

	err := w.processMessage(context.Background(), EmailReportPayload{RequestID: "req-2"})
	assert.Error(t, err)
	assert.Empty(t, marker.marked)
}

func TestProcessMessageMarkFailureStillSucceeds(t *testing.T) {
	// The report went out; a stale pending flag must not trigger a redelivery.
	sender := &stubSender{}
	marker := &stubMarker{err: errors.New("store down")}
	w := NewWorker(nil, sender, marker)

	assert.NoError(t, w.processMessage(context.Background(), EmailReportPayload{RequestID: "req-3"}))
	assert.Len(t, sender.sent, 1)
}

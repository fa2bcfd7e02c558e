package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReportSender delivers one rendered property report.
type ReportSender interface {
	SendPropertyReport(payload EmailReportPayload) error
}

// SentMarker flips the stored request once delivery succeeded.
type SentMarker interface {
	MarkAsSent(ctx context.Context, id string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  ReportSender
	Repo    SentMarker
}

func NewWorker(ch *amqp.Channel, sender ReportSender, repo SentMarker) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
		Repo:    repo,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("❌ Failed to register RabbitMQ consumer: %s", err)
	}

	for d := range msgs {
		var payload EmailReportPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			log.Printf("❌ [WORKER] Invalid JSON: %s", err)
			// Malformed message. Reject without requeue so the queue keeps moving.
			d.Nack(false, false)
			continue
		}

		log.Printf("⚙️ [WORKER] Sending property report for %s to %s", payload.PropertyAddress, payload.Email)

		if err := w.processMessage(context.Background(), payload); err != nil {
			log.Printf("❌ [WORKER] Delivery failed: %s", err)
			d.Nack(false, false)
		} else {
			log.Printf("✅ [WORKER] Report %s delivered", payload.RequestID)
			d.Ack(false)
		}
	}
}

func (w *Worker) processMessage(ctx context.Context, payload EmailReportPayload) error {
	if err := w.Sender.SendPropertyReport(payload); err != nil {
		return err
	}

	if err := w.Repo.MarkAsSent(ctx, payload.RequestID); err != nil {
		// The email already went out; a stale pending flag is the lesser evil.
		log.Printf("⚠️ [WORKER] Report %s sent but not marked: %s", payload.RequestID, err)
	}
	return nil
}

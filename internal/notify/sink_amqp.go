// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/vaultkeeper/models"
	amqp "github.com/rabbitmq/amqp091-go"
)

// EmailIntent is the message consumed by the mail worker.
type EmailIntent struct {
	To       string                      `json:"to"`
	Name     string                      `json:"name,omitempty"`
	Envelope models.NotificationEnvelope `json:"envelope"`
}

// AMQPSink publishes persistent email intents to a durable queue on the
// default exchange. It dials per message; notification volume is low.
type AMQPSink struct {
	url   string
	queue string
	now   func() time.Time
}

func NewAMQPSink(url, queue string) *AMQPSink {
	return &AMQPSink{
		url:   url,
		queue: queue,
		now:   time.Now,
	}
}

func (s *AMQPSink) Notify(ctx context.Context, n models.Notification) error {
	publishing, err := s.publishing(n)
	if err != nil {
		return err
	}

	conn, err := amqp.Dial(s.url)
	if err != nil {
		return fmt.Errorf("rabbitmq: dial failed: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("rabbitmq: channel open failed: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err = ch.QueueDeclare(
		s.queue, // name
		true,    // durable
		false,   // autoDelete
		false,   // exclusive
		false,   // noWait
		nil,     // args
	); err != nil {
		return fmt.Errorf("rabbitmq: queue declare failed: %w", err)
	}

	if err = ch.PublishWithContext(ctx,
		"",      // default exchange
		s.queue, // routing key = queue name
		false,   // mandatory
		false,   // immediate
		publishing,
	); err != nil {
		return fmt.Errorf("rabbitmq: publish failed: %w", err)
	}

	return nil
}

func (s *AMQPSink) publishing(n models.Notification) (amqp.Publishing, error) {
	now := s.now().UTC()

	envelope, err := models.NewNotificationEnvelope(n, now)
	if err != nil {
		return amqp.Publishing{}, err
	}

	to := n.To()
	body, err := json.Marshal(EmailIntent{To: to.Email, Name: to.Name, Envelope: envelope})
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("marshal email intent: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    now,
		Type:         string(n.Kind()),
		Body:         body,
	}, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"context"
	"time"

	"github.com/MKhiriev/vaultkeeper/internal/logger"
	"github.com/MKhiriev/vaultkeeper/models"
)

const (
	defaultQueueSize = 256
	deliveryTimeout  = 10 * time.Second
)

type delivery struct {
	ctx          context.Context
	notification models.Notification
}

// Dispatcher is an asynchronous [Sink]. Notify only enqueues; Run delivers
// to the wrapped sink. Delivery errors are logged and dropped.
type Dispatcher struct {
	sink   Sink
	queue  chan delivery
	logger *logger.Logger
}

func NewDispatcher(sink Sink, queueSize int, log *logger.Logger) *Dispatcher {
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	return &Dispatcher{
		sink:   sink,
		queue:  make(chan delivery, queueSize),
		logger: log,
	}
}

// Notify never blocks. The request context is detached so that delivery
// outlives the request while keeping its logger.
func (d *Dispatcher) Notify(ctx context.Context, n models.Notification) error {
	select {
	case d.queue <- delivery{ctx: context.WithoutCancel(ctx), notification: n}:
		return nil
	default:
		d.logger.Warn().
			Str("func", "*Dispatcher.Notify").
			Str("kind", string(n.Kind())).
			Msg("notification queue is full, dropping notification")
		return ErrQueueFull
	}
}

// Run delivers queued notifications until ctx is done, then delivers
// whatever is still buffered and returns.
func (d *Dispatcher) Run(ctx context.Context) {
	d.logger.Info().Str("func", "*Dispatcher.Run").Msg("notification dispatcher started")

	for {
		select {
		case <-ctx.Done():
			d.drain()
			d.logger.Info().Str("func", "*Dispatcher.Run").Msg("notification dispatcher stopped")
			return
		case item := <-d.queue:
			d.deliver(item)
		}
	}
}

func (d *Dispatcher) drain() {
	for {
		select {
		case item := <-d.queue:
			d.deliver(item)
		default:
			return
		}
	}
}

func (d *Dispatcher) deliver(item delivery) {
	ctx, cancel := context.WithTimeout(item.ctx, deliveryTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Str("func", "*Dispatcher.deliver").
				Interface("panic", r).
				Msg("notification sink panicked")
		}
	}()

	if err := d.sink.Notify(ctx, item.notification); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "*Dispatcher.deliver").
			Str("kind", string(item.notification.Kind())).
			Msg("failed to deliver notification")
	}
}

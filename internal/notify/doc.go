// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notify delivers [models.Notification] values to owners and
// trusted contacts.
//
// Services only see the [Sink] interface. In the server the sink is a
// [Dispatcher] that queues notifications and delivers them from its own
// goroutine, so a slow or failing channel never holds up a state change.
// Delivery channels are a structured log line, a Redis pub/sub push picked
// up by the WebSocket gateway, and an AMQP email intent.
package notify

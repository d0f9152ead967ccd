// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

//go:build nats

package eventprocessor

import (
	"context"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	natsgo "github.com/nats-io/nats.go"
)

// newNATSBus connects JetStream publisher and subscriber, starting an
// embedded server first when configured.
func newNATSBus(cfg *Config, logger watermill.LoggerAdapter) (*Bus, error) {
	bus := &Bus{Backend: BackendNATS}
	url := cfg.NATSURL

	if cfg.EmbeddedServer {
		srv, err := NewEmbeddedServer(&ServerConfig{
			Host:     "127.0.0.1",
			Port:     cfg.EmbeddedPort,
			StoreDir: cfg.StoreDir,
		})
		if err != nil {
			return nil, err
		}
		url = srv.ClientURL()
		bus.closers = append(bus.closers, func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		})
		logger.Info("Embedded NATS server started", watermill.LogFields{"url": url})
	}

	natsOpts := []natsgo.Option{
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(cfg.MaxReconnects),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		natsgo.DisconnectErrHandler(func(_ *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
	}

	pub, err := wmNats.NewPublisher(wmNats.PublisherConfig{
		URL:         url,
		NatsOptions: natsOpts,
		Marshaler:   &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			AutoProvision: true,
			TrackMsgId:    true,
			PublishOptions: []natsgo.PubOpt{
				natsgo.RetryAttempts(3),
				natsgo.RetryWait(100 * time.Millisecond),
			},
		},
	}, logger)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}
	bus.Publisher = pub
	bus.closers = append(bus.closers, pub.Close)

	sub, err := wmNats.NewSubscriber(wmNats.SubscriberConfig{
		URL:              url,
		QueueGroupPrefix: cfg.QueueGroup,
		SubscribersCount: 1,
		AckWaitTimeout:   30 * time.Second,
		CloseTimeout:     cfg.Router.CloseTimeout,
		NatsOptions:      natsOpts,
		Unmarshaler:      &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{
			AutoProvision: true,
			SubscribeOptions: []natsgo.SubOpt{
				natsgo.DeliverNew(),
				natsgo.MaxDeliver(5),
			},
			DurablePrefix: cfg.DurableName,
		},
	}, logger)
	if err != nil {
		_ = bus.Close()
		return nil, fmt.Errorf("create watermill subscriber: %w", err)
	}
	bus.Subscriber = sub
	bus.closers = append(bus.closers, sub.Close)

	return bus, nil
}

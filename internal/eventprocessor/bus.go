// Mealmatch - Content-Based Recipe Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mealmatch

package eventprocessor

import (
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Bus pairs a backend publisher with its subscriber.
type Bus struct {
	Publisher  message.Publisher
	Subscriber message.Subscriber
	Backend    string

	closers []func() error
}

// NewBus creates the configured backend.
func NewBus(cfg *Config, logger watermill.LoggerAdapter) (*Bus, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}

	switch cfg.Backend {
	case "", BackendMemory:
		return newMemoryBus(cfg, logger), nil
	case BackendNATS:
		return newNATSBus(cfg, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedBackend, cfg.Backend)
	}
}

func newMemoryBus(cfg *Config, logger watermill.LoggerAdapter) *Bus {
	pubSub := gochannel.NewGoChannel(gochannel.Config{
		OutputChannelBuffer:            cfg.OutputBuffer,
		BlockPublishUntilSubscriberAck: false,
	}, logger)

	return &Bus{
		Publisher:  pubSub,
		Subscriber: pubSub,
		Backend:    BackendMemory,
		closers:    []func() error{pubSub.Close},
	}
}

// Close releases the backend. Closers run in reverse registration order.
func (b *Bus) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	b.closers = nil
	return errors.Join(errs...)
}

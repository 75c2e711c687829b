package telemetry

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"mycomart/config"
	"mycomart/internal/domain/entity"
	"mycomart/internal/domain/service"
)

// Poller drives periodic sensor refresh for mounted room views. Each Start
// call delivers an immediate reading, then one per interval, until the
// returned Subscription is stopped or the context ends. Stopping is what the
// view's unmount does; a stopped subscription never fires again.
type Poller struct {
	source   service.TelemetrySource
	interval time.Duration
	logger   *slog.Logger
}

// NewPoller is the constructor for Poller.
func NewPoller(cfg *config.Config, source service.TelemetrySource, logger *slog.Logger) service.TelemetryPoller {
	return &Poller{
		source:   source,
		interval: cfg.Telemetry.PollInterval,
		logger:   logger,
	}
}

// Subscription is one live polling loop. Stop is idempotent and safe to call
// concurrently with deliveries; after Stop returns no further callbacks fire.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop ends the polling loop and waits for any in-flight callback to return.
func (s *Subscription) Stop() {
	s.once.Do(func() {
		s.cancel()
		<-s.done
	})
}

// Start begins polling a room. Delivery errors are passed to the callback so
// views can show a stale-data notice; the loop keeps running through them.
func (p *Poller) Start(ctx context.Context, roomID int64, deliver func(*entity.SensorSnapshot, error)) service.PollSubscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		poll := func() {
			snapshot, err := p.source.Snapshot(ctx, roomID)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				p.logger.Warn("Sensor poll failed",
					slog.Int64("room_id", roomID),
					slog.Any("error", err),
				)
			}
			deliver(snapshot, err)
		}

		poll()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				poll()
			}
		}
	}()

	return sub
}

package service

import (
	"context"
	"time"

	"foodexpress/pkg/clock"
	"foodexpress/pkg/logger"
	"foodexpress/pkg/notify"
	"foodexpress/storage"
)

// DeliverySweeper finishes orders whose delivery deadline has passed. The
// deadline lives on the order row, so completion survives restarts: a sweep
// after a crash picks up everything that came due in the meantime. A failed
// sweep is retried on the next tick.
type DeliverySweeper struct {
	orders   storage.IOrderStorage
	notifier notify.Notifier
	clk      clock.Clock
	interval time.Duration
	log      logger.ILogger
}

func NewDeliverySweeper(stg storage.IStorage, notifier notify.Notifier, clk clock.Clock, interval time.Duration, log logger.ILogger) *DeliverySweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &DeliverySweeper{
		orders:   stg.Order(),
		notifier: notifier,
		clk:      clk,
		interval: interval,
		log:      log,
	}
}

// Run sweeps until the context is canceled.
func (s *DeliverySweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep marks every order past its delivery deadline as delivered.
func (s *DeliverySweeper) Sweep(ctx context.Context) {
	ids, err := s.orders.MarkDueDelivered(ctx, s.clk.Now())
	if err != nil {
		s.log.Error("delivery sweep failed", logger.Error(err))
		return
	}
	for _, id := range ids {
		s.log.Info("order delivered", logger.Int64("order_id", id))
		go s.notifier.OrderDelivered(id)
	}
}

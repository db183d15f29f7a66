package share

import (
	"context"
	"time"

	"github.com/shareguard/shareguard/internal/logger"
	"github.com/shareguard/shareguard/pkg/store"
)

// CleanupService periodically removes expired grants and links so stale
// rows don't accumulate. Expired rows are already inert (the access engine
// treats them as absent); this is housekeeping, not enforcement.
type CleanupService struct {
	store    store.Store
	interval time.Duration
	done     chan struct{}
}

// NewCleanupService creates a cleanup service with the given interval.
func NewCleanupService(st store.Store, interval time.Duration) *CleanupService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &CleanupService{
		store:    st,
		interval: interval,
		done:     make(chan struct{}),
	}
}

// Start begins the cleanup loop in a background goroutine. The loop stops
// when ctx is cancelled.
func (cs *CleanupService) Start(ctx context.Context) {
	logger.Info("share cleanup started", "interval", cs.interval.String())

	go func() {
		ticker := time.NewTicker(cs.interval)
		defer ticker.Stop()

		// Run once immediately on start
		cs.run(ctx)

		for {
			select {
			case <-ticker.C:
				cs.run(ctx)
			case <-ctx.Done():
				logger.Info("share cleanup stopping")
				close(cs.done)
				return
			}
		}
	}()
}

// Wait blocks until the cleanup loop has fully stopped.
func (cs *CleanupService) Wait() {
	<-cs.done
}

func (cs *CleanupService) run(ctx context.Context) {
	removed, err := cs.store.PruneExpired(ctx, time.Now())
	if err != nil {
		logger.Error("share cleanup failed", logger.KeyError, err)
		return
	}
	if removed > 0 {
		logger.Info("pruned expired shares", "removed", removed)
	}
}

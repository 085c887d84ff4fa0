package jobs

import (
	"context"
	"log"
	"time"

	"github.com/pauljaws/StackBot/internal/metrics"
)

// Pinger probes an upstream dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// UpstreamChecker periodically probes the ranking API and exports its
// reachability as a gauge. Resolution requests never wait on it.
type UpstreamChecker struct {
	upstream Pinger
	interval time.Duration
}

// NewUpstreamChecker creates a new upstream checker.
func NewUpstreamChecker(upstream Pinger, interval time.Duration) *UpstreamChecker {
	return &UpstreamChecker{
		upstream: upstream,
		interval: interval,
	}
}

// Start begins the background probe loop.
func (u *UpstreamChecker) Start(ctx context.Context) {
	log.Printf("Upstream checker started (interval: %v)", u.interval)

	// Probe immediately on start
	u.check(ctx)

	ticker := time.NewTicker(u.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Upstream checker stopped")
			return
		case <-ticker.C:
			u.check(ctx)
		}
	}
}

func (u *UpstreamChecker) check(ctx context.Context) {
	if err := u.upstream.Ping(ctx); err != nil {
		log.Printf("Upstream checker: ranking API unreachable: %v", err)
		metrics.UpstreamReachable.Set(0)
		return
	}
	metrics.UpstreamReachable.Set(1)
}

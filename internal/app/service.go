// Package app owns the poll loop: fetch, transform, publish on a fixed
// interval. Cycles are serialized and isolated; a failed cycle is logged and
// the loop moves on, so the process stays up for the next attempt.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Kolpa/ulanzi-election/internal/domain"
	"github.com/Kolpa/ulanzi-election/internal/election"
	"github.com/Kolpa/ulanzi-election/internal/metrics"
	"github.com/Kolpa/ulanzi-election/internal/platform/cycle"
	"github.com/Kolpa/ulanzi-election/internal/render"
)

// publishGrace bounds a publish attempt once it is detached from the loop
// context, so shutdown cannot hang on an unreachable broker either.
const publishGrace = 30 * time.Second

// Cycle outcomes as recorded in metrics.
const (
	statusOK           = "ok"
	statusNoData       = "no_data"
	statusFetchError   = "fetch_error"
	statusParseError   = "parse_error"
	statusPublishError = "publish_error"
)

// Service runs the fetch-transform-publish loop against one display.
type Service struct {
	fetcher   domain.ResultsFetcher
	publisher domain.PacketPublisher
	clock     clockwork.Clock

	interval  time.Duration
	threshold float64
	location  *time.Location
}

func NewService(fetcher domain.ResultsFetcher, publisher domain.PacketPublisher, clock clockwork.Clock, interval time.Duration, threshold float64, location *time.Location) *Service {
	return &Service{
		fetcher:   fetcher,
		publisher: publisher,
		clock:     clock,
		interval:  interval,
		threshold: threshold,
		location:  location,
	}
}

// Run executes cycles until ctx is cancelled. The first cycle starts
// immediately; afterwards the loop sleeps for the configured interval. No
// cycle failure ever terminates the loop.
func (s *Service) Run(ctx context.Context) {
	for {
		s.runCycle(ctx)

		select {
		case <-ctx.Done():
			return
		case <-s.clock.After(s.interval):
		}
	}
}

func (s *Service) runCycle(ctx context.Context) {
	ctx = cycle.WithID(ctx, cycle.NewID())

	slog.InfoContext(ctx, "Fetching election results")
	raw, err := s.fetch(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Fetch failed", "error", err)
		metrics.CyclesTotal.WithLabelValues(statusFetchError).Inc()
		return
	}
	slog.DebugContext(ctx, "Fetched results document", "bytes", len(raw))

	status := statusOK
	var packet domain.Packet
	data, err := election.Parse(raw, s.location)
	switch {
	case errors.Is(err, domain.ErrNoData):
		slog.WarnContext(ctx, "No election data available, sending fallback")
		packet = render.Fallback()
		metrics.SnapshotParties.Set(0)
		status = statusNoData
	case err != nil:
		slog.ErrorContext(ctx, "Processing results failed", "error", err)
		metrics.CyclesTotal.WithLabelValues(statusParseError).Inc()
		return
	default:
		bars := render.Bars(data.Parties, s.threshold)
		text := render.Text(data, s.location)
		packet = render.Assemble(bars, text)
		metrics.SnapshotParties.Set(float64(len(data.Parties)))
		slog.InfoContext(ctx, "Processed election results", "parties", len(data.Parties), "status_date", data.Timestamp)
	}

	if err := s.publish(ctx, packet); err != nil {
		slog.ErrorContext(ctx, "Publish failed", "error", err)
		metrics.CyclesTotal.WithLabelValues(statusPublishError).Inc()
		return
	}

	metrics.CyclesTotal.WithLabelValues(status).Inc()
	slog.InfoContext(ctx, "Packet sent to display")
}

func (s *Service) fetch(ctx context.Context) ([]byte, error) {
	start := s.clock.Now()
	raw, err := s.fetcher.FetchResults(ctx)
	metrics.FetchDuration.Observe(s.clock.Since(start).Seconds())
	return raw, err
}

func (s *Service) publish(ctx context.Context, packet domain.Packet) error {
	// Shutdown must not abort a packet already in flight: detach from the
	// loop context (keeping its values) and bound the attempt instead.
	pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishGrace)
	defer cancel()

	start := s.clock.Now()
	err := s.publisher.Publish(pubCtx, packet)
	metrics.PublishDuration.Observe(s.clock.Since(start).Seconds())
	return err
}

package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Soulverse-Ecosystem/status-check/internal/classify"
	"github.com/Soulverse-Ecosystem/status-check/internal/domain"
	"github.com/Soulverse-Ecosystem/status-check/internal/notify"
	"github.com/Soulverse-Ecosystem/status-check/internal/probe"
	"github.com/Soulverse-Ecosystem/status-check/internal/snapshot"
)

// Runner performs one full monitoring pass: load the previous snapshot,
// probe every configured endpoint, classify, notify on transitions, persist
// the new snapshot and publish the status artifact.
//
// Probes may run concurrently (endpoints are independent); results land in
// fixed per-endpoint slots, and the diff/notify/persist phase walks those
// slots sequentially in declaration order so output stays deterministic.
type Runner struct {
	Logger       *zap.Logger
	Prober       probe.Prober
	Policy       classify.Policy
	Store        snapshot.Store
	Notifier     notify.Notifier
	Endpoints    []domain.EndpointSpec
	Timeout      time.Duration
	Concurrency  int
	ArtifactPath string

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func New(
	logger *zap.Logger,
	prober probe.Prober,
	policy classify.Policy,
	store snapshot.Store,
	notifier notify.Notifier,
	endpoints []domain.EndpointSpec,
) *Runner {
	return &Runner{
		Logger:    logger,
		Prober:    prober,
		Policy:    policy,
		Store:     store,
		Notifier:  notifier,
		Endpoints: endpoints,
	}
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

// RunOnce does exactly one pass and returns. Probe and notification failures
// are logged and absorbed; only snapshot/artifact persistence failures (and
// a cancelled context) surface as errors.
func (r *Runner) RunOnce(ctx context.Context) error {
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	concurrency := r.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	prev, err := r.Store.Load(ctx)
	if err != nil {
		// corrupt or unreadable history is "no history"
		r.Logger.Warn("snapshot_load_failed", zap.Error(err))
	}
	if prev == nil {
		prev = domain.NewSnapshot()
	}

	results := r.probeAll(ctx, timeout, concurrency)

	cur := domain.NewSnapshot()
	transitions := 0
	for _, res := range results {
		cur.Set(res.Endpoint, domain.SnapshotEntry{
			Classification: res.Classification,
			HTTPStatus:     res.HTTPStatus,
		})
		r.Logger.Debug("endpoint_checked",
			zap.String("endpoint", res.Endpoint),
			zap.Int("status", res.HTTPStatus),
			zap.String("classification", string(res.Classification)),
			zap.Float64("latency_ms", res.LatencyMS),
			zap.String("reason", res.Reason),
		)

		prevEntry, seen := prev.Get(res.Endpoint)
		if !seen || prevEntry.Classification == res.Classification {
			// first observation establishes the baseline silently
			continue
		}
		transitions++
		ev := domain.NotificationEvent{
			Service:    res.Endpoint,
			Previous:   prevEntry.Classification,
			New:        res.Classification,
			HTTPStatus: res.HTTPStatus,
			Timestamp:  res.CheckedAt,
		}
		r.Logger.Info("transition",
			zap.String("endpoint", ev.Service),
			zap.String("previous", string(ev.Previous)),
			zap.String("new", string(ev.New)),
			zap.Int("status", ev.HTTPStatus),
		)
		if r.Notifier == nil {
			continue
		}
		if err := r.Notifier.Send(ctx, ev); err != nil {
			// best-effort delivery, the run carries on
			r.Logger.Warn("notify_failed",
				zap.String("endpoint", ev.Service),
				zap.Error(err),
			)
		}
	}

	if err := r.Store.Save(ctx, cur); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	if r.ArtifactPath != "" {
		if err := snapshot.WriteArtifact(r.ArtifactPath, snapshot.BuildArtifact(cur, r.now())); err != nil {
			return fmt.Errorf("publish status artifact: %w", err)
		}
	}

	r.Logger.Info("run_complete",
		zap.Int("endpoints", cur.Len()),
		zap.Int("transitions", transitions),
	)
	return ctx.Err()
}

// probeAll fills one result slot per endpoint. Every slot is guaranteed a
// value: a panicking probe resolves to down rather than a missing key, so
// the persisted key set stays stable across generations.
func (r *Runner) probeAll(ctx context.Context, timeout time.Duration, concurrency int) []domain.ProbeResult {
	results := make([]domain.ProbeResult, len(r.Endpoints))
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, ep := range r.Endpoints {
		i, ep := i, ep
		sem <- struct{}{}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			defer func() {
				if p := recover(); p != nil {
					r.Logger.Error("probe_panic",
						zap.String("endpoint", ep.Name),
						zap.Any("panic", p),
					)
					results[i] = domain.ProbeResult{
						Endpoint:       ep.Name,
						Classification: domain.Down,
						Reason:         "probe panic",
						CheckedAt:      r.now().UTC(),
					}
				}
			}()

			cctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			out := r.Prober.Probe(cctx, ep)
			results[i] = domain.ProbeResult{
				Endpoint:       ep.Name,
				HTTPStatus:     out.StatusCode,
				Classification: r.Policy.Classify(out.StatusCode, ep.Method),
				LatencyMS:      out.LatencyMS,
				Reason:         out.Reason,
				CheckedAt:      r.now().UTC(),
			}
		}()
	}

	wg.Wait()
	return results
}

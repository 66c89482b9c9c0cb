package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/atomic"

	httpClient "github.com/vendapp/repvendas/internal/client/api"
	"github.com/vendapp/repvendas/internal/client/netmon"
	"github.com/vendapp/repvendas/internal/client/storage"
	"github.com/vendapp/repvendas/internal/models"
)

//go:generate moq -out service_mock.go . Service

// ErrSyncInProgress is returned when a run is triggered while another run
// is still in flight. The trigger is a no-op, not a queued request.
var ErrSyncInProgress = errors.New("synchronization already in progress")

// Service drives queued offline orders to the server.
type Service interface {
	// Run drains the current queue snapshot against the server, oldest
	// first, and reports aggregate counts. At most one run may be in
	// flight; a concurrent trigger fails with ErrSyncInProgress.
	Run(ctx context.Context) (*Result, error)

	// PendingCount returns the number of orders waiting for submission.
	PendingCount(ctx context.Context) (int, error)

	// Start subscribes the controller to the connectivity monitor so
	// that going online triggers a run. Returns an unsubscribe func.
	Start(ctx context.Context, monitor *netmon.Monitor) func()
}

// Rejection is a per-order server refusal surfaced for user correction.
type Rejection struct {
	ClientCNPJ string
	Detail     string
	LocalID    uint64
}

// Result contains the aggregate outcome of one synchronization run.
type Result struct {
	Rejections []Rejection // orders the server refused; still queued
	Synced     int         // orders accepted and removed from the queue
	Failed     int         // orders still queued (transient or rejected)
}

type service struct {
	apiClient httpClient.ClientAPI
	queue     storage.OrderQueue
	logger    *slog.Logger
	running   atomic.Bool
	useBatch  bool
}

// NewService creates a new sync service. With useBatch the bulk endpoint
// is tried first and the run falls back to one-by-one submission when the
// server cannot attribute outcomes to individual orders.
func NewService(apiClient httpClient.ClientAPI, queue storage.OrderQueue, useBatch bool, logger *slog.Logger) Service {
	return &service{
		apiClient: apiClient,
		queue:     queue,
		useBatch:  useBatch,
		logger:    logger,
	}
}

// Run performs one synchronization pass.
//
// The queue snapshot is read once at the start; orders enqueued afterwards
// wait for the next run. Orders are submitted in capture order and each
// accepted order is removed from the queue before the next submission, so
// an interruption can at worst leave an already-acknowledged order queued,
// never lose one. Transient failures do not abort the run.
func (s *service) Run(ctx context.Context) (*Result, error) {
	if !s.running.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.running.Store(false)

	snapshot, err := s.queue.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read queued orders: %w", err)
	}

	result := &Result{}
	if len(snapshot) == 0 {
		s.logger.Info("no queued orders to synchronize")
		return result, nil
	}

	s.logger.Info("starting synchronization", "queued", len(snapshot))

	if !s.useBatch || !s.runBatch(ctx, snapshot, result) {
		s.runSequential(ctx, snapshot, result)
	}

	s.logger.Info("synchronization completed",
		"synced", result.Synced,
		"failed", result.Failed,
		"rejections", len(result.Rejections))

	return result, nil
}

// runBatch attempts the bulk endpoint. It returns false when the run must
// fall back to sequential submission: either the endpoint does not exist
// or the server answered without per-order outcomes, in which case a flat
// synced_count cannot tell which orders were accepted. The fallback
// resubmits; the per-order idempotency keys keep that safe.
func (s *service) runBatch(ctx context.Context, snapshot []*models.QueuedOrder, result *Result) bool {
	resp, err := s.apiClient.SubmitBatch(ctx, snapshot)
	if err != nil {
		if errors.Is(err, httpClient.ErrBatchUnsupported) {
			s.logger.Info("bulk sync not supported by server, submitting individually")
			return false
		}
		// Transient: the whole snapshot stays queued for the next run
		s.logger.Warn("bulk sync failed", "error", err)
		result.Failed = len(snapshot)
		return true
	}

	if len(resp.Results) == 0 {
		s.logger.Warn("bulk sync response carries no per-order outcomes, submitting individually",
			"synced_count", resp.SyncedCount)
		return false
	}

	for _, outcome := range resp.Results {
		if outcome.Index < 0 || outcome.Index >= len(snapshot) {
			s.logger.Warn("bulk sync outcome references unknown order", "index", outcome.Index)
			continue
		}
		order := snapshot[outcome.Index]

		if !outcome.Synced {
			result.Failed++
			if outcome.Error != "" {
				result.Rejections = append(result.Rejections, Rejection{
					LocalID:    order.LocalID,
					ClientCNPJ: order.Client.CNPJ,
					Detail:     outcome.Error,
				})
			}
			continue
		}

		s.removeSynced(ctx, order)
		result.Synced++
	}

	return true
}

// runSequential submits the snapshot one order at a time, oldest first.
func (s *service) runSequential(ctx context.Context, snapshot []*models.QueuedOrder, result *Result) {
	for _, order := range snapshot {
		_, err := s.apiClient.SubmitOne(ctx, order)
		if err != nil {
			result.Failed++

			var rejection *httpClient.RejectionError
			if errors.As(err, &rejection) {
				s.logger.Warn("order rejected by server",
					"local_id", order.LocalID,
					"client_cnpj", order.Client.CNPJ,
					"detail", rejection.Detail)
				result.Rejections = append(result.Rejections, Rejection{
					LocalID:    order.LocalID,
					ClientCNPJ: order.Client.CNPJ,
					Detail:     rejection.Detail,
				})
			} else {
				s.logger.Warn("order submission failed, will retry next run",
					"local_id", order.LocalID,
					"error", err)
			}
			continue
		}

		s.removeSynced(ctx, order)
		result.Synced++
	}
}

// removeSynced deletes an acknowledged order from the queue. A failure
// here leaves an already-accepted order queued; its idempotency key keeps
// the inevitable resubmission from duplicating it on the server.
func (s *service) removeSynced(ctx context.Context, order *models.QueuedOrder) {
	if err := s.queue.Remove(ctx, order.LocalID); err != nil {
		s.logger.Warn("failed to remove synced order from queue",
			"local_id", order.LocalID,
			"error", err)
	}
}

// PendingCount returns the number of orders waiting for submission.
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.queue.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count queued orders: %w", err)
	}
	return count, nil
}

// Start wires the controller to connectivity transitions: the queue is
// drained as soon as the client goes back online. The run executes on the
// notifier's goroutine; a trigger landing during an active run is skipped.
func (s *service) Start(ctx context.Context, monitor *netmon.Monitor) func() {
	return monitor.Subscribe(func(event netmon.Event) {
		if event != netmon.BecameOnline {
			return
		}

		result, err := s.Run(ctx)
		if err != nil {
			if errors.Is(err, ErrSyncInProgress) {
				s.logger.Info("sync trigger skipped, run already in progress")
				return
			}
			s.logger.Error("automatic synchronization failed", "error", err)
			return
		}

		s.logger.Info("automatic synchronization finished",
			"synced", result.Synced,
			"failed", result.Failed)
	})
}

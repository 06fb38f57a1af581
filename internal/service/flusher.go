package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/d60-Lab/peerpath/internal/repository"
	"github.com/d60-Lab/peerpath/internal/store"
	"github.com/d60-Lab/peerpath/pkg/logger"
)

// SnapshotFlusher 后台定期把 Store 快照写入数据库，停止时再写一次
type SnapshotFlusher struct {
	store    *store.Store
	repo     repository.SnapshotRepository
	interval time.Duration
	timeout  time.Duration

	flushed uint64 // revision of the last successful save
}

func NewSnapshotFlusher(s *store.Store, repo repository.SnapshotRepository, interval time.Duration) *SnapshotFlusher {
	if interval <= 0 {
		interval = time.Minute
	}
	return &SnapshotFlusher{store: s, repo: repo, interval: interval, timeout: 30 * time.Second}
}

// Restore loads the saved snapshot into the store. It reports false when the
// database holds nothing yet.
func (f *SnapshotFlusher) Restore(ctx context.Context) (bool, error) {
	sn, err := f.repo.Load(ctx)
	if err != nil {
		return false, err
	}
	if sn.Empty() {
		return false, nil
	}
	f.store.Import(sn)
	f.flushed = f.store.Revision()
	logger.Info("snapshot restored",
		zap.Int("users", len(sn.Users)),
		zap.Int("questions", len(sn.Questions)),
		zap.Int("answers", len(sn.Answers)),
	)
	return true, nil
}

// Flush saves the store if it changed since the last save.
func (f *SnapshotFlusher) Flush(ctx context.Context) error {
	rev := f.store.Revision()
	if rev == f.flushed {
		return nil
	}
	start := time.Now()
	if err := f.repo.Save(ctx, f.store.Export()); err != nil {
		return err
	}
	f.flushed = rev
	logger.Debug("snapshot flushed", zap.Uint64("revision", rev), zap.Duration("took", time.Since(start)))
	return nil
}

// Start runs the periodic flush loop. The returned func stops the loop and
// performs a final flush bounded by ctx.
func (f *SnapshotFlusher) Start() func(context.Context) error {
	stopCh := make(chan struct{})
	doneCh := make(chan struct{})
	go func() {
		defer close(doneCh)
		ticker := time.NewTicker(f.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				ctx, cancel := context.WithTimeout(context.Background(), f.timeout)
				if err := f.Flush(ctx); err != nil {
					logger.Warn("snapshot flush failed", zap.Error(err))
				}
				cancel()
			case <-stopCh:
				return
			}
		}
	}()
	return func(ctx context.Context) error {
		close(stopCh)
		select {
		case <-doneCh:
		case <-ctx.Done():
			return ctx.Err()
		}
		return f.Flush(ctx)
	}
}

// workers/backup_worker.go
package workers

import (
	"context"
	"fmt"
	"path"
	"time"

	"oneearth/logger"
	"oneearth/store"

	"github.com/sirupsen/logrus"
)

// BackupWorker copies every collection slot, byte for byte, into a fresh timestamped target.
type BackupWorker struct {
	Source store.Store
	Keys   store.Keys
	// Target returns the store a snapshot taken under prefix is written to.
	Target func(prefix string) store.Store
	Now    func() time.Time
	log    *logrus.Entry
}

func NewBackupWorker(src store.Store, keys store.Keys, target func(prefix string) store.Store, l *logger.Logger) *BackupWorker {
	return &BackupWorker{
		Source: src,
		Keys:   keys,
		Target: target,
		Now:    time.Now,
		log:    l.Component("backup"),
	}
}

// SnapshotPrefix is where a snapshot taken at t lives, e.g. backups/2025-04-22T09:00:00Z.
func SnapshotPrefix(t time.Time) string {
	return path.Join("backups", t.UTC().Format(time.RFC3339))
}

// Run writes one snapshot and reports how many slots it copied. Empty slots are skipped.
func (w *BackupWorker) Run(ctx context.Context) (int, error) {
	prefix := SnapshotPrefix(w.Now())
	dst := w.Target(prefix)

	copied := 0
	for _, key := range w.Keys.Collections() {
		data, ok, err := w.Source.Get(ctx, key)
		if err != nil {
			return copied, fmt.Errorf("read %s: %w", key, err)
		}
		if !ok {
			continue
		}
		if err := dst.Put(ctx, key, data); err != nil {
			return copied, fmt.Errorf("write %s to %s: %w", key, prefix, err)
		}
		copied++
	}

	w.log.WithFields(logrus.Fields{"prefix": prefix, "slots": copied}).Info("💾 backup written")
	return copied, nil
}

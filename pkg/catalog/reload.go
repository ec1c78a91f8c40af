package catalog

import (
	"context"
	"fmt"
	"path/filepath"

	"careerguide/pkg/logger"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Reloader loads a Source into a Store.
type Reloader struct {
	Store  *Store
	Source Source
}

// Reload reads the source and swaps the new snapshot in. On failure the
// current snapshot is kept.
func (r *Reloader) Reload(ctx context.Context) (*Snapshot, error) {
	snap, problems, err := Load(ctx, r.Source)
	if err != nil {
		return nil, fmt.Errorf("could not load dataset: %w", err)
	}

	for _, p := range problems {
		logger.Warn(ctx, "dataset problem", zap.String("path", p.Path), zap.String("problem", p.Message))
	}

	prev := r.Store.Swap(snap)

	fields := []zap.Field{
		zap.String("source", snap.Source),
		zap.String("version", snap.Version),
		zap.Int("rules", len(snap.Dataset.Rules)),
		zap.Int("careers", len(snap.Dataset.Careers)),
		zap.Int("problems", len(problems)),
	}
	if prev != nil {
		fields = append(fields, zap.String("previousVersion", prev.Version))
	}
	logger.Info(ctx, "dataset loaded", fields...)

	return snap, nil
}

// Watch calls onChange whenever the file at path is written, created or
// renamed into place. The parent directory is watched because editors often
// replace files instead of writing them in place. Watch blocks until ctx is
// done.
func Watch(ctx context.Context, path string, onChange func(ctx context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create file watcher: %w", err)
	}
	defer func() {
		_ = w.Close()
	}()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("could not resolve dataset path: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("could not watch dataset directory: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				logger.Debug(ctx, "dataset file changed", zap.String("op", ev.Op.String()))
				onChange(ctx)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn(ctx, "dataset watcher error", zap.Error(err))
		}
	}
}

package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/fsnotify/fsnotify"
)

// Watch processes files as they appear in dir, until ctx is cancelled.
// A file arriving over a slow copy is typically unreadable for the first
// few attempts, so each file is retried with a short backoff before it is
// reported as failed.
func (p *Processor) Watch(ctx context.Context, dir string, req Request) error {
	if _, err := p.validate(req); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	exts := map[string]struct{}{}
	for _, ext := range p.readers.Extensions() {
		exts[ext] = struct{}{}
	}

	logger := p.logger.With("watch_dir", dir)
	logger.Info("watching for new files", "extensions", p.readers.Extensions())

	// A Write event can fire several times while a file is still being
	// copied; track what was already handled so each file runs once.
	done := map[string]struct{}{}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			path := event.Name
			if _, ok := exts[strings.ToLower(filepath.Ext(path))]; !ok {
				continue
			}
			if strings.HasPrefix(filepath.Base(path), "~$") {
				continue
			}
			if _, seen := done[path]; seen {
				continue
			}
			done[path] = struct{}{}

			fileReq := req
			fileReq.Input = path

			err := retry.Do(
				func() error {
					_, err := p.ProcessFile(fileReq)
					return err
				},
				retry.Context(ctx),
				retry.Attempts(5),
				retry.Delay(200*time.Millisecond),
			)
			if err != nil {
				logger.Error("file failed", "input", path, "error", err)
				delete(done, path)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "error", err)
		}
	}
}

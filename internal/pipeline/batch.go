package pipeline

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// FileError records one failed file in a batch.
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

// BatchResult summarizes a directory run.
type BatchResult struct {
	RunID     string
	Processed []string // output paths, in input order
	Failed    []FileError
}

// BatchConfig bounds a directory run.
type BatchConfig struct {
	Workers   int  // concurrent files; default runtime.NumCPU()
	Recursive bool // descend into subdirectories
}

// ProcessDir walks dir and processes every file with a registered reader
// extension through a bounded worker pool. Each file gets a fresh context
// built from the request template. Per-file failures are collected, not
// fatal; the returned error covers only setup problems.
func (p *Processor) ProcessDir(ctx context.Context, dir string, req Request, cfg BatchConfig) (*BatchResult, error) {
	if _, err := p.validate(req); err != nil {
		return nil, err
	}

	files, err := p.collectFiles(dir, cfg.Recursive)
	if err != nil {
		return nil, err
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(files) {
		workers = len(files)
	}

	result := &BatchResult{RunID: uuid.NewString()}
	logger := p.logger.With("run_id", result.RunID)
	logger.Info("batch started", "dir", dir, "files", len(files), "workers", workers)

	if len(files) == 0 {
		return result, nil
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	queue := make(chan string)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range queue {
				fileReq := req
				fileReq.Input = path

				out, err := p.ProcessFile(fileReq)
				mu.Lock()
				if err != nil {
					logger.Error("file failed", "input", path, "error", err)
					result.Failed = append(result.Failed, FileError{Path: path, Err: err})
				} else {
					result.Processed = append(result.Processed, out)
				}
				mu.Unlock()
			}
		}()
	}

feed:
	for _, f := range files {
		select {
		case <-ctx.Done():
			break feed
		case queue <- f:
		}
	}
	close(queue)
	wg.Wait()

	sort.Strings(result.Processed)
	logger.Info("batch finished",
		"processed", len(result.Processed),
		"failed", len(result.Failed))

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// collectFiles lists the readable files under dir, sorted by path.
func (p *Processor) collectFiles(dir string, recursive bool) ([]string, error) {
	exts := map[string]struct{}{}
	for _, ext := range p.readers.Extensions() {
		exts[ext] = struct{}{}
	}

	readable := func(path string) bool {
		_, ok := exts[strings.ToLower(filepath.Ext(path))]
		// Word drops lock files next to open documents.
		return ok && !strings.HasPrefix(filepath.Base(path), "~$")
	}

	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && readable(path) {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", dir, err)
		}
		for _, e := range entries {
			if !e.IsDir() && readable(e.Name()) {
				files = append(files, filepath.Join(dir, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

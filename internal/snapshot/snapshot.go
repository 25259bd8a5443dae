// Copyright (c) 2026 John Dewey

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

// Package snapshot schedules periodic exports of the audit log to disk.
package snapshot

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/retr0h/audittrail/internal/audit/export"
	"github.com/retr0h/audittrail/internal/config"
)

// defaultBatchSize is the page size used when the config leaves it unset.
const defaultBatchSize = 100

// nowFn returns the current time. Override in tests.
var nowFn = time.Now

// mkdirAll creates the snapshot directory. Override in tests.
var mkdirAll = os.MkdirAll

// Scheduler runs the audit log snapshot job on a cron schedule.
type Scheduler struct {
	logger  *slog.Logger
	cfg     config.Snapshot
	fetcher export.Fetcher
	cron    *cron.Cron
}

// New creates a snapshot scheduler from the given config. The schedule is
// validated up front so a bad expression fails at startup rather than
// silently never firing.
func New(
	logger *slog.Logger,
	cfg config.Snapshot,
	fetcher export.Fetcher,
) (*Scheduler, error) {
	s := &Scheduler{
		logger:  logger,
		cfg:     cfg,
		fetcher: fetcher,
		cron:    cron.New(),
	}

	if _, err := s.cron.AddFunc(cfg.Schedule, s.run); err != nil {
		return nil, fmt.Errorf("parsing snapshot schedule %q: %w", cfg.Schedule, err)
	}

	return s, nil
}

// Start begins the cron scheduler without blocking.
func (s *Scheduler) Start() {
	s.logger.Info(
		"starting snapshot scheduler",
		slog.String("schedule", s.cfg.Schedule),
		slog.String("dir", s.cfg.Dir),
	)

	s.cron.Start()
}

// Stop halts the scheduler and waits for an in-flight snapshot to finish,
// bounded by ctx.
func (s *Scheduler) Stop(
	ctx context.Context,
) {
	s.logger.Info("stopping snapshot scheduler")

	stopped := s.cron.Stop()

	select {
	case <-stopped.Done():
	case <-ctx.Done():
		s.logger.Warn("snapshot scheduler stop timed out")
	}
}

// RunNow takes one snapshot immediately, outside the schedule.
func (s *Scheduler) RunNow(
	ctx context.Context,
) (*export.Result, error) {
	if err := mkdirAll(s.cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating snapshot dir: %w", err)
	}

	path := filepath.Join(
		s.cfg.Dir,
		fmt.Sprintf("audit-snapshot-%s.jsonl", nowFn().UTC().Format("20060102T150405Z")),
	)

	batchSize := s.cfg.BatchSize
	if batchSize < 1 {
		batchSize = defaultBatchSize
	}

	result, err := export.Run(ctx, s.logger, s.fetcher, export.NewFileExporter(path), batchSize, nil)
	if err != nil {
		return result, fmt.Errorf("exporting snapshot: %w", err)
	}

	s.logger.Info(
		"snapshot written",
		slog.String("path", path),
		slog.Int("entries", result.ExportedEntries),
	)

	return result, nil
}

// run is the cron callback. Failures are logged, never fatal, so a broken
// disk does not take the scheduler down with it.
func (s *Scheduler) run() {
	if _, err := s.RunNow(context.Background()); err != nil {
		s.logger.Error("snapshot failed", slog.String("error", err.Error()))
	}
}

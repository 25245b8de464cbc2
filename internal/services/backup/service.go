package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/ternarybob/arbor"

	"github.com/brandvoice/archivist/internal/common"
	"github.com/brandvoice/archivist/internal/interfaces"
)

const filePrefix = "archivist-backup-"

// Scheduler writes periodic whole-corpus snapshots to disk and prunes old
// ones. Snapshot files are the same shape the restore endpoint accepts.
type Scheduler struct {
	documents interfaces.DocumentService
	config    common.BackupConfig
	logger    arbor.ILogger
	cron      *cron.Cron
}

func NewScheduler(documents interfaces.DocumentService, config common.BackupConfig, logger arbor.ILogger) *Scheduler {
	return &Scheduler{
		documents: documents,
		config:    config,
		logger:    logger,
		cron:      cron.New(),
	}
}

// Start registers the snapshot job and starts the cron loop. Disabled config
// is a no-op.
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Debug().Msg("Scheduled backups disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.config.Schedule, s.runScheduled); err != nil {
		return fmt.Errorf("invalid backup schedule %q: %w", s.config.Schedule, err)
	}

	s.cron.Start()
	s.logger.Info().
		Str("schedule", s.config.Schedule).
		Str("dir", s.config.Dir).
		Int("keep", s.config.Keep).
		Msg("Backup scheduler started")
	return nil
}

// Stop halts the cron loop. A snapshot already running finishes.
func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) runScheduled() {
	if _, err := s.Snapshot(context.Background()); err != nil {
		s.logger.Warn().Err(err).Msg("Scheduled backup failed")
	}
}

// Snapshot writes one timestamped backup file and prunes beyond the retention
// count. Returns the written path.
func (s *Scheduler) Snapshot(ctx context.Context) (string, error) {
	backup, err := s.documents.ExportBackup(ctx)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.config.Dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup dir: %w", err)
	}

	name := filePrefix + time.Now().UTC().Format("20060102-150405") + ".json"
	path := filepath.Join(s.config.Dir, name)

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write backup file: %w", err)
	}

	s.logger.Info().
		Str("path", path).
		Int("documents", len(backup.Documents)).
		Msg("Backup snapshot written")

	if err := s.prune(); err != nil {
		s.logger.Warn().Err(err).Msg("Backup pruning failed")
	}
	return path, nil
}

// prune deletes the oldest snapshots beyond the retention count. Timestamped
// names sort chronologically, so lexicographic order is age order.
func (s *Scheduler) prune() error {
	if s.config.Keep <= 0 {
		return nil
	}

	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		return err
	}

	var snapshots []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, filePrefix) && strings.HasSuffix(name, ".json") {
			snapshots = append(snapshots, name)
		}
	}
	if len(snapshots) <= s.config.Keep {
		return nil
	}

	sort.Strings(snapshots)
	for _, name := range snapshots[:len(snapshots)-s.config.Keep] {
		if err := os.Remove(filepath.Join(s.config.Dir, name)); err != nil {
			return err
		}
		s.logger.Debug().Str("file", name).Msg("Old backup removed")
	}
	return nil
}

// Package ingest provisions the course index and loads seed catalog
// data at startup.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/coursefind/coursefind/internal/domain/course"
)

// Service provisions the index and writes catalog records.
type Service struct {
	repo Repository
	log  *zap.Logger
}

// New creates an ingest service.
func New(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// Bootstrap ensures the index exists and, when a seed file is
// configured and the index is empty, loads it. An already-populated
// index is left untouched so restarts do not clobber live data.
func (s *Service) Bootstrap(ctx context.Context, seedFile string) error {
	created, err := s.repo.EnsureIndex(ctx)
	if err != nil {
		return fmt.Errorf("ensure index: %w", err)
	}
	if created {
		s.log.Info("created course index")
	}

	if seedFile == "" {
		return nil
	}

	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if n > 0 {
		s.log.Info("index already populated, skipping seed", zap.Int("courses", n))
		return nil
	}

	loaded, err := s.LoadFile(ctx, seedFile)
	if err != nil {
		return err
	}
	s.log.Info("seeded catalog", zap.String("file", seedFile), zap.Int("courses", loaded))
	return nil
}

// LoadFile reads a JSON array of courses from path and upserts them.
// Every record must validate; a single bad record fails the whole load
// so a partial catalog never goes live silently.
func (s *Service) LoadFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read seed file: %w", err)
	}

	var courses []course.Course
	if err := json.Unmarshal(data, &courses); err != nil {
		return 0, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return s.Upsert(ctx, courses)
}

// Upsert validates and writes a batch of courses.
func (s *Service) Upsert(ctx context.Context, courses []course.Course) (int, error) {
	for i := range courses {
		if err := courses[i].Validate(); err != nil {
			return 0, fmt.Errorf("course %d (%s): %w", i, courses[i].ID, err)
		}
	}

	if err := s.repo.BulkUpsert(ctx, courses); err != nil {
		return 0, fmt.Errorf("bulk upsert: %w", err)
	}
	return len(courses), nil
}

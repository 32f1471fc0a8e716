package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/seyi-adeleke/riskscore/constants"
	"github.com/seyi-adeleke/riskscore/internal/bulk"
	"github.com/seyi-adeleke/riskscore/internal/entity"
	"github.com/seyi-adeleke/riskscore/internal/upload"
)

// Submitter turns dropped workbooks into upload jobs. The job type comes
// from the filename: a name containing "quarterly" runs the quarterly
// model, one containing "annual" the annual model, anything else is
// skipped so a stray workbook cannot be scored against the wrong model.
type Submitter struct {
	svc    *bulk.Service
	scope  entity.OwnerScope
	logger *slog.Logger
}

func NewSubmitter(svc *bulk.Service, scope entity.OwnerScope, logger *slog.Logger) *Submitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Submitter{svc: svc, scope: scope, logger: logger}
}

// SubmitPath parses one workbook and submits it as an upload job.
func (s *Submitter) SubmitPath(ctx context.Context, path string) (*entity.UploadJob, error) {
	jobType, ok := JobTypeForPath(path)
	if !ok {
		s.logger.Warn("workbook name does not select a model, skipping", "path", path)
		return nil, fmt.Errorf("cannot infer job type from %q", filepath.Base(path))
	}

	rows, err := upload.ParseFile(path)
	if err != nil {
		s.logger.Error("workbook parse failed", "path", path, "error", err)
		return nil, err
	}

	job, err := s.svc.SubmitJob(ctx, jobType, s.scope, rows)
	if err != nil {
		s.logger.Error("workbook submission failed", "path", path, "rows", len(rows), "error", err)
		return nil, err
	}
	s.logger.Info("workbook submitted",
		"path", path, "job_id", job.ID, "job_type", jobType,
		"total_rows", job.TotalRows, "total_chunks", job.TotalChunks)
	return job, nil
}

// Run consumes watcher events until the context ends.
func (s *Submitter) Run(ctx context.Context, paths <-chan string) {
	for {
		select {
		case <-ctx.Done():
			return
		case p, ok := <-paths:
			if !ok {
				return
			}
			// SubmitPath logs its own failures; one bad workbook
			// must not stop the watch loop
			_, _ = s.SubmitPath(ctx, p)
		}
	}
}

// JobTypeForPath infers the scoring model from the workbook filename.
func JobTypeForPath(path string) (constants.JobType, bool) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.Contains(name, "quarterly"):
		return constants.JobTypeQuarterly, true
	case strings.Contains(name, "annual"):
		return constants.JobTypeAnnual, true
	default:
		return "", false
	}
}

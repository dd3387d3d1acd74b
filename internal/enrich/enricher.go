package enrich

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"course-catalog/internal/concurrency"
	"course-catalog/internal/domain"
	"course-catalog/internal/prereq"
)

// PrerequisiteSource fetches the raw prerequisite text for one CRN.
// *banner.Session satisfies it.
type PrerequisiteSource interface {
	SectionPrerequisites(ctx context.Context, crn string) (string, error)
}

// progressEvery is how many completed lookups pass between progress log lines.
const progressEvery = 50

// Enricher attaches parsed prerequisite data to course records with a bounded
// worker pool. A failed lookup degrades that one record to an empty set; it
// never fails the run.
type Enricher struct {
	Workers int
	Logger  *zap.Logger
}

func New(workers int, log *zap.Logger) *Enricher {
	if workers <= 0 {
		workers = 20
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Enricher{Workers: workers, Logger: log}
}

type enrichment struct {
	text string
	set  domain.PrerequisiteSet
}

// Enrich returns a copy of records with PrerequisiteText and Prerequisites
// filled in. newSource supplies one private source per worker; sources are
// never shared between in-flight lookups. Only source setup can fail.
func (e *Enricher) Enrich(ctx context.Context, newSource func() (PrerequisiteSource, error), records []domain.CourseRecord) ([]domain.CourseRecord, error) {
	if len(records) == 0 {
		return []domain.CourseRecord{}, nil
	}

	workers := e.Workers
	if workers > len(records) {
		workers = len(records)
	}

	pool := make(chan PrerequisiteSource, workers)
	for i := 0; i < workers; i++ {
		src, err := newSource()
		if err != nil {
			return nil, err
		}
		pool <- src
	}

	e.Logger.Info("enriching prerequisites",
		zap.Int("records", len(records)),
		zap.Int("workers", workers))

	start := time.Now()
	var degraded atomic.Int64

	results, _ := concurrency.ProcessParallel(ctx, records,
		concurrency.ParallelOptions{
			MaxWorkers: workers,
			EveryN:     progressEvery,
			OnProgress: func(completed, total int) {
				e.logProgress(start, completed, total)
			},
		},
		func(ctx context.Context, _ int, rec domain.CourseRecord) (enrichment, error) {
			if rec.CRN == "" {
				return enrichment{set: prereq.Parse("")}, nil
			}

			src := <-pool
			text, err := src.SectionPrerequisites(ctx, rec.CRN)
			pool <- src

			if err != nil {
				degraded.Add(1)
				e.Logger.Warn("prerequisite lookup degraded",
					zap.String("crn", rec.CRN), zap.Error(err))
				return enrichment{set: prereq.Parse("")}, nil
			}
			return enrichment{text: text, set: prereq.Parse(text)}, nil
		})

	enriched := make([]domain.CourseRecord, len(records))
	for i, rec := range records {
		rec.PrerequisiteText = results[i].text
		rec.Prerequisites = results[i].set
		enriched[i] = rec
	}

	e.Logger.Info("prerequisite enrichment done",
		zap.Int("records", len(enriched)),
		zap.Int64("degraded", degraded.Load()),
		zap.Duration("elapsed", time.Since(start).Round(time.Millisecond)))

	return enriched, nil
}

func (e *Enricher) logProgress(start time.Time, completed, total int) {
	elapsed := time.Since(start)
	fields := []zap.Field{
		zap.Int("completed", completed),
		zap.Int("total", total),
	}
	if secs := elapsed.Seconds(); secs > 0 {
		rate := float64(completed) / secs
		fields = append(fields, zap.Float64("per_second", rate))
		if rate > 0 {
			eta := time.Duration(float64(total-completed) / rate * float64(time.Second))
			fields = append(fields, zap.Duration("eta", eta.Round(time.Second)))
		}
	}
	e.Logger.Info("prerequisite progress", fields...)
}

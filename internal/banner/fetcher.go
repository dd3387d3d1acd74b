package banner

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"course-catalog/internal/concurrency"
	"course-catalog/internal/domain"
)

// Fetcher drives total-count discovery and concurrent batch retrieval of the
// course search results for one term.
type Fetcher struct {
	Client   *Client
	PageSize int
	Workers  int
	Logger   *zap.Logger
}

func NewFetcher(client *Client, pageSize, workers int, log *zap.Logger) *Fetcher {
	if pageSize <= 0 {
		pageSize = 500
	}
	if workers <= 0 {
		workers = 20
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Fetcher{Client: client, PageSize: pageSize, Workers: workers, Logger: log}
}

type batch struct {
	offset int
	size   int
}

// Fetch returns every course row of the term, in offset order. A handshake
// failure or any failed page aborts the run; partial results are discarded.
func (f *Fetcher) Fetch(ctx context.Context, term string) ([]domain.CourseRecord, error) {
	probe, err := f.Client.Acquire(ctx, term)
	if err != nil {
		return nil, err
	}

	first, err := probe.SearchPage(ctx, 0, 1)
	if err != nil {
		return nil, &FetchError{Offset: 0, Err: fmt.Errorf("count discovery: %w", err)}
	}

	total := first.TotalCount
	f.Logger.Info("total courses available", zap.String("term", term), zap.Int("total", total))
	if total == 0 {
		return []domain.CourseRecord{}, nil
	}

	batches := planBatches(total, f.PageSize)
	f.Logger.Info("fetching course batches",
		zap.Int("batches", len(batches)),
		zap.Int("page_size", f.PageSize),
		zap.Int("workers", f.Workers))

	pool, err := f.acquireSessions(ctx, term, minInt(f.Workers, len(batches)))
	if err != nil {
		return nil, err
	}

	pages, errs := concurrency.ProcessParallel(ctx, batches,
		concurrency.ParallelOptions{MaxWorkers: f.Workers},
		func(ctx context.Context, _ int, b batch) ([]rawCourse, error) {
			session := pool.checkout()
			defer pool.checkin(session)

			resp, err := session.SearchPage(ctx, b.offset, b.size)
			if err != nil {
				return nil, &FetchError{Offset: b.offset, Err: err}
			}
			return resp.Data, nil
		})
	if len(errs) > 0 {
		return nil, errs[0]
	}

	records := make([]domain.CourseRecord, 0, total)
	for i, page := range pages {
		if len(page) == 0 {
			// The service occasionally reports more rows than it will
			// serve; an empty page ends the fetch early without failing it.
			f.Logger.Warn("empty page before totalCount reached",
				zap.Int("offset", batches[i].offset), zap.Int("total", total))
			break
		}
		for _, raw := range page {
			records = append(records, raw.toDomain())
		}
		if len(page) < batches[i].size {
			// short page: last one the service has
			break
		}
	}

	f.Logger.Info("fetched courses", zap.Int("count", len(records)))
	return records, nil
}

// planBatches splits total rows into offset/size pairs of at most pageSize.
func planBatches(total, pageSize int) []batch {
	var batches []batch
	for offset := 0; offset < total; offset += pageSize {
		size := pageSize
		if remaining := total - offset; remaining < size {
			size = remaining
		}
		batches = append(batches, batch{offset: offset, size: size})
	}
	return batches
}

// sessionPool hands out pre-authenticated sessions with checkout/checkin
// semantics so no two in-flight page requests ever share one.
type sessionPool struct {
	ch chan *Session
}

func (f *Fetcher) acquireSessions(ctx context.Context, term string, n int) (*sessionPool, error) {
	if n < 1 {
		n = 1
	}
	pool := &sessionPool{ch: make(chan *Session, n)}
	for i := 0; i < n; i++ {
		s, err := f.Client.Acquire(ctx, term)
		if err != nil {
			return nil, err
		}
		pool.ch <- s
	}
	return pool, nil
}

func (p *sessionPool) checkout() *Session { return <-p.ch }
func (p *sessionPool) checkin(s *Session) { p.ch <- s }

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

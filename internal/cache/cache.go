// Package cache stores computed dashboard reports.
//
// Entries are keyed by a generation counter that every ledger mutation bumps,
// so a report computed before a write can never be served after it.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/rogerio-castellano/retail-tracker/internal/models"
	"github.com/rogerio-castellano/retail-tracker/internal/reporting"
)

type ReportCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, asOf models.Date) (*reporting.Report, bool, error)
	Set(ctx context.Context, gen int64, asOf models.Date, report *reporting.Report) error
	Invalidate(ctx context.Context) error
}

type NoopReportCache struct{}

func (NoopReportCache) Generation(context.Context) (int64, error) { return 0, nil }

func (NoopReportCache) Get(context.Context, int64, models.Date) (*reporting.Report, bool, error) {
	return nil, false, nil
}

func (NoopReportCache) Set(context.Context, int64, models.Date, *reporting.Report) error { return nil }

func (NoopReportCache) Invalidate(context.Context) error { return nil }

// MemoryReportCache keeps reports in process memory.
type MemoryReportCache struct {
	mu      sync.Mutex
	gen     int64
	ttl     time.Duration
	entries map[memoryKey]memoryEntry
}

type memoryKey struct {
	gen  int64
	asOf models.Date
}

type memoryEntry struct {
	report  reporting.Report
	expires time.Time
}

func NewMemoryReportCache(ttl time.Duration) *MemoryReportCache {
	return &MemoryReportCache{ttl: ttl, entries: map[memoryKey]memoryEntry{}}
}

func (c *MemoryReportCache) Generation(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gen, nil
}

func (c *MemoryReportCache) Get(_ context.Context, gen int64, asOf models.Date) (*reporting.Report, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[memoryKey{gen, asOf}]
	if !ok || (c.ttl > 0 && time.Now().After(e.expires)) {
		return nil, false, nil
	}
	r := e.report
	return &r, true, nil
}

func (c *MemoryReportCache) Set(_ context.Context, gen int64, asOf models.Date, report *reporting.Report) error {
	if report == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		return nil
	}
	c.entries[memoryKey{gen, asOf}] = memoryEntry{report: *report, expires: time.Now().Add(c.ttl)}
	return nil
}

// Invalidate bumps the generation and drops every stored entry.
func (c *MemoryReportCache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.gen++
	clear(c.entries)
	return nil
}

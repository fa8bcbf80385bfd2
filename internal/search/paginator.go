package search

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"jobdash/internal/api"
	"jobdash/internal/domain"
)

// PageSource is the backend call behind the results table
type PageSource interface {
	ListJobs(ctx context.Context, query url.Values) (domain.PageResult, error)
}

// Status is the state of the results table
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Row is a displayed job together with its row identity
type Row struct {
	Key       string
	Synthetic bool
	Job       domain.Job
}

// RowKey identifies a row. Jobs without an id get a key derived from page
// and position; such keys are flagged Synthetic and mean nothing after a refetch.
func RowKey(job domain.Job, page, index int) (string, bool) {
	if job.ID != 0 {
		return "id:" + strconv.Itoa(job.ID), false
	}
	return fmt.Sprintf("idx:%d:%d", page, index), true
}

// PostFilter narrows one page by the criteria the jobs endpoint can't apply.
// Company is a case-insensitive substring; skills match when any of the
// comma-separated tokens is a substring of the job's skills.
func PostFilter(items []domain.Job, c domain.Criteria) []domain.Job {
	company := strings.ToLower(strings.TrimSpace(c.Company))
	tokens := domain.SplitList(strings.ToLower(c.Skills))
	if company == "" && len(tokens) == 0 {
		return items
	}

	out := make([]domain.Job, 0, len(items))
	for _, job := range items {
		if company != "" && !strings.Contains(strings.ToLower(job.Company), company) {
			continue
		}
		if len(tokens) > 0 && !matchesAnySkill(job.Skills, tokens) {
			continue
		}
		out = append(out, job)
	}
	return out
}

func matchesAnySkill(skills string, tokens []string) bool {
	if strings.TrimSpace(skills) == "" {
		return false
	}
	lower := strings.ToLower(skills)
	for _, t := range tokens {
		if strings.Contains(lower, t) {
			return true
		}
	}
	return false
}

// Paginator owns the results of one table: the last query, its server page
// and the post-filtered rows.
type Paginator struct {
	mu       sync.RWMutex
	status   Status
	seq      uint64
	query    JobQuery
	server   []domain.Job
	rows     []Row
	total    int
	errMsg   string
	selected int
}

func NewPaginator() *Paginator {
	return &Paginator{}
}

// Begin moves to loading for q and returns the sequence number the response must carry
func (p *Paginator) Begin(q JobQuery) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.query = q
	p.status = StatusLoading
	p.errMsg = ""
	return p.seq
}

// Complete records the response to request seq. Responses to superseded
// requests are ignored and false is returned.
func (p *Paginator) Complete(seq uint64, page domain.PageResult, err error) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if seq != p.seq || p.status != StatusLoading {
		return false
	}

	p.selected = 0
	if err != nil {
		p.status = StatusError
		p.server = nil
		p.rows = nil
		p.total = 0
		p.errMsg = api.ErrorMessage(err)
		return true
	}

	p.status = StatusSuccess
	p.server = page.Items
	p.total = page.Total

	filtered := PostFilter(page.Items, p.query.Criteria)
	p.rows = make([]Row, len(filtered))
	for i, job := range filtered {
		key, synthetic := RowKey(job, p.query.Page, i)
		p.rows[i] = Row{Key: key, Synthetic: synthetic, Job: job}
	}
	return true
}

// Load runs a whole request synchronously. Used by the CLI and tests.
func (p *Paginator) Load(ctx context.Context, src PageSource, q JobQuery) error {
	seq := p.Begin(q)
	page, err := src.ListJobs(ctx, q.Values())
	p.Complete(seq, page, err)
	return err
}

// Reset returns to idle and drops any results
func (p *Paginator) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.seq++
	p.status = StatusIdle
	p.server, p.rows = nil, nil
	p.total, p.selected = 0, 0
	p.errMsg = ""
}

func (p *Paginator) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Query returns the query of the latest request
func (p *Paginator) Query() JobQuery {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.query
}

// Rows returns the displayed, post-filtered rows
func (p *Paginator) Rows() []Row {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]Row(nil), p.rows...)
}

// Total is the server-reported match count. Post-filtering never changes it.
func (p *Paginator) Total() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.total
}

// ServerCount is how many items the server returned for this page
func (p *Paginator) ServerCount() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.server)
}

// Filtered reports whether post-filtering dropped rows from this page
func (p *Paginator) Filtered() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.rows) < len(p.server)
}

// Err returns the user-facing error message of the last request
func (p *Paginator) Err() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.errMsg
}

// TotalPages is derived from the server total
func (p *Paginator) TotalPages() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.query.PerPage <= 0 || p.total == 0 {
		return 1
	}
	return (p.total + p.query.PerPage - 1) / p.query.PerPage
}

// HasNextPage reports whether the server holds rows past this page
func (p *Paginator) HasNextPage() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status == StatusSuccess && p.query.Page*p.query.PerPage < p.total
}

func (p *Paginator) HasPrevPage() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.query.Page > 1
}

// Summary describes the page without ever claiming the displayed count is the total
func (p *Paginator) Summary() string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	switch p.status {
	case StatusIdle:
		return "No search yet"
	case StatusLoading:
		return "Loading..."
	case StatusError:
		return "Error: " + p.errMsg
	}

	shown, onPage := len(p.rows), len(p.server)
	if shown < onPage {
		return fmt.Sprintf("showing %d of this page's %d; %d match on server", shown, onPage, p.total)
	}
	if p.total == 0 {
		return "No jobs found"
	}
	return fmt.Sprintf("found %d (total: %d)", shown, p.total)
}

// Selected is the cursor position within Rows
func (p *Paginator) Selected() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.selected
}

// Move shifts the cursor by delta, clamped to the rows
func (p *Paginator) Move(delta int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = clamp(p.selected+delta, 0, len(p.rows)-1)
}

// Select sets the cursor, clamped to the rows
func (p *Paginator) Select(i int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selected = clamp(i, 0, len(p.rows)-1)
}

// Current returns the row under the cursor
func (p *Paginator) Current() (Row, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.selected < 0 || p.selected >= len(p.rows) {
		return Row{}, false
	}
	return p.rows[p.selected], true
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

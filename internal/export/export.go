package export

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"jobdash/internal/domain"
	"jobdash/internal/search"
)

// DefaultLimit is the per_page of the single unpaged fetch
const DefaultLimit = 10000

// SheetName is the name of the only worksheet
const SheetName = "Jobs"

var header = []string{"ID", "Title", "Company", "Level", "Salary", "Avg (M VND)", "Location", "Skills", "Source", "Crawled At"}

// Source is the jobs listing call used for export
type Source interface {
	ListJobs(ctx context.Context, query url.Values) (domain.PageResult, error)
}

// Options tune an export run
type Options struct {
	Limit int
	// Query adds backend filters to the fetch; page and per_page are always overridden
	Query url.Values
	// Criteria narrows the fetched rows by company and skills, which the backend can't filter on
	Criteria domain.Criteria
	// Progress is called after each written row with the count so far and the row total
	Progress func(done, total int)
}

// Result describes a finished export
type Result struct {
	Path  string
	Rows  int
	Total int
}

// DefaultFilename is jobs_export_YYYY-MM-DD.xlsx for the given day
func DefaultFilename(now time.Time) string {
	return fmt.Sprintf("jobs_export_%s.xlsx", now.Format("2006-01-02"))
}

// Export fetches page 1 with per_page=Limit, independent of whatever page is
// on screen, and writes the jobs to path.
func Export(ctx context.Context, src Source, path string, opts Options) (Result, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := url.Values{}
	for k, v := range opts.Query {
		q[k] = append([]string(nil), v...)
	}
	q.Set("page", "1")
	q.Set("per_page", strconv.Itoa(limit))

	page, err := src.ListJobs(ctx, q)
	if err != nil {
		return Result{}, fmt.Errorf("fetch jobs for export: %w", err)
	}

	jobs := search.PostFilter(page.Items, opts.Criteria)
	if err := WriteWorkbook(path, jobs, opts.Progress); err != nil {
		return Result{}, err
	}
	log.Printf("[export] wrote %d of %d jobs to %s", len(jobs), page.Total, path)
	return Result{Path: path, Rows: len(jobs), Total: page.Total}, nil
}

// WriteWorkbook writes jobs to a new workbook at path
func WriteWorkbook(path string, jobs []domain.Job, progress func(done, total int)) error {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("[export] close workbook: %v", err)
		}
	}()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, job := range jobs {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := jobRow(job)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("write row %d: %w", i+2, err)
		}
		if progress != nil {
			progress(i+1, len(jobs))
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func jobRow(j domain.Job) []interface{} {
	var avg interface{} = ""
	if j.AvgSalary != nil {
		avg = *j.AvgSalary
	}
	return []interface{}{
		j.ID, j.Title, j.Company, j.Level, j.SalaryRaw, avg,
		j.Location, j.Skills, j.Source, j.CrawledAt,
	}
}

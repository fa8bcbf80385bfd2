package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"jobdash/internal/domain"
	"jobdash/internal/session"
)

// ListJobs fetches one page of jobs. query is passed through unchanged.
func (c *Client) ListJobs(ctx context.Context, query url.Values) (domain.PageResult, error) {
	var page domain.PageResult
	if err := c.get(ctx, "/api/jobs", query, session.Anonymous, &page); err != nil {
		return domain.PageResult{}, err
	}
	if page.Items == nil {
		page.Items = []domain.Job{}
	}
	return page, nil
}

// Job fetches a single job by id
func (c *Client) Job(ctx context.Context, id int) (domain.Job, error) {
	var job domain.Job
	err := c.get(ctx, "/api/jobs/"+strconv.Itoa(id), nil, session.Anonymous, &job)
	return job, err
}

// Suggestions returns up to limit autocomplete candidates for field
func (c *Client) Suggestions(ctx context.Context, field domain.Field, q string, limit int) ([]string, error) {
	endpoint := field.Endpoint()
	if endpoint == "" {
		return nil, fmt.Errorf("no suggestion endpoint for %s", field)
	}
	query := url.Values{}
	query.Set("q", q)
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := c.get(ctx, "/api/suggestions/"+endpoint, query, session.Anonymous, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestions, nil
}

// ParseSalaryError is the backend saying it could not parse the salary text
type ParseSalaryError struct {
	Raw     string
	Message string
}

func (e *ParseSalaryError) Error() string {
	return e.Message
}

// ParseSalary asks the backend to normalise a raw salary string. A nil
// result with a nil error means the text held no usable figure.
func (c *Client) ParseSalary(ctx context.Context, raw string) (*float64, error) {
	var resp domain.ParsedSalary
	payload := map[string]string{"salary_raw": raw}
	if err := c.postJSON(ctx, "/api/parse_salary", payload, session.Anonymous, &resp); err != nil {
		return nil, err
	}
	if resp.Error != "" {
		return nil, &ParseSalaryError{Raw: raw, Message: resp.Error}
	}
	return resp.AvgSalary, nil
}

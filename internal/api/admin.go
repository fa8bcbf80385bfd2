package api

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"jobdash/internal/domain"
	"jobdash/internal/session"
)

// Login exchanges credentials for a bearer token. It satisfies session.Authenticator.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := c.postForm(ctx, "/api/auth/login", form, &resp); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Detail == "" {
			apiErr.Detail = "Login failed"
		}
		return "", err
	}
	return resp.AccessToken, nil
}

func (c *Client) AdminSettings(ctx context.Context, auth session.Auth) (domain.AdminSettings, error) {
	var out domain.AdminSettings
	err := c.get(ctx, "/api/admin/settings", nil, auth, &out)
	return out, err
}

// ToggleCrawl switches the scheduled crawler on or off
func (c *Client) ToggleCrawl(ctx context.Context, auth session.Auth, enabled bool) (domain.AdminSettings, error) {
	flag := 0
	if enabled {
		flag = 1
	}
	var out domain.AdminSettings
	err := c.postJSON(ctx, "/api/admin/toggle_crawl", map[string]int{"enabled": flag}, auth, &out)
	return out, err
}

func (c *Client) TriggerImport(ctx context.Context, auth session.Auth) (domain.ActionStatus, error) {
	var out domain.ActionStatus
	err := c.postJSON(ctx, "/api/admin/import", nil, auth, &out)
	return out, err
}

func (c *Client) TriggerCrawl(ctx context.Context, auth session.Auth) (domain.ActionStatus, error) {
	var out domain.ActionStatus
	err := c.postJSON(ctx, "/api/admin/crawl", nil, auth, &out)
	return out, err
}

// AdminLogs returns the last lines of the backend log
func (c *Client) AdminLogs(ctx context.Context, auth session.Auth, lines int) ([]string, error) {
	var resp struct {
		Logs []string `json:"logs"`
	}
	var q url.Values
	if lines > 0 {
		q = url.Values{"lines": {strconv.Itoa(lines)}}
	}
	if err := c.get(ctx, "/api/admin/logs", q, auth, &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// CreateJob adds a job by hand. Title and company are checked before any request.
func (c *Client) CreateJob(ctx context.Context, auth session.Auth, job domain.NewJob) (domain.CreatedJob, error) {
	if err := job.Validate(); err != nil {
		return domain.CreatedJob{}, err
	}
	var out domain.CreatedJob
	err := c.postJSON(ctx, "/api/admin/jobs/create", job, auth, &out)
	return out, err
}

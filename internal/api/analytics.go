package api

import (
	"context"
	"net/url"
	"strconv"

	"jobdash/internal/domain"
	"jobdash/internal/session"
)

func limitQuery(key string, n int) url.Values {
	if n <= 0 {
		return nil
	}
	return url.Values{key: {strconv.Itoa(n)}}
}

func (c *Client) SalaryStats(ctx context.Context) (domain.SalaryStats, error) {
	var out domain.SalaryStats
	err := c.get(ctx, "/api/analytics/salary-stats", nil, session.Anonymous, &out)
	return out, err
}

func (c *Client) SalaryByLevel(ctx context.Context) ([]domain.LevelSalary, error) {
	var out []domain.LevelSalary
	err := c.get(ctx, "/api/analytics/salary-by-level", nil, session.Anonymous, &out)
	return out, err
}

func (c *Client) SalaryByLocation(ctx context.Context, limit int) ([]domain.LocationSalary, error) {
	var out []domain.LocationSalary
	err := c.get(ctx, "/api/analytics/salary-by-location", limitQuery("limit", limit), session.Anonymous, &out)
	return out, err
}

func (c *Client) TopSkills(ctx context.Context, limit int) ([]domain.SkillStat, error) {
	var out []domain.SkillStat
	err := c.get(ctx, "/api/analytics/top-skills", limitQuery("limit", limit), session.Anonymous, &out)
	return out, err
}

func (c *Client) CompanyAnalysis(ctx context.Context, limit int) ([]domain.CompanyStat, error) {
	var out []domain.CompanyStat
	err := c.get(ctx, "/api/analytics/company-analysis", limitQuery("limit", limit), session.Anonymous, &out)
	return out, err
}

func (c *Client) TitleSalaryInsights(ctx context.Context, limit int) ([]domain.TitleSalary, error) {
	var out []domain.TitleSalary
	err := c.get(ctx, "/api/analytics/title-salary-insights", limitQuery("limit", limit), session.Anonymous, &out)
	return out, err
}

// SalaryDistribution returns a histogram with the given number of bins
func (c *Client) SalaryDistribution(ctx context.Context, bins int) ([]domain.DistributionBin, error) {
	var out []domain.DistributionBin
	err := c.get(ctx, "/api/analytics/salary-distribution", limitQuery("bins", bins), session.Anonymous, &out)
	return out, err
}

func (c *Client) MarketOverview(ctx context.Context) (domain.MarketOverview, error) {
	var out domain.MarketOverview
	err := c.get(ctx, "/api/analytics/market-overview", nil, session.Anonymous, &out)
	return out, err
}

func (c *Client) DataSources(ctx context.Context) ([]domain.SourceStat, error) {
	var out []domain.SourceStat
	err := c.get(ctx, "/api/analytics/data-sources", nil, session.Anonymous, &out)
	return out, err
}

// TrendingJobs lists recently crawled jobs from the last days days
func (c *Client) TrendingJobs(ctx context.Context, days, limit int) ([]domain.TrendingJob, error) {
	q := url.Values{}
	if days > 0 {
		q.Set("days", strconv.Itoa(days))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	var out []domain.TrendingJob
	err := c.get(ctx, "/api/analytics/trending-jobs", q, session.Anonymous, &out)
	return out, err
}

func (c *Client) Top30Jobs(ctx context.Context) ([]domain.TopJob, error) {
	var out []domain.TopJob
	err := c.get(ctx, "/api/analytics/top-30-jobs", nil, session.Anonymous, &out)
	return out, err
}

// ByLocation is the landing page series of average salary per location
func (c *Client) ByLocation(ctx context.Context, topN int) ([]domain.SeriesPoint, error) {
	var resp struct {
		Data []struct {
			Location  string  `json:"location"`
			AvgSalary float64 `json:"avg_salary"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/analytics/by_location", limitQuery("top_n", topN), session.Anonymous, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SeriesPoint, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, domain.SeriesPoint{Label: d.Location, AvgSalary: d.AvgSalary})
	}
	return out, nil
}

// ByLevel is the landing page series of average salary per level
func (c *Client) ByLevel(ctx context.Context) ([]domain.SeriesPoint, error) {
	var resp struct {
		Data []struct {
			Level     string  `json:"level"`
			AvgSalary float64 `json:"avg_salary"`
		} `json:"data"`
	}
	if err := c.get(ctx, "/api/analytics/by_level", nil, session.Anonymous, &resp); err != nil {
		return nil, err
	}
	out := make([]domain.SeriesPoint, 0, len(resp.Data))
	for _, d := range resp.Data {
		out = append(out, domain.SeriesPoint{Label: d.Level, AvgSalary: d.AvgSalary})
	}
	return out, nil
}

// SalaryValues returns every known average salary, for the sparkline
func (c *Client) SalaryValues(ctx context.Context) ([]float64, error) {
	var resp struct {
		Values []float64 `json:"values"`
	}
	if err := c.get(ctx, "/api/analytics/salary_distribution", nil, session.Anonymous, &resp); err != nil {
		return nil, err
	}
	return resp.Values, nil
}

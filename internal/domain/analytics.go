package domain

// SalaryStats summarises every posting with a salary
type SalaryStats struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	Median float64 `json:"median"`
}

type LevelSalary struct {
	Level     string  `json:"level"`
	Count     int     `json:"count"`
	AvgSalary float64 `json:"avg_salary"`
	MinSalary float64 `json:"min_salary"`
	MaxSalary float64 `json:"max_salary"`
}

type LocationSalary struct {
	Location  string  `json:"location"`
	Count     int     `json:"count"`
	AvgSalary float64 `json:"avg_salary"`
}

type SkillStat struct {
	Skill     string  `json:"skill"`
	Frequency int     `json:"frequency"`
	AvgSalary float64 `json:"avg_salary"`
}

type CompanyStat struct {
	Company   string  `json:"company"`
	JobCount  int     `json:"job_count"`
	AvgSalary float64 `json:"avg_salary"`
}

type TitleSalary struct {
	Title     string  `json:"title"`
	Count     int     `json:"count"`
	AvgSalary float64 `json:"avg_salary"`
}

// DistributionBin is one histogram bucket; Bin is a label like "10-20"
type DistributionBin struct {
	Bin   string `json:"bin"`
	Count int    `json:"count"`
}

type SourceCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type LocationCount struct {
	Location string `json:"location"`
	Count    int    `json:"count"`
}

type MarketOverview struct {
	TotalJobs        int             `json:"total_jobs"`
	JobsWithSalary   int             `json:"jobs_with_salary"`
	DataCompleteness float64         `json:"data_completeness"`
	Sources          []SourceCount   `json:"sources"`
	TopLocations     []LocationCount `json:"top_locations"`
}

type SourceStat struct {
	Source       string   `json:"source"`
	Count        int      `json:"count"`
	FirstCrawled string   `json:"first_crawled"`
	LastCrawled  string   `json:"last_crawled"`
	AvgSalary    *float64 `json:"avg_salary"`
}

type TrendingJob struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Salary    *float64 `json:"salary"`
	Source    string   `json:"source"`
	CrawledAt string   `json:"crawled_at"`
	URL       string   `json:"url"`
}

// TopJob is one entry of the top-30 leaderboard
type TopJob struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Level     string   `json:"level"`
	Salary    *float64 `json:"salary"`
	Location  string   `json:"location"`
	Skills    string   `json:"skills"`
	Source    string   `json:"source"`
	URL       string   `json:"url"`
	CrawledAt string   `json:"crawled_at"`
}

// SeriesPoint is one bar of the basic dashboard charts. Label holds the
// location or level depending on the endpoint.
type SeriesPoint struct {
	Label     string
	AvgSalary float64
}

// Dashboard is everything the landing tab shows
type Dashboard struct {
	SalaryValues []float64
	ByLocation   []SeriesPoint
	ByLevel      []SeriesPoint
}

// AnalyticsReport bundles the advanced analytics endpoints
type AnalyticsReport struct {
	Stats        SalaryStats
	ByLevel      []LevelSalary
	ByLocation   []LocationSalary
	TopSkills    []SkillStat
	Companies    []CompanyStat
	Titles       []TitleSalary
	Distribution []DistributionBin
}

// SourcesReport bundles the data source endpoints
type SourcesReport struct {
	Overview MarketOverview
	Sources  []SourceStat
	Trending []TrendingJob
}

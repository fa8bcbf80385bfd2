package domain

import (
	"fmt"
	"strings"
	"time"
)

// Job is a single job posting as returned by the jobs endpoint
type Job struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	Level     string   `json:"level"`
	SalaryRaw string   `json:"salary_raw"`
	AvgSalary *float64 `json:"avg_salary_mil_vnd"`
	Location  string   `json:"location"`
	Skills    string   `json:"skills"`
	Source    string   `json:"source"`
	URL       string   `json:"url,omitempty"`
	CrawledAt string   `json:"crawled_at"`
}

// HasSalary reports whether the backend computed an average salary
func (j Job) HasSalary() bool {
	return j.AvgSalary != nil
}

// SkillList splits the comma-separated skills into trimmed, non-empty tokens
func (j Job) SkillList() []string {
	return SplitList(j.Skills)
}

// CrawledTime parses CrawledAt leniently. The zero time is returned when
// the backend sent nothing or a format we don't recognise.
func (j Job) CrawledTime() time.Time {
	return ParseTimestamp(j.CrawledAt)
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimestamp accepts the handful of layouts the backend emits
func ParseTimestamp(s string) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// SplitList splits a comma-separated string into trimmed, non-empty parts
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// PageResult is one page of the jobs listing
type PageResult struct {
	Items   []Job `json:"items"`
	Total   int   `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// Field identifies one of the searchable text fields
type Field int

const (
	FieldTitle Field = iota
	FieldCompany
	FieldLocation
	FieldLevel
	FieldSkill
)

// Fields lists every searchable field in display order
var Fields = []Field{FieldTitle, FieldCompany, FieldLocation, FieldLevel, FieldSkill}

// Endpoint returns the suggestion endpoint segment for the field
func (f Field) Endpoint() string {
	switch f {
	case FieldTitle:
		return "titles"
	case FieldCompany:
		return "companies"
	case FieldLocation:
		return "locations"
	case FieldLevel:
		return "levels"
	case FieldSkill:
		return "skills"
	default:
		return ""
	}
}

// Label returns the human readable field name
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldCompany:
		return "Company"
	case FieldLocation:
		return "Location"
	case FieldLevel:
		return "Level"
	case FieldSkill:
		return "Skills"
	default:
		return "?"
	}
}

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldCompany:
		return "company"
	case FieldLocation:
		return "location"
	case FieldLevel:
		return "level"
	case FieldSkill:
		return "skill"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// ParseField maps a field name (singular or endpoint form) back to a Field
func ParseField(s string) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "title", "titles":
		return FieldTitle, nil
	case "company", "companies":
		return FieldCompany, nil
	case "location", "locations":
		return FieldLocation, nil
	case "level", "levels":
		return FieldLevel, nil
	case "skill", "skills":
		return FieldSkill, nil
	}
	return 0, fmt.Errorf("unknown field %q", s)
}

// Salary bounds in million VND, matching the range slider of the dashboard
const (
	SalaryFloor = 0
	SalaryCeil  = 150
	SalaryStep  = 5
)

// SalaryRange is an inclusive salary window
type SalaryRange struct {
	Min float64
	Max float64
}

// FullSalaryRange is the unconstrained default
func FullSalaryRange() SalaryRange {
	return SalaryRange{Min: SalaryFloor, Max: SalaryCeil}
}

// Normalize clamps both bounds into the allowed window and orders them
func (r SalaryRange) Normalize() SalaryRange {
	clamp := func(v float64) float64 {
		if v < SalaryFloor {
			return SalaryFloor
		}
		if v > SalaryCeil {
			return SalaryCeil
		}
		return v
	}
	r.Min, r.Max = clamp(r.Min), clamp(r.Max)
	if r.Min > r.Max {
		r.Min, r.Max = r.Max, r.Min
	}
	return r
}

// HasMin reports whether the lower bound constrains the query
func (r SalaryRange) HasMin() bool { return r.Min > SalaryFloor }

// HasMax reports whether the upper bound constrains the query
func (r SalaryRange) HasMax() bool { return r.Max < SalaryCeil }

// IsFull reports whether the range is the unconstrained default
func (r SalaryRange) IsFull() bool { return !r.HasMin() && !r.HasMax() }

// Criteria is the complete set of user search constraints
type Criteria struct {
	Title    string
	Company  string
	Location string
	Level    string
	Skills   string
	Salary   SalaryRange
}

// NewCriteria returns criteria with no constraints
func NewCriteria() Criteria {
	return Criteria{Salary: FullSalaryRange()}
}

// Get returns the text value of a field
func (c Criteria) Get(f Field) string {
	switch f {
	case FieldTitle:
		return c.Title
	case FieldCompany:
		return c.Company
	case FieldLocation:
		return c.Location
	case FieldLevel:
		return c.Level
	case FieldSkill:
		return c.Skills
	}
	return ""
}

// Set returns a copy with one text field replaced
func (c Criteria) Set(f Field, value string) Criteria {
	switch f {
	case FieldTitle:
		c.Title = value
	case FieldCompany:
		c.Company = value
	case FieldLocation:
		c.Location = value
	case FieldLevel:
		c.Level = value
	case FieldSkill:
		c.Skills = value
	}
	return c
}

// IsEmpty reports whether no constraint is set at all
func (c Criteria) IsEmpty() bool {
	for _, f := range Fields {
		if strings.TrimSpace(c.Get(f)) != "" {
			return false
		}
	}
	return c.Salary.IsFull()
}

// NeedsPostFilter reports whether constraints the jobs endpoint can't apply are set
func (c Criteria) NeedsPostFilter() bool {
	return strings.TrimSpace(c.Company) != "" || len(SplitList(c.Skills)) > 0
}

// AdminSettings mirrors the backend crawler switch
type AdminSettings struct {
	CrawlEnabled int `json:"crawl_enabled"`
}

// Enabled reports whether the crawler is switched on
func (s AdminSettings) Enabled() bool { return s.CrawlEnabled != 0 }

// NewJob is the payload for manual job entry
type NewJob struct {
	Title     string   `json:"title"`
	Company   string   `json:"company"`
	SalaryRaw string   `json:"salary_raw"`
	Location  string   `json:"location"`
	Level     string   `json:"level"`
	AvgSalary *float64 `json:"avg_salary_mil_vnd"`
}

// Validate checks the fields the backend requires
func (j NewJob) Validate() error {
	if strings.TrimSpace(j.Title) == "" || strings.TrimSpace(j.Company) == "" {
		return fmt.Errorf("title and company are required")
	}
	return nil
}

// CreatedJob is the backend acknowledgement of a manual entry
type CreatedJob struct {
	ID     int    `json:"id"`
	Status string `json:"status"`
}

// ParsedSalary is the result of server-side salary parsing
type ParsedSalary struct {
	AvgSalary *float64 `json:"avg_salary_mil_vnd"`
	Error     string   `json:"error,omitempty"`
}

// ActionStatus is the acknowledgement of an admin trigger
type ActionStatus struct {
	Status string `json:"status"`
}

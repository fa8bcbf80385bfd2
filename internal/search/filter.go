package search

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"jobdash/internal/domain"
)

// PageSizes are the page sizes the results table offers
var PageSizes = []int{10, 20, 50, 100}

// SortColumns is the backend whitelist for sort_by
var SortColumns = []string{"avg_salary", "title", "company", "location", "level", "id"}

// SortDir is asc or desc
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Flip returns the opposite direction
func (d SortDir) Flip() SortDir {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// Sort is a server-side ordering. The zero value leaves order to the backend.
type Sort struct {
	Column string
	Dir    SortDir
}

// DefaultSort is the job list ordering: best paid first
var DefaultSort = Sort{Column: "avg_salary", Dir: SortDesc}

// JobQuery is everything needed to request one page
type JobQuery struct {
	Criteria domain.Criteria
	Page     int
	PerPage  int
	Sort     Sort
}

// Values encodes the query as backend parameters. Company and skills are
// left out: the jobs endpoint can't filter on them, PostFilter does.
func (q JobQuery) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("per_page", strconv.Itoa(q.PerPage))

	set := func(key, val string) {
		if val = strings.TrimSpace(val); val != "" {
			v.Set(key, val)
		}
	}
	set("title", q.Criteria.Title)
	set("location", q.Criteria.Location)
	set("level", q.Criteria.Level)

	salary := q.Criteria.Salary.Normalize()
	if salary.HasMin() {
		v.Set("min_salary", formatSalary(salary.Min))
	}
	if salary.HasMax() {
		v.Set("max_salary", formatSalary(salary.Max))
	}

	if q.Sort.Column != "" {
		v.Set("sort_by", q.Sort.Column)
		dir := q.Sort.Dir
		if dir == "" {
			dir = SortDesc
		}
		v.Set("sort_dir", string(dir))
	}
	return v
}

func formatSalary(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// FilterState holds the criteria being edited and the ones last searched
// with. Only Search moves edits into effect.
type FilterState struct {
	criteria domain.Criteria
	applied  domain.Criteria
	page     int
	perPage  int
	sort     Sort
}

// NewFilterState starts with no constraints on page 1
func NewFilterState(perPage int, sort Sort) *FilterState {
	if !validPageSize(perPage) {
		perPage = 20
	}
	return &FilterState{
		criteria: domain.NewCriteria(),
		applied:  domain.NewCriteria(),
		page:     1,
		perPage:  perPage,
		sort:     sort,
	}
}

func validPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

// Criteria returns the criteria being edited
func (f *FilterState) Criteria() domain.Criteria { return f.criteria }

// Applied returns the criteria of the last search
func (f *FilterState) Applied() domain.Criteria { return f.applied }

func (f *FilterState) Page() int    { return f.page }
func (f *FilterState) PerPage() int { return f.perPage }
func (f *FilterState) Sort() Sort   { return f.sort }

// Update sets one text field
func (f *FilterState) Update(field domain.Field, value string) {
	f.criteria = f.criteria.Set(field, value)
}

// SetSalary sets the salary window, clamped and ordered
func (f *FilterState) SetSalary(min, max float64) {
	f.criteria.Salary = domain.SalaryRange{Min: min, Max: max}.Normalize()
}

// NudgeSalary moves one bound by delta steps, keeping Min <= Max
func (f *FilterState) NudgeSalary(lower bool, steps int) {
	r := f.criteria.Salary
	delta := float64(steps * domain.SalaryStep)
	if lower {
		r.Min += delta
		if r.Min > r.Max {
			r.Min = r.Max
		}
	} else {
		r.Max += delta
		if r.Max < r.Min {
			r.Max = r.Min
		}
	}
	f.criteria.Salary = r.Normalize()
}

// Clear drops the constraint on one text field
func (f *FilterState) Clear(field domain.Field) {
	f.Update(field, "")
}

// ClearSalary restores the full salary range
func (f *FilterState) ClearSalary() {
	f.criteria.Salary = domain.FullSalaryRange()
}

// Reset drops every constraint
func (f *FilterState) Reset() {
	f.criteria = domain.NewCriteria()
}

// Dirty reports whether edits are waiting for a search
func (f *FilterState) Dirty() bool {
	return f.criteria != f.applied
}

// Search applies the edited criteria. Changed criteria restart at page 1.
func (f *FilterState) Search() JobQuery {
	if f.criteria != f.applied {
		f.page = 1
		f.applied = f.criteria
	}
	return f.Query()
}

// Query describes the current page of the applied criteria
func (f *FilterState) Query() JobQuery {
	return JobQuery{
		Criteria: f.applied,
		Page:     f.page,
		PerPage:  f.perPage,
		Sort:     f.sort,
	}
}

// SetPage moves to page n of the applied criteria. Pending edits are not applied.
func (f *FilterState) SetPage(n int) JobQuery {
	if n < 1 {
		n = 1
	}
	f.page = n
	return f.Query()
}

// SetPerPage changes the page size and goes back to page 1
func (f *FilterState) SetPerPage(n int) (JobQuery, error) {
	if !validPageSize(n) {
		return f.Query(), fmt.Errorf("page size %d not one of %v", n, PageSizes)
	}
	if n != f.perPage {
		f.perPage = n
		f.page = 1
	}
	return f.Query(), nil
}

// CyclePerPage steps through PageSizes
func (f *FilterState) CyclePerPage(delta int) JobQuery {
	idx := 0
	for i, s := range PageSizes {
		if s == f.perPage {
			idx = i
		}
	}
	idx = (idx + delta + len(PageSizes)) % len(PageSizes)
	q, _ := f.SetPerPage(PageSizes[idx])
	return q
}

// SetSort changes server-side ordering. Only whitelisted columns are accepted.
func (f *FilterState) SetSort(column string, dir SortDir) (JobQuery, error) {
	if !ValidSortColumn(column) {
		return f.Query(), fmt.Errorf("cannot sort by %q", column)
	}
	if dir != SortAsc && dir != SortDesc {
		return f.Query(), fmt.Errorf("invalid sort direction %q", dir)
	}
	next := Sort{Column: column, Dir: dir}
	if next != f.sort {
		f.sort = next
		f.page = 1
	}
	return f.Query(), nil
}

// ValidSortColumn reports whether the backend accepts column for sort_by
func ValidSortColumn(column string) bool {
	for _, c := range SortColumns {
		if c == column {
			return true
		}
	}
	return false
}

// NextSortColumn returns the whitelist entry after the current one
func (f *FilterState) NextSortColumn() string {
	for i, c := range SortColumns {
		if c == f.sort.Column {
			return SortColumns[(i+1)%len(SortColumns)]
		}
	}
	return SortColumns[0]
}

// Chip is one active filter shown in the applied-filters line
type Chip struct {
	Field  domain.Field
	Salary bool
	Label  string
}

// ActiveChips lists the non-default constraints of the applied criteria
func (f *FilterState) ActiveChips() []Chip {
	var chips []Chip
	for _, field := range domain.Fields {
		if v := strings.TrimSpace(f.applied.Get(field)); v != "" {
			chips = append(chips, Chip{Field: field, Label: fmt.Sprintf("%s: %s", field.Label(), v)})
		}
	}
	s := f.applied.Salary
	if !s.IsFull() {
		chips = append(chips, Chip{
			Salary: true,
			Label:  fmt.Sprintf("Salary: %s-%s M VND", formatSalary(s.Min), formatSalary(s.Max)),
		})
	}
	return chips
}

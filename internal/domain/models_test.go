package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDecodeNullSalary(t *testing.T) {
	var j Job
	err := json.Unmarshal([]byte(`{"id":7,"title":"Go Dev","company":"Acme","avg_salary_mil_vnd":null,"skills":"Go, , SQL","crawled_at":"2025-03-01T08:15:00"}`), &j)
	require.NoError(t, err)

	assert.False(t, j.HasSalary())
	assert.Equal(t, []string{"Go", "SQL"}, j.SkillList())
	assert.Equal(t, time.Date(2025, 3, 1, 8, 15, 0, 0, time.UTC), j.CrawledTime())
}

func TestParseTimestamp(t *testing.T) {
	assert.True(t, ParseTimestamp("").IsZero())
	assert.True(t, ParseTimestamp("yesterday").IsZero())
	assert.Equal(t, 2024, ParseTimestamp("2024-12-31 23:59:59.123456").Year())
	assert.Equal(t, time.Month(6), ParseTimestamp("2024-06-02").Month())
}

func TestFieldRoundTrip(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)

		got, err = ParseField(f.Endpoint())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseField("salary")
	assert.Error(t, err)
}

func TestSalaryRangeNormalize(t *testing.T) {
	assert.Equal(t, SalaryRange{Min: 0, Max: 150}, SalaryRange{Min: -10, Max: 900}.Normalize())
	assert.Equal(t, SalaryRange{Min: 30, Max: 60}, SalaryRange{Min: 60, Max: 30}.Normalize())

	r := FullSalaryRange()
	assert.True(t, r.IsFull())
	r.Min = 5
	assert.True(t, r.HasMin())
	assert.False(t, r.HasMax())
}

func TestCriteria(t *testing.T) {
	c := NewCriteria()
	assert.True(t, c.IsEmpty())
	assert.False(t, c.NeedsPostFilter())

	d := c.Set(FieldCompany, "FPT")
	assert.True(t, c.IsEmpty(), "Set returns a copy")
	assert.Equal(t, "FPT", d.Get(FieldCompany))
	assert.True(t, d.NeedsPostFilter())

	assert.True(t, c.Set(FieldTitle, "   ").IsEmpty())
	assert.False(t, c.Set(FieldSkill, " , ").NeedsPostFilter())
}

func TestNewJobValidate(t *testing.T) {
	assert.EqualError(t, NewJob{Title: "Dev"}.Validate(), "title and company are required")
	assert.EqualError(t, NewJob{Title: " ", Company: "Acme"}.Validate(), "title and company are required")
	assert.NoError(t, NewJob{Title: "Dev", Company: "Acme"}.Validate())
}

func TestAdminSettingsEnabled(t *testing.T) {
	assert.True(t, AdminSettings{CrawlEnabled: 1}.Enabled())
	assert.False(t, AdminSettings{}.Enabled())
}

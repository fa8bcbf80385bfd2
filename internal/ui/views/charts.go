package views

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var sparkBlocks = []rune("▁▂▃▄▅▆▇█")

// BarItem is one labelled value of a horizontal bar chart
type BarItem struct {
	Label string
	Value float64
	Note  string
}

// Histogram buckets values into n equal-width bins between their min and max
func Histogram(values []float64, n int) []int {
	if n <= 0 || len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	bins := make([]int, n)
	span := hi - lo
	for _, v := range values {
		i := 0
		if span > 0 {
			i = int((v - lo) / span * float64(n))
		}
		if i >= n {
			i = n - 1
		}
		bins[i]++
	}
	return bins
}

// Sparkline draws counts as a row of block characters
func Sparkline(counts []int) string {
	maxCount := 0
	for _, c := range counts {
		if c > maxCount {
			maxCount = c
		}
	}
	var b strings.Builder
	for _, c := range counts {
		if maxCount == 0 {
			b.WriteRune(sparkBlocks[0])
			continue
		}
		idx := int(math.Round(float64(c) / float64(maxCount) * float64(len(sparkBlocks)-1)))
		b.WriteRune(sparkBlocks[idx])
	}
	return b.String()
}

// Bars renders a horizontal bar chart scaled to the largest value
func (r *Renderer) Bars(items []BarItem, width int) string {
	if len(items) == 0 {
		return r.styles.Dim.Render("no data")
	}

	labelW := 0
	maxV := 0.0
	for _, it := range items {
		if w := lipgloss.Width(it.Label); w > labelW {
			labelW = w
		}
		maxV = math.Max(maxV, it.Value)
	}
	if labelW > 24 {
		labelW = 24
	}

	barW := width - labelW - 20
	if barW < 5 {
		barW = 5
	}

	lines := make([]string, 0, len(items))
	for _, it := range items {
		n := 0
		if maxV > 0 {
			n = int(math.Round(it.Value / maxV * float64(barW)))
		}
		label := fmt.Sprintf("%-*s", labelW, Truncate(it.Label, labelW))
		value := SalaryValue(it.Value)
		if it.Note != "" {
			value += " " + r.styles.Dim.Render(it.Note)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s",
			r.styles.Label.Render(label),
			r.styles.Bar.Render(strings.Repeat("█", n)),
			value))
	}
	return strings.Join(lines, "\n")
}

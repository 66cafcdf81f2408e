// Package chart turns the study metric log into a per-day series and draws
// it as a small text line chart.
package chart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/zhubert/studdy/internal/calendar"
	"github.com/zhubert/studdy/internal/session"
)

// Title is the chart's series name.
const Title = "Goals Achieved"

// Row is one point of the series.
type Row struct {
	Date  calendar.Date
	Count int
}

// Aggregate groups the log by date and returns one row per distinct date in
// ascending order. Count is the number of log entries for that date; the
// snapshot value stored in each entry is not summed.
func Aggregate(points []session.StudyDataPoint) []Row {
	counts := make(map[calendar.Date]int)
	for _, p := range points {
		counts[p.Date]++
	}
	rows := make([]Row, 0, len(counts))
	for d, n := range counts {
		rows = append(rows, Row{Date: d, Count: n})
	}
	slices.SortFunc(rows, func(a, b Row) int {
		return a.Date.Compare(b.Date)
	})
	return rows
}

const (
	pointGlyph = "●"
	lineGlyph  = "·"
)

// Render draws rows into a width x height block of text. The first column
// group holds the y-axis labels; the last line holds the first and last
// date. Returns an empty string when there is nothing to draw.
func Render(rows []Row, width, height int) string {
	if len(rows) == 0 || width <= 0 || height < 3 {
		return ""
	}

	maxCount := 0
	for _, r := range rows {
		maxCount = max(maxCount, r.Count)
	}
	labelWidth := len(fmt.Sprint(maxCount))
	plotW := width - labelWidth - 2
	plotH := height - 2
	if plotW < 1 || plotH < 1 {
		return ""
	}

	grid := make([][]string, plotH)
	for y := range grid {
		grid[y] = slices.Repeat([]string{" "}, plotW)
	}

	xs := make([]int, len(rows))
	ys := make([]int, len(rows))
	for i, r := range rows {
		xs[i] = scale(i, len(rows)-1, plotW-1)
		ys[i] = plotH - 1 - countRow(r.Count, maxCount, plotH-1)
	}

	// Connect consecutive points first so the markers draw on top.
	for i := 1; i < len(rows); i++ {
		x0, y0, x1, y1 := xs[i-1], ys[i-1], xs[i], ys[i]
		for x := x0 + 1; x < x1; x++ {
			y := y0 + (y1-y0)*(x-x0)/(x1-x0)
			grid[y][x] = lineGlyph
		}
	}
	for i := range rows {
		grid[ys[i]][xs[i]] = pointGlyph
	}

	var b strings.Builder
	for y, line := range grid {
		label := ""
		switch y {
		case 0:
			label = fmt.Sprint(maxCount)
		case plotH - 1:
			label = "0"
		}
		fmt.Fprintf(&b, "%*s ┤%s\n", labelWidth, label, strings.Join(line, ""))
	}
	b.WriteString(strings.Repeat(" ", labelWidth+1) + "└" + strings.Repeat("─", plotW) + "\n")
	b.WriteString(strings.Repeat(" ", labelWidth+2) + dateAxis(rows, plotW))
	return b.String()
}

// scale maps v in [0,maxV] onto [0,span], rounding to the nearest step.
func scale(v, maxV, span int) int {
	if maxV <= 0 {
		return 0
	}
	return (v*span + maxV/2) / maxV
}

// countRow is the height of count above the baseline. A non-zero count is
// never drawn on the zero line.
func countRow(count, maxCount, span int) int {
	row := scale(count, maxCount, span)
	if count > 0 && row == 0 && span > 0 {
		return 1
	}
	return row
}

func dateAxis(rows []Row, width int) string {
	first := shortDate(rows[0].Date)
	if len(rows) == 1 {
		return runewidth.Truncate(first, width, "")
	}
	last := shortDate(rows[len(rows)-1].Date)
	gap := width - runewidth.StringWidth(first) - runewidth.StringWidth(last)
	if gap < 1 {
		return runewidth.Truncate(first, width, "")
	}
	return first + strings.Repeat(" ", gap) + last
}

func shortDate(d calendar.Date) string {
	return fmt.Sprintf("%02d-%02d", d.Month, d.Day)
}

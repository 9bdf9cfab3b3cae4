package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tessro/dialogcoach/internal/locale"
	"github.com/tessro/dialogcoach/internal/pipeline"
)

// SegmentBar renders the cadence distribution as a stacked bar with a legend.
type SegmentBar struct {
	width    int
	segments []pipeline.Segment
	total    int
}

// NewSegmentBar creates a new segment bar component.
func NewSegmentBar() SegmentBar {
	return SegmentBar{}
}

// SetWidth updates the bar width.
func (b *SegmentBar) SetWidth(width int) {
	b.width = width
}

// Set updates the segments and the roster size shown in the header.
func (b *SegmentBar) Set(segments []pipeline.Segment, total int) {
	b.segments = segments
	b.total = total
}

// View renders the header, the bar and the legend.
func (b SegmentBar) View() string {
	header := segmentHeaderStyle.Render("В работе") + " " + segmentCountStyle.Render(locale.Employees(b.total))

	barWidth := b.width - 2
	widths := segmentWidths(b.segments, barWidth)
	var bar strings.Builder
	for i, seg := range b.segments {
		bar.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(seg.Color)).
			Render(strings.Repeat("█", widths[i])))
	}

	legend := make([]string, 0, len(b.segments))
	for _, seg := range b.segments {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(seg.Color)).Render("●")
		legend = append(legend, fmt.Sprintf("%s %s, %d", dot, seg.Label, seg.Count))
	}

	return lipgloss.NewStyle().Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, bar.String(), strings.Join(legend, "  ")),
	)
}

// segmentWidths splits width columns between segments in proportion to their
// percentages. The widths sum to width. When width is at least the number of
// segments, every segment gets a column.
func segmentWidths(segments []pipeline.Segment, width int) []int {
	widths := make([]int, len(segments))
	if len(segments) == 0 || width <= 0 {
		return widths
	}

	var pctSum float64
	for _, seg := range segments {
		pctSum += seg.Percentage
	}

	used := 0
	for i, seg := range segments {
		w := 0
		if pctSum > 0 {
			w = int(math.Round(seg.Percentage / pctSum * float64(width)))
		}
		if w < 1 && width >= len(segments) {
			w = 1
		}
		widths[i] = w
		used += w
	}

	// Settle rounding on the widest segment. Overflow is taken back one
	// column at a time so the total never exceeds width.
	for used > width {
		i := widestSegment(widths)
		widths[i]--
		used--
	}
	if used < width {
		widths[widestSegment(widths)] += width - used
	}
	return widths
}

// widestSegment returns the index of the first widest entry.
func widestSegment(widths []int) int {
	widest := 0
	for i := range widths {
		if widths[i] > widths[widest] {
			widest = i
		}
	}
	return widest
}

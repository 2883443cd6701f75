// Package ui renders terminal output for chartable.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/f3rmion/chartable/internal/content"
	"github.com/f3rmion/chartable/internal/pinyin"
)

// Color palette
var (
	ColorPrimary = lipgloss.Color("#FF6B6B") // Red - errors
	ColorAccent  = lipgloss.Color("#ffe66d") // Yellow - characters
	ColorMuted   = lipgloss.Color("#666666") // Gray - headers
	ColorSuccess = lipgloss.Color("#a8e6cf") // Green - summary
)

// UI writes the summary to out and diagnostics to errOut. Styling is
// dropped when the writer is not a terminal.
type UI struct {
	out    io.Writer
	errOut io.Writer

	success lipgloss.Style
	failure lipgloss.Style
	header  lipgloss.Style
	hanzi   lipgloss.Style
}

// New creates a UI bound to the given writers.
func New(out, errOut io.Writer) *UI {
	outR := lipgloss.NewRenderer(out)
	errR := lipgloss.NewRenderer(errOut)

	return &UI{
		out:     out,
		errOut:  errOut,
		success: outR.NewStyle().Foreground(ColorSuccess),
		failure: errR.NewStyle().Bold(true).Foreground(ColorPrimary),
		header:  errR.NewStyle().Bold(true).Foreground(ColorMuted),
		hanzi:   errR.NewStyle().Foreground(ColorAccent),
	}
}

// SummaryLine is the one-line report of a successful run.
func SummaryLine(items, tableIndex int, outPath string) string {
	return fmt.Sprintf("Extracted %d items from table %d -> %s", items, tableIndex, outPath)
}

// Summary prints the success line.
func (u *UI) Summary(items, tableIndex int, outPath string) {
	fmt.Fprintln(u.out, u.success.Render(SummaryLine(items, tableIndex, outPath)))
}

// Error prints a one-line diagnostic.
func (u *UI) Error(err error) {
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	fmt.Fprintln(u.errOut, u.failure.Render(msg))
}

// Preview prints the extracted items as an aligned table.
func (u *UI) Preview(items []content.Item) {
	headers := []string{"itemId", "hanzi", "pinyin", "tone", "words"}

	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = []string{
			it.ItemID,
			it.Hanzi,
			it.Pinyin,
			strconv.Itoa(int(pinyin.ToneOf(it.Pinyin))),
			strings.Join(it.Words, "、"),
		}
	}

	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], runewidth.StringWidth(cell))
		}
	}

	fmt.Fprintln(u.errOut, u.header.Render(joinRow(pad(headers, widths))))
	for _, row := range rows {
		cells := pad(row, widths)
		cells[1] = u.hanzi.Render(row[1]) + cells[1][len(row[1]):]
		fmt.Fprintln(u.errOut, joinRow(cells))
	}
}

// pad fills every cell but the last to its column width.
func pad(cells []string, widths []int) []string {
	out := make([]string, len(cells))
	for c, cell := range cells {
		if c < len(cells)-1 {
			cell = runewidth.FillRight(cell, widths[c])
		}
		out[c] = cell
	}
	return out
}

func joinRow(cells []string) string {
	return strings.TrimRight(strings.Join(cells, "  "), " ")
}

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/SscSPs/lifedash/internal/utils"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	positiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	negativeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// signedMoney colors an amount by its sign.
func signedMoney(amount decimal.Decimal, currency string) string {
	s := utils.FormatMoney(amount, currency)
	switch {
	case amount.IsNegative():
		return negativeStyle.Render(s)
	case amount.IsPositive():
		return positiveStyle.Render(s)
	}
	return s
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

// writeTable prints rows as left-aligned columns. The first row is the header.
func writeTable(w io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if cw := lipgloss.Width(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for r, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			if r == 0 {
				cell = titleStyle.Render(cell)
			}
			if i < len(row)-1 {
				cell = padRight(cell, widths[i])
			}
			cells[i] = cell
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// box renders a titled block of label/value lines.
func box(title string, lines [][2]string) string {
	width := 0
	for _, l := range lines {
		if lw := lipgloss.Width(l[0]); lw > width {
			width = lw
		}
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	for _, l := range lines {
		b.WriteString("\n")
		b.WriteString(padRight(l[0], width))
		b.WriteString("  ")
		b.WriteString(l[1])
	}
	return boxStyle.Render(b.String())
}

func emptyNote(w io.Writer, what string) {
	fmt.Fprintln(w, mutedStyle.Render("No "+what+" yet."))
}

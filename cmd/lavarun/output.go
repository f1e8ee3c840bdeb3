package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/term"
)

// Theme holds the styles for table output on a terminal.
type Theme struct {
	Border lipgloss.Style
	Header lipgloss.Style
	Cell   lipgloss.Style
	Won    lipgloss.Style
	Lost   lipgloss.Style
	Other  lipgloss.Style
}

// DefaultTheme returns the default table theme.
func DefaultTheme() Theme {
	return Theme{
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),          // Dim gray
		Header: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true), // Bright cyan
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Won:    lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("46")),  // Lime green
		Lost:   lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("196")), // Red
		Other:  lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("226")), // Yellow
	}
}

// statusStyle picks the cell style for a status-like value.
func (t Theme) statusStyle(val string) lipgloss.Style {
	switch val {
	case "won", "ok":
		return t.Won
	case "lost", "FAIL":
		return t.Lost
	case "timeout", "abandoned":
		return t.Other
	default:
		return t.Cell
	}
}

// printTable writes rows to stdout, styled when stdout is a terminal.
func printTable(headers []string, rows [][]string) {
	printTableTo(os.Stdout, headers, rows)
}

// printTableTo writes rows to w. Only a terminal gets the styled table.
func printTableTo(w io.Writer, headers []string, rows [][]string) {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(f, styledTable(DefaultTheme(), headers, rows))
		return
	}
	writePlainTable(w, headers, rows)
}

func styledTable(theme Theme, headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(theme.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.Header.Padding(0, 1)
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) {
				return theme.statusStyle(rows[row][col])
			}
			return theme.Cell
		})
	return t.String()
}

// writePlainTable writes space-aligned columns with a dashed header rule.
func writePlainTable(w io.Writer, headers []string, rows [][]string) {
	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) {
		parts := make([]string, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = fmt.Sprintf("%-*s", widths[i], cell)
		}
		fmt.Fprintf(w, "  %s\n", strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	rule := make([]string, len(headers))
	for i, h := range headers {
		rule[i] = strings.Repeat("-", len(h))
	}

	line(headers)
	line(rule)
	for _, row := range rows {
		line(row)
	}
}

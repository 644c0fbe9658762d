// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/charmbracelet/lipgloss"
	lgtable "github.com/charmbracelet/lipgloss/table"
)

var (
	headerRowStyle = lipgloss.NewStyle().Reverse(true).
			Padding(0, 2, 0, 2).Align(lipgloss.Center)
	oddRowStyle = lipgloss.NewStyle().Faint(false).
			PaddingLeft(1).PaddingRight(1)
	evenRowStyle = lipgloss.NewStyle().Faint(true).
			PaddingLeft(1).PaddingRight(1)
	missingRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "9", Dark: "9"}).
			Bold(true).
			PaddingLeft(1).PaddingRight(1)
)

// newStyledTable creates a table with alternating row styles. Rows for which isMissing returns
// true are highlighted.
func newStyledTable(isMissing func(row int) bool, alignments ...lipgloss.Position) *lgtable.Table {
	return lgtable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("99"))).
		StyleFunc(func(row, col int) (s lipgloss.Style) {
			if row < 0 {
				return headerRowStyle
			}
			switch {
			case isMissing != nil && isMissing(row):
				s = missingRowStyle
			case row%2 == 0:
				s = oddRowStyle
			default:
				s = evenRowStyle
			}
			alignment := lipgloss.Left
			if col < len(alignments) {
				alignment = alignments[col]
			} else if len(alignments) > 0 {
				alignment = alignments[len(alignments)-1]
			}
			return s.Align(alignment)
		})
}

// newPlainTable creates a table without highlighted rows.
func newPlainTable(alignments ...lipgloss.Position) *lgtable.Table {
	return newStyledTable(nil, alignments...)
}

// reportTable lists one item per row, highlighting the items the missing predicate reports, e.g.
// an operation without generic declaration.
type reportTable[T any] struct {
	*lgtable.Table
	missing func(item T) bool
	items   []T
}

func newReportTable[T any](missing func(item T) bool, alignments ...lipgloss.Position) *reportTable[T] {
	t := &reportTable[T]{missing: missing}
	t.Table = newStyledTable(t.isMissing, alignments...)
	return t
}

// Add appends the row of item.
func (t *reportTable[T]) Add(item T, cells ...string) {
	t.items = append(t.items, item)
	t.Row(cells...)
}

func (t *reportTable[T]) isMissing(row int) bool {
	return row < len(t.items) && t.missing(t.items[row])
}

// NumMissing returns the number of rows reported missing.
func (t *reportTable[T]) NumMissing() int {
	var n int
	for row := range t.items {
		if t.isMissing(row) {
			n++
		}
	}
	return n
}

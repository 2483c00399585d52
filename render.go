package unisql

import (
	"strings"
	"unicode/utf8"
)

// Render produces a fixed-width bordered table using single-line box-drawing
// characters: a header row of column names, a divider, and one row per data
// row. Every cell is padded to the widest value in its column (header
// included) plus one space on each side, and centered. Column and row order
// match Columns() and materialization order exactly; rendering never sorts.
//
// A result set with zero columns renders as an empty string; one with
// columns but zero rows renders a header-only table.
func (rs *ResultSet) Render() string {
	if len(rs.columns) == 0 {
		return ""
	}

	// Widths count runes, not bytes, so multi-byte text keeps the borders
	// aligned.
	widths := make([]int, len(rs.columns))
	for i, name := range rs.columns {
		widths[i] = utf8.RuneCountInString(name) + 2
	}
	for _, row := range rs.rows {
		for i, value := range row {
			if w := utf8.RuneCountInString(value.String()) + 2; w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeBorder(&b, widths, "┌", "┬", "┐")
	b.WriteString("\n│")
	for i, name := range rs.columns {
		b.WriteString(padCell(name, widths[i]))
		b.WriteString("│")
	}
	b.WriteString("\n")
	writeBorder(&b, widths, "├", "┼", "┤")
	for _, row := range rs.rows {
		b.WriteString("\n│")
		for i, value := range row {
			b.WriteString(padCell(value.String(), widths[i]))
			b.WriteString("│")
		}
	}
	b.WriteString("\n")
	writeBorder(&b, widths, "└", "┴", "┘")
	return b.String()
}

// String renders the result set as a table.
func (rs *ResultSet) String() string {
	return rs.Render()
}

func writeBorder(b *strings.Builder, widths []int, left, mid, right string) {
	b.WriteString(left)
	for i, w := range widths {
		if i > 0 {
			b.WriteString(mid)
		}
		b.WriteString(strings.Repeat("─", w))
	}
	b.WriteString(right)
}

// padCell centers the cell content by alternating a trailing then a leading
// space until the width is reached, so the extra space of odd padding lands
// on the right.
func padCell(s string, width int) string {
	pad := width - utf8.RuneCountInString(s)
	for i := 0; i < pad; i++ {
		if i%2 == 0 {
			s = s + " "
		} else {
			s = " " + s
		}
	}
	return s
}

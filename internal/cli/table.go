package cli

import "strings"

// Table is a simple table formatter with dynamic column widths and optional
// per-column wrapping.
type Table struct {
	headers   []string
	rows      [][]string
	padding   int
	maxWidths map[int]int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers:   headers,
		padding:   2,
		maxWidths: make(map[int]int),
	}
}

// SetColumnMaxWidth sets a maximum width for a column; longer cells wrap.
func (t *Table) SetColumnMaxWidth(col, width int) {
	t.maxWidths[col] = width
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	fitted := make([]string, len(t.headers))
	copy(fitted, row)
	t.rows = append(t.rows, fitted)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	// Wrap cells that exceed their column's max width.
	wrapped := make([][][]string, len(t.rows))
	for r, row := range t.rows {
		wrapped[r] = make([][]string, len(row))
		for c, cell := range row {
			if maxWidth := t.maxWidths[c]; maxWidth > 0 {
				wrapped[r][c] = wrapText(cell, maxWidth)
			} else {
				wrapped[r][c] = []string{cell}
			}
		}
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range wrapped {
		for c, lines := range row {
			for _, line := range lines {
				if len(line) > widths[c] {
					widths[c] = len(line)
				}
			}
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var sb strings.Builder

	parts := make([]string, len(t.headers))
	for i, h := range t.headers {
		parts[i] = padRight(h, widths[i])
	}
	sb.WriteString(strings.Join(parts, gap))
	sb.WriteString("\n")

	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	sb.WriteString(strings.Join(parts, gap))
	sb.WriteString("\n")

	for _, row := range wrapped {
		height := 1
		for _, lines := range row {
			if len(lines) > height {
				height = len(lines)
			}
		}
		for lineIdx := 0; lineIdx < height; lineIdx++ {
			for c := range t.headers {
				cell := ""
				if c < len(row) && lineIdx < len(row[c]) {
					cell = row[c][lineIdx]
				}
				parts[c] = padRight(cell, widths[c])
			}
			sb.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// padRight pads a string with spaces on the right to the desired width.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

// wrapText wraps text to fit within width, breaking at word boundaries and
// splitting words longer than a full line.
func wrapText(text string, width int) []string {
	if width <= 0 || len(text) <= width {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{text}
	}

	var lines []string
	current := ""
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		test := current
		if test != "" {
			test += " "
		}
		test += word

		if len(test) <= width {
			current = test
		} else {
			if current != "" {
				lines = append(lines, current)
			}
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

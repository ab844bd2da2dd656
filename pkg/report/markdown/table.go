package markdown

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

const minColumnWidth = 3

var cellReplacer = strings.NewReplacer(
	"|", `\|`,
	"\r\n", "<br>",
	"\n", "<br>",
)

// RenderTable renders a Markdown pipe table whose columns are padded to the
// widest cell. Every row must have as many cells as the header.
func RenderTable(header []string, rows [][]string) string {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, normalizeRow(header))
	for i, row := range rows {
		if len(row) != len(header) {
			panic(fmt.Sprintf("markdown: table row %d has %d cells, header has %d", i, len(row), len(header)))
		}
		cells = append(cells, normalizeRow(row))
	}

	widths := make([]int, len(header))
	for i := range widths {
		widths[i] = minColumnWidth
	}
	for _, row := range cells {
		for i, cell := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(cell))
		}
	}

	var sb strings.Builder
	writeRow(&sb, cells[0], widths)
	delimiter := make([]string, len(widths))
	for i, w := range widths {
		delimiter[i] = strings.Repeat("-", w)
	}
	writeRow(&sb, delimiter, widths)
	for _, row := range cells[1:] {
		writeRow(&sb, row, widths)
	}
	return sb.String()
}

func normalizeRow(row []string) []string {
	out := make([]string, len(row))
	for i, cell := range row {
		out[i] = cellReplacer.Replace(cell)
	}
	return out
}

func writeRow(sb *strings.Builder, row []string, widths []int) {
	sb.WriteString("|")
	for i, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(cell, widths[i]))
		sb.WriteString(" |")
	}
	sb.WriteString("\n")
}

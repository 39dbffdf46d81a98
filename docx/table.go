package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// Row is a handle on a table row (<w:tr>).
type Row struct {
	el *etree.Element
	w  string
}

// Cell is a handle on a table cell (<w:tc>).
type Cell struct {
	el *etree.Element
	w  string
}

// Rows returns the rows of a table block. Non-table blocks have no rows.
func (b Block) Rows() []Row {
	if b.Kind() != KindTable {
		return nil
	}
	var rows []Row
	for _, el := range b.el.SelectElements(b.w + ":tr") {
		rows = append(rows, Row{el: el, w: b.w})
	}
	return rows
}

// LastRow returns the table's last row.
func (b Block) LastRow() (Row, bool) {
	rows := b.Rows()
	if len(rows) == 0 {
		return Row{}, false
	}
	return rows[len(rows)-1], true
}

// AppendRow adds a row built with a Builder to the end of a table block.
func (b Block) AppendRow(row *etree.Element) Row {
	if b.Kind() != KindTable || row == nil {
		return Row{}
	}
	detach(row)
	b.el.AddChild(row)
	return Row{el: row, w: b.w}
}

// Element returns the underlying <w:tr>.
func (r Row) Element() *etree.Element {
	return r.el
}

// Cells returns the cells of the row.
func (r Row) Cells() []Cell {
	if r.el == nil {
		return nil
	}
	var cells []Cell
	for _, el := range r.el.SelectElements(r.w + ":tc") {
		cells = append(cells, Cell{el: el, w: r.w})
	}
	return cells
}

// Text returns the concatenated text of the row.
func (r Row) Text() string {
	if r.el == nil {
		return ""
	}
	var sb strings.Builder
	collectText(&sb, r.el, r.w)
	return sb.String()
}

// Element returns the underlying <w:tc>.
func (c Cell) Element() *etree.Element {
	return c.el
}

// Text returns the concatenated text of the cell.
func (c Cell) Text() string {
	if c.el == nil {
		return ""
	}
	var sb strings.Builder
	collectText(&sb, c.el, c.w)
	return sb.String()
}

// IsBlank reports whether the cell has no visible text.
func (c Cell) IsBlank() bool {
	return strings.TrimSpace(c.Text()) == ""
}

// SetContent replaces the cell's content with the given paragraphs while
// keeping its properties. A cell always keeps at least one paragraph.
func (c Cell) SetContent(paragraphs ...*etree.Element) {
	if c.el == nil {
		return
	}
	for _, child := range c.el.ChildElements() {
		if child.Space == c.w && child.Tag == "tcPr" {
			continue
		}
		c.el.RemoveChild(child)
	}
	if len(paragraphs) == 0 {
		c.el.CreateElement(c.w + ":p")
		return
	}
	for _, p := range paragraphs {
		detach(p)
		c.el.AddChild(p)
	}
}

package compose

import (
	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/edit"
	"github.com/tsawler/reportkit/locate"
	"github.com/tsawler/reportkit/policy"
	"github.com/tsawler/reportkit/text"
)

// ReplaceLowVolume rewrites the "few searches" cells of the keyword table's
// local searches column as a plain number.
func ReplaceLowVolume(doc *docx.Document, c *policy.Compiled) edit.Result {
	_, tbl, ok := locate.TableAfter(doc, c.Keywords)
	if !ok {
		return edit.Result{}
	}
	rows := tbl.Rows()
	if len(rows) < 2 {
		return edit.Result{}
	}

	col := -1
	for i, cell := range rows[0].Cells() {
		if c.LocalSearches(text.Normalize(cell.Text())) {
			col = i
			break
		}
	}
	if col < 0 {
		return edit.Result{}
	}

	cells := c.Policy.Cells
	w := newWriter(doc, c, cells.LowVolumeSize)
	res := edit.Result{}
	for _, row := range rows[1:] {
		rc := row.Cells()
		if col >= len(rc) || !c.FewSearches(text.Normalize(rc[col].Text())) {
			continue
		}
		rc[col].SetContent(w.b.Paragraph(nil, w.run(cells.LowVolumeText, false)))
		res.Inserted++
	}
	res.Applied = res.Inserted > 0
	return res
}

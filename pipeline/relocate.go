package pipeline

import (
	"github.com/tsawler/reportkit/compose"
	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/edit"
	"github.com/tsawler/reportkit/policy"
)

// relocate moves the details section and the links section under the logo.
// An existing details table is cut and gets a message row; otherwise a new
// one is built. The variant decides which section comes first.
func (r *run) relocate() (edit.Result, error) {
	message := r.c.DetailsText(r.opts.DetailsText)

	var res edit.Result
	tbl, ok := edit.CutTableByHeader(r.doc, r.c.DetailsTable, r.c.DetailsHeadline)
	if ok {
		edit.AppendMessageRow(r.doc, tbl, message)
		res.Removed++
	} else {
		tbl = compose.DetailsTable(r.doc, r.c, message)
	}
	details := []docx.Block{compose.DetailsHeadline(r.doc, r.c), tbl}

	var links []docx.Block
	if sec, ok := edit.CutSection(r.doc, r.c.Links); ok {
		links = sec.Blocks()
		res.Removed += len(links)
	}

	var blocks []docx.Block
	switch r.c.Policy.Variant {
	case policy.LinksFirst:
		blocks = append(links, details...)
	default:
		blocks = append(details, links...)
	}

	ins := edit.InsertAfterAnchor(r.doc, blocks...)
	if !ins.Applied {
		// no paragraph left to anchor on
		r.doc.Prepend(blocks...)
		ins = edit.Result{Applied: true, Inserted: len(blocks)}
	}
	return res.Add(ins), nil
}

func (r *run) lowVolume() (edit.Result, error) {
	return compose.ReplaceLowVolume(r.doc, r.c), nil
}

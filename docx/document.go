package docx

import (
	"github.com/beevik/etree"
)

// XML namespaces used in DOCX files
const (
	nsW   = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	nsR   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsPkg = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsCT  = "http://schemas.openxmlformats.org/package/2006/content-types"
)

// Relationship and content types referenced when parts are added.
const (
	relTypeHeader   = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/header"
	relTypeImage    = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/image"
	contentTypeHdr  = "application/vnd.openxmlformats-officedocument.wordprocessingml.header+xml"
	contentTypeRels = "application/vnd.openxmlformats-package.relationships+xml"
)

// Well-known part names.
const (
	partContentTypes = "[Content_Types].xml"
	partDocument     = "word/document.xml"
	partDocumentRels = "word/_rels/document.xml.rels"
)

// Document is an editable WordprocessingML package. The body is exposed as an
// ordered sequence of Blocks; every Block is a handle on the underlying
// element, so handles stay valid while other blocks are inserted or removed.
type Document struct {
	pkg   *pkg
	main  *etree.Document
	body  *etree.Element
	rels  *etree.Document
	types *etree.Document

	// w is the prefix the main part binds to the WordprocessingML namespace.
	w string
}

// Blocks returns the top-level body blocks in document order.
func (d *Document) Blocks() []Block {
	children := d.body.ChildElements()
	blocks := make([]Block, 0, len(children))
	for _, el := range children {
		blocks = append(blocks, Block{el: el, w: d.w})
	}
	return blocks
}

// Len returns the number of top-level blocks.
func (d *Document) Len() int {
	return len(d.body.ChildElements())
}

// Index returns the position of b among the top-level blocks, or -1 if b is
// not currently attached to the body.
func (d *Document) Index(b Block) int {
	if b.el == nil || b.el.Parent() != d.body {
		return -1
	}
	for i, el := range d.body.ChildElements() {
		if el == b.el {
			return i
		}
	}
	return -1
}

// Contains reports whether b is attached to the body.
func (d *Document) Contains(b Block) bool {
	return b.el != nil && b.el.Parent() == d.body
}

// Next returns the block immediately following b.
func (d *Document) Next(b Block) (Block, bool) {
	if !d.Contains(b) {
		return Block{}, false
	}
	found := false
	for _, el := range d.body.ChildElements() {
		if found {
			return Block{el: el, w: d.w}, true
		}
		found = el == b.el
	}
	return Block{}, false
}

// Prev returns the block immediately preceding b.
func (d *Document) Prev(b Block) (Block, bool) {
	if !d.Contains(b) {
		return Block{}, false
	}
	var prev *etree.Element
	for _, el := range d.body.ChildElements() {
		if el == b.el {
			break
		}
		prev = el
	}
	if prev == nil {
		return Block{}, false
	}
	return Block{el: prev, w: d.w}, true
}

// After returns every block following b, in order.
func (d *Document) After(b Block) []Block {
	if !d.Contains(b) {
		return nil
	}
	var out []Block
	found := false
	for _, el := range d.body.ChildElements() {
		if found {
			out = append(out, Block{el: el, w: d.w})
		}
		if el == b.el {
			found = true
		}
	}
	return out
}

// InsertAfter inserts blocks directly after ref, preserving their order, and
// returns the last inserted block. Blocks that are attached elsewhere are
// moved.
func (d *Document) InsertAfter(ref Block, blocks ...Block) Block {
	if !d.Contains(ref) {
		return ref
	}
	last := ref
	for _, b := range blocks {
		if b.el == nil {
			continue
		}
		detach(b.el)
		d.body.InsertChildAt(last.el.Index()+1, b.el)
		last = Block{el: b.el, w: d.w}
	}
	return last
}

// InsertBefore inserts blocks directly before ref, preserving their order.
func (d *Document) InsertBefore(ref Block, blocks ...Block) {
	if !d.Contains(ref) {
		return
	}
	for _, b := range blocks {
		if b.el == nil {
			continue
		}
		detach(b.el)
		d.body.InsertChildAt(ref.el.Index(), b.el)
	}
}

// Prepend inserts blocks at the top of the body.
func (d *Document) Prepend(blocks ...Block) {
	children := d.body.ChildElements()
	if len(children) == 0 {
		d.Append(blocks...)
		return
	}
	d.InsertBefore(Block{el: children[0], w: d.w}, blocks...)
}

// Append adds blocks at the end of the body, ahead of the trailing section
// properties which must stay last.
func (d *Document) Append(blocks ...Block) {
	children := d.body.ChildElements()
	if n := len(children); n > 0 && children[n-1].Tag == "sectPr" {
		d.InsertBefore(Block{el: children[n-1], w: d.w}, blocks...)
		return
	}
	for _, b := range blocks {
		if b.el == nil {
			continue
		}
		detach(b.el)
		d.body.AddChild(b.el)
	}
}

// Remove detaches b from the body. It reports whether b was attached.
func (d *Document) Remove(b Block) bool {
	if !d.Contains(b) {
		return false
	}
	d.body.RemoveChild(b.el)
	return true
}

// SectionProperties returns the effective (last body-level) section
// properties, creating an empty one at the end of the body when absent.
func (d *Document) SectionProperties() Block {
	children := d.body.ChildElements()
	for i := len(children) - 1; i >= 0; i-- {
		if children[i].Space == d.w && children[i].Tag == "sectPr" {
			return Block{el: children[i], w: d.w}
		}
	}
	sp := etree.NewElement(d.w + ":sectPr")
	d.body.AddChild(sp)
	return Block{el: sp, w: d.w}
}

// Builder returns an element builder bound to the document's namespace
// prefixes.
func (d *Document) Builder() Builder {
	return Builder{w: d.w, r: d.relPrefix()}
}

// Prefix returns the prefix bound to the WordprocessingML namespace.
func (d *Document) Prefix() string {
	return d.w
}

// relPrefix returns the prefix bound to the relationships namespace on the
// main part root, declaring "r" if the root has none.
func (d *Document) relPrefix() string {
	root := d.main.Root()
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Value == nsR {
			return a.Key
		}
	}
	root.CreateAttr("xmlns:r", nsR)
	return "r"
}

// detach removes el from its current parent, if any.
func detach(el *etree.Element) {
	if p := el.Parent(); p != nil {
		p.RemoveChild(el)
	}
}

// namespacePrefix returns the prefix root declares for ns.
func namespacePrefix(root *etree.Element, ns string) (string, bool) {
	for _, a := range root.Attr {
		if a.Space == "xmlns" && a.Value == ns {
			return a.Key, true
		}
	}
	return "", false
}

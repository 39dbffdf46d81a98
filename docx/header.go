package docx

import (
	"fmt"
	"path"
	"strings"

	"github.com/beevik/etree"
)

// Header is the running header part linked from the main document.
type Header struct {
	RelID string
	Part  string
	root  *etree.Element
	w     string
}

// Blocks returns the header's top-level blocks.
func (h *Header) Blocks() []Block {
	if h == nil || h.root == nil {
		return nil
	}
	var out []Block
	for _, el := range h.root.ChildElements() {
		out = append(out, Block{el: el, w: h.w})
	}
	return out
}

// Text returns the concatenated text of the header.
func (h *Header) Text() string {
	var sb strings.Builder
	for _, b := range h.Blocks() {
		sb.WriteString(b.Text())
	}
	return sb.String()
}

// Header returns the first header part referenced by the main document.
func (d *Document) Header() (*Header, bool, error) {
	for _, rel := range d.Relationships() {
		if rel.Type != relTypeHeader {
			continue
		}
		name := resolveTarget(rel.Target)
		tree, err := d.partTree(name)
		if err != nil {
			return nil, false, err
		}
		root := tree.Root()
		if root == nil {
			root = tree.CreateElement(d.w + ":hdr")
			root.CreateAttr("xmlns:"+d.w, nsW)
		}
		return &Header{RelID: rel.ID, Part: name, root: root, w: d.w}, true, nil
	}
	return nil, false, nil
}

// ReplaceHeader replaces the whole content of the running header with the
// given blocks, creating the header part when the document has none.
func (d *Document) ReplaceHeader(blocks ...Block) (*Header, error) {
	h, ok, err := d.Header()
	if err != nil {
		return nil, err
	}
	if !ok {
		h = d.newHeader()
	}

	for _, child := range h.root.ChildElements() {
		h.root.RemoveChild(child)
	}
	d.declareNamespaces(h.root)
	for _, b := range blocks {
		if b.el == nil {
			continue
		}
		detach(b.el)
		h.root.AddChild(b.el)
	}
	return h, nil
}

// newHeader adds an empty header part with its relationship and content
// type override.
func (d *Document) newHeader() *Header {
	name := ""
	for n := 1; ; n++ {
		name = fmt.Sprintf("word/header%d.xml", n)
		if d.pkg.get(name) == nil {
			break
		}
	}

	tree := etree.NewDocument()
	tree.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := tree.CreateElement(d.w + ":hdr")
	d.declareNamespaces(root)

	d.pkg.add(name, tree)
	d.addOverride(name, contentTypeHdr)
	id := d.addRelationship(relTypeHeader, path.Base(name))

	return &Header{RelID: id, Part: name, root: root, w: d.w}
}

// LinkHeader points the effective section properties at h: every existing
// header reference is removed and a default reference is inserted first, as
// the schema requires.
func (d *Document) LinkHeader(h *Header) {
	sp := d.SectionProperties()
	sp.RemoveChildren("headerReference")
	ref := d.Builder().HeaderReference("default", h.RelID)
	sp.el.InsertChildAt(0, ref)
}

// declareNamespaces copies the main part's namespace declarations onto a
// header root so content cloned from the body stays well formed.
func (d *Document) declareNamespaces(root *etree.Element) {
	d.relPrefix()
	for _, a := range d.main.Root().Attr {
		if a.Space != "xmlns" {
			continue
		}
		if root.SelectAttr("xmlns:"+a.Key) == nil {
			root.CreateAttr("xmlns:"+a.Key, a.Value)
		}
	}
}

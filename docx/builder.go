package docx

import (
	"github.com/beevik/etree"
)

// Builder creates WordprocessingML elements with the document's namespace
// prefixes. Elements are detached until inserted.
type Builder struct {
	w string
	r string
}

// El creates a <w:tag> element with w-prefixed attributes given as
// key/value pairs.
func (b Builder) El(tag string, attrs ...string) *etree.Element {
	el := etree.NewElement(b.w + ":" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		el.CreateAttr(b.w+":"+attrs[i], attrs[i+1])
	}
	return el
}

// Wrap creates a <w:tag> element holding children.
func (b Builder) Wrap(tag string, children ...*etree.Element) *etree.Element {
	el := b.El(tag)
	for _, c := range children {
		if c == nil {
			continue
		}
		detach(c)
		el.AddChild(c)
	}
	return el
}

// Text creates a <w:t>, preserving surrounding blanks.
func (b Builder) Text(s string) *etree.Element {
	t := b.El("t")
	t.SetText(s)
	preserveSpace(t, s)
	return t
}

// Run creates a run with optional properties and text.
func (b Builder) Run(rPr *etree.Element, text string) *etree.Element {
	return b.Wrap("r", rPr, b.Text(text))
}

// Break creates a run holding a line break.
func (b Builder) Break() *etree.Element {
	return b.Wrap("r", b.El("br"))
}

// Paragraph creates a paragraph with optional properties and content.
func (b Builder) Paragraph(pPr *etree.Element, content ...*etree.Element) *etree.Element {
	return b.Wrap("p", append([]*etree.Element{pPr}, content...)...)
}

// Cell creates a table cell holding the given paragraphs, or an empty
// paragraph when none are given.
func (b Builder) Cell(paragraphs ...*etree.Element) *etree.Element {
	if len(paragraphs) == 0 {
		paragraphs = []*etree.Element{b.El("p")}
	}
	return b.Wrap("tc", paragraphs...)
}

// Row creates a table row from cells.
func (b Builder) Row(cells ...*etree.Element) *etree.Element {
	return b.Wrap("tr", cells...)
}

// Table creates a table with properties and rows.
func (b Builder) Table(tblPr *etree.Element, rows ...*etree.Element) *etree.Element {
	return b.Wrap("tbl", append([]*etree.Element{tblPr}, rows...)...)
}

// Border creates a border element such as <w:bottom>.
func (b Builder) Border(side, val, size, space, color string) *etree.Element {
	attrs := []string{"val", val, "sz", size}
	if space != "" {
		attrs = append(attrs, "space", space)
	}
	attrs = append(attrs, "color", color)
	return b.El(side, attrs...)
}

// HeaderReference creates a <w:headerReference> pointing at relID.
func (b Builder) HeaderReference(kind, relID string) *etree.Element {
	el := b.El("headerReference", "type", kind)
	el.CreateAttr(b.r+":id", relID)
	return el
}

// runPropertyOrder is the schema order of <w:rPr> children.
var runPropertyOrder = []string{
	"rStyle", "rFonts", "b", "bCs", "i", "iCs", "caps", "smallCaps", "strike",
	"dstrike", "outline", "shadow", "emboss", "imprint", "noProof", "snapToGrid",
	"vanish", "webHidden", "color", "spacing", "w", "kern", "position", "sz",
	"szCs", "highlight", "u", "effect", "bdr", "shd", "fitText", "vertAlign",
	"rtl", "cs", "em", "lang", "eastAsianLayout", "specVanish", "oMath",
}

// paragraphPropertyOrder is the schema order of <w:pPr> children.
var paragraphPropertyOrder = []string{
	"pStyle", "keepNext", "keepLines", "pageBreakBefore", "framePr",
	"widowControl", "numPr", "suppressLineNumbers", "pBdr", "shd", "tabs",
	"suppressAutoHyphens", "kinsoku", "wordWrap", "overflowPunct",
	"topLinePunct", "autoSpaceDE", "autoSpaceDN", "bidi", "adjustRightInd",
	"snapToGrid", "spacing", "ind", "contextualSpacing", "mirrorIndents",
	"suppressOverlap", "jc", "textDirection", "textAlignment",
	"textboxTightWrap", "outlineLvl", "divId", "cnfStyle", "rPr", "sectPr",
	"pPrChange",
}

// RunProperties returns the run's <w:rPr>, creating it as the first child
// when absent.
func RunProperties(run *etree.Element) *etree.Element {
	rPr := run.SelectElement(run.Space + ":rPr")
	if rPr == nil {
		rPr = etree.NewElement(run.Space + ":rPr")
		run.InsertChildAt(0, rPr)
	}
	return rPr
}

// ParagraphProperties returns the paragraph's <w:pPr>, creating it as the
// first child when absent.
func ParagraphProperties(p *etree.Element) *etree.Element {
	pPr := p.SelectElement(p.Space + ":pPr")
	if pPr == nil {
		pPr = etree.NewElement(p.Space + ":pPr")
		p.InsertChildAt(0, pPr)
	}
	return pPr
}

// SetRunProperty replaces (or adds) child in rPr at its schema position.
func SetRunProperty(rPr, child *etree.Element) {
	setOrdered(rPr, child, runPropertyOrder)
}

// SetParagraphProperty replaces (or adds) child in pPr at its schema
// position.
func SetParagraphProperty(pPr, child *etree.Element) {
	setOrdered(pPr, child, paragraphPropertyOrder)
}

func setOrdered(parent, child *etree.Element, order []string) {
	if old := parent.SelectElement(child.FullTag()); old != nil {
		parent.RemoveChild(old)
	}
	rank := func(tag string) int {
		for i, t := range order {
			if t == tag {
				return i
			}
		}
		return len(order)
	}
	want := rank(child.Tag)
	for _, existing := range parent.ChildElements() {
		if rank(existing.Tag) > want {
			parent.InsertChildAt(existing.Index(), child)
			return
		}
	}
	parent.AddChild(child)
}

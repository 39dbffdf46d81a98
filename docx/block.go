package docx

import (
	"strings"

	"github.com/beevik/etree"
)

// Kind identifies the type of a top-level block.
type Kind int

const (
	// KindOther covers body children that are not modeled (bookmarks,
	// structured document tags, ...).
	KindOther Kind = iota
	// KindParagraph is a <w:p> element.
	KindParagraph
	// KindTable is a <w:tbl> element.
	KindTable
	// KindSectionProperties is a body-level <w:sectPr> element.
	KindSectionProperties
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindParagraph:
		return "paragraph"
	case KindTable:
		return "table"
	case KindSectionProperties:
		return "sectPr"
	default:
		return "other"
	}
}

// Block is a handle on one body element. The zero Block is detached and
// reports KindOther with empty text.
type Block struct {
	el *etree.Element
	w  string
}

// NewBlock wraps an element built with a Builder so it can be inserted.
func NewBlock(el *etree.Element) Block {
	if el == nil {
		return Block{}
	}
	return Block{el: el, w: el.Space}
}

// IsZero reports whether b refers to no element.
func (b Block) IsZero() bool {
	return b.el == nil
}

// Element returns the underlying XML element.
func (b Block) Element() *etree.Element {
	return b.el
}

// Kind returns the block type.
func (b Block) Kind() Kind {
	if b.el == nil || b.el.Space != b.w {
		return KindOther
	}
	switch b.el.Tag {
	case "p":
		return KindParagraph
	case "tbl":
		return KindTable
	case "sectPr":
		return KindSectionProperties
	default:
		return KindOther
	}
}

// Is reports whether b is of kind k.
func (b Block) Is(k Kind) bool {
	return b.Kind() == k
}

// Clone returns a detached deep copy of b.
func (b Block) Clone() Block {
	if b.el == nil {
		return Block{}
	}
	return Block{el: b.el.Copy(), w: b.w}
}

// Text returns the concatenated text of every run below b. Tabs and breaks
// become whitespace; the result is not trimmed.
func (b Block) Text() string {
	if b.el == nil {
		return ""
	}
	var sb strings.Builder
	collectText(&sb, b.el, b.w)
	return sb.String()
}

// IsBlank reports whether b's text is empty or whitespace only.
func (b Block) IsBlank() bool {
	return strings.TrimSpace(b.Text()) == ""
}

// HasChildren reports whether b has any child element.
func (b Block) HasChildren() bool {
	return b.el != nil && len(b.el.ChildElements()) > 0
}

func collectText(sb *strings.Builder, el *etree.Element, w string) {
	for _, child := range el.ChildElements() {
		if child.Space == w {
			switch child.Tag {
			case "t":
				sb.WriteString(child.Text())
				continue
			case "tab":
				sb.WriteByte('\t')
				continue
			case "br", "cr":
				sb.WriteByte('\n')
				continue
			case "delText", "instrText":
				continue
			}
		}
		// mc:Fallback repeats the content of mc:Choice
		if child.Tag == "Fallback" {
			continue
		}
		collectText(sb, child, w)
	}
}

// descendants returns every element below el with the given prefix and tag.
func descendants(el *etree.Element, space, tag string) []*etree.Element {
	var out []*etree.Element
	for _, child := range el.ChildElements() {
		if child.Space == space && child.Tag == tag {
			out = append(out, child)
		}
		out = append(out, descendants(child, space, tag)...)
	}
	return out
}

// Runs returns the direct <w:r> children of a paragraph block.
func (b Block) Runs() []*etree.Element {
	if b.Kind() != KindParagraph {
		return nil
	}
	return b.el.SelectElements(b.w + ":r")
}

// Properties returns the block's property element (<w:pPr> or <w:tblPr>),
// or nil.
func (b Block) Properties() *etree.Element {
	switch b.Kind() {
	case KindParagraph:
		return b.el.SelectElement(b.w + ":pPr")
	case KindTable:
		return b.el.SelectElement(b.w + ":tblPr")
	}
	return nil
}

// SetText puts s into the first run that carries a <w:t> and drops the text
// of every later run, so the formatting of the first run is kept. Runs
// without text (breaks, drawings) are left alone.
func (b Block) SetText(s string) {
	if b.el == nil {
		return
	}
	set := false
	for _, r := range descendants(b.el, b.w, "r") {
		for _, t := range r.SelectElements(b.w + ":t") {
			if set {
				r.RemoveChild(t)
				continue
			}
			t.SetText(s)
			preserveSpace(t, s)
			set = true
		}
	}
}

// RemoveRuns removes every direct run, hyperlink and field of a paragraph,
// keeping its properties.
func (b Block) RemoveRuns() {
	if b.Kind() != KindParagraph {
		return
	}
	for _, child := range b.el.ChildElements() {
		if child.Space == b.w && child.Tag == "pPr" {
			continue
		}
		b.el.RemoveChild(child)
	}
}

// AppendChildren appends elements to b.
func (b Block) AppendChildren(children ...*etree.Element) {
	if b.el == nil {
		return
	}
	for _, c := range children {
		detach(c)
		b.el.AddChild(c)
	}
}

// RemoveChildren removes every direct child of b with the given tag in the
// WordprocessingML namespace.
func (b Block) RemoveChildren(tag string) int {
	if b.el == nil {
		return 0
	}
	n := 0
	for _, child := range b.el.SelectElements(b.w + ":" + tag) {
		b.el.RemoveChild(child)
		n++
	}
	return n
}

// preserveSpace marks a <w:t> so leading and trailing blanks survive.
func preserveSpace(t *etree.Element, s string) {
	if s != strings.TrimSpace(s) {
		if t.SelectAttr("xml:space") == nil {
			t.CreateAttr("xml:space", "preserve")
		}
	}
}

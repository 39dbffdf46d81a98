package edit

import (
	"math"

	"github.com/tsawler/reportkit/docx"
)

// PromoteFirstImage moves the first drawing of the body into a new centered
// paragraph placed before the first paragraph. The drawing is scaled down,
// keeping its aspect ratio, when it is wider than maxWidthPx. A drawing
// without a usable extent takes the pixel size of its media.
func PromoteFirstImage(doc *docx.Document, maxWidthPx int) Result {
	img, ok := doc.FirstImage()
	if !ok {
		return Result{}
	}
	moved := img.Clone()

	if moved.Inline() {
		cx, cy, ok := moved.Size()
		if !ok || cx <= 0 || cy <= 0 {
			if w, h, err := doc.MediaSize(img); err == nil && w > 0 && h > 0 {
				cx, cy, ok = int64(w)*docx.EMUPerPixel, int64(h)*docx.EMUPerPixel, true
				moved.Resize(cx, cy)
			}
		}
		if maxEMU := int64(maxWidthPx) * docx.EMUPerPixel; ok && cx > maxEMU {
			ratio := float64(maxEMU) / float64(cx)
			moved.Resize(maxEMU, int64(math.Floor(float64(cy)*ratio)))
		}
	}

	b := doc.Builder()
	pPr := b.Wrap("pPr", b.El("jc", "val", "center"))
	p := docx.NewBlock(b.Paragraph(pPr, b.Wrap("r", moved.Element())))

	if first, ok := firstParagraph(doc); ok {
		doc.InsertBefore(first, p)
	} else {
		doc.Prepend(p)
	}
	img.Remove()
	return Result{Applied: true, Inserted: 1}
}

func firstParagraph(doc *docx.Document) (docx.Block, bool) {
	for _, b := range doc.Blocks() {
		if b.Is(docx.KindParagraph) {
			return b, true
		}
	}
	return docx.Block{}, false
}

// Package docxtest builds minimal DOCX packages for tests.
package docxtest

import (
	"archive/zip"
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/tsawler/reportkit/docx"
)

const contentTypes = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types">
  <Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>
  <Default Extension="xml" ContentType="application/xml"/>
  <Default Extension="png" ContentType="image/png"/>
  <Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/>
</Types>`

const packageRels = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/officeDocument" Target="word/document.xml"/>
</Relationships>`

const documentHead = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main" ` +
	`xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" ` +
	`xmlns:wp="http://schemas.openxmlformats.org/drawingml/2006/wordprocessingDrawing" ` +
	`xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" ` +
	`xmlns:pic="http://schemas.openxmlformats.org/drawingml/2006/picture"><w:body>`

const documentTail = `</w:body></w:document>`

// Part is an extra package entry.
type Part struct {
	Name string
	Data []byte
}

// Bytes returns a DOCX package whose body holds the given markup.
func Bytes(t *testing.T, body string, extra ...Part) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	write := func(name string, data []byte) {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("creating %s: %v", name, err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}

	write("[Content_Types].xml", []byte(contentTypes))
	write("_rels/.rels", []byte(packageRels))
	write("word/document.xml", []byte(documentHead+body+documentTail))
	for _, p := range extra {
		write(p.Name, p.Data)
	}

	if err := zw.Close(); err != nil {
		t.Fatalf("closing zip: %v", err)
	}
	return buf.Bytes()
}

// File writes a DOCX package to dir/name and returns its path.
func File(t *testing.T, dir, name, body string, extra ...Part) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, Bytes(t, body, extra...), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

// Open returns a parsed document whose body holds the given markup.
func Open(t *testing.T, body string, extra ...Part) *docx.Document {
	t.Helper()
	data := Bytes(t, body, extra...)
	doc, err := docx.Read(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("docx.Read() error = %v", err)
	}
	return doc
}

// P returns a paragraph with one run per text.
func P(texts ...string) string {
	var sb strings.Builder
	sb.WriteString("<w:p>")
	for _, s := range texts {
		sb.WriteString(`<w:r><w:t xml:space="preserve">` + s + `</w:t></w:r>`)
	}
	sb.WriteString("</w:p>")
	return sb.String()
}

// Table returns a table; each row is a list of cell texts.
func Table(rows ...[]string) string {
	var sb strings.Builder
	sb.WriteString("<w:tbl><w:tblPr/>")
	for _, row := range rows {
		sb.WriteString("<w:tr>")
		for _, cell := range row {
			sb.WriteString("<w:tc>" + P(cell) + "</w:tc>")
		}
		sb.WriteString("</w:tr>")
	}
	sb.WriteString("</w:tbl>")
	return sb.String()
}

// Image returns a paragraph holding an inline picture of cx by cy EMUs
// referencing relID.
func Image(relID string, cx, cy int64) string {
	return `<w:p><w:r><w:drawing><wp:inline><wp:extent cx="` + itoa(cx) + `" cy="` + itoa(cy) + `"/>` +
		`<wp:docPr id="1" name="Picture 1"/><a:graphic><a:graphicData><pic:pic><pic:blipFill>` +
		`<a:blip r:embed="` + relID + `"/></pic:blipFill><pic:spPr><a:xfrm><a:off x="0" y="0"/>` +
		`<a:ext cx="` + itoa(cx) + `" cy="` + itoa(cy) + `"/></a:xfrm></pic:spPr></pic:pic>` +
		`</a:graphicData></a:graphic></wp:inline></w:drawing></w:r></w:p>`
}

// SectPr returns an empty trailing section properties element.
func SectPr() string {
	return `<w:sectPr><w:pgSz w:w="11906" w:h="16838"/></w:sectPr>`
}

// Texts returns the text of every top-level block, in order.
func Texts(doc *docx.Document) []string {
	var out []string
	for _, b := range doc.Blocks() {
		out = append(out, strings.TrimSpace(b.Text()))
	}
	return out
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}

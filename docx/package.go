// Package docx provides reading, in-place editing and writing of DOCX
// (Office Open XML) documents.
//
// Parts that are never touched are written back byte for byte; the main
// document, headers, relationships and content types are held as mutable
// XML trees so unknown markup survives a round trip.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/beevik/etree"
)

var (
	// ErrInvalidPackage is returned when the input is not a DOCX package.
	ErrInvalidPackage = errors.New("docx: invalid package")
	// ErrMissingPart is returned when a required part is absent.
	ErrMissingPart = errors.New("docx: missing part")
)

// part is a single entry of the ZIP package.
type part struct {
	name   string
	header zip.FileHeader
	data   []byte
	tree   *etree.Document // set once the part is parsed for editing
}

// pkg holds the package parts in their original archive order.
type pkg struct {
	parts []*part
	index map[string]*part
}

func (p *pkg) get(name string) *part {
	return p.index[name]
}

func (p *pkg) add(name string, tree *etree.Document) *part {
	pt := &part{
		name:   name,
		header: zip.FileHeader{Name: name, Method: zip.Deflate},
		tree:   tree,
	}
	p.parts = append(p.parts, pt)
	p.index[name] = pt
	return pt
}

// parse returns the part's XML tree, parsing it on first use.
func (pt *part) parse() (*etree.Document, error) {
	if pt.tree != nil {
		return pt.tree, nil
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(pt.data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", pt.name, err)
	}
	pt.tree = doc
	return doc, nil
}

// Open opens a DOCX file for editing. The file is read fully into memory and
// is not held open.
func Open(filename string) (*Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	return Read(bytes.NewReader(data), int64(len(data)))
}

// Read parses a DOCX package from r.
func Read(r io.ReaderAt, size int64) (*Document, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: opening ZIP archive: %v", ErrInvalidPackage, err)
	}

	p := &pkg{index: make(map[string]*part, len(zr.File))}
	for _, f := range zr.File {
		data, err := readZipFile(f)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", f.Name, err)
		}
		pt := &part{name: f.Name, header: f.FileHeader, data: data}
		p.parts = append(p.parts, pt)
		p.index[f.Name] = pt
	}

	// Validate required files exist
	for _, name := range []string{partContentTypes, partDocument} {
		if p.get(name) == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingPart, name)
		}
	}

	d := &Document{pkg: p}

	if d.main, err = p.get(partDocument).parse(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	root := d.main.Root()
	if root == nil || root.Tag != "document" {
		return nil, fmt.Errorf("%w: %s has no document root", ErrInvalidPackage, partDocument)
	}
	d.w = root.Space
	if prefix, ok := namespacePrefix(root, nsW); ok {
		d.w = prefix
	}
	d.body = root.SelectElement(d.w + ":body")
	if d.body == nil {
		d.body = root.CreateElement(d.w + ":body")
	}

	if d.types, err = p.get(partContentTypes).parse(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}

	// Relationships are optional; create an empty set when absent
	if rp := p.get(partDocumentRels); rp != nil {
		if d.rels, err = rp.parse(); err != nil {
			return nil, err
		}
	} else {
		d.rels = etree.NewDocument()
		d.rels.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
		d.rels.CreateElement("Relationships").CreateAttr("xmlns", nsPkg)
		p.add(partDocumentRels, d.rels)
	}

	return d, nil
}

func readZipFile(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// WriteTo writes the package to w. Parsed parts are serialized from their
// trees; all other parts are copied unchanged.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, pt := range d.pkg.parts {
		data := pt.data
		if pt.tree != nil {
			out, err := pt.tree.WriteToBytes()
			if err != nil {
				return 0, fmt.Errorf("serializing %s: %w", pt.name, err)
			}
			data = out
		}

		hdr := &zip.FileHeader{
			Name:     pt.name,
			Method:   zip.Deflate,
			Modified: pt.header.Modified,
		}
		if pt.header.Method == zip.Store && pt.tree == nil {
			hdr.Method = zip.Store
		}
		fw, err := zw.CreateHeader(hdr)
		if err != nil {
			return 0, fmt.Errorf("writing %s: %w", pt.name, err)
		}
		if _, err := fw.Write(data); err != nil {
			return 0, fmt.Errorf("writing %s: %w", pt.name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("closing ZIP archive: %w", err)
	}
	return buf.WriteTo(w)
}

// Save writes the package to filename. The data is written to a temporary
// file in the same directory and renamed into place.
func (d *Document) Save(filename string) error {
	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, ".reportkit-*.docx")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := d.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	return nil
}

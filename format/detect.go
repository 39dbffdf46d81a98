// Package format recognizes the documents a batch run can rewrite.
package format

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format represents a document format found in an input folder.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// DOCX indicates a WordprocessingML (.docx) package.
	DOCX
	// DOC indicates a legacy binary Word (.doc) file.
	DOC
	// XLSX indicates a SpreadsheetML (.xlsx) package.
	XLSX
	// PPTX indicates a PresentationML (.pptx) package.
	PPTX
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case DOCX:
		return "DOCX"
	case DOC:
		return "DOC"
	case XLSX:
		return "XLSX"
	case PPTX:
		return "PPTX"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case DOCX:
		return ".docx"
	case DOC:
		return ".doc"
	case XLSX:
		return ".xlsx"
	case PPTX:
		return ".pptx"
	default:
		return ""
	}
}

// Detect determines file format from filename extension.
func Detect(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".docx":
		return DOCX
	case ".doc":
		return DOC
	case ".xlsx":
		return XLSX
	case ".pptx":
		return PPTX
	default:
		return Unknown
	}
}

// lockPrefix starts the owner files Office keeps next to open documents.
const lockPrefix = "~$"

// IsLockFile reports whether filename is an Office owner (lock) file.
func IsLockFile(filename string) bool {
	return strings.HasPrefix(filepath.Base(filename), lockPrefix)
}

// Candidate reports whether filename names a document a batch run should
// open: a .docx that is not a lock file.
func Candidate(filename string) bool {
	return !IsLockFile(filename) && Detect(filename) == DOCX
}

var (
	zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}
	oleMagic = []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}
)

// DetectFromMagic checks file magic bytes. ZIP archives need their content
// inspected, so they are reported as Unknown here; use DetectFromReader.
func DetectFromMagic(data []byte) Format {
	if bytes.HasPrefix(data, oleMagic) {
		return DOC
	}
	return Unknown
}

// DetectFromReader inspects the content to determine format. It tells the
// ZIP based formats apart by their main part.
func DetectFromReader(r io.ReaderAt, size int64) (Format, error) {
	magic := make([]byte, len(oleMagic))
	n, err := r.ReadAt(magic, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	magic = magic[:n]

	if bytes.HasPrefix(magic, zipMagic) {
		return detectZIPFormat(r, size)
	}
	return DetectFromMagic(magic), nil
}

// DetectFile opens path and inspects its content.
func DetectFile(path string) (Format, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return Unknown, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Unknown, fmt.Errorf("stat %s: %w", path, err)
	}
	return DetectFromReader(f, info.Size())
}

// detectZIPFormat inspects an Office Open XML package.
func detectZIPFormat(r io.ReaderAt, size int64) (Format, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown, err
	}

	hasTypes := false
	found := Unknown
	for _, f := range zr.File {
		switch f.Name {
		case "[Content_Types].xml":
			hasTypes = true
		case "word/document.xml":
			found = DOCX
		case "xl/workbook.xml":
			found = XLSX
		case "ppt/presentation.xml":
			found = PPTX
		}
	}
	if !hasTypes {
		return Unknown, nil
	}
	return found, nil
}

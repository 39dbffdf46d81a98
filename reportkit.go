// Package reportkit provides a fluent API for rewriting monthly SEO report
// documents (.docx) into the client-facing layout.
//
// Basic usage:
//
//	report, err := reportkit.Open("july.docx").SaveAs("july_modified.docx")
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(report.Applied())
//
// With options:
//
//	report, err := reportkit.Open("july.docx").
//	    DetailsText("Built 12 backlinks").
//	    Variant(policy.LinksFirst).
//	    Logger(logger).
//	    SaveAs("out/july.docx")
//
// The lower-level docx, pipeline and batch packages are also available.
package reportkit

import (
	"github.com/tsawler/reportkit/docx"
)

// Open returns a Rewriter for the document at filename. The file is read by
// the terminal operation, never written.
//
// Example:
//
//	report, err := reportkit.Open("july.docx").SaveAs("july_modified.docx")
func Open(filename string) *Rewriter {
	return &Rewriter{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument returns a Rewriter for an already opened document. The
// document is modified in place by the terminal operation.
//
// Example:
//
//	doc, err := docx.Open("july.docx")
//	if err != nil {
//	    // handle error
//	}
//	report, err := reportkit.FromDocument(doc).Apply()
func FromDocument(doc *docx.Document) *Rewriter {
	return &Rewriter{
		doc:     doc,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	report := reportkit.Must(reportkit.Open("july.docx").SaveAs("out.docx"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

package reportkit

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/internal/logging"
	"github.com/tsawler/reportkit/metrics"
	"github.com/tsawler/reportkit/pipeline"
	"github.com/tsawler/reportkit/policy"
)

// Rewriter provides a fluent interface for rewriting one report. Each
// configuration method returns a new Rewriter, so a partly configured
// Rewriter can be shared and extended.
type Rewriter struct {
	// Source; exactly one is set
	filename string
	doc      *docx.Document

	options RewriteOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Rewriter with a deep copy of options.
func (r *Rewriter) clone() *Rewriter {
	return &Rewriter{
		filename: r.filename,
		doc:      r.doc,
		options:  r.options.clone(),
		err:      r.err,
	}
}

// DetailsText sets the text written into the details table.
func (r *Rewriter) DetailsText(text string) *Rewriter {
	n := r.clone()
	n.options.detailsText = text
	return n
}

// Policy replaces the built-in template policy.
func (r *Rewriter) Policy(p policy.Policy) *Rewriter {
	n := r.clone()
	n.options.policy = p
	n.options = n.options.clone()
	return n
}

// PolicyYAML overlays a YAML policy on the current one. A parse error is
// reported by the terminal operation.
func (r *Rewriter) PolicyYAML(data []byte) *Rewriter {
	n := r.clone()
	p, err := policy.ParseOver(n.options.policy, data)
	if err != nil {
		if n.err == nil {
			n.err = err
		}
		return n
	}
	n.options.policy = p
	return n
}

// Variant selects the order of the sections moved under the logo.
func (r *Rewriter) Variant(v policy.Variant) *Rewriter {
	n := r.clone()
	n.options.variant = v
	return n
}

// Logger sets the logger stage results are written to.
func (r *Rewriter) Logger(l *zap.Logger) *Rewriter {
	n := r.clone()
	n.options.logger = l
	return n
}

// Metrics records stage and keyword counters on m.
func (r *Rewriter) Metrics(m *metrics.Metrics) *Rewriter {
	n := r.clone()
	n.options.metrics = m
	return n
}

// Apply rewrites the document and returns it together with the run report.
// For a Rewriter made by Open the returned document is a fresh copy; the
// file itself is left as is.
func (r *Rewriter) Apply() (*docx.Document, pipeline.Report, error) {
	return r.ApplyContext(context.Background())
}

// ApplyContext is Apply with a caller supplied context.
func (r *Rewriter) ApplyContext(ctx context.Context) (*docx.Document, pipeline.Report, error) {
	if r.err != nil {
		return nil, pipeline.Report{}, r.err
	}

	p := r.options.policy
	if r.options.variant != "" {
		p.Variant = r.options.variant
	}
	compiled, err := p.Compile()
	if err != nil {
		return nil, pipeline.Report{}, err
	}

	doc := r.doc
	if doc == nil {
		if r.filename == "" {
			return nil, pipeline.Report{}, fmt.Errorf("no filename specified")
		}
		if doc, err = docx.Open(r.filename); err != nil {
			return nil, pipeline.Report{}, fmt.Errorf("failed to open report: %w", err)
		}
	}

	logger := r.options.logger
	if logger == nil {
		logger = logging.FromContext(ctx)
	}
	if r.filename != "" {
		logger = logger.With(zap.String("file", filepath.Base(r.filename)))
	}

	pl := pipeline.New(compiled, pipeline.WithLogger(logger), pipeline.WithMetrics(r.options.metrics))
	rep, err := pl.Run(ctx, doc, pipeline.Options{DetailsText: r.options.detailsText})
	if err != nil {
		return nil, rep, err
	}
	return doc, rep, nil
}

// SaveAs rewrites the document and saves it to filename.
func (r *Rewriter) SaveAs(filename string) (pipeline.Report, error) {
	doc, rep, err := r.Apply()
	if err != nil {
		return rep, err
	}
	if err := doc.Save(filename); err != nil {
		return rep, err
	}
	return rep, nil
}

// WriteTo rewrites the document and writes the package to w.
func (r *Rewriter) WriteTo(w io.Writer) (int64, error) {
	doc, _, err := r.Apply()
	if err != nil {
		return 0, err
	}
	return doc.WriteTo(w)
}

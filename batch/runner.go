// Package batch rewrites every report in a folder and can keep watching the
// folder for new ones.
//
// Documents are processed one at a time. A failing document is logged and
// counted; the run goes on with the next one.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tsawler/reportkit/config"
	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/format"
	"github.com/tsawler/reportkit/internal/logging"
	"github.com/tsawler/reportkit/metrics"
	"github.com/tsawler/reportkit/pipeline"
)

// ErrUnsupported is returned for a .docx file that is not a Word package.
var ErrUnsupported = errors.New("not a docx package")

// Result is the outcome of one document.
type Result struct {
	Input    string
	Output   string
	Report   pipeline.Report
	Err      error
	Duration time.Duration
}

// Summary describes a batch run.
type Summary struct {
	RunID   string
	Results []Result
}

// Failed returns the results that ended in an error.
func (s Summary) Failed() []Result {
	var out []Result
	for _, r := range s.Results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Succeeded returns the number of documents written.
func (s Summary) Succeeded() int {
	return len(s.Results) - len(s.Failed())
}

// Runner processes report folders with one pipeline.
type Runner struct {
	pipeline *pipeline.Pipeline
	cfg      config.Config
	logger   *zap.Logger
	metrics  *metrics.Metrics
	newID    func() string
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the runner's logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithMetrics records document counters on m. When the configuration names
// a textfile, it is rewritten after every run.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// New creates a runner. Output locations come from cfg.
func New(p *pipeline.Pipeline, cfg config.Config, opts ...Option) *Runner {
	r := &Runner{
		pipeline: p,
		cfg:      cfg,
		logger:   zap.NewNop(),
		newID:    uuid.NewString,
	}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Discover lists the documents of dir a run would process, sorted by name.
// Lock files, other formats, sub-folders and previously written outputs
// are left out.
func (r *Runner) Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if !r.accepts(path) {
			continue
		}
		out = append(out, path)
	}
	sort.Strings(out)
	return out, nil
}

// accepts reports whether path is an input document.
func (r *Runner) accepts(path string) bool {
	if !format.Candidate(path) {
		return false
	}
	dir := filepath.Dir(path)
	if filepath.Clean(r.cfg.OutputDir(dir)) == filepath.Clean(dir) &&
		strings.HasSuffix(filepath.Base(path), r.cfg.Output.Suffix+format.DOCX.Extension()) {
		return false
	}
	return true
}

// Run processes every document of dir. Only listing the folder, creating
// the output folder or a cancelled context fail the run; document errors
// are reported in the summary.
func (r *Runner) Run(ctx context.Context, dir string, opts pipeline.Options) (Summary, error) {
	sum := Summary{RunID: r.newID()}
	log := r.logger.With(zap.String("run_id", sum.RunID), zap.String("dir", dir))

	files, err := r.Discover(dir)
	if err != nil {
		return sum, err
	}
	if len(files) == 0 {
		log.Warn("no documents found")
		return sum, nil
	}
	outDir := r.cfg.OutputDir(dir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return sum, fmt.Errorf("failed to create output folder %s: %w", outDir, err)
	}

	log.Info("batch started", zap.Int("documents", len(files)), zap.String("output", outDir))
	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.Results = append(sum.Results, r.process(ctx, log, path, opts))
	}
	log.Info("batch finished",
		zap.Int("succeeded", sum.Succeeded()),
		zap.Int("failed", len(sum.Failed())),
	)

	r.flushMetrics(log)
	return sum, nil
}

// ProcessFile rewrites one document into its output location.
func (r *Runner) ProcessFile(ctx context.Context, path string, opts pipeline.Options) Result {
	log := r.logger.With(zap.String("run_id", r.newID()))
	res := r.process(ctx, log, path, opts)
	r.flushMetrics(log)
	return res
}

func (r *Runner) process(ctx context.Context, log *zap.Logger, path string, opts pipeline.Options) Result {
	res := Result{Input: path, Output: r.cfg.OutputPath(path)}
	log = log.With(zap.String("file", filepath.Base(path)))

	start := time.Now()
	res.Report, res.Err = r.rewrite(logging.ContextWithLogger(ctx, log), path, res.Output, opts)
	res.Duration = time.Since(start)
	r.metrics.ObserveDocument(res.Err, res.Duration.Seconds())

	if res.Err != nil {
		log.Error("document failed", zap.Error(res.Err))
		return res
	}
	log.Info("document saved", zap.String("output", res.Output), zap.Duration("took", res.Duration))
	return res
}

func (r *Runner) rewrite(ctx context.Context, in, out string, opts pipeline.Options) (rep pipeline.Report, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("rewriting %s panicked: %v", in, rec)
		}
	}()

	f, err := format.DetectFile(in)
	if err != nil {
		return pipeline.Report{}, fmt.Errorf("failed to inspect %s: %w", in, err)
	}
	if f != format.DOCX {
		return pipeline.Report{}, fmt.Errorf("%s: %w (found %s)", in, ErrUnsupported, f)
	}

	doc, err := docx.Open(in)
	if err != nil {
		return pipeline.Report{}, err
	}
	rep, err = r.pipeline.Run(ctx, doc, opts)
	if err != nil {
		return rep, err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return rep, fmt.Errorf("failed to create output folder: %w", err)
	}
	if err := doc.Save(out); err != nil {
		return rep, err
	}
	return rep, nil
}

func (r *Runner) flushMetrics(log *zap.Logger) {
	if r.metrics == nil || r.cfg.Metrics.Textfile == "" {
		return
	}
	if err := r.metrics.WriteTextfile(r.cfg.Metrics.Textfile); err != nil {
		log.Warn("metrics not written", zap.Error(err))
	}
}

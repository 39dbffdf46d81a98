// Package pipeline rewrites one report document by running the template
// transforms in their fixed order:
//
//  1. merge the duplicated monthly comparison headline regions
//  2. remove the collapsible keyword section
//  3. remove date ranges and the first links headline
//  4. promote the first image (the logo) to the top
//  5. move the report title into the running header
//  6. remove the monthly report paragraphs
//  7. scaffold the keyword performance section
//  8. classify keywords into the performance tables
//  9. relocate the details and links sections under the logo
//  10. substitute the low search volume text
//
// A stage whose markers are absent is skipped. Only errors in the document
// structure itself stop a run.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/tsawler/reportkit/compose"
	"github.com/tsawler/reportkit/docx"
	"github.com/tsawler/reportkit/edit"
	"github.com/tsawler/reportkit/internal/logging"
	"github.com/tsawler/reportkit/metrics"
	"github.com/tsawler/reportkit/policy"
	"github.com/tsawler/reportkit/promote"
	"github.com/tsawler/reportkit/rank"
)

// Stage names, in run order.
const (
	StageMerge         = "merge"
	StageCollapsible   = "collapsible"
	StageDates         = "dates"
	StageLogo          = "logo"
	StageHeader        = "header"
	StageMonthlyReport = "monthly_report"
	StageScaffold      = "scaffold"
	StagePopulate      = "populate"
	StageRelocate      = "relocate"
	StageLowVolume     = "low_volume"
)

// Options are the per-run inputs.
type Options struct {
	// DetailsText is written into the details table. Empty selects the
	// policy's default text.
	DetailsText string
}

// StageResult is the effect of one stage.
type StageResult struct {
	Name     string
	Applied  bool
	Removed  int
	Inserted int
}

// Report describes a run.
type Report struct {
	Stages  []StageResult
	Summary compose.Summary
	// HeaderPart is the header part that received the title, if any.
	HeaderPart string
}

// Stage returns the result of the named stage.
func (r Report) Stage(name string) (StageResult, bool) {
	for _, s := range r.Stages {
		if s.Name == name {
			return s, true
		}
	}
	return StageResult{}, false
}

// Applied returns the names of the stages that changed the document.
func (r Report) Applied() []string {
	var out []string
	for _, s := range r.Stages {
		if s.Applied {
			out = append(out, s.Name)
		}
	}
	return out
}

// Pipeline runs the transforms of one compiled policy. It holds no
// per-document state and may be reused across documents.
type Pipeline struct {
	policy  *policy.Compiled
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the pipeline's logger. Without one, the logger carried by
// the run's context is used.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.logger = l }
}

// WithMetrics records stage and keyword counters on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Pipeline) { p.metrics = m }
}

// New creates a pipeline for c.
func New(c *policy.Compiled, opts ...Option) *Pipeline {
	p := &Pipeline{policy: c}
	for _, o := range opts {
		o(p)
	}
	return p
}

// stage is one step of a run.
type stage struct {
	name string
	run  func(r *run) (edit.Result, error)
}

var stages = []stage{
	{StageMerge, (*run).merge},
	{StageCollapsible, (*run).collapsible},
	{StageDates, (*run).dates},
	{StageLogo, (*run).logo},
	{StageHeader, (*run).header},
	{StageMonthlyReport, (*run).monthlyReport},
	{StageScaffold, (*run).scaffold},
	{StagePopulate, (*run).populate},
	{StageRelocate, (*run).relocate},
	{StageLowVolume, (*run).lowVolume},
}

// run carries one document through the stages.
type run struct {
	p      *Pipeline
	c      *policy.Compiled
	doc    *docx.Document
	opts   Options
	report Report
}

// Run applies every stage to doc in order.
func (p *Pipeline) Run(ctx context.Context, doc *docx.Document, opts Options) (Report, error) {
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	log := p.logger
	if log == nil {
		log = logging.FromContext(ctx)
	}

	r := &run{p: p, c: p.policy, doc: doc, opts: opts}
	start := time.Now()
	for _, s := range stages {
		res, err := s.run(r)
		if err != nil {
			log.Error("stage failed", zap.String("stage", s.name), zap.Error(err))
			return r.report, fmt.Errorf("%s: %w", s.name, err)
		}
		r.report.Stages = append(r.report.Stages, StageResult{
			Name:     s.name,
			Applied:  res.Applied,
			Removed:  res.Removed,
			Inserted: res.Inserted,
		})
		p.metrics.ObserveStage(s.name, res.Applied)

		if res.Applied {
			log.Debug("stage applied",
				zap.String("stage", s.name),
				zap.Int("removed", res.Removed),
				zap.Int("inserted", res.Inserted),
			)
		} else {
			log.Info("stage skipped", zap.String("stage", s.name))
		}
	}

	log.Info("document rewritten",
		zap.Strings("applied", r.report.Applied()),
		zap.Int("keywords", len(r.report.Summary.Outcomes)),
		zap.Int("skipped_rows", r.report.Summary.Skipped),
		zap.Duration("took", time.Since(start)),
	)
	return r.report, nil
}

func (r *run) merge() (edit.Result, error) {
	return edit.MergeDuplicateHeadlines(r.doc, r.c.MonthlyComparison), nil
}

func (r *run) collapsible() (edit.Result, error) {
	return edit.RemoveBracketedSection(r.doc, r.c.CollapsibleStarts, r.c.CollapsibleTrailing), nil
}

func (r *run) dates() (edit.Result, error) {
	res := edit.RemoveMatching(r.doc, r.c.DateRange)
	res = res.Add(edit.RemoveFirst(r.doc, r.c.Links))
	return res.Add(edit.Cleanup(r.doc)), nil
}

func (r *run) logo() (edit.Result, error) {
	return edit.PromoteFirstImage(r.doc, r.c.Policy.Image.MaxWidthPx), nil
}

func (r *run) header() (edit.Result, error) {
	h := r.c.Policy.Header
	res, err := promote.Header(r.doc, r.c.Title, promote.Style{
		Size:         h.Size,
		Color:        h.Color,
		BorderColor:  h.BorderColor,
		SpacingAfter: h.SpacingAfter,
	})
	if err != nil {
		return edit.Result{}, err
	}
	if !res.Applied {
		return edit.Result{}, nil
	}
	r.report.HeaderPart = res.Part
	return edit.Result{Applied: true, Removed: 1}, nil
}

func (r *run) monthlyReport() (edit.Result, error) {
	return edit.RemoveMatching(r.doc, r.c.MonthlyReport), nil
}

func (r *run) scaffold() (edit.Result, error) {
	return compose.Scaffold(r.doc, r.c), nil
}

func (r *run) populate() (edit.Result, error) {
	sum := compose.Populate(r.doc, r.c)
	r.report.Summary = sum

	inserted := 0
	for _, o := range sum.Outcomes {
		r.p.metrics.ObserveKeyword(o.Outcome.Kind.String())
		if o.Outcome.Destination() != rank.Nowhere {
			inserted++
		}
	}
	return edit.Result{Applied: sum.Applied, Removed: sum.Pruned, Inserted: inserted}, nil
}

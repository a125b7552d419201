package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gtmstudio/scenedirector/internal/director"
	"github.com/gtmstudio/scenedirector/internal/metrics"
	"github.com/gtmstudio/scenedirector/internal/scene"
	"github.com/gtmstudio/scenedirector/internal/system"
)

// ErrValidationFailed is returned by Run in strict mode when at least one
// scene has an error-severity issue.
var ErrValidationFailed = errors.New("scene validation failed")

// Options controls a validation run.
type Options struct {
	Workers   int  // scenes checked in parallel
	Strict    bool // fail the run when any scene has an error
	Fix       bool // resolve conflicts into Report.Fixed
	ShowStats bool
}

// Project runs validation over scene documents.
type Project struct {
	Options Options
	Logger  *zap.Logger
	Metrics *metrics.Metrics
}

// NewProject returns a Project that runs at least one worker.
// A nil logger discards output.
func NewProject(opts Options, logger *zap.Logger, m *metrics.Metrics) *Project {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Project{
		Options: opts,
		Logger:  logger,
		Metrics: m,
	}
}

// SceneReport is the outcome for one scene.
type SceneReport struct {
	Index    int
	ID       int
	Issues   director.Issues
	Warnings []string // corrections applied by the resolver (fix mode)
}

// OK reports whether the scene produced no issues of any severity.
func (r SceneReport) OK() bool { return len(r.Issues) == 0 }

// Totals aggregates issue counts over all scenes of a run.
type Totals struct {
	Scenes           int
	ScenesWithIssues int
	ScenesWithErrors int
	Missing          int
	Invalid          int
	Conflicts        int
	Resolved         int
}

// Report is the outcome of Run.
type Report struct {
	Scenes   []SceneReport
	Totals   Totals
	Fixed    *scene.Document // resolved copy of the input, fix mode only
	Duration time.Duration
	Stats    *system.Stats
}

// Run validates every scene of doc and, in fix mode, resolves conflicts into
// a copy of the document. Scene reports keep document order regardless of
// which worker handled them. doc is never modified.
func (p *Project) Run(ctx context.Context, doc *scene.Document) (*Report, error) {
	startTime := time.Now()

	if doc == nil || len(doc.Scenes) == 0 {
		return nil, fmt.Errorf("document contains no scenes")
	}
	sceneCount := len(doc.Scenes)

	reports := make([]SceneReport, sceneCount)
	var fixed *scene.Document
	if p.Options.Fix {
		fixed = doc.Clone()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.Options.Workers)

	for i := range doc.Scenes {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			sc := doc.Scenes[i]
			r := SceneReport{
				Index:  i,
				ID:     sc.ID,
				Issues: director.Check(sc.Director, i),
			}
			if fixed != nil && sc.Director != nil {
				res := director.Resolve(sc.Director)
				r.Warnings = res.Warnings
				fixed.Scenes[i].Director = res.Resolved
			}
			reports[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validate scenes: %w", err)
	}

	report := &Report{Scenes: reports, Fixed: fixed}
	for _, r := range reports {
		p.record(&report.Totals, r)
	}
	report.Duration = time.Since(startTime)

	if p.Options.ShowStats {
		stats, err := system.Snapshot()
		if err != nil {
			p.Logger.Warn("resource stats unavailable", zap.Error(err))
		} else {
			report.Stats = stats
		}
	}

	p.Logger.Info("validation finished",
		zap.Int("scenes", report.Totals.Scenes),
		zap.Int("with_issues", report.Totals.ScenesWithIssues),
		zap.Int("resolved", report.Totals.Resolved),
		zap.Duration("took", report.Duration),
	)

	if p.Options.Strict && report.Totals.ScenesWithErrors > 0 {
		return report, fmt.Errorf("%w: %d of %d scenes", ErrValidationFailed, report.Totals.ScenesWithErrors, sceneCount)
	}
	return report, nil
}

func (p *Project) record(t *Totals, r SceneReport) {
	t.Scenes++
	t.Missing += r.Issues.Count(director.MissingField)
	t.Invalid += r.Issues.Count(director.RangeOrFormatViolation)
	t.Conflicts += r.Issues.Count(director.ConflictingSettings)
	t.Resolved += len(r.Warnings)
	if !r.OK() {
		t.ScenesWithIssues++
	}
	if r.Issues.HasErrors() {
		t.ScenesWithErrors++
	}

	p.Metrics.ObserveScene(r.Issues, len(r.Warnings))

	director.LogScene(p.Logger, r.Index, r.Issues, zap.Int("id", r.ID))
	for _, w := range r.Warnings {
		p.Logger.Info("conflict resolved", zap.Int("scene", r.Index), zap.String("warning", w))
	}
}

// Package batch lints many maps in parallel and collects one outcome per map.
package batch

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"slices"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/AcrylonitrileButadieneStyrene/lcf-validate-2kki/internal/rules"
)

// Job identifies one map to lint.
type Job struct {
	// ID is the map id from the map tree.
	ID int
	// Name is the display name from the map tree, already decoded.
	Name string
	// Path is the map unit file.
	Path string
}

// Outcome is the result of one Job. Exactly one of Report and Err is set.
type Outcome struct {
	ID     int
	Name   string
	Path   string
	Report *rules.Report
	Err    error
}

// Failed reports whether the map could not be linted.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Loader loads and lints a single job.
type Loader func(ctx context.Context, job Job) (*rules.Report, error)

// Options configures Run.
type Options struct {
	// Workers caps the number of maps linted at once. Zero or less means
	// runtime.GOMAXPROCS(0).
	Workers int

	// Progress, when set, is called after each job with the number of
	// finished jobs. It may be called from several goroutines.
	Progress func(done, total int)

	// Logger receives per-map debug lines. Nil means silent.
	Logger logrus.FieldLogger
}

// PanicError is stored in Outcome.Err when a loader panics.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic while linting: %v", e.Value)
}

// Run executes load for every job and returns the outcomes ordered by map id.
//
// A failing job never affects its siblings: its error is recorded in the
// outcome. The returned error is non-nil only when ctx is cancelled, in which
// case jobs that never started carry ctx.Err().
func Run(ctx context.Context, jobs []Job, load Loader, opts Options) ([]Outcome, error) {
	if len(jobs) == 0 {
		return nil, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	// Each goroutine owns one slot.
	outcomes := make([]Outcome, len(jobs))
	var done atomic.Int64
	total := len(jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, total))

	for i, job := range jobs {
		outcomes[i] = Outcome{ID: job.ID, Name: job.Name, Path: job.Path}

		if err := gctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			entry := log.WithField("map", job.Path).WithField("id", job.ID)

			report, err := runOne(gctx, job, load)
			if err != nil {
				entry.WithError(err).Debug("map failed")
				outcomes[i].Err = err
			} else {
				entry.WithField("results", len(report.Results)).Debug("map linted")
				outcomes[i].Report = report
			}

			n := int(done.Add(1))
			if opts.Progress != nil {
				opts.Progress(n, total)
			}
			return nil
		})
	}

	// Tasks never return errors; only cancellation is reported.
	_ = g.Wait()

	slices.SortStableFunc(outcomes, func(a, b Outcome) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return outcomes, ctx.Err()
}

func runOne(ctx context.Context, job Job, load Loader) (report *rules.Report, err error) {
	defer func() {
		if r := recover(); r != nil {
			report = nil
			err = &PanicError{Value: r, Stack: debug.Stack()}
		}
	}()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	report, err = load(ctx, job)
	if err == nil && report == nil {
		report = &rules.Report{}
	}
	return report, err
}

// Summary counts outcomes by status.
type Summary struct {
	Maps     int `json:"maps"`
	Failed   int `json:"failed"`
	Clean    int `json:"clean"`
	Warnings int `json:"warnings"`
	Errors   int `json:"errors"`
}

// Summarize totals diagnostics across outcomes. A map is clean when it loaded
// and produced no diagnostics.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Maps: len(outcomes)}
	for _, o := range outcomes {
		if o.Failed() {
			s.Failed++
			continue
		}
		w, e := o.Report.Count()
		s.Warnings += w
		s.Errors += e
		if w == 0 && e == 0 {
			s.Clean++
		}
	}
	return s
}

package importer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

// Summary is the outcome of one run.
type Summary struct {
	Source     string
	Query      Query
	Fetched    int
	Created    int
	Updated    int
	Failures   []*RecordError
	StartedAt  time.Time
	FinishedAt time.Time

	// Jobs holds the mapped drafts of a dry run.
	Jobs []*model.Job
}

// Failed returns the number of records that could not be imported.
func (s *Summary) Failed() int {
	return len(s.Failures)
}

// Err joins every record failure, nil when there is none.
func (s *Summary) Err() error {
	if len(s.Failures) == 0 {
		return nil
	}
	errs := make([]error, 0, len(s.Failures))
	for _, f := range s.Failures {
		errs = append(errs, f)
	}
	return errors.Join(errs...)
}

// Pipeline runs Source -> mapper -> Store once per Run.
type Pipeline struct {
	Source Source
	Store  Store
	Log    *logging.Logger
	// DryRun maps the records without writing anything.
	DryRun bool

	now func() time.Time
}

// NewPipeline creates a new instance of Pipeline. store may be nil for dry runs.
func NewPipeline(source Source, store Store, log *logging.Logger) *Pipeline {
	if log == nil {
		log = logging.Nop()
	}
	return &Pipeline{Source: source, Store: store, Log: log, now: time.Now}
}

// Run imports one page of q. The returned error is fatal for the run
// (configuration, auth exchange, fetch, cancellation or audit write);
// per-record failures are only reported in the Summary.
func (p *Pipeline) Run(ctx context.Context, q Query) (*Summary, error) {
	if p.now == nil {
		p.now = time.Now
	}
	sum := &Summary{Source: p.Source.Name(), Query: q, StartedAt: p.now()}
	log := p.Log.With("source", sum.Source)

	if err := q.Validate(); err != nil {
		return sum, err
	}
	if p.Store == nil && !p.DryRun {
		return sum, Misconfigured("no store configured")
	}

	log.Info("import started", "keywords", q.Keywords, "experience", q.Experience, "range", q.Range)

	listings, err := p.Source.Fetch(ctx, q)
	if err != nil {
		sum.FinishedAt = p.now()
		log.Error("import aborted", "err", err)
		if errors.Is(err, ErrConfiguration) {
			return sum, err
		}
		return sum, p.finish(ctx, sum, err)
	}
	sum.Fetched = len(listings)

	for _, l := range listings {
		if err := ctx.Err(); err != nil {
			sum.FinishedAt = p.now()
			return sum, p.finish(ctx, sum, fmt.Errorf("import interrupted: %w", err))
		}
		p.importOne(ctx, sum, l)
	}

	sum.FinishedAt = p.now()
	log.Info("import finished",
		"fetched", sum.Fetched,
		"created", sum.Created,
		"updated", sum.Updated,
		"failed", sum.Failed(),
		"duration", sum.FinishedAt.Sub(sum.StartedAt),
	)
	return sum, p.finish(ctx, sum, nil)
}

func (p *Pipeline) importOne(ctx context.Context, sum *Summary, l Listing) {
	job, err := l.Map()
	if err != nil {
		p.fail(sum, &RecordError{ExternalID: l.Key(), Stage: model.StageMap, Err: err})
		return
	}

	if p.DryRun {
		sum.Jobs = append(sum.Jobs, job)
		return
	}

	created, err := p.Store.UpsertJob(ctx, job)
	if err != nil {
		p.fail(sum, &RecordError{ExternalID: job.ExternalID, Stage: model.StageStore, Err: err})
		return
	}
	if created {
		sum.Created++
	} else {
		sum.Updated++
	}
}

func (p *Pipeline) fail(sum *Summary, rerr *RecordError) {
	sum.Failures = append(sum.Failures, rerr)
	p.Log.Warn("record skipped", "source", sum.Source, "external_id", rerr.ExternalID, "stage", rerr.Stage, "err", rerr.Err)
}

// finish writes the audit row, except for dry runs. runErr is returned,
// joined with the audit error if the write failed.
func (p *Pipeline) finish(ctx context.Context, sum *Summary, runErr error) error {
	if p.DryRun || p.Store == nil {
		return runErr
	}

	run := sum.ImportRun(runErr)
	// The run context may be the reason we are failing.
	writeCtx := ctx
	if ctx.Err() != nil {
		var cancel context.CancelFunc
		writeCtx, cancel = context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
	}
	if err := p.Store.RecordRun(writeCtx, run); err != nil {
		p.Log.Error("failed to record import run", "source", sum.Source, "err", err)
		return errors.Join(runErr, fmt.Errorf("record import run: %w", err))
	}
	return runErr
}

// ImportRun converts the summary into its audit row.
func (s *Summary) ImportRun(runErr error) *model.ImportRun {
	run := &model.ImportRun{
		Source:     s.Source,
		Keywords:   s.Query.Keywords,
		Experience: s.Query.Experience,
		Range:      s.Query.Range,
		Status:     model.ImportRunSucceeded,
		Fetched:    s.Fetched,
		Created:    s.Created,
		Updated:    s.Updated,
		Failed:     s.Failed(),
		StartedAt:  s.StartedAt,
		FinishedAt: s.FinishedAt,
	}
	for _, f := range s.Failures {
		run.Failures = append(run.Failures, model.RecordFailure{
			ExternalID: f.ExternalID,
			Stage:      f.Stage,
			Message:    f.Err.Error(),
		})
	}
	if runErr != nil {
		run.Status = model.ImportRunFailed
		run.Error = runErr.Error()
	}
	return run
}

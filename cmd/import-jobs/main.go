// Command import-jobs pulls job listings from the external sources and
// upserts them into the database. It exits non-zero when a run fails or
// when any record could not be imported.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/config"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/database"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/importer/sources"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/logging"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/repository"
	"github.com/ErwanMettouchi/DevJobHub-backend/internal/scheduler"
)

type options struct {
	sources  []string
	query    importer.Query
	dryRun   bool
	schedule string
}

func parseFlags(cfg *config.Config, args []string) (options, error) {
	fs := flag.NewFlagSet("import-jobs", flag.ContinueOnError)
	source := fs.String("source", strings.Join(cfg.Import.Sources, ","), "comma separated sources: "+strings.Join(sources.Names(), ", "))
	keywords := fs.String("keywords", cfg.Import.Keywords, "search keywords")
	experience := fs.Int("experience", cfg.Import.Experience, "experience level code")
	rng := fs.String("range", cfg.Import.Range, "inclusive result range, e.g. 0-14")
	dryRun := fs.Bool("dry-run", false, "print the mapped jobs instead of storing them")
	schedule := fs.String("schedule", cfg.Import.Schedule, "cron spec to run repeatedly, e.g. @every 6h")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	opts := options{
		query:    importer.Query{Keywords: *keywords, Experience: *experience, Range: *rng},
		dryRun:   *dryRun,
		schedule: strings.TrimSpace(*schedule),
	}
	for _, s := range strings.Split(*source, ",") {
		if s = strings.TrimSpace(s); s != "" {
			opts.sources = append(opts.sources, s)
		}
	}
	if len(opts.sources) == 0 {
		return opts, importer.Misconfigured("no source selected")
	}
	if opts.dryRun && opts.schedule != "" {
		return opts, importer.Misconfigured("-dry-run and -schedule cannot be combined")
	}
	return opts, opts.query.Validate()
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info").Fatal("invalid configuration", "err", err)
	}
	log := logging.New(cfg.LogLevel)
	defer func() {
		_ = log.Sync()
	}()

	opts, err := parseFlags(cfg, os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Error("invalid arguments", "err", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpClient := &http.Client{Timeout: cfg.Import.HTTPTimeout}
	srcs := make([]importer.Source, 0, len(opts.sources))
	for _, name := range opts.sources {
		src, err := sources.New(name, cfg, httpClient)
		if err != nil {
			log.Error("source unavailable", "source", name, "err", err)
			os.Exit(1)
		}
		srcs = append(srcs, src)
	}

	var store importer.Store
	if !opts.dryRun {
		db, err := database.NewDBInstance(database.FromConfig(cfg.Database), log)
		if err != nil {
			log.Error("database failed to initialize", "err", err)
			os.Exit(1)
		}
		defer func() {
			_ = db.Close()
		}()
		store = repository.NewJobRepository(db.DB)
	}

	if opts.schedule == "" {
		if err := importAll(ctx, srcs, store, opts, log, os.Stdout); err != nil {
			log.Error("import failed", "err", err)
			stop()
			os.Exit(1)
		}
		return
	}

	s, err := scheduler.New(opts.schedule, func(ctx context.Context) {
		if err := importAll(ctx, srcs, store, opts, log, os.Stdout); err != nil {
			log.Error("scheduled import failed", "err", err)
		}
	}, log)
	if err != nil {
		log.Error("invalid schedule", "err", err)
		os.Exit(2)
	}
	s.Start(ctx, true)
	<-ctx.Done()
	s.Stop()
}

// importAll runs every source in turn. A failing source does not prevent
// the next ones from running; the returned error joins all failures.
func importAll(ctx context.Context, srcs []importer.Source, store importer.Store, opts options, log *logging.Logger, out io.Writer) error {
	var errs []error
	for _, src := range srcs {
		p := importer.NewPipeline(src, store, log)
		p.DryRun = opts.dryRun

		sum, err := p.Run(ctx, opts.query)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", src.Name(), err))
			continue
		}
		if opts.dryRun {
			if err := printJobs(out, sum); err != nil {
				errs = append(errs, err)
			}
		}
		if err := sum.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %d record(s) failed: %w", src.Name(), sum.Failed(), err))
		}
	}
	return errors.Join(errs...)
}

func printJobs(out io.Writer, sum *importer.Summary) error {
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(sum.Jobs)
}

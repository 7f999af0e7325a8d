// Package importer pulls job listings out of external APIs, maps them onto
// the canonical job record and upserts them by (external_id, source).
package importer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ErwanMettouchi/DevJobHub-backend/internal/model"
)

// Query is the search sent to a source. Range is inclusive, "0-14" being the
// first 15 results.
type Query struct {
	Keywords   string
	Experience int
	Range      string
}

// Listing is one raw record of a source.
type Listing interface {
	// Key returns the source identifier, possibly empty.
	Key() string
	// Map turns the record into a job draft. It performs no I/O.
	Map() (*model.Job, error)
}

// Source fetches one page of listings: it acquires whatever credentials it
// needs and then searches. Errors wrap ErrAuthExchange or ErrSourceFetch.
type Source interface {
	Name() string
	Fetch(ctx context.Context, q Query) ([]Listing, error)
}

// Store is the dedup/upsert gateway.
type Store interface {
	UpsertJob(ctx context.Context, job *model.Job) (created bool, err error)
	RecordRun(ctx context.Context, run *model.ImportRun) error
}

// ParseRange parses an inclusive "first-last" range.
func ParseRange(r string) (first, last int, err error) {
	a, b, ok := strings.Cut(strings.TrimSpace(r), "-")
	if !ok {
		return 0, 0, Misconfigured("range %q is not of the form first-last", r)
	}
	if first, err = strconv.Atoi(strings.TrimSpace(a)); err != nil {
		return 0, 0, Misconfigured("range %q: %v", r, err)
	}
	if last, err = strconv.Atoi(strings.TrimSpace(b)); err != nil {
		return 0, 0, Misconfigured("range %q: %v", r, err)
	}
	if first < 0 || last < first {
		return 0, 0, Misconfigured("range %q is empty or negative", r)
	}
	return first, last, nil
}

// Validate checks the query before any network call.
func (q Query) Validate() error {
	if strings.TrimSpace(q.Keywords) == "" {
		return Misconfigured("keywords are required")
	}
	if _, _, err := ParseRange(q.Range); err != nil {
		return err
	}
	return nil
}

func (q Query) String() string {
	return fmt.Sprintf("keywords=%q experience=%d range=%s", q.Keywords, q.Experience, q.Range)
}

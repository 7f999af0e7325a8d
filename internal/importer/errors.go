package importer

import (
	"errors"
	"fmt"
)

// Error kinds of an import run. Configuration, auth and fetch errors abort
// the run; mapping and storage errors only fail the record at hand.
var (
	ErrConfiguration   = errors.New("configuration error")
	ErrAuthExchange    = errors.New("auth exchange rejected")
	ErrSourceFetch     = errors.New("source fetch failed")
	ErrMapping         = errors.New("mapping failed")
	ErrStorageConflict = errors.New("storage conflict")
)

// UpstreamError is a non-2xx answer of an external API.
type UpstreamError struct {
	Kind   error
	Status int
	Body   string
	Err    error
}

func (e *UpstreamError) Error() string {
	msg := e.Kind.Error()
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	if e.Body != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Body)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *UpstreamError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// RecordError is the failure of a single source record.
type RecordError struct {
	ExternalID string
	Stage      string
	Err        error
}

func (e *RecordError) Error() string {
	id := e.ExternalID
	if id == "" {
		id = "<no id>"
	}
	return fmt.Sprintf("record %s (%s): %v", id, e.Stage, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// MissingField reports a required source field that is absent.
func MissingField(field string) error {
	return fmt.Errorf("%w: missing required field %q", ErrMapping, field)
}

// Misconfigured reports a missing or invalid setting.
func Misconfigured(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

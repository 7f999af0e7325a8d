package importer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpstreamError(t *testing.T) {
	err := error(&UpstreamError{Kind: ErrAuthExchange, Status: 401, Body: `{"error":"invalid_client"}`})

	assert.ErrorIs(t, err, ErrAuthExchange)
	assert.NotErrorIs(t, err, ErrSourceFetch)
	assert.Equal(t, `auth exchange rejected: status 401: {"error":"invalid_client"}`, err.Error())

	var uerr *UpstreamError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 401, uerr.Status)
}

func TestUpstreamError_Cause(t *testing.T) {
	err := error(&UpstreamError{Kind: ErrSourceFetch, Err: context.DeadlineExceeded})

	assert.ErrorIs(t, err, ErrSourceFetch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Contains(t, err.Error(), "deadline exceeded")
}

func TestRecordError(t *testing.T) {
	err := error(&RecordError{ExternalID: "ft-1", Stage: "map", Err: MissingField("intitule")})

	assert.ErrorIs(t, err, ErrMapping)
	assert.Equal(t, `record ft-1 (map): mapping failed: missing required field "intitule"`, err.Error())

	anonymous := &RecordError{Stage: "map", Err: errors.New("boom")}
	assert.Contains(t, anonymous.Error(), "<no id>")
}

func TestMisconfigured(t *testing.T) {
	err := Misconfigured("missing %s", "SECRET")
	assert.ErrorIs(t, err, ErrConfiguration)
	assert.Equal(t, "configuration error: missing SECRET", err.Error())
}

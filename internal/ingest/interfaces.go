package ingest

import (
	"context"

	"github.com/gauransh/gitingest/internal/model"
)

// Ingester defines the interface for submitting an ingest request.
type Ingester interface {
	// Submit posts the request to the server and returns the parsed result.
	// The returned error covers transport failures and non-success server
	// responses; the caller's view stays untouched on error.
	Submit(ctx context.Context, req model.IngestRequest) (*Result, error)

	// Endpoint returns the URL submissions are posted to.
	Endpoint() string
}

// Result carries the raw response page and the digest extracted from it.
type Result struct {
	RequestID string
	HTML      string
	Digest    model.Digest
}

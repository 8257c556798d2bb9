package ingest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gauransh/gitingest/internal/model"
)

// Timeout constants
const (
	DefaultRequestTimeout = 120 * time.Second
)

// Request headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Response size guard: result pages for large repositories run to tens of
// megabytes; anything past this is a server bug, not a digest.
const maxResponseBytes = 256 << 20

// Client submits ingest requests to a single gitingest endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a client posting to the root of baseURL. A zero timeout
// selects the default.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	return &Client{
		endpoint:   normalizeEndpoint(baseURL),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL submissions are posted to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Submit posts the request as a multipart form and extracts the digest from
// the returned HTML page.
func (c *Client) Submit(ctx context.Context, req model.IngestRequest) (*Result, error) {
	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err := writeSnapshot(writer, req); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("finalize form body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set(HeaderRequestID, req.ID)

	log.Printf("Submitting ingest request id=%s source=%s position=%d endpoint=%s",
		req.ID, req.Source, req.SliderPosition, c.endpoint)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("post ingest request: %w", err)
	}
	defer resp.Body.Close()

	page, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}

	digest, err := ExtractDigest(string(page))
	if err != nil {
		return nil, fmt.Errorf("parse response page: %w", err)
	}

	log.Printf("Ingest request id=%s completed: %d response bytes, summary %d chars",
		req.ID, len(page), len(digest.Summary))

	return &Result{
		RequestID: req.ID,
		HTML:      string(page),
		Digest:    digest,
	}, nil
}

// normalizeEndpoint resolves a base URL to the single submission endpoint at
// its root path. Bare hosts get an https scheme.
func normalizeEndpoint(baseURL string) string {
	trimmed := strings.TrimSpace(baseURL)
	if trimmed == "" {
		return ""
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	if parsed.Path == "" {
		parsed.Path = "/"
	}

	return parsed.String()
}

// Package webhook posts search reports to HTTP endpoints.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ccollicutt/minigrep/pkg/output"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// RunIDHeader carries the report's run ID so receivers can deduplicate retries.
const RunIDHeader = "X-Minigrep-Run-Id"

const (
	userAgent       = "minigrep-webhook"
	maxResponseBody = 1 << 20
)

// Client sends search reports to webhook endpoints.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new webhook client.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{},
	}
}

// SendOptions configures a webhook request.
type SendOptions struct {
	URL     string
	Token   string        // Bearer token (optional)
	Timeout time.Duration // Request timeout (uses DefaultTimeout if zero)
}

// Response contains the result of a webhook request.
type Response struct {
	StatusCode int
	Body       string
	Duration   time.Duration
	Error      error
}

// Success returns true if the webhook was sent successfully (2xx status).
func (r *Response) Success() bool {
	return r.Error == nil && r.StatusCode >= 200 && r.StatusCode < 300
}

// Send posts a search report to a webhook endpoint. Failures are reported
// in the Response rather than returned, so one bad endpoint never aborts a run.
func (c *Client) Send(ctx context.Context, report *output.Report, opts SendOptions) *Response {
	start := time.Now()

	resp, err := c.deliver(ctx, report, opts)
	if resp == nil {
		resp = &Response{}
	}
	resp.Error = err
	resp.Duration = time.Since(start)
	return resp
}

// deliver performs the POST. A non-nil Response is returned whenever the
// endpoint answered, even with an error status.
func (c *Client) deliver(ctx context.Context, report *output.Report, opts SendOptions) (*Response, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := newRequest(ctx, report, opts)
	if err != nil {
		return nil, err
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "post to %s", req.URL.Redacted())
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBody))
	if err != nil {
		return nil, errors.Wrap(err, "read response")
	}

	resp := &Response{StatusCode: httpResp.StatusCode, Body: string(body)}
	if httpResp.StatusCode >= http.StatusBadRequest {
		return resp, errors.Newf("webhook returned status %d", httpResp.StatusCode)
	}
	return resp, nil
}

// newRequest encodes report and builds the authenticated POST request.
func newRequest(ctx context.Context, report *output.Report, opts SendOptions) (*http.Request, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return nil, errors.Wrap(err, "marshal report")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "create request")
	}

	header := req.Header
	header.Set("Content-Type", "application/json")
	header.Set("User-Agent", userAgent)
	header.Set(RunIDHeader, report.Metadata.RunID)
	if opts.Token != "" {
		header.Set("Authorization", "Bearer "+opts.Token)
	}
	return req, nil
}

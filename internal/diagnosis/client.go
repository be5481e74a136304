package diagnosis

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchResult carries the raw page body together with the transfer metadata
// the analyzers need. Header reflects what the server sent: when the
// transport decompressed the response transparently, the stripped
// Content-Encoding is restored.
type FetchResult struct {
	Body       io.ReadCloser
	StatusCode int
	Header     http.Header
}

// Fetcher defines how the engine retrieves the target page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// limitedReadCloser reads from a LimitReader but closes the original body.
type limitedReadCloser struct {
	io.Reader
	io.Closer
}

// HTTPClient implements Fetcher using a real HTTP client.
type HTTPClient struct {
	client *http.Client
}

const (
	maxRedirects = 5
	userAgent    = "WebsiteDiagnosisBot/1.0"
)

var (
	errTooManyRedirects = errors.New("too many redirects")
	errBlockedRedirect  = errors.New("redirect to non-http(s) scheme blocked")
)

// NewHTTPClient returns a Fetcher backed by an http.Client with the given
// timeout, a dedicated transport that blocks connections to private/reserved
// IP ranges, and redirect validation that prevents SSRF via redirect chains.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext:         safeDialer().DialContext,
				MaxConnsPerHost:     10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
			CheckRedirect: safeRedirectPolicy,
		},
	}
}

// safeRedirectPolicy validates redirect targets and limits the redirect chain length.
func safeRedirectPolicy(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return fmt.Errorf("%w: stopped after %d", errTooManyRedirects, maxRedirects)
	}
	if req.URL.Scheme != "http" && req.URL.Scheme != "https" {
		return fmt.Errorf("%w: %s", errBlockedRedirect, req.URL.Scheme)
	}
	return nil
}

// Fetch retrieves the page at the given URL.
func (c *HTTPClient) Fetch(ctx context.Context, targetURL string) (*FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.client.Do(req) //nolint:bodyclose // body is returned to caller via limitedReadCloser
	if err != nil {
		return nil, err
	}

	header := resp.Header
	if resp.Uncompressed {
		// The transport negotiated gzip and decompressed transparently,
		// stripping Content-Encoding. Restore it so the compression check
		// still sees what the server sent; the body length stays the
		// decompressed size.
		header = header.Clone()
		header.Set("Content-Encoding", "gzip")
	}

	// Limit response body to 10 MB to prevent memory exhaustion from
	// extremely large or infinite responses.
	const maxResponseBody = 10 << 20
	limited := &limitedReadCloser{
		Reader: io.LimitReader(resp.Body, maxResponseBody),
		Closer: resp.Body,
	}

	return &FetchResult{
		Body:       limited,
		StatusCode: resp.StatusCode,
		Header:     header,
	}, nil
}

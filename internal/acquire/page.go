// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/net/html/charset"

	"github.com/pdiddy/ivpatents/pkg/types"
)

// googlePatentsBase is the Google Patents page base URL. Declared as a var
// so tests can substitute an httptest server.
var googlePatentsBase = "https://patents.google.com/patent/"

// pageLanguage selects the English rendering of a patent page.
const pageLanguage = "en"

// ErrHTTPStatus matches any StatusError through errors.Is.
var ErrHTTPStatus = errors.New("unexpected HTTP status")

// StatusError reports a page request that completed with a non-2xx status.
// It is the only fetch failure the batch loop recovers from.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
}

// Is reports whether target is ErrHTTPStatus.
func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// PageURL returns the Google Patents page URL for a patent identifier.
func PageURL(patentID string) string {
	return googlePatentsBase + url.PathEscape(strings.TrimSpace(patentID)) + "/" + pageLanguage
}

// FetchPage retrieves the patent page for patentID and returns its body
// decoded to UTF-8. A non-2xx response yields a *StatusError; transport
// failures are returned wrapped and are not recoverable by the caller.
func FetchPage(ctx context.Context, client *http.Client, patentID string, cfg types.HTTPConfig) ([]byte, error) {
	pageURL := PageURL(patentID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
	req.Header.Set("Accept", "text/html")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: pageURL, StatusCode: resp.StatusCode}
	}

	body, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", pageURL, err)
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pageURL, err)
	}
	return data, nil
}

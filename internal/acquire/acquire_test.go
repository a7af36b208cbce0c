// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package acquire

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/ivpatents/internal/dataset"
	"github.com/pdiddy/ivpatents/internal/logging"
	"github.com/pdiddy/ivpatents/pkg/types"
)

// patentPage renders a minimal Google Patents page for one patent.
func patentPage(assignee, filed, published, granted string) string {
	return fmt.Sprintf(`<html><body><dl>
<dd itemprop="assigneeOriginal">%s</dd>
<dd><time itemprop="filingDate">%s</time></dd>
<dd><time itemprop="publicationDate">%s</time></dd>
<dd><time itemprop="grantDate">%s</time></dd>
</dl></body></html>`, assignee, filed, published, granted)
}

// newPatentServer serves pages by patent ID, 404 for unknown IDs, and counts
// every request.
func newPatentServer(t *testing.T, pages map[string]string, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		id := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/patent/"), "/en")
		page, ok := pages[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		fmt.Fprint(w, page)
	}))
}

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "input.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testFetchConfig(dir, input string) types.FetchConfig {
	return types.FetchConfig{
		HTTPConfig: testHTTPConfig(),
		InputPath:  input,
		OutputPath: filepath.Join(dir, "out.txt"),
	}
}

const batchInput = `Reference,Title,Country
US1,First widget,US
EP2,European gadget,EP
US3,Third widget,US
US404,Missing page,US
US5,Fifth widget,US
`

func batchPages() map[string]string {
	return map[string]string{
		"US1": patentPage("Stanford University", "2001-01-01", "2002-01-01", "2003-01-01"),
		"EP2": patentPage("Should Not Be Fetched", "", "", ""),
		"US3": patentPage("", "2004-01-01", "2005-01-01", ""),
		"US5": patentPage("Acme Corp", "2006-01-01", "2007-01-01", "2008-01-01"),
	}
}

func TestProcessBatchWritesUSRowsInOrder(t *testing.T) {
	var calls int32
	ts := newPatentServer(t, batchPages(), &calls)
	defer ts.Close()
	defer overrideBaseURL(ts.URL)()

	dir := t.TempDir()
	cfg := testFetchConfig(dir, writeInput(t, dir, batchInput))
	var buf bytes.Buffer

	result, err := ProcessBatch(context.Background(), ts.Client(), cfg, logging.Discard(), &buf)
	require.NoError(t, err)

	assert.False(t, result.AlreadyDone)
	assert.Equal(t, 3, result.Written)
	assert.Equal(t, 1, result.FetchFailed)
	assert.Equal(t, 0, result.Skipped)
	assert.Equal(t, 4, result.Total())
	assert.True(t, result.HasFailures())
	// Four US rows, the EP row is never requested.
	assert.Equal(t, int32(4), atomic.LoadInt32(&calls))

	patents, err := dataset.ReadTableFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Len(t, patents, 3)
	assert.Equal(t, "US1", patents[0].ID)
	assert.Equal(t, "First widget", patents[0].Title)
	assert.Equal(t, "Stanford University", patents[0].AssigneeOriginal)
	assert.Equal(t, "2003-01-01", patents[0].GrantDate)
	assert.Equal(t, "US3", patents[1].ID)
	assert.False(t, patents[1].HasAssignee())
	assert.Equal(t, "US5", patents[2].ID)

	out := buf.String()
	assert.Contains(t, out, "fetching: "+ts.URL+"/patent/US1/en")
	assert.Contains(t, out, "Skipped total of 0 lines")
	assert.Contains(t, out, "patent parsing took")
}

func TestProcessBatchSkipsInvalidUTF8(t *testing.T) {
	var calls int32
	ts := newPatentServer(t, batchPages(), &calls)
	defer ts.Close()
	defer overrideBaseURL(ts.URL)()

	dir := t.TempDir()
	input := "Reference,Title,Country\nUS1,Caf\xe9 widget,US\nUS3,Fine,US\n"
	cfg := testFetchConfig(dir, writeInput(t, dir, input))
	var buf bytes.Buffer

	result, err := ProcessBatch(context.Background(), ts.Client(), cfg, logging.Discard(), &buf)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.Written)
	assert.Contains(t, buf.String(), "skipping: US1")
	assert.Contains(t, buf.String(), "Skipped total of 1 lines")

	patents, err := dataset.ReadTableFile(cfg.OutputPath)
	require.NoError(t, err)
	require.Len(t, patents, 1)
	assert.Equal(t, "US3", patents[0].ID)
}

func TestProcessBatchExistingOutputIsNoop(t *testing.T) {
	var calls int32
	ts := newPatentServer(t, batchPages(), &calls)
	defer ts.Close()
	defer overrideBaseURL(ts.URL)()

	dir := t.TempDir()
	cfg := testFetchConfig(dir, writeInput(t, dir, batchInput))
	existing := []byte(dataset.Header() + "US9\tdone\t\t\t\t\n")
	require.NoError(t, os.WriteFile(cfg.OutputPath, existing, 0o644))
	var buf bytes.Buffer

	result, err := ProcessBatch(context.Background(), ts.Client(), cfg, logging.Discard(), &buf)
	require.NoError(t, err)

	assert.True(t, result.AlreadyDone)
	assert.Equal(t, 0, result.Total())
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
	assert.Contains(t, buf.String(), "output exists")

	data, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, existing, data)
}

func TestProcessBatchRerunAfterCompletionFetchesNothing(t *testing.T) {
	var calls int32
	ts := newPatentServer(t, batchPages(), &calls)
	defer ts.Close()
	defer overrideBaseURL(ts.URL)()

	dir := t.TempDir()
	cfg := testFetchConfig(dir, writeInput(t, dir, batchInput))

	_, err := ProcessBatch(context.Background(), ts.Client(), cfg, logging.Discard(), &bytes.Buffer{})
	require.NoError(t, err)
	first, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	before := atomic.LoadInt32(&calls)

	result, err := ProcessBatch(context.Background(), ts.Client(), cfg, logging.Discard(), &bytes.Buffer{})
	require.NoError(t, err)
	assert.True(t, result.AlreadyDone)
	assert.Equal(t, before, atomic.LoadInt32(&calls))

	second, err := os.ReadFile(cfg.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProcessBatchTransportErrorAborts(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	client := ts.Client()
	ts.Close()
	defer overrideBaseURL(url)()

	dir := t.TempDir()
	cfg := testFetchConfig(dir, writeInput(t, dir, batchInput))

	_, err := ProcessBatch(context.Background(), client, cfg, logging.Discard(), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "US1")

	// No partial table is left behind, so the next run starts over.
	_, statErr := os.Stat(cfg.OutputPath)
	assert.True(t, os.IsNotExist(statErr))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "only the input file should remain")
}

func TestProcessBatchCancelledContext(t *testing.T) {
	var calls int32
	ts := newPatentServer(t, batchPages(), &calls)
	defer ts.Close()
	defer overrideBaseURL(ts.URL)()

	dir := t.TempDir()
	cfg := testFetchConfig(dir, writeInput(t, dir, batchInput))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ProcessBatch(ctx, ts.Client(), cfg, logging.Discard(), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}

func TestProcessBatchMissingInput(t *testing.T) {
	dir := t.TempDir()
	cfg := testFetchConfig(dir, filepath.Join(dir, "absent.csv"))

	_, err := ProcessBatch(context.Background(), http.DefaultClient, cfg, logging.Discard(), &bytes.Buffer{})
	assert.Error(t, err)
}

package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// stubFetcher serves canned bodies per URL without touching the network.
type stubFetcher struct {
	bodies map[string]string
	errs   map[string]error
}

func (s *stubFetcher) Download(_ context.Context, url string) (io.ReadCloser, error) {
	if err, ok := s.errs[url]; ok {
		return nil, err
	}
	body, ok := s.bodies[url]
	if !ok {
		return nil, io.EOF
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func (s *stubFetcher) DownloadIfChanged(ctx context.Context, url, etag string) (io.ReadCloser, string, bool, error) {
	body, err := s.Download(ctx, url)
	return body, "", true, err
}

func TestSheetsClientExportURL(t *testing.T) {
	t.Parallel()

	c := NewSheetsClient(&stubFetcher{}, "SHEET123")
	assert.Equal(t,
		"https://docs.google.com/spreadsheets/d/SHEET123/export?format=csv&gid=42",
		c.ExportURL("42"),
	)
}

func TestSheetsClientFetchWorkbook(t *testing.T) {
	t.Parallel()

	stub := &stubFetcher{bodies: map[string]string{}}
	c := NewSheetsClient(stub, "SHEET123")
	stub.bodies[c.ExportURL("1")] = "Advisor,FYC\nAna Cruz,1000\n"
	stub.bodies[c.ExportURL("2")] = "Advisors,Unit\nAna Cruz,Alpha\n"
	stub.bodies[c.ExportURL("3")] = "Month,Advisor,FYC\n2026-01,Ana Cruz,500\n"

	wb, err := c.FetchWorkbook(context.Background(), "1", "2", "3")
	require.NoError(t, err)

	require.Len(t, wb.Sales, 2)
	assert.Equal(t, []string{"Ana Cruz", "1000"}, wb.Sales[1])
	require.Len(t, wb.Roster, 2)
	require.Len(t, wb.Dpr, 2)
}

func TestSheetsClientFetchWorkbookPartialFailure(t *testing.T) {
	t.Parallel()

	stub := &stubFetcher{bodies: map[string]string{}, errs: map[string]error{}}
	c := NewSheetsClient(stub, "SHEET123")
	stub.bodies[c.ExportURL("1")] = "Advisor\n"
	stub.bodies[c.ExportURL("3")] = "Month\n"
	stub.errs[c.ExportURL("2")] = io.ErrUnexpectedEOF

	_, err := c.FetchWorkbook(context.Background(), "1", "2", "3")
	assert.Error(t, err, "one bad worksheet fails the whole fetch")
}

func TestHTTPFetcherRetriesServerErrors(t *testing.T) {
	t.Parallel()

	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		if hits < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("a,b\n"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{
		Timeout:    5 * time.Second,
		MaxRetries: 5,
		RateLimiters: map[string]*rate.Limiter{
			strings.TrimPrefix(srv.URL, "http://"): rate.NewLimiter(rate.Inf, 1),
		},
	})

	body, err := f.Download(context.Background(), srv.URL)
	require.NoError(t, err)
	defer body.Close() //nolint:errcheck

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n", string(data))
	assert.Equal(t, 3, hits)
}

func TestHTTPFetcherDownloadIfChangedNotModified(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("If-None-Match") == `"v1"` {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", `"v1"`)
		_, _ = w.Write([]byte("fresh"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPOptions{Timeout: 5 * time.Second})

	body, etag, changed, err := f.DownloadIfChanged(context.Background(), srv.URL, "")
	require.NoError(t, err)
	require.True(t, changed)
	data, _ := io.ReadAll(body)
	_ = body.Close()
	assert.Equal(t, "fresh", string(data))
	assert.Equal(t, `"v1"`, etag)

	body2, etag2, changed2, err := f.DownloadIfChanged(context.Background(), srv.URL, `"v1"`)
	require.NoError(t, err)
	assert.False(t, changed2)
	assert.Nil(t, body2)
	assert.Equal(t, `"v1"`, etag2)
}

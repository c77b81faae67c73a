// Package fetcher loads raw spreadsheet grids from their sources: the
// Google Sheets CSV export endpoint over HTTP, and local CSV or XLSX
// snapshots. Every source yields the same [][]string grid shape, so the
// parsing layer never knows where a grid came from.
package fetcher

import (
	"context"
	"io"
)

// Fetcher downloads remote data.
type Fetcher interface {
	// Download fetches the URL and returns the response body.
	Download(ctx context.Context, url string) (io.ReadCloser, error)

	// DownloadIfChanged fetches the URL only if the ETag has changed.
	// Returns (body, newETag, changed, error). When unchanged, body is
	// nil and changed is false.
	DownloadIfChanged(ctx context.Context, url string, etag string) (io.ReadCloser, string, bool, error)
}

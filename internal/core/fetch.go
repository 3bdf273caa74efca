package core

// fetch.go downloads a public spreadsheet as CSV and parses it.
//
// There is exactly one attempt per call. Failures surface to the caller,
// who may ask again (the "Tentar novamente" button); nothing is retried or
// cached here.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultSheetBaseURL is the Google Sheets document root.
const DefaultSheetBaseURL = "https://docs.google.com/spreadsheets/d"

// DefaultMaxSheetBytes caps a single payload (10MB).
const DefaultMaxSheetBytes = 10 << 20

var (
	// ErrSheetUnavailable covers network failures and non-2xx responses.
	ErrSheetUnavailable = errors.New("sheet unavailable")

	// ErrPayloadTooLarge is returned when a payload exceeds the byte limit.
	ErrPayloadTooLarge = errors.New("sheet payload too large")
)

// SheetURL builds the CSV export URL for ref.
// Without a sheet name the default tab is exported; with one, the
// visualization endpoint is used to select the tab by name.
func SheetURL(baseURL string, ref SheetRef) string {
	base := strings.TrimRight(baseURL, "/") + "/" + url.PathEscape(ref.SheetID)
	if ref.SheetName == "" {
		return base + "/export?format=csv"
	}
	return base + "/gviz/tq?tqx=out:csv&sheet=" + url.QueryEscape(ref.SheetName)
}

// SourceConfig configures an HTTPSheetSource. Zero values fall back to defaults.
type SourceConfig struct {
	BaseURL       string
	Timeout       time.Duration // 0 disables the per-fetch timeout
	MaxBytes      int64
	MaxConcurrent int
	MaxWait       time.Duration
	Client        *http.Client
}

// HTTPSheetSource fetches sheets over HTTP.
// Identical fetches that overlap in time share one download; each caller
// still gets its own freshly parsed Table.
type HTTPSheetSource struct {
	client   *http.Client
	baseURL  string
	timeout  time.Duration
	maxBytes int64
	limiter  *FetchLimiter
	group    singleflight.Group
}

// NewHTTPSheetSource creates a sheet source from cfg.
func NewHTTPSheetSource(cfg SourceConfig) *HTTPSheetSource {
	client := cfg.Client
	if client == nil {
		client = http.DefaultClient
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultSheetBaseURL
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxSheetBytes
	}

	return &HTTPSheetSource{
		client:   client,
		baseURL:  baseURL,
		timeout:  cfg.Timeout,
		maxBytes: maxBytes,
		limiter:  NewFetchLimiter(cfg.MaxConcurrent, cfg.MaxWait),
	}
}

// Limiter exposes the fetch limiter for monitoring and shutdown.
func (s *HTTPSheetSource) Limiter() *FetchLimiter {
	return s.limiter
}

// Fetch downloads and parses the sheet identified by ref.
func (s *HTTPSheetSource) Fetch(ctx context.Context, ref SheetRef) (*Table, error) {
	if ref.SheetID == "" {
		return nil, fmt.Errorf("%w: empty sheet id", ErrSheetUnavailable)
	}
	target := SheetURL(s.baseURL, ref)

	ch := s.group.DoChan(target, func() (any, error) {
		// The shared download outlives any single caller's request.
		dctx := context.WithoutCancel(ctx)
		if s.timeout > 0 {
			var cancel context.CancelFunc
			dctx, cancel = context.WithTimeout(dctx, s.timeout)
			defer cancel()
		}
		return s.download(dctx, target)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return ParseTable(res.Val.(string)), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// download performs the single GET and returns the decoded body.
func (s *HTTPSheetSource) download(ctx context.Context, target string) (string, error) {
	if err := s.limiter.Acquire(ctx); err != nil {
		return "", err
	}
	defer s.limiter.Release()

	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("build sheet request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSheetUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("%w: status %d", ErrSheetUnavailable, resp.StatusCode)
	}

	limited := &io.LimitedReader{R: resp.Body, N: s.maxBytes + 1}
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	body, err := io.ReadAll(transform.NewReader(limited, decoder))
	if err != nil {
		return "", fmt.Errorf("%w: read body: %w", ErrSheetUnavailable, err)
	}
	if limited.N <= 0 {
		return "", fmt.Errorf("%w: limit %d bytes", ErrPayloadTooLarge, s.maxBytes)
	}

	slog.Debug("sheet fetched",
		"url", target,
		"bytes", len(body),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return string(body), nil
}

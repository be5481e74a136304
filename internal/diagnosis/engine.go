package diagnosis

import (
	"bytes"
	"context"
	"io"
	"math"
	"net/url"
	"sync"
	"time"

	"github.com/bscre8/website-diagnosis/internal/model"
	"github.com/bscre8/website-diagnosis/internal/platform/errs"
)

// Category weights for the overall score. Fixed, not configurable.
const (
	weightSEO           = 0.3
	weightSecurity      = 0.3
	weightPerformance   = 0.2
	weightAccessibility = 0.2
)

// Engine runs the full diagnosis pipeline for a single URL: fetch, snapshot,
// four category analyzers, weighted aggregation.
type Engine struct {
	fetcher  Fetcher
	verifier TLSVerifier
}

// NewEngine returns an Engine backed by the given Fetcher and TLS verifier.
func NewEngine(fetcher Fetcher, verifier TLSVerifier) *Engine {
	return &Engine{
		fetcher:  fetcher,
		verifier: verifier,
	}
}

// Diagnose fetches a URL once, captures the snapshot, and scores it across
// all four categories. The snapshot is never re-fetched mid-analysis; the
// analyzers all see the identical capture. A fetch failure aborts the whole
// diagnosis — no partial result is ever returned.
func (e *Engine) Diagnose(ctx context.Context, targetURL string) (*model.DiagnosisResult, error) {
	parsed, err := url.Parse(targetURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
			Cause:   err,
		}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Invalid URL format. Please ensure you entered a valid URL (e.g., https://example.com).",
		}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, &errs.AppError{
			Kind:    errs.InvalidInput,
			Message: "Only http and https URLs are supported.",
		}
	}

	// Elapsed time covers the full body download, matching what a visitor
	// waits for, not just the response headers.
	start := time.Now()

	res, err := e.fetcher.Fetch(ctx, targetURL)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The provided URL could not be reached. Check the address.",
			Cause:   err,
		}
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode >= 400 {
		return nil, &errs.AppError{
			Kind:           errs.Unreachable,
			UpstreamStatus: res.StatusCode,
			Message:        "The provided URL returned an error status.",
		}
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.Unreachable,
			Message: "The page body could not be read completely.",
			Cause:   err,
		}
	}
	elapsed := time.Since(start)

	snap, err := NewSnapshot(parsed, bytes.NewReader(body), res.Header, len(body), elapsed)
	if err != nil {
		return nil, &errs.AppError{
			Kind:    errs.ParsingFailed,
			Message: "Failed to parse the HTML content.",
			Cause:   err,
		}
	}

	// The four analyzers are independent and read-only over the snapshot;
	// they run concurrently into disjoint result slots.
	var seo, sec, perf, acc model.CategoryResult
	var wg sync.WaitGroup
	wg.Go(func() { seo = analyzeSEO(snap) })
	wg.Go(func() { sec = analyzeSecurity(ctx, snap, e.verifier) })
	wg.Go(func() { perf = analyzePerformance(snap) })
	wg.Go(func() { acc = analyzeAccessibility(snap) })
	wg.Wait()

	return newResult(targetURL, seo, sec, perf, acc), nil
}

// newResult assembles the immutable diagnosis record with the weighted
// overall score rounded to one decimal place.
func newResult(targetURL string, seo, sec, perf, acc model.CategoryResult) *model.DiagnosisResult {
	overall := weightSEO*float64(seo.Score) +
		weightSecurity*float64(sec.Score) +
		weightPerformance*float64(perf.Score) +
		weightAccessibility*float64(acc.Score)

	return &model.DiagnosisResult{
		URL:           targetURL,
		Timestamp:     time.Now().Format(time.RFC3339),
		SEO:           seo,
		Security:      sec,
		Performance:   perf,
		Accessibility: acc,
		Scores: map[model.Category]int{
			model.CategorySEO:           seo.Score,
			model.CategorySecurity:      sec.Score,
			model.CategoryPerformance:   perf.Score,
			model.CategoryAccessibility: acc.Score,
		},
		OverallScore: math.Round(overall*10) / 10,
	}
}

package analyzer

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bscre8/website-diagnosis/internal/model"
	"github.com/bscre8/website-diagnosis/internal/platform/errs"
	"github.com/bscre8/website-diagnosis/internal/platform/requestid"
)

// Service orchestrates a DiagnosisProvider and logs results.
type Service struct {
	provider DiagnosisProvider
	logger   *slog.Logger
}

// NewService creates a Service backed by the given provider.
func NewService(provider DiagnosisProvider, logger *slog.Logger) *Service {
	return &Service{provider: provider, logger: logger}
}

// Diagnose delegates to the provider and logs the outcome.
func (s *Service) Diagnose(ctx context.Context, targetURL string) (*model.DiagnosisResult, error) {
	logger := s.logger.With("url", targetURL, "request_id", requestid.FromContext(ctx))

	result, err := s.provider.Diagnose(ctx, targetURL)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			err = &errs.AppError{
				Kind:    errs.Timeout,
				Message: "Diagnosis timed out. The target URL may be slow to respond.",
				Cause:   err,
			}
		}

		attrs := []any{"error", err}
		var appErr *errs.AppError
		if errors.As(err, &appErr) && appErr.UpstreamStatus != 0 {
			attrs = append(attrs, "target_status", appErr.UpstreamStatus)
		}
		logger.Error("diagnosis failed", attrs...)
		return nil, err
	}

	logger.Info("diagnosis complete",
		"overall_score", result.OverallScore,
		"seo_score", result.SEO.Score,
		"security_score", result.Security.Score,
		"performance_score", result.Performance.Score,
		"accessibility_score", result.Accessibility.Score,
		"issues", len(result.SEO.Issues)+len(result.Security.Issues)+
			len(result.Performance.Issues)+len(result.Accessibility.Issues),
	)
	return result, nil
}

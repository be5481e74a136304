package analyzer

import (
	"context"

	"github.com/bscre8/website-diagnosis/internal/model"
)

// DiagnosisProvider defines the contract for any diagnosis engine.
type DiagnosisProvider interface {
	Diagnose(ctx context.Context, targetURL string) (*model.DiagnosisResult, error)
}

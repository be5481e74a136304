package analyzer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bscre8/website-diagnosis/internal/diagnosis"
	"github.com/bscre8/website-diagnosis/internal/history"
	"github.com/bscre8/website-diagnosis/internal/model"
	"github.com/bscre8/website-diagnosis/internal/platform/errs"
)

const (
	diagnoseTimeout = 60 * time.Second
	historyLimit    = 50
)

var errURLRequired = errors.New("the \"url\" field is required")

// historyStore is the subset of the history store the transport needs.
type historyStore interface {
	Save(ctx context.Context, res *model.DiagnosisResult) (string, error)
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
	Get(ctx context.Context, id string) (*model.DiagnosisResult, error)
}

// Transport handles HTTP requests for page diagnosis and history lookup.
type Transport struct {
	service *Service
	store   historyStore
	logger  *slog.Logger
}

// NewTransport creates an HTTP transport backed by the given service and store.
func NewTransport(service *Service, store historyStore, logger *slog.Logger) *Transport {
	return &Transport{service: service, store: store, logger: logger}
}

// RegisterRoutes attaches the transport's handlers to the given mux.
func (t *Transport) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /diagnose", t.handleDiagnose)
	mux.HandleFunc("GET /history", t.handleHistory)
	mux.HandleFunc("GET /history/{id}", t.handleHistoryGet)
}

type diagnoseRequest struct {
	URL string `json:"url"`
}

func (r diagnoseRequest) validate() error {
	if r.URL == "" {
		return errURLRequired
	}
	return nil
}

// diagnoseResponse is the result record plus the derived recommendation
// ranking. Recommendations are recomputed per request, never stored.
type diagnoseResponse struct {
	*model.DiagnosisResult
	Recommendations []model.RecommendationEntry `json:"recommendations"`
	Message         string                      `json:"message,omitempty"`
}

func (t *Transport) handleDiagnose(w http.ResponseWriter, r *http.Request) {
	const maxRequestBody = 1 << 20 // 1 MB
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req diagnoseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.renderError(w, http.StatusBadRequest, "Invalid request body. Please send a JSON object with a \"url\" field.")
		return
	}

	if err := req.validate(); err != nil {
		t.renderError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), diagnoseTimeout)
	defer cancel()

	result, err := t.service.Diagnose(ctx, req.URL)
	if err != nil {
		t.handleServiceError(w, err)
		return
	}

	// Persistence is best-effort: a storage failure must not lose an
	// already-computed diagnosis.
	if _, err := t.store.Save(ctx, result); err != nil {
		t.logger.Error("failed to persist diagnosis", "error", err, "url", req.URL)
	}

	resp := diagnoseResponse{
		DiagnosisResult: result,
		Recommendations: diagnosis.Recommend(result),
	}
	if len(resp.Recommendations) == 0 {
		resp.Message = diagnosis.NoIssuesMessage
	}

	t.renderJSON(w, http.StatusOK, resp)
}

func (t *Transport) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := t.store.Recent(r.Context(), historyLimit)
	if err != nil {
		t.logger.Error("failed to list history", "error", err)
		t.renderError(w, http.StatusInternalServerError, "Could not read diagnosis history.")
		return
	}
	if entries == nil {
		entries = []history.Entry{}
	}
	t.renderJSON(w, http.StatusOK, entries)
}

func (t *Transport) handleHistoryGet(w http.ResponseWriter, r *http.Request) {
	result, err := t.store.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, history.ErrNotFound) {
		t.renderError(w, http.StatusNotFound, "No diagnosis record with that id.")
		return
	}
	if err != nil {
		t.logger.Error("failed to load history record", "error", err)
		t.renderError(w, http.StatusInternalServerError, "Could not read the diagnosis record.")
		return
	}
	t.renderJSON(w, http.StatusOK, result)
}

func (t *Transport) handleServiceError(w http.ResponseWriter, err error) {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch appErr.Kind {
		case errs.InvalidInput:
			status = http.StatusBadRequest
		case errs.Unreachable:
			status = http.StatusBadGateway
		case errs.Timeout:
			status = http.StatusGatewayTimeout
		case errs.ParsingFailed, errs.Unknown:
			// 500 Internal Server Error
		}
		t.renderError(w, status, appErr.Message)
		return
	}

	t.renderError(w, http.StatusInternalServerError, "An unexpected error occurred.")
}

func (t *Transport) renderJSON(w http.ResponseWriter, status int, data any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		t.logger.Error("failed to encode response", "error", err)
		http.Error(w, `{"error":"Internal Server Error"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (t *Transport) renderError(w http.ResponseWriter, status int, message string) {
	t.renderJSON(w, status, model.ErrorResponse{
		Error:      http.StatusText(status),
		StatusCode: status,
		Message:    message,
	})
}

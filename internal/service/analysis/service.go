// Package analysis orchestrates the sustainability-analysis pipeline:
// compose a prompt, attempt one generation round trip, and degrade to the
// offline fallback when the upstream quota is exhausted.
package analysis

import (
	"context"
	"time"

	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/genai"
	"github.com/pradiptars/energimap/internal/pkg/logger"
)

// FallbackDisclaimer is appended to every fallback-generated analysis so
// consumers can tell offline template output from genuine model output.
const FallbackDisclaimer = "\n\n---\n*Analisis ini dibuat menggunakan sistem fallback karena kuota API harian telah tercapai.*"

type Config struct {
	// APIKey is the upstream credential. An empty key fails every request
	// with ConfigurationError before any network call.
	APIKey string
}

type Service struct {
	gen genai.Generator
	cfg Config
}

func NewService(gen genai.Generator, cfg Config) *Service {
	return &Service{gen: gen, cfg: cfg}
}

// Analyze runs one request through the pipeline. Every outcome, success or
// failure, is folded into an AnalysisResult; no raw error crosses this
// boundary. IsFallback is only set on the degraded-success path.
func (s *Service) Analyze(ctx context.Context, req domain.AnalysisRequest) domain.AnalysisResult {
	if s.cfg.APIKey == "" {
		logger.Errorf(ctx, "analysis requested without a configured API key")
		return failure(genai.KindConfiguration, "API key not configured")
	}

	if req.UseContext && req.Snapshot.Empty() {
		logger.Warnf(ctx, "contextual analysis requested over an empty snapshot, scope %q", req.Snapshot.ScopeName)
		return failure(genai.KindInvalidContext, "Data energi masih kosong atau sedang dimuat.")
	}

	prompt := ComposePrompt(req)

	text, err := s.gen.Generate(ctx, prompt)
	if err == nil {
		return domain.AnalysisResult{
			Success:   true,
			Text:      text,
			Timestamp: time.Now().UTC(),
		}
	}

	kind := genai.KindOf(err)
	if kind == genai.KindRateLimited && req.UseContext {
		logger.Warnf(ctx, "quota exceeded, generating fallback analysis for %s", req.EnergyType)
		return domain.AnalysisResult{
			Success:    true,
			Text:       FallbackAnalysis(req.EnergyType, req.Snapshot) + FallbackDisclaimer,
			IsFallback: true,
			Timestamp:  time.Now().UTC(),
		}
	}

	logger.Errorf(ctx, "analysis failed: %s", err.Error())
	return failure(kind, err.Error())
}

func failure(kind genai.ErrorKind, msg string) domain.AnalysisResult {
	return domain.AnalysisResult{
		Success:   false,
		Text:      msg,
		Timestamp: time.Now().UTC(),
		Kind:      string(kind),
	}
}

package controller

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/genai"
)

// Chat runs one sustainability-analysis request through the pipeline and
// maps its outcome onto the HTTP status contract: fallback is a 200 like
// any other success, the error taxonomy gets its own status per kind.
func (c *Controller) Chat(ctx echo.Context) error {
	var req domain.ChatRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	if err := ctx.Validate(&req); err != nil {
		return err
	}

	kind, _ := domain.ParseEnergyKind(req.EnergyType)
	result := c.analysis.Analyze(ctx.Request().Context(), domain.AnalysisRequest{
		EnergyType:   kind,
		UserQuestion: req.Message,
		Snapshot:     req.EnergyData,
		UseContext:   req.UseContext,
	})

	if result.Success {
		return ctx.JSON(http.StatusOK, domain.ChatResponse{
			Success:    true,
			Message:    result.Text,
			Timestamp:  result.Timestamp.Format(time.RFC3339),
			IsFallback: result.IsFallback,
		})
	}

	return ctx.JSON(statusForKind(result.Kind), domain.ChatResponse{
		Success:         false,
		Error:           result.Kind,
		Message:         result.Text,
		Timestamp:       result.Timestamp.Format(time.RFC3339),
		IsQuotaExceeded: result.Kind == string(genai.KindRateLimited),
	})
}

func statusForKind(kind string) int {
	switch genai.ErrorKind(kind) {
	case genai.KindInvalidContext, genai.KindContentFiltered:
		return http.StatusBadRequest
	case genai.KindAuth:
		return http.StatusUnauthorized
	case genai.KindRateLimited:
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

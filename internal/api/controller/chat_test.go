package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pradiptars/energimap/internal/domain"
	"github.com/pradiptars/energimap/internal/pkg/genai"
	"github.com/pradiptars/energimap/internal/service/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatBody(t *testing.T, useContext bool) string {
	t.Helper()
	body, err := sonic.MarshalString(domain.ChatRequest{
		Message:    "Bagaimana kondisi panel?",
		EnergyType: "solar",
		EnergyData: domain.EnergyDataSnapshot{
			ScopeName:          "DKI JAKARTA",
			SolarCapacity:      "850 MW",
			AvgSolarOutput:     94,
			CurrentSolarOutput: 89,
			Efficiency:         77,
		},
		UseContext: useContext,
	})
	require.NoError(t, err)
	return body
}

type testValidator struct {
	validate *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

func performChat(t *testing.T, gen genai.Generator, apiKey, body string) (*httptest.ResponseRecorder, domain.ChatResponse) {
	t.Helper()

	e := echo.New()
	e.Validator = &testValidator{validate: validator.New()}
	cntrl := NewController(nil, analysis.NewService(gen, analysis.Config{APIKey: apiKey}), nil, "")

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := cntrl.Chat(e.NewContext(req, rec))
	require.NoError(t, err)

	var resp domain.ChatResponse
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &resp))
	return rec, resp
}

func TestChat_Success(t *testing.T) {
	gen := &genai.MockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "analisis dari model", nil
		},
	}

	rec, resp := performChat(t, gen, "test-key", chatBody(t, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.False(t, resp.IsFallback)
	assert.Equal(t, "analisis dari model", resp.Message)
	assert.NotEmpty(t, resp.Timestamp)
}

func TestChat_FallbackIsStillHTTP200(t *testing.T) {
	gen := &genai.MockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", genai.NewError(genai.KindRateLimited, "quota exceeded")
		},
	}

	rec, resp := performChat(t, gen, "test-key", chatBody(t, true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.True(t, resp.IsFallback)
	assert.Contains(t, resp.Message, "sistem fallback")
}

func TestChat_RateLimitedWithoutContextIs429(t *testing.T) {
	gen := &genai.MockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", genai.NewError(genai.KindRateLimited, "quota exceeded")
		},
	}

	rec, resp := performChat(t, gen, "test-key", chatBody(t, false))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.False(t, resp.Success)
	assert.True(t, resp.IsQuotaExceeded)
}

func TestChat_EmptySnapshotIs400WithoutUpstreamCall(t *testing.T) {
	gen := &genai.MockGenerator{}

	body, err := sonic.MarshalString(domain.ChatRequest{
		EnergyType: "solar",
		UseContext: true,
	})
	require.NoError(t, err)

	rec, resp := performChat(t, gen, "test-key", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, string(genai.KindInvalidContext), resp.Error)
	assert.Equal(t, 0, gen.GenerateCalls)
}

func TestChat_MissingCredentialIs500(t *testing.T) {
	gen := &genai.MockGenerator{}

	rec, resp := performChat(t, gen, "", chatBody(t, true))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, string(genai.KindConfiguration), resp.Error)
	assert.Equal(t, 0, gen.GenerateCalls)
}

func TestChat_AuthFailureIs401(t *testing.T) {
	gen := &genai.MockGenerator{
		GenerateFunc: func(ctx context.Context, prompt string) (string, error) {
			return "", genai.NewError(genai.KindAuth, "API_KEY_INVALID")
		},
	}

	rec, resp := performChat(t, gen, "test-key", chatBody(t, true))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, resp.Success)
	assert.False(t, resp.IsQuotaExceeded)
}

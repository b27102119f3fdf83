package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sunvolt/solarsite/internal/domain/estimate"
	"github.com/sunvolt/solarsite/internal/domain/lead"
	"github.com/sunvolt/solarsite/internal/infra/config"
	apperrors "github.com/sunvolt/solarsite/pkg/errors"
)

func TestRouter_EstimateSuccess(t *testing.T) {
	resp := estimate.Response{
		MonthlyUnits:   357,
		MonthlyBill:    2500,
		SystemSizeKw:   3,
		SystemSize:     "3 kW",
		EstimatedCost:  150000,
		CostDisplay:    "₹1,50,000",
		MonthlySavings: 2730,
		SavingsDisplay: "₹2,730",
		PaybackYears:   4.6,
		PaybackPeriod:  "4.6 years",
		WhatsAppURL:    "https://wa.me/919000000000?text=hi",
	}
	svc := &stubEstimateService{
		quoteFn: func(ctx context.Context, req estimate.Request) (estimate.Response, error) {
			require.Equal(t, "bill", req.Mode)
			require.Equal(t, 2500.0, req.Amount)
			require.Equal(t, "Jaipur", req.Location)
			return resp, nil
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/estimates", `{"mode":"bill","amount":2500,"location":"Jaipur"}`, nil, newRouterUnderTest(t, svc, &stubLeadService{}, ""))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got estimate.Response
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, resp, got)
}

func TestRouter_EstimateInvalidJSON(t *testing.T) {
	svc := &stubEstimateService{}

	recorder := performRequest(http.MethodPost, "/api/v1/estimates", `{"mode":123}`, nil, newRouterUnderTest(t, svc, &stubLeadService{}, ""))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
	require.NotEmpty(t, errBody["error"]["message"])
}

func TestRouter_EstimateInvalidInput(t *testing.T) {
	svc := &stubEstimateService{
		quoteFn: func(ctx context.Context, req estimate.Request) (estimate.Response, error) {
			return estimate.Response{}, apperrors.Wrap("invalid_input", "amount must be positive", nil)
		},
	}

	recorder := performRequest(http.MethodPost, "/api/v1/estimates", `{"mode":"bill","amount":-5}`, nil, newRouterUnderTest(t, svc, &stubLeadService{}, ""))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_input", errBody["error"]["code"])
	require.Contains(t, errBody["error"]["message"], "amount must be positive")
}

func TestRouter_StatsSuccess(t *testing.T) {
	leadSvc := &stubLeadService{
		overviewFn: func(ctx context.Context) (lead.Overview, error) {
			return lead.Overview{
				Quotes:       42,
				TotalKw:      96.5,
				TopLocations: []lead.LocationCount{{Location: "Jaipur", Count: 12}},
			}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/stats", "", nil, newRouterUnderTest(t, &stubEstimateService{}, leadSvc, ""))
	require.Equal(t, http.StatusOK, recorder.Code)

	var got lead.Overview
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.EqualValues(t, 42, got.Quotes)
	require.InDelta(t, 96.5, got.TotalKw, 1e-9)
	require.Len(t, got.TopLocations, 1)
}

func TestRouter_StatsFailure(t *testing.T) {
	leadSvc := &stubLeadService{
		overviewFn: func(ctx context.Context) (lead.Overview, error) {
			return lead.Overview{}, apperrors.Wrap("stats_error", "failed to load quote counters", nil)
		},
	}

	recorder := performRequest(http.MethodGet, "/api/v1/stats", "", nil, newRouterUnderTest(t, &stubEstimateService{}, leadSvc, ""))
	require.Equal(t, http.StatusInternalServerError, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "stats_error", errBody["error"]["code"])
}

func TestRouter_LeadsRequiresAPIKey(t *testing.T) {
	server := newRouterUnderTest(t, &stubEstimateService{}, &stubLeadService{}, "sales-key")

	recorder := performRequest(http.MethodGet, "/api/v1/leads", "", nil, server)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "unauthorized", errBody["error"]["code"])

	recorder = performRequest(http.MethodGet, "/api/v1/leads", "", map[string]string{"X-API-Key": "wrong"}, server)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_LeadsClosedWithoutConfiguredKey(t *testing.T) {
	server := newRouterUnderTest(t, &stubEstimateService{}, &stubLeadService{}, "")

	recorder := performRequest(http.MethodGet, "/api/v1/leads", "", map[string]string{"X-API-Key": "anything"}, server)
	require.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestRouter_LeadsSuccess(t *testing.T) {
	leadSvc := &stubLeadService{
		recentFn: func(ctx context.Context, limit int) ([]lead.Record, error) {
			require.Equal(t, 10, limit)
			return []lead.Record{{Location: "Jaipur", SystemSizeKw: "3 kW"}}, nil
		},
	}
	server := newRouterUnderTest(t, &stubEstimateService{}, leadSvc, "sales-key")

	recorder := performRequest(http.MethodGet, "/api/v1/leads?limit=10", "", map[string]string{"X-API-Key": "sales-key"}, server)
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Leads []lead.Record `json:"leads"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Leads, 1)
	require.Equal(t, "3 kW", body.Leads[0].SystemSizeKw)
}

func TestRouter_LeadsRejectsBadLimit(t *testing.T) {
	server := newRouterUnderTest(t, &stubEstimateService{}, &stubLeadService{}, "sales-key")

	recorder := performRequest(http.MethodGet, "/api/v1/leads?limit=abc", "", map[string]string{"X-API-Key": "sales-key"}, server)
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	errBody := decodeErrorBody(t, recorder.Body.Bytes())
	require.Equal(t, "invalid_request", errBody["error"]["code"])
}

func TestRouter_Health(t *testing.T) {
	recorder := performRequest(http.MethodGet, "/healthz", "", nil, newRouterUnderTest(t, &stubEstimateService{}, &stubLeadService{}, ""))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `"status":"ok"`)
}

func TestRouter_LandingPage(t *testing.T) {
	leadSvc := &stubLeadService{
		overviewFn: func(ctx context.Context) (lead.Overview, error) {
			return lead.Overview{Quotes: 12, TotalKw: 31.5}, nil
		},
	}

	recorder := performRequest(http.MethodGet, "/", "", nil, newRouterUnderTest(t, &stubEstimateService{}, leadSvc, ""))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Header().Get("Content-Type"), "text/html")

	page := recorder.Body.String()
	require.Contains(t, page, "SunVolt Solar")
	require.Contains(t, page, `id="estimate-form"`)
	require.Contains(t, page, "31.5 kW")
	require.Contains(t, page, "wa.me/919000000000")
}

func TestRouter_LandingPageSurvivesStatsFailure(t *testing.T) {
	leadSvc := &stubLeadService{
		overviewFn: func(ctx context.Context) (lead.Overview, error) {
			return lead.Overview{}, apperrors.Wrap("stats_error", "counters down", nil)
		},
	}

	recorder := performRequest(http.MethodGet, "/", "", nil, newRouterUnderTest(t, &stubEstimateService{}, leadSvc, ""))
	require.Equal(t, http.StatusOK, recorder.Code)
	require.Contains(t, recorder.Body.String(), `id="estimate-form"`)
	require.NotContains(t, recorder.Body.String(), "estimates served")
}

func performRequest(method, path, body string, headers map[string]string, server *http.Server) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	server.Handler.ServeHTTP(rec, req)
	return rec
}

func newRouterUnderTest(t *testing.T, estimateSvc estimate.Service, leadSvc lead.Service, apiKey string) *http.Server {
	t.Helper()
	cfg := &config.Config{
		HTTP: config.HTTPConfig{
			Address:      ":0",
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		},
		Site: config.SiteConfig{
			CompanyName:     "SunVolt Solar",
			Tagline:         "Cut your electricity bill with rooftop solar",
			WhatsAppPhone:   "919000000000",
			DefaultLocation: "website form",
		},
		Leads: config.LeadsConfig{
			APIKey:      apiKey,
			RecentLimit: 50,
		},
	}
	handler := NewHandler(estimateSvc, leadSvc, cfg, newTestLogger())
	return NewRouter(cfg, handler)
}

func newTestLogger() *slog.Logger {
	handler := slog.NewTextHandler(io.Discard, nil)
	return slog.New(handler)
}

type stubEstimateService struct {
	quoteFn func(ctx context.Context, req estimate.Request) (estimate.Response, error)
}

func (s *stubEstimateService) Quote(ctx context.Context, req estimate.Request) (estimate.Response, error) {
	if s.quoteFn != nil {
		return s.quoteFn(ctx, req)
	}
	return estimate.Response{}, nil
}

type stubLeadService struct {
	recentFn   func(ctx context.Context, limit int) ([]lead.Record, error)
	overviewFn func(ctx context.Context) (lead.Overview, error)
}

func (s *stubLeadService) Recent(ctx context.Context, limit int) ([]lead.Record, error) {
	if s.recentFn != nil {
		return s.recentFn(ctx, limit)
	}
	return nil, nil
}

func (s *stubLeadService) Overview(ctx context.Context) (lead.Overview, error) {
	if s.overviewFn != nil {
		return s.overviewFn(ctx)
	}
	return lead.Overview{}, nil
}

func decodeErrorBody(t *testing.T, raw []byte) map[string]map[string]string {
	t.Helper()
	var body map[string]map[string]string
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

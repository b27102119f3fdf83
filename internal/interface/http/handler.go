package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sunvolt/solarsite/internal/domain/estimate"
	"github.com/sunvolt/solarsite/internal/domain/lead"
	"github.com/sunvolt/solarsite/internal/infra/config"
	apperrors "github.com/sunvolt/solarsite/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	estimateSvc estimate.Service
	leadSvc     lead.Service
	site        config.SiteConfig
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(estimateSvc estimate.Service, leadSvc lead.Service, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		estimateSvc: estimateSvc,
		leadSvc:     leadSvc,
		site:        cfg.Site,
		logger:      logger.With("component", "http.handler"),
	}
}

// CreateEstimate serves the estimator form submission.
func (h *Handler) CreateEstimate(c *gin.Context) {
	var req estimate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.estimateSvc.Quote(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "estimate_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_input"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Stats returns the running quote counters.
func (h *Handler) Stats(c *gin.Context) {
	overview, err := h.leadSvc.Overview(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stats_error", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, overview)
}

// RecentLeads returns the latest archived estimates for the sales team.
func (h *Handler) RecentLeads(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a non-negative integer", err))
			return
		}
		limit = parsed
	}

	records, err := h.leadSvc.Recent(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "lead_error", errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"leads": records})
}

// Landing renders the landing page. Counters are best-effort: when the stats
// backend is down the page still ships, just without the numbers.
func (h *Handler) Landing(c *gin.Context) {
	data := landingData{
		CompanyName:   h.site.CompanyName,
		Tagline:       h.site.Tagline,
		WhatsAppPhone: h.site.WhatsAppPhone,
		Year:          time.Now().Year(),
	}

	overview, err := h.leadSvc.Overview(c.Request.Context())
	if err != nil {
		h.logger.Warn("landing counters unavailable", "error", err)
	} else {
		data.HasStats = overview.Quotes > 0
		data.TotalQuotes = overview.Quotes
		data.TotalKw = strconv.FormatFloat(overview.TotalKw, 'f', -1, 64)
		data.TopLocations = overview.TopLocations
	}

	c.HTML(http.StatusOK, "landing", data)
}

// Health reports liveness for the container platform.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

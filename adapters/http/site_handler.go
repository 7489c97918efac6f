package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	analyticsUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/analytics"
	preferenceUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/preference"
	"github.com/dinakaran-k/portfolio-api/internal/config"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

// SiteHandler covers the small site-level surface: theme preference,
// client configuration and page-view events.
type SiteHandler struct {
	themeUseCase      *preferenceUC.ThemeUseCase
	recordViewUseCase *analyticsUC.RecordViewUseCase
	cfg               config.Config
	logger            logger.Logger
}

func NewSiteHandler(
	themeUC *preferenceUC.ThemeUseCase,
	viewUC *analyticsUC.RecordViewUseCase,
	cfg config.Config,
	log logger.Logger,
) *SiteHandler {
	return &SiteHandler{
		themeUseCase:      themeUC,
		recordViewUseCase: viewUC,
		cfg:               cfg,
		logger:            log,
	}
}

func (h *SiteHandler) GetTheme(c *gin.Context) {
	output, err := h.themeUseCase.ExecuteGetTheme(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: string(output.Theme)})
}

func (h *SiteHandler) SetTheme(c *gin.Context) {
	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for theme preference", err))
		return
	}

	if err := h.themeUseCase.ExecuteSetTheme(c.Request.Context(), preferenceUC.SetThemeInput{Theme: req.Theme}); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ThemeResponse{Theme: req.Theme})
}

// GetConfig exposes the startup configuration the front end needs, so
// analytics wiring is explicit instead of an injected script.
func (h *SiteHandler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, SiteConfigResponse{
		AnalyticsID:  h.cfg.Analytics.MeasurementID,
		DefaultTheme: h.cfg.Analytics.DefaultTheme,
	})
}

func (h *SiteHandler) RecordEvent(c *gin.Context) {
	var req ViewEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for view event", err))
		return
	}

	input := analyticsUC.RecordViewInput{Type: req.Type, Path: req.Path}
	if err := h.recordViewUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "recorded"})
}

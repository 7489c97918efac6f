package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/profile"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	getProfileUseCase *profileUC.GetProfileUseCase
	logger            logger.Logger
}

func NewProfileHandler(uc *profileUC.GetProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{getProfileUseCase: uc, logger: log}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	output, err := h.getProfileUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToProfileDTO(output.Profile))
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	contactUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/contact"
	"github.com/dinakaran-k/portfolio-api/internal/domain/contact"
	"github.com/dinakaran-k/portfolio-api/pkg/apperror"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type ContactHandler struct {
	sendMessageUseCase *contactUC.SendMessageUseCase
	logger             logger.Logger
}

func NewContactHandler(uc *contactUC.SendMessageUseCase, log logger.Logger) *ContactHandler {
	return &ContactHandler{sendMessageUseCase: uc, logger: log}
}

func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("invalid JSON body for contact message", err))
		return
	}

	input := contactUC.SendMessageInput{
		Message: contact.Message{
			Name:    req.Name,
			Email:   req.Email,
			Message: req.Message,
		},
	}

	if err := h.sendMessageUseCase.Execute(c.Request.Context(), input); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

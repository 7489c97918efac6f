package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	postUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/post"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type PostHandler struct {
	listPublishedUseCase *postUC.ListPublishedPostsUseCase
	getPublishedUseCase  *postUC.GetPublishedPostUseCase
	logger               logger.Logger
}

func NewPostHandler(
	listUC *postUC.ListPublishedPostsUseCase,
	getUC *postUC.GetPublishedPostUseCase,
	log logger.Logger,
) *PostHandler {
	return &PostHandler{
		listPublishedUseCase: listUC,
		getPublishedUseCase:  getUC,
		logger:               log,
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	output, err := h.listPublishedUseCase.Execute(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	dtos := make([]PostDTO, len(output.Posts))
	for i, p := range output.Posts {
		dtos[i] = ToPostDTO(p, false)
	}
	c.JSON(http.StatusOK, dtos)
}

func (h *PostHandler) GetPost(c *gin.Context) {
	input := postUC.GetPublishedPostInput{Slug: c.Param("slug")}

	output, err := h.getPublishedUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ToPostDTO(output.Post, true))
}

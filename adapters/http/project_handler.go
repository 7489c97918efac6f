package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/project"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

type ProjectHandler struct {
	listProjectsUseCase *projectUC.ListProjectsUseCase
	logger              logger.Logger
}

func NewProjectHandler(uc *projectUC.ListProjectsUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{listProjectsUseCase: uc, logger: log}
}

// ListProjects serves the unified projects view. includeGithub defaults
// to true; only the literal "false" turns the GitHub list off.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	input := projectUC.ListProjectsInput{
		IncludeGithub: c.Query("includeGithub") != "false",
	}

	output, err := h.listProjectsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, ProjectsResponse{
		FreelanceProjects: ToProjectDTOs(output.FreelanceProjects),
		GithubProjects:    ToProjectDTOs(output.GithubProjects),
	})
}

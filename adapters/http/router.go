package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dinakaran-k/portfolio-api/internal/config"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

// NewRouter assembles the public API. Every route is stateless and,
// except for contact and events, read only.
func NewRouter(
	cfg config.Config,
	log logger.Logger,
	profileHandler *ProfileHandler,
	projectHandler *ProjectHandler,
	postHandler *PostHandler,
	contactHandler *ContactHandler,
	siteHandler *SiteHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	corsConfig := cors.DefaultConfig()
	if len(cfg.App.CORSOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.App.CORSOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

		api.GET("/profile", profileHandler.GetProfile)
		api.GET("/projects", projectHandler.ListProjects)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:slug", postHandler.GetPost)
		api.POST("/contact", contactHandler.SendMessage)

		api.GET("/config", siteHandler.GetConfig)
		api.GET("/preferences/theme", siteHandler.GetTheme)
		api.PUT("/preferences/theme", siteHandler.SetTheme)
		api.POST("/events", siteHandler.RecordEvent)
	}

	return router
}

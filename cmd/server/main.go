package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/dinakaran-k/portfolio-api/adapters/event"
	githubAdapter "github.com/dinakaran-k/portfolio-api/adapters/github"
	httpAdapter "github.com/dinakaran-k/portfolio-api/adapters/http"
	"github.com/dinakaran-k/portfolio-api/adapters/mail"
	"github.com/dinakaran-k/portfolio-api/adapters/persistence"
	analyticsUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/analytics"
	contactUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/contact"
	postUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/post"
	preferenceUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/preference"
	profileUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/profile"
	projectUC "github.com/dinakaran-k/portfolio-api/internal/application/usecase/project"
	"github.com/dinakaran-k/portfolio-api/internal/config"
	"github.com/dinakaran-k/portfolio-api/internal/domain/github"
	"github.com/dinakaran-k/portfolio-api/internal/domain/preference"
	"github.com/dinakaran-k/portfolio-api/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting portfolio API server...")

	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	eventPublisher, err := event.NewKafkaEventPublisher(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer eventPublisher.Close()

	// Repositories and outbound adapters
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool, appLogger)
	preferenceStore := persistence.NewRedisPreferenceStore(redisClient)
	githubFetcher := githubAdapter.NewRESTFetcher(cfg, appLogger)
	mailer := mail.NewSMTPMailer(cfg, appLogger)
	classifier := github.NewMobileClassifier()

	// Use cases
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, profileRepo, githubFetcher, classifier, appLogger)
	listPostsUseCase := postUC.NewListPublishedPostsUseCase(postRepo)
	getPostUseCase := postUC.NewGetPublishedPostUseCase(postRepo)
	sendMessageUseCase := contactUC.NewSendMessageUseCase(mailer, eventPublisher, cfg, appLogger)
	themeUseCase := preferenceUC.NewThemeUseCase(preferenceStore, preference.Theme(cfg.Analytics.DefaultTheme))
	recordViewUseCase := analyticsUC.NewRecordViewUseCase(eventPublisher, appLogger)

	// HTTP handlers
	profileHandler := httpAdapter.NewProfileHandler(getProfileUseCase, appLogger)
	projectHandler := httpAdapter.NewProjectHandler(listProjectsUseCase, appLogger)
	postHandler := httpAdapter.NewPostHandler(listPostsUseCase, getPostUseCase, appLogger)
	contactHandler := httpAdapter.NewContactHandler(sendMessageUseCase, appLogger)
	siteHandler := httpAdapter.NewSiteHandler(themeUseCase, recordViewUseCase, cfg, appLogger)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httpAdapter.NewRouter(cfg, appLogger,
		profileHandler, projectHandler, postHandler, contactHandler, siteHandler)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}

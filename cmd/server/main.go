package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"prscope/internal/handlers"
	"prscope/internal/middleware"
	"prscope/internal/services"
	"prscope/pkg/config"
	"prscope/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

func main() {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	// Load configuration
	if err := config.Load(); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init()

	token := config.AppConfig.GitHub.Token
	if token == "" {
		logger.Warn("GITHUB_TOKEN is not set, analyses will be rejected until it is configured")
	}
	githubClient := newGithubClient(token)

	// Initialize services
	reactionService := services.NewReactionService(githubClient)
	aggregationService := services.NewAggregationService()
	profileService := services.NewProfileService(githubClient)
	spamService := services.NewSpamService()
	rateLimitService := services.NewRateLimitService(githubClient)
	analysisService := services.NewAnalysisService(token, reactionService, aggregationService, profileService)

	// Initialize router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	// Setup static files
	router.Static("/static", "./web/static")

	// Setup routes
	setupRoutes(router, analysisService, spamService, rateLimitService, token)
	loadTemplates(router)

	// Setup server
	server := &http.Server{
		Addr:         ":" + config.AppConfig.Server.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(config.AppConfig.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(config.AppConfig.Server.WriteTimeout) * time.Second,
	}

	go func() {
		logger.Infof("Server starting on :%s", config.AppConfig.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
	logger.Info("Server stopped")
}

// newGithubClient creates a GitHub client, authenticated when a token is
// configured
func newGithubClient(token string) *github.Client {
	if token == "" {
		return github.NewClient(nil)
	}
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	return github.NewClient(tc)
}

func setupRoutes(
	router *gin.Engine,
	analysisService *services.AnalysisService,
	spamService *services.SpamService,
	rateLimitService *services.RateLimitService,
	token string,
) {
	// Initialize handlers
	homeHandler := handlers.NewHomeHandler(rateLimitService, token != "", config.AppConfig.Analysis.SpamThreshold)
	analysisHandler := handlers.NewAnalysisHandler(analysisService, spamService, config.AppConfig.Analysis.SpamThreshold)
	exportHandler := handlers.NewExportHandler(analysisHandler)
	healthHandler := handlers.NewHealthHandler()
	notFoundHandler := handlers.NewNotFoundHandler()

	// Dashboard
	router.GET("/", homeHandler.Index)

	// Analysis
	router.POST("/analyze", analysisHandler.Analyze)
	router.GET("/analyze", analysisHandler.Analyze)

	// Export of the last analysis
	router.GET("/export", exportHandler.Export)

	// Health check endpoint
	router.GET("/health", healthHandler.HealthCheck)

	router.NoRoute(notFoundHandler.NotFound)
}

func loadTemplates(router *gin.Engine) {
	cwd, err := os.Getwd()
	if err != nil {
		log.Fatal("Couldn't get working directory:", err)
	}

	router.LoadHTMLFiles(
		filepath.Join(cwd, "web/templates/layouts/header.html"),
		filepath.Join(cwd, "web/templates/layouts/footer.html"),
		filepath.Join(cwd, "web/templates/index.html"),
		filepath.Join(cwd, "web/templates/results.html"),
		filepath.Join(cwd, "web/templates/404.html"),
	)
}

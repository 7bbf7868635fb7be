package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/smartclassfiap/smartclass-backend/docs"
	httphandlers "github.com/smartclassfiap/smartclass-backend/internal/handlers/http"
	"github.com/smartclassfiap/smartclass-backend/internal/handlers/middleware"
	"github.com/smartclassfiap/smartclass-backend/internal/infrastructure/config"
	"github.com/smartclassfiap/smartclass-backend/internal/infrastructure/i18n"
	"github.com/smartclassfiap/smartclass-backend/internal/infrastructure/logging"
	"github.com/smartclassfiap/smartclass-backend/internal/infrastructure/persistence/mongodb"
	"github.com/smartclassfiap/smartclass-backend/internal/services"
)

//	@title			SmartClass API
//	@version		1.0
//	@description	Backend de conteúdo educacional: usuários e posts (aulas) com blocos de conteúdo.
//	@BasePath		/

func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting smartclass backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de documentos
	db, err := mongodb.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Garantir coleções com validadores de schema e índices únicos
	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 15*time.Second)
	if err := mongodb.EnsureSchemas(schemaCtx, db); err != nil {
		cancelSchema()
		logger.Error("failed to ensure collection schemas", "error", err)
		log.Fatal(err)
	}
	cancelSchema()

	// Inicializar i18n (pt-BR é o idioma padrão da API)
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "pt-BR")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)

	// Inicializar services
	userService := services.NewUserService(userRepo, logger)
	postService := services.NewPostService(postRepo, logger)

	// Inicializar handlers
	userHandler := httphandlers.NewUserHandler(userService)
	postHandler := httphandlers.NewPostHandler(postService)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware de request id
	router.Use(middleware.RequestID())

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.CORS.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentação da API
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Users
	users := router.Group("/users")
	{
		users.GET("/login", userHandler.Login)
		users.GET("/search", userHandler.SearchUsers)
		users.GET("", userHandler.ListUsers)
		users.GET("/:id", userHandler.GetUser)
		users.POST("", userHandler.CreateUser)
		users.PUT("/:id", userHandler.UpdateUser)
		users.DELETE("/:id", userHandler.DeactivateUser)
	}

	// Posts
	posts := router.Group("/posts")
	{
		posts.GET("/search", postHandler.SearchPosts)
		posts.GET("", postHandler.ListPosts)
		posts.GET("/:id", postHandler.GetPost)
		posts.POST("", postHandler.CreatePost)
		posts.PUT("/:id", postHandler.UpdatePost)
		posts.DELETE("/:id", postHandler.SoftDeletePost)
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

package server

import (
	"context"
	"log"
	"net/http"

	"github.com/nikharmsingh/leetcode-scraper/configs"
	"github.com/nikharmsingh/leetcode-scraper/internal/dbs"
	"github.com/nikharmsingh/leetcode-scraper/internal/handlers"
	"github.com/nikharmsingh/leetcode-scraper/internal/leetcode"
	"github.com/nikharmsingh/leetcode-scraper/internal/logger"
	"github.com/nikharmsingh/leetcode-scraper/internal/middlewares"
	"github.com/nikharmsingh/leetcode-scraper/internal/repositories"
	"github.com/nikharmsingh/leetcode-scraper/internal/services"

	"github.com/gin-gonic/gin"
)

func StartGinServer() {
	logger.InitLogger()
	defer logger.SyncLogger()

	config := configs.LoadConfig()

	db, err := dbs.Init(config)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := dbs.InitRedis(ctx, config.RedisAddr); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}
	defer dbs.CloseRedis()

	cache := services.NewRedisCache(dbs.RedisClient)
	catalog := leetcode.NewClient(config.LeetCodeURL, config.UpstreamTimeout)
	solvedStore := repositories.NewSolvedStore(db)
	userRepo := repositories.NewUserRepository(db, cache)

	tokenService := services.NewTokenService(config.JWTSecret)
	problemService := services.NewProblemService(catalog, solvedStore, cache, config.CacheTTL)
	statsService := services.NewStatsService(catalog)

	router := gin.New()
	router.Use(middlewares.ErrorHandlerMiddleware())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	handlers.NewProblemHandler(problemService, tokenService).RegisterRoutes(router)
	handlers.NewStatsHandler(statsService).RegisterRoutes(router)
	handlers.NewAuthHandler(userRepo, tokenService).RegisterRoutes(router)

	port := ":" + config.ServerPort
	log.Printf("Starting server on port %s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

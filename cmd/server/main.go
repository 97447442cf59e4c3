package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"prestige/internal/config"
	"prestige/internal/handler"
	"prestige/internal/repository"
	"prestige/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	log.Printf("Ambassadeur Prestige API")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize database connection
	repo, err := repository.NewPostgresRepository(
		cfg.GetPostgreSQLDSN(),
		cfg.PostgreSQL.MaxConnections,
		cfg.PostgreSQL.MaxIdleConnections,
	)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer repo.Close()

	log.Println("✅ Connected to PostgreSQL database")

	// Initialize completion client
	completionClient := service.NewOpenAIClient(&cfg.Chat)
	if cfg.Chat.Enabled {
		log.Printf("✅ Chat completion client initialized")
		log.Printf("   - API Base: %s", cfg.Chat.APIBase)
		log.Printf("   - Model: %s", cfg.Chat.Model)
	} else {
		log.Println("⚠️  Chat is disabled - the assistant endpoint will return a configuration error")
		log.Println("   Set CHAT_API_KEY environment variable to enable it")
	}

	// Choose session store backend
	sessionTTL := time.Duration(cfg.Chat.SessionTTLMin) * time.Minute
	var sessionStore service.SessionStore
	if cfg.Redis.Addr != "" {
		redisStore, err := service.NewRedisSessionStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, sessionTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		sessionStore = redisStore
		log.Printf("✅ Using Redis session store at %s", cfg.Redis.Addr)
	} else {
		sessionStore = service.NewMemorySessionStore(sessionTTL, cfg.Chat.MaxSessions)
		log.Printf("✅ Using in-memory session store (ttl %s, max %d sessions)", sessionTTL, cfg.Chat.MaxSessions)
	}

	// Initialize services
	chatService := service.NewChatService(repo, sessionStore, completionClient)

	// Initialize handlers
	houseHandler := handler.NewHouseHandler(repo)
	imageHandler := handler.NewImageHandler(repo)
	commentHandler := handler.NewCommentHandler(repo)
	authHandler := handler.NewAuthHandler(repo)
	videoHandler := handler.NewVideoHandler(repo)
	chatHandler := handler.NewChatHandler(chatService)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Server.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "ambassadeur-prestige-api",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	api := router.Group("/api")
	{
		api.GET("/houses", houseHandler.List)
		api.PUT("/houses/:id", houseHandler.SetState)

		api.GET("/house-images", imageHandler.ListHouseImages)
		api.GET("/room-images", imageHandler.ListRoomImages)
		api.GET("/gallery-images", imageHandler.ListGalleryImages)
		api.GET("/floor-images", imageHandler.ListFloorPlanImages)

		api.GET("/comments", commentHandler.List)
		api.POST("/comments", commentHandler.Create)
		api.PUT("/comments/mark-seen/:houseId", commentHandler.MarkSeen)

		api.POST("/auth/login", authHandler.Login)

		api.GET("/videos", videoHandler.List)

		api.POST("/chat", chatHandler.Chat)
	}

	// Serve the built React front end
	setupStaticFiles(router, cfg.Server.StaticDir)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codestreak/config"
	"codestreak/controllers"
	"codestreak/db"
	"codestreak/internal/cache"
	"codestreak/routes"
	"codestreak/services"
	"codestreak/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var Version = "dev"

func main() {
	cfg, err := config.LoadConfig("./config/config.yml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := db.ConnectMongoDB(cfg.Database.URI); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	log.Println("Connected to MongoDB")

	if err := services.InitReportService(cfg.Gemini.ApiKey); err != nil {
		log.Fatalf("Failed to initialize report service: %v", err)
	}

	catalog, err := services.LoadCatalog("./data/questions.json")
	if err != nil {
		log.Fatalf("Failed to load problem catalog: %v", err)
	}

	// Shared Redis cache when configured, per-process memory otherwise.
	var statsCache cache.Cache
	if cfg.Redis.Addr != "" {
		statsCache, err = cache.NewRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		log.Println("Using Redis statistics cache")
	} else {
		statsCache = cache.NewMemory()
		log.Println("Using in-process statistics cache")
	}

	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	fetcher := services.NewLeetCodeClient(cfg.LeetCode.GraphqlURL, statsCache, ttl)
	controllers.Init(catalog, fetcher)

	utils.PopulateDemoUsers()

	router := setupRouter()
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on port %d", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Server shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
	log.Println("Server exited")
}

func setupRouter() *gin.Engine {
	router := gin.Default()

	router.SetTrustedProxies([]string{"127.0.0.1", "localhost"})

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))
	router.OPTIONS("/*path", func(c *gin.Context) { c.Status(204) })

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy", "version": Version})
	})

	router.GET("/leaderboard", routes.GetLeaderboardRouteHandler)
	router.GET("/statistics/:username", routes.GetStatisticsRouteHandler)
	router.GET("/statistics/:username/activity", routes.GetStatisticsActivityRouteHandler)
	router.GET("/report/:username", routes.GetReportRouteHandler)

	routes.SetupProblemRoutes(router)

	router.PATCH("/user", routes.UpdateUserRouteHandler)
	router.GET("/user/activity", routes.GetUserActivityRouteHandler)
	router.POST("/store/theme", routes.PurchaseThemeRouteHandler)

	return router
}

package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"greenfin/db"
	"greenfin/internal/handler"
	"greenfin/internal/repository"
)

const defaultOffsetPrice = "12.50"

func main() {

	godotenv.Load()

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	var statsCache handler.StatsCache
	if err := db.ConnectRedis(); err != nil {
		slog.Warn("redis unavailable, stats caching disabled", "error", err)
	} else {
		defer db.CloseRedis()
		statsCache = db.StatsStore{}
	}

	articleRepo := repository.NewArticleRepository(db.DB)
	newsHandler := handler.NewNewsHandler(articleRepo, statsCache)

	insightRepo := repository.NewInsightRepository(db.DB)
	insightHandler := handler.NewInsightHandler(insightRepo)

	unitPrice, err := decimal.NewFromString(envOr("OFFSET_TOKEN_PRICE", defaultOffsetPrice))
	if err != nil {
		log.Fatalf("invalid OFFSET_TOKEN_PRICE: %v", err)
	}
	footprintHandler := handler.NewFootprintHandler(unitPrice)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/feed", newsHandler.GetFeed)
	r.GET("/sentiment/stats", newsHandler.GetStats)
	r.POST("/footprint", footprintHandler.Calculate)
	r.GET("/insights", insightHandler.GetInsights)
	r.GET("/insights/latest", insightHandler.GetLatestInsight)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"greenfin/db"
	"greenfin/internal/model"
	"greenfin/internal/repository"
	"greenfin/pkg/insight"
)

const popTimeout = 30 * time.Second

func main() {
	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	err := db.Connect()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer db.Close()

	err = db.ConnectRedis()
	if err != nil {
		log.Fatalf("error connecting to Redis: %v", err)
	}
	defer db.CloseRedis()

	articleRepo := repository.NewArticleRepository(db.DB)
	insightRepo := repository.NewInsightRepository(db.DB)

	var client insight.Client
	if key := os.Getenv("ANTHROPIC_API_KEY"); key != "" {
		client = insight.NewAnthropicClient(key)
	} else if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		client = insight.NewOpenAIClient(key)
	} else {
		slog.Error("no insight model API key configured")
		return
	}

	// Block until the fetcher has queued at least one new article, then
	// digest everything since the last insight in one batch.
	_, err = db.PopFromQueue(db.DigestQueueKey, popTimeout)
	if err != nil {
		slog.Info("no queued articles, exiting", "error", err)
		return
	}

	fromID, err := insightRepo.GetLastToArticleID()
	if err != nil {
		log.Fatalf("error getting last insight article id: %v", err)
	}

	articles, err := articleRepo.GetArticlesForDigest(fromID)
	if err != nil {
		log.Fatalf("error fetching articles for digest: %v", err)
	}

	if len(articles) == 0 {
		slog.Info("no new articles to digest, exiting")
		return
	}

	slog.Info("digesting articles", "count", len(articles), "from_id", fromID)

	inputs := make([]insight.DigestInput, len(articles))
	for i, a := range articles {
		inputs[i] = insight.DigestInput{
			ID:       a.ID,
			Headline: a.Title,
			Detail:   a.Description,
			Ticker:   a.Ticker,
			Label:    string(a.Sentiment.Label),
		}
	}

	result, err := client.Digest(inputs)
	if err != nil {
		log.Fatalf("error generating insight: %v", err)
	}

	marketInsight := &model.MarketInsight{
		Paragraph:     result.Paragraph,
		Bullets:       result.Bullets,
		ArticleCount:  len(articles),
		FromArticleID: articles[0].ID,
		ToArticleID:   articles[len(articles)-1].ID,
		ModelUsed:     result.ModelUsed,
	}

	err = insightRepo.SaveInsight(marketInsight)
	if err != nil {
		log.Fatalf("error saving insight: %v", err)
	}

	slog.Info("insight saved successfully", "insight_id", marketInsight.ID, "article_count", marketInsight.ArticleCount)
}

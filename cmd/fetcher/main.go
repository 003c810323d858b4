package main

import (
	"encoding/json"
	"errors"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"greenfin/db"
	"greenfin/internal/aggregator"
	"greenfin/internal/model"
	"greenfin/internal/repository"
	"greenfin/internal/symbols"
	"greenfin/pkg/news"
	"greenfin/pkg/sentiment"
)

const (
	defaultPageSize = 50
	maxPages        = 10
)

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

	var clients []news.FeedClient
	if key := os.Getenv("RAPIDAPI_KEY"); key != "" {
		clients = append(clients, news.NewYahooClient(key))
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnhubClient(key))
	}
	if urls := os.Getenv("RSS_FEED_URLS"); urls != "" {
		clients = append(clients, news.NewRSSClient(strings.Split(urls, ",")))
	}

	if len(clients) == 0 {
		slog.Error("no news source API keys configured")
		return
	}

	repo := repository.NewArticleRepository(db.DB)
	scorer := sentiment.New(nil)

	sector := model.Sector(envOr("NEWS_SECTOR", string(model.SectorAll)))
	if sector != model.SectorAll && !validSector(sector) {
		slog.Warn("unknown NEWS_SECTOR, fetching all sectors", "sector", sector)
		sector = model.SectorAll
	}
	searchTicker := os.Getenv("SEARCH_TICKER")

	for _, client := range clients {
		source := client.Name()
		session := aggregator.NewSession(scorer, sector, searchTicker, defaultPageSize)

		var saved, duplicated, errored int

		for page := 0; page < maxPages; page++ {
			before := len(session.Accumulated())

			accumulated, stats, hasMore, err := session.LoadMore(client)
			if err != nil {
				if errors.Is(err, news.ErrFetchFailed) {
					slog.Error("feed fetch failed, keeping accumulated items", "source", source, "error", err)
				} else {
					slog.Error("error loading page", "source", source, "error", err)
				}
				break
			}

			for _, article := range accumulated[before:] {
				a := article
				inserted, err := repo.SaveEnriched(&a)
				if err != nil {
					slog.Error("error saving article", "source", source, "error", err, "url", a.URL)
					errored++
					continue
				}

				if !inserted {
					slog.Info("duplicate article skipped", "source", source, "url", a.URL)
					duplicated++
					continue
				}

				saved++

				err = db.PushToQueue(db.DigestQueueKey, strconv.FormatInt(a.ID, 10))
				if err != nil {
					slog.Error("error pushing to digest queue", "source", source, "error", err, "article_id", a.ID)
					errored++
				}
			}

			cacheStats(string(sector), stats)

			if !hasMore {
				break
			}
		}

		slog.Info("fetch complete", "source", source, "saved", saved, "duplicated", duplicated, "errors", errored)
	}
}

func cacheStats(scope string, stats model.AggregateSentimentStats) {
	if scope == "" || scope == string(model.SectorAll) {
		scope = "all"
	}
	payload, err := json.Marshal(map[string]int{
		"positive_pct": stats.PositivePct,
		"neutral_pct":  stats.NeutralPct,
		"negative_pct": stats.NegativePct,
	})
	if err != nil {
		return
	}
	if err := db.CacheStats(scope, string(payload)); err != nil {
		slog.Warn("error caching stats", "error", err, "scope", scope)
	}
}

func validSector(sector model.Sector) bool {
	for _, s := range symbols.Sectors() {
		if s == sector {
			return true
		}
	}
	return false
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"greenfin/internal/aggregator"
	"greenfin/internal/model"
)

type NewsStore interface {
	GetFeed(limit, offset int) ([]model.EnrichedNewsItem, error)
	GetBySector(sector model.Sector, limit, offset int) ([]model.EnrichedNewsItem, error)
	GetFeedTotal() (int, error)
	GetSentimentCounts(scope string) (positive, neutral, negative int, err error)
}

// StatsCache caches serialized stats snapshots; a nil cache disables
// caching. Miss is signalled by an error.
type StatsCache interface {
	CachedStats(scope string) (string, error)
	CacheStats(scope string, payload string) error
}

type NewsHandler struct {
	repository NewsStore
	cache      StatsCache
}

func NewNewsHandler(repository NewsStore, cache StatsCache) *NewsHandler {
	return &NewsHandler{repository: repository, cache: cache}
}

func (h *NewsHandler) GetFeed(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	var articles []model.EnrichedNewsItem
	var err error

	if sector := c.Query("sector"); sector != "" && sector != string(model.SectorAll) {
		articles, err = h.repository.GetBySector(model.Sector(sector), limit, offset)
	} else {
		articles, err = h.repository.GetFeed(limit, offset)
	}
	if err != nil {
		slog.Error("error fetching feed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetFeedTotal()
	if err != nil {
		slog.Error("error fetching feed total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	var articleRes []ArticleResponse
	for _, a := range articles {
		articleRes = append(articleRes, toArticleResponse(a))
	}

	c.JSON(http.StatusOK, FeedResponse{
		Articles: articleRes,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	})
}

func (h *NewsHandler) GetStats(c *gin.Context) {
	scope := c.Query("sector")
	if scope == string(model.SectorAll) {
		scope = ""
	}
	cacheKey := scope
	if cacheKey == "" {
		cacheKey = "all"
	}

	if h.cache != nil {
		if cached, err := h.cache.CachedStats(cacheKey); err == nil {
			var res StatsResponse
			if json.Unmarshal([]byte(cached), &res) == nil {
				c.JSON(http.StatusOK, res)
				return
			}
		}
	}

	positive, neutral, negative, err := h.repository.GetSentimentCounts(scope)
	if err != nil {
		slog.Error("error fetching sentiment counts", "error", err, "scope", scope)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	stats := aggregator.StatsFromCounts(positive, neutral, negative)
	res := StatsResponse{
		PositivePct: stats.PositivePct,
		NeutralPct:  stats.NeutralPct,
		NegativePct: stats.NegativePct,
	}

	if h.cache != nil {
		if payload, err := json.Marshal(res); err == nil {
			if err := h.cache.CacheStats(cacheKey, string(payload)); err != nil {
				slog.Warn("error caching stats", "error", err, "scope", cacheKey)
			}
		}
	}

	c.JSON(http.StatusOK, res)
}

func (h *NewsHandler) GetHealth(c *gin.Context) {
	_, err := h.repository.GetFeedTotal()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"database": "disconnected",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"database": "connected",
	})
}

func toArticleResponse(a model.EnrichedNewsItem) ArticleResponse {
	res := ArticleResponse{
		ID:            a.ID,
		Title:         a.Title,
		Description:   a.Description,
		URL:           a.URL,
		Ticker:        a.Ticker,
		Company:       a.Company,
		FormattedDate: a.FormattedDate,
		Sector:        string(a.Sector),
		Sentiment: SentimentResponse{
			Label:      string(a.Sentiment.Label),
			Confidence: a.Sentiment.Confidence,
		},
	}
	if a.Thumbnail != nil && len(a.Thumbnail.Resolutions) > 0 {
		res.Thumbnail = a.Thumbnail.Resolutions[0].URL
	}
	return res
}

func getQueryInt(name string, defaultValue int, c *gin.Context) int {
	param := c.Query(name)

	if param == "" {
		return defaultValue
	}

	parsed, err := strconv.Atoi(param)
	if err != nil {
		slog.Warn("invalid query parameter, using default", "param", name, "value", param, "error", err)
		return defaultValue
	}

	return parsed
}

func getQueryLimit(c *gin.Context) int {
	const (
		defaultLimit = 10
		maxLimit     = 100
	)

	limit := getQueryInt("limit", defaultLimit, c)
	if limit < 1 {
		slog.Warn("invalid query parameter, using default", "param", "limit", "value", limit, "default", defaultLimit)
		return defaultLimit
	}

	if limit > maxLimit {
		slog.Warn("query parameter exceeds max, clamping", "param", "limit", "value", limit, "max", maxLimit)
		return maxLimit
	}

	return limit
}

func getQueryOffset(c *gin.Context) int {
	offset := getQueryInt("offset", 0, c)
	if offset < 0 {
		slog.Warn("invalid query parameter, using default", "param", "offset", "value", offset, "default", 0)
		return 0
	}
	return offset
}

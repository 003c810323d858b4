package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"greenfin/internal/model"
)

type InsightStore interface {
	GetInsights(limit, offset int) ([]model.MarketInsight, error)
	GetInsightTotal() (int, error)
	GetLatestInsight() (*model.MarketInsight, error)
}

type InsightHandler struct {
	repository InsightStore
}

func NewInsightHandler(repository InsightStore) *InsightHandler {
	return &InsightHandler{repository: repository}
}

func toInsightResponse(m model.MarketInsight) InsightResponse {
	return InsightResponse{
		ID:            m.ID,
		Paragraph:     m.Paragraph,
		Bullets:       m.Bullets,
		ArticleCount:  m.ArticleCount,
		FromArticleID: m.FromArticleID,
		ToArticleID:   m.ToArticleID,
		ModelUsed:     m.ModelUsed,
		CreatedAt:     m.CreatedAt.Format(time.RFC3339),
	}
}

func (h *InsightHandler) GetInsights(c *gin.Context) {
	limit := getQueryInt("limit", 10, c)
	offset := getQueryInt("offset", 0, c)

	insights, err := h.repository.GetInsights(limit, offset)
	if err != nil {
		slog.Error("error fetching insights", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetInsightTotal()
	if err != nil {
		slog.Error("error fetching insight total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := InsightsResponse{
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for i, m := range insights {
		r := toInsightResponse(m)
		if i == 0 && offset == 0 {
			res.Latest = &r
		}
		res.History = append(res.History, r)
	}

	c.JSON(http.StatusOK, res)
}

func (h *InsightHandler) GetLatestInsight(c *gin.Context) {
	insight, err := h.repository.GetLatestInsight()
	if err != nil {
		slog.Error("error fetching latest insight", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if insight == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No insights yet"})
		return
	}

	res := toInsightResponse(*insight)
	c.JSON(http.StatusOK, res)
}

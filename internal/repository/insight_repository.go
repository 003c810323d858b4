package repository

import (
	"database/sql"
	"encoding/json"

	"greenfin/internal/model"
)

type InsightRepository struct {
	db *sql.DB
}

func NewInsightRepository(db *sql.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

// GetLastToArticleID returns the highest article id covered by any saved
// insight, or 0 when none exist yet.
func (r *InsightRepository) GetLastToArticleID() (int64, error) {
	var id int64
	err := r.db.QueryRow(`
		SELECT COALESCE(MAX(to_article_id), 0) FROM market_insight
	`).Scan(&id)
	return id, err
}

func (r *InsightRepository) SaveInsight(insight *model.MarketInsight) error {
	bullets, err := json.Marshal(insight.Bullets)
	if err != nil {
		return err
	}

	return r.db.QueryRow(`
		INSERT INTO market_insight(paragraph, bullets, article_count, from_article_id, to_article_id, model_used)
		VALUES($1, $2, $3, $4, $5, $6)
		RETURNING id
	`, insight.Paragraph, bullets, insight.ArticleCount, insight.FromArticleID, insight.ToArticleID, insight.ModelUsed).Scan(&insight.ID)
}

func (r *InsightRepository) GetInsights(limit, offset int) ([]model.MarketInsight, error) {
	rows, err := r.db.Query(`
		SELECT id, paragraph, bullets, article_count, from_article_id, to_article_id, model_used, created_at
		FROM market_insight
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var insights []model.MarketInsight
	for rows.Next() {
		var m model.MarketInsight
		var bulletsJSON []byte
		err := rows.Scan(&m.ID, &m.Paragraph, &bulletsJSON, &m.ArticleCount, &m.FromArticleID, &m.ToArticleID, &m.ModelUsed, &m.CreatedAt)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(bulletsJSON, &m.Bullets); err != nil {
			return nil, err
		}
		insights = append(insights, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return insights, nil
}

func (r *InsightRepository) GetLatestInsight() (*model.MarketInsight, error) {
	insights, err := r.GetInsights(1, 0)
	if err != nil {
		return nil, err
	}
	if len(insights) == 0 {
		return nil, nil
	}
	return &insights[0], nil
}

func (r *InsightRepository) GetInsightTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM market_insight`).Scan(&total)
	return total, err
}

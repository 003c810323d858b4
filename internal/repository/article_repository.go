package repository

import (
	"database/sql"

	"greenfin/internal/model"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveEnriched inserts an enriched article. URL is the dedup key: a
// conflicting insert is a no-op so the first-seen enrichment always wins.
// Returns false when the article was already present.
func (r *ArticleRepository) SaveEnriched(article *model.EnrichedNewsItem) (bool, error) {
	var thumbnailURL string
	if article.Thumbnail != nil && len(article.Thumbnail.Resolutions) > 0 {
		thumbnailURL = article.Thumbnail.Resolutions[0].URL
	}

	var id int64
	err := r.db.QueryRow(`
		INSERT INTO enriched_article(title, description, url, published_at, formatted_date, ticker, company, sector, sentiment_label, conf_positive, conf_neutral, conf_negative, thumbnail_url)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.Title, article.Description, article.URL, article.PublishedAt, article.FormattedDate,
		article.Ticker, article.Company, string(article.Sector), string(article.Sentiment.Label),
		article.Sentiment.Confidence[0], article.Sentiment.Confidence[1], article.Sentiment.Confidence[2],
		thumbnailURL).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

func (r *ArticleRepository) GetFeed(limit, offset int) ([]model.EnrichedNewsItem, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, url, published_at, formatted_date, ticker, company, sector, sentiment_label, conf_positive, conf_neutral, conf_negative, thumbnail_url
		FROM enriched_article
		ORDER BY id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepository) GetBySector(sector model.Sector, limit, offset int) ([]model.EnrichedNewsItem, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, url, published_at, formatted_date, ticker, company, sector, sentiment_label, conf_positive, conf_neutral, conf_negative, thumbnail_url
		FROM enriched_article
		WHERE sector = $1
		ORDER BY id DESC
		LIMIT $2 OFFSET $3
	`, string(sector), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepository) GetFeedTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM enriched_article`).Scan(&total)
	return total, err
}

// GetSentimentCounts returns per-label article counts for stats
// aggregation. Scope is a sector name, or empty for all articles.
func (r *ArticleRepository) GetSentimentCounts(scope string) (positive, neutral, negative int, err error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE sentiment_label = 'positive'),
			COUNT(*) FILTER (WHERE sentiment_label = 'neutral'),
			COUNT(*) FILTER (WHERE sentiment_label = 'negative')
		FROM enriched_article
	`
	if scope != "" {
		err = r.db.QueryRow(query+` WHERE sector = $1`, scope).Scan(&positive, &neutral, &negative)
		return
	}
	err = r.db.QueryRow(query).Scan(&positive, &neutral, &negative)
	return
}

// GetArticlesForDigest returns every article after fromID, oldest first,
// for the next market-insight batch.
func (r *ArticleRepository) GetArticlesForDigest(fromID int64) ([]model.EnrichedNewsItem, error) {
	rows, err := r.db.Query(`
		SELECT id, title, description, url, published_at, formatted_date, ticker, company, sector, sentiment_label, conf_positive, conf_neutral, conf_negative, thumbnail_url
		FROM enriched_article
		WHERE id > $1
		ORDER BY id ASC
	`, fromID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanArticles(rows)
}

func scanArticles(rows *sql.Rows) ([]model.EnrichedNewsItem, error) {
	var articles []model.EnrichedNewsItem
	for rows.Next() {
		var a model.EnrichedNewsItem
		var sector, label, thumbnailURL string
		err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.URL, &a.PublishedAt, &a.FormattedDate,
			&a.Ticker, &a.Company, &sector, &label,
			&a.Sentiment.Confidence[0], &a.Sentiment.Confidence[1], &a.Sentiment.Confidence[2],
			&thumbnailURL)
		if err != nil {
			return nil, err
		}
		a.Sector = model.Sector(sector)
		a.Sentiment.Label = model.SentimentLabel(label)
		if thumbnailURL != "" {
			a.Thumbnail = &model.Thumbnail{Resolutions: []model.ThumbnailResolution{{URL: thumbnailURL}}}
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

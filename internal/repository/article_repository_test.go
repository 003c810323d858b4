package repository

import (
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/assert/v2"
	"github.com/jknair0/beforeeach"

	"greenfin/internal/model"
)

var (
	db   *sql.DB
	mock sqlmock.Sqlmock
)

func setUp() {
	db, mock, _ = sqlmock.New()
}

func tearDown() {
	db.Close()
}

var it = beforeeach.Create(setUp, tearDown)

func enrichedFixture() *model.EnrichedNewsItem {
	return &model.EnrichedNewsItem{
		NewsItem: model.NewsItem{
			Title:       "Apple beats estimates",
			Description: "Strong quarter",
			URL:         "https://example.com/aapl",
			PublishedAt: "1614556800",
		},
		Ticker:        "AAPL",
		Company:       "Apple Inc.",
		FormattedDate: "Mar 1, 2021",
		Sector:        model.SectorTech,
		Sentiment: model.SentimentResult{
			Label:      model.SentimentPositive,
			Confidence: [3]float64{0.6, 0.3, 0.1},
		},
	}
}

func TestSaveEnriched_Inserts(t *testing.T) {
	it(func() {
		article := enrichedFixture()

		mock.ExpectQuery("INSERT INTO enriched_article").
			WithArgs(article.Title, article.Description, article.URL, article.PublishedAt,
				article.FormattedDate, article.Ticker, article.Company, "tech", "positive",
				0.6, 0.3, 0.1, "").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

		repo := NewArticleRepository(db)
		saved, err := repo.SaveEnriched(article)

		assert.Equal(t, nil, err)
		assert.Equal(t, true, saved)
		assert.Equal(t, int64(42), article.ID)
	})
}

func TestSaveEnriched_ConflictIsNotAnError(t *testing.T) {
	it(func() {
		// ON CONFLICT DO NOTHING yields no row from RETURNING.
		mock.ExpectQuery("INSERT INTO enriched_article").
			WillReturnError(sql.ErrNoRows)

		repo := NewArticleRepository(db)
		saved, err := repo.SaveEnriched(enrichedFixture())

		assert.Equal(t, nil, err)
		assert.Equal(t, false, saved)
	})
}

func TestSaveEnriched_DBError(t *testing.T) {
	it(func() {
		mock.ExpectQuery("INSERT INTO enriched_article").
			WillReturnError(errors.New("connection reset"))

		repo := NewArticleRepository(db)
		saved, err := repo.SaveEnriched(enrichedFixture())

		assert.Equal(t, false, saved)
		if err == nil {
			t.Fatal("expected error")
		}
	})
}

func articleColumns() []string {
	return []string{"id", "title", "description", "url", "published_at", "formatted_date",
		"ticker", "company", "sector", "sentiment_label",
		"conf_positive", "conf_neutral", "conf_negative", "thumbnail_url"}
}

func TestGetFeed_ScansRows(t *testing.T) {
	it(func() {
		rows := sqlmock.NewRows(articleColumns()).
			AddRow(2, "Tesla slides", "", "https://example.com/tsla", "1614643200", "Mar 2, 2021",
				"TSLA", "Tesla Inc.", "auto", "negative", 0.1, 0.2, 0.7, "https://img.example.com/t.jpg").
			AddRow(1, "Apple beats estimates", "Strong quarter", "https://example.com/aapl", "1614556800", "Mar 1, 2021",
				"AAPL", "Apple Inc.", "tech", "positive", 0.6, 0.3, 0.1, "")

		mock.ExpectQuery("FROM enriched_article\\s+ORDER BY id DESC").
			WithArgs(10, 0).
			WillReturnRows(rows)

		repo := NewArticleRepository(db)
		articles, err := repo.GetFeed(10, 0)

		assert.Equal(t, nil, err)
		assert.Equal(t, 2, len(articles))
		assert.Equal(t, "TSLA", articles[0].Ticker)
		assert.Equal(t, model.SentimentNegative, articles[0].Sentiment.Label)
		assert.Equal(t, "https://img.example.com/t.jpg", articles[0].Thumbnail.Resolutions[0].URL)
		if articles[1].Thumbnail != nil {
			t.Errorf("expected no thumbnail, got %+v", articles[1].Thumbnail)
		}
	})
}

func TestGetBySector_FiltersBySector(t *testing.T) {
	it(func() {
		rows := sqlmock.NewRows(articleColumns()).
			AddRow(3, "Pfizer trial result", "", "https://example.com/pfe", "", "Recent",
				"PFE", "Pfizer Inc.", "healthcare", "neutral", 0.2, 0.6, 0.2, "")

		mock.ExpectQuery("FROM enriched_article\\s+WHERE sector =").
			WithArgs("healthcare", 10, 0).
			WillReturnRows(rows)

		repo := NewArticleRepository(db)
		articles, err := repo.GetBySector(model.SectorHealthcare, 10, 0)

		assert.Equal(t, nil, err)
		assert.Equal(t, 1, len(articles))
		assert.Equal(t, model.SectorHealthcare, articles[0].Sector)
	})
}

func TestGetSentimentCounts_AllScope(t *testing.T) {
	it(func() {
		mock.ExpectQuery("COUNT\\(\\*\\) FILTER").
			WillReturnRows(sqlmock.NewRows([]string{"positive", "neutral", "negative"}).AddRow(5, 3, 2))

		repo := NewArticleRepository(db)
		positive, neutral, negative, err := repo.GetSentimentCounts("")

		assert.Equal(t, nil, err)
		assert.Equal(t, 5, positive)
		assert.Equal(t, 3, neutral)
		assert.Equal(t, 2, negative)
	})
}

func TestGetSentimentCounts_SectorScope(t *testing.T) {
	it(func() {
		mock.ExpectQuery("WHERE sector =").
			WithArgs("tech").
			WillReturnRows(sqlmock.NewRows([]string{"positive", "neutral", "negative"}).AddRow(1, 0, 0))

		repo := NewArticleRepository(db)
		positive, _, _, err := repo.GetSentimentCounts("tech")

		assert.Equal(t, nil, err)
		assert.Equal(t, 1, positive)
	})
}

func TestGetArticlesForDigest_ReturnsRowsAfterID(t *testing.T) {
	it(func() {
		rows := sqlmock.NewRows(articleColumns()).
			AddRow(11, "JPMorgan outlook", "", "https://example.com/jpm", "", "Recent",
				"JPM", "JPMorgan Chase & Co.", "finance", "positive", 0.5, 0.3, 0.2, "")

		mock.ExpectQuery("FROM enriched_article\\s+WHERE id >").
			WithArgs(int64(10)).
			WillReturnRows(rows)

		repo := NewArticleRepository(db)
		articles, err := repo.GetArticlesForDigest(10)

		assert.Equal(t, nil, err)
		assert.Equal(t, 1, len(articles))
		assert.Equal(t, int64(11), articles[0].ID)
	})
}

func TestGetFeedTotal(t *testing.T) {
	it(func() {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM enriched_article").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		repo := NewArticleRepository(db)
		total, err := repo.GetFeedTotal()

		assert.Equal(t, nil, err)
		assert.Equal(t, 7, total)
	})
}

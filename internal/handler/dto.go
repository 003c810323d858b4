package handler

type SentimentResponse struct {
	Label      string     `json:"label"`
	Confidence [3]float64 `json:"confidence"`
}

type ArticleResponse struct {
	ID            int64             `json:"id"`
	Title         string            `json:"title"`
	Description   string            `json:"description"`
	URL           string            `json:"url"`
	Ticker        string            `json:"ticker"`
	Company       string            `json:"company"`
	FormattedDate string            `json:"formatted_date"`
	Sector        string            `json:"sector"`
	Sentiment     SentimentResponse `json:"sentiment"`
	Thumbnail     string            `json:"thumbnail,omitempty"`
}

type FeedResponse struct {
	Articles []ArticleResponse `json:"articles"`
	Total    int               `json:"total"`
	Limit    int               `json:"limit"`
	Offset   int               `json:"offset"`
}

type StatsResponse struct {
	PositivePct int `json:"positive_pct"`
	NeutralPct  int `json:"neutral_pct"`
	NegativePct int `json:"negative_pct"`
}

type FootprintResponse struct {
	TotalEmissions     float64       `json:"total_emissions"`
	RecommendedOffsets int           `json:"recommended_offsets"`
	Quote              QuoteResponse `json:"quote"`
}

type QuoteResponse struct {
	Offsets       int    `json:"offsets"`
	UnitPrice     string `json:"unit_price"`
	TotalCost     string `json:"total_cost"`
	CompensatedKg string `json:"compensated_kg"`
}

type InsightResponse struct {
	ID            int64    `json:"id"`
	Paragraph     string   `json:"paragraph"`
	Bullets       []string `json:"bullets"`
	ArticleCount  int      `json:"article_count"`
	FromArticleID int64    `json:"from_article_id"`
	ToArticleID   int64    `json:"to_article_id"`
	ModelUsed     string   `json:"model_used"`
	CreatedAt     string   `json:"created_at"`
}

type InsightsResponse struct {
	Latest  *InsightResponse  `json:"latest"`
	History []InsightResponse `json:"history"`
	Total   int               `json:"total"`
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
}

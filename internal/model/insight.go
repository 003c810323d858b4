package model

import "time"

// MarketInsight is a periodic digest over a range of enriched articles,
// generated by an external language model.
type MarketInsight struct {
	ID            int64
	Paragraph     string
	Bullets       []string
	ArticleCount  int
	FromArticleID int64
	ToArticleID   int64
	ModelUsed     string
	CreatedAt     time.Time
}

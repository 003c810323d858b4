package news

import (
	"errors"

	"greenfin/internal/model"
)

// ErrFetchFailed marks a feed fetch that failed before producing any items.
// Callers check it with errors.Is and keep previously accumulated state.
var ErrFetchFailed = errors.New("feed fetch failed")

// Page is one batch of raw news plus the optional per-ticker company
// metadata some sources send alongside.
type Page struct {
	Items     []model.NewsItem
	Companies map[string]string
}

// FeedClient supplies raw news pages for a set of ticker symbols. The core
// only requires items with title/description/url/published-at and optional
// tickers and thumbnail; the wire protocol is the client's business.
type FeedClient interface {
	FetchPage(tickers []string, newsType string, size int) (*Page, error)
	Name() string
}

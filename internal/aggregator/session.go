package aggregator

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"greenfin/internal/model"
	"greenfin/internal/symbols"
	"greenfin/pkg/news"
	"greenfin/pkg/sentiment"
)

// ErrLoadInFlight is returned when a page load is requested while another
// is still running for the same session. Overlapping fetches would let
// duplicates slip past the merge and corrupt the stats counts.
var ErrLoadInFlight = errors.New("page load already in flight")

// tickerWindow is how many pool symbols are sent per page request. The
// window slides forward by page so successive loads rotate through the pool.
const tickerWindow = 15

// Session accumulates enriched news for one search/sector context. Changing
// either context resets the accumulated state; "load more" appends.
type Session struct {
	mu       sync.Mutex
	inFlight bool

	enricher     *Enricher
	searchTicker string
	sector       model.Sector
	pageSize     int
	page         int

	accumulated []model.EnrichedNewsItem
	seen        map[string]struct{}
	hasMore     bool
}

func NewSession(scorer *sentiment.Scorer, sector model.Sector, searchTicker string, pageSize int) *Session {
	return &Session{
		enricher:     NewEnricher(scorer, symbols.PoolFor(sector)),
		searchTicker: strings.ToUpper(strings.TrimSpace(searchTicker)),
		sector:       sector,
		pageSize:     pageSize,
		seen:         make(map[string]struct{}),
		hasMore:      true,
	}
}

// Reset switches the session to a new search/sector context, discarding all
// accumulated items.
func (s *Session) Reset(sector model.Sector, searchTicker string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enricher = NewEnricher(s.enricher.scorer, symbols.PoolFor(sector))
	s.sector = sector
	s.searchTicker = strings.ToUpper(strings.TrimSpace(searchTicker))
	s.page = 0
	s.accumulated = nil
	s.seen = make(map[string]struct{})
	s.hasMore = true
}

// EnrichPage enriches one page of raw items and merges them into the
// accumulated set. Items whose URL was already seen keep their first-seen
// enrichment. The returned stats cover the entire accumulated set, and
// hasMore reports whether the page was full enough to expect another.
func (s *Session) EnrichPage(raw []model.NewsItem, companies map[string]string) ([]model.EnrichedNewsItem, model.AggregateSentimentStats, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enrichPageLocked(raw, companies)
}

func (s *Session) enrichPageLocked(raw []model.NewsItem, companies map[string]string) ([]model.EnrichedNewsItem, model.AggregateSentimentStats, bool) {
	var filtered int
	for _, item := range raw {
		enriched := s.enricher.Enrich(item, companies)

		if s.searchTicker != "" && !strings.Contains(strings.ToUpper(enriched.Ticker), s.searchTicker) {
			continue
		}
		filtered++

		if _, ok := s.seen[enriched.URL]; ok {
			continue
		}
		s.seen[enriched.URL] = struct{}{}
		s.accumulated = append(s.accumulated, enriched)
	}

	s.hasMore = filtered >= s.pageSize-5

	return s.accumulated, ComputeStats(s.accumulated), s.hasMore
}

// LoadMore fetches the next page from the feed and folds it in. At most one
// fetch may be in flight per session; a fetch failure leaves the already
// accumulated items untouched.
func (s *Session) LoadMore(client news.FeedClient) ([]model.EnrichedNewsItem, model.AggregateSentimentStats, bool, error) {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, model.AggregateSentimentStats{}, false, ErrLoadInFlight
	}
	if !s.hasMore {
		stats := ComputeStats(s.accumulated)
		accumulated := s.accumulated
		s.mu.Unlock()
		return accumulated, stats, false, nil
	}
	s.inFlight = true
	tickers := s.tickersForPage()
	s.mu.Unlock()

	page, err := client.FetchPage(tickers, "ALL", s.pageSize)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight = false

	if err != nil {
		if !errors.Is(err, news.ErrFetchFailed) {
			err = fmt.Errorf("%w: %v", news.ErrFetchFailed, err)
		}
		return nil, model.AggregateSentimentStats{}, false, err
	}

	s.page++
	accumulated, stats, hasMore := s.enrichPageLocked(page.Items, page.Companies)
	return accumulated, stats, hasMore, nil
}

// tickersForPage returns the symbols for the next fetch: the search ticker
// alone when a search is active, otherwise a sliding window over the pool.
func (s *Session) tickersForPage() []string {
	if s.searchTicker != "" {
		return []string{s.searchTicker}
	}

	pool := s.enricher.pool
	if len(pool) == 0 {
		return nil
	}
	start := (s.page * tickerWindow) % len(pool)
	end := start + tickerWindow
	if end > len(pool) {
		end = len(pool)
	}
	return pool[start:end]
}

// Accumulated returns a copy of the current accumulated set.
func (s *Session) Accumulated() []model.EnrichedNewsItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.EnrichedNewsItem, len(s.accumulated))
	copy(out, s.accumulated)
	return out
}

// HasMore reports whether the last loaded page was full enough to expect
// another.
func (s *Session) HasMore() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasMore
}

// ComputeStats derives per-label percentages over the given items. Buckets
// are rounded independently, so the three percentages may not sum to
// exactly 100.
func ComputeStats(items []model.EnrichedNewsItem) model.AggregateSentimentStats {
	if len(items) == 0 {
		return model.AggregateSentimentStats{}
	}

	var positive, neutral, negative int
	for _, item := range items {
		switch item.Sentiment.Label {
		case model.SentimentPositive:
			positive++
		case model.SentimentNegative:
			negative++
		default:
			neutral++
		}
	}

	return StatsFromCounts(positive, neutral, negative)
}

// StatsFromCounts turns per-label counts into independently rounded
// percentages. Zero counts yield all-zero stats.
func StatsFromCounts(positive, neutral, negative int) model.AggregateSentimentStats {
	total := float64(positive + neutral + negative)
	if total == 0 {
		return model.AggregateSentimentStats{}
	}
	return model.AggregateSentimentStats{
		PositivePct: int(math.Round(float64(positive) / total * 100)),
		NeutralPct:  int(math.Round(float64(neutral) / total * 100)),
		NegativePct: int(math.Round(float64(negative) / total * 100)),
	}
}

// Package aggregator turns raw feed items into enriched news: ticker
// inference, company and sector resolution, date formatting and sentiment
// scoring, with URL-keyed deduplication across pages.
package aggregator

import (
	"hash/fnv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"greenfin/internal/model"
	"greenfin/internal/symbols"
	"greenfin/pkg/sentiment"
)

// fallbackTicker is assigned when even the hashed pool lookup has nothing
// to work with.
const fallbackTicker = "SPY"

var (
	dollarTickerPattern = regexp.MustCompile(`\$([A-Z]{1,5})\b`)
	knownTickerPattern  = regexp.MustCompile(`\b(` + strings.Join(symbols.AllTickers(), "|") + `)\b`)
)

// dateLayouts are tried in order for non-numeric published-at values.
var dateLayouts = []string{
	time.RFC3339,
	time.RFC1123Z,
	time.RFC1123,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Enricher applies the per-item enrichment steps against a fixed ticker
// pool. The pool doubles as the deterministic last-resort assignment target
// for items that match no explicit field, pattern or keyword.
type Enricher struct {
	scorer *sentiment.Scorer
	pool   []string
}

func NewEnricher(scorer *sentiment.Scorer, pool []string) *Enricher {
	return &Enricher{scorer: scorer, pool: pool}
}

// Enrich builds the immutable enriched item. companies is the optional
// per-ticker metadata some feed sources deliver alongside the page.
func (e *Enricher) Enrich(item model.NewsItem, companies map[string]string) model.EnrichedNewsItem {
	ticker := e.ExtractTicker(item)

	return model.EnrichedNewsItem{
		NewsItem:      item,
		Ticker:        ticker,
		Company:       companyFor(ticker, companies),
		FormattedDate: FormatPublishedDate(item.PublishedAt),
		Sector:        symbols.SectorOf(ticker),
		Sentiment:     e.scorer.Score(item.Title + " " + item.Description),
	}
}

// ExtractTicker infers the ticker for a raw item, trying in order: the
// explicit ticker field, a $SYMBOL pattern, a whole-word scan for any known
// symbol, keyword-based sector defaults, and finally a title-hash pick from
// the active pool. The hash keeps the last resort reproducible for identical
// input.
func (e *Enricher) ExtractTicker(item model.NewsItem) string {
	if len(item.Tickers) > 0 && item.Tickers[0] != "" {
		return item.Tickers[0]
	}

	if m := dollarTickerPattern.FindStringSubmatch(item.Title); m != nil {
		return m[1]
	}
	if m := dollarTickerPattern.FindStringSubmatch(item.Description); m != nil {
		return m[1]
	}

	if m := knownTickerPattern.FindString(item.Title); m != "" {
		return m
	}
	if m := knownTickerPattern.FindString(item.Description); m != "" {
		return m
	}

	title := strings.ToLower(item.Title)
	switch {
	case strings.Contains(title, "bitcoin") || strings.Contains(title, "crypto"):
		return "COIN"
	case strings.Contains(title, "oil") || strings.Contains(title, "energy"):
		return "XOM"
	case strings.Contains(title, "bank") || strings.Contains(title, "finance"):
		return "JPM"
	case strings.Contains(title, "tech") || strings.Contains(title, "software"):
		return "MSFT"
	}

	if len(e.pool) == 0 {
		return fallbackTicker
	}
	h := fnv.New32a()
	h.Write([]byte(item.Title))
	return e.pool[h.Sum32()%uint32(len(e.pool))]
}

func companyFor(ticker string, companies map[string]string) string {
	if name, ok := companies[ticker]; ok && name != "" {
		return name
	}
	if name, ok := symbols.CompanyName(ticker); ok {
		return name
	}
	return ticker + " Inc."
}

// FormatPublishedDate renders a published-at value as a short display
// date. All-digit values are epochs: below 1e10 they are seconds, above,
// milliseconds. Anything unparseable falls back to "Recent".
func FormatPublishedDate(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "Recent"
	}

	if epoch, err := strconv.ParseInt(raw, 10, 64); err == nil {
		var t time.Time
		if epoch < 1e10 {
			t = time.Unix(epoch, 0)
		} else {
			t = time.UnixMilli(epoch)
		}
		return t.UTC().Format("Jan 2, 2006")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}

	return "Recent"
}

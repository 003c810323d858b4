package model

// SentimentLabel is the coarse polarity classification of a piece of text.
type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "positive"
	SentimentNeutral  SentimentLabel = "neutral"
	SentimentNegative SentimentLabel = "negative"
)

// SentimentResult pairs a label with a confidence triple ordered
// positive, neutral, negative. The triple is normalized to sum to 1
// and the label is derived from the triple, never the other way around.
type SentimentResult struct {
	Label      SentimentLabel
	Confidence [3]float64
}

// Sector is the coarse industry bucket a ticker belongs to.
type Sector string

const (
	SectorAll        Sector = "all"
	SectorTech       Sector = "tech"
	SectorFinance    Sector = "finance"
	SectorHealthcare Sector = "healthcare"
	SectorRetail     Sector = "retail"
	SectorEnergy     Sector = "energy"
	SectorAuto       Sector = "auto"
	SectorCrypto     Sector = "crypto"
	SectorETF        Sector = "etf"
	SectorOther      Sector = "other"
)

type ThumbnailResolution struct {
	URL    string
	Width  int
	Height int
}

type Thumbnail struct {
	Resolutions []ThumbnailResolution
}

// NewsItem is a raw article as delivered by a feed source. PublishedAt is
// kept verbatim because sources disagree on format: some send RFC3339
// strings, some epoch seconds, some epoch milliseconds.
type NewsItem struct {
	Title       string
	Description string
	URL         string
	PublishedAt string
	Tickers     []string
	Thumbnail   *Thumbnail
}

// EnrichedNewsItem is a NewsItem after ticker inference, company resolution,
// date formatting, sector lookup and sentiment scoring. Items are created
// once during enrichment and never mutated; URL is the identity key used
// for deduplication across pages.
type EnrichedNewsItem struct {
	NewsItem

	ID            int64
	Ticker        string
	Company       string
	FormattedDate string
	Sector        Sector
	Sentiment     SentimentResult
}

// AggregateSentimentStats holds per-label percentages over the full
// accumulated item set. Each bucket is rounded independently, so the three
// values may sum to 99 or 101.
type AggregateSentimentStats struct {
	PositivePct int
	NeutralPct  int
	NegativePct int
}

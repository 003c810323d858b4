package news

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"greenfin/internal/model"
)

const yahooBaseURL = "https://yahoo-finance15.p.rapidapi.com/api/v2/markets/news"

// YahooClient fetches market news from the yahoo-finance15 RapidAPI
// endpoint. It is the primary feed source: unlike the others it carries
// per-ticker company metadata in the response envelope.
type YahooClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewYahooClient(apiKey string) *YahooClient {
	return &YahooClient{
		apiKey:     apiKey,
		baseURL:    yahooBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *YahooClient) Name() string {
	return "Yahoo"
}

func (c *YahooClient) FetchPage(tickers []string, newsType string, size int) (*Page, error) {
	if newsType == "" {
		newsType = "ALL"
	}

	params := url.Values{}
	params.Set("tickers", strings.Join(tickers, ","))
	params.Set("type", newsType)
	params.Set("size", fmt.Sprintf("%d", size))

	req, err := http.NewRequest(http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo request: %v", ErrFetchFailed, err)
	}
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", "yahoo-finance15.p.rapidapi.com")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: yahoo fetch: %v", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: yahoo status %d", ErrFetchFailed, resp.StatusCode)
	}

	var raw yahooResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("%w: yahoo decode: %v", ErrFetchFailed, err)
	}

	items := make([]model.NewsItem, 0, len(raw.Body))
	for _, entry := range raw.Body {
		item := model.NewsItem{
			Title:       entry.Title,
			Description: entry.Description,
			URL:         entry.URL,
			PublishedAt: entry.PublishedAt,
			Tickers:     entry.Tickers,
		}
		if len(entry.Thumbnail.Resolutions) > 0 {
			thumb := &model.Thumbnail{}
			for _, res := range entry.Thumbnail.Resolutions {
				thumb.Resolutions = append(thumb.Resolutions, model.ThumbnailResolution{
					URL:    res.URL,
					Width:  res.Width,
					Height: res.Height,
				})
			}
			item.Thumbnail = thumb
		}
		items = append(items, item)
	}

	companies := make(map[string]string, len(raw.Meta.Companies))
	for ticker, c := range raw.Meta.Companies {
		companies[ticker] = c.Name
	}

	return &Page{Items: items, Companies: companies}, nil
}

type yahooResponse struct {
	Body []yahooNewsItem `json:"body"`
	Meta yahooMeta       `json:"meta"`
}

type yahooNewsItem struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	URL         string         `json:"url"`
	PublishedAt string         `json:"published_at"`
	Tickers     []string       `json:"tickers"`
	Thumbnail   yahooThumbnail `json:"thumbnail"`
}

type yahooThumbnail struct {
	Resolutions []yahooResolution `json:"resolutions"`
}

type yahooResolution struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type yahooMeta struct {
	Companies map[string]yahooCompany `json:"companies"`
}

type yahooCompany struct {
	Name string `json:"name"`
}

package news

import (
	"context"
	"fmt"
	"strconv"
	"time"

	finnhub "github.com/Finnhub-Stock-API/finnhub-go/v2"

	"greenfin/internal/model"
)

// FinnhubClient pulls per-company news through the Finnhub SDK. Published
// times come back as epoch seconds and are passed through as digit strings
// for the aggregator's date formatter to interpret.
type FinnhubClient struct {
	client *finnhub.DefaultApiService
}

func NewFinnhubClient(apiKey string) *FinnhubClient {
	cfg := finnhub.NewConfiguration()
	cfg.AddDefaultHeader("X-Finnhub-Token", apiKey)
	client := finnhub.NewAPIClient(cfg).DefaultApi
	return &FinnhubClient{client: client}
}

func (c *FinnhubClient) Name() string {
	return "Finnhub"
}

func (c *FinnhubClient) FetchPage(tickers []string, newsType string, size int) (*Page, error) {
	to := time.Now()
	from := to.AddDate(0, -1, 0)

	var items []model.NewsItem
	for _, ticker := range tickers {
		if len(items) >= size {
			break
		}

		res, _, err := c.client.CompanyNews(context.Background()).
			Symbol(ticker).
			From(from.Format("2006-01-02")).
			To(to.Format("2006-01-02")).
			Execute()
		if err != nil {
			return nil, fmt.Errorf("%w: finnhub company news %s: %v", ErrFetchFailed, ticker, err)
		}

		for _, entry := range res {
			if len(items) >= size {
				break
			}

			item := model.NewsItem{
				Tickers: []string{ticker},
			}
			if entry.Headline != nil {
				item.Title = *entry.Headline
			}
			if entry.Summary != nil {
				item.Description = *entry.Summary
			}
			if entry.Url != nil {
				item.URL = *entry.Url
			}
			if entry.Datetime != nil {
				item.PublishedAt = strconv.FormatInt(*entry.Datetime, 10)
			}
			if entry.Image != nil && *entry.Image != "" {
				item.Thumbnail = &model.Thumbnail{
					Resolutions: []model.ThumbnailResolution{{URL: *entry.Image}},
				}
			}
			items = append(items, item)
		}
	}

	return &Page{Items: items}, nil
}

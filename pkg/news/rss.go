package news

import (
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed"

	"greenfin/internal/model"
)

// RSSClient reads configured RSS/Atom feeds. RSS items carry no ticker
// metadata, so ticker assignment is left entirely to the aggregator's
// inference chain.
type RSSClient struct {
	feedURLs []string
	parser   *gofeed.Parser
}

func NewRSSClient(feedURLs []string) *RSSClient {
	return &RSSClient{
		feedURLs: feedURLs,
		parser:   gofeed.NewParser(),
	}
}

func (c *RSSClient) Name() string {
	return "RSS"
}

func (c *RSSClient) FetchPage(tickers []string, newsType string, size int) (*Page, error) {
	var items []model.NewsItem

	for _, feedURL := range c.feedURLs {
		feed, err := c.parser.ParseURL(feedURL)
		if err != nil {
			return nil, fmt.Errorf("%w: rss parse %s: %v", ErrFetchFailed, feedURL, err)
		}

		for _, entry := range feed.Items {
			if len(items) >= size {
				return &Page{Items: items}, nil
			}

			item := model.NewsItem{
				Title:       entry.Title,
				Description: strings.TrimSpace(entry.Description),
				URL:         entry.Link,
			}
			if entry.Published != "" {
				item.PublishedAt = entry.Published
			} else if entry.PublishedParsed != nil {
				item.PublishedAt = entry.PublishedParsed.Format("2006-01-02T15:04:05Z07:00")
			}
			if entry.Image != nil && entry.Image.URL != "" {
				item.Thumbnail = &model.Thumbnail{
					Resolutions: []model.ThumbnailResolution{{URL: entry.Image.URL}},
				}
			}
			items = append(items, item)
		}
	}

	return &Page{Items: items}, nil
}

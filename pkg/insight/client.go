package insight

const digestSystemPrompt = `You are a sustainability-minded market analyst. Given a list of financial news headlines with their tickers and sentiment, produce a market insight digest.

Rules for the paragraph:
- Single paragraph, concise and neutral
- Summarize the overall market mood and any ESG-relevant developments

Rules for bullets:
- 3 to 5 bullet points
- Each bullet covers a distinct key event or theme
- Include tickers, company names, and percentages where relevant
- One sentence per bullet

Output as JSON only, no other text:
{
  "paragraph": "market insight paragraph",
  "bullets": ["key event 1", "key event 2", "key event 3"]
}`

type DigestInput struct {
	ID       int64
	Headline string
	Detail   string
	Ticker   string
	Label    string
}

type DigestResult struct {
	Paragraph string
	Bullets   []string
	ModelUsed string
}

// Client generates a market insight digest over a batch of enriched
// articles.
type Client interface {
	Digest(articles []DigestInput) (*DigestResult, error)
}

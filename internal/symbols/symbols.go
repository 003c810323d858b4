// Package symbols holds the fixed ticker tables used for enrichment:
// per-sector symbol lists, the ticker-to-company display-name map and
// reverse sector lookup. All tables are immutable after init and safe to
// share across concurrent scoring calls.
package symbols

import "greenfin/internal/model"

var tickersBySector = map[model.Sector][]string{
	model.SectorTech:       {"AAPL", "MSFT", "GOOGL", "META", "NVDA", "INTC", "AMD", "CSCO", "IBM", "ORCL", "CRM", "ADBE", "ZM", "TEAM", "SHOP"},
	model.SectorFinance:    {"JPM", "BAC", "WFC", "C", "GS", "MS", "AXP", "V", "MA", "PYPL", "SQ", "COIN", "BLK", "SCHW"},
	model.SectorHealthcare: {"JNJ", "PFE", "MRK", "ABBV", "LLY", "BMY", "UNH", "CVS", "AMGN", "GILD", "BIIB", "MRNA", "REGN"},
	model.SectorRetail:     {"AMZN", "WMT", "TGT", "COST", "HD", "LOW", "EBAY", "ETSY", "DG", "DLTR", "KR", "ULTA", "BBY"},
	model.SectorEnergy:     {"XOM", "CVX", "BP", "SHEL", "COP", "SLB", "EOG", "MPC", "PSX", "VLO", "OXY", "DVN", "CLR"},
	model.SectorAuto:       {"TSLA", "F", "GM", "TM", "HMC", "STLA", "RIVN", "LCID", "NIO", "LI", "XPEV"},
	model.SectorCrypto:     {"COIN", "MSTR", "RIOT", "MARA", "HUT", "BITF", "CLSK", "SI", "BTBT", "CIFR"},
	model.SectorETF:        {"SPY", "QQQ", "DIA", "IWM", "VTI", "GLD", "SLV", "USO", "XLF", "XLE", "XLK", "XLV", "ARKK"},
}

// sectorOrder fixes iteration order so AllTickers and reverse lookups are
// deterministic regardless of map iteration.
var sectorOrder = []model.Sector{
	model.SectorTech,
	model.SectorFinance,
	model.SectorHealthcare,
	model.SectorRetail,
	model.SectorEnergy,
	model.SectorAuto,
	model.SectorCrypto,
	model.SectorETF,
}

var companyNames = map[string]string{
	"AAPL":  "Apple Inc.",
	"MSFT":  "Microsoft Corporation",
	"GOOGL": "Alphabet Inc.",
	"AMZN":  "Amazon.com Inc.",
	"META":  "Meta Platforms Inc.",
	"TSLA":  "Tesla Inc.",
	"NVDA":  "NVIDIA Corporation",
	"JPM":   "JPMorgan Chase & Co.",
	"BAC":   "Bank of America Corp.",
	"WMT":   "Walmart Inc.",
	"AMD":   "Advanced Micro Devices Inc.",
	"INTC":  "Intel Corporation",
	"CSCO":  "Cisco Systems Inc.",
	"GS":    "Goldman Sachs Group Inc.",
	"COIN":  "Coinbase Global Inc.",
	"F":     "Ford Motor Company",
	"GM":    "General Motors Company",
	"JNJ":   "Johnson & Johnson",
	"PFE":   "Pfizer Inc.",
	"XOM":   "Exxon Mobil Corporation",
	"CVX":   "Chevron Corporation",
	"PYPL":  "PayPal Holdings Inc.",
	"NFLX":  "Netflix Inc.",
	"DIS":   "The Walt Disney Company",
	"SPY":   "SPDR S&P 500 ETF Trust",
	"QQQ":   "Invesco QQQ Trust Series 1",
	"GLD":   "SPDR Gold Shares",
}

var allTickers []string

func init() {
	for _, sector := range sectorOrder {
		allTickers = append(allTickers, tickersBySector[sector]...)
	}
}

// AllTickers returns the full symbol pool across every sector, in fixed
// sector order. Callers must not mutate the returned slice.
func AllTickers() []string {
	return allTickers
}

// PoolFor returns the active ticker pool for a sector. SectorAll (or any
// unknown sector) yields the full pool.
func PoolFor(sector model.Sector) []string {
	if tickers, ok := tickersBySector[sector]; ok {
		return tickers
	}
	return allTickers
}

// CompanyName resolves a ticker to its display name.
func CompanyName(ticker string) (string, bool) {
	name, ok := companyNames[ticker]
	return name, ok
}

// SectorOf reverse-looks-up which sector list contains the ticker.
// A ticker appearing in multiple lists (COIN is both finance and crypto)
// resolves to the first sector in fixed order.
func SectorOf(ticker string) model.Sector {
	for _, sector := range sectorOrder {
		for _, t := range tickersBySector[sector] {
			if t == ticker {
				return sector
			}
		}
	}
	return model.SectorOther
}

// Sectors returns the fixed sector enumeration, excluding the "all" and
// "other" pseudo-sectors.
func Sectors() []model.Sector {
	return sectorOrder
}

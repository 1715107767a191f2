// Package market tracks crop price quotes and estimates cultivation
// profitability. Prices come from an injectable provider; the HTML provider
// scrapes a published price table, the mock serves fixed quotes.
package market

// Provider supplies current per-tonne prices keyed by crop name.
type Provider interface {
	CurrentPrices(region string) (map[string]float64, error)
	Source() string
}

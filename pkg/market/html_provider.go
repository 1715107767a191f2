package market

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

type htmlProvider struct {
	url   string
	httpc *http.Client
}

// NewHTMLProvider scrapes a published HTML price table. The first table cell
// of each row is the crop name, the second the price per tonne.
func NewHTMLProvider(url string) Provider {
	return &htmlProvider{url: url, httpc: &http.Client{Timeout: 15 * time.Second}}
}

func (p *htmlProvider) Source() string { return p.url }

func (p *htmlProvider) CurrentPrices(region string) (map[string]float64, error) {
	resp, err := p.httpc.Get(p.url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("market: price page returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, err
	}

	out := map[string]float64{}
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 2 {
			return // header or malformed row
		}
		crop := strings.ToLower(strings.TrimSpace(cells.Eq(0).Text()))
		price, err := parsePrice(cells.Eq(1).Text())
		if err != nil || crop == "" {
			return
		}
		out[crop] = price
	})
	if len(out) == 0 {
		return nil, fmt.Errorf("market: no price rows found at %s", p.url)
	}
	return out, nil
}

func parsePrice(raw string) (float64, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == ' ' {
			return -1
		}
		return r
	}, strings.TrimSpace(raw))
	// a single comma with no dot and at most two trailing digits is a decimal
	// comma; otherwise commas group thousands
	if i := strings.Index(cleaned, ","); i != -1 &&
		strings.Count(cleaned, ",") == 1 && !strings.Contains(cleaned, ".") &&
		len(cleaned)-i-1 <= 2 {
		cleaned = cleaned[:i] + "." + cleaned[i+1:]
	} else {
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	return strconv.ParseFloat(cleaned, 64)
}

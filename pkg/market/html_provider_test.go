package market

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const priceTableHTML = `<html><body>
<table>
  <tr><th>Crop</th><th>Price, per tonne</th></tr>
  <tr><td>Winter Wheat</td><td>15 200</td></tr>
  <tr><td>Oats</td><td>11500,50</td></tr>
  <tr><td>Peas</td><td>25,500</td></tr>
  <tr><td>Broken row</td></tr>
  <tr><td>No price</td><td>n/a</td></tr>
</table>
</body></html>`

func TestHTMLProviderParsesTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(priceTableHTML))
	}))
	defer srv.Close()

	p := NewHTMLProvider(srv.URL)
	prices, err := p.CurrentPrices("anywhere")
	require.NoError(t, err)

	assert.Equal(t, 15200.0, prices["winter wheat"])
	// decimal comma vs thousands comma
	assert.Equal(t, 11500.50, prices["oats"])
	assert.Equal(t, 25500.0, prices["peas"])
	// rows with no parseable price are skipped
	assert.NotContains(t, prices, "no price")
	assert.NotContains(t, prices, "broken row")
}

func TestHTMLProviderEmptyPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>moved</p></body></html>"))
	}))
	defer srv.Close()

	_, err := NewHTMLProvider(srv.URL).CurrentPrices("anywhere")
	assert.Error(t, err)
}

func TestHTMLProviderServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewHTMLProvider(srv.URL).CurrentPrices("anywhere")
	assert.Error(t, err)
}

func TestParsePrice(t *testing.T) {
	cases := map[string]float64{
		"15200":    15200,
		"15 200":   15200,
		"11500,50": 11500.50,
		"25,500":   25500,
		"1,234.5":  1234.5,
	}
	for in, want := range cases {
		got, err := parsePrice(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parsePrice("n/a")
	assert.Error(t, err)
}

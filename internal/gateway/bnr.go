// Package gateway holds the outermost adapters. BNRRateSource implements
// account.RateSource against the published BNR reference-rate feed.
package gateway

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/domain"
)

// DefaultRatesURL is the BNR daily reference-rate XML feed.
const DefaultRatesURL = "https://www.bnr.ro/nbrfxrates.xml"

const defaultTimeout = 30 * time.Second

// BNRRateSource fetches the EUR rate from the BNR XML feed. Fetches are
// bounded by the client timeout and never retried; every failure wraps
// domain.ErrRateUnavailable.
type BNRRateSource struct {
	url    string
	client *http.Client
}

// NewBNRRateSource creates a rate source for the given feed URL. An empty
// URL selects the official feed; a non-positive timeout selects 30s.
func NewBNRRateSource(url string, timeout time.Duration) *BNRRateSource {
	if url == "" {
		url = DefaultRatesURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &BNRRateSource{url: url, client: &http.Client{Timeout: timeout}}
}

// feed layout: DataSet > Body > Cube > Rate[currency, multiplier?]
type fxDataSet struct {
	Body struct {
		Cube struct {
			Rates []fxRate `xml:"Rate"`
		} `xml:"Cube"`
	} `xml:"Body"`
}

type fxRate struct {
	Currency   string `xml:"currency,attr"`
	Multiplier string `xml:"multiplier,attr"`
	Value      string `xml:",chardata"`
}

// EurRonRate fetches and parses the feed, returning the RON value of one
// EUR with any stated multiplier applied.
func (s *BNRRateSource) EurRonRate(ctx context.Context) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: build request: %v", domain.ErrRateUnavailable, err)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: fetch %s: %v", domain.ErrRateUnavailable, s.url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return decimal.Decimal{}, fmt.Errorf("%w: fetch %s: %s", domain.ErrRateUnavailable, s.url, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: read response: %v", domain.ErrRateUnavailable, err)
	}

	var doc fxDataSet
	if err := xml.Unmarshal(body, &doc); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: parse feed: %v", domain.ErrRateUnavailable, err)
	}

	for _, r := range doc.Body.Cube.Rates {
		if r.Currency != "EUR" {
			continue
		}
		return parseRate(r)
	}
	return decimal.Decimal{}, fmt.Errorf("%w: no EUR entry in feed", domain.ErrRateUnavailable)
}

func parseRate(r fxRate) (decimal.Decimal, error) {
	// the feed occasionally uses a decimal comma
	raw := strings.ReplaceAll(strings.TrimSpace(r.Value), ",", ".")
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: parse EUR value %q: %v", domain.ErrRateUnavailable, r.Value, err)
	}
	if r.Multiplier != "" {
		m, err := decimal.NewFromString(r.Multiplier)
		if err != nil || !m.IsPositive() {
			return decimal.Decimal{}, fmt.Errorf("%w: bad multiplier %q", domain.ErrRateUnavailable, r.Multiplier)
		}
		value = value.Div(m)
	}
	return value, nil
}

package gateway_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/domain"
	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/gateway"
)

const feedTemplate = `<?xml version="1.0" encoding="utf-8"?>
<DataSet xmlns="http://www.bnr.ro/xsd">
  <Header>
    <Publisher>National Bank of Romania</Publisher>
    <PublishingDate>2026-08-31</PublishingDate>
  </Header>
  <Body>
    <Subject>Reference rates</Subject>
    <Cube date="2026-08-31">%s</Cube>
  </Body>
</DataSet>`

func TestBNRRateSource_EurRonRate(t *testing.T) {
	tests := []struct {
		name    string
		rates   string
		want    string
		wantErr bool
	}{
		{
			name: "plain EUR entry",
			rates: `
      <Rate currency="USD">4.5632</Rate>
      <Rate currency="EUR">4.9768</Rate>`,
			want: "4.9768",
		},
		{
			name:  "decimal comma tolerated",
			rates: `<Rate currency="EUR">4,9768</Rate>`,
			want:  "4.9768",
		},
		{
			name:  "multiplier applied",
			rates: `<Rate currency="EUR" multiplier="10">49.768</Rate>`,
			want:  "4.9768",
		},
		{
			name:    "EUR entry missing",
			rates:   `<Rate currency="USD">4.5632</Rate>`,
			wantErr: true,
		},
		{
			name:    "value not a number",
			rates:   `<Rate currency="EUR">n/a</Rate>`,
			wantErr: true,
		},
		{
			name:    "bad multiplier",
			rates:   `<Rate currency="EUR" multiplier="zero">4.9768</Rate>`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/xml")
				_, _ = w.Write([]byte(fmt.Sprintf(feedTemplate, tt.rates)))
			}))
			defer srv.Close()

			source := gateway.NewBNRRateSource(srv.URL, time.Second)
			got, err := source.EurRonRate(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrRateUnavailable)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got.String())
			}
		})
	}
}

func TestBNRRateSource_HTTPErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	source := gateway.NewBNRRateSource(srv.URL, time.Second)
	_, err := source.EurRonRate(context.Background())

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestBNRRateSource_MalformedXML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<DataSet><Body>"))
	}))
	defer srv.Close()

	source := gateway.NewBNRRateSource(srv.URL, time.Second)
	_, err := source.EurRonRate(context.Background())

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestBNRRateSource_ServerUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	source := gateway.NewBNRRateSource(url, time.Second)
	_, err := source.EurRonRate(context.Background())

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

func TestBNRRateSource_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	source := gateway.NewBNRRateSource(srv.URL, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := source.EurRonRate(ctx)

	assert.ErrorIs(t, err, domain.ErrRateUnavailable)
}

package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/domain"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.Currency
		wantErr bool
	}{
		{name: "upper case RON", input: "RON", want: domain.RON},
		{name: "lower case eur", input: "eur", want: domain.EUR},
		{name: "padded", input: "  ron ", want: domain.RON},
		{name: "unsupported", input: "USD", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCurrency(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatAmount(t *testing.T) {
	t.Run("known currency uses display metadata", func(t *testing.T) {
		got := domain.FormatAmount(decimal.RequireFromString("1234.5"), domain.EUR)
		assert.Equal(t, "€1,234.50", got)
	})

	t.Run("unknown code falls back to plain rendering", func(t *testing.T) {
		got := domain.FormatAmount(decimal.RequireFromString("12"), domain.Currency("ZZZ"))
		assert.Equal(t, "12.00 ZZZ", got)
	})

	t.Run("RON renders with two fraction digits", func(t *testing.T) {
		got := domain.FormatAmount(decimal.RequireFromString("1234.5"), domain.RON)
		assert.Contains(t, got, "234.50")
	})
}

func TestAccountSummaryString(t *testing.T) {
	s := domain.AccountSummary{
		ID:                 "acc-1",
		Currency:           domain.EUR,
		Balance:            decimal.RequireFromString("100"),
		MinBalance:         decimal.RequireFromString("0.1"),
		DailyWithdrawLimit: decimal.RequireFromString("5000"),
	}

	out := s.String()

	assert.Contains(t, out, "Account ID: acc-1")
	assert.Contains(t, out, "Balance: €100.00")
	assert.Contains(t, out, "Minimum Balance: €0.10")
	assert.Contains(t, out, "Daily Withdraw Limit: €5,000.00")
}

func TestRenderStatement(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	txs := []domain.Transaction{
		{Time: ts, Amount: decimal.RequireFromString("100"), Description: "Deposit (100 EUR)"},
		{Time: ts.Add(time.Hour), Amount: decimal.RequireFromString("40"), Description: "Withdraw (40 EUR)"},
	}

	out := domain.RenderStatement(txs)

	assert.Contains(t, out, "Date")
	assert.Contains(t, out, "2026-03-14T10:00:00Z\t100\tDeposit (100 EUR)")
	assert.Contains(t, out, "2026-03-14T11:00:00Z\t40\tWithdraw (40 EUR)")
}

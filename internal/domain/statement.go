package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// AccountSummary is a point-in-time view of an account's standing,
// suitable for display.
type AccountSummary struct {
	ID                 string
	Currency           Currency
	Balance            decimal.Decimal
	MinBalance         decimal.Decimal
	DailyWithdrawLimit decimal.Decimal
}

func (s AccountSummary) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Account ID: %s\n", s.ID)
	fmt.Fprintf(&b, "Balance: %s\n", FormatAmount(s.Balance, s.Currency))
	fmt.Fprintf(&b, "Minimum Balance: %s\n", FormatAmount(s.MinBalance, s.Currency))
	fmt.Fprintf(&b, "Daily Withdraw Limit: %s\n", FormatAmount(s.DailyWithdrawLimit, s.Currency))
	return b.String()
}

// FormatAmount renders an amount using the currency's display metadata
// (symbol, separators, fraction digits). Unknown codes fall back to a
// plain two-decimal rendering.
func FormatAmount(amount decimal.Decimal, cur Currency) string {
	c := money.GetCurrency(string(cur))
	if c == nil {
		return amount.StringFixed(2) + " " + string(cur)
	}
	minor := amount.Shift(int32(c.Fraction)).Round(0)
	return c.Formatter().Format(minor.IntPart())
}

// RenderStatement formats a transaction log as a printable table.
func RenderStatement(txs []Transaction) string {
	var b strings.Builder
	b.WriteString("Date\t\t\tAmount\tDescription\n")
	b.WriteString("--------------------------------------------------\n")
	for _, tx := range txs {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", tx.Time.Format(time.RFC3339), tx.Amount, tx.Description)
	}
	return b.String()
}

// Package account implements a single bank account: balance tracking,
// deposits, withdrawals under a rolling daily limit, interest accrual,
// same- and cross-currency transfers, and an append-only transaction log.
//
// Every mutating operation validates all preconditions against unmodified
// state before committing anything, so a failed call leaves the balance,
// the daily counters and the log exactly as they were.
package account

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/domain"
)

var (
	defaultMinBalance         = decimal.RequireFromString("0.1")
	defaultDailyWithdrawLimit = decimal.NewFromInt(5000)
	defaultInterestRate       = decimal.RequireFromString("0.02")
	defaultRateFloor          = decimal.NewFromInt(4)
	defaultRateCeil           = decimal.NewFromInt(6)

	daysPerYear = decimal.NewFromInt(365)
)

// Account is a single-owner entity: callers must serialize access to it
// themselves, no internal locking is performed.
type Account struct {
	id       string
	balance  decimal.Decimal
	currency domain.Currency

	minBalance         decimal.Decimal
	dailyWithdrawLimit decimal.Decimal
	withdrawnToday     decimal.Decimal
	lastWithdrawDate   time.Time

	interestRate decimal.Decimal

	// sanity bounds applied to every fetched exchange rate
	rateFloor decimal.Decimal
	rateCeil  decimal.Decimal

	rates RateSource
	clock Clock

	log []domain.Transaction
}

// Option customizes an account at construction time.
type Option func(*Account)

// WithInterestRate sets the annual interest rate.
func WithInterestRate(rate decimal.Decimal) Option {
	return func(a *Account) { a.interestRate = rate }
}

// WithDailyWithdrawLimit sets the ceiling on cumulative same-day withdrawals.
func WithDailyWithdrawLimit(limit decimal.Decimal) Option {
	return func(a *Account) { a.dailyWithdrawLimit = limit }
}

// WithMinBalance sets the floor the balance may never fall below.
func WithMinBalance(min decimal.Decimal) Option {
	return func(a *Account) { a.minBalance = min }
}

// WithRateBounds sets the sanity interval accepted for fetched rates.
func WithRateBounds(floor, ceil decimal.Decimal) Option {
	return func(a *Account) { a.rateFloor, a.rateCeil = floor, ceil }
}

// WithClock substitutes the wall clock, e.g. with a fixed clock in tests.
func WithClock(c Clock) Option {
	return func(a *Account) { a.clock = c }
}

// New creates a fully initialized account. Defaults: minimum balance 0.1,
// daily withdraw limit 5000, annual interest rate 2%, rate bounds [4, 6],
// system clock.
func New(balance decimal.Decimal, currency domain.Currency, rates RateSource, opts ...Option) *Account {
	a := &Account{
		id:                 uuid.NewString(),
		balance:            balance,
		currency:           currency,
		minBalance:         defaultMinBalance,
		dailyWithdrawLimit: defaultDailyWithdrawLimit,
		interestRate:       defaultInterestRate,
		rateFloor:          defaultRateFloor,
		rateCeil:           defaultRateCeil,
		rates:              rates,
		clock:              systemClock{},
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Deposit adds a positive amount to the balance and logs it.
func (a *Account) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}
	a.balance = a.balance.Add(amount)
	a.record(amount, fmt.Sprintf("Deposit (%s %s)", amount, a.currency))
	return nil
}

// Withdraw removes a positive amount from the balance, counting it
// against the rolling daily limit.
func (a *Account) Withdraw(amount decimal.Decimal) error {
	return a.withdraw(amount, true)
}

// withdraw holds the shared funds check; transfers call it with
// checkDailyLimit=false since they are exempt from the ceiling.
// All guards run before any state changes.
func (a *Account) withdraw(amount decimal.Decimal, checkDailyLimit bool) error {
	if !amount.IsPositive() {
		return domain.ErrInvalidAmount
	}

	now := a.clock.Now()
	withdrawn := a.withdrawnToday
	if dayBefore(a.lastWithdrawDate, now) {
		withdrawn = decimal.Zero
	}

	if checkDailyLimit && withdrawn.Add(amount).GreaterThan(a.dailyWithdrawLimit) {
		return fmt.Errorf("limit (%s %s): %w", a.dailyWithdrawLimit, a.currency, domain.ErrDailyLimitExceeded)
	}
	if a.balance.Sub(amount).LessThan(a.minBalance) {
		return domain.ErrInsufficientFunds
	}

	if checkDailyLimit {
		a.withdrawnToday = withdrawn.Add(amount)
		a.lastWithdrawDate = now
	}
	a.balance = a.balance.Sub(amount)
	a.record(amount, fmt.Sprintf("Withdraw (%s %s)", amount, a.currency))
	return nil
}

// CalculateInterest returns the interest the balance earns over the given
// number of days, rounded to two decimals, half away from zero. Pure: it
// touches no account state.
func (a *Account) CalculateInterest(days int) (decimal.Decimal, error) {
	if days <= 0 {
		return decimal.Decimal{}, fmt.Errorf("day count must be positive: %w", domain.ErrInvalidArgument)
	}
	if !a.interestRate.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("interest rate must be positive: %w", domain.ErrInvalidArgument)
	}
	interest := a.balance.Mul(a.interestRate).Mul(decimal.NewFromInt(int64(days))).Div(daysPerYear)
	return interest.Round(2), nil
}

// ApplyInterest credits the interest earned over the given number of days.
func (a *Account) ApplyInterest(days int) error {
	interest, err := a.CalculateInterest(days)
	if err != nil {
		return err
	}
	a.balance = a.balance.Add(interest)
	a.record(interest, fmt.Sprintf("Interest applied (%s for %d days -> %s %s)", interest, days, a.balance, a.currency))
	return nil
}

func (a *Account) record(amount decimal.Decimal, description string) {
	a.log = append(a.log, domain.Transaction{
		Time:        a.clock.Now(),
		Amount:      amount,
		Description: description,
	})
}

// dayBefore reports whether t falls on an earlier calendar day than ref.
func dayBefore(t, ref time.Time) bool {
	ty, tm, td := t.Date()
	ry, rm, rd := ref.Date()
	return time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC).
		Before(time.Date(ry, rm, rd, 0, 0, 0, 0, time.UTC))
}

// ID returns the opaque account identifier assigned at creation.
func (a *Account) ID() string { return a.id }

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal { return a.balance }

// Currency returns the account's denomination.
func (a *Account) Currency() domain.Currency { return a.currency }

// MinBalance returns the balance floor.
func (a *Account) MinBalance() decimal.Decimal { return a.minBalance }

// InterestRate returns the annual interest rate.
func (a *Account) InterestRate() decimal.Decimal { return a.interestRate }

// DailyWithdrawLimit returns the same-day withdrawal ceiling.
func (a *Account) DailyWithdrawLimit() decimal.Decimal { return a.dailyWithdrawLimit }

// SetDailyWithdrawLimit changes the same-day withdrawal ceiling.
func (a *Account) SetDailyWithdrawLimit(limit decimal.Decimal) { a.dailyWithdrawLimit = limit }

// History returns a copy of the transaction log, oldest first.
func (a *Account) History() []domain.Transaction {
	out := make([]domain.Transaction, len(a.log))
	copy(out, a.log)
	return out
}

// ClearHistory drops all logged transactions.
func (a *Account) ClearHistory() { a.log = nil }

// Statement renders the transaction log as a printable table.
func (a *Account) Statement() string { return domain.RenderStatement(a.log) }

// Summary returns a display view of the account's standing.
func (a *Account) Summary() domain.AccountSummary {
	return domain.AccountSummary{
		ID:                 a.id,
		Currency:           a.currency,
		Balance:            a.balance,
		MinBalance:         a.minBalance,
		DailyWithdrawLimit: a.dailyWithdrawLimit,
	}
}

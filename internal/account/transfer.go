package account

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/domain"
)

// TransferFunds moves the exact amount to a same-currency destination.
// It fails if the amount is non-positive, exceeds the balance, or would
// leave the source below its minimum balance. A successful transfer is
// exempt from the daily withdraw limit and adds two records to each
// account: the movement itself and a note referencing the counterparty.
func (a *Account) TransferFunds(dst *Account, amount decimal.Decimal) error {
	if !amount.IsPositive() || amount.GreaterThan(a.balance) {
		return domain.ErrInsufficientFunds
	}
	if dst.currency != a.currency {
		return fmt.Errorf("cannot transfer between %s and %s accounts: %w",
			a.currency, dst.currency, domain.ErrCurrencyMismatch)
	}
	if a.balance.Sub(amount).LessThan(a.minBalance) {
		return domain.ErrInsufficientFunds
	}

	if err := dst.Deposit(amount); err != nil {
		return err
	}
	if err := a.withdraw(amount, false); err != nil {
		return err
	}
	a.record(amount, fmt.Sprintf("Transfer to Account %s", dst.id))
	dst.record(amount, fmt.Sprintf("Transfer from Account %s", a.id))
	return nil
}

// TransferMinFunds behaves like TransferFunds, except that a request
// that would breach the minimum balance is silently clamped to
// balance - minBalance instead of rejected. It returns the amount
// actually moved so callers can observe the clamp.
//
// The asymmetry with TransferFunds' strict rejection is deliberate,
// pending product-owner confirmation.
func (a *Account) TransferMinFunds(dst *Account, amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() || amount.GreaterThan(a.balance) {
		return decimal.Decimal{}, domain.ErrInsufficientFunds
	}
	if dst.currency != a.currency {
		return decimal.Decimal{}, fmt.Errorf("cannot transfer between %s and %s accounts: %w",
			a.currency, dst.currency, domain.ErrCurrencyMismatch)
	}

	moved := amount
	if a.balance.Sub(amount).LessThan(a.minBalance) {
		moved = a.balance.Sub(a.minBalance)
	}

	if err := dst.Deposit(moved); err != nil {
		return decimal.Decimal{}, err
	}
	if err := a.withdraw(moved, false); err != nil {
		return decimal.Decimal{}, err
	}
	a.record(moved, fmt.Sprintf("Transfer to Account %s", dst.id))
	dst.record(moved, fmt.Sprintf("Transfer from Account %s", a.id))
	return moved, nil
}

// TransferRonToEur moves amountRon from a RON source to a EUR destination,
// crediting the converted amount. The rate source is queried exactly once,
// and only after every local precondition has passed.
func (a *Account) TransferRonToEur(ctx context.Context, dst *Account, amountRon decimal.Decimal) error {
	if !amountRon.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if a.balance.Sub(amountRon).LessThan(a.minBalance) {
		return domain.ErrInsufficientFunds
	}
	if a.currency != domain.RON || dst.currency != domain.EUR {
		return fmt.Errorf("RON to EUR transfer needs a RON source and a EUR destination: %w",
			domain.ErrCurrencyMismatch)
	}

	amountEur, err := a.ConvertRonToEur(ctx, amountRon)
	if err != nil {
		return err
	}

	if err := a.withdraw(amountRon, false); err != nil {
		return err
	}
	if err := dst.Deposit(amountEur); err != nil {
		return err
	}
	a.record(amountRon, fmt.Sprintf("Transfer to Account %s RON -> EUR", dst.id))
	dst.record(amountEur, fmt.Sprintf("Transfer from Account %s", a.id))
	return nil
}

// TransferEurToRon is the opposite direction of TransferRonToEur.
func (a *Account) TransferEurToRon(ctx context.Context, dst *Account, amountEur decimal.Decimal) error {
	if !amountEur.IsPositive() {
		return domain.ErrInvalidAmount
	}
	if a.balance.Sub(amountEur).LessThan(a.minBalance) {
		return domain.ErrInsufficientFunds
	}
	if a.currency != domain.EUR || dst.currency != domain.RON {
		return fmt.Errorf("EUR to RON transfer needs a EUR source and a RON destination: %w",
			domain.ErrCurrencyMismatch)
	}

	amountRon, err := a.ConvertEurToRon(ctx, amountEur)
	if err != nil {
		return err
	}

	if err := a.withdraw(amountEur, false); err != nil {
		return err
	}
	if err := dst.Deposit(amountRon); err != nil {
		return err
	}
	a.record(amountEur, fmt.Sprintf("Transfer to Account %s EUR -> RON", dst.id))
	dst.record(amountRon, fmt.Sprintf("Transfer from Account %s", a.id))
	return nil
}

// ConvertRonToEur converts an amount of RON into EUR at the fetched rate.
// The amount is validated before the rate source is touched; an invalid
// amount never triggers a fetch. No account state changes.
func (a *Account) ConvertRonToEur(ctx context.Context, amountRon decimal.Decimal) (decimal.Decimal, error) {
	if !amountRon.IsPositive() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if a.currency != domain.RON {
		return decimal.Decimal{}, fmt.Errorf("account currency must be RON to convert to EUR: %w",
			domain.ErrCurrencyMismatch)
	}
	rate, err := a.fetchRate(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amountRon.Div(rate), nil
}

// ConvertEurToRon converts an amount of EUR into RON at the fetched rate.
func (a *Account) ConvertEurToRon(ctx context.Context, amountEur decimal.Decimal) (decimal.Decimal, error) {
	if !amountEur.IsPositive() {
		return decimal.Decimal{}, domain.ErrInvalidAmount
	}
	if a.currency != domain.EUR {
		return decimal.Decimal{}, fmt.Errorf("account currency must be EUR to convert to RON: %w",
			domain.ErrCurrencyMismatch)
	}
	rate, err := a.fetchRate(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amountEur.Mul(rate), nil
}

// fetchRate queries the rate source and re-validates the result against
// the account's sanity bounds, whatever the source did internally.
func (a *Account) fetchRate(ctx context.Context) (decimal.Decimal, error) {
	rate, err := a.rates.EurRonRate(ctx)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if rate.LessThan(a.rateFloor) || rate.GreaterThan(a.rateCeil) {
		return decimal.Decimal{}, fmt.Errorf("rate %s outside [%s, %s]: %w",
			rate, a.rateFloor, a.rateCeil, domain.ErrInvalidRate)
	}
	return rate, nil
}

// Package domain holds the account data types and the domain error
// catalogue. Errors here are business-rule failures, not system errors;
// callers match them with errors.Is after any amount of wrapping.
package domain

import "errors"

var (
	// ErrInvalidAmount rejects non-positive monetary input.
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidArgument rejects malformed scalar input, such as a
	// non-positive day count or a non-positive interest rate.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientFunds means the operation would leave the balance
	// below the minimum, or the requested amount exceeds what is available.
	ErrInsufficientFunds = errors.New("not enough funds in the account to perform this operation")

	// ErrDailyLimitExceeded means cumulative same-day withdrawals would
	// exceed the configured ceiling.
	ErrDailyLimitExceeded = errors.New("daily withdraw limit exceeded")

	// ErrCurrencyMismatch means the operation's currency preconditions
	// do not hold for the accounts involved.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrInvalidRate means the fetched exchange rate fell outside the
	// configured sanity bounds.
	ErrInvalidRate = errors.New("exchange rate outside sane bounds")

	// ErrRateUnavailable means the rate collaborator failed to produce
	// a value at all.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

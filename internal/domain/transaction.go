package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one entry of an account's append-only log.
// Amount is always the positive magnitude of the movement; the
// direction and context live in the description.
type Transaction struct {
	Time        time.Time       `json:"time"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

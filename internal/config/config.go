// Package config reads the demo binary's settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log"
	"reflect"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config carries the runtime settings.
type Config struct {
	RatesURL           string          `env:"BNR_RATES_URL" envDefault:"https://www.bnr.ro/nbrfxrates.xml"`
	RatesTimeout       time.Duration   `env:"BNR_RATES_TIMEOUT" envDefault:"30s"`
	OpeningBalance     decimal.Decimal `env:"OPENING_BALANCE" envDefault:"0"`
	AccountCurrency    string          `env:"ACCOUNT_CURRENCY" envDefault:"RON"`
	InterestRate       decimal.Decimal `env:"INTEREST_RATE" envDefault:"0.02"`
	DailyWithdrawLimit decimal.Decimal `env:"DAILY_WITHDRAW_LIMIT" envDefault:"5000"`
}

// Load reads an optional .env file and parses the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// not a failure: production relies on real environment variables
		log.Println("no .env file found, relying on system environment")
	}

	cfg := &Config{}
	opts := env.Options{FuncMap: map[reflect.Type]env.ParserFunc{
		reflect.TypeOf(decimal.Decimal{}): func(v string) (interface{}, error) {
			return decimal.NewFromString(v)
		},
	}}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

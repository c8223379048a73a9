package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "https://www.bnr.ro/nbrfxrates.xml", cfg.RatesURL)
	assert.Equal(t, 30*time.Second, cfg.RatesTimeout)
	assert.Equal(t, "0", cfg.OpeningBalance.String())
	assert.Equal(t, "RON", cfg.AccountCurrency)
	assert.Equal(t, "0.02", cfg.InterestRate.String())
	assert.Equal(t, "5000", cfg.DailyWithdrawLimit.String())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("BNR_RATES_URL", "http://localhost:9000/rates.xml")
	t.Setenv("BNR_RATES_TIMEOUT", "5s")
	t.Setenv("OPENING_BALANCE", "1234.56")
	t.Setenv("ACCOUNT_CURRENCY", "EUR")
	t.Setenv("INTEREST_RATE", "0.035")
	t.Setenv("DAILY_WITHDRAW_LIMIT", "2500")

	cfg, err := config.Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:9000/rates.xml", cfg.RatesURL)
	assert.Equal(t, 5*time.Second, cfg.RatesTimeout)
	assert.Equal(t, "1234.56", cfg.OpeningBalance.String())
	assert.Equal(t, "EUR", cfg.AccountCurrency)
	assert.Equal(t, "0.035", cfg.InterestRate.String())
	assert.Equal(t, "2500", cfg.DailyWithdrawLimit.String())
}

func TestLoad_BadDecimal(t *testing.T) {
	t.Setenv("OPENING_BALANCE", "not-a-number")

	_, err := config.Load()

	assert.Error(t, err)
}

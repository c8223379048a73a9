package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/account"
	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/config"
	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/domain"
	"github.com/AlinLemnaru/bank-account-unit-test-project/internal/gateway"
)

func main() {
	// Define command-line flags; each one overrides its environment default.
	balanceStr := flag.String("balance", "", "Opening balance (overrides OPENING_BALANCE)")
	currencyStr := flag.String("currency", "", "Account currency, RON or EUR (overrides ACCOUNT_CURRENCY)")
	interestDays := flag.Int("interest-days", 30, "Days of interest to apply in the demo session")
	convertStr := flag.String("convert", "", "Amount to convert through the live BNR feed (optional)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	balance := cfg.OpeningBalance
	if *balanceStr != "" {
		balance, err = decimal.NewFromString(*balanceStr)
		if err != nil {
			log.Fatalf("Error parsing balance: %v", err)
		}
	}
	currencyCode := cfg.AccountCurrency
	if *currencyStr != "" {
		currencyCode = *currencyStr
	}
	currency, err := domain.ParseCurrency(currencyCode)
	if err != nil {
		log.Fatalf("Error parsing currency: %v", err)
	}

	// --- Dependency Injection (wiring the application) ---

	// 1. The rate source (the outermost layer).
	rates := gateway.NewBNRRateSource(cfg.RatesURL, cfg.RatesTimeout)

	// 2. The account, with the rate source injected (the core logic layer).
	acct := account.New(balance, currency, rates,
		account.WithInterestRate(cfg.InterestRate),
		account.WithDailyWithdrawLimit(cfg.DailyWithdrawLimit),
	)

	// --- A short scripted session ---

	if err := acct.Deposit(decimal.NewFromInt(1000)); err != nil {
		log.Fatalf("Deposit failed: %v", err)
	}
	if err := acct.Withdraw(decimal.NewFromInt(200)); err != nil {
		log.Fatalf("Withdraw failed: %v", err)
	}
	if err := acct.ApplyInterest(*interestDays); err != nil {
		log.Fatalf("Applying interest failed: %v", err)
	}

	if *convertStr != "" {
		amount, err := decimal.NewFromString(*convertStr)
		if err != nil {
			log.Fatalf("Error parsing conversion amount: %v", err)
		}
		ctx, cancel := context.WithTimeout(context.Background(), cfg.RatesTimeout)
		defer cancel()

		var converted decimal.Decimal
		switch currency {
		case domain.RON:
			converted, err = acct.ConvertRonToEur(ctx, amount)
		case domain.EUR:
			converted, err = acct.ConvertEurToRon(ctx, amount)
		}
		if err != nil {
			log.Fatalf("Conversion failed: %v", err)
		}
		fmt.Printf("Converted %s %s -> %s\n\n", amount, currency, converted.StringFixed(2))
	}

	// --- Present the output ---

	fmt.Print(acct.Summary())
	fmt.Println()
	fmt.Print(acct.Statement())
}

package domain

import "github.com/shopspring/decimal"

// AmortizationEntry is one period of a fixed-payment amortization schedule.
// Money fields are cent-exact decimals.
type AmortizationEntry struct {
	Period           int             `json:"period"`
	Payment          decimal.Decimal `json:"payment"`
	Principal        decimal.Decimal `json:"principal"`
	Interest         decimal.Decimal `json:"interest"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
}

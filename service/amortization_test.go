package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-engine/domain"
)

func TestAmortize_ZeroRateIsEvenSplit(t *testing.T) {
	payment, total, interest := amortize(12000, 0, 24)

	// Exact, not approximate: the zero-rate branch divides directly.
	assert.Equal(t, 500.0, payment)
	assert.Equal(t, 12000.0, total)
	assert.Equal(t, 0.0, interest)
}

func TestAmortize_TotalsAreConsistent(t *testing.T) {
	cases := []struct {
		name   string
		amount float64
		rate   float64
		term   int
	}{
		{"small personal loan", 10_000, 12, 24},
		{"car loan", 35_000, 7.2, 60},
		{"mortgage", 400_000, 5.5, 360},
		{"high rate", 5_000, 48, 12},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payment, total, interest := amortize(tc.amount, tc.rate, tc.term)

			require.Positive(t, payment)
			assert.InDelta(t, payment*float64(tc.term), total, 1e-9)
			assert.InDelta(t, total-tc.amount, interest, 1e-9)
		})
	}
}

func TestAmortize_KnownPayment(t *testing.T) {
	// $500,000 at 6.5% over 60 months.
	payment, total, interest := amortize(500_000, 6.5, 60)

	assert.InDelta(t, 9783.07, payment, 0.5)
	assert.InDelta(t, 586_984.45, total, 30)
	assert.InDelta(t, 86_984.45, interest, 30)
}

func TestAmortize_PaymentMonotonicInAmount(t *testing.T) {
	prev := 0.0
	for amount := 1000.0; amount <= 100_000; amount += 1000 {
		payment, _, _ := amortize(amount, 6.5, 60)
		require.GreaterOrEqual(t, payment, prev, "payment decreased at amount %.0f", amount)
		prev = payment
	}
}

func TestAffordability_DTIMonotonicInIncome(t *testing.T) {
	prev := domain.DTIUndefined
	for income := 10_000.0; income <= 500_000; income += 10_000 {
		_, dti := affordability(2000, income, 1500, 12_000)
		require.LessOrEqual(t, dti, prev, "dti increased at income %.0f", income)
		prev = dti
	}
}

func TestAffordability_ZeroIncomeSentinel(t *testing.T) {
	monthlyIncome, dti := affordability(2000, 0, 1500, 12_000)

	assert.Equal(t, 0.0, monthlyIncome)
	assert.Equal(t, domain.DTIUndefined, dti)
}

func TestMaxLoanAmount_InverseOfAmortize(t *testing.T) {
	cases := []struct {
		name     string
		income   float64
		expenses float64
		debt     float64
		rate     float64
		term     int
	}{
		{"mid income", 150_000, 3500, 15_000, 6.5, 60},
		{"high income long term", 300_000, 2000, 0, 5.0, 360},
		{"tight budget", 60_000, 1500, 6_000, 9.9, 48},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			available := tc.income/12*MaxDTIFraction - tc.expenses - tc.debt/12
			require.Positive(t, available, "case must have headroom")

			maxAmount := maxLoanAmount(tc.income, tc.expenses, tc.debt, tc.rate, tc.term, MaxDTIFraction)
			payment, _, _ := amortize(maxAmount, tc.rate, tc.term)

			// The payment on the max loan consumes exactly the available headroom.
			assert.InEpsilon(t, available, payment, 1e-6)
		})
	}
}

func TestMaxLoanAmount_ZeroRateInverse(t *testing.T) {
	// income 150k, expenses 3500, debt 15k: headroom is 625/month.
	maxAmount := maxLoanAmount(150_000, 3500, 15_000, 0, 60, MaxDTIFraction)

	assert.InDelta(t, 37_500, maxAmount, 1e-9)
}

func TestMaxLoanAmount_NoHeadroomClampsToZero(t *testing.T) {
	// Expenses alone exceed 43% of monthly income.
	assert.Equal(t, 0.0, maxLoanAmount(24_000, 5000, 0, 6.5, 60, MaxDTIFraction))
	// Zero income.
	assert.Equal(t, 0.0, maxLoanAmount(0, 0, 0, 6.5, 60, MaxDTIFraction))
}

func TestMaxLoanAmount_KnownValue(t *testing.T) {
	maxAmount := maxLoanAmount(150_000, 3500, 15_000, 6.5, 60, MaxDTIFraction)

	assert.InDelta(t, 31_942.92, maxAmount, 0.01)
}

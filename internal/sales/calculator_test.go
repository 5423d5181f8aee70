package sales

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSale() Sale {
	return Sale{
		Address:          "Testgatan 1",
		AreaSqm:          50.0,
		Rooms:            2,
		Floor:            3,
		PurchasePrice:    2_000_000,
		PurchaseDate:     date(2020, time.January, 1),
		SalePrice:        2_500_000,
		SaleDate:         date(2024, time.January, 1),
		MonthlyFee:       Float(3_000),
		RenovationCosts:  Float(100_000),
		BrokerFeePercent: Float(2.0),
	}
}

func minimalSale() Sale {
	return Sale{
		Address:       "Minigatan 1",
		AreaSqm:       30.0,
		Rooms:         1,
		Floor:         1,
		PurchasePrice: 1_000_000,
		PurchaseDate:  date(2022, time.January, 1),
		SalePrice:     1_100_000,
		SaleDate:      date(2024, time.January, 1),
	}
}

func TestGrossProfit(t *testing.T) {
	assert.Equal(t, 500_000.0, testSale().GrossProfit())

	loss := testSale()
	loss.SalePrice = 1_800_000
	assert.Equal(t, -200_000.0, loss.GrossProfit(), "a loss is a negative gross profit")
}

func TestNetProfit(t *testing.T) {
	// 500,000 gross - 50,000 broker (2%) - 100,000 renovation
	s := testSale()
	assert.Equal(t, 50_000.0, s.BrokerFee())
	assert.Equal(t, 350_000.0, s.NetProfit())
}

func TestNetProfit_NoBrokerFee(t *testing.T) {
	s := minimalSale()
	s.BrokerFeePercent = nil

	assert.Equal(t, 0.0, s.EffectiveBrokerFeePercent())
	assert.Equal(t, 0.0, s.BrokerFee())
	assert.Equal(t, 100_000.0, s.NetProfit())

	s.RenovationCosts = Float(25_000)
	assert.Equal(t, s.GrossProfit()-25_000, s.NetProfit(), "only renovation is deducted without a broker fee")
}

func TestOwnershipYears(t *testing.T) {
	tests := []struct {
		name     string
		purchase time.Time
		sale     time.Time
		want     float64
	}{
		{"four years", date(2020, time.January, 1), date(2024, time.January, 1), 4.0},
		{"example sale", date(2020, time.March, 15), date(2024, time.November, 20), 4.7},
		{"same day", date(2024, time.May, 5), date(2024, time.May, 5), 0.0},
		{"under a month", date(2024, time.May, 5), date(2024, time.May, 20), 0.0},
		{"six weeks", date(2024, time.January, 1), date(2024, time.February, 12), 0.1},
		{"sold before bought", date(2024, time.January, 1), date(2022, time.January, 1), -2.0},
		{"longer than a Duration", date(1600, time.January, 1), date(2024, time.January, 1), 424.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testSale()
			s.PurchaseDate = tt.purchase
			s.SaleDate = tt.sale
			assert.Equal(t, tt.want, s.OwnershipYears())
		})
	}
}

func TestOwnershipYears_IgnoresTimeOfDay(t *testing.T) {
	s := testSale()
	s.PurchaseDate = time.Date(2020, time.January, 1, 23, 59, 0, 0, time.UTC)
	s.SaleDate = time.Date(2024, time.January, 1, 0, 1, 0, 0, time.FixedZone("CET", 3600))

	assert.Equal(t, 4.0, s.OwnershipYears())
}

func TestAnnualReturnPercent(t *testing.T) {
	// 350,000 / 2,000,000 = 17.5% over 4 years = 4.375 -> 4.38
	got, err := testSale().AnnualReturnPercent()
	require.NoError(t, err)
	assert.Equal(t, 4.38, got)

	example, err := ExampleSale().AnnualReturnPercent()
	require.NoError(t, err)
	assert.Equal(t, 4.14, example)
}

func TestAnnualReturnPercent_Loss(t *testing.T) {
	s := Sale{
		Address:          "Loss",
		AreaSqm:          40,
		Rooms:            1,
		Floor:            -1,
		PurchasePrice:    3_000_000,
		PurchaseDate:     date(2021, time.June, 1),
		SalePrice:        2_700_000,
		SaleDate:         date(2023, time.June, 1),
		BrokerFeePercent: Float(2.0),
	}

	got, err := s.AnnualReturnPercent()
	require.NoError(t, err)
	assert.Equal(t, -354_000.0, s.NetProfit())
	assert.Equal(t, -5.9, got)
}

func TestAnnualReturnPercent_ZeroYears(t *testing.T) {
	s := testSale()
	s.SaleDate = s.PurchaseDate

	got, err := s.AnnualReturnPercent()
	require.NoError(t, err)
	assert.Equal(t, 0.0, got)

	s.PurchasePrice = 0
	got, err = s.AnnualReturnPercent()
	require.NoError(t, err, "zero years wins over a zero purchase price")
	assert.Equal(t, 0.0, got)
}

func TestAnnualReturnPercent_ZeroPurchasePrice(t *testing.T) {
	s := testSale()
	s.PurchasePrice = 0

	_, err := s.AnnualReturnPercent()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrZeroPurchasePrice))
	assert.Contains(t, err.Error(), "purchase_price")

	_, err = s.Calculate()
	assert.ErrorIs(t, err, ErrZeroPurchasePrice)
}

func TestCalculate_OutOfRange(t *testing.T) {
	s := testSale()
	s.PurchasePrice = math.MaxFloat64
	s.SalePrice = 0
	s.RenovationCosts = Float(math.MaxFloat64)

	_, err := s.Calculate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
	assert.Contains(t, err.Error(), "net_profit")

	_, err = Render(s)
	assert.ErrorIs(t, err, ErrAmountOutOfRange)
}

func TestCalculate(t *testing.T) {
	m, err := testSale().Calculate()
	require.NoError(t, err)

	assert.Equal(t, Metrics{
		GrossProfit:         500_000,
		BrokerFee:           50_000,
		NetProfit:           350_000,
		OwnershipYears:      4.0,
		AnnualReturnPercent: 4.38,
	}, m)
}

func TestRoundTo(t *testing.T) {
	tests := []struct {
		val    float64
		places int
		want   float64
	}{
		{4.375, 2, 4.38},
		{4.365, 2, 4.37},
		{2.675, 2, 2.67},
		{0.25, 1, 0.2},
		{0.35, 1, 0.3},
		{-5.899999999999999, 1, -5.9},
		{4.0, 1, 4.0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, roundTo(tt.val, tt.places), "roundTo(%v, %d)", tt.val, tt.places)
	}
}

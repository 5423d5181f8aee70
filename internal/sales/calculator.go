package sales

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrZeroPurchasePrice is returned when the annual return would divide by a zero purchase price.
var ErrZeroPurchasePrice = errors.New("purchase price is zero")

// ErrAmountOutOfRange is returned when a derived figure does not fit in a float64.
var ErrAmountOutOfRange = errors.New("amount out of range")

const (
	daysPerYear   = 365.25
	secondsPerDay = 24 * 60 * 60
)

// GrossProfit is the sale price minus the purchase price. Negative means a loss.
func (s Sale) GrossProfit() float64 {
	return s.SalePrice - s.PurchasePrice
}

// EffectiveBrokerFeePercent is the broker fee percentage, or 0 when unset.
func (s Sale) EffectiveBrokerFeePercent() float64 {
	if s.BrokerFeePercent == nil {
		return 0
	}
	return *s.BrokerFeePercent
}

// BrokerFee is the broker's cut of the sale price.
func (s Sale) BrokerFee() float64 {
	// rounded to float64 before use in NetProfit
	return float64(s.SalePrice * (s.EffectiveBrokerFeePercent() / 100))
}

func (s Sale) renovationCosts() float64 {
	if s.RenovationCosts == nil {
		return 0
	}
	return *s.RenovationCosts
}

// NetProfit is the gross profit minus broker fee and renovation costs.
func (s Sale) NetProfit() float64 {
	return s.GrossProfit() - s.BrokerFee() - s.renovationCosts()
}

// OwnershipYears approximates the holding period in years, to one decimal.
// Only the calendar days of the two dates count.
func (s Sale) OwnershipYears() float64 {
	days := (calendarDay(s.SaleDate).Unix() - calendarDay(s.PurchaseDate).Unix()) / secondsPerDay
	return roundTo(float64(days)/daysPerYear, 1)
}

// AnnualReturnPercent is the net return on the purchase price spread over the
// ownership years, to two decimals. It is 0 when ownership rounds to zero years.
func (s Sale) AnnualReturnPercent() (float64, error) {
	years := s.OwnershipYears()
	if years == 0 {
		return 0, nil
	}
	if s.PurchasePrice == 0 {
		return 0, fmt.Errorf("purchase_price: %w", ErrZeroPurchasePrice)
	}
	totalReturnPercent := float64(s.NetProfit()/s.PurchasePrice) * 100
	return roundTo(totalReturnPercent/years, 2), nil
}

// Calculate derives all metrics for the sale.
func (s Sale) Calculate() (Metrics, error) {
	annual, err := s.AnnualReturnPercent()
	if err != nil {
		return Metrics{}, err
	}
	m := Metrics{
		GrossProfit:         s.GrossProfit(),
		BrokerFee:           s.BrokerFee(),
		NetProfit:           s.NetProfit(),
		OwnershipYears:      s.OwnershipYears(),
		AnnualReturnPercent: annual,
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"gross_profit", m.GrossProfit},
		{"broker_fee", m.BrokerFee},
		{"net_profit", m.NetProfit},
		{"annual_return_percent", m.AnnualReturnPercent},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return Metrics{}, fmt.Errorf("%s: %w", f.name, ErrAmountOutOfRange)
		}
	}
	return m, nil
}

// roundTo rounds val to the given number of decimals, half to even on the
// exact binary value.
func roundTo(val float64, places int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(val, 'f', places, 64), 64)
	return r
}

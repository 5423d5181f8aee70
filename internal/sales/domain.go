package sales

import "time"

// DefaultBrokerFeePercent is applied when no broker fee is given.
const DefaultBrokerFeePercent = 2.0

// Sale represents one completed apartment sale.
// A Sale is a value: nothing in this package mutates it after construction.
type Sale struct {
	Address string
	AreaSqm float64
	Rooms   int
	Floor   int

	PurchasePrice float64
	PurchaseDate  time.Time
	SalePrice     float64
	SaleDate      time.Time

	// Optional details. A nil pointer means absent.
	MonthlyFee       *float64
	RenovationCosts  *float64
	BrokerFeePercent *float64
	Description      string
}

// Metrics holds the figures derived from a Sale.
type Metrics struct {
	GrossProfit         float64 `json:"gross_profit"`
	BrokerFee           float64 `json:"broker_fee"`
	NetProfit           float64 `json:"net_profit"`
	OwnershipYears      float64 `json:"ownership_years"`
	AnnualReturnPercent float64 `json:"annual_return_percent"`
}

// Report is a rendered sale description kept by the Service.
type Report struct {
	ID        string    `json:"id"`
	Address   string    `json:"address"`
	Metrics   Metrics   `json:"metrics"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Float returns a pointer to a copy of v, for filling optional fields.
func Float(v float64) *float64 {
	return &v
}

// ExampleSale returns a fully populated sale used for demonstration.
func ExampleSale() Sale {
	return Sale{
		Address:          "Storgatan 15, 2tr, 123 45 Stockholm",
		AreaSqm:          62.5,
		Rooms:            2,
		Floor:            2,
		PurchasePrice:    2_500_000,
		PurchaseDate:     date(2020, time.March, 15),
		SalePrice:        3_200_000,
		SaleDate:         date(2024, time.November, 20),
		MonthlyFee:       Float(3_850),
		RenovationCosts:  Float(150_000),
		BrokerFeePercent: Float(DefaultBrokerFeePercent),
		Description:      "Charmig 2:a med balkong i söderläge. Renoverad med nya golv och fräscht kök.",
	}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// calendarDay drops the time-of-day and location of t.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return date(y, m, d)
}

func copyFloat(v *float64) *float64 {
	if v == nil {
		return nil
	}
	return Float(*v)
}

package sales

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// DateLayout is the accepted layout for purchase and sale dates.
const DateLayout = "2006-01-02"

// FieldError reports an input option that could not be turned into a Sale.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Input is the set of options a Sale is built from. Dates are YYYY-MM-DD strings.
type Input struct {
	Address       string  `json:"address" mapstructure:"address"`
	Area          float64 `json:"area" mapstructure:"area"`
	Rooms         int     `json:"rooms" mapstructure:"rooms"`
	Floor         int     `json:"floor" mapstructure:"floor"`
	PurchasePrice float64 `json:"purchase_price" mapstructure:"purchase_price"`
	PurchaseDate  string  `json:"purchase_date" mapstructure:"purchase_date"`
	SalePrice     float64 `json:"sale_price" mapstructure:"sale_price"`
	SaleDate      string  `json:"sale_date" mapstructure:"sale_date"`

	MonthlyFee      *float64 `json:"monthly_fee,omitempty" mapstructure:"monthly_fee"`
	RenovationCosts *float64 `json:"renovation_costs,omitempty" mapstructure:"renovation_costs"`
	// BrokerFeePercent falls back to DefaultBrokerFeePercent when nil.
	BrokerFeePercent *float64 `json:"broker_fee_percent,omitempty" mapstructure:"broker_fee_percent"`
	// NoBrokerFee leaves the broker fee unset, which counts as 0%.
	NoBrokerFee bool   `json:"no_broker_fee,omitempty" mapstructure:"no_broker_fee"`
	Description string `json:"description,omitempty" mapstructure:"description"`
}

// Sale validates the input and builds an immutable Sale from it.
// The returned error is a *FieldError naming the first offending option.
func (in Input) Sale() (Sale, error) {
	if strings.TrimSpace(in.Address) == "" {
		return Sale{}, &FieldError{Field: "address", Message: "must not be empty"}
	}
	if err := checkAmount("area", in.Area); err != nil {
		return Sale{}, err
	}
	if in.Area <= 0 {
		return Sale{}, &FieldError{Field: "area", Message: "must be greater than zero"}
	}
	if in.Rooms <= 0 {
		return Sale{}, &FieldError{Field: "rooms", Message: "must be greater than zero"}
	}
	if err := checkAmount("purchase_price", in.PurchasePrice); err != nil {
		return Sale{}, err
	}
	if err := checkAmount("sale_price", in.SalePrice); err != nil {
		return Sale{}, err
	}

	purchaseDate, err := ParseDate("purchase_date", in.PurchaseDate)
	if err != nil {
		return Sale{}, err
	}
	saleDate, err := ParseDate("sale_date", in.SaleDate)
	if err != nil {
		return Sale{}, err
	}

	if err := checkOptionalAmount("monthly_fee", in.MonthlyFee); err != nil {
		return Sale{}, err
	}
	if err := checkOptionalAmount("renovation_costs", in.RenovationCosts); err != nil {
		return Sale{}, err
	}
	if !in.NoBrokerFee {
		if err := checkOptionalAmount("broker_fee_percent", in.BrokerFeePercent); err != nil {
			return Sale{}, err
		}
	}

	var brokerFee *float64
	switch {
	case in.NoBrokerFee:
	case in.BrokerFeePercent != nil:
		brokerFee = copyFloat(in.BrokerFeePercent)
	default:
		brokerFee = Float(DefaultBrokerFeePercent)
	}

	return Sale{
		Address:          in.Address,
		AreaSqm:          in.Area,
		Rooms:            in.Rooms,
		Floor:            in.Floor,
		PurchasePrice:    in.PurchasePrice,
		PurchaseDate:     purchaseDate,
		SalePrice:        in.SalePrice,
		SaleDate:         saleDate,
		MonthlyFee:       copyFloat(in.MonthlyFee),
		RenovationCosts:  copyFloat(in.RenovationCosts),
		BrokerFeePercent: brokerFee,
		Description:      in.Description,
	}, nil
}

// checkAmount rejects NaN, infinite and negative values for the named field.
func checkAmount(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &FieldError{Field: field, Message: "must be a finite number"}
	}
	if v < 0 {
		return &FieldError{Field: field, Message: "must not be negative"}
	}
	return nil
}

func checkOptionalAmount(field string, v *float64) error {
	if v == nil {
		return nil
	}
	return checkAmount(field, *v)
}

// ParseDate parses a YYYY-MM-DD value for the named field.
func ParseDate(field, value string) (time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, &FieldError{Field: field, Message: "is required (YYYY-MM-DD)"}
	}
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, &FieldError{Field: field, Message: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return calendarDay(t), nil
}

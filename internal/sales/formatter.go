package sales

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	bannerWidth = 60
	reportTitle = "FÖRSÄLJNINGSBESKRIVNING - LÄGENHET"
	currency    = "SEK"
)

// Render builds the text description of the sale: property details, costs and
// profit figures, one line per item, joined by "\n".
func Render(s Sale) (string, error) {
	m, err := s.Calculate()
	if err != nil {
		return "", fmt.Errorf("render sale %q: %w", s.Address, err)
	}

	banner := strings.Repeat("=", bannerWidth)
	lines := []string{banner, reportTitle, banner, ""}

	lines = append(lines,
		"FASTIGHETSINFORMATION:",
		"  Adress: "+s.Address,
		"  Storlek: "+formatNumber(s.AreaSqm)+" m²",
		"  Antal rum: "+strconv.Itoa(s.Rooms),
		"  Våning: "+strconv.Itoa(s.Floor),
	)
	if displayed(s.MonthlyFee) {
		lines = append(lines, "  Månadskostnad: "+formatAmount(*s.MonthlyFee))
	}
	lines = append(lines, "")

	if s.Description != "" {
		lines = append(lines, "BESKRIVNING:", "  "+s.Description, "")
	}

	lines = append(lines,
		"EKONOMISK INFORMATION:",
		"  Köpdatum: "+s.PurchaseDate.Format(DateLayout),
		"  Köpeskilling: "+formatAmount(s.PurchasePrice),
		"  Försäljningsdatum: "+s.SaleDate.Format(DateLayout),
		"  Försäljningspris: "+formatAmount(s.SalePrice),
		"",
	)

	lines = append(lines,
		"KOSTNADER:",
		fmt.Sprintf("  Mäklarprovision (%s%%): %s", formatNumber(s.EffectiveBrokerFeePercent()), formatAmount(m.BrokerFee)),
	)
	if displayed(s.RenovationCosts) {
		lines = append(lines, "  Renoveringskostnader: "+formatAmount(*s.RenovationCosts))
	}
	lines = append(lines, "")

	lines = append(lines,
		"VINSTBERÄKNING:",
		"  Bruttovinst: "+formatAmount(m.GrossProfit),
		"  Nettovinst: "+formatAmount(m.NetProfit),
		"  Ägandets längd: "+formatNumber(m.OwnershipYears)+" år",
		"  Årlig avkastning: "+formatNumber(m.AnnualReturnPercent)+"%",
		"",
	)

	lines = append(lines, banner)
	return strings.Join(lines, "\n"), nil
}

// displayed reports whether an optional amount gets its own line.
// Zero is treated like absent.
func displayed(v *float64) bool {
	return v != nil && *v != 0
}

// formatAmount renders a currency amount in whole units with thousands separators.
// Halves round to even on the exact binary value, with no upper bound.
func formatAmount(v float64) string {
	digits := strconv.FormatFloat(v, 'f', 0, 64)
	whole, err := decimal.NewFromString(digits)
	if err != nil {
		return digits + " " + currency
	}
	return humanize.BigComma(whole.BigInt()) + " " + currency
}

// formatNumber renders v in its shortest form, keeping at least one decimal.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

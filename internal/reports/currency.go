// Package reports implements the aggregation and insight engine.
//
// Everything in this package is a pure function over transactions and
// budgets that have already been loaded; nothing here touches the database.
package reports

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// formatAmount renders an amount for use in insight messages, with
// locale-aware grouping and two decimal places.
func formatAmount(amount decimal.Decimal) string {
	return printer.Sprintf("%.2f$", amount.InexactFloat64())
}

// formatPercent renders a percentage without decimal places.
func formatPercent(percent float64) string {
	return printer.Sprintf("%.0f%%", percent)
}

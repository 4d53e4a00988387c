package utils

import (
	"github.com/shopspring/decimal"
)

// minorUnitExponent is the number of decimal places of the currencies checkout accepts.
const minorUnitExponent = 2

// FormatMinorUnits formats an amount given in minor units (cents) as a major-unit string.
// Example: 1999 returns "19.99", 500 returns "5.00"
func FormatMinorUnits(amount int64) string {
	return decimal.New(amount, -minorUnitExponent).StringFixed(minorUnitExponent)
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.Round(int32(precision)).String()
}

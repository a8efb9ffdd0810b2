package kernel

import "github.com/shopspring/decimal"

// MoneyPlaces is the number of decimal places kept for every monetary amount.
const MoneyPlaces = 2

// RoundMoney rounds half away from zero to MoneyPlaces.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// Percent returns amount × percent / 100 rounded to MoneyPlaces.
//
// Example:
//
//	tax := kernel.Percent(decimal.NewFromInt(600), decimal.NewFromInt(5)) // 30.00
func Percent(amount, percent decimal.Decimal) decimal.Decimal {
	return RoundMoney(amount.Mul(percent).Div(decimal.NewFromInt(100)))
}

// LineTotal returns unitPrice × quantity.
func LineTotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

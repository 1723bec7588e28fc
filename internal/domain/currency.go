package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyBTC  Currency = "BTC"
	CurrencyETH  Currency = "ETH"
	CurrencyUSDT Currency = "USDT"
)

// DefaultPrecision is the number of fractional digits kept for crypto amounts.
const DefaultPrecision int32 = 8

func SupportedCurrencies() []Currency {
	return []Currency{CurrencyBTC, CurrencyETH, CurrencyUSDT}
}

func ParseCurrency(s string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

func (c Currency) Validate() error {
	switch c {
	case CurrencyBTC, CurrencyETH, CurrencyUSDT:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedCurrency, string(c))
	}
}

// Precision returns the number of fractional digits amounts in c are rounded to.
func (c Currency) Precision() int32 {
	switch c {
	case CurrencyBTC, CurrencyETH:
		return DefaultPrecision
	case CurrencyUSDT:
		return 6
	default:
		return DefaultPrecision
	}
}

// CheckAmount requires a positive amount with no more fractional digits
// than c carries.
func (c Currency) CheckAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidAmount, amount)
	}
	if !amount.Equal(amount.Truncate(c.Precision())) {
		return fmt.Errorf("%w: %s supports at most %d decimal places, got %s", ErrInvalidAmount, c, c.Precision(), amount)
	}
	return nil
}

func (c Currency) String() string {
	return string(c)
}

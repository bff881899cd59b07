package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	ErrParse            = errors.New("invalid price")
	ErrCurrencyMismatch = errors.New("currency mismatch")
)

// Money is an amount in minor units tagged with the currency symbol it was
// quoted in, e.g. {Currency: "₹", Amount: 499}.
type Money struct {
	Currency string
	Amount   int64
}

func (m Money) String() string {
	return m.Currency + strconv.FormatInt(m.Amount, 10)
}

// ParsePrice strips exactly one leading currency symbol (Unicode category Sc)
// and parses the rest as a non-negative integer. "₹499" -> {₹, 499}.
func ParsePrice(price string) (Money, error) {
	sym, size := utf8.DecodeRuneInString(price)
	if !unicode.Is(unicode.Sc, sym) {
		return Money{}, fmt.Errorf("%w: %q has no currency symbol", ErrParse, price)
	}

	digits := price[size:]
	if digits == "" || strings.TrimFunc(digits, isASCIIDigit) != "" {
		return Money{}, fmt.Errorf("%w: %q is not a whole amount", ErrParse, price)
	}

	amount, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q: %v", ErrParse, price, err)
	}

	return Money{Currency: string(sym), Amount: amount}, nil
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

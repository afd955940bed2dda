package costparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DefaultCurrency is assumed when no currency code or symbol is present.
const DefaultCurrency = "IDR"

// Cost is a parsed cost: a numeric amount and a currency token
// (ISO-style code such as "JPY" or a symbol such as "$").
type Cost struct {
	Amount   float64
	Currency string
}

// String renders the cost as "<currency> <amount>", e.g. "JPY 400".
// Parsing the result yields the same amount and currency back.
func (c Cost) String() string {
	return fmt.Sprintf("%s %s", c.Currency, strconv.FormatFloat(c.Amount, 'f', -1, 64))
}

// costPattern matches a currency code/symbol adjacent to a number,
// in either order: "JPY 400", "Rp 50000", "$100", "400 JPY".
var costPattern = regexp.MustCompile(`(?i)([A-Za-z]{2,3}|[$€£₹])?\s*([\d,.]+)\s*([A-Za-z]{2,3}|[$€£₹])?`)

// fallbackSymbols are scanned in the raw text, in priority order, when the
// pattern captured a number but no adjacent currency token.
var fallbackSymbols = []string{"$", "Rp", "€", "£", "₹"}

// Parse extracts a numeric amount and currency token from a free-form cost
// string. A false return is an expected outcome, not an error: free-text
// values like "Gratis" carry no number at all.
func Parse(costString string) (Cost, bool) {
	if costString == "" {
		return Cost{}, false
	}

	match := costPattern.FindStringSubmatch(costString)
	if match == nil {
		return Cost{}, false
	}

	amountString := strings.ReplaceAll(match[2], ",", "")

	// Prefer the leading token over the trailing one.
	currency := match[1]
	if currency == "" {
		currency = match[3]
	}
	currency = strings.ToUpper(currency)

	if currency == "" {
		for _, sym := range fallbackSymbols {
			if strings.Contains(costString, sym) {
				currency = sym
				break
			}
		}
	}

	amount, err := strconv.ParseFloat(amountString, 64)
	if err != nil {
		return Cost{}, false
	}

	if currency == "" {
		currency = DefaultCurrency
	}

	return Cost{Amount: amount, Currency: currency}, true
}

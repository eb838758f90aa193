package models

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// DiscountKind identifies how a discount value is interpreted.
type DiscountKind uint8

const (
	// DiscountNone contributes nothing. Malformed wire values resolve here.
	DiscountNone DiscountKind = iota
	// DiscountPercentage is a percentage of the line subtotal.
	DiscountPercentage
	// DiscountFixedAmount is a fixed per-unit amount in minor currency units.
	DiscountFixedAmount
)

// DiscountValue is the resolved form of a catalog discount value. The catalog
// API sends the value as a percentage string ("10%"), a bare number, a numeric
// string, or null; it is parsed exactly once, on the way in, so pricing never
// has to re-sniff types.
type DiscountValue struct {
	Kind    DiscountKind
	Percent decimal.Decimal // set when Kind == DiscountPercentage
	Amount  int64           // per-unit minor units, set when Kind == DiscountFixedAmount
}

// PercentageValue builds a percentage discount value.
func PercentageValue(percent decimal.Decimal) DiscountValue {
	return DiscountValue{Kind: DiscountPercentage, Percent: percent}
}

// FixedAmountValue builds a fixed per-unit discount value.
func FixedAmountValue(amount int64) DiscountValue {
	return DiscountValue{Kind: DiscountFixedAmount, Amount: amount}
}

// ParseDiscountValue resolves a raw wire value into its tagged form.
// Anything unparseable resolves to DiscountNone rather than an error.
func ParseDiscountValue(raw string) DiscountValue {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DiscountValue{}
	}

	if strings.Contains(raw, "%") {
		percent, ok := parseLeadingDecimal(raw)
		if !ok {
			return DiscountValue{}
		}
		return PercentageValue(percent)
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return DiscountValue{}
	}
	return FixedAmountValue(amount.Round(0).IntPart())
}

// UnmarshalJSON accepts the catalog wire forms: null, number, numeric string,
// or percentage string.
func (v *DiscountValue) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = DiscountValue{}
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = ParseDiscountValue(s)
		return nil
	}

	amount, err := decimal.NewFromString(trimmed)
	if err != nil {
		// Not a number the platform should have sent; treat as no contribution.
		*v = DiscountValue{}
		return nil
	}
	*v = FixedAmountValue(amount.Round(0).IntPart())
	return nil
}

// MarshalJSON writes the canonical wire form for each kind.
func (v DiscountValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case DiscountPercentage:
		return json.Marshal(v.Percent.String() + "%")
	case DiscountFixedAmount:
		return json.Marshal(v.Amount)
	default:
		return []byte("null"), nil
	}
}

// Discount is a single catalog discount as offered for, or applied to, a cart
// item. Wire keys match the catalog payloads the storefront consumes.
type Discount struct {
	Name  string        `json:"discount_name"`
	Value DiscountValue `json:"discount_value"`
}

// parseLeadingDecimal parses the leading numeric portion of a string, the way
// the storefront historically read values like "10% off".
func parseLeadingDecimal(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	end := 0
	seenDigit := false
	seenDot := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			seenDigit = true
		case (c == '+' || c == '-') && i == 0:
		case c == '.' && !seenDot:
			seenDot = true
		default:
			goto parsed
		}
		end = i + 1
	}
parsed:
	if !seenDigit {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s[:end])
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

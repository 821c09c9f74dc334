package part

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FlexInt decodes from a JSON number or string. Absent, null, or unparseable
// values become 0; fractional input truncates toward zero. This mirrors the
// permissive coercion the API has always applied to quantity.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	*f = 0
	s := trimJSON(data)
	if s == "" {
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		*f = FlexInt(n)
		return nil
	}
	if fl, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(fl) && !math.IsInf(fl, 0) {
		*f = FlexInt(fl)
	}
	return nil
}

// FlexDecimal decodes like FlexInt but keeps the full decimal value.
type FlexDecimal decimal.Decimal

func (f *FlexDecimal) UnmarshalJSON(data []byte) error {
	*f = FlexDecimal(decimal.Zero)
	s := trimJSON(data)
	if s == "" {
		return nil
	}
	if d, err := decimal.NewFromString(s); err == nil {
		*f = FlexDecimal(d)
	}
	return nil
}

func (f FlexDecimal) Decimal() decimal.Decimal { return decimal.Decimal(f) }

// trimJSON strips whitespace and surrounding quotes from a raw JSON token and
// maps null to the empty string.
func trimJSON(data []byte) string {
	s := strings.TrimSpace(string(data))
	s = strings.TrimSpace(strings.Trim(s, `"`))
	if s == "null" {
		return ""
	}
	return s
}

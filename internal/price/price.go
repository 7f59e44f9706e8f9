// Package price normalizes the heterogeneous price values stored on catalog
// rows (localized digit strings, currency text, plain numbers) into a canonical
// numeric amount plus the original display text.
package price

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Normalized is the canonical form of a price: the numeric value used for
// arithmetic and the trimmed original text kept for display.
type Normalized struct {
	Display string
	Numeric float64
}

// FromNumber wraps an already-numeric price.
func FromNumber(f float64) Normalized {
	return Normalized{
		Display: strconv.FormatFloat(f, 'f', -1, 64),
		Numeric: f,
	}
}

// FromString parses localized price text. Arabic-Indic and Extended
// Arabic-Indic digits are translated to ASCII first, everything except digits
// and separators is stripped, commas are treated as separator noise and
// collapsed so that only the last period survives as the decimal point.
// Unparseable input yields Numeric 0 rather than an error: the value feeds an
// informational total, not a ledger of record.
func FromString(s string) Normalized {
	display := strings.TrimSpace(s)

	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= '٠' && r <= '٩': // Arabic-Indic ٠..٩
			b.WriteRune('0' + (r - '٠'))
		case r >= '۰' && r <= '۹': // Extended Arabic-Indic ۰..۹
			b.WriteRune('0' + (r - '۰'))
		case r == '.' || r == '٫': // ٫ Arabic decimal separator
			b.WriteRune('.')
		case r == ',' || r == '٬': // ٬ Arabic thousands separator
			b.WriteRune(',')
		}
	}

	return Normalized{
		Display: display,
		Numeric: parseAmount(b.String()),
	}
}

// parseAmount collapses separator ambiguity and parses the remaining digits.
// Commas become periods, then all but the last period are dropped, so both
// "1,234.50" and "1.234,50" end up as 1234.50.
func parseAmount(s string) float64 {
	s = strings.ReplaceAll(s, ",", ".")

	if last := strings.LastIndexByte(s, '.'); last >= 0 {
		intPart := strings.ReplaceAll(s[:last], ".", "")
		s = intPart + "." + s[last+1:]
	}

	if s == "" || s == "." {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// Input accepts a JSON price field that may be either a number or a string,
// mirroring the mixed shapes the catalog rows carry.
type Input struct {
	Normalized
}

func (in *Input) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		in.Normalized = FromNumber(f)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	in.Normalized = FromString(s)
	return nil
}

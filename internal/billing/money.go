package billing

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Monetary values travel as locale-formatted free text ("1.234,56",
// "R$ 50,00") and are normalized to int64 centavos. Garbage parses to 0; the
// engine never fails a projection over a bad cell.

// ParseAmount converts a locale-formatted monetary string to centavos.
func ParseAmount(raw string) int64 {
	value := strings.TrimSpace(raw)
	if value == "" {
		return 0
	}

	negative := false
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= '0' && r <= '9', r == '.', r == ',':
			b.WriteRune(r)
		case r == '-':
			negative = true
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	intPart, fracPart, ok := splitDecimal(cleaned)
	if !ok {
		return 0
	}

	whole, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0
	}

	cents := whole * 100
	if fracPart != "" {
		frac, err := strconv.ParseInt(fracPart, 10, 64)
		if err != nil {
			return 0
		}
		cents += frac
	}
	if negative {
		cents = -cents
	}
	return cents
}

// splitDecimal resolves which separator is decimal. When both appear, the
// rightmost one wins and the other is a thousands separator. A lone dot
// followed by exactly three digits is read as a pt-BR thousands separator.
func splitDecimal(cleaned string) (intPart, fracPart string, ok bool) {
	lastDot := strings.LastIndex(cleaned, ".")
	lastComma := strings.LastIndex(cleaned, ",")

	sep := -1
	switch {
	case lastDot >= 0 && lastComma >= 0:
		if lastDot > lastComma {
			sep = lastDot
		} else {
			sep = lastComma
		}
	case lastComma >= 0:
		sep = lastComma
	case lastDot >= 0:
		if len(cleaned)-lastDot-1 == 3 && strings.Count(cleaned, ".") == 1 {
			sep = -1 // "1.234" → thousands
		} else {
			sep = lastDot
		}
	}

	if sep < 0 {
		intPart = strings.Map(keepDigit, cleaned)
		if intPart == "" {
			return "", "", false
		}
		return intPart, "", true
	}

	intPart = strings.Map(keepDigit, cleaned[:sep])
	fracRaw := strings.Map(keepDigit, cleaned[sep+1:])
	if intPart == "" && fracRaw == "" {
		return "", "", false
	}
	if intPart == "" {
		intPart = "0"
	}

	// Normalize the fraction to exactly two digits (centavos).
	switch {
	case len(fracRaw) == 0:
		fracPart = "00"
	case len(fracRaw) == 1:
		fracPart = fracRaw + "0"
	default:
		fracPart = fracRaw[:2]
	}
	return intPart, fracPart, true
}

func keepDigit(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// FormatAmount renders centavos in the canonical stored form ("1234.56").
// ParseAmount(FormatAmount(v)) == v for any v.
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.FormatInt(cents/100, 10) + "." + fmt.Sprintf("%02d", cents%100)
}

var percentPattern = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*%`)

// ParsePercent extracts the first embedded percentage from a free-text
// description ("ISS 5%", "Imposto 11,33%"). Returns 0 when none is found.
func ParsePercent(description string) float64 {
	match := percentPattern.FindStringSubmatch(description)
	if match == nil {
		return 0
	}
	normalized := strings.ReplaceAll(match[1], ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0
	}
	return value
}

// RoundCents rounds a fractional centavo amount to the nearest cent.
func RoundCents(raw float64) int64 {
	if raw >= 0 {
		return int64(raw + 0.5)
	}
	return -int64(-raw + 0.5)
}

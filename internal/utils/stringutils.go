package utils

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseIntOrDefault parses s as an int. Empty input yields the fallback value.
func ParseIntOrDefault(s string, fallback int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	return strconv.Atoi(s)
}

// ParseMetricInt parses an integer counter that some tools print with a
// decimal part ("3.0").
func ParseMetricInt(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrSyntax
	}
	return int(math.Round(f)), nil
}

// ParseMetricFloat parses a metric value. "NaN" is accepted.
func ParseMetricFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// epsilon nudges values sitting exactly on a .5 boundary after binary
// rounding error (1.005 is stored as 1.00499...).
var epsilon = math.Nextafter(1, 2) - 1

// RoundTo2 rounds v to two decimal places. NaN and infinities pass through.
func RoundTo2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round((v+epsilon)*100) / 100
}

// FormatNumber renders a metric without trailing zeros: 3, 0.5, 0.67, NaN.
func FormatNumber(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SplitCamelCase inserts a space before every upper-case letter after the
// first rune: "AbstractClassName" becomes "Abstract Class Name".
func SplitCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// HumanizeRuleName turns the simple name of a check class into a display
// title: "AbstractClassNameCheck" becomes "Abstract Class Name".
func HumanizeRuleName(simpleName string) string {
	name := strings.TrimSuffix(strings.TrimSpace(simpleName), "Check")
	name = SplitCamelCase(name)
	// A Caser holds state, so build one per call to stay safe across pipelines.
	return strings.TrimSpace(cases.Title(language.English, cases.NoLower).String(name))
}

// IndexColumns maps each trimmed header name to its first column index and
// fails when any of the required names is absent.
func IndexColumns(header []string, required ...string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.TrimSpace(name)
		if _, dup := columns[name]; !dup {
			columns[name] = i
		}
	}
	var missing []string
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing columns %s", strings.Join(missing, ", "))
	}
	return columns, nil
}

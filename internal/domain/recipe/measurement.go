package recipe

import (
	"regexp"
	"strconv"
	"strings"
)

// The measurement vocabulary covers the culinary units the model is
// instructed to use, singular and plural. A quantity token is an integer,
// decimal, or simple vulgar fraction immediately followed by one of these
// unit words.
var quantityPattern = regexp.MustCompile(
	`(?i)(\d+/\d+|\d+\.\d+|\d+)\s*` +
		`(cups?|tablespoons?|tbsp|teaspoons?|tsp|ounces?|oz|pounds?|lb|sticks?|boxes|box|bags?|packages?|cans?|jars?|cloves?|heads?|bunches|bunch)\b`)

// numberPattern extracts a single leading number, used for nutrition values
// where no unit-word lookahead is needed.
var numberPattern = regexp.MustCompile(`\d+\.?\d*`)

// Measurement is a quantity+unit token located inside an ingredient line.
type Measurement struct {
	Value float64
	Unit  string
	// NumStart and NumEnd delimit the numeric text within the line, so a
	// rewritten value can be spliced back in place.
	NumStart int
	NumEnd   int
}

// ParseMeasurement locates the first quantity+unit token in an ingredient
// line. Lines with no recognizable token return ok=false and are left alone
// by the scaler.
func ParseMeasurement(line string) (Measurement, bool) {
	loc := quantityPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return Measurement{}, false
	}
	numStart, numEnd := loc[2], loc[3]
	unitStart, unitEnd := loc[4], loc[5]

	value, ok := parseQuantity(line[numStart:numEnd])
	if !ok {
		return Measurement{}, false
	}
	return Measurement{
		Value:    value,
		Unit:     line[unitStart:unitEnd],
		NumStart: numStart,
		NumEnd:   numEnd,
	}, true
}

// parseQuantity evaluates an integer, decimal, or simple vulgar fraction.
func parseQuantity(s string) (float64, bool) {
	if num, den, found := strings.Cut(s, "/"); found {
		n, err1 := strconv.ParseFloat(num, 64)
		d, err2 := strconv.ParseFloat(den, 64)
		if err1 != nil || err2 != nil || d == 0 {
			return 0, false
		}
		return n / d, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// vulgarFractions maps common cooking fractions to their display form, in
// halves, thirds, quarters, and eighths.
var vulgarFractions = []struct {
	value float64
	text  string
}{
	{1.0 / 8, "1/8"},
	{1.0 / 4, "1/4"},
	{1.0 / 3, "1/3"},
	{3.0 / 8, "3/8"},
	{1.0 / 2, "1/2"},
	{5.0 / 8, "5/8"},
	{2.0 / 3, "2/3"},
	{3.0 / 4, "3/4"},
	{7.0 / 8, "7/8"},
}

const fractionTolerance = 0.02

// FormatQuantity renders a scaled quantity for an ingredient line. Values
// strictly between 0 and 1 prefer a common vulgar fraction within a small
// tolerance; everything else renders as a decimal truncated to at most two
// fractional digits with trailing zeros trimmed.
func FormatQuantity(v float64) string {
	if v > 0 && v < 1 {
		for _, f := range vulgarFractions {
			if v > f.value-fractionTolerance && v < f.value+fractionTolerance {
				return f.text
			}
		}
	}
	s := strconv.FormatFloat(v, 'f', 2, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	if s == "" {
		s = "0"
	}
	return s
}

package scale

import (
	"errors"
	"fmt"
	"math/big"
	"slices"
	"strings"
)

// ErrInvalidServings is returned when a serving count is below 1.
var ErrInvalidServings = errors.New("servings must be at least 1")

var ten = big.NewRat(10, 1)

// Factor returns target/original as an exact rational.
func Factor(original, target int) (*big.Rat, error) {
	if original < 1 {
		return nil, fmt.Errorf("original servings %d: %w", original, ErrInvalidServings)
	}
	if target < 1 {
		return nil, fmt.Errorf("new servings %d: %w", target, ErrInvalidServings)
	}
	return big.NewRat(int64(target), int64(original)), nil
}

// Lines rewrites every quantity in lines for a batch of target servings
// instead of original. When the counts are equal the result is an exact copy.
func Lines(lines []string, original, target int) ([]string, error) {
	factor, err := Factor(original, target)
	if err != nil {
		return nil, err
	}
	if original == target {
		return slices.Clone(lines), nil
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = Line(line, factor)
	}
	return out, nil
}

// Line rescales each quantity token in line by factor. Everything between
// tokens is copied through untouched.
func Line(line string, factor *big.Rat) string {
	var b strings.Builder
	b.Grow(len(line))
	for f := range Fragments(line) {
		if f.Quantity {
			b.WriteString(rescale(f.Text, factor))
			continue
		}
		b.WriteString(f.Text)
	}
	return b.String()
}

// rescale returns token unchanged when it cannot be parsed, e.g. "5/0".
func rescale(token string, factor *big.Rat) string {
	v, ok := new(big.Rat).SetString(token)
	if !ok {
		return token
	}
	v.Mul(v, factor)
	if strings.Contains(token, "/") {
		return formatFraction(v)
	}
	return formatDecimal(v)
}

var niceRemainders = []struct {
	value *big.Rat
	text  string
}{
	{big.NewRat(1, 2), "1/2"},
	{big.NewRat(1, 4), "1/4"},
	{big.NewRat(3, 4), "3/4"},
}

// formatFraction renders v as a whole number or a mixed number with a half or
// quarter remainder, falling back to two decimal places. Thirds and eighths
// are not attempted.
func formatFraction(v *big.Rat) string {
	whole := new(big.Int).Quo(v.Num(), v.Denom())
	rem := new(big.Rat).Sub(v, new(big.Rat).SetInt(whole))
	if rem.Sign() == 0 {
		return whole.String()
	}
	for _, nice := range niceRemainders {
		if rem.Cmp(nice.value) != 0 {
			continue
		}
		if whole.Sign() == 0 {
			return nice.text
		}
		return whole.String() + " " + nice.text
	}
	return v.FloatString(2)
}

// formatDecimal keeps up to two decimals below ten and rounds to a whole
// number from ten up.
func formatDecimal(v *big.Rat) string {
	if v.Cmp(ten) >= 0 {
		return v.FloatString(0)
	}
	s := v.FloatString(2)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Package threshold parses free-space thresholds and resolves them into
// absolute byte counts for a given filesystem size.
package threshold

import (
	"strconv"
	"strings"

	"github.com/grafana/regexp"
)

const (
	// PatternThreshold is the accepted grammar: one amount with unit,
	// optionally followed by a comma and a second amount with unit.
	PatternThreshold = `^(\d+(?:\.\d+)?)([%MGT])(?:,(\d+(?:\.\d+)?)([%MGT]))?$`

	bytesPerMegabyte = 1 << 20
	bytesPerGigabyte = 1 << 30
	bytesPerTerabyte = 1 << 40
)

//nolint:gochecknoglobals
var thresholdPattern = regexp.MustCompile(PatternThreshold)

// Unit is the unit of a threshold amount.
type Unit string

const (
	UnitPercent  Unit = "%"
	UnitMegabyte Unit = "M"
	UnitGigabyte Unit = "G"
	UnitTerabyte Unit = "T"
)

// Pair is a single amount and unit of a [Threshold]. Text is the exact
// substring the pair was parsed from and serves as its display label.
type Pair struct {
	Amount float64
	Unit   Unit
	Text   string
}

// Bytes converts the pair into an absolute byte count, truncated to whole
// bytes. Percentages are taken of totalBytes.
func (p Pair) Bytes(totalBytes uint64) uint64 {
	var b float64

	switch p.Unit {
	case UnitMegabyte:
		b = p.Amount * bytesPerMegabyte
	case UnitGigabyte:
		b = p.Amount * bytesPerGigabyte
	case UnitTerabyte:
		b = p.Amount * bytesPerTerabyte
	case UnitPercent:
		b = float64(totalBytes) / 100 * p.Amount //nolint:mnd
	}

	return uint64(b)
}

// Threshold holds one or two alternative [Pair]; the one resolving to fewer
// bytes is the one that applies.
type Threshold struct {
	Pairs []Pair
}

// Limit is a resolved [Threshold]: the absolute byte count and the label of
// the [Pair] it resulted from.
type Limit struct {
	Bytes uint64
	Label string
}

// Parse parses a threshold string such as "20%" or "1.5%,25G" into a
// [Threshold]. A non-matching input returns a [*ParseError].
func Parse(s string) (Threshold, error) {
	match := thresholdPattern.FindStringSubmatch(s)
	if match == nil {
		return Threshold{}, &ParseError{Input: s}
	}

	parts := strings.SplitN(s, ",", 2) //nolint:mnd
	t := Threshold{}

	for i := 0; i < 2; i++ {
		amountStr, unit := match[1+i*2], match[2+i*2]
		if amountStr == "" {
			break
		}

		amount, err := strconv.ParseFloat(amountStr, 64)
		if err != nil {
			return Threshold{}, &ParseError{Input: s}
		}

		t.Pairs = append(t.Pairs, Pair{
			Amount: amount,
			Unit:   Unit(unit),
			Text:   parts[i],
		})
	}

	return t, nil
}

// MustParse is like [Parse] but panics on invalid input. It is meant for
// built-in defaults only.
func MustParse(s string) Threshold {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return t
}

// Evaluate resolves the [Threshold] against a filesystem of totalBytes. The
// smallest byte count across all pairs wins, ties keep the earlier pair.
func (t Threshold) Evaluate(totalBytes uint64) Limit {
	var limit Limit

	for i, p := range t.Pairs {
		b := p.Bytes(totalBytes)
		if i == 0 || b < limit.Bytes {
			limit = Limit{Bytes: b, Label: p.Text}
		}
	}

	return limit
}

// String returns the threshold in its textual form.
func (t Threshold) String() string {
	texts := make([]string, 0, len(t.Pairs))
	for _, p := range t.Pairs {
		texts = append(texts, p.Text)
	}

	return strings.Join(texts, ",")
}

package extract

import (
	"regexp"

	"github.com/shopspring/decimal"

	"github.com/balanza-dev/balanza/internal/amount"
)

// cascade is an ordered list of label patterns for one field, most
// specific phrasing first. Patterns are tried in order against the
// whole document text; the first match wins and the rest are skipped.
type cascade []*regexp.Regexp

func rules(patterns ...string) cascade {
	c := make(cascade, len(patterns))
	for i, p := range patterns {
		c[i] = regexp.MustCompile(p)
	}
	return c
}

// find returns the capture groups of the first matching pattern, or
// nil when no pattern matches.
func (c cascade) find(text string) []string {
	for _, re := range c {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1:]
		}
	}
	return nil
}

// apply matches the cascade and stores the period figure, plus the
// YTD figure when the winning pattern captured a second column. An
// unmatched field keeps its zero default; that is not an error.
func (c cascade) apply(text string, period, ytd *decimal.Decimal) {
	g := c.find(text)
	if g == nil {
		return
	}
	*period = amount.Parse(g[0])
	if ytd != nil && len(g) > 1 {
		*ytd = amount.Parse(g[1])
	}
}

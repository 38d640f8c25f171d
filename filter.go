package gcbook

import (
	"fmt"
	"regexp"
)

// MatchMode selects how filter patterns are interpreted.
type MatchMode int

const (
	// MatchRegexp interprets patterns as RE2 regular expressions. Both the
	// grep-style -E and -G flags map here: Go has no separate basic-regex
	// engine, and the distinction only exists for grep familiarity.
	MatchRegexp MatchMode = iota
	// MatchFixed interprets patterns as literal strings (grep -F).
	MatchFixed
)

// FilterOptions are the grep-style modifiers applied to every pattern of a
// filter.
type FilterOptions struct {
	Mode       MatchMode
	IgnoreCase bool // grep -i
	Invert     bool // grep -v: keep what does NOT match
}

// Filter is an ordered chain of grep-style patterns. A name is selected
// when it satisfies every pattern, mirroring chained grep pipes. The empty
// filter selects everything.
type Filter struct {
	preds  []*regexp.Regexp
	invert bool
}

// NewFilter compiles the patterns into a filter.
func NewFilter(patterns []string, opts FilterOptions) (Filter, error) {
	f := Filter{preds: make([]*regexp.Regexp, 0, len(patterns)), invert: opts.Invert}
	for _, p := range patterns {
		expr := p
		if opts.Mode == MatchFixed {
			expr = regexp.QuoteMeta(expr)
		}
		if opts.IgnoreCase {
			expr = "(?i)" + expr
		}
		re, err := regexp.Compile(expr)
		if err != nil {
			return Filter{}, fmt.Errorf("invalid pattern %q: %w", p, err)
		}
		f.preds = append(f.preds, re)
	}
	return f, nil
}

// Empty reports whether the filter has no patterns.
func (f Filter) Empty() bool { return len(f.preds) == 0 }

// Match reports whether name satisfies all patterns. With inversion, each
// pattern must fail to match, like a chain of grep -v pipes.
func (f Filter) Match(name string) bool {
	for _, re := range f.preds {
		if re.MatchString(name) == f.invert {
			return false
		}
	}
	return true
}

// MatchAny reports whether at least one pattern matches at least one of the
// texts. This is the transaction text-filter semantics of the ledger report:
// patterns widen the selection, and a pattern may hit the description, the
// notes, or any split memo. Inversion applies to that aggregate result, so an
// inverted filter keeps only transactions where no pattern matches any text,
// like grep -v over whole records. The empty filter matches.
func (f Filter) MatchAny(texts ...string) bool {
	if f.Empty() {
		return true
	}
	matched := false
scan:
	for _, re := range f.preds {
		for _, t := range texts {
			if t == "" {
				continue
			}
			if re.MatchString(t) {
				matched = true
				break scan
			}
		}
	}
	return matched != f.invert
}

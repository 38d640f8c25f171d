package gcbook

import (
	"slices"
	"testing"
)

func mustFilter(t *testing.T, patterns []string, opts FilterOptions) Filter {
	t.Helper()
	f, err := NewFilter(patterns, opts)
	if err != nil {
		t.Fatalf("NewFilter(%v): %v", patterns, err)
	}
	return f
}

func apply(f Filter, names []string) []string {
	var out []string
	for _, n := range names {
		if f.Match(n) {
			out = append(out, n)
		}
	}
	return out
}

func TestFilterMatch(t *testing.T) {
	names := []string{
		"Expenses:Office:Supplies",
		"Expenses:Travel",
		"expenses:travel",
		"Income:Sales",
	}

	tests := []struct {
		name     string
		patterns []string
		opts     FilterOptions
		expected []string
	}{
		{
			name:     "empty filter selects all",
			patterns: nil,
			expected: names,
		},
		{
			name:     "case sensitive regexp",
			patterns: []string{"office"},
			expected: nil,
		},
		{
			name:     "ignore case",
			patterns: []string{"office"},
			opts:     FilterOptions{IgnoreCase: true},
			expected: []string{"Expenses:Office:Supplies"},
		},
		{
			name:     "patterns are cumulative",
			patterns: []string{"Expenses", "Travel"},
			expected: []string{"Expenses:Travel"},
		},
		{
			name:     "invert match",
			patterns: []string{"Expenses"},
			opts:     FilterOptions{Invert: true},
			expected: []string{"expenses:travel", "Income:Sales"},
		},
		{
			name:     "fixed strings quote metacharacters",
			patterns: []string{"Office:Supplies"},
			opts:     FilterOptions{Mode: MatchFixed},
			expected: []string{"Expenses:Office:Supplies"},
		},
		{
			name:     "fixed string with regexp metacharacter matches literally",
			patterns: []string{"e.s"},
			opts:     FilterOptions{Mode: MatchFixed},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustFilter(t, tt.patterns, tt.opts)
			got := apply(f, names)
			if !slices.Equal(got, tt.expected) {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

// Re-filtering a result with the same filter yields the same result.
func TestFilterIdempotent(t *testing.T) {
	names := []string{"Expenses:Office:Supplies", "Expenses:Travel", "Income:Sales"}
	f := mustFilter(t, []string{"Expenses"}, FilterOptions{})

	once := apply(f, names)
	twice := apply(f, once)
	if !slices.Equal(once, twice) {
		t.Errorf("filtering is not idempotent: %v then %v", once, twice)
	}
}

func TestFilterBadPattern(t *testing.T) {
	if _, err := NewFilter([]string{"("}, FilterOptions{}); err == nil {
		t.Error("NewFilter must reject an invalid regexp")
	}
	// The same pattern is fine as a fixed string.
	if _, err := NewFilter([]string{"("}, FilterOptions{Mode: MatchFixed}); err != nil {
		t.Errorf("fixed-string filter rejected a literal pattern: %v", err)
	}
}

func TestFilterMatchAny(t *testing.T) {
	f := mustFilter(t, []string{"rent", "salary"}, FilterOptions{IgnoreCase: true})

	// Any pattern matching any text selects the transaction.
	if !f.MatchAny("Monthly Rent", "") {
		t.Error("MatchAny must match on any text")
	}
	if !f.MatchAny("", "", "October salary") {
		t.Error("MatchAny must scan all texts")
	}
	if f.MatchAny("groceries", "market") {
		t.Error("MatchAny matched nothing, must be false")
	}
	// The empty filter selects everything.
	empty := mustFilter(t, nil, FilterOptions{})
	if !empty.MatchAny("anything") {
		t.Error("empty filter must match")
	}
}

func TestFilterMatchAnyInvert(t *testing.T) {
	f := mustFilter(t, []string{"rent"}, FilterOptions{IgnoreCase: true, Invert: true})

	// A hit in any text excludes the transaction, even when other texts
	// do not match.
	if f.MatchAny("Monthly Rent", "paid by card") {
		t.Error("inverted filter must reject a transaction with a matching text")
	}
	if f.MatchAny("", "October rent") {
		t.Error("inverted filter must reject a match in a later text")
	}
	if !f.MatchAny("groceries", "market") {
		t.Error("inverted filter must keep transactions with no match")
	}

	// Several inverted patterns exclude a transaction matching any of them.
	multi := mustFilter(t, []string{"rent", "salary"}, FilterOptions{IgnoreCase: true, Invert: true})
	if multi.MatchAny("October salary") {
		t.Error("inverted filter must reject a match on any pattern")
	}
	if !multi.MatchAny("groceries") {
		t.Error("inverted filter must keep a transaction matching no pattern")
	}
}

package gcbook

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoneyString(t *testing.T) {
	tests := []struct {
		value    float64
		currency string
		expected string
	}{
		{12.34, "USD", "$12.34"},
		{-12.34, "USD", "-$12.34"},
		{1250.00, "EUR", "€1,250.00"},
		{0, "USD", "$0.00"},
	}
	for _, tt := range tests {
		m := M(decimal.NewFromFloat(tt.value), tt.currency)
		if got := m.String(); got != tt.expected {
			t.Errorf("M(%v, %s).String() = %q, want %q", tt.value, tt.currency, got, tt.expected)
		}
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(decimal.NewFromFloat(10.5), "EUR")
	b := M(decimal.NewFromFloat(4.5), "EUR")

	if got := a.Add(b); !got.Equal(M(decimal.NewFromInt(15), "EUR")) {
		t.Errorf("Add = %s", got)
	}
	if got := a.Sub(b); !got.Equal(M(decimal.NewFromInt(6), "EUR")) {
		t.Errorf("Sub = %s", got)
	}
	if got := b.Neg(); !got.IsNegative() {
		t.Errorf("Neg = %s", got)
	}

	// The zero value carries no currency and adds onto anything.
	var zero Money
	if got := zero.Add(a); !got.Equal(a) || got.Currency() != "EUR" {
		t.Errorf("zero.Add = %s %s", got, got.Currency())
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding EUR to USD must panic")
		}
	}()
	M(decimal.NewFromInt(1), "EUR").Add(M(decimal.NewFromInt(1), "USD"))
}

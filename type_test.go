package leverage

import (
	"errors"
	"testing"
)

func TestParseRatio(t *testing.T) {
	tests := []struct {
		input string
		want  Ratio
	}{
		{"0.7", R(0.7)},
		{"70%", R(0.7)},
		{" 3.17% ", R(0.0317)},
		{"1.3", R(1.3)},
	}
	for _, tt := range tests {
		got, err := ParseRatio(tt.input)
		if err != nil {
			t.Errorf("ParseRatio(%q) failed: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseRatio(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
	if _, err := ParseRatio("seventy"); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseRatio(invalid) error = %v, want ErrInvalid", err)
	}
}

func TestParseMoney(t *testing.T) {
	got, err := ParseMoney("1,200,000.50")
	if err != nil {
		t.Fatalf("ParseMoney() failed: %v", err)
	}
	assertMoney(t, "ParseMoney", got, 1200000.5)
	if _, err := ParseMoney(""); !errors.Is(err, ErrInvalid) {
		t.Errorf("ParseMoney(\"\") error = %v, want ErrInvalid", err)
	}
}

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		m        Money
		currency string
		want     string
	}{
		{M(1234.5), "USD", "$1,234.50"},
		{M(0), "USD", "$0.00"},
		{M(12.345), "USD", "$12.35"},
		{M(10), "NOPE", "10.00 NOPE"},
	}
	for _, tt := range tests {
		if got := tt.m.Format(tt.currency); got != tt.want {
			t.Errorf("%v.Format(%q) = %q, want %q", tt.m, tt.currency, got, tt.want)
		}
	}
	if got, want := M(5).SignedFormat("USD"), "+$5.00"; got != want {
		t.Errorf("SignedFormat() = %q, want %q", got, want)
	}
}

func TestMoneyPer(t *testing.T) {
	got := M(650000).Per(M(500000))
	if !got.Equal(R(1.3)) {
		t.Errorf("Per() = %v, want 1.3", got)
	}
	if got := M(1).Per(M(0)); !got.IsZero() {
		t.Errorf("Per(0) = %v, want 0", got)
	}
}

func TestParseTypes(t *testing.T) {
	for _, s := range []string{"investment", "real_estate", "realestate", "cash"} {
		if _, err := ParseAssetType(s); err != nil {
			t.Errorf("ParseAssetType(%q) failed: %v", s, err)
		}
	}
	for _, s := range []string{"policy", "pledge", "mortgage", "credit"} {
		typ, err := ParseLiabilityType(s)
		if err != nil {
			t.Errorf("ParseLiabilityType(%q) failed: %v", s, err)
			continue
		}
		if typ.String() != s {
			t.Errorf("ParseLiabilityType(%q).String() = %q", s, typ)
		}
	}
	if _, err := ParseAssetType("crypto"); err == nil {
		t.Errorf("ParseAssetType(crypto) must fail")
	}
	for _, st := range []Status{Safe, Warning, TopUp, Danger} {
		got, err := ParseStatus(st.String())
		if err != nil || got != st {
			t.Errorf("ParseStatus(%q) = %v, %v", st, got, err)
		}
	}
	if Pledge.Convention() != Collateral || Mortgage.Convention() != LoanToValue {
		t.Errorf("wrong conventions")
	}
}

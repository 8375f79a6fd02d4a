package stand

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewRoster(t *testing.T) {
	r := NewRoster(3)
	if len(r) != 3 {
		t.Fatalf("roster size %d want 3", len(r))
	}
	for i, s := range r {
		if s.ID != i+1 {
			t.Fatalf("stand %d has id %d", i, s.ID)
		}
		if !s.Cash.Equal(StartingCash) {
			t.Fatalf("stand %d starts with %s, want %s", s.ID, s.Cash, StartingCash)
		}
		if s.Bankrupt {
			t.Fatalf("stand %d starts bankrupt", s.ID)
		}
	}
}

func TestAllBankrupt(t *testing.T) {
	r := NewRoster(2)
	if r.AllBankrupt() {
		t.Fatal("fresh roster reported all bankrupt")
	}
	r[0].Bankrupt = true
	if r.AllBankrupt() {
		t.Fatal("one solvent stand left, reported all bankrupt")
	}
	r[1].Bankrupt = true
	if !r.AllBankrupt() {
		t.Fatal("every stand bankrupt, not reported")
	}
}

func TestClearDayKeepsCash(t *testing.T) {
	s := New(1)
	s.GlassesSold = 12
	s.Income = decimal.RequireFromString("1.20")
	s.Expenses = decimal.RequireFromString("0.80")
	s.Profit = decimal.RequireFromString("0.40")
	s.ClearDay()
	if s.GlassesSold != 0 || !s.Income.IsZero() || !s.Expenses.IsZero() || !s.Profit.IsZero() {
		t.Fatal("day results not cleared")
	}
	if !s.Cash.Equal(StartingCash) {
		t.Fatalf("cash changed by ClearDay: %s", s.Cash)
	}
}

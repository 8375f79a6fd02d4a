// Package stand holds the per-entrant economic state for a season.
package stand

import "github.com/shopspring/decimal"

// StartingCash is every stand's opening balance.
var StartingCash = decimal.New(200, -2)

// Stand is one entrant's persistent state. Daily decisions and daily
// results are overwritten every cycle; only ID, Cash and Bankrupt carry
// across days. Bankrupt is a one-way flag: once set it never reverts, and
// the stand is skipped for decision collection and resolution while staying
// in the roster for final ranking.
type Stand struct {
	ID   int
	Cash decimal.Decimal

	// Committed decisions for the current day.
	Glasses    int
	Signs      int
	PriceCents int

	// Results of the current day's resolution.
	GlassesSold int
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Profit      decimal.Decimal

	Bankrupt bool
}

// New creates a stand with the starting balance.
func New(id int) *Stand {
	return &Stand{
		ID:       id,
		Cash:     StartingCash,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Profit:   decimal.Zero,
	}
}

// ClearDay zeroes the day's results without touching cash. Storm days force
// this on every stand in place of resolution.
func (s *Stand) ClearDay() {
	s.GlassesSold = 0
	s.Income = decimal.Zero
	s.Expenses = decimal.Zero
	s.Profit = decimal.Zero
}

// Roster is the season's ordered entrant list. Order is join order and is
// the deterministic iteration, display, and ranking tie-break order.
type Roster []*Stand

// AllBankrupt reports whether no stand can still trade.
func (r Roster) AllBankrupt() bool {
	for _, s := range r {
		if !s.Bankrupt {
			return false
		}
	}
	return true
}

// NewRoster creates n stands with IDs 1..n.
func NewRoster(n int) Roster {
	r := make(Roster, 0, n)
	for i := 1; i <= n; i++ {
		r = append(r, New(i))
	}
	return r
}

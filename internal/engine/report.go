package engine

import (
	"github.com/shopspring/decimal"

	"github.com/mreider/lemonade/internal/weather"
)

// StandReport is one stand's row in the daily report. Bankrupt stands keep
// their zeroed snapshot; WentBankrupt is set only on the day the flag was
// raised.
type StandReport struct {
	StandID      int
	Bankrupt     bool
	WentBankrupt bool
	GlassesMade  int
	SignsMade    int
	PriceCents   int
	GlassesSold  int
	Income       decimal.Decimal
	Expenses     decimal.Decimal
	Profit       decimal.Decimal
	Cash         decimal.Decimal
}

// DailyReport is the structured end-of-day report, emitted at most once per
// day. Storm days emit none: the day is wiped before resolution.
type DailyReport struct {
	Day     int
	Weather weather.Outcome
	Stands  []StandReport
}

// Standing is one row of the final ranking.
type Standing struct {
	Rank    int
	StandID int
	Cash    decimal.Decimal
}

// SeasonSummary is emitted once when the season finishes. Standings are
// sorted by descending cash with roster order breaking ties. Winner is nil
// unless the top stand's cash strictly exceeds the starting balance.
type SeasonSummary struct {
	Days      int
	Standings []Standing
	Winner    *Standing
}

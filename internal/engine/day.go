package engine

import (
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mreider/lemonade/internal/economy"
	"github.com/mreider/lemonade/internal/weather"
)

// playDay runs one full day cycle: weather, notices, decision collection,
// resolution, report, recording. Storm days wipe every stand's production
// before decisions are even collected; cash is untouched and no report is
// emitted for the day.
func (c *Controller) playDay() error {
	st := c.state
	st.Day++
	st.Weather = c.weather.Draw(st.Day, c.src)

	c.boundary.Notice(Notice{
		Kind:          NoticeWeather,
		Day:           st.Day,
		Weather:       st.Weather,
		Temperature:   c.weather.Temperature(st.Day, st.Weather.Condition),
		UnitCostCents: economy.UnitCostCents(st.Day),
	})

	switch st.Day {
	case 3:
		c.boundary.Notice(Notice{Kind: NoticeSugarSubsidyEnd, Day: st.Day})
	case 7:
		c.boundary.Notice(Notice{Kind: NoticeMixPriceUp, Day: st.Day})
	}

	if st.Weather.Event.Kind == weather.EventStorm {
		return c.stormDay()
	}

	// Decision collection, strictly in roster order. Stand N is fully
	// collected and confirmed before stand N+1 begins.
	for _, s := range st.Roster {
		if s.Bankrupt {
			c.boundary.Notice(Notice{Kind: NoticeBankrupt, Day: st.Day, StandID: s.ID})
			continue
		}
		if err := c.collectDecisions(s); err != nil {
			return err
		}
	}

	// Resolution happens only after the whole roster's decisions are final.
	st.Phase = PhaseResolution
	report := DailyReport{Day: st.Day, Weather: st.Weather}
	for _, s := range st.Roster {
		row := StandReport{StandID: s.ID, Bankrupt: s.Bankrupt}
		if !s.Bankrupt {
			res := economy.Resolve(s.Glasses, s.Signs, s.PriceCents, st.Day, st.Weather.Event, c.src)
			s.GlassesSold = res.GlassesSold
			s.Income = res.Income
			s.Expenses = res.Expenses
			s.Profit = res.Profit
			s.Cash = s.Cash.Add(res.Profit)

			if err := checkInvariants(s.ID, res, s.Cash); err != nil {
				return err
			}

			if economy.Insolvent(s.Cash, st.Day) {
				s.Bankrupt = true
				row.WentBankrupt = true
			}

			row.Bankrupt = s.Bankrupt
			row.GlassesMade = s.Glasses
			row.SignsMade = s.Signs
			row.PriceCents = s.PriceCents
			row.GlassesSold = s.GlassesSold
			row.Income = s.Income
			row.Expenses = s.Expenses
			row.Profit = s.Profit
		}
		row.Cash = s.Cash
		report.Stands = append(report.Stands, row)
	}

	c.boundary.EmitDaily(report)
	c.recordDay(report)
	c.logDay(report)

	st.Phase = PhaseDailyCycle
	return nil
}

// stormDay wipes the day: committed values are discarded, results are
// zeroed, cash is unchanged, and neither decision collection nor resolution
// runs.
func (c *Controller) stormDay() error {
	st := c.state
	c.boundary.Notice(Notice{Kind: NoticeStorm, Day: st.Day})
	for _, s := range st.Roster {
		if s.Bankrupt {
			continue
		}
		s.ClearDay()
	}
	c.recordDay(DailyReport{Day: st.Day, Weather: st.Weather})
	slog.Info("storm day", "day", st.Day)
	return nil
}

// checkInvariants verifies the two accounting identities after resolution.
// A violation is a defect in the economics formulas and is fatal, never
// re-prompted.
func checkInvariants(standID int, res economy.Result, cash decimal.Decimal) error {
	if !res.Profit.Equal(res.Income.Sub(res.Expenses)) {
		return fmt.Errorf("stand %d: profit %s != income %s - expenses %s",
			standID, res.Profit, res.Income, res.Expenses)
	}
	if cash.IsNegative() {
		return fmt.Errorf("stand %d: negative cash %s after resolution", standID, cash)
	}
	return nil
}

func (c *Controller) recordDay(r DailyReport) {
	if c.rec == nil {
		return
	}
	if err := c.rec.RecordDay(c.seasonID, r); err != nil {
		slog.Error("record day failed", "season_id", c.seasonID, "day", r.Day, "error", err)
	}
}

func (c *Controller) logDay(r DailyReport) {
	active := 0
	totalCash := decimal.Zero
	for _, row := range r.Stands {
		if !row.Bankrupt {
			active++
		}
		totalCash = totalCash.Add(row.Cash)
	}
	slog.Info("daily report",
		"day", r.Day,
		"weather", r.Weather.Condition.String(),
		"event", r.Weather.Event.Kind.String(),
		"active", active,
		"stands", len(r.Stands),
		"total_cash", totalCash.StringFixed(2),
	)
}

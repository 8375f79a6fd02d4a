// Package economy implements the pricing and financial resolution formulas:
// the day-based unit cost schedule, the demand curve, the advertising boost,
// event modifiers, and the solvency test. Money is decimal fixed point at
// two places so the profit and cash identities hold exactly.
package economy

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/mreider/lemonade/internal/entropy"
	"github.com/mreider/lemonade/internal/weather"
)

// SignCost is the cost of one advertising sign.
var SignCost = decimal.New(15, -2)

// UnitCostCents returns the cost in cents to make one glass on the given
// day: 2¢ while the sugar subsidy lasts (days 1-2), 4¢ through day 6, 5¢
// from day 7 on. This is a property of the day, shared by decision
// validation and resolution so the two can never drift apart.
func UnitCostCents(day int) int {
	switch {
	case day <= 2:
		return 2
	case day <= 6:
		return 4
	default:
		return 5
	}
}

// UnitCost returns the per-glass cost for the day as money.
func UnitCost(day int) decimal.Decimal {
	return decimal.New(int64(UnitCostCents(day)), -2)
}

// BaseDemand returns the raw demand in glasses for a price in cents, before
// advertising and weather. At 10¢ and above demand falls linearly from 30;
// below 10¢ it follows 1000*30/price², a steep convexity rewarding very low
// prices. The curve is discontinuous at 10¢ and must not be smoothed.
func BaseDemand(priceCents int) float64 {
	if priceCents >= 10 {
		return 30 + float64(10-priceCents)/10*0.8*30
	}
	if priceCents == 0 {
		// Free lemonade: unbounded demand, capped by production.
		return math.Inf(1)
	}
	p := float64(priceCents)
	return 1000 * 30 / (p * p)
}

// AdBoost returns the demand multiplier for a number of signs:
// 1 + (1 - e^(-0.5*signs)), saturating toward 2 with diminishing returns.
func AdBoost(signs int) float64 {
	return 1 + (1 - math.Exp(-0.5*float64(signs)))
}

// Result is the financial outcome of one stand's day.
type Result struct {
	GlassesSold int
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Profit      decimal.Decimal
}

// Resolve computes one stand's outcome from its committed decisions, the
// day number, and the day's event. Storm days never reach this function;
// the day cycle zeroes stands directly.
//
// Light rain redraws its severity from src here, independently of the
// chance announced in the weather bulletin. Two call sites, two draws;
// preserved historical behavior.
func Resolve(glasses, signs, priceCents, day int, ev weather.Event, src entropy.Source) Result {
	demand := BaseDemand(priceCents) * AdBoost(signs)

	switch ev.Kind {
	case weather.EventHeatWave:
		demand *= 2
	case weather.EventLightRain:
		severity := weather.RainChance(src)
		demand *= 1 - float64(severity)/100
	case weather.EventStreetWork:
		demand *= 0.1
	}

	demand = math.Floor(demand)
	sold := glasses
	if demand < float64(sold) {
		sold = int(demand)
	}
	if sold < 0 {
		sold = 0
	}

	income := decimal.New(int64(sold*priceCents), -2)
	expenses := SignCost.Mul(decimal.NewFromInt(int64(signs))).
		Add(UnitCost(day).Mul(decimal.NewFromInt(int64(glasses))))

	return Result{
		GlassesSold: sold,
		Income:      income,
		Expenses:    expenses,
		Profit:      income.Sub(expenses),
	}
}

// Insolvent reports whether a cash balance can no longer cover a single
// glass at the day's unit cost. This is a forward-looking test: a stand
// with $0.01 on a 2¢ day is bankrupt even though its cash is positive.
func Insolvent(cash decimal.Decimal, day int) bool {
	return cash.LessThan(UnitCost(day))
}

// Package weather derives each day's condition and at most one special
// event from uniform random draws. The event is a tagged variant, so two
// events can never be active on the same day by construction.
package weather

import (
	"github.com/ojrac/opensimplex-go"

	"github.com/mreider/lemonade/internal/entropy"
)

// Condition is the day's base weather category.
type Condition uint8

const (
	Sunny Condition = iota
	Hot
	Cloudy
	Storm
)

// String returns a bulletin-friendly name.
func (c Condition) String() string {
	switch c {
	case Sunny:
		return "sunny"
	case Hot:
		return "hot and dry"
	case Cloudy:
		return "cloudy"
	case Storm:
		return "thunderstorms"
	default:
		return "unknown"
	}
}

// EventKind tags the day's special event.
type EventKind uint8

const (
	EventNone EventKind = iota
	EventStorm
	EventHeatWave
	EventLightRain
	EventStreetWork
)

// String returns the event name, "none" for an eventless day.
func (k EventKind) String() string {
	switch k {
	case EventStorm:
		return "storm"
	case EventHeatWave:
		return "heat wave"
	case EventLightRain:
		return "light rain"
	case EventStreetWork:
		return "street work"
	default:
		return "none"
	}
}

// Event is the day's special event. RainChance is the announced chance of
// light rain in percent, set only for EventLightRain.
type Event struct {
	Kind       EventKind
	RainChance int
}

// Outcome is the result of one day's weather draw.
type Outcome struct {
	Condition Condition
	Event     Event
}

// Model draws daily weather. The noise field drives only the bulletin
// temperature, never an economic number.
type Model struct {
	noise opensimplex.Noise
}

// NewModel creates a weather model. The seed fixes the temperature noise
// field; the random draws come from the Source passed to Draw.
func NewModel(seed int64) *Model {
	return &Model{noise: opensimplex.NewNormalized(seed)}
}

// Draw produces the day's weather outcome.
//
// Days 1 and 2 are always sunny with no event and consume no draws, so a
// fresh roster sees at least two unperturbed days. From day 3 one draw
// selects the condition: [0,0.6) sunny, [0.6,0.8) hot, [0.8,1) cloudy.
// A cloudy day takes a second independent draw: under 0.25 a storm replaces
// the day's weather entirely, otherwise the day carries light rain with an
// announced chance from RainChance. A hot day always carries a heat wave.
// A sunny day takes an independent draw: under 0.25 flags street work.
func (m *Model) Draw(day int, src entropy.Source) Outcome {
	if day <= 2 {
		return Outcome{Condition: Sunny}
	}

	var out Outcome
	switch u := src.Float(); {
	case u < 0.6:
		out.Condition = Sunny
	case u < 0.8:
		out.Condition = Hot
	default:
		out.Condition = Cloudy
	}

	switch out.Condition {
	case Cloudy:
		if src.Float() < 0.25 {
			out.Condition = Storm
			out.Event = Event{Kind: EventStorm}
		} else {
			out.Event = Event{Kind: EventLightRain, RainChance: RainChance(src)}
		}
	case Hot:
		out.Event = Event{Kind: EventHeatWave}
	default:
		if src.Float() < 0.25 {
			out.Event = Event{Kind: EventStreetWork}
		}
	}
	return out
}

// RainChance draws a light-rain percentage: 30 + floor(u*5)*10, one of
// {30,40,50,60,70}. Every call is an independent draw; the chance announced
// in the bulletin is not guaranteed to match the severity applied at
// resolution, matching the historical behavior.
func RainChance(src entropy.Source) int {
	return 30 + int(src.Float()*5)*10
}

// Temperature returns a display temperature in Fahrenheit for the bulletin.
// It is sampled from a smooth noise field over the day axis and shifted by
// the condition. Display only.
func (m *Model) Temperature(day int, c Condition) int {
	base := 68 + int(m.noise.Eval2(float64(day)*0.35, 0.5)*12)
	switch c {
	case Hot:
		return base + 18
	case Cloudy:
		return base - 8
	case Storm:
		return base - 12
	default:
		return base
	}
}

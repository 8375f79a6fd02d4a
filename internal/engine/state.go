package engine

import (
	"github.com/mreider/lemonade/internal/stand"
	"github.com/mreider/lemonade/internal/weather"
)

// Phase tracks where the season is in its lifecycle.
type Phase uint8

const (
	PhaseSetup Phase = iota
	PhaseDailyCycle
	PhaseResolution
	PhaseFinished
)

// SeasonState is the whole season's mutable state. It is owned exclusively
// by the Controller and passed into each step, never held as ambient global
// state, so concurrent seasons in tests cannot interfere.
type SeasonState struct {
	Day     int             // starts at 0, +1 per cycle, strictly increasing
	Roster  stand.Roster    // fixed size, join order
	Weather weather.Outcome // transient, valid only within the current cycle
	Phase   Phase
}

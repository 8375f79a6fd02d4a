// Package engine drives the season: the day-cycle state machine, decision
// collection, economics resolution, and the end-of-game ranking. It is
// strictly sequential; the only suspension points are boundary prompts.
package engine

import (
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"github.com/mreider/lemonade/internal/entropy"
	"github.com/mreider/lemonade/internal/parser"
	"github.com/mreider/lemonade/internal/stand"
	"github.com/mreider/lemonade/internal/weather"
)

// Season constants.
const (
	SeasonLength = 30
	MinStands    = 1
	MaxStands    = 30
)

// Controller runs one season end to end. It owns the SeasonState for the
// season's lifetime; a new season means a new Controller run with fresh
// state.
type Controller struct {
	boundary Boundary
	weather  *weather.Model
	src      entropy.Source
	rec      Recorder

	seasonID string
	state    *SeasonState
}

// New creates a season controller. rec may be nil when no history is kept.
func New(b Boundary, wm *weather.Model, src entropy.Source, rec Recorder) *Controller {
	return &Controller{boundary: b, weather: wm, src: src, rec: rec}
}

// Run plays one full season: setup, daily cycles until the termination
// predicate holds, then the final summary. The returned error is
// ErrAbandoned when the surface closed mid-season; any other error is an
// internal invariant violation and indicates a defect, not bad input.
func (c *Controller) Run() (SeasonSummary, error) {
	c.seasonID = uuid.New().String()
	c.state = &SeasonState{Phase: PhaseSetup}

	newGame, err := c.askYesNo(Prompt{Kind: PromptNewGame})
	if err != nil {
		return SeasonSummary{}, err
	}

	count, err := c.askStandCount()
	if err != nil {
		return SeasonSummary{}, err
	}
	c.state.Roster = stand.NewRoster(count)

	if newGame {
		c.boundary.Notice(Notice{Kind: NoticeInstructions})
	}

	slog.Info("season started", "season_id", c.seasonID, "stands", count)

	c.state.Phase = PhaseDailyCycle
	for {
		if err := c.playDay(); err != nil {
			return SeasonSummary{}, err
		}
		if c.seasonOver() {
			break
		}
	}
	c.state.Phase = PhaseFinished

	summary := c.finalSummary()
	c.boundary.EmitSeason(summary)
	if c.rec != nil {
		if err := c.rec.RecordSeason(c.seasonID, summary); err != nil {
			slog.Error("record season failed", "season_id", c.seasonID, "error", err)
		}
	}

	slog.Info("season finished",
		"season_id", c.seasonID,
		"days", summary.Days,
		"winner", winnerID(summary),
	)
	return summary, nil
}

// askStandCount reads the entrant count. Non-numeric answers are re-asked;
// a numeric answer outside [1,30] is clamped, matching the original setup
// behavior.
func (c *Controller) askStandCount() (int, error) {
	p := Prompt{Kind: PromptStandCount, Min: MinStands, Max: MaxStands}
	for {
		raw, err := c.boundary.Prompt(p)
		if err != nil {
			return 0, abandoned(err)
		}
		n, perr := parser.Int(raw)
		if perr != nil {
			p.Err = &InputError{Category: NotANumber}
			continue
		}
		if n < MinStands {
			n = MinStands
		}
		if n > MaxStands {
			n = MaxStands
		}
		return n, nil
	}
}

// seasonOver is the termination predicate, checked once per completed day.
func (c *Controller) seasonOver() bool {
	return c.state.Roster.AllBankrupt() || c.state.Day >= SeasonLength
}

// finalSummary ranks stands by descending final cash. The sort is stable,
// so ties keep roster order and the ranking reproduces exactly.
func (c *Controller) finalSummary() SeasonSummary {
	sorted := make([]*stand.Stand, len(c.state.Roster))
	copy(sorted, c.state.Roster)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Cash.GreaterThan(sorted[j].Cash)
	})

	standings := make([]Standing, len(sorted))
	for i, s := range sorted {
		standings[i] = Standing{Rank: i + 1, StandID: s.ID, Cash: s.Cash}
	}

	summary := SeasonSummary{Days: c.state.Day, Standings: standings}
	if len(standings) > 0 && standings[0].Cash.GreaterThan(stand.StartingCash) {
		summary.Winner = &standings[0]
	}
	return summary
}

func winnerID(s SeasonSummary) int {
	if s.Winner == nil {
		return 0
	}
	return s.Winner.StandID
}

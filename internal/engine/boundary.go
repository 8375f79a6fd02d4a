package engine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mreider/lemonade/internal/weather"
)

// ErrAbandoned marks a season discarded because the input surface closed.
// No partial-day state survives an abandoned season.
var ErrAbandoned = errors.New("season abandoned")

// PromptKind identifies what value a Prompt is asking for.
type PromptKind uint8

const (
	PromptNewGame        PromptKind = iota // yes/no
	PromptStandCount                       // integer 1..30
	PromptGlasses                          // integer 0..1000
	PromptSigns                            // integer 0..50
	PromptPrice                            // integer 0..100, cents
	PromptChangeAnything                   // yes/no
	PromptPlayAgain                        // yes/no, issued by the host
)

// ErrorCategory is a stable classification of invalid input. Every category
// is recoverable by re-prompt; none terminates the season.
type ErrorCategory uint8

const (
	NotANumber ErrorCategory = iota
	OutOfRange
	InsufficientFunds
)

// String returns the category name.
func (c ErrorCategory) String() string {
	switch c {
	case NotANumber:
		return "not a number"
	case OutOfRange:
		return "out of range"
	case InsufficientFunds:
		return "insufficient funds"
	default:
		return "invalid"
	}
}

// InputError explains why the previous answer was rejected. Needed and
// Available are set for InsufficientFunds so the boundary can show what the
// attempted spend would have cost against the cash on hand.
type InputError struct {
	Category  ErrorCategory
	Needed    decimal.Decimal
	Available decimal.Decimal
}

func (e *InputError) Error() string {
	return e.Category.String()
}

// DecisionSummary carries the answers under confirmation so the boundary
// can echo them back before "change anything?".
type DecisionSummary struct {
	Glasses    int
	Signs      int
	PriceCents int
}

// Prompt is one synchronous request for a typed value. Min and Max carry
// the integer bounds for display; Err is set when the prompt is re-issued
// after a rejected answer; Decision is set only for PromptChangeAnything.
type Prompt struct {
	Kind     PromptKind
	StandID  int // 0 when not stand-specific
	Min      int
	Max      int
	Cash     decimal.Decimal // stand's cash at prompt time, for display
	Decision *DecisionSummary
	Err      *InputError
}

// NoticeKind identifies a one-way informational bulletin.
type NoticeKind uint8

const (
	NoticeWeather         NoticeKind = iota // daily weather bulletin
	NoticeSugarSubsidyEnd                   // day 3: free sugar is over
	NoticeMixPriceUp                        // day 7: mix price increase
	NoticeStorm                             // storm wiped the day out
	NoticeBankrupt                          // stand sits the day out
	NoticeInstructions                      // new-game walkthrough
)

// Notice is a one-way bulletin. Only the fields relevant to the kind are
// set; the boundary decides how, or whether, to render it.
type Notice struct {
	Kind          NoticeKind
	Day           int
	StandID       int
	Weather       weather.Outcome
	Temperature   int
	UnitCostCents int
}

// Boundary is the engine's only connection to the presentation layer.
// Prompt blocks until the boundary supplies a line; an error return means
// the surface closed and the season is abandoned. The engine validates
// every answer itself and re-issues the same Prompt with Err set until a
// valid value arrives.
type Boundary interface {
	Prompt(p Prompt) (string, error)
	Notice(n Notice)
	EmitDaily(r DailyReport)
	EmitSeason(s SeasonSummary)
}

// Recorder persists season history for later analysis. Implementations
// must treat the data as an audit trail: nothing is ever read back to
// restore a season. Failures are logged by the caller, never fatal.
type Recorder interface {
	RecordDay(seasonID string, r DailyReport) error
	RecordSeason(seasonID string, s SeasonSummary) error
}

func abandoned(err error) error {
	return fmt.Errorf("%w: %v", ErrAbandoned, err)
}

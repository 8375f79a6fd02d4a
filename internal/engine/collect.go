package engine

import (
	"github.com/shopspring/decimal"

	"github.com/mreider/lemonade/internal/economy"
	"github.com/mreider/lemonade/internal/parser"
	"github.com/mreider/lemonade/internal/stand"
)

// Decision bounds. Production and signs are capped, price tops out at one
// dollar. Bounds never clamp: an answer outside them is rejected and
// re-asked.
const (
	MaxGlasses    = 1000
	MaxSigns      = 50
	MaxPriceCents = 100
)

// collectStep is the per-stand decision collection state machine. Confirm
// loops back to askGlasses when the stand wants to change anything; earlier
// answers are not rolled back, just overwritten by the repeat pass.
type collectStep uint8

const (
	askGlasses collectStep = iota
	askSigns
	askPrice
	confirm
	collected
)

// collectDecisions walks one stand through the three daily questions. Each
// prompt re-validates against the answers already committed this pass: the
// glasses spend must fit in cash, and the sign spend must fit in what cash
// remains after the glasses.
func (c *Controller) collectDecisions(s *stand.Stand) error {
	unitCost := economy.UnitCost(c.state.Day)

	step := askGlasses
	for step != collected {
		switch step {
		case askGlasses:
			n, err := c.askInt(Prompt{
				Kind:    PromptGlasses,
				StandID: s.ID,
				Min:     0,
				Max:     MaxGlasses,
				Cash:    s.Cash,
			}, func(n int) *InputError {
				need := unitCost.Mul(decimal.NewFromInt(int64(n)))
				if need.GreaterThan(s.Cash) {
					return &InputError{Category: InsufficientFunds, Needed: need, Available: s.Cash}
				}
				return nil
			})
			if err != nil {
				return err
			}
			s.Glasses = n
			step = askSigns

		case askSigns:
			remaining := s.Cash.Sub(unitCost.Mul(decimal.NewFromInt(int64(s.Glasses))))
			n, err := c.askInt(Prompt{
				Kind:    PromptSigns,
				StandID: s.ID,
				Min:     0,
				Max:     MaxSigns,
				Cash:    remaining,
			}, func(n int) *InputError {
				need := economy.SignCost.Mul(decimal.NewFromInt(int64(n)))
				if need.GreaterThan(remaining) {
					return &InputError{Category: InsufficientFunds, Needed: need, Available: remaining}
				}
				return nil
			})
			if err != nil {
				return err
			}
			s.Signs = n
			step = askPrice

		case askPrice:
			n, err := c.askInt(Prompt{
				Kind:    PromptPrice,
				StandID: s.ID,
				Min:     0,
				Max:     MaxPriceCents,
				Cash:    s.Cash,
			}, nil)
			if err != nil {
				return err
			}
			s.PriceCents = n
			step = confirm

		case confirm:
			change, err := c.askYesNo(Prompt{
				Kind:    PromptChangeAnything,
				StandID: s.ID,
				Decision: &DecisionSummary{
					Glasses:    s.Glasses,
					Signs:      s.Signs,
					PriceCents: s.PriceCents,
				},
			})
			if err != nil {
				return err
			}
			if change {
				step = askGlasses
			} else {
				step = collected
			}
		}
	}
	return nil
}

// askInt issues a prompt until a valid integer arrives. Rejections re-issue
// the same prompt with Err set to a stable category; nothing is ever
// silently clamped.
func (c *Controller) askInt(p Prompt, validate func(int) *InputError) (int, error) {
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
		if n < p.Min || n > p.Max {
			p.Err = &InputError{Category: OutOfRange}
			continue
		}
		if validate != nil {
			if ierr := validate(n); ierr != nil {
				p.Err = ierr
				continue
			}
		}
		return n, nil
	}
}

// askYesNo issues a prompt until a recognizable yes/no arrives.
func (c *Controller) askYesNo(p Prompt) (bool, error) {
	for {
		raw, err := c.boundary.Prompt(p)
		if err != nil {
			return false, abandoned(err)
		}
		v, ok := parser.YesNo(raw)
		if !ok {
			p.Err = &InputError{Category: OutOfRange}
			continue
		}
		return v, nil
	}
}

package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/mreider/lemonade/internal/engine"
	"github.com/mreider/lemonade/internal/weather"
)

// console implements engine.Boundary on a line-oriented terminal, in the
// all-caps register of the 1979 original.
type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func newConsole(in io.Reader, out io.Writer) *console {
	return &console{in: bufio.NewScanner(in), out: out}
}

func (c *console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}

// Prompt prints the question (and any rejection from the last attempt) and
// blocks for one input line. io.EOF on a closed stdin abandons the season.
func (c *console) Prompt(p engine.Prompt) (string, error) {
	if p.Err != nil {
		c.printError(p)
	}
	c.printPrompt(p)
	fmt.Fprint(c.out, "> ")
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return c.in.Text(), nil
}

func (c *console) printPrompt(p engine.Prompt) {
	switch p.Kind {
	case engine.PromptNewGame:
		c.printf("ARE YOU STARTING A NEW GAME? (YES OR NO)")
	case engine.PromptStandCount:
		c.printf("HOW MANY PEOPLE WILL BE PLAYING? (%d TO %d)", p.Min, p.Max)
	case engine.PromptGlasses:
		if p.Err == nil {
			c.printf("")
			c.printf("=============================================")
			c.printf("            LEMONADE STAND %d", p.StandID)
			c.printf("            ASSETS: $%s", p.Cash.StringFixed(2))
			c.printf("=============================================")
			c.printf("")
		}
		c.printf("HOW MANY GLASSES OF LEMONADE DO YOU")
		c.printf("WISH TO MAKE?")
	case engine.PromptSigns:
		c.printf("HOW MANY ADVERTISING SIGNS (15 CENTS")
		c.printf("EACH) DO YOU WANT TO MAKE?")
	case engine.PromptPrice:
		c.printf("WHAT PRICE (IN CENTS) DO YOU WISH TO")
		c.printf("CHARGE FOR LEMONADE?")
	case engine.PromptChangeAnything:
		if d := p.Decision; d != nil {
			c.printf("")
			c.printf("DECISION SUMMARY:")
			c.printf("  GLASSES TO MAKE: %d", d.Glasses)
			c.printf("  SIGNS TO MAKE: %d", d.Signs)
			c.printf("  PRICE PER GLASS: %d CENTS", d.PriceCents)
			c.printf("")
		}
		c.printf("WOULD YOU LIKE TO CHANGE ANYTHING? (Y/N)")
	case engine.PromptPlayAgain:
		c.printf("WOULD YOU LIKE TO PLAY AGAIN? (Y/N)")
	}
}

func (c *console) printError(p engine.Prompt) {
	switch p.Err.Category {
	case engine.InsufficientFunds:
		c.printf("*** INSUFFICIENT FUNDS ***")
		c.printf("THINK AGAIN!!! YOU HAVE ONLY $%s IN CASH", p.Err.Available.StringFixed(2))
		c.printf("AND THAT CHOICE WOULD COST $%s.", p.Err.Needed.StringFixed(2))
	case engine.NotANumber:
		c.printf("*** ERROR ***")
		c.printf("THAT'S NOT A NUMBER. TRY AGAIN.")
	default:
		c.printf("*** ERROR ***")
		c.printf("COME ON, LET'S BE REASONABLE NOW!!! TRY AGAIN.")
	}
}

func (c *console) Notice(n engine.Notice) {
	switch n.Kind {
	case engine.NoticeWeather:
		c.printf("")
		c.printf("---------------------------------------------")
		c.printf("    LEMONSVILLE WEATHER REPORT -- DAY %d", n.Day)
		c.printf("---------------------------------------------")
		c.printf("  %s, AROUND %d DEGREES", strings.ToUpper(n.Weather.Condition.String()), n.Temperature)
		c.printWeatherUpdate(n.Weather)
		c.printf("")
		c.printf("ON DAY %d, THE COST OF LEMONADE IS $.0%d", n.Day, n.UnitCostCents)
		c.printf("")
	case engine.NoticeSugarSubsidyEnd:
		c.printf("*** SPECIAL NOTICE ***")
		c.printf("(YOUR MOTHER QUIT GIVING YOU FREE SUGAR)")
		c.printf("")
	case engine.NoticeMixPriceUp:
		c.printf("*** SPECIAL NOTICE ***")
		c.printf("(THE PRICE OF LEMONADE MIX JUST WENT UP)")
		c.printf("")
	case engine.NoticeStorm:
		c.printf("*** BREAKING NEWS ***")
		c.printf("A SEVERE THUNDERSTORM HIT LEMONSVILLE")
		c.printf("EARLIER TODAY, JUST AS THE LEMONADE")
		c.printf("STANDS WERE BEING SET UP.")
		c.printf("UNFORTUNATELY, EVERYTHING WAS RUINED!!")
		c.printf("")
	case engine.NoticeBankrupt:
		c.printf("*** BANKRUPTCY NOTICE ***")
		c.printf("STAND %d IS BANKRUPT, NO DECISIONS", n.StandID)
		c.printf("FOR YOU TO MAKE.")
		c.printf("")
	case engine.NoticeInstructions:
		c.printInstructions()
	}
}

func (c *console) printWeatherUpdate(w weather.Outcome) {
	switch w.Event.Kind {
	case weather.EventLightRain:
		c.printf("  THERE IS A %d%% CHANCE OF LIGHT RAIN,", w.Event.RainChance)
		c.printf("  AND THE WEATHER IS COOLER TODAY.")
	case weather.EventHeatWave:
		c.printf("  A HEAT WAVE IS PREDICTED FOR TODAY!")
	case weather.EventStreetWork:
		c.printf("  THE STREET DEPARTMENT IS WORKING TODAY.")
		c.printf("  THERE WILL BE NO TRAFFIC ON YOUR STREET.")
	}
}

func (c *console) printInstructions() {
	c.printf("")
	c.printf("TO MANAGE YOUR LEMONADE STAND, YOU WILL")
	c.printf("NEED TO MAKE THESE DECISIONS EVERY DAY:")
	c.printf("")
	c.printf("1. HOW MANY GLASSES OF LEMONADE TO MAKE")
	c.printf("   (ONLY ONE BATCH IS MADE EACH MORNING)")
	c.printf("2. HOW MANY ADVERTISING SIGNS TO MAKE")
	c.printf("   (THE SIGNS COST FIFTEEN CENTS EACH)")
	c.printf("3. WHAT PRICE TO CHARGE FOR EACH GLASS")
	c.printf("")
	c.printf("YOU WILL BEGIN WITH $2.00 CASH (ASSETS).")
	c.printf("BECAUSE YOUR MOTHER GAVE YOU SOME SUGAR,")
	c.printf("YOUR COST TO MAKE LEMONADE IS TWO CENTS")
	c.printf("A GLASS (THIS MAY CHANGE IN THE FUTURE).")
	c.printf("")
	c.printf("YOUR EXPENSES ARE THE SUM OF THE COST OF")
	c.printf("THE LEMONADE AND THE COST OF THE SIGNS.")
	c.printf("YOUR PROFITS ARE THE DIFFERENCE BETWEEN")
	c.printf("THE INCOME FROM SALES AND YOUR EXPENSES.")
	c.printf("")
	c.printf("KEEP TRACK OF YOUR ASSETS, BECAUSE YOU")
	c.printf("CAN'T SPEND MORE MONEY THAN YOU HAVE!")
	c.printf("")
}

func (c *console) EmitDaily(r engine.DailyReport) {
	c.printf("")
	c.printf("=====================================================")
	c.printf("    $$ LEMONSVILLE DAILY FINANCIAL REPORT $$")
	c.printf("=====================================================")
	for _, row := range r.Stands {
		c.printf("")
		if row.Bankrupt && !row.WentBankrupt {
			c.printf("   STAND %d   *** BANKRUPT ***", row.StandID)
			continue
		}
		c.printf("  DAY %d                        STAND %d", r.Day, row.StandID)
		c.printf("")
		c.printf("  %4s      GLASSES SOLD", humanize.Comma(int64(row.GlassesSold)))
		c.printf("  $%s      PER GLASS           INCOME   $%s",
			fmt.Sprintf("%.2f", float64(row.PriceCents)/100), row.Income.StringFixed(2))
		c.printf("")
		c.printf("  %4s      GLASSES MADE", humanize.Comma(int64(row.GlassesMade)))
		c.printf("  %4d      SIGNS MADE          EXPENSES $%s", row.SignsMade, row.Expenses.StringFixed(2))
		c.printf("")
		c.printf("            PROFIT   $%s", row.Profit.StringFixed(2))
		c.printf("            ASSETS   $%s", row.Cash.StringFixed(2))
		if row.WentBankrupt {
			c.printf("")
			c.printf("  *** BANKRUPTCY NOTICE ***")
			c.printf("  YOU DON'T HAVE ENOUGH MONEY LEFT")
			c.printf("  TO STAY IN BUSINESS -- YOU'RE BANKRUPT!")
		}
	}
	c.printf("")
}

func (c *console) EmitSeason(s engine.SeasonSummary) {
	c.printf("")
	c.printf("=====================================================")
	c.printf("                   GAME OVER!")
	c.printf("               FINAL STANDINGS")
	c.printf("=====================================================")
	for _, st := range s.Standings {
		c.printf("  %s: STAND %d WITH $%s", strings.ToUpper(humanize.Ordinal(st.Rank)), st.StandID, st.Cash.StringFixed(2))
	}
	c.printf("")
	if s.Winner != nil {
		c.printf("*** CONGRATULATIONS! ***")
		c.printf("STAND %d WINS WITH $%s!", s.Winner.StandID, s.Winner.Cash.StringFixed(2))
		c.printf("")
	}
}

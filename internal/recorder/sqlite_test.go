package recorder

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mreider/lemonade/internal/engine"
	"github.com/mreider/lemonade/internal/weather"
)

func testReport(day int, cash string) engine.DailyReport {
	c, _ := decimal.NewFromString(cash)
	return engine.DailyReport{
		Day:     day,
		Weather: weather.Outcome{Condition: weather.Sunny},
		Stands: []engine.StandReport{{
			StandID:     1,
			GlassesMade: 10,
			PriceCents:  10,
			GlassesSold: 10,
			Income:      decimal.New(100, -2),
			Expenses:    decimal.New(20, -2),
			Profit:      decimal.New(80, -2),
			Cash:        c,
		}},
	}
}

func TestRecordAndList(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer db.Close()

	const seasonID = "season-1"
	require.NoError(t, db.RecordDay(seasonID, testReport(1, "2.80")))
	require.NoError(t, db.RecordDay(seasonID, testReport(2, "3.60")))

	cash, _ := decimal.NewFromString("3.60")
	summary := engine.SeasonSummary{
		Days: 2,
		Standings: []engine.Standing{
			{Rank: 1, StandID: 1, Cash: cash},
		},
	}
	summary.Winner = &summary.Standings[0]
	require.NoError(t, db.RecordSeason(seasonID, summary))

	rows, err := db.RecentSeasons(5)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, seasonID, rows[0].ID)
	assert.Equal(t, 2, rows[0].Days)
	require.NotNil(t, rows[0].WinnerStand)
	assert.Equal(t, 1, *rows[0].WinnerStand)
	require.NotNil(t, rows[0].TopCash)
	assert.Equal(t, "3.60", *rows[0].TopCash)
}

func TestStormDayRecordsNoRows(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer db.Close()

	const seasonID = "season-2"
	storm := engine.DailyReport{
		Day: 3,
		Weather: weather.Outcome{
			Condition: weather.Storm,
			Event:     weather.Event{Kind: weather.EventStorm},
		},
	}
	require.NoError(t, db.RecordDay(seasonID, storm))

	rows, err := db.RecentSeasons(1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Days)

	var n int
	require.NoError(t, db.conn.Get(&n,
		"SELECT COUNT(*) FROM daily_results WHERE season_id = ?", seasonID))
	assert.Equal(t, 0, n)
}

func TestNoopRecorder(t *testing.T) {
	var rec Noop
	require.NoError(t, rec.RecordDay("s", engine.DailyReport{}))
	require.NoError(t, rec.RecordSeason("s", engine.SeasonSummary{}))
	require.NoError(t, rec.Close())
}

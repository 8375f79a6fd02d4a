package recorder

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/mreider/lemonade/internal/engine"
)

// DB records season history in a SQLite database.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates the history database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS seasons (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		days INTEGER NOT NULL DEFAULT 0,
		winner_stand INTEGER,
		top_cash TEXT
	);

	CREATE TABLE IF NOT EXISTS daily_results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		season_id TEXT NOT NULL,
		day INTEGER NOT NULL,
		condition TEXT NOT NULL,
		event TEXT NOT NULL,
		stand_id INTEGER NOT NULL,
		glasses_made INTEGER NOT NULL,
		signs_made INTEGER NOT NULL,
		price_cents INTEGER NOT NULL,
		glasses_sold INTEGER NOT NULL,
		income TEXT NOT NULL,
		expenses TEXT NOT NULL,
		profit TEXT NOT NULL,
		cash TEXT NOT NULL,
		bankrupt INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS standings (
		season_id TEXT NOT NULL,
		rank INTEGER NOT NULL,
		stand_id INTEGER NOT NULL,
		cash TEXT NOT NULL,
		PRIMARY KEY (season_id, rank)
	);

	CREATE INDEX IF NOT EXISTS idx_daily_season ON daily_results(season_id, day);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// RecordDay appends one day's per-stand rows. Storm days carry no rows but
// still advance the season's day count.
func (db *DB) RecordDay(seasonID string, r engine.DailyReport) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		"INSERT OR IGNORE INTO seasons (id, started_at) VALUES (?, ?)",
		seasonID, time.Now().Unix(),
	); err != nil {
		return err
	}
	if _, err := tx.Exec(
		"UPDATE seasons SET days = ? WHERE id = ?", r.Day, seasonID,
	); err != nil {
		return err
	}

	stmt, err := tx.Preparex(`INSERT INTO daily_results
		(season_id, day, condition, event, stand_id, glasses_made, signs_made,
		 price_cents, glasses_sold, income, expenses, profit, cash, bankrupt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, row := range r.Stands {
		bankrupt := 0
		if row.Bankrupt {
			bankrupt = 1
		}
		_, err := stmt.Exec(
			seasonID, r.Day,
			r.Weather.Condition.String(), r.Weather.Event.Kind.String(),
			row.StandID, row.GlassesMade, row.SignsMade,
			row.PriceCents, row.GlassesSold,
			row.Income.StringFixed(2), row.Expenses.StringFixed(2),
			row.Profit.StringFixed(2), row.Cash.StringFixed(2),
			bankrupt,
		)
		if err != nil {
			return fmt.Errorf("insert stand %d: %w", row.StandID, err)
		}
	}

	return tx.Commit()
}

// RecordSeason stores the final standings and closes out the season row.
func (db *DB) RecordSeason(seasonID string, s engine.SeasonSummary) error {
	tx, err := db.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, st := range s.Standings {
		if _, err := tx.Exec(
			"INSERT OR REPLACE INTO standings (season_id, rank, stand_id, cash) VALUES (?, ?, ?, ?)",
			seasonID, st.Rank, st.StandID, st.Cash.StringFixed(2),
		); err != nil {
			return err
		}
	}

	var winner *int
	if s.Winner != nil {
		winner = &s.Winner.StandID
	}
	topCash := ""
	if len(s.Standings) > 0 {
		topCash = s.Standings[0].Cash.StringFixed(2)
	}
	if _, err := tx.Exec(
		"UPDATE seasons SET days = ?, winner_stand = ?, top_cash = ? WHERE id = ?",
		s.Days, winner, topCash, seasonID,
	); err != nil {
		return err
	}

	return tx.Commit()
}

// SeasonRow is one row of the seasons table, for history listings.
type SeasonRow struct {
	ID          string  `db:"id"`
	StartedAt   int64   `db:"started_at"`
	Days        int     `db:"days"`
	WinnerStand *int    `db:"winner_stand"`
	TopCash     *string `db:"top_cash"`
}

// RecentSeasons returns the most recently started seasons.
func (db *DB) RecentSeasons(limit int) ([]SeasonRow, error) {
	var rows []SeasonRow
	err := db.conn.Select(&rows,
		"SELECT id, started_at, days, winner_stand, top_cash FROM seasons ORDER BY started_at DESC LIMIT ?",
		limit,
	)
	return rows, err
}

// Package recorder persists season history to SQLite for later analysis.
// It is a write-only audit trail: nothing here is ever read back to restore
// a season in progress.
package recorder

import "github.com/mreider/lemonade/internal/engine"

// Noop is used when no database is configured.
type Noop struct{}

func (Noop) RecordDay(string, engine.DailyReport) error      { return nil }
func (Noop) RecordSeason(string, engine.SeasonSummary) error { return nil }
func (Noop) Close() error                                    { return nil }

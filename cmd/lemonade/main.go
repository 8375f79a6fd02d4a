// Command lemonade runs the Lemonsville stand simulation on a terminal.
package main

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mreider/lemonade/internal/config"
	"github.com/mreider/lemonade/internal/engine"
	"github.com/mreider/lemonade/internal/entropy"
	"github.com/mreider/lemonade/internal/parser"
	"github.com/mreider/lemonade/internal/recorder"
	"github.com/mreider/lemonade/internal/weather"
)

// historyRecorder is engine.Recorder plus the close the host owes the DB.
type historyRecorder interface {
	engine.Recorder
	Close() error
}

func main() {
	cfgPath := os.Getenv("LEMONADE_CONFIG")
	if cfgPath == "" {
		cfgPath = "lemonade.yml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(cfg.Log.Level),
	}))
	slog.SetDefault(logger)

	var rec historyRecorder = recorder.Noop{}
	if cfg.Database.SQLitePath != "" {
		os.MkdirAll(filepath.Dir(cfg.Database.SQLitePath), 0755)
		db, err := recorder.Open(cfg.Database.SQLitePath)
		if err != nil {
			slog.Error("failed to open history database", "path", cfg.Database.SQLitePath, "error", err)
			os.Exit(1)
		}
		rec = db
		slog.Info("history database opened", "path", cfg.Database.SQLitePath)
		if rows, err := db.RecentSeasons(1); err == nil && len(rows) > 0 {
			slog.Info("last recorded season", "id", rows[0].ID, "days", rows[0].Days)
		}
	}
	defer rec.Close()

	console := newConsole(os.Stdin, os.Stdout)
	console.printf("HI! WELCOME TO LEMONSVILLE, CALIFORNIA!")
	console.printf("")
	console.printf("IN THIS SMALL TOWN, YOU ARE IN CHARGE OF")
	console.printf("RUNNING YOUR OWN LEMONADE STAND. YOU CAN")
	console.printf("COMPETE WITH AS MANY OTHER PEOPLE AS YOU")
	console.printf("WISH, BUT HOW MUCH PROFIT YOU MAKE IS UP")
	console.printf("TO YOU. THE OTHER STANDS' SALES WILL NOT")
	console.printf("AFFECT YOUR BUSINESS IN ANY WAY. IF YOU")
	console.printf("MAKE THE MOST MONEY, YOU'RE THE WINNER!!")
	console.printf("")

	for {
		var src entropy.Source
		noiseSeed := cfg.Game.Seed
		if cfg.Game.Seed != 0 {
			src = entropy.NewSeeded(cfg.Game.Seed)
		} else {
			src = entropy.Crypto{}
			noiseSeed = time.Now().UnixNano()
		}

		ctrl := engine.New(console, weather.NewModel(noiseSeed), src, rec)
		if _, err := ctrl.Run(); err != nil {
			if errors.Is(err, engine.ErrAbandoned) {
				slog.Info("season abandoned")
				return
			}
			slog.Error("season failed", "error", err)
			os.Exit(1)
		}

		raw, err := console.Prompt(engine.Prompt{Kind: engine.PromptPlayAgain})
		if err != nil {
			return
		}
		if again, ok := parser.YesNo(raw); !ok || !again {
			console.printf("")
			console.printf("THANKS FOR PLAYING LEMONADE STAND!")
			return
		}
	}
}

func logLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

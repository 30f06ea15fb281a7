package main

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	feedservice "github.com/tapeworks/tickertape/internal/feed/service"
	"github.com/tapeworks/tickertape/internal/ticker/pipeline"
	"github.com/tapeworks/tickertape/pkg/config"
	"github.com/tapeworks/tickertape/tui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	// 1. Start the mock feed.
	feedCfg := feedservice.DefaultConfig()
	feedCfg.Symbols = cfg.Symbols
	feedCfg.StartPrices = cfg.StartPriceMap()
	feedCfg.TickInterval = cfg.TickInterval
	feed := feedservice.NewFeedService(feedCfg, logger)
	defer feed.Close()

	// 2. Wire the transformation pipeline onto it.
	pipe := pipeline.New(feed, pipeline.DefaultConfig(), logger)
	defer pipe.Close()

	// 3. Run the terminal UI as the render sink.
	model := tui.NewModel(pipe, cfg.TapeSize)
	program := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting tickertape",
		zap.Strings("symbols", cfg.Symbols),
		zap.Duration("tick_interval", cfg.TickInterval))

	if _, err := program.Run(); err != nil {
		logger.Error("ui error", zap.Error(err))
	}

	logger.Info("tickertape shut down",
		zap.Int64("skipped", pipe.Skipped()),
		zap.Int64("dropped", pipe.Dropped()))
}

// newLogger builds a file-backed logger so log lines never fight the
// alt-screen UI for the terminal.
func newLogger(debug bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"tickertape.log"}
	zcfg.ErrorOutputPaths = []string{"tickertape.log"}
	return zcfg.Build()
}

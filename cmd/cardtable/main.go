package main

import (
	"bufio"
	"flag"
	"os"

	"cardtable/internal/config"
	"cardtable/internal/rng"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

// Version is the cardtable version
var Version = "v0.0.0-dev"

var gameFlag = flag.String("game", "", "the game to play (overrides the config)")
var nameFlag = flag.String("name", "You", "your display name")

func main() {
	flag.Parse()
	setupLogger()

	cfg := config.Instance()

	gameName := cfg.Game
	if *gameFlag != "" {
		gameName = *gameFlag
	}

	var gen rng.Generator = rng.Crypto{}
	if cfg.Seed != 0 {
		gen = rng.NewSeeded(cfg.Seed)
	}

	logger := logrus.WithField("version", Version)

	h, err := newHarness(logger, cfg, gameName, *nameFlag, gen, bufio.NewScanner(os.Stdin), os.Stdout)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := h.run(); err != nil {
		logrus.Fatal(err)
	}
}

func setupLogger() {
	if level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}
}

func buildTable(logger logrus.FieldLogger, cfg config.Config, humanName string) (*table.Table, error) {
	tbl := table.New(logger)
	if _, err := tbl.AddSeat(humanName, cfg.StartingBalance, nil); err != nil {
		return nil, err
	}

	for i := 0; i < cfg.CPUSeats; i++ {
		name := cpuName()
		if _, err := tbl.AddSeat(name, cfg.StartingBalance, table.NewCPU(name)); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}

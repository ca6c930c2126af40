package gamefactory

import (
	"cardtable/internal/rng"
	"cardtable/pkg/playable"
	"cardtable/pkg/playable/poker/handoracle"
	"cardtable/pkg/playable/poker/texasholdem"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

type texasHoldEmFactory struct{}

func (t texasHoldEmFactory) CreateGame(logger logrus.FieldLogger, tbl *table.Table, dealerIndex int, additionalData playable.AdditionalData, gen rng.Generator) (playable.Playable, error) {
	game, err := texasholdem.NewGame(logger, tbl, dealerIndex, getTexasHoldEmOptions(additionalData), handoracle.Live{}, gen)
	if err != nil {
		return nil, err
	}

	if err := game.Deal(); err != nil {
		return nil, err
	}

	return game, nil
}

func (t texasHoldEmFactory) Details(additionalData playable.AdditionalData) (string, int, error) {
	opts := getTexasHoldEmOptions(additionalData)
	return "Texas Hold'em", opts.Ante, nil
}

func getTexasHoldEmOptions(data playable.AdditionalData) texasholdem.Options {
	opts := texasholdem.DefaultOptions()
	if ante, ok := data.GetInt("ante"); ok {
		opts.Ante = ante
	}

	if lowerLimit, _ := data.GetInt("lowerLimit"); lowerLimit > 0 {
		opts.LowerLimit = lowerLimit
	}

	if seed, ok := data.GetInt("seed"); ok {
		opts.Seed = int64(seed)
	}

	return opts
}

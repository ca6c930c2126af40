package gamefactory

import (
	"cardtable/internal/rng"
	"cardtable/pkg/playable"
	"cardtable/pkg/playable/poker/fivecarddraw"
	"cardtable/pkg/playable/poker/handoracle"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

type fiveCardDrawFactory struct{}

func (f fiveCardDrawFactory) CreateGame(logger logrus.FieldLogger, tbl *table.Table, dealerIndex int, additionalData playable.AdditionalData, gen rng.Generator) (playable.Playable, error) {
	game, err := fivecarddraw.NewGame(logger, tbl, dealerIndex, getFiveCardDrawOptions(additionalData), handoracle.Live{}, gen)
	if err != nil {
		return nil, err
	}

	if err := game.Deal(); err != nil {
		return nil, err
	}

	return game, nil
}

func (f fiveCardDrawFactory) Details(additionalData playable.AdditionalData) (string, int, error) {
	opts := getFiveCardDrawOptions(additionalData)
	return "Five Card Draw", opts.Ante, nil
}

func getFiveCardDrawOptions(data playable.AdditionalData) fivecarddraw.Options {
	opts := fivecarddraw.DefaultOptions()
	if ante, _ := data.GetInt("ante"); ante > 0 {
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

package gamefactory

import (
	"cardtable/internal/rng"
	"cardtable/pkg/playable"
	"cardtable/pkg/playable/aceydeucey"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

type aceyDeuceyFactory struct{}

func (a aceyDeuceyFactory) CreateGame(logger logrus.FieldLogger, tbl *table.Table, dealerIndex int, additionalData playable.AdditionalData, gen rng.Generator) (playable.Playable, error) {
	return aceydeucey.NewGame(logger, tbl, getAceyDeuceyOptions(additionalData), gen)
}

func (a aceyDeuceyFactory) Details(additionalData playable.AdditionalData) (string, int, error) {
	opts := getAceyDeuceyOptions(additionalData)
	return aceydeucey.NameFromOptions(opts), opts.Ante, nil
}

func getAceyDeuceyOptions(data playable.AdditionalData) aceydeucey.Options {
	opts := aceydeucey.DefaultOptions()
	if ante, _ := data.GetInt("ante"); ante > 0 {
		opts.Ante = ante
	}

	if allowPass, ok := data.GetBool("allowPass"); ok {
		opts.AllowPass = allowPass
	}

	if gameType, ok := data.GetString("gameType"); ok {
		if gt, err := aceydeucey.GetGameType(gameType); err == nil {
			opts.GameType = gt
		}
	}

	if seed, ok := data.GetInt("seed"); ok {
		opts.Seed = int64(seed)
	}

	return opts
}

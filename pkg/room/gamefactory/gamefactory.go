package gamefactory

import (
	"fmt"

	"cardtable/internal/rng"
	"cardtable/pkg/playable"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

var factories = map[string]GameFactory{
	"acey-deucey":    aceyDeuceyFactory{},
	"texas-hold-em":  texasHoldEmFactory{},
	"five-card-draw": fiveCardDrawFactory{},
}

// GameFactory is a factory for creating games that implement the Playable interface
type GameFactory interface {
	CreateGame(logger logrus.FieldLogger, tbl *table.Table, dealerIndex int, additionalData playable.AdditionalData, gen rng.Generator) (playable.Playable, error)
	Details(additionalData playable.AdditionalData) (name string, ante int, err error)
}

// Get returns a factory by the given name
func Get(name string) (GameFactory, error) {
	factory, ok := factories[name]
	if !ok {
		return nil, fmt.Errorf("unknown game: %s", name)
	}

	return factory, nil
}

// Names returns the registered game names
func Names() []string {
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}

	return names
}

package gamefactory

import (
	"sort"
	"testing"

	"cardtable/internal/rng"
	"cardtable/pkg/playable"
	"cardtable/pkg/playable/aceydeucey"
	"cardtable/pkg/playable/poker/fivecarddraw"
	"cardtable/pkg/playable/poker/texasholdem"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func testTable(t *testing.T) *table.Table {
	t.Helper()

	tbl := table.New(logrus.StandardLogger())
	for i := 0; i < 3; i++ {
		_, err := tbl.AddSeat("seat", 1000, table.NewCPU("cpu"))
		assert.NoError(t, err)
	}

	return tbl
}

func TestGet(t *testing.T) {
	a := assert.New(t)

	factory, err := Get("acey-deucey")
	a.NoError(err)
	a.NotNil(factory)

	_, err = Get("go-fish")
	a.EqualError(err, "unknown game: go-fish")

	names := Names()
	sort.Strings(names)
	a.Equal([]string{"acey-deucey", "five-card-draw", "texas-hold-em"}, names)
}

func TestCreateGame(t *testing.T) {
	a := assert.New(t)

	data := playable.AdditionalData{"seed": float64(1)}

	game, err := aceyDeuceyFactory{}.CreateGame(logrus.StandardLogger(), testTable(t), 0, data, rng.NewSeeded(1))
	a.NoError(err)
	a.IsType(&aceydeucey.Game{}, game)

	game, err = texasHoldEmFactory{}.CreateGame(logrus.StandardLogger(), testTable(t), 0, data, rng.NewSeeded(1))
	a.NoError(err)
	a.IsType(&texasholdem.Game{}, game)

	game, err = fiveCardDrawFactory{}.CreateGame(logrus.StandardLogger(), testTable(t), 0, data, rng.NewSeeded(1))
	a.NoError(err)
	a.IsType(&fivecarddraw.Game{}, game)
}

func TestDetails(t *testing.T) {
	a := assert.New(t)

	name, ante, err := aceyDeuceyFactory{}.Details(playable.AdditionalData{
		"ante":      float64(100),
		"allowPass": true,
		"gameType":  "continuous shoe",
	})
	a.NoError(err)
	a.Equal("Acey Deucey (Continuous Shoe and With Passing)", name)
	a.Equal(100, ante)

	name, ante, err = texasHoldEmFactory{}.Details(playable.AdditionalData{"ante": float64(0)})
	a.NoError(err)
	a.Equal("Texas Hold'em", name)
	a.Equal(0, ante)

	name, ante, err = fiveCardDrawFactory{}.Details(playable.AdditionalData{})
	a.NoError(err)
	a.Equal("Five Card Draw", name)
	a.Equal(25, ante)
}

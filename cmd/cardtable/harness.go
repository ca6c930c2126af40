package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cardtable/internal/config"
	"cardtable/internal/rng"
	"cardtable/internal/util"
	"cardtable/pkg/deck"
	"cardtable/pkg/playable"
	"cardtable/pkg/playable/aceydeucey"
	"cardtable/pkg/playable/poker/fivecarddraw"
	"cardtable/pkg/playable/poker/texasholdem"
	"cardtable/pkg/room/gamefactory"
	"cardtable/pkg/table"

	"github.com/sirupsen/logrus"
)

// humanPlayerID is the wire ID of seat 0, the human seat
const humanPlayerID = 1

var errQuit = errors.New("quit")

// cpuStepper is satisfied by every game in the factory registry
type cpuStepper interface {
	playable.Playable
	StepCPU() (bool, error)
}

// harness runs games at a single table until one seat holds all the money
// or the human quits
type harness struct {
	logger      logrus.FieldLogger
	cfg         config.Config
	gameName    string
	table       *table.Table
	gen         rng.Generator
	in          *bufio.Scanner
	out         io.Writer
	dealerIndex int
}

func newHarness(logger logrus.FieldLogger, cfg config.Config, gameName, humanName string, gen rng.Generator, in *bufio.Scanner, out io.Writer) (*harness, error) {
	if _, err := gamefactory.Get(gameName); err != nil {
		return nil, err
	}

	tbl, err := buildTable(logger, cfg, humanName)
	if err != nil {
		return nil, err
	}

	return &harness{
		logger:   logger,
		cfg:      cfg,
		gameName: gameName,
		table:    tbl,
		gen:      gen,
		in:       in,
		out:      out,
	}, nil
}

func cpuName() string {
	return util.GetRandomName()
}

func (h *harness) run() error {
	h.printf("Welcome to the card table. %d opponents, ${%d} each. Type \"quit\" to leave.\n",
		h.table.Len()-1, h.cfg.StartingBalance)

	for {
		if err := h.playHand(); err != nil {
			if err == errQuit {
				h.printf("Thanks for playing.\n")
				return nil
			}

			return err
		}

		h.table.Condense()

		if survivor, ok := h.table.SingleSurvivor(); ok {
			h.printf("%s has all the money. Game over.\n", h.table.Seat(survivor).Name)
			return nil
		}

		if h.table.Seat(0).Balance.Balance() == 0 {
			h.printf("You are out of money. Game over.\n")
			return nil
		}

		h.dealerIndex = (h.dealerIndex + 1) % h.table.Len()
	}
}

func (h *harness) playHand() error {
	factory, err := gamefactory.Get(h.gameName)
	if err != nil {
		return err
	}

	data := playable.AdditionalData{
		"ante":       float64(h.cfg.Ante),
		"lowerLimit": float64(h.cfg.LowerLimit),
		"seed":       float64(h.cfg.Seed),
	}

	game, err := factory.CreateGame(h.logger, h.table, h.dealerIndex, data, h.gen)
	if err != nil {
		return err
	}

	stepper, ok := game.(cpuStepper)
	if !ok {
		return fmt.Errorf("game %s cannot drive CPU seats", game.Name())
	}

	h.printf("\n=== %s (dealer: %s) ===\n", game.Name(), h.table.Seat(h.dealerIndex).Name)

	for {
		h.drainLogs(game)

		if details, over := game.GetEndOfGameDetails(); over {
			h.printResults(details)
			return nil
		}

		acted, err := stepper.StepCPU()
		if err != nil {
			return err
		}

		if acted {
			continue
		}

		if _, over := game.GetEndOfGameDetails(); over {
			continue
		}

		h.printState(game)

		payload, err := h.readAction(game)
		if err != nil {
			return err
		}

		if payload == nil {
			continue
		}

		if _, _, err := game.Action(humanPlayerID, payload); err != nil {
			h.printf("! %s\n", err)
		}
	}
}

// drainLogs prints any queued game log messages, resolving the {} player
// placeholder the way the web client would
func (h *harness) drainLogs(game playable.Playable) {
	for {
		select {
		case messages := <-game.LogChan():
			for _, msg := range messages {
				text := msg.Message
				if len(msg.PlayerIDs) > 0 {
					seat := int(msg.PlayerIDs[0]) - 1
					if seat >= 0 && seat < h.table.Len() {
						text = strings.ReplaceAll(text, "{}", h.table.Seat(seat).Name)
					}
				}

				if len(msg.Cards) > 0 {
					text = fmt.Sprintf("%s %s", text, deck.Hand(msg.Cards))
				}

				h.printf("  %s\n", text)
			}
		default:
			return
		}
	}
}

func (h *harness) printState(game playable.Playable) {
	balance := h.table.Seat(0).Balance.Balance()

	switch g := game.(type) {
	case *texasholdem.Game:
		h.printf("\n[%s] community: %s | pot ${%d} | to call ${%d} | your hand: %s | balance ${%d}\n",
			g.State(), handOrDash(g.Community()), g.PotTotal(), g.CallAmount(), g.Hand(0), balance)
		h.printf("actions: fold, check, call, raise <amount>\n")
	case *fivecarddraw.Game:
		h.printf("\n[%s] pot ${%d} | to call ${%d} | your hand: %s | balance ${%d}\n",
			g.State(), g.PotTotal(), g.CallAmount(), g.Hand(0), balance)
		if g.State() == fivecarddraw.DealerStateDraw {
			h.printf("actions: trade <cards like 5c,10d>, trade none\n")
		} else {
			h.printf("actions: fold, check, call, raise <amount>\n")
		}
	case *aceydeucey.Game:
		h.printf("\npot ${%d} | your balance ${%d}\n", g.Pot(), balance)
		h.printf("actions: bet <amount>, bet-the-gap, pass, burn, ace-high, ace-low\n")
	}
}

func (h *harness) readAction(game playable.Playable) (*playable.PayloadIn, error) {
	h.printf("> ")
	if !h.in.Scan() {
		return nil, errQuit
	}

	fields := strings.Fields(strings.TrimSpace(h.in.Text()))
	if len(fields) == 0 {
		return nil, nil
	}

	subject := fields[0]
	if subject == "quit" {
		return nil, errQuit
	}

	payload := &playable.PayloadIn{Subject: subject}

	switch subject {
	case "raise", "bet":
		if len(fields) < 2 {
			h.printf("! %s needs an amount\n", subject)
			return nil, nil
		}

		amount, err := strconv.Atoi(fields[1])
		if err != nil {
			h.printf("! bad amount: %s\n", fields[1])
			return nil, nil
		}

		payload.AdditionalData = playable.AdditionalData{"amount": float64(amount)}
	case "trade":
		if len(fields) >= 2 && fields[1] != "none" {
			cards, err := parseCards(fields[1])
			if err != nil {
				h.printf("! %s\n", err)
				return nil, nil
			}

			payload.Cards = cards
		}
	}

	return payload, nil
}

// parseCards converts user input into cards without letting a bad string
// panic the harness
func parseCards(s string) (cards []*deck.Card, err error) {
	defer func() {
		if r := recover(); r != nil {
			cards = nil
			err = fmt.Errorf("could not parse cards: %s", s)
		}
	}()

	return deck.CardsFromString(s), nil
}

func (h *harness) printResults(details *playable.GameOverDetails) {
	h.printf("--- results ---\n")
	for i := 0; i < h.table.Len(); i++ {
		adjustment := details.BalanceAdjustments[int64(i)+1]
		seat := h.table.Seat(i)
		h.printf("  %-20s ${%d} (%+d)\n", seat.Name, seat.Balance.Balance(), adjustment)
	}
}

func (h *harness) printf(format string, a ...interface{}) {
	fmt.Fprintf(h.out, format, a...)
}

func handOrDash(hand deck.Hand) string {
	if len(hand) == 0 {
		return "-"
	}

	return hand.String()
}

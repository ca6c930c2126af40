package handoracle

import (
	"fmt"

	"cardtable/pkg/deck"

	"github.com/chehsunliu/poker"
)

// WorstRank sorts below every playable hand. Use it to seed best-hand scans.
const WorstRank = 0

// BestRank is the score of a royal flush, the top of Evaluate's scale
const BestRank = worstRawRank

// chehsunliu's weakest five-card rank; its scale is lower-is-better so we
// flip it around this constant
const worstRawRank = 7462

// Oracle scores hands and estimates pre-flop strength. The game drivers
// consume it as an opaque collaborator, which also lets tests force outcomes.
type Oracle interface {
	// Evaluate scores the best five-card hand from the cards. Higher wins.
	Evaluate(community, hole deck.Hand) int

	// WinProbability estimates the strength of a two-card holding on a
	// 0..255 fixed-point scale
	WinProbability(hole deck.Hand) uint8
}

// Live is the production Oracle, backed by the chehsunliu/poker evaluator
type Live struct{}

// Evaluate scores the best five-card hand from community+hole. Higher wins;
// every real hand scores above WorstRank.
func (Live) Evaluate(community, hole deck.Hand) int {
	cards := make([]poker.Card, 0, len(community)+len(hole))
	for _, c := range community {
		cards = append(cards, convertCard(c))
	}
	for _, c := range hole {
		cards = append(cards, convertCard(c))
	}

	return worstRawRank + 1 - int(poker.Evaluate(cards))
}

// HandDescription names the best hand (e.g. "Pair", "Full House")
func HandDescription(community, hole deck.Hand) string {
	cards := make([]poker.Card, 0, len(community)+len(hole))
	for _, c := range community {
		cards = append(cards, convertCard(c))
	}
	for _, c := range hole {
		cards = append(cards, convertCard(c))
	}

	return poker.RankString(poker.Evaluate(cards))
}

// convertCard converts our card into chehsunliu's string-built representation
func convertCard(card *deck.Card) poker.Card {
	var rank byte
	switch card.Rank {
	case 10:
		rank = 'T'
	case deck.Jack:
		rank = 'J'
	case deck.Queen:
		rank = 'Q'
	case deck.King:
		rank = 'K'
	case deck.Ace:
		rank = 'A'
	default:
		rank = byte('0' + card.Rank)
	}

	var suit byte
	switch card.Suit {
	case deck.Clubs:
		suit = 'c'
	case deck.Diamonds:
		suit = 'd'
	case deck.Hearts:
		suit = 'h'
	case deck.Spades:
		suit = 's'
	default:
		panic(fmt.Sprintf("unknown suit: %s", card.Suit))
	}

	return poker.NewCard(string([]byte{rank, suit}))
}

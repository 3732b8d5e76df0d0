// Package strategy decides which card slots to discard after a hand
// has been classified, and reports four-card draw holdings as
// non-binding advisories.
package strategy

import (
	"fmt"

	"cardbot-server/pkg/deck"
	"cardbot-server/pkg/poker/evaluator"
)

// Discards returns the ascending slot positions to give up for a
// redraw. Hands at a straight or better stand pat and return nothing.
func Discards(ev *evaluator.Evaluation) []int {
	switch ev.Hand() {
	case evaluator.RoyalFlush, evaluator.StraightFlush, evaluator.FourOfAKind,
		evaluator.FullHouse, evaluator.Flush, evaluator.Straight:
		return nil
	case evaluator.ThreeOfAKind, evaluator.TwoPair, evaluator.OnePair, evaluator.HighCard:
		return nonKeepers(ev.Keepers())
	}

	panic(fmt.Sprintf("unknown hand: %d", ev.Hand()))
}

// nonKeepers returns the ascending slots outside the keeper set
func nonKeepers(keepers []int) []int {
	keep := make(map[int]bool, len(keepers))
	for _, slot := range keepers {
		keep[slot] = true
	}

	slots := make([]int, 0, deck.HandSize)
	for slot := 1; slot <= deck.HandSize; slot++ {
		if !keep[slot] {
			slots = append(slots, slot)
		}
	}

	return slots
}

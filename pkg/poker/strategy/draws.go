package strategy

import (
	"sort"

	"cardbot-server/pkg/deck"
	"cardbot-server/pkg/poker/evaluator"
)

// DrawKind identifies a four-card holding one card short of a made hand
type DrawKind string

// Draw kinds
const (
	FourFlush    DrawKind = "four_flush"
	StraightDraw DrawKind = "straight_draw"
)

// Draw reports a four-card holding and the slots forming it
type Draw struct {
	Kind  DrawKind `json:"kind"`
	Slots []int    `json:"slots"`
}

// Draws reports flush and straight draws in a complete hand. A hand
// that already made a straight or flush has nothing to draw to and
// returns nil.
func Draws(h deck.Hand) []Draw {
	ev, err := evaluator.Evaluate(h)
	if err != nil {
		return nil
	}

	switch ev.Hand() {
	case evaluator.Straight, evaluator.Flush, evaluator.StraightFlush, evaluator.RoyalFlush:
		return nil
	}

	cards := h.Cards()

	var draws []Draw
	if slots := fourFlushSlots(cards); slots != nil {
		draws = append(draws, Draw{Kind: FourFlush, Slots: slots})
	}
	if slots := straightDrawSlots(cards); slots != nil {
		draws = append(draws, Draw{Kind: StraightDraw, Slots: slots})
	}

	return draws
}

// fourFlushSlots returns the slots of a suit held exactly four times
func fourFlushSlots(cards []deck.Card) []int {
	counts := make(map[deck.Suit]int)
	for _, card := range cards {
		counts[card.Suit]++
	}

	for suit, n := range counts {
		if n != 4 {
			continue
		}

		slots := make([]int, 0, n)
		for i, card := range cards {
			if card.Suit == suit {
				slots = append(slots, i+1)
			}
		}

		return slots
	}

	return nil
}

// straightDrawSlots returns the slots of four distinct ranks that fit
// inside a five-rank window, counting the ace both high and low
func straightDrawSlots(cards []deck.Card) []int {
	type rankSlot struct {
		rank int
		slot int
	}

	ranked := make([]rankSlot, 0, len(cards)+1)
	for i, card := range cards {
		ranked = append(ranked, rankSlot{card.Rank, i + 1})
		if low := card.AceLowRank(); low != card.Rank {
			ranked = append(ranked, rankSlot{low, i + 1})
		}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].rank < ranked[j].rank })

	for _, base := range ranked {
		slotByRank := make(map[int]int)
		for _, rs := range ranked {
			if rs.rank < base.rank || rs.rank > base.rank+4 {
				continue
			}
			if _, ok := slotByRank[rs.rank]; !ok {
				slotByRank[rs.rank] = rs.slot
			}
		}

		if len(slotByRank) < 4 {
			continue
		}

		slots := make([]int, 0, len(slotByRank))
		for _, slot := range slotByRank {
			slots = append(slots, slot)
		}
		sort.Ints(slots)

		return slots
	}

	return nil
}

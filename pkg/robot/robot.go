// Package robot compiles hand decisions into ordered manipulator
// command sequences.
package robot

import (
	"sort"

	"cardbot-server/pkg/deck"
	"cardbot-server/pkg/poker/evaluator"
	"cardbot-server/pkg/poker/strategy"
	"cardbot-server/pkg/robot/action"
)

// Plan returns the ordered manipulator commands for the observed hand.
// A hand with empty slots produces the fill sequence without being
// evaluated; a complete hand is classified and produces the swap
// sequence for the discard policy. A nil result means stand pat.
func Plan(h deck.Hand) ([]action.Action, error) {
	if !h.Complete() {
		return FillActions(h), nil
	}

	ev, err := evaluator.Evaluate(h)
	if err != nil {
		return nil, err
	}

	return SwapActions(strategy.Discards(ev)), nil
}

// FillActions returns the commands dealing a card into every empty
// slot in ascending order, ending at the rest position. A complete
// hand returns nil.
func FillActions(h deck.Hand) []action.Action {
	empty := h.EmptySlots()
	if len(empty) == 0 {
		return nil
	}

	actions := make([]action.Action, 0, 2*len(empty)+1)
	for _, slot := range empty {
		actions = append(actions, action.TakeDeck, action.PlaceAt(slot))
	}

	return append(actions, action.DefaultPosition)
}

// SwapActions returns the commands discarding and redrawing the given
// slots in ascending order, ending at the rest position. No slots
// means stand pat and returns nil.
func SwapActions(slots []int) []action.Action {
	if len(slots) == 0 {
		return nil
	}

	ordered := append([]int(nil), slots...)
	sort.Ints(ordered)

	actions := make([]action.Action, 0, 5*len(ordered)+1)
	for _, slot := range ordered {
		actions = append(actions,
			action.TakeCard(slot),
			action.DropHolding,
			action.DefaultPosition,
			action.TakeDeck,
			action.PlaceAt(slot),
		)
	}

	return append(actions, action.DefaultPosition)
}

// CountSwaps returns the number of cards a command sequence replaces
func CountSwaps(actions []action.Action) int {
	n := 0
	for _, a := range actions {
		if a.Verb == action.VerbTakeCard {
			n++
		}
	}

	return n
}

// SwapSlots returns the distinct holder slots a command sequence
// replaces, in first-seen order
func SwapSlots(actions []action.Action) []int {
	seen := make(map[int]bool)
	slots := make([]int, 0, deck.HandSize)
	for _, a := range actions {
		if a.Verb == action.VerbTakeCard && !seen[a.Slot] {
			seen[a.Slot] = true
			slots = append(slots, a.Slot)
		}
	}

	return slots
}

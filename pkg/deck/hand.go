package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// HandSize is the number of card slots in the holder
const HandSize = 5

// ErrHandSize is an error when a hand is built from anything other than five slots
var ErrHandSize = errors.New("a hand must have exactly five slots")

// ErrSlotRange is an error when a slot index is outside 1 through 5
var ErrSlotRange = errors.New("slot index must be between 1 and 5")

// Hand is the five physical card slots, in holder order. Each slot either
// holds a card or is empty; emptiness is part of the slot state, never a nil
// card. The zero value is a hand with every slot empty. Slots are addressed
// by their 1-based holder index.
type Hand struct {
	slots [HandSize]handSlot
}

type handSlot struct {
	card     Card
	occupied bool
}

// NewHand returns a complete hand holding exactly the five cards, in slot order
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, ErrHandSize
	}

	var h Hand
	for i, card := range cards {
		if err := card.Validate(); err != nil {
			return Hand{}, err
		}

		h.slots[i] = handSlot{card: card, occupied: true}
	}

	return h, nil
}

// HandFromStrings returns a hand from five compact card strings, where an
// empty string marks an empty slot. This is the wire format for a hand.
func HandFromStrings(cards []string) (Hand, error) {
	if len(cards) != HandSize {
		return Hand{}, ErrHandSize
	}

	var h Hand
	for i, s := range cards {
		if s == "" {
			continue
		}

		card, err := ParseCard(s)
		if err != nil {
			return Hand{}, err
		}

		h.slots[i] = handSlot{card: card, occupied: true}
	}

	return h, nil
}

// HandFromString returns a hand from a comma-separated list of five compact
// cards, with empty segments for empty slots (i.e., "10h,,5c,,7h"). It panics
// if the hand cannot be built. Intended for tests and fixtures.
func HandFromString(s string) Hand {
	h, err := HandFromStrings(strings.Split(s, ","))
	if err != nil {
		panic(err.Error())
	}

	return h
}

// CardAt returns the card in the 1-based slot and whether the slot is occupied
func (h Hand) CardAt(slot int) (Card, bool) {
	if slot < 1 || slot > HandSize {
		return Card{}, false
	}

	s := h.slots[slot-1]
	return s.card, s.occupied
}

// SetCard places a card in the 1-based slot, replacing any card already there
func (h *Hand) SetCard(slot int, card Card) error {
	if slot < 1 || slot > HandSize {
		return ErrSlotRange
	}

	if err := card.Validate(); err != nil {
		return err
	}

	h.slots[slot-1] = handSlot{card: card, occupied: true}
	return nil
}

// ClearSlot empties the 1-based slot
func (h *Hand) ClearSlot(slot int) error {
	if slot < 1 || slot > HandSize {
		return ErrSlotRange
	}

	h.slots[slot-1] = handSlot{}
	return nil
}

// EmptySlots returns the 1-based indexes of the empty slots, ascending
func (h Hand) EmptySlots() []int {
	slots := make([]int, 0, HandSize)
	for i, s := range h.slots {
		if !s.occupied {
			slots = append(slots, i+1)
		}
	}

	return slots
}

// Complete returns true if every slot holds a card
func (h Hand) Complete() bool {
	for _, s := range h.slots {
		if !s.occupied {
			return false
		}
	}

	return true
}

// Cards returns the cards present in the hand, in slot order. The result has
// fewer than five entries if any slot is empty.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, HandSize)
	for _, s := range h.slots {
		if s.occupied {
			cards = append(cards, s.card)
		}
	}

	return cards
}

// Strings returns the compact wire form of the hand, "" for empty slots
func (h Hand) Strings() []string {
	out := make([]string, HandSize)
	for i, s := range h.slots {
		if s.occupied {
			out[i] = CardToString(s.card)
		}
	}

	return out
}

func (h Hand) String() string {
	return strings.Join(h.Strings(), ",")
}

// MarshalJSON encodes the hand as an array of five compact card strings
func (h Hand) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.Strings())
}

// UnmarshalJSON decodes an array of exactly five compact card strings
func (h *Hand) UnmarshalJSON(b []byte) error {
	var cards []string
	if err := json.Unmarshal(b, &cards); err != nil {
		return err
	}

	if len(cards) != HandSize {
		return fmt.Errorf("%w: got %d", ErrHandSize, len(cards))
	}

	hand, err := HandFromStrings(cards)
	if err != nil {
		return err
	}

	*h = hand
	return nil
}

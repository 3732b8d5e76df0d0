package deck

import (
	"errors"

	"cardbot-server/internal/rng"
)

// ErrDeckExhausted is an error when Draw() is attempted and every card has been dealt
var ErrDeckExhausted = errors.New("no cards left in the deck")

// Deck deals random cards without replacement. A card dealt (or marked used)
// since the last Reset is never dealt again, so every card outstanding on the
// table is distinct.
type Deck struct {
	cards []Card
	used  map[Card]bool
	gen   rng.Generator
}

// New returns a full 52-card deck. Pass nil to draw randomness from
// crypto/rand; tests inject a seeded generator for reproducible deals.
func New(gen rng.Generator) *Deck {
	if gen == nil {
		gen = rng.Crypto{}
	}

	return &Deck{
		cards: buildDeck(),
		used:  make(map[Card]bool),
		gen:   gen,
	}
}

func buildDeck() []Card {
	cards := make([]Card, 0, 52)
	for _, suit := range []Suit{Clubs, Diamonds, Hearts, Spades} {
		for rank := MinRank; rank <= MaxRank; rank++ {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Reset returns every dealt card to the deck
func (d *Deck) Reset() {
	d.used = make(map[Card]bool)
}

// Draw deals one card at random from the undealt remainder.
// If every card has been dealt, an ErrDeckExhausted is returned.
func (d *Deck) Draw() (Card, error) {
	available := make([]Card, 0, len(d.cards)-len(d.used))
	for _, card := range d.cards {
		if !d.used[card] {
			available = append(available, card)
		}
	}

	if len(available) == 0 {
		return Card{}, ErrDeckExhausted
	}

	card := available[d.gen.Intn(len(available))]
	d.used[card] = true

	return card, nil
}

// DrawHand deals five distinct cards into a complete hand
func (d *Deck) DrawHand() (Hand, error) {
	cards := make([]Card, HandSize)
	for i := range cards {
		card, err := d.Draw()
		if err != nil {
			return Hand{}, err
		}

		cards[i] = card
	}

	return NewHand(cards)
}

// MarkUsed removes a specific card from the undealt remainder, e.g. when a
// discarded card lands in the trash
func (d *Deck) MarkUsed(card Card) {
	d.used[card] = true
}

// Remaining returns the number of undealt cards
func (d *Deck) Remaining() int {
	return len(d.cards) - len(d.used)
}

// Available returns true if the card has not been dealt since the last Reset
func (d *Deck) Available(card Card) bool {
	return !d.used[card]
}

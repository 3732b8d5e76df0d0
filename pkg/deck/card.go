package deck

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidCard is an error when a card has a rank or suit outside the deck
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Diamonds Suit = "diamonds"
	Spades   Suit = "spades"
)

// Card is an individual playing card. Cards are immutable values; two cards
// are equal iff rank and suit match, so == works on them.
type Card struct {
	Rank int  `json:"rank"`
	Suit Suit `json:"suit"`
}

// face cards
const (
	Jack    = 11
	Queen   = 12
	King    = 13
	Ace     = 14
	HighAce = Ace
	LowAce  = 1
)

// rank bounds
const (
	MinRank = 2
	MaxRank = Ace
)

func (c Card) String() string {
	var rank string
	switch c.Rank {
	case Jack:
		rank = "J"
	case Queen:
		rank = "Q"
	case King:
		rank = "K"
	case Ace:
		rank = "A"
	default:
		rank = strconv.Itoa(c.Rank)
	}

	var suit string
	switch c.Suit {
	case Clubs:
		suit = "♣"
	case Diamonds:
		suit = "♢"
	case Hearts:
		suit = "♡"
	case Spades:
		suit = "♠"
	default:
		panic("unknown suit")
	}

	return fmt.Sprintf("%s%s", rank, suit)
}

// Validate returns an error unless the rank is in [2,14] and the suit is one
// of the four suits
func (c Card) Validate() error {
	if c.Rank < MinRank || c.Rank > MaxRank {
		return fmt.Errorf("%w: rank %d out of range", ErrInvalidCard, c.Rank)
	}

	switch c.Suit {
	case Hearts, Clubs, Diamonds, Spades:
		return nil
	}

	return fmt.Errorf("%w: unknown suit %q", ErrInvalidCard, string(c.Suit))
}

// AceLowRank return the rank where Ace is considered low instead of high
func (c Card) AceLowRank() int {
	if c.Rank == Ace {
		return LowAce
	}

	return c.Rank
}

var cardRx = regexp.MustCompile(`(?i)^([2-9]|1[0-4])([cdhs])\z`)

// ParseCard returns a Card from a compact string.
// The string must be in the format of <rank><suit> where rank >= 2 and <= 14 and suit in [cdhs]
func ParseCard(s string) (Card, error) {
	match := cardRx.FindStringSubmatch(s)
	if match == nil {
		return Card{}, fmt.Errorf("%w: could not parse %q", ErrInvalidCard, s)
	}

	rank, err := strconv.Atoi(match[1])
	if err != nil {
		return Card{}, fmt.Errorf("%w: could not parse %q", ErrInvalidCard, s)
	}

	var suit Suit
	switch strings.ToLower(match[2]) {
	case "c":
		suit = Clubs
	case "d":
		suit = Diamonds
	case "h":
		suit = Hearts
	case "s":
		suit = Spades
	default:
		// should never be hit due to the regexp
		panic("unknown suit")
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// CardFromString returns a Card from the string, panicking if it cannot be
// parsed. Intended for tests and fixtures.
func CardFromString(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err.Error())
	}

	return card
}

// CardsFromString will returns a slice of cards
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = CardFromString(card)
	}

	return cards
}

// CardToString converts a card (Ace of Clubs) to a string (14c)
func CardToString(card Card) string {
	var suit string
	switch card.Suit {
	case Clubs:
		suit = "c"
	case Hearts:
		suit = "h"
	case Diamonds:
		suit = "d"
	case Spades:
		suit = "s"
	}

	return fmt.Sprintf("%d%s", card.Rank, suit)
}

// CardsToString will convert a slice of cards to a string in the format of 2c,3h,4s,...
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = CardToString(card)
	}

	return strings.Join(c, ",")
}

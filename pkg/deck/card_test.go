package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCard_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("A♡", Card{Rank: Ace, Suit: Hearts}.String())
	a.Equal("K♠", Card{Rank: King, Suit: Spades}.String())
	a.Equal("Q♢", Card{Rank: Queen, Suit: Diamonds}.String())
	a.Equal("J♣", Card{Rank: Jack, Suit: Clubs}.String())
	a.Equal("10♡", Card{Rank: 10, Suit: Hearts}.String())
	a.Equal("2♣", Card{Rank: 2, Suit: Clubs}.String())

	a.PanicsWithValue("unknown suit", func() {
		_ = Card{Rank: 2, Suit: "wands"}.String()
	})
}

func TestCard_Validate(t *testing.T) {
	a := assert.New(t)
	a.NoError(Card{Rank: 2, Suit: Clubs}.Validate())
	a.NoError(Card{Rank: Ace, Suit: Hearts}.Validate())

	err := Card{Rank: 1, Suit: Clubs}.Validate()
	a.ErrorIs(err, ErrInvalidCard)

	err = Card{Rank: 15, Suit: Clubs}.Validate()
	a.ErrorIs(err, ErrInvalidCard)

	err = Card{Rank: 7, Suit: "wands"}.Validate()
	a.ErrorIs(err, ErrInvalidCard)
}

func TestCard_AceLowRank(t *testing.T) {
	assert.Equal(t, 1, Card{Rank: Ace, Suit: Clubs}.AceLowRank())
	assert.Equal(t, King, Card{Rank: King, Suit: Clubs}.AceLowRank())
	assert.Equal(t, 2, Card{Rank: 2, Suit: Clubs}.AceLowRank())
}

func TestParseCard(t *testing.T) {
	a := assert.New(t)

	card, err := ParseCard("14s")
	a.NoError(err)
	a.Equal(Card{Rank: Ace, Suit: Spades}, card)

	card, err = ParseCard("2c")
	a.NoError(err)
	a.Equal(Card{Rank: 2, Suit: Clubs}, card)

	card, err = ParseCard("10H")
	a.NoError(err)
	a.Equal(Card{Rank: 10, Suit: Hearts}, card)

	for _, bad := range []string{"", "1c", "15c", "0h", "5x", "cards", "5cc", "c5"} {
		_, err = ParseCard(bad)
		a.ErrorIs(err, ErrInvalidCard, "expected %q to fail", bad)
	}
}

func TestCardFromString(t *testing.T) {
	assert.Equal(t, Card{Rank: Queen, Suit: Diamonds}, CardFromString("12d"))
	assert.Panics(t, func() {
		CardFromString("not-a-card")
	})
}

func TestCardsFromString(t *testing.T) {
	a := assert.New(t)
	a.Equal([]Card{}, CardsFromString(""))

	cards := CardsFromString("2c,3d,14h")
	a.Equal([]Card{
		{Rank: 2, Suit: Clubs},
		{Rank: 3, Suit: Diamonds},
		{Rank: Ace, Suit: Hearts},
	}, cards)
}

func TestCardToString(t *testing.T) {
	a := assert.New(t)
	a.Equal("14h", CardToString(Card{Rank: Ace, Suit: Hearts}))
	a.Equal("2s", CardToString(Card{Rank: 2, Suit: Spades}))
	a.Equal("10c", CardToString(Card{Rank: 10, Suit: Clubs}))
	a.Equal("11d", CardToString(Card{Rank: Jack, Suit: Diamonds}))
}

func TestCardsToString(t *testing.T) {
	cards := CardsFromString("2c,13h,10s")
	assert.Equal(t, "2c,13h,10s", CardsToString(cards))
}

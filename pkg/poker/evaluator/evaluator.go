package evaluator

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"cardbot-server/pkg/deck"
)

// ErrIncompleteHand is returned when evaluation is attempted on a hand
// with one or more empty slots
var ErrIncompleteHand = errors.New("hand has one or more empty slots")

// ErrDuplicateCard is returned when the same card appears twice in a hand
var ErrDuplicateCard = errors.New("hand contains a duplicate card")

// Evaluation is the result of classifying a complete five-card hand.
// It reports the hand category, the slot positions that form it, and a
// numeric strength for comparing two hands.
type Evaluation struct {
	cards    []deck.Card // slot order
	ranks    []int       // descending
	flush    []int       // descending ranks when all five suits match
	straight int         // high rank of a run, five for the wheel
	quads    int
	trips    int
	pairs    []int // descending, at most two

	hand     Hand
	keepers  []int
	strength int
}

// Evaluate classifies a complete five-card hand
func Evaluate(h deck.Hand) (*Evaluation, error) {
	if !h.Complete() {
		return nil, ErrIncompleteHand
	}

	cards := h.Cards()
	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if err := card.Validate(); err != nil {
			return nil, err
		}

		if seen[card] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCard, card)
		}
		seen[card] = true
	}

	e := &Evaluation{cards: cards}
	e.analyze()
	e.calculateHand()
	e.calculateKeepers()

	return e, nil
}

// analyze computes the rank groups, flush, and straight for the hand.
// This must be called once before calculateHand()
func (e *Evaluation) analyze() {
	rankCount := make(map[int]int)
	suitCount := make(map[deck.Suit]int)
	for _, card := range e.cards {
		rankCount[card.Rank]++
		suitCount[card.Suit]++
	}

	e.ranks = make([]int, 0, len(e.cards))
	for _, card := range e.cards {
		e.ranks = append(e.ranks, card.Rank)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(e.ranks)))

	for rank, n := range rankCount {
		switch n {
		case 4:
			e.quads = rank
		case 3:
			e.trips = rank
		case 2:
			e.pairs = append(e.pairs, rank)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(e.pairs)))

	e.straight = straightHigh(rankCount)

	if len(suitCount) == 1 {
		e.flush = e.ranks
	}
}

// straightHigh returns the high rank of a five-card run, or zero. The
// wheel plays the ace low and reports five as its high card.
func straightHigh(rankCount map[int]int) int {
	if len(rankCount) != deck.HandSize {
		return 0
	}

	lo, hi := deck.MaxRank, deck.MinRank
	for rank := range rankCount {
		if rank < lo {
			lo = rank
		}
		if rank > hi {
			hi = rank
		}
	}

	if hi-lo == deck.HandSize-1 {
		return hi
	}

	if rankCount[deck.Ace] > 0 && rankCount[2] > 0 && rankCount[3] > 0 && rankCount[4] > 0 && rankCount[5] > 0 {
		return 5
	}

	return 0
}

// calculateHand will determine the best hand
// This must be called after analyze() has been called
func (e *Evaluation) calculateHand() {
	if e.GetRoyalFlush() {
		e.hand = RoyalFlush
	} else if _, ok := e.GetStraightFlush(); ok {
		e.hand = StraightFlush
	} else if _, ok := e.GetFourOfAKind(); ok {
		e.hand = FourOfAKind
	} else if _, ok := e.GetFullHouse(); ok {
		e.hand = FullHouse
	} else if _, ok := e.GetFlush(); ok {
		e.hand = Flush
	} else if _, ok := e.GetStraight(); ok {
		e.hand = Straight
	} else if _, ok := e.GetThreeOfAKind(); ok {
		e.hand = ThreeOfAKind
	} else if _, ok := e.GetTwoPair(); ok {
		e.hand = TwoPair
	} else if _, ok := e.GetPair(); ok {
		e.hand = OnePair
	} else {
		e.hand = HighCard
	}
}

// calculateKeepers records the slot positions that form the category.
// Made hands from the straight and flush family keep every slot
func (e *Evaluation) calculateKeepers() {
	switch e.hand {
	case RoyalFlush, StraightFlush, FullHouse, Flush, Straight:
		e.keepers = e.slotsWithRank(e.ranks...)
	case FourOfAKind:
		e.keepers = e.slotsWithRank(e.quads)
	case ThreeOfAKind:
		e.keepers = e.slotsWithRank(e.trips)
	case TwoPair:
		e.keepers = e.slotsWithRank(e.pairs[0], e.pairs[1])
	case OnePair:
		e.keepers = e.slotsWithRank(e.pairs[0])
	case HighCard:
		e.keepers = []int{e.highSlot()}
	}
}

// slotsWithRank returns the ascending slot positions holding any of the
// given ranks
func (e *Evaluation) slotsWithRank(ranks ...int) []int {
	match := make(map[int]bool, len(ranks))
	for _, rank := range ranks {
		match[rank] = true
	}

	slots := make([]int, 0, len(e.cards))
	for i, card := range e.cards {
		if match[card.Rank] {
			slots = append(slots, i+1)
		}
	}

	return slots
}

// highSlot returns the slot holding the highest rank, preferring the
// lowest slot on equal ranks
func (e *Evaluation) highSlot() int {
	slot := 1
	for i, card := range e.cards {
		if card.Rank > e.cards[slot-1].Rank {
			slot = i + 1
		}
	}

	return slot
}

// Hand returns the classified hand category
func (e *Evaluation) Hand() Hand {
	return e.hand
}

// Keepers returns the ascending slot positions that form the category
func (e *Evaluation) Keepers() []int {
	return e.keepers
}

// GetRoyalFlush will return true if there's a royal flush
func (e *Evaluation) GetRoyalFlush() bool {
	return e.flush != nil && e.straight == deck.HighAce
}

// GetStraightFlush will return the best straight flush, if possible
func (e *Evaluation) GetStraightFlush() (int, bool) {
	if e.flush != nil && e.straight > 0 {
		return e.straight, true
	}

	return 0, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (e *Evaluation) GetFourOfAKind() (int, bool) {
	if e.quads > 0 {
		return e.quads, true
	}

	return 0, false
}

// GetFullHouse will return the best full house, if possible
func (e *Evaluation) GetFullHouse() ([]int, bool) {
	if e.trips > 0 && len(e.pairs) > 0 {
		return []int{e.trips, e.pairs[0]}, true
	}

	return nil, false
}

// GetFlush will return the best possible flush, if possible
func (e *Evaluation) GetFlush() ([]int, bool) {
	if e.flush != nil {
		return e.flush, true
	}

	return nil, false
}

// GetStraight will return the best straight, if possible
func (e *Evaluation) GetStraight() (int, bool) {
	if e.straight > 0 {
		return e.straight, true
	}

	return 0, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (e *Evaluation) GetThreeOfAKind() (int, bool) {
	if e.trips > 0 {
		return e.trips, true
	}

	return 0, false
}

// GetTwoPair will return the best two pairs, if possible
func (e *Evaluation) GetTwoPair() ([]int, bool) {
	if len(e.pairs) >= 2 {
		return e.pairs[0:2], true
	}

	return nil, false
}

// GetPair will return the best pair, if possible
func (e *Evaluation) GetPair() (int, bool) {
	if len(e.pairs) > 0 {
		return e.pairs[0], true
	}

	return 0, false
}

// GetHighCard will return the ranks in descending order
func (e *Evaluation) GetHighCard() ([]int, bool) {
	return e.ranks, true
}

func calculateStrength(hand Hand, cards []int) int {
	fiveCards := make([]int, 5)
	copy(fiveCards, cards)

	strength := math.Pow(15, 5) * float64(hand)
	for i := 0; i < 5; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

// Strength returns the strength of the hand
func (e *Evaluation) Strength() int {
	if e.strength > 0 {
		return e.strength
	}

	e.strength = e.getStrength()
	return e.strength
}

func (e *Evaluation) getStrength() int {
	switch e.hand {
	case HighCard:
		hc, _ := e.GetHighCard()
		return calculateStrength(e.hand, hc)
	case OnePair:
		pair, _ := e.GetPair()
		return calculateStrength(e.hand, append([]int{pair}, e.kickers(pair)...))
	case TwoPair:
		twoPair, _ := e.GetTwoPair()
		return calculateStrength(e.hand, append([]int{twoPair[0], twoPair[1]}, e.kickers(twoPair[0], twoPair[1])...))
	case ThreeOfAKind:
		trips, _ := e.GetThreeOfAKind()
		return calculateStrength(e.hand, append([]int{trips}, e.kickers(trips)...))
	case Straight:
		s, _ := e.GetStraight()
		return calculateStrength(e.hand, []int{s})
	case Flush:
		f, _ := e.GetFlush()
		return calculateStrength(e.hand, f)
	case FullHouse:
		fh, _ := e.GetFullHouse()
		return calculateStrength(e.hand, fh)
	case FourOfAKind:
		quad, _ := e.GetFourOfAKind()
		return calculateStrength(e.hand, append([]int{quad}, e.kickers(quad)...))
	case StraightFlush:
		s, _ := e.GetStraightFlush()
		return calculateStrength(e.hand, []int{s})
	case RoyalFlush:
		return calculateStrength(e.hand, nil)
	}

	panic("unknown hand")
}

// kickers returns the descending ranks not part of the made group
func (e *Evaluation) kickers(exclude ...int) []int {
	skip := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		skip[rank] = true
	}

	out := make([]int, 0, len(e.ranks))
	for _, rank := range e.ranks {
		if !skip[rank] {
			out = append(out, rank)
		}
	}

	return out
}

// Compare orders two evaluations by strength. It returns a value less
// than zero if a loses to b, greater than zero if a beats b, and zero
// on a tie.
func Compare(a, b *Evaluation) int {
	return a.Strength() - b.Strength()
}

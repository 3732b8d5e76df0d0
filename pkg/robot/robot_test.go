package robot

import (
	"testing"

	"cardbot-server/pkg/deck"
	"cardbot-server/pkg/poker/evaluator"
	"cardbot-server/pkg/robot/action"

	"github.com/stretchr/testify/assert"
)

func TestPlan_fillEmptyHand(t *testing.T) {
	a := assert.New(t)

	var hand deck.Hand
	actions, err := Plan(hand)
	a.NoError(err)
	a.Equal([]string{
		"take deck", "place at 1",
		"take deck", "place at 2",
		"take deck", "place at 3",
		"take deck", "place at 4",
		"take deck", "place at 5",
		"default position",
	}, action.Strings(actions))
}

func TestPlan_fillPartialHand(t *testing.T) {
	a := assert.New(t)

	actions, err := Plan(deck.HandFromString("10h,,5c,,7h"))
	a.NoError(err)
	a.Equal([]string{
		"take deck", "place at 2",
		"take deck", "place at 4",
		"default position",
	}, action.Strings(actions))
}

func TestPlan_swapPairOfTens(t *testing.T) {
	a := assert.New(t)

	actions, err := Plan(deck.HandFromString("10h,10d,5c,3s,7h"))
	a.NoError(err)
	a.Len(actions, 16)
	a.Equal([]string{
		"take card 3", "drop holding", "default position", "take deck", "place at 3",
		"take card 4", "drop holding", "default position", "take deck", "place at 4",
		"take card 5", "drop holding", "default position", "take deck", "place at 5",
		"default position",
	}, action.Strings(actions))
}

func TestPlan_standPat(t *testing.T) {
	a := assert.New(t)

	standPat := []string{
		"14h,10h,13h,12h,11h", // royal flush
		"5h,6h,7h,8h,9h",      // straight flush
		"2c,3c,3d,3h,3s",      // four of a kind
		"14c,2c,14d,2d,14h",   // full house
		"2c,9c,4c,5c,13c",     // flush
		"5c,8d,6h,7s,9c",      // straight
	}

	for _, s := range standPat {
		hand := deck.HandFromString(s)

		actions, err := Plan(hand)
		a.NoError(err, s)
		a.Empty(actions, s)

		// unchanged hand, unchanged answer
		actions, err = Plan(hand)
		a.NoError(err, s)
		a.Empty(actions, s)
	}
}

func TestPlan_duplicateCard(t *testing.T) {
	a := assert.New(t)

	actions, err := Plan(deck.HandFromString("10h,10h,5c,3s,7h"))
	a.ErrorIs(err, evaluator.ErrDuplicateCard)
	a.Nil(actions)

	// an incomplete hand is filled, never evaluated
	actions, err = Plan(deck.HandFromString("10h,10h,5c,,7h"))
	a.NoError(err)
	a.Equal([]string{"take deck", "place at 4", "default position"}, action.Strings(actions))
}

func TestFillActions_completeHand(t *testing.T) {
	assert.Nil(t, FillActions(deck.HandFromString("10h,10d,5c,3s,7h")))
}

func TestSwapActions(t *testing.T) {
	a := assert.New(t)

	a.Nil(SwapActions(nil))
	a.Nil(SwapActions([]int{}))

	a.Equal([]string{
		"take card 2", "drop holding", "default position", "take deck", "place at 2",
		"default position",
	}, action.Strings(SwapActions([]int{2})))

	// slots are always processed in ascending order
	a.Equal([]string{
		"take card 1", "drop holding", "default position", "take deck", "place at 1",
		"take card 3", "drop holding", "default position", "take deck", "place at 3",
		"take card 5", "drop holding", "default position", "take deck", "place at 5",
		"default position",
	}, action.Strings(SwapActions([]int{5, 1, 3})))
}

func TestCountSwaps(t *testing.T) {
	a := assert.New(t)

	actions, err := Plan(deck.HandFromString("10h,10d,5c,3s,7h"))
	a.NoError(err)
	a.Equal(3, CountSwaps(actions))

	var hand deck.Hand
	actions, err = Plan(hand)
	a.NoError(err)
	a.Equal(0, CountSwaps(actions))
}

func TestSwapSlots(t *testing.T) {
	a := assert.New(t)

	actions, err := Plan(deck.HandFromString("10h,10d,5c,3s,7h"))
	a.NoError(err)
	a.Equal([]int{3, 4, 5}, SwapSlots(actions))

	a.Equal([]int{}, SwapSlots(nil))
	a.Equal([]int{}, SwapSlots(FillActions(deck.HandFromString("10h,,5c,,7h"))))
}

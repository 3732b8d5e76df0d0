package main

import (
	"cardbot-server/internal/rng"
	"cardbot-server/pkg/deck"
	"cardbot-server/pkg/poker/evaluator"
	"cardbot-server/pkg/poker/strategy"
	"cardbot-server/pkg/robot"
	"cardbot-server/pkg/robot/action"
	"errors"
	"flag"
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"
	"github.com/sirupsen/logrus"
)

var seed = flag.Int64("seed", 0, "deal with a fixed seed (0 draws from crypto/rand)")
var rounds = flag.Int("rounds", 3, "maximum number of swap rounds")

func main() {
	flag.Parse()

	var gen rng.Generator
	if *seed != 0 {
		gen = rng.NewSeeded(*seed)
	}

	printTitle()

	d := deck.New(gen)

	var hand deck.Hand
	fillActions, err := robot.Plan(hand)
	if err != nil {
		logrus.WithError(err).Fatal("could not plan the deal")
	}

	if err := execute(d, &hand, fillActions); err != nil {
		logrus.WithError(err).Fatal("could not execute the deal")
	}

	ev, err := evaluator.Evaluate(hand)
	if err != nil {
		logrus.WithError(err).Fatal("could not evaluate the dealt hand")
	}

	renderRound("|DEAL|", hand, ev, fillActions)

	for round := 1; round <= *rounds; round++ {
		discards := strategy.Discards(ev)
		if len(discards) == 0 {
			pterm.Info.Printfln("the robot stands pat with %s", ev.Hand())
			return
		}

		swapActions := robot.SwapActions(discards)
		if err := execute(d, &hand, swapActions); err != nil {
			logrus.WithError(err).Fatal("could not execute the swap")
		}

		next, err := evaluator.Evaluate(hand)
		if err != nil {
			logrus.WithError(err).Fatal("could not evaluate the swapped hand")
		}

		renderRound(fmt.Sprintf("|SWAP %d|", round), hand, next, swapActions)

		switch cmp := evaluator.Compare(next, ev); {
		case cmp > 0:
			pterm.Success.Printfln("round %d improved %s to %s", round, ev.Hand(), next.Hand())
		case cmp < 0:
			pterm.Info.Printfln("round %d worsened %s to %s", round, ev.Hand(), next.Hand())
		default:
			pterm.Info.Printfln("round %d kept %s", round, ev.Hand())
		}

		ev = next
	}

	pterm.Info.Printfln("out of swap rounds holding %s", ev.Hand())
}

func printTitle() {
	title, err := pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("CARD", pterm.FgLightGreen.ToStyle()),
		putils.LettersFromStringWithStyle("BOT", pterm.FgDarkGray.ToStyle()),
	).Srender()
	if err != nil {
		return
	}

	pterm.Print(title)
}

func renderRound(title string, hand deck.Hand, ev *evaluator.Evaluation, actions []action.Action) {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	handPanel := pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow(title)).WithTitleTopCenter().Sprintf(handInfo(hand))}
	evalPanel := pterm.Panel{Data: pbox.WithTitle(pterm.LightGreen("|EVALUATION|")).WithTitleTopCenter().Sprintf(evaluationInfo(ev, strategy.Draws(hand)))}
	cmdPanel := pterm.Panel{Data: pbox.WithTitle(pterm.LightCyan("|COMMANDS|")).WithTitleTopCenter().Sprintf(commandInfo(actions))}

	pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		{handPanel, evalPanel},
		{cmdPanel},
	}).Render()
}

func handInfo(hand deck.Hand) string {
	var sb strings.Builder
	for slot := 1; slot <= deck.HandSize; slot++ {
		if card, ok := hand.CardAt(slot); ok {
			sb.WriteString(pterm.Sprintfln("%d: %s", slot, card))
		} else {
			sb.WriteString(pterm.Sprintfln("%d: (empty)", slot))
		}
	}

	return sb.String()
}

func evaluationInfo(ev *evaluator.Evaluation, draws []strategy.Draw) string {
	var sb strings.Builder
	sb.WriteString(pterm.Sprintfln("%s", pterm.LightGreen(ev.Hand().String())))
	sb.WriteString(pterm.Sprintfln("keep %s", slotList(ev.Keepers())))
	for _, draw := range draws {
		sb.WriteString(pterm.Sprintfln("%s draw at %s", draw.Kind, slotList(draw.Slots)))
	}

	return sb.String()
}

func commandInfo(actions []action.Action) string {
	if len(actions) == 0 {
		return pterm.Sprintfln("stand pat")
	}

	var sb strings.Builder
	for i, act := range actions {
		sb.WriteString(pterm.Sprintfln("%2d. %s", i+1, act))
	}

	return sb.String()
}

func slotList(slots []int) string {
	if len(slots) == 0 {
		return "nothing"
	}

	parts := make([]string, len(slots))
	for i, slot := range slots {
		parts[i] = strconv.Itoa(slot)
	}

	return "slots " + strings.Join(parts, ", ")
}

// execute runs a command sequence the way the arm would, drawing
// replacement cards from the local deck
func execute(d *deck.Deck, h *deck.Hand, actions []action.Action) error {
	var holding *deck.Card

	for _, act := range actions {
		switch act.Verb {
		case action.VerbTakeCard:
			card, ok := h.CardAt(act.Slot)
			if !ok {
				return fmt.Errorf("slot %d is empty", act.Slot)
			}

			if err := h.ClearSlot(act.Slot); err != nil {
				return err
			}

			holding = &card
		case action.VerbDrop:
			holding = nil
		case action.VerbTakeDeck:
			card, err := d.Draw()
			if err != nil {
				return err
			}

			holding = &card
		case action.VerbPlace:
			if holding == nil {
				return errors.New("nothing in the gripper to place")
			}

			if err := h.SetCard(act.Slot, *holding); err != nil {
				return err
			}

			holding = nil
		case action.VerbDefault:
			// moving to the default position doesn't touch the cards
		}
	}

	return nil
}

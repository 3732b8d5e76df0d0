// Package action defines the manipulator command vocabulary. Commands
// are serialized as the literal strings the controller executes, i.e.,
// "take card 3" or "default position".
package action

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"cardbot-server/pkg/deck"
)

// Verb identifies a manipulator command family
type Verb string

// verb constants
const (
	VerbTakeCard Verb = "take card"
	VerbDefault  Verb = "default position"
	VerbDrop     Verb = "drop holding"
	VerbTakeDeck Verb = "take deck"
	VerbPlace    Verb = "place at"
)

// Action is a single manipulator command. TakeCard and PlaceAt carry
// the 1-based holder slot; the remaining verbs carry no payload.
type Action struct {
	Verb Verb
	Slot int
}

// slot-less commands
var (
	DefaultPosition = Action{Verb: VerbDefault}
	DropHolding     = Action{Verb: VerbDrop}
	TakeDeck        = Action{Verb: VerbTakeDeck}
)

// TakeCard returns the command picking up the card at the given slot
func TakeCard(slot int) Action {
	return Action{Verb: VerbTakeCard, Slot: slot}
}

// PlaceAt returns the command placing the held card at the given slot
func PlaceAt(slot int) Action {
	return Action{Verb: VerbPlace, Slot: slot}
}

// FromString returns the action for a command string. Parsing is
// case-insensitive and slot-bearing commands must name a holder slot.
func FromString(s string) (Action, error) {
	cmd := strings.ToLower(strings.TrimSpace(s))

	switch cmd {
	case string(VerbDefault):
		return DefaultPosition, nil
	case string(VerbDrop):
		return DropHolding, nil
	case string(VerbTakeDeck):
		return TakeDeck, nil
	}

	for _, verb := range []Verb{VerbTakeCard, VerbPlace} {
		prefix := string(verb) + " "
		if !strings.HasPrefix(cmd, prefix) {
			continue
		}

		slot, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(cmd, prefix)))
		if err != nil {
			break
		}

		a := Action{Verb: verb, Slot: slot}
		if !a.IsValid() {
			break
		}

		return a, nil
	}

	return Action{}, fmt.Errorf("unknown action for identifier: %s", s)
}

func (a Action) String() string {
	switch a.Verb {
	case VerbTakeCard, VerbPlace:
		return fmt.Sprintf("%s %d", a.Verb, a.Slot)
	case VerbDefault, VerbDrop, VerbTakeDeck:
		return string(a.Verb)
	}

	panic("unknown action")
}

// IsValid returns true if the action is a complete, known command
func (a Action) IsValid() bool {
	switch a.Verb {
	case VerbTakeCard, VerbPlace:
		return a.Slot >= 1 && a.Slot <= deck.HandSize
	case VerbDefault, VerbDrop, VerbTakeDeck:
		return a.Slot == 0
	}

	return false
}

// MarshalJSON encodes the action as its command string
func (a Action) MarshalJSON() ([]byte, error) {
	if !a.IsValid() {
		return nil, fmt.Errorf("invalid action: %q %d", a.Verb, a.Slot)
	}

	return json.Marshal(a.String())
}

// Strings renders a command sequence for the controller
func Strings(actions []Action) []string {
	out := make([]string, len(actions))
	for i, a := range actions {
		out[i] = a.String()
	}

	return out
}

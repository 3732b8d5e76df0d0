package mux

import (
	"cardbot-server/pkg/deck"
	"cardbot-server/pkg/history"
	"cardbot-server/pkg/poker/evaluator"
	"cardbot-server/pkg/poker/strategy"
	"cardbot-server/pkg/robot"
	"cardbot-server/pkg/robot/action"
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// plan modes
const (
	ModeFill     = "fill"
	ModeSwap     = "swap"
	ModeStandPat = "stand_pat"
)

const recordTimeout = time.Second * 5

type planPayload struct {
	Hand *deck.Hand `json:"hand"`
}

type planResponse struct {
	Mode     string          `json:"mode"`
	Actions  []string        `json:"actions"`
	Hand     []string        `json:"hand"`
	HandName string          `json:"handName,omitempty"`
	Keepers  []int           `json:"keepers,omitempty"`
	Discards []int           `json:"discards,omitempty"`
	Draws    []strategy.Draw `json:"draws,omitempty"`
}

func (m *Mux) postPlan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pp planPayload
		if !decodeRequest(w, r, &pp) {
			return
		}

		if pp.Hand == nil {
			writeJSONError(w, http.StatusBadRequest, errors.New("missing hand"))
			return
		}

		resp, err := buildPlan(*pp.Hand)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		controller, _ := r.Context().Value(ctxControllerKey).(string)
		recordRound(controller, resp)

		writeJSON(w, http.StatusOK, resp)
	}
}

// buildPlan compiles the command sequence for an observed hand, along
// with everything the controller may want to know about the decision.
// The returned error is safe to surface in a 400 response.
func buildPlan(h deck.Hand) (*planResponse, error) {
	resp := &planResponse{
		Hand: h.Strings(),
	}

	if !h.Complete() {
		resp.Mode = ModeFill
		resp.Actions = action.Strings(robot.FillActions(h))
		return resp, nil
	}

	ev, err := evaluator.Evaluate(h)
	if err != nil {
		return nil, err
	}

	resp.HandName = ev.Hand().String()
	resp.Keepers = ev.Keepers()
	resp.Draws = strategy.Draws(h)

	discards := strategy.Discards(ev)
	if len(discards) == 0 {
		resp.Mode = ModeStandPat
		resp.Actions = []string{}
		return resp, nil
	}

	resp.Mode = ModeSwap
	resp.Discards = discards
	resp.Actions = action.Strings(robot.SwapActions(discards))
	return resp, nil
}

// recordRound persists the plan without blocking the response. The
// history is advisory, so failures are logged and swallowed.
func recordRound(controller string, plan *planResponse) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logrus.WithField("recover", r).Error("could not record round")
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		hand := strings.Join(plan.Hand, ",")
		if _, err := history.Create(ctx, controller, hand, plan.Mode, plan.HandName, plan.Discards, len(plan.Actions)); err != nil {
			logrus.WithError(err).Error("could not record round")
		}
	}()
}

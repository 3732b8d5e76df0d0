package mux

import (
	"cardbot-server/pkg/poker/strategy"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostPlan_unauthorized(t *testing.T) {
	setupAuth()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	var errObj errorResponse
	assertPost(t, ts, "/plan", planPayload{}, &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)
}

func TestPostPlan_fill(t *testing.T) {
	setupAuth()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var resp planResponse
	payload := map[string]interface{}{"hand": []string{"10h", "", "5c", "", "7h"}}
	assertPost(t, ts, "/plan", payload, &resp, 200, controllerToken())

	a.Equal(ModeFill, resp.Mode)
	a.Equal([]string{"10h", "", "5c", "", "7h"}, resp.Hand)
	a.Equal([]string{
		"take deck",
		"place at 2",
		"take deck",
		"place at 4",
		"default position",
	}, resp.Actions)
	a.Empty(resp.HandName)
	a.Nil(resp.Keepers)
	a.Nil(resp.Discards)
	a.Nil(resp.Draws)
}

func TestPostPlan_swap(t *testing.T) {
	setupAuth()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var resp planResponse
	payload := map[string]interface{}{"hand": []string{"10h", "10d", "5c", "3s", "7h"}}
	assertPost(t, ts, "/plan", payload, &resp, 200, controllerToken())

	a.Equal(ModeSwap, resp.Mode)
	a.Equal("Pair", resp.HandName)
	a.Equal([]int{1, 2}, resp.Keepers)
	a.Equal([]int{3, 4, 5}, resp.Discards)
	a.Equal([]string{
		"take card 3",
		"drop holding",
		"default position",
		"take deck",
		"place at 3",
		"take card 4",
		"drop holding",
		"default position",
		"take deck",
		"place at 4",
		"take card 5",
		"drop holding",
		"default position",
		"take deck",
		"place at 5",
		"default position",
	}, resp.Actions)
}

func TestPostPlan_standPat(t *testing.T) {
	setupAuth()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var resp planResponse
	payload := map[string]interface{}{"hand": []string{"14h", "10h", "8h", "5h", "3h"}}
	assertPost(t, ts, "/plan", payload, &resp, 200, controllerToken())

	a.Equal(ModeStandPat, resp.Mode)
	a.Equal("Flush", resp.HandName)
	a.Equal([]int{1, 2, 3, 4, 5}, resp.Keepers)
	a.Equal([]string{}, resp.Actions)
	a.Nil(resp.Discards)
	a.Nil(resp.Draws)
}

func TestPostPlan_draws(t *testing.T) {
	setupAuth()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var resp planResponse
	payload := map[string]interface{}{"hand": []string{"5h", "6h", "7h", "8h", "13c"}}
	assertPost(t, ts, "/plan", payload, &resp, 200, controllerToken())

	// the policy table wins, the draws are advisory only
	a.Equal(ModeSwap, resp.Mode)
	a.Equal("High card", resp.HandName)
	a.Equal([]int{5}, resp.Keepers)
	a.Equal([]int{1, 2, 3, 4}, resp.Discards)
	a.Len(resp.Actions, 21)

	if a.Len(resp.Draws, 2) {
		a.Equal(strategy.FourFlush, resp.Draws[0].Kind)
		a.Equal([]int{1, 2, 3, 4}, resp.Draws[0].Slots)
		a.Equal(strategy.StraightDraw, resp.Draws[1].Kind)
		a.Equal([]int{1, 2, 3, 4}, resp.Draws[1].Slots)
	}
}

func TestPostPlan_badRequest(t *testing.T) {
	setupAuth()
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)
	token := controllerToken()

	var errObj errorResponse
	assertPost(t, ts, "/plan", map[string]interface{}{}, &errObj, 400, token)
	a.Equal("missing hand", errObj.Message)

	assertPost(t, ts, "/plan", map[string]interface{}{"hand": []string{"10h", "5c"}}, &errObj, 400, token)
	a.Equal("a hand must have exactly five slots: got 2", errObj.Message)

	assertPost(t, ts, "/plan", map[string]interface{}{"hand": []string{"xx", "", "5c", "", "7h"}}, &errObj, 400, token)
	a.Equal(`invalid card: could not parse "xx"`, errObj.Message)

	assertPost(t, ts, "/plan", map[string]interface{}{"hand": []string{"10h", "10h", "5c", "3s", "7h"}}, &errObj, 400, token)
	a.Equal("hand contains a duplicate card: 10♡", errObj.Message)
}

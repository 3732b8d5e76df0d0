package mux

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_authRouter(t *testing.T) {
	setupAuth()
	m := NewMux("")

	m.authRouter.Path("/test").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, 200, "OK")
	})

	ts := httptest.NewServer(m)
	defer ts.Close()

	var errObj errorResponse
	assertGet(t, ts, "/test", &errObj, 401)
	assert.Equal(t, "Unauthorized", errObj.Message)

	assertGet(t, ts, "/test", &errObj, 401, "not-a-jwt")

	token := controllerToken()

	// test using auth header
	var str string
	resp := assertGetWithResp(t, ts, "/test", &str, 200, token)
	assert.Equal(t, "OK", str)
	assert.Equal(t, "controller", resp.Header.Get("Cardbot-Controller"))
	_ = resp.Body.Close()

	// test using query parameter
	resp = assertGetWithResp(t, ts, "/test?access_token="+url.QueryEscape(token), &str, 200)
	assert.Equal(t, "OK", str)
	assert.Equal(t, "controller", resp.Header.Get("Cardbot-Controller"))
	_ = resp.Body.Close()
}

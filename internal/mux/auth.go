package mux

import (
	"cardbot-server/internal/config"
	"cardbot-server/internal/jwt"
	"errors"
	"net/http"

	"github.com/synacor/argon2id"
)

// errInvalidControllerKey deliberately does not say which part was wrong
var errInvalidControllerKey = errors.New("invalid controller name and/or key")

type authPayload struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type postAuthResponse struct {
	JWT        string `json:"jwt"`
	Controller string `json:"controller"`
}

func (m *Mux) postAuth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var ap authPayload
		if !decodeRequest(w, r, &ap) {
			return
		}

		controller := config.Instance().Controller
		if controller.KeyHash == "" {
			writeJSONError(w, http.StatusInternalServerError, errors.New("controller key hash is not configured"))
			return
		}

		if ap.Name != "" && ap.Name != controller.Name {
			// prevent timing attacks
			_ = argon2id.Compare("", "")
			writeJSONError(w, http.StatusUnauthorized, errInvalidControllerKey)
			return
		}

		if err := argon2id.Compare(controller.KeyHash, ap.Key); err != nil {
			writeJSONError(w, http.StatusUnauthorized, errInvalidControllerKey)
			return
		}

		signedToken, err := jwt.Sign(controller.Name)
		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, postAuthResponse{
			JWT:        signedToken,
			Controller: controller.Name,
		})
	}
}

package mux

import (
	"cardbot-server/pkg/history"
	"net/http"

	gmux "github.com/gorilla/mux"
)

func (m *Mux) getRounds() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start, rows, err := parsePaginationOptions(r)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		var records []*history.Record
		if controller := r.FormValue("controller"); controller != "" {
			records, err = history.GetByController(r.Context(), controller, start, rows)
		} else {
			records, err = history.Get(r.Context(), start, rows)
		}

		if err != nil {
			writeJSONError(w, http.StatusInternalServerError, err)
			return
		}

		writeJSON(w, http.StatusOK, records)
	}
}

func (m *Mux) getRoundUUID() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := history.GetByUUID(r.Context(), gmux.Vars(r)["uuid"])
		if err != nil {
			writeMaybeNotFoundError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, record)
	}
}

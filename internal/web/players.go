package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"roster/internal/back"

	"github.com/go-chi/chi"
)

// maxBodySize caps the size of a player payload.
const maxBodySize = 1 << 16

func (s *Server) getPlayers(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		s.error(w, r, observe("list", err))
		return
	}

	players, err := s.back.ListPlayers(r.Context(), c)
	if err := observe("list", err); err != nil {
		s.error(w, r, err)
		return
	}

	s.response(w, http.StatusOK, players)
}

func (s *Server) countPlayers(w http.ResponseWriter, r *http.Request) {
	c, err := parseCriteria(r.URL.Query())
	if err != nil {
		s.error(w, r, observe("count", err))
		return
	}

	count, err := s.back.CountPlayers(r.Context(), c)
	if err := observe("count", err); err != nil {
		s.error(w, r, err)
		return
	}

	s.response(w, http.StatusOK, count)
}

func (s *Server) getPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := func() (back.Player, error) {
		id, err := back.ParsePlayerID(chi.URLParam(r, "id"))
		if err != nil {
			return back.Player{}, err
		}

		return s.back.GetPlayer(r.Context(), id)
	}()
	if err := observe("get", err); err != nil {
		s.error(w, r, err)
		return
	}

	s.response(w, http.StatusOK, player)
}

func (s *Server) createPlayer(w http.ResponseWriter, r *http.Request) {
	player, err := func() (back.Player, error) {
		fields, err := decodeFields(w, r)
		if err != nil {
			return back.Player{}, err
		}

		return s.back.CreatePlayer(r.Context(), fields)
	}()
	if err := observe("create", err); err != nil {
		s.error(w, r, err)
		return
	}

	s.response(w, http.StatusOK, player)
}

func (s *Server) updatePlayer(w http.ResponseWriter, r *http.Request) {
	player, err := func() (back.Player, error) {
		id, err := back.ParsePlayerID(chi.URLParam(r, "id"))
		if err != nil {
			return back.Player{}, err
		}

		fields, err := decodeFields(w, r)
		if err != nil {
			return back.Player{}, err
		}

		return s.back.UpdatePlayer(r.Context(), id, fields)
	}()
	if err := observe("update", err); err != nil {
		s.error(w, r, err)
		return
	}

	s.response(w, http.StatusOK, player)
}

func (s *Server) deletePlayer(w http.ResponseWriter, r *http.Request) {
	err := func() error {
		id, err := back.ParsePlayerID(chi.URLParam(r, "id"))
		if err != nil {
			return err
		}

		found, err := s.back.DeletePlayer(r.Context(), id)
		if err != nil {
			return err
		}
		if !found {
			return back.ErrNotFound
		}

		return nil
	}()
	if err := observe("delete", err); err != nil {
		s.error(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func decodeFields(w http.ResponseWriter, r *http.Request) (back.PlayerFields, error) {
	var fields back.PlayerFields

	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err := dec.Decode(&fields); err != nil {
		return back.PlayerFields{}, fmt.Errorf("%w: invalid player payload: %s", back.ErrBadRequest, err)
	}

	return fields, nil
}

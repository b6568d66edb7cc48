// internal/httpserver/routes_daily.go
//
// Daily root word.
//   - GET /daily → today's date key and root word.
//
// Daily games are started with POST /game/new {"mode":"daily"}; every player
// gets the same root word for a UTC day (HMAC of date + salt).

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

// dailyRes is returned by GET /daily.
type dailyRes struct {
	Date string `json:"date"`
	Root string `json:"root"`
}

// mountDaily registers the /daily route when a daily picker is configured.
func (s *Server) mountDaily(r chi.Router) {
	if s.daily == nil {
		return
	}
	r.Get("/daily", s.handleDaily)
}

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	date, root, err := s.daily.Today(s.engine.Roots())
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("daily root")
		writeError(w, http.StatusInternalServerError, "no_root")
		return
	}
	_ = json.NewEncoder(w).Encode(dailyRes{Date: date, Root: root})
}

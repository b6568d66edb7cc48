// internal/httpserver/server.go
//
// HTTP server wiring for the word scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, GET /game, POST /game/submit, POST /game/reset.
//   - Daily root word: GET /daily.
//
// Notes:
//   - Each client plays one session, identified by a signed session token sent
//     as a Bearer header or the session cookie.
//   - CORS is origin‑aware and credentials‑enabled (so cookies work).
//   - Mutating handlers run one at a time; a session is loaded, changed by the
//     engine and saved back without interleaving.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordscramble/internal/daily"
	"github.com/robalobadob/wordscramble/internal/game"
	"github.com/robalobadob/wordscramble/internal/store"
	"github.com/robalobadob/wordscramble/internal/words"
)

// Options carries the server's collaborators.
type Options struct {
	Engine        *game.Engine
	Store         store.Store
	Lists         *words.Lists
	Daily         *daily.Picker
	SessionSecret string
	SessionTTL    time.Duration
	ClientOrigin  string
}

// Server bundles router, engine, and session store.
type Server struct {
	r      *chi.Mux
	engine *game.Engine
	store  store.Store
	lists  *words.Lists
	daily  *daily.Picker
	tokens *tokenIssuer
	origin string

	mu sync.Mutex // serializes load-mutate-save of sessions
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) (*Server, error) {
	tokens, err := newTokenIssuer(opts.SessionSecret, opts.SessionTTL)
	if err != nil {
		return nil, err
	}
	origin := opts.ClientOrigin
	if origin == "" {
		origin = "http://localhost:5173"
	}
	s := &Server{
		r:      chi.NewRouter(),
		engine: opts.Engine,
		store:  opts.Store,
		lists:  opts.Lists,
		daily:  opts.Daily,
		tokens: tokens,
		origin: origin,
	}

	s.engine.Observe(func(snap game.Snapshot) {
		log.Debug().Str("session", snap.ID).Str("root", snap.Root).
			Int("words", len(snap.Words)).Int("score", snap.Score).Msg("session updated")
	})

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(hlog.NewHandler(log.Logger))     // request-scoped logger
	s.r.Use(hlog.AccessHandler(accessLog))   // one line per request
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(s.cors)                          // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"wordscramble-go","endpoints":["/health","POST /game/new","GET /game","POST /game/submit","POST /game/reset","GET /daily"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		roots, dict := s.lists.Stats()
		_ = json.NewEncoder(w).Encode(map[string]int{"roots": roots, "dictionary": dict})
	})

	// --- game ---
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Group(func(r chi.Router) {
		r.Use(s.withSession)
		r.Get("/game", s.handleState)
		r.Post("/game/submit", s.handleSubmit)
		r.Post("/game/reset", s.handleReset)
	})

	// --- daily ---
	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s, nil
}

// Start begins serving HTTP on addr until ctx is cancelled.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.r, ReadHeaderTimeout: 5 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.origin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func accessLog(r *http.Request, status, size int, d time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("request_id", chimw.GetReqID(r.Context())).
		Int("status", status).
		Int("size", size).
		Dur("duration", d).
		Msg("request")
}

// ctxSessionKey is the context key type for the loaded session.
type ctxSessionKey struct{}

// withSession verifies the session token and loads the session into the
// request context.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tok := bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "no_session")
			return
		}
		gid, err := s.tokens.Parse(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxSessionKey{}, gid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// loadSession fetches the session named by the request's token.
func (s *Server) loadSession(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	gid, _ := r.Context().Value(ctxSessionKey{}).(string)
	g, err := s.store.Get(r.Context(), gid)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "session_not_found")
		return nil, false
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("session", gid).Msg("load session")
		writeError(w, http.StatusInternalServerError, "load_failed")
		return nil, false
	}
	return g, true
}

// ------------------------------ GAME ---------------------------------------

// newGameReq/Res payloads for POST /game/new.
type newGameReq struct {
	Mode game.Mode `json:"mode"` // "random" (default) | "daily"
	Root string    `json:"root"` // optional fixed root word (testing)
}
type newGameRes struct {
	Token string        `json:"token"`
	State game.Snapshot `json:"state"`
}

// handleNewGame starts a session, stores it, and hands the client its token.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// An empty body starts a random game.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var (
		g   *game.Session
		err error
	)
	if req.Root != "" {
		root := game.Normalize(req.Root)
		if root == "" || !slices.Contains(s.engine.Roots(), root) {
			writeError(w, http.StatusBadRequest, "unknown_root")
			return
		}
		g = s.engine.NewGameWithRoot(root)
	} else {
		g, err = s.engine.NewGame(req.Mode)
	}
	if errors.Is(err, game.ErrUnknownMode) {
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("new game")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}

	if err := s.store.Save(r.Context(), g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("save session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	tok, exp, err := s.tokens.Issue(g.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	s.setSessionCookie(w, tok, exp)
	hlog.FromRequest(r).Info().Str("session", g.ID).Str("mode", string(g.Mode)).Msg("game started")
	_ = json.NewEncoder(w).Encode(newGameRes{Token: tok, State: g.Snapshot()})
}

// handleState returns the current session view.
func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot())
}

// submitReq/Res payloads for POST /game/submit.
type submitReq struct {
	Word string `json:"word"`
}
type submitRes struct {
	game.Result
	State game.Snapshot `json:"state"`
}

// handleSubmit runs one word through the engine and persists the outcome.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	res := s.engine.Submit(g, req.Word)
	if res.Outcome != game.OutcomeIgnored {
		if err := s.store.Save(r.Context(), g); err != nil {
			hlog.FromRequest(r).Error().Err(err).Str("session", g.ID).Msg("save session")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}
	}
	hlog.FromRequest(r).Debug().Str("session", g.ID).Str("outcome", string(res.Outcome)).
		Str("reason", string(res.Reason)).Msg("word submitted")
	_ = json.NewEncoder(w).Encode(submitRes{Result: res, State: g.Snapshot()})
}

// handleReset picks a new root word for the session and clears its words.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.loadSession(w, r)
	if !ok {
		return
	}
	if err := s.engine.Start(g); err != nil {
		hlog.FromRequest(r).Error().Err(err).Str("session", g.ID).Msg("reset game")
		writeError(w, http.StatusInternalServerError, "start_failed")
		return
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	_ = json.NewEncoder(w).Encode(g.Snapshot())
}

// ------------------------------- util --------------------------------------

// writeError writes a JSON error body with status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

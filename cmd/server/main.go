// ownlyd is the local mood-journal daemon: it owns the sqlite file and
// exposes the save and analysis endpoints on localhost.
package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"

	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/engine/patterns"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/model"
	"github.com/shanepatrickbooker/OWNLY--sub000/pkg/store"
)

// Config is read from OWNLY_-prefixed environment variables.
type Config struct {
	ListenAddr string `envconfig:"LISTEN_ADDR" default:"127.0.0.1:8271"`
	DBPath     string `envconfig:"DB_PATH" default:"ownly.db"`
	BufferSize int    `envconfig:"BUFFER_SIZE" default:"128"`
	MaxEntries int    `envconfig:"MAX_ENTRIES" default:"100"`
	Debug      bool   `envconfig:"DEBUG" default:"false"`
}

func main() {
	var cfg Config
	if err := envconfig.Process("ownly", &cfg); err != nil {
		fallback := zerolog.New(os.Stderr)
		fallback.Fatal().Err(err).Msg("load config")
	}

	logger := zerolog.New(os.Stdout).With().
		Str("service", "ownlyd").
		Timestamp().
		Logger()
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}

	caps := patterns.DefaultConfig()
	if cfg.MaxEntries > 0 {
		caps.MaxEntries = cfg.MaxEntries
	}

	ctx := context.Background()
	journal, err := store.Open(ctx, store.Options{
		DBPath:     cfg.DBPath,
		BufferSize: cfg.BufferSize,
		Caps:       caps,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("init journal")
	}
	defer journal.Close()

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, requestLogger(logger), middleware.Recoverer)

	srv := &server{journal: journal, logger: logger}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Post("/entries", srv.handleSave)
	r.Get("/entries", srv.handleRecent)
	r.Get("/analysis/insights", srv.handleInsights)
	r.Get("/analysis/patterns", srv.handlePatterns)
	r.Get("/analysis/prediction", srv.handlePrediction)
	r.Get("/analysis/quality", srv.handleQuality)
	r.Get("/analysis/weekly", srv.handleWeekly)

	logger.Info().Str("addr", cfg.ListenAddr).Str("db", cfg.DBPath).Msg("starting ownlyd")
	if err := http.ListenAndServe(cfg.ListenAddr, r); err != nil {
		logger.Fatal().Err(err).Msg("server error")
	}
}

type server struct {
	journal model.JournalStore
	logger  zerolog.Logger
}

func (s *server) handleSave(w http.ResponseWriter, req *http.Request) {
	var draft model.EntryDraft
	if err := json.NewDecoder(req.Body).Decode(&draft); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	entry, err := s.journal.Save(req.Context(), draft)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(entry); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *server) handleRecent(w http.ResponseWriter, req *http.Request) {
	entries, err := s.journal.Recent(req.Context(), queryInt(req, "limit", 20))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []model.MoodEntry{}
	}
	writeJSON(w, entries, s.logger)
}

// handleInsights always computes the full ranked list; the optional
// limit parameter lets presentation callers slice for their tier
// without the engine knowing about tiers.
func (s *server) handleInsights(w http.ResponseWriter, req *http.Request) {
	out, err := s.journal.Insights(req.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if limit := queryInt(req, "limit", 0); limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	writeJSON(w, out, s.logger)
}

func (s *server) handlePatterns(w http.ResponseWriter, req *http.Request) {
	out, err := s.journal.Patterns(req.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, out, s.logger)
}

func (s *server) handlePrediction(w http.ResponseWriter, req *http.Request) {
	mood, err := strconv.Atoi(req.URL.Query().Get("mood"))
	if err != nil {
		http.Error(w, "mood must be an integer 1-5", http.StatusBadRequest)
		return
	}
	pred, err := s.journal.Predict(req.Context(), mood, req.URL.Query().Get("reflection"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, pred, s.logger)
}

func (s *server) handleQuality(w http.ResponseWriter, req *http.Request) {
	q, err := s.journal.Quality(req.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, q, s.logger)
}

func (s *server) handleWeekly(w http.ResponseWriter, req *http.Request) {
	out, err := s.journal.Weekly(req.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, out, s.logger)
}

func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
			next.ServeHTTP(ww, req)
			logger.Info().
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", ww.Status()).
				Dur("elapsed", time.Since(start)).
				Str("request_id", middleware.GetReqID(req.Context())).
				Msg("request")
		})
	}
}

func queryInt(req *http.Request, key string, def int) int {
	raw := req.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func writeJSON(w http.ResponseWriter, v any, logger zerolog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error().Err(err).Msg("encode response")
	}
}

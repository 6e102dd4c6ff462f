// File: handler.go
package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
)

// captchaHandler serves GET /captcha. It reads nothing from the request.
type captchaHandler struct {
	gen                Generator
	minBound, maxBound int
}

func (h *captchaHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log := hlog.FromRequest(r)

	c, err := h.gen.Generate(h.minBound, h.maxBound)
	if err != nil {
		log.Error().Err(err).
			Int("math_min", h.minBound).
			Int("math_max", h.maxBound).
			Msg("captcha generation failed")
		http.Error(w, "failed to generate captcha", http.StatusInternalServerError)
		return
	}

	// the id only correlates logs; the answer is never logged or kept
	id := uuid.New().String()
	w.Header().Set("Content-Type", c.ContentType)
	w.Header().Set("Content-Length", strconv.Itoa(len(c.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("X-Captcha-Id", id)
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(c.Data); err != nil {
		log.Warn().Err(err).Str("captcha_id", id).Msg("write captcha")
		return
	}
	log.Debug().Str("captcha_id", id).Int("bytes", len(c.Data)).Msg("captcha issued")
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(HealthResponse{Status: "ok"})
}

// newRouter registers the routes behind the access-log middleware.
func newRouter(gen Generator, minBound, maxBound int, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /captcha", &captchaHandler{gen: gen, minBound: minBound, maxBound: maxBound})
	mux.HandleFunc("GET /healthz", handleHealth)

	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		hlog.FromRequest(r).Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
	return hlog.NewHandler(logger)(access(mux))
}

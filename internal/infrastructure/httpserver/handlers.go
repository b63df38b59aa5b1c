package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/ersonp/flight-desk/internal/application/handlers"
	"github.com/ersonp/flight-desk/internal/domain/catalog"
	"github.com/ersonp/flight-desk/internal/domain/entities"
	"github.com/ersonp/flight-desk/internal/domain/ports"
)

const maxBodyBytes = 1 << 20

// Handlers serves the API routes. Chat may be nil when no LLM is configured.
type Handlers struct {
	Resolve *handlers.ResolveHandler
	Catalog *catalog.Catalog
	Chat    *handlers.ChatHandler
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type resolveResponse struct {
	Input       string             `json:"input"`
	Found       bool               `json:"found"`
	Destination *entities.Found    `json:"destination,omitempty"`
	Unresolved  *entities.NotFound `json:"unresolved,omitempty"`
}

type destinationsResponse struct {
	Destinations []entities.Destination `json:"destinations"`
}

type chatRequest struct {
	Message string              `json:"message"`
	History []ports.ChatMessage `json:"history"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Get("/v1/resolve", h.resolve)
	s.mux.Get("/v1/destinations", h.destinations)
	s.mux.Post("/v1/chat", h.chat)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func (h *Handlers) resolve(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if !q.Has("q") {
		writeProblem(w, http.StatusBadRequest, "Missing query", "q is required")
		return
	}
	input := q.Get("q")

	resp := resolveResponse{Input: input}
	switch res := h.Resolve.Handle(r.Context(), input, handlers.SourceHTTP).(type) {
	case entities.Found:
		resp.Found = true
		resp.Destination = &res
	case entities.NotFound:
		resp.Unresolved = &res
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handlers) destinations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, destinationsResponse{Destinations: h.Catalog.Destinations()})
}

func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	if h.Chat == nil {
		writeProblem(w, http.StatusServiceUnavailable, "Chat unavailable", "no LLM is configured (set OPENAI_API_KEY)")
		return
	}

	var req chatRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeProblem(w, http.StatusRequestEntityTooLarge, "Body too large", "request body must not exceed 1 MiB")
			return
		}
		writeProblem(w, http.StatusBadRequest, "Invalid body", err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeProblem(w, http.StatusBadRequest, "Invalid body", "message is required")
		return
	}

	writeJSON(w, http.StatusOK, h.Chat.Handle(r.Context(), req.History, req.Message))
}

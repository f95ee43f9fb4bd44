package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	assistant "github.com/panoptisDev/panoptis-ai-app-chat"
	"github.com/panoptisDev/panoptis-ai-app-chat/server"
)

type httpServer struct {
	options   server.Options
	assistant *assistant.Assistant
	srv       *http.Server
}

func (s *httpServer) Run() error {
	slog.Info("http server listening", "address", s.options.Address)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *httpServer) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func (s *httpServer) handleCreateConversation(w http.ResponseWriter, r *http.Request) {
	id := s.assistant.NewConversation(r.Context())
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (s *httpServer) handleGetConversation(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	turns, err := s.assistant.Turns(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": turns})
}

func (s *httpServer) handleSendMessage(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	reply, err := s.assistant.Send(r.Context(), id, body.Content)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *httpServer) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs := s.assistant.Documents(r.Context())

	items := make([]map[string]string, 0, len(docs))
	for _, doc := range docs {
		items = append(items, map[string]string{
			"id":    doc.Id,
			"title": doc.Title,
			"path":  doc.Path,
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, assistant.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, assistant.ErrBusy):
		status = http.StatusConflict
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func NewServer(a *assistant.Assistant, opts ...server.Option) server.Server {
	options := server.NewOptions(opts...)

	s := &httpServer{
		options:   options,
		assistant: a,
	}

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/conversations", s.handleCreateConversation).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/conversations/{id}", s.handleGetConversation).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/conversations/{id}/messages", s.handleSendMessage).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/documents", s.handleListDocuments).Methods(http.MethodGet)

	var handler http.Handler = router
	if ms, ok := MiddlewareFrom(options.Context); ok {
		for i := len(ms) - 1; i >= 0; i-- {
			handler = ms[i](handler)
		}
	}

	s.srv = &http.Server{
		Addr:    options.Address,
		Handler: handler,
	}

	return s
}

package httpapi

import (
	"encoding/json"
	"log"
	"net/http"
)

type ChatRequest struct {
	Prompt string `json:"prompt"`
}

type ChatResponse struct {
	GeneratedText string `json:"generatedText,omitempty"`
	Error         string `json:"error,omitempty"`
}

// ChatCompletion proxies the mood companion's prompt to the hosted chat API
// and hands back the generated text.
func (s *Server) ChatCompletion(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Prompt == "" {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	text, err := s.Chatbot.Generate(r.Context(), req.Prompt)
	if err != nil {
		log.Printf("chat completion: %v", err)
		WriteJSON(w, http.StatusInternalServerError, ChatResponse{Error: err.Error()})
		return
	}
	WriteJSON(w, http.StatusOK, ChatResponse{GeneratedText: text})
}

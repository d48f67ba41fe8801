package httpapi

import (
	"net/http"

	"universe-backend-go/internal/services"

	"github.com/gorilla/websocket"
)

type MetricsHistoryResponse struct {
	Items []services.MetricSample `json:"items"`
}

func (s *Server) MetricsHistory(w http.ResponseWriter, r *http.Request) {
	limit := parseInt(r.URL.Query().Get("limit"), 120)
	if limit > 500 {
		limit = 500
	}
	WriteJSON(w, http.StatusOK, MetricsHistoryResponse{Items: s.MetricsHub.History(limit)})
}

func (s *Server) MetricsSocket(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("token")
	if query == "" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	token, claims, err := s.Tokens.ParseToken(query)
	if err != nil || !token.Valid || claims["typ"] != "access" {
		WriteError(w, http.StatusUnauthorized, "Authentication failed")
		return
	}
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	s.MetricsHub.Add(conn)
	defer func() {
		s.MetricsHub.Remove(conn)
		_ = conn.Close()
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok"}
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status["database"] = "unreachable"
			WriteJSON(w, http.StatusServiceUnavailable, status)
			return
		}
		status["database"] = "ok"
	}
	WriteJSON(w, http.StatusOK, status)
}

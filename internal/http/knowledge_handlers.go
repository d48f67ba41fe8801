package httpapi

import (
	"encoding/json"
	"net/http"

	"universe-backend-go/internal/universe"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListResources(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.Resource{"items": s.Store.Resources()})
}

func (s *Server) CreateResource(w http.ResponseWriter, r *http.Request) {
	var resource universe.Resource
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	if resource.Type != universe.ResourcePDF && resource.Type != universe.ResourcePYQ {
		WriteError(w, http.StatusBadRequest, "Resource type must be PDF or PYQ")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddResource(resource))
}

func (s *Server) GetCampusInfo(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, s.Store.CampusInfo())
}

func (s *Server) UpdateCampusInfo(w http.ResponseWriter, r *http.Request) {
	var patch universe.CampusInfoPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusOK, s.Store.UpdateCampusInfo(patch))
}

type notificationsResponse struct {
	Items       []universe.Notification `json:"items"`
	UnreadCount int                     `json:"unreadCount"`
}

func (s *Server) ListNotifications(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, notificationsResponse{
		Items:       s.Store.Notifications(),
		UnreadCount: s.Store.UnreadNotificationCount(),
	})
}

func (s *Server) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	s.Store.MarkNotificationRead(chi.URLParam(r, "notificationId"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	s.Store.MarkAllNotificationsRead()
	w.WriteHeader(http.StatusNoContent)
}

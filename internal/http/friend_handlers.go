package httpapi

import (
	"encoding/json"
	"net/http"

	"universe-backend-go/internal/services"
)

// FriendManagerRequest is the single-action envelope the dashboard sends:
// one of send_request, update_request, get_friends, get_requests.
type FriendManagerRequest struct {
	Action       string `json:"action"`
	TargetUserID string `json:"targetUserId"`
	RequestID    string `json:"requestId"`
	Status       string `json:"status"`
}

func (s *Server) FriendManager(w http.ResponseWriter, r *http.Request) {
	userID := CurrentUserID(r)
	var req FriendManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	switch req.Action {
	case "send_request":
		request, created, err := services.SendFriendRequest(s.DB, userID, req.TargetUserID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		if !created {
			WriteJSON(w, http.StatusOK, map[string]interface{}{
				"message": "Friend request already exists",
				"request": request,
			})
			return
		}
		WriteJSON(w, http.StatusCreated, map[string]interface{}{"request": request})
	case "update_request":
		request, err := services.UpdateFriendRequest(s.DB, req.RequestID, userID, req.Status)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"request": request})
	case "get_friends":
		items, err := services.ListFriends(s.DB, userID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
	case "get_requests":
		items, err := services.ListFriendRequests(s.DB, userID)
		if err != nil {
			WriteServiceError(w, err)
			return
		}
		WriteJSON(w, http.StatusOK, map[string]interface{}{"items": items})
	default:
		WriteError(w, http.StatusBadRequest, "Invalid action")
	}
}

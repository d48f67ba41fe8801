package httpapi

import (
	"encoding/json"
	"net/http"

	"universe-backend-go/internal/universe"

	"github.com/go-chi/chi/v5"
)

func (s *Server) ListMessages(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.ChatMessage{"items": s.Store.Messages()})
}

// Conversation returns the direct-message thread between the current user
// and the peer named in the "with" query parameter.
func (s *Server) Conversation(w http.ResponseWriter, r *http.Request) {
	peer := r.URL.Query().Get("with")
	if peer == "" {
		WriteError(w, http.StatusBadRequest, "Missing 'with' parameter")
		return
	}
	me := s.Store.CurrentUser().ID
	WriteJSON(w, http.StatusOK, map[string][]universe.ChatMessage{"items": s.Store.Conversation(me, peer)})
}

func (s *Server) SendMessage(w http.ResponseWriter, r *http.Request) {
	var message universe.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddMessage(message))
}

func (s *Server) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	s.Store.MarkMessageRead(chi.URLParam(r, "messageId"))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListGroupChats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.GroupChat{"items": s.Store.GroupChats()})
}

func (s *Server) CreateGroupChat(w http.ResponseWriter, r *http.Request) {
	var chat universe.GroupChat
	if err := json.NewDecoder(r.Body).Decode(&chat); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.CreateGroupChat(chat))
}

func (s *Server) SendGroupMessage(w http.ResponseWriter, r *http.Request) {
	var message universe.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.AddMessageToGroupChat(chi.URLParam(r, "groupId"), message)
	w.WriteHeader(http.StatusNoContent)
}

// Contacts is the store's friend collection: the people the chat picker and
// conversation views are built from. It is separate from the Postgres friend
// manager behind /api/friends.
func (s *Server) ListContacts(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.Friend{"items": s.Store.Friends()})
}

func (s *Server) PendingContacts(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.Friend{"items": s.Store.PendingFriends()})
}

func (s *Server) CreateContact(w http.ResponseWriter, r *http.Request) {
	var friend universe.Friend
	if err := json.NewDecoder(r.Body).Decode(&friend); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddFriend(friend))
}

type contactStatusRequest struct {
	Status universe.FriendStatus `json:"status"`
}

func (s *Server) UpdateContactStatus(w http.ResponseWriter, r *http.Request) {
	var req contactStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	switch req.Status {
	case universe.FriendPending, universe.FriendAccepted, universe.FriendDeclined:
	default:
		WriteError(w, http.StatusBadRequest, "Invalid status")
		return
	}
	s.Store.UpdateFriendStatus(chi.URLParam(r, "contactId"), req.Status)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) ListPosts(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string][]universe.CommunityPost{"items": s.Store.Posts()})
}

func (s *Server) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post universe.CommunityPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	WriteJSON(w, http.StatusCreated, s.Store.AddPost(post))
}

type likeRequest struct {
	UserID string `json:"userId"`
}

func (s *Server) LikePost(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.LikePost(chi.URLParam(r, "postId"), req.UserID)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) UnlikePost(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.UnlikePost(chi.URLParam(r, "postId"), req.UserID)
	w.WriteHeader(http.StatusNoContent)
}

type commentRequest struct {
	UserID  string `json:"userId"`
	Content string `json:"content"`
}

func (s *Server) AddComment(w http.ResponseWriter, r *http.Request) {
	var req commentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" || req.Content == "" {
		WriteError(w, http.StatusBadRequest, "Invalid payload")
		return
	}
	s.Store.AddComment(chi.URLParam(r, "postId"), req.UserID, req.Content)
	w.WriteHeader(http.StatusNoContent)
}

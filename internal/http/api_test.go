package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"universe-backend-go/internal/config"
	"universe-backend-go/internal/services"
	"universe-backend-go/internal/universe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	store := universe.New(universe.Options{
		IDs:   universe.NewSequence("id"),
		Clock: func() time.Time { return time.Date(2025, 4, 14, 12, 0, 0, 0, time.UTC) },
		User:  universe.User{ID: "user1", Name: "Alex Smith"},
	})
	universe.AttachNotificationPolicy(store)
	cfg := config.Config{
		JWTSecret:        "test-secret",
		JWTIssuer:        "uni-verse",
		AccessTTLSeconds: 3600,
	}
	return NewServer(store, nil, cfg, services.NewMetricsHub(10))
}

func doJSON(t *testing.T, handler http.Handler, method, path string, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var body bytes.Buffer
	if payload != nil {
		require.NoError(t, json.NewEncoder(&body).Encode(payload))
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeItems[T any](t *testing.T, rec *httptest.ResponseRecorder) []T {
	t.Helper()
	var out struct {
		Items []T `json:"items"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out.Items
}

func TestCreateAssignmentEndpointNotifies(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/assignments", map[string]interface{}{
		"title":    "Calculus Problem Set",
		"dueDate":  "2025-04-18T00:00:00Z",
		"priority": "High",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var created universe.Assignment
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "id1", created.ID)

	list := decodeItems[universe.Assignment](t, doJSON(t, router, http.MethodGet, "/api/assignments", nil))
	require.Len(t, list, 1)

	rec = doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	var notifs notificationsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&notifs))
	require.Len(t, notifs.Items, 1)
	assert.Equal(t, universe.NotifyAssignment, notifs.Items[0].Type)
	assert.Equal(t, 1, notifs.UnreadCount)
}

func TestUpdateUnknownAssignmentIsSilent(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPut, "/api/assignments/missing", map[string]interface{}{"title": "x"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, "/api/assignments/missing", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestLikeEndpointIsIdempotent(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/posts", map[string]interface{}{
		"userId": "user1", "title": "Post", "category": "Tech", "content": "hello",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var post universe.CommunityPost
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&post))

	for i := 0; i < 2; i++ {
		rec = doJSON(t, router, http.MethodPost, "/api/posts/"+post.ID+"/like", map[string]string{"userId": "user2"})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}

	posts := decodeItems[universe.CommunityPost](t, doJSON(t, router, http.MethodGet, "/api/posts", nil))
	require.Len(t, posts, 1)
	assert.Equal(t, []string{"user2"}, posts[0].Likes)
}

func TestTransactionEndpointMovesBalance(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPut, "/api/wallet", map[string]float64{"balance": 500})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount": 50, "shop": "Cafe", "category": "Food", "type": "expense",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp struct {
		Balance float64 `json:"balance"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 450.0, resp.Balance)

	rec = doJSON(t, router, http.MethodPost, "/api/transactions", map[string]interface{}{
		"amount": 50, "shop": "UPI", "category": "Topup", "type": "transfer",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConversationEndpoint(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	doJSON(t, router, http.MethodPost, "/api/messages", map[string]interface{}{
		"senderId": "user2", "receiverId": "user1", "content": "hey",
	})
	doJSON(t, router, http.MethodPost, "/api/messages", map[string]interface{}{
		"senderId": "user1", "receiverId": "user3", "content": "other thread",
	})

	rec := doJSON(t, router, http.MethodGet, "/api/messages/conversation?with=user2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeItems[universe.ChatMessage](t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "hey", items[0].Content)

	rec = doJSON(t, router, http.MethodGet, "/api/messages/conversation", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFriendManagerRequiresAuth(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/friends", map[string]string{"action": "get_friends"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFriendManagerRejectsUnknownAction(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	token, _, err := server.Tokens.CreateAccessToken("user1", "alex.smith@university.edu")
	require.NoError(t, err)

	var body bytes.Buffer
	require.NoError(t, json.NewEncoder(&body).Encode(map[string]string{"action": "explode"}))
	req := httptest.NewRequest(http.MethodPost, "/api/friends", &body)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContactEndpoints(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/contacts", universe.Friend{
		Name:   "Jamie Lee",
		Status: universe.FriendAccepted,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created universe.Friend
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "id1", created.ID)
	assert.Equal(t, universe.FriendPending, created.Status)

	rec = doJSON(t, router, http.MethodGet, "/api/contacts/pending", nil)
	pending := decodeItems[universe.Friend](t, rec)
	require.Len(t, pending, 1)

	rec = doJSON(t, router, http.MethodPut, "/api/contacts/id1/status", map[string]string{"status": "accepted"})
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/contacts/pending", nil)
	assert.Empty(t, decodeItems[universe.Friend](t, rec))

	rec = doJSON(t, router, http.MethodGet, "/api/contacts", nil)
	contacts := decodeItems[universe.Friend](t, rec)
	require.Len(t, contacts, 1)
	assert.Equal(t, universe.FriendAccepted, contacts[0].Status)

	// Accepting a contact is not a notification trigger.
	rec = doJSON(t, router, http.MethodGet, "/api/notifications", nil)
	var notifs notificationsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&notifs))
	assert.Empty(t, notifs.Items)

	rec = doJSON(t, router, http.MethodPut, "/api/contacts/id1/status", map[string]string{"status": "blocked"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChatEndpointProxiesUpstream(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer upstream-key", r.Header.Get("Authorization"))
		var req struct {
			Messages []struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"messages"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if assert.Len(t, req.Messages, 1) {
			assert.Equal(t, "I feel stressed", req.Messages[0].Content)
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Take a deep breath."})
	}))
	defer upstream.Close()

	server := newTestServer(t)
	server.Chatbot = services.NewChatbotClient("upstream-key", upstream.URL)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPost, "/api/chat", map[string]string{"prompt": "I feel stressed"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ChatResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Take a deep breath.", resp.GeneratedText)
}

func TestHealthWithoutDatabase(t *testing.T) {
	server := newTestServer(t)
	rec := doJSON(t, server.Router(), http.MethodGet, "/api/public/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMeEndpoints(t *testing.T) {
	server := newTestServer(t)
	router := server.Router()

	rec := doJSON(t, router, http.MethodPut, "/api/me", map[string]string{"name": "Alex J. Smith"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/me", nil)
	var resp struct {
		User universe.User `json:"user"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Alex J. Smith", resp.User.Name)
	assert.Equal(t, "user1", resp.User.ID)
}

package services

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const (
	RequestPending  = "pending"
	RequestAccepted = "accepted"
	RequestDeclined = "declined"
)

type FriendProfile struct {
	ID        string  `db:"id" json:"id"`
	Email     *string `db:"email" json:"email,omitempty"`
	Name      *string `db:"name" json:"name,omitempty"`
	AvatarURL *string `db:"avatar_url" json:"avatarUrl,omitempty"`
}

type FriendRequest struct {
	ID         string    `db:"id" json:"id"`
	SenderID   string    `db:"sender_id" json:"senderId"`
	ReceiverID string    `db:"receiver_id" json:"receiverId"`
	Status     string    `db:"status" json:"status"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`

	Sender   *FriendProfile `db:"-" json:"sender,omitempty"`
	Receiver *FriendProfile `db:"-" json:"receiver,omitempty"`
}

type FriendEntry struct {
	FriendID string        `json:"friendId"`
	Friend   FriendProfile `json:"friend"`
}

// SendFriendRequest creates a pending row from sender to target. If a request
// already exists in either direction it is returned as-is; sending is not an
// error in that case, matching how the dashboard treats repeated sends.
func SendFriendRequest(db *sqlx.DB, senderID, targetID string) (FriendRequest, bool, error) {
	if targetID == "" || targetID == senderID {
		return FriendRequest{}, false, ErrBadRequest("Invalid target user")
	}
	var existing FriendRequest
	err := db.Get(&existing, `
SELECT id, sender_id, receiver_id, status, created_at
FROM friend_requests
WHERE (sender_id = $1 AND receiver_id = $2)
   OR (sender_id = $2 AND receiver_id = $1)
`, senderID, targetID)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return FriendRequest{}, false, WrapError(err, "lookup friend request")
	}
	request := FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: targetID,
		Status:     RequestPending,
		CreatedAt:  time.Now().UTC(),
	}
	_, err = db.Exec(`
INSERT INTO friend_requests (id, sender_id, receiver_id, status, created_at)
VALUES ($1,$2,$3,$4,$5)
`, request.ID, request.SenderID, request.ReceiverID, request.Status, request.CreatedAt)
	if err != nil {
		return FriendRequest{}, false, WrapError(err, "insert friend request")
	}
	return request, true, nil
}

// UpdateFriendRequest resolves a pending request. Only the receiver may do
// this, and the only reachable states are accepted and declined. Accepting
// writes the friendship in both directions.
func UpdateFriendRequest(db *sqlx.DB, requestID, callerID, status string) (FriendRequest, error) {
	if status != RequestAccepted && status != RequestDeclined {
		return FriendRequest{}, ErrBadRequest("Invalid status")
	}
	var request FriendRequest
	err := db.Get(&request, `
SELECT id, sender_id, receiver_id, status, created_at
FROM friend_requests
WHERE id = $1
`, requestID)
	if errors.Is(err, sql.ErrNoRows) {
		return FriendRequest{}, ErrNotFound("Friend request not found")
	}
	if err != nil {
		return FriendRequest{}, WrapError(err, "lookup friend request")
	}
	if request.ReceiverID != callerID {
		return FriendRequest{}, ErrForbidden("Not allowed to update this request")
	}
	if request.Status != RequestPending {
		return FriendRequest{}, ErrBadRequest("Friend request already resolved")
	}
	if _, err := db.Exec(`UPDATE friend_requests SET status = $2 WHERE id = $1`, requestID, status); err != nil {
		return FriendRequest{}, WrapError(err, "update friend request")
	}
	request.Status = status
	if status == RequestAccepted {
		now := time.Now().UTC()
		_, err = db.Exec(`
INSERT INTO friendships (id, user_id, friend_id, created_at)
VALUES ($1,$2,$3,$5),($4,$3,$2,$5)
ON CONFLICT (user_id, friend_id) DO NOTHING
`, uuid.NewString(), request.ReceiverID, request.SenderID, uuid.NewString(), now)
		if err != nil {
			return FriendRequest{}, WrapError(err, "insert friendships")
		}
	}
	return request, nil
}

// ListFriends returns the accepted friendships of a user with their profile
// summaries.
func ListFriends(db *sqlx.DB, userID string) ([]FriendEntry, error) {
	rows := []struct {
		FriendID  string  `db:"friend_id"`
		Email     *string `db:"email"`
		Name      *string `db:"name"`
		AvatarURL *string `db:"avatar_url"`
	}{}
	if err := db.Select(&rows, `
SELECT f.friend_id, p.email, p.name, p.avatar_url
FROM friendships f
LEFT JOIN profiles p ON p.id = f.friend_id
WHERE f.user_id = $1
ORDER BY f.created_at
`, userID); err != nil {
		return nil, WrapError(err, "list friendships")
	}
	items := make([]FriendEntry, 0, len(rows))
	for _, row := range rows {
		items = append(items, FriendEntry{
			FriendID: row.FriendID,
			Friend: FriendProfile{
				ID:        row.FriendID,
				Email:     row.Email,
				Name:      row.Name,
				AvatarURL: row.AvatarURL,
			},
		})
	}
	return items, nil
}

// ListFriendRequests returns every request the user is part of, newest
// first, with sender and receiver profiles attached.
func ListFriendRequests(db *sqlx.DB, userID string) ([]FriendRequest, error) {
	requests := []FriendRequest{}
	if err := db.Select(&requests, `
SELECT id, sender_id, receiver_id, status, created_at
FROM friend_requests
WHERE sender_id = $1 OR receiver_id = $1
ORDER BY created_at DESC
`, userID); err != nil {
		return nil, WrapError(err, "list friend requests")
	}
	for i := range requests {
		sender, err := fetchProfile(db, requests[i].SenderID)
		if err != nil {
			return nil, err
		}
		receiver, err := fetchProfile(db, requests[i].ReceiverID)
		if err != nil {
			return nil, err
		}
		requests[i].Sender = sender
		requests[i].Receiver = receiver
	}
	return requests, nil
}

func fetchProfile(db *sqlx.DB, userID string) (*FriendProfile, error) {
	var profile FriendProfile
	err := db.Get(&profile, `SELECT id, email, name, avatar_url FROM profiles WHERE id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return &FriendProfile{ID: userID}, nil
	}
	if err != nil {
		return nil, WrapError(err, "lookup profile")
	}
	return &profile, nil
}

package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Validation paths run before any database access, so they are exercised
// without a connection; the query paths are covered against a live schema.

func TestSendFriendRequestRejectsSelf(t *testing.T) {
	_, _, err := SendFriendRequest(nil, "user1", "user1")
	require.Error(t, err)
	var serr ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 400, serr.Status)
}

func TestSendFriendRequestRejectsEmptyTarget(t *testing.T) {
	_, _, err := SendFriendRequest(nil, "user1", "")
	require.Error(t, err)
}

func TestUpdateFriendRequestRejectsUnknownStatus(t *testing.T) {
	_, err := UpdateFriendRequest(nil, "req1", "user1", "pending")
	require.Error(t, err)
	var serr ServiceError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 400, serr.Status)

	_, err = UpdateFriendRequest(nil, "req1", "user1", "blocked")
	require.Error(t, err)
}

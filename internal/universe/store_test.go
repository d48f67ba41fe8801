package universe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 4, 14, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(Options{
		IDs:   NewSequence("id"),
		Clock: func() time.Time { return testNow },
		User:  User{ID: "user1", Name: "Alex Smith", AssignmentsCompleted: 5},
	})
	AttachNotificationPolicy(s)
	return s
}

func TestSequenceIDsAreDeterministic(t *testing.T) {
	seq := NewSequence("x")
	assert.Equal(t, "x1", seq.NewID())
	assert.Equal(t, "x2", seq.NewID())
	assert.Equal(t, "x3", seq.NewID())
}

func TestAddAssignmentAppendsOneRecordAndOneNotification(t *testing.T) {
	s := newTestStore(t)
	for i := 1; i <= 3; i++ {
		s.AddAssignment(Assignment{Title: "Problem Set", DueDate: testNow, Priority: PriorityHigh})
		assert.Len(t, s.Assignments(), i)
		notifs := s.Notifications()
		require.Len(t, notifs, i)
		assert.Equal(t, NotifyAssignment, notifs[0].Type)
	}
}

func TestAddAssignmentNotificationReferencesRecord(t *testing.T) {
	s := newTestStore(t)
	created := s.AddAssignment(Assignment{Title: "Essay", DueDate: time.Date(2025, 4, 25, 0, 0, 0, 0, time.UTC)})
	notifs := s.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, created.ID, notifs[0].RelatedID)
	assert.Equal(t, "New Assignment", notifs[0].Title)
	assert.Equal(t, "Essay due on 4/25/2025", notifs[0].Message)
	assert.False(t, notifs[0].IsRead)
	assert.Equal(t, testNow, notifs[0].Date)
}

func TestUpdateAssignmentMergesFields(t *testing.T) {
	s := newTestStore(t)
	a := s.AddAssignment(Assignment{Title: "Draft", Priority: PriorityLow})
	title := "Final Draft"
	priority := PriorityHigh
	s.UpdateAssignment(a.ID, AssignmentPatch{Title: &title, Priority: &priority})
	got := s.Assignments()[0]
	assert.Equal(t, "Final Draft", got.Title)
	assert.Equal(t, PriorityHigh, got.Priority)
	assert.False(t, got.Completed)
}

func TestUpdateAssignmentUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	a := s.AddAssignment(Assignment{Title: "Only one"})
	title := "changed"
	s.UpdateAssignment("missing", AssignmentPatch{Title: &title})
	assert.Equal(t, "Only one", s.Assignments()[0].Title)
	assert.Equal(t, a.ID, s.Assignments()[0].ID)
}

func TestCompletingAssignmentIncrementsCounterOnce(t *testing.T) {
	s := newTestStore(t)
	a := s.AddAssignment(Assignment{Title: "Lab Report"})
	completed := true
	s.UpdateAssignment(a.ID, AssignmentPatch{Completed: &completed})
	assert.Equal(t, 6, s.CurrentUser().AssignmentsCompleted)

	// re-sending completed=true must not count again
	s.UpdateAssignment(a.ID, AssignmentPatch{Completed: &completed})
	assert.Equal(t, 6, s.CurrentUser().AssignmentsCompleted)

	// un-completing and completing again counts once more
	notCompleted := false
	s.UpdateAssignment(a.ID, AssignmentPatch{Completed: &notCompleted})
	s.UpdateAssignment(a.ID, AssignmentPatch{Completed: &completed})
	assert.Equal(t, 7, s.CurrentUser().AssignmentsCompleted)
}

func TestDeleteAssignmentCascadesOwnNotificationsOnly(t *testing.T) {
	s := newTestStore(t)
	first := s.AddAssignment(Assignment{Title: "First"})
	second := s.AddAssignment(Assignment{Title: "Second"})
	require.Len(t, s.Notifications(), 2)

	s.DeleteAssignment(first.ID)

	assert.Len(t, s.Assignments(), 1)
	notifs := s.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, second.ID, notifs[0].RelatedID)
}

func TestDeleteAssignmentUnknownIDIsNoOp(t *testing.T) {
	s := newTestStore(t)
	s.AddAssignment(Assignment{Title: "Keep"})
	s.DeleteAssignment("missing")
	assert.Len(t, s.Assignments(), 1)
	assert.Len(t, s.Notifications(), 1)
}

func TestAddEventOnlyExamsNotify(t *testing.T) {
	s := newTestStore(t)
	s.AddEvent(Event{Title: "Physics Lab", Date: testNow})
	assert.Empty(t, s.Notifications())

	exam := s.AddEvent(Event{Title: "Calculus Final", Date: time.Date(2025, 4, 20, 10, 0, 0, 0, time.UTC), IsExam: true})
	notifs := s.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, NotifyExam, notifs[0].Type)
	assert.Equal(t, exam.ID, notifs[0].RelatedID)
	assert.Equal(t, "Calculus Final on 4/20/2025", notifs[0].Message)
}

func TestDeleteEventCascadesNotifications(t *testing.T) {
	s := newTestStore(t)
	exam := s.AddEvent(Event{Title: "Final", IsExam: true, Date: testNow})
	require.Len(t, s.Notifications(), 1)
	s.DeleteEvent(exam.ID)
	assert.Empty(t, s.Events())
	assert.Empty(t, s.Notifications())
}

func TestMessageToCurrentUserNotifiesWithPreview(t *testing.T) {
	s := newTestStore(t)
	s.friends = []Friend{{ID: "user2", Name: "Jamie Lee", Status: FriendAccepted}}

	long := "this message is definitely longer than thirty characters"
	m := s.AddMessage(ChatMessage{SenderID: "user2", ReceiverID: "user1", Content: long})

	assert.Len(t, s.Messages(), 1)
	notifs := s.Notifications()
	require.Len(t, notifs, 1)
	assert.Equal(t, NotifyMessage, notifs[0].Type)
	assert.Equal(t, m.ID, notifs[0].RelatedID)
	assert.Equal(t, "Jamie Lee: this message is definitely lon...", notifs[0].Message)
}

func TestShortMessageIsNotTruncated(t *testing.T) {
	s := newTestStore(t)
	s.friends = []Friend{{ID: "user2", Name: "Jamie Lee", Status: FriendAccepted}}
	s.AddMessage(ChatMessage{SenderID: "user2", ReceiverID: "user1", Content: "hello"})
	require.Len(t, s.Notifications(), 1)
	assert.Equal(t, "Jamie Lee: hello", s.Notifications()[0].Message)
}

func TestMessageFromUnknownSenderUsesFallbackName(t *testing.T) {
	s := newTestStore(t)
	s.AddMessage(ChatMessage{SenderID: "stranger", ReceiverID: "user1", Content: "hi"})
	require.Len(t, s.Notifications(), 1)
	assert.Equal(t, "Someone: hi", s.Notifications()[0].Message)
}

func TestMessageToSomeoneElseDoesNotNotify(t *testing.T) {
	s := newTestStore(t)
	s.AddMessage(ChatMessage{SenderID: "user1", ReceiverID: "user2", Content: "hello"})
	assert.Len(t, s.Messages(), 1)
	assert.Empty(t, s.Notifications())
}

func TestMarkMessageReadAlsoMarksRelatedNotification(t *testing.T) {
	s := newTestStore(t)
	m := s.AddMessage(ChatMessage{SenderID: "user2", ReceiverID: "user1", Content: "hey"})
	require.Len(t, s.Notifications(), 1)
	require.False(t, s.Notifications()[0].IsRead)

	s.MarkMessageRead(m.ID)

	assert.True(t, s.Messages()[0].IsRead)
	assert.True(t, s.Notifications()[0].IsRead)
	assert.Zero(t, s.UnreadNotificationCount())
}

func TestConversationFiltersByUnorderedPair(t *testing.T) {
	s := newTestStore(t)
	s.AddMessage(ChatMessage{SenderID: "user2", ReceiverID: "user1", Content: "a"})
	s.AddMessage(ChatMessage{SenderID: "user1", ReceiverID: "user2", Content: "b"})
	s.AddMessage(ChatMessage{SenderID: "user3", ReceiverID: "user1", Content: "c"})

	conv := s.Conversation("user1", "user2")
	require.Len(t, conv, 2)
	assert.Equal(t, "a", conv[0].Content)
	assert.Equal(t, "b", conv[1].Content)
	assert.Equal(t, conv, s.Conversation("user2", "user1"))
}

func TestLikePostIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	p := s.AddPost(CommunityPost{UserID: "user1", Title: "Post", Category: "Tech"})

	s.LikePost(p.ID, "user2")
	s.LikePost(p.ID, "user2")
	assert.Equal(t, []string{"user2"}, s.Posts()[0].Likes)

	s.UnlikePost(p.ID, "user3")
	assert.Equal(t, []string{"user2"}, s.Posts()[0].Likes)

	s.UnlikePost(p.ID, "user2")
	assert.Empty(t, s.Posts()[0].Likes)
}

func TestAddCommentAppendsWithGeneratedIDAndTimestamp(t *testing.T) {
	s := newTestStore(t)
	p := s.AddPost(CommunityPost{UserID: "user1", Title: "Post"})
	s.AddComment(p.ID, "user2", "Nice one")

	comments := s.Posts()[0].Comments
	require.Len(t, comments, 1)
	assert.NotEmpty(t, comments[0].ID)
	assert.Equal(t, "user2", comments[0].UserID)
	assert.Equal(t, "Nice one", comments[0].Content)
	assert.Equal(t, testNow, comments[0].Timestamp)
}

func TestNewPostsComeFirst(t *testing.T) {
	s := newTestStore(t)
	s.AddPost(CommunityPost{Title: "older"})
	s.AddPost(CommunityPost{Title: "newer"})
	posts := s.Posts()
	require.Len(t, posts, 2)
	assert.Equal(t, "newer", posts[0].Title)
}

func TestAddTransactionMovesBalance(t *testing.T) {
	s := newTestStore(t)
	balance := 500.0
	s.UpdateWallet(WalletPatch{Balance: &balance})

	s.AddTransaction(Transaction{Amount: 50, Shop: "Cafe", Category: "Food", Type: TxExpense})
	assert.Equal(t, 450.0, s.Wallet().Balance)

	s.AddTransaction(Transaction{Amount: 100, Shop: "UPI Transfer", Category: "Topup", Type: TxTopup})
	assert.Equal(t, 550.0, s.Wallet().Balance)

	// newest first
	txs := s.Transactions()
	require.Len(t, txs, 2)
	assert.Equal(t, TxTopup, txs[0].Type)
}

func TestSpendingByCategorySumsExpensesOnly(t *testing.T) {
	s := newTestStore(t)
	s.AddTransaction(Transaction{Amount: 50, Category: "Food", Type: TxExpense})
	s.AddTransaction(Transaction{Amount: 30, Category: "Food", Type: TxExpense})
	s.AddTransaction(Transaction{Amount: 100, Category: "Entertainment", Type: TxExpense})
	s.AddTransaction(Transaction{Amount: 200, Category: "Topup", Type: TxTopup})

	totals := s.SpendingByCategory()
	assert.Equal(t, map[string]float64{"Food": 80, "Entertainment": 100}, totals)
}

func TestAddFriendStartsPending(t *testing.T) {
	s := newTestStore(t)
	f := s.AddFriend(Friend{Name: "Jordan Smith", Status: FriendAccepted})
	assert.Equal(t, FriendPending, f.Status)
	assert.Equal(t, FriendPending, s.Friends()[0].Status)
}

func TestUpdateFriendStatusTouchesOnlyThatRecord(t *testing.T) {
	s := newTestStore(t)
	first := s.AddFriend(Friend{Name: "Jamie Lee"})
	second := s.AddFriend(Friend{Name: "Jordan Smith"})

	s.UpdateFriendStatus(first.ID, FriendAccepted)

	friends := s.Friends()
	require.Len(t, friends, 2)
	assert.Equal(t, FriendAccepted, friends[0].Status)
	assert.Equal(t, "Jamie Lee", friends[0].Name)
	assert.Equal(t, Friend{ID: second.ID, Name: "Jordan Smith", Status: FriendPending}, friends[1])

	// no notification is produced for friend status changes
	assert.Empty(t, s.Notifications())
}

func TestPendingFriends(t *testing.T) {
	s := newTestStore(t)
	s.AddFriend(Friend{Name: "A"})
	accepted := s.AddFriend(Friend{Name: "B"})
	s.UpdateFriendStatus(accepted.ID, FriendAccepted)

	pending := s.PendingFriends()
	require.Len(t, pending, 1)
	assert.Equal(t, "A", pending[0].Name)
}

func TestAddResourceRoundTrip(t *testing.T) {
	s := newTestStore(t)
	input := Resource{
		Title:      "Calculus Formulas",
		Course:     "MATH 101",
		UploadDate: time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		Type:       ResourcePDF,
		URL:        "https://files.example.edu/calculus.pdf",
	}
	created := s.AddResource(input)

	require.Len(t, s.Resources(), 1)
	got := s.Resources()[0]
	assert.NotEmpty(t, got.ID)
	input.ID = got.ID
	assert.Equal(t, input, got)
	assert.Equal(t, created, got)
}

func TestGroupChatMessages(t *testing.T) {
	s := newTestStore(t)
	g := s.CreateGroupChat(GroupChat{Name: "Physics B2", Members: []string{"user1", "user4"}})
	s.AddMessageToGroupChat(g.ID, ChatMessage{SenderID: "user4", ReceiverID: g.ID, Content: "lecture notes?"})
	s.AddMessageToGroupChat("missing", ChatMessage{SenderID: "user4", Content: "dropped"})

	chats := s.GroupChats()
	require.Len(t, chats, 1)
	require.Len(t, chats[0].Messages, 1)
	assert.Equal(t, "lecture notes?", chats[0].Messages[0].Content)
	// group messages never produce notifications
	assert.Empty(t, s.Notifications())
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s := newTestStore(t)
	s.AddAssignment(Assignment{Title: "one"})
	s.AddAssignment(Assignment{Title: "two"})
	require.Equal(t, 2, s.UnreadNotificationCount())

	s.MarkAllNotificationsRead()
	assert.Zero(t, s.UnreadNotificationCount())
	for _, n := range s.Notifications() {
		assert.True(t, n.IsRead)
	}
}

func TestMarkNotificationRead(t *testing.T) {
	s := newTestStore(t)
	s.AddAssignment(Assignment{Title: "one"})
	id := s.Notifications()[0].ID
	s.MarkNotificationRead(id)
	assert.True(t, s.Notifications()[0].IsRead)
	s.MarkNotificationRead("missing")
	assert.Equal(t, 0, s.UnreadNotificationCount())
}

func TestUpdateUserMergesFields(t *testing.T) {
	s := newTestStore(t)
	name := "Alex J. Smith"
	email := "alex@university.edu"
	s.UpdateUser(UserPatch{Name: &name, Email: &email})
	u := s.CurrentUser()
	assert.Equal(t, "Alex J. Smith", u.Name)
	assert.Equal(t, "alex@university.edu", u.Email)
	assert.Equal(t, "user1", u.ID)
	assert.Equal(t, 5, u.AssignmentsCompleted)
}

func TestUpdateWalletMergesFields(t *testing.T) {
	s := newTestStore(t)
	goal := 5000.0
	s.UpdateWallet(WalletPatch{SavingsGoal: &goal})
	assert.Equal(t, 5000.0, s.Wallet().SavingsGoal)
	assert.Zero(t, s.Wallet().Balance)

	s.UpdateWallet(WalletPatch{Budget: &Budget{Monthly: 2000, Categories: map[string]float64{"Food": 800}}})
	w := s.Wallet()
	assert.Equal(t, 2000.0, w.Budget.Monthly)
	assert.Equal(t, 800.0, w.Budget.Categories["Food"])
	assert.Equal(t, 5000.0, w.SavingsGoal)
}

func TestUpdateCampusInfoReplacesSections(t *testing.T) {
	s := newTestStore(t)
	s.UpdateCampusInfo(CampusInfoPatch{Menu: []MenuItem{{Item: "Burger", Price: 50}}})
	s.UpdateCampusInfo(CampusInfoPatch{ShopHours: []ShopHours{{Name: "Cafe", Hours: "8 AM - 8 PM"}}})

	c := s.CampusInfo()
	require.Len(t, c.Menu, 1)
	assert.Equal(t, "Burger", c.Menu[0].Item)
	require.Len(t, c.ShopHours, 1)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s := newTestStore(t)
	p := s.AddPost(CommunityPost{Title: "Post"})
	s.LikePost(p.ID, "user2")

	snapshot := s.Posts()
	snapshot[0].Likes[0] = "tampered"
	snapshot[0].Title = "tampered"

	assert.Equal(t, "Post", s.Posts()[0].Title)
	assert.Equal(t, []string{"user2"}, s.Posts()[0].Likes)
}

func TestSeededStoreMatchesDemoDataset(t *testing.T) {
	s := NewSeeded(Options{Clock: func() time.Time { return testNow }})

	assert.Equal(t, "Alex Smith", s.CurrentUser().Name)
	assert.Equal(t, 500.0, s.Wallet().Balance)
	assert.Len(t, s.Events(), 3)
	assert.Len(t, s.Classes(), 5)
	assert.Len(t, s.Assignments(), 3)
	assert.Len(t, s.GroupChats(), 3)
	assert.Len(t, s.Friends(), 3)
	assert.Len(t, s.Posts(), 3)
	assert.Len(t, s.Resources(), 3)
	assert.Len(t, s.Notifications(), 5)
	assert.Equal(t, 4, s.UnreadNotificationCount())

	conv := s.Conversation("user1", "user2")
	require.Len(t, conv, 1)
	assert.Equal(t, "dmsg1", conv[0].ID)
}

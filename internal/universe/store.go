package universe

import (
	"sync"
	"time"
)

// Store owns every entity collection for one dashboard session. It is
// created at session start, injected into its consumers, and holds nothing
// across restarts. Update and delete calls with an unknown id return without
// touching state; no operation reports an error.
type Store struct {
	mu          sync.RWMutex
	ids         IDGenerator
	clock       func() time.Time
	subscribers []func(DomainEvent)

	user          User
	events        []Event
	classes       []ClassEvent
	assignments   []Assignment
	groupChats    []GroupChat
	friends       []Friend
	messages      []ChatMessage
	wallet        Wallet
	transactions  []Transaction
	posts         []CommunityPost
	resources     []Resource
	campus        CampusInfo
	notifications []Notification
}

// Options configures a Store. Zero values fall back to UUID ids and the
// wall clock.
type Options struct {
	IDs   IDGenerator
	Clock func() time.Time
	User  User
}

func New(opts Options) *Store {
	if opts.IDs == nil {
		opts.IDs = NewUUIDGenerator()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Store{
		ids:   opts.IDs,
		clock: opts.Clock,
		user:  opts.User,
		wallet: Wallet{
			Budget: Budget{Categories: map[string]float64{}},
		},
	}
}

// --- Current user ---

func (s *Store) CurrentUser() User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

type UserPatch struct {
	Name                 *string `json:"name"`
	StudentID            *string `json:"studentId"`
	ProfilePicture       *string `json:"profilePicture"`
	Email                *string `json:"email"`
	AssignmentsCompleted *int    `json:"assignmentsCompleted"`
	EventsAttended       *int    `json:"eventsAttended"`
}

func (s *Store) UpdateUser(patch UserPatch) User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Name != nil {
		s.user.Name = *patch.Name
	}
	if patch.StudentID != nil {
		s.user.StudentID = *patch.StudentID
	}
	if patch.ProfilePicture != nil {
		s.user.ProfilePicture = *patch.ProfilePicture
	}
	if patch.Email != nil {
		s.user.Email = *patch.Email
	}
	if patch.AssignmentsCompleted != nil {
		s.user.AssignmentsCompleted = *patch.AssignmentsCompleted
	}
	if patch.EventsAttended != nil {
		s.user.EventsAttended = *patch.EventsAttended
	}
	return s.user
}

// --- Calendar events ---

func (s *Store) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) AddEvent(e Event) Event {
	s.mu.Lock()
	e.ID = s.ids.NewID()
	s.events = append(s.events, e)
	s.mu.Unlock()
	s.publish(EventAdded{Event: e})
	return e
}

type EventPatch struct {
	Title       *string    `json:"title"`
	Date        *time.Time `json:"date"`
	IsExam      *bool      `json:"isExam"`
	Description *string    `json:"description"`
	Course      *string    `json:"course"`
	Slot        *string    `json:"slot"`
	Faculty     *string    `json:"faculty"`
}

func (s *Store) UpdateEvent(id string, patch EventPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.events {
		if s.events[i].ID != id {
			continue
		}
		e := &s.events[i]
		if patch.Title != nil {
			e.Title = *patch.Title
		}
		if patch.Date != nil {
			e.Date = *patch.Date
		}
		if patch.IsExam != nil {
			e.IsExam = *patch.IsExam
		}
		if patch.Description != nil {
			e.Description = *patch.Description
		}
		if patch.Course != nil {
			e.Course = *patch.Course
		}
		if patch.Slot != nil {
			e.Slot = *patch.Slot
		}
		if patch.Faculty != nil {
			e.Faculty = *patch.Faculty
		}
		return
	}
}

func (s *Store) DeleteEvent(id string) {
	s.mu.Lock()
	kept := s.events[:0]
	removed := false
	for _, e := range s.events {
		if e.ID == id {
			removed = true
			continue
		}
		kept = append(kept, e)
	}
	s.events = kept
	s.mu.Unlock()
	if removed {
		s.publish(EventDeleted{ID: id})
	}
}

// --- Timetable classes ---

func (s *Store) Classes() []ClassEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ClassEvent, len(s.classes))
	copy(out, s.classes)
	return out
}

func (s *Store) AddClass(c ClassEvent) ClassEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	c.ID = s.ids.NewID()
	s.classes = append(s.classes, c)
	return c
}

type ClassPatch struct {
	Course  *string `json:"course"`
	Day     *string `json:"day"`
	Time    *string `json:"time"`
	Slot    *string `json:"slot"`
	Faculty *string `json:"faculty"`
}

func (s *Store) UpdateClass(id string, patch ClassPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.classes {
		if s.classes[i].ID != id {
			continue
		}
		c := &s.classes[i]
		if patch.Course != nil {
			c.Course = *patch.Course
		}
		if patch.Day != nil {
			c.Day = *patch.Day
		}
		if patch.Time != nil {
			c.Time = *patch.Time
		}
		if patch.Slot != nil {
			c.Slot = *patch.Slot
		}
		if patch.Faculty != nil {
			c.Faculty = *patch.Faculty
		}
		return
	}
}

func (s *Store) DeleteClass(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.classes[:0]
	for _, c := range s.classes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.classes = kept
}

// --- Assignments ---

func (s *Store) Assignments() []Assignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Assignment, len(s.assignments))
	copy(out, s.assignments)
	return out
}

func (s *Store) AddAssignment(a Assignment) Assignment {
	s.mu.Lock()
	a.ID = s.ids.NewID()
	s.assignments = append(s.assignments, a)
	s.mu.Unlock()
	s.publish(AssignmentAdded{Assignment: a})
	return a
}

type AssignmentPatch struct {
	Title       *string    `json:"title"`
	DueDate     *time.Time `json:"dueDate"`
	Priority    *Priority  `json:"priority"`
	Completed   *bool      `json:"completed"`
	Description *string    `json:"description"`
	Course      *string    `json:"course"`
}

// UpdateAssignment merges the patch into the matching record. Flipping
// Completed from false to true bumps the user's completed counter once;
// re-sending completed=true on an already completed assignment does not
// count again.
func (s *Store) UpdateAssignment(id string, patch AssignmentPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		if s.assignments[i].ID != id {
			continue
		}
		a := &s.assignments[i]
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.DueDate != nil {
			a.DueDate = *patch.DueDate
		}
		if patch.Priority != nil {
			a.Priority = *patch.Priority
		}
		if patch.Completed != nil {
			if *patch.Completed && !a.Completed {
				s.user.AssignmentsCompleted++
			}
			a.Completed = *patch.Completed
		}
		if patch.Description != nil {
			a.Description = *patch.Description
		}
		if patch.Course != nil {
			a.Course = *patch.Course
		}
		return
	}
}

func (s *Store) DeleteAssignment(id string) {
	s.mu.Lock()
	kept := s.assignments[:0]
	removed := false
	for _, a := range s.assignments {
		if a.ID == id {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	s.assignments = kept
	s.mu.Unlock()
	if removed {
		s.publish(AssignmentDeleted{ID: id})
	}
}

// --- Group chats ---

func (s *Store) GroupChats() []GroupChat {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]GroupChat, len(s.groupChats))
	for i, g := range s.groupChats {
		out[i] = copyGroupChat(g)
	}
	return out
}

func copyGroupChat(g GroupChat) GroupChat {
	members := make([]string, len(g.Members))
	copy(members, g.Members)
	messages := make([]ChatMessage, len(g.Messages))
	copy(messages, g.Messages)
	g.Members = members
	g.Messages = messages
	return g
}

func (s *Store) CreateGroupChat(g GroupChat) GroupChat {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.ids.NewID()
	if g.Members == nil {
		g.Members = []string{}
	}
	if g.Messages == nil {
		g.Messages = []ChatMessage{}
	}
	s.groupChats = append(s.groupChats, g)
	return copyGroupChat(g)
}

func (s *Store) AddMessageToGroupChat(groupID string, m ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.groupChats {
		if s.groupChats[i].ID != groupID {
			continue
		}
		m.ID = s.ids.NewID()
		s.groupChats[i].Messages = append(s.groupChats[i].Messages, m)
		return
	}
}

// --- Friends ---

func (s *Store) Friends() []Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Friend, len(s.friends))
	copy(out, s.friends)
	return out
}

func (s *Store) PendingFriends() []Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Friend{}
	for _, f := range s.friends {
		if f.Status == FriendPending {
			out = append(out, f)
		}
	}
	return out
}

// AddFriend records a new relationship row. New rows always start pending;
// accepted and declined are reached only through UpdateFriendStatus.
func (s *Store) AddFriend(f Friend) Friend {
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.ids.NewID()
	f.Status = FriendPending
	s.friends = append(s.friends, f)
	return f
}

func (s *Store) UpdateFriendStatus(id string, status FriendStatus) {
	s.mu.Lock()
	changed := false
	for i := range s.friends {
		if s.friends[i].ID == id {
			s.friends[i].Status = status
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.publish(FriendStatusChanged{FriendID: id, Status: status})
	}
}

// --- Direct messages ---

func (s *Store) Messages() []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

// Conversation returns the direct messages exchanged between a and b, in
// send order. The pair is unordered: either side may be sender or receiver.
func (s *Store) Conversation(a, b string) []ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []ChatMessage{}
	for _, m := range s.messages {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out
}

func (s *Store) AddMessage(m ChatMessage) ChatMessage {
	s.mu.Lock()
	m.ID = s.ids.NewID()
	if m.Timestamp.IsZero() {
		m.Timestamp = s.clock()
	}
	s.messages = append(s.messages, m)
	s.mu.Unlock()
	s.publish(MessageAdded{Message: m})
	return m
}

func (s *Store) MarkMessageRead(id string) {
	s.mu.Lock()
	found := false
	for i := range s.messages {
		if s.messages[i].ID == id {
			s.messages[i].IsRead = true
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.publish(MessageRead{MessageID: id})
	}
}

// --- Wallet and transactions ---

func (s *Store) Wallet() Wallet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyWallet(s.wallet)
}

func copyWallet(w Wallet) Wallet {
	categories := make(map[string]float64, len(w.Budget.Categories))
	for k, v := range w.Budget.Categories {
		categories[k] = v
	}
	w.Budget.Categories = categories
	return w
}

type WalletPatch struct {
	Balance     *float64 `json:"balance"`
	SavingsGoal *float64 `json:"savingsGoal"`
	SavedAmount *float64 `json:"savedAmount"`
	Budget      *Budget  `json:"budget"`
}

func (s *Store) UpdateWallet(patch WalletPatch) Wallet {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Balance != nil {
		s.wallet.Balance = *patch.Balance
	}
	if patch.SavingsGoal != nil {
		s.wallet.SavingsGoal = *patch.SavingsGoal
	}
	if patch.SavedAmount != nil {
		s.wallet.SavedAmount = *patch.SavedAmount
	}
	if patch.Budget != nil {
		s.wallet.Budget = *patch.Budget
		if s.wallet.Budget.Categories == nil {
			s.wallet.Budget.Categories = map[string]float64{}
		}
	}
	return copyWallet(s.wallet)
}

// Transactions returns the log newest first.
func (s *Store) Transactions() []Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

// AddTransaction prepends the transaction and moves the balance: expenses
// subtract the amount, topups add it.
func (s *Store) AddTransaction(t Transaction) Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.ids.NewID()
	if t.Date.IsZero() {
		t.Date = s.clock()
	}
	s.transactions = append([]Transaction{t}, s.transactions...)
	if t.Type == TxExpense {
		s.wallet.Balance -= t.Amount
	} else {
		s.wallet.Balance += t.Amount
	}
	return t
}

// SpendingByCategory sums expense amounts per category over the whole log.
func (s *Store) SpendingByCategory() map[string]float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	totals := map[string]float64{}
	for _, t := range s.transactions {
		if t.Type == TxExpense {
			totals[t.Category] += t.Amount
		}
	}
	return totals
}

// --- Community posts ---

func (s *Store) Posts() []CommunityPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]CommunityPost, len(s.posts))
	for i, p := range s.posts {
		out[i] = copyPost(p)
	}
	return out
}

func copyPost(p CommunityPost) CommunityPost {
	likes := make([]string, len(p.Likes))
	copy(likes, p.Likes)
	comments := make([]Comment, len(p.Comments))
	copy(comments, p.Comments)
	p.Likes = likes
	p.Comments = comments
	return p
}

// AddPost prepends a new post with empty likes and comments.
func (s *Store) AddPost(p CommunityPost) CommunityPost {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.ids.NewID()
	p.Likes = []string{}
	p.Comments = []Comment{}
	p.Timestamp = s.clock()
	s.posts = append([]CommunityPost{p}, s.posts...)
	return copyPost(p)
}

// LikePost adds userID to the post's like set; liking twice is a no-op.
func (s *Store) LikePost(postID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		for _, liker := range s.posts[i].Likes {
			if liker == userID {
				return
			}
		}
		s.posts[i].Likes = append(s.posts[i].Likes, userID)
		return
	}
}

func (s *Store) UnlikePost(postID, userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		kept := s.posts[i].Likes[:0]
		for _, liker := range s.posts[i].Likes {
			if liker != userID {
				kept = append(kept, liker)
			}
		}
		s.posts[i].Likes = kept
		return
	}
}

func (s *Store) AddComment(postID, userID, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID != postID {
			continue
		}
		s.posts[i].Comments = append(s.posts[i].Comments, Comment{
			ID:        s.ids.NewID(),
			UserID:    userID,
			Content:   content,
			Timestamp: s.clock(),
		})
		return
	}
}

// --- Resources ---

func (s *Store) Resources() []Resource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Resource, len(s.resources))
	copy(out, s.resources)
	return out
}

func (s *Store) AddResource(r Resource) Resource {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.ids.NewID()
	s.resources = append(s.resources, r)
	return r
}

// --- Campus info ---

func (s *Store) CampusInfo() CampusInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCampusInfo(s.campus)
}

func copyCampusInfo(c CampusInfo) CampusInfo {
	menu := make([]MenuItem, len(c.Menu))
	copy(menu, c.Menu)
	hours := make([]ShopHours, len(c.ShopHours))
	copy(hours, c.ShopHours)
	stock := make([]StationeryItem, len(c.StationeryStock))
	copy(stock, c.StationeryStock)
	c.Menu = menu
	c.ShopHours = hours
	c.StationeryStock = stock
	return c
}

// CampusInfoPatch replaces whole sections; nil slices leave the current
// section untouched.
type CampusInfoPatch struct {
	Menu            []MenuItem       `json:"menu"`
	ShopHours       []ShopHours      `json:"shopHours"`
	StationeryStock []StationeryItem `json:"stationeryStock"`
}

func (s *Store) UpdateCampusInfo(patch CampusInfoPatch) CampusInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if patch.Menu != nil {
		s.campus.Menu = patch.Menu
	}
	if patch.ShopHours != nil {
		s.campus.ShopHours = patch.ShopHours
	}
	if patch.StationeryStock != nil {
		s.campus.StationeryStock = patch.StationeryStock
	}
	return copyCampusInfo(s.campus)
}

// --- Notifications ---

// Notifications returns the log newest first.
func (s *Store) Notifications() []Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Notification, len(s.notifications))
	copy(out, s.notifications)
	return out
}

func (s *Store) UnreadNotificationCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if !n.IsRead {
			count++
		}
	}
	return count
}

func (s *Store) AddNotification(n Notification) Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	n.ID = s.ids.NewID()
	if n.Date.IsZero() {
		n.Date = s.clock()
	}
	s.notifications = append([]Notification{n}, s.notifications...)
	return n
}

func (s *Store) MarkNotificationRead(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
			return
		}
	}
}

func (s *Store) MarkAllNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		s.notifications[i].IsRead = true
	}
}

// MarkNotificationsReadByRelatedID marks every notification pointing at the
// given entity as read.
func (s *Store) MarkNotificationsReadByRelatedID(relatedID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].RelatedID == relatedID {
			s.notifications[i].IsRead = true
		}
	}
}

// RemoveNotificationsByRelatedID drops every notification pointing at the
// given entity. Used to cascade when the source entity is deleted.
func (s *Store) RemoveNotificationsByRelatedID(relatedID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.RelatedID != relatedID {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}

package universe

import "time"

type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

type FriendStatus string

const (
	FriendPending  FriendStatus = "pending"
	FriendAccepted FriendStatus = "accepted"
	FriendDeclined FriendStatus = "declined"
)

type NotificationType string

const (
	NotifyAssignment NotificationType = "assignment"
	NotifyExam       NotificationType = "exam"
	NotifyEvent      NotificationType = "event"
	NotifyMessage    NotificationType = "message"
	NotifyFriend     NotificationType = "friend"
)

type TransactionType string

const (
	TxExpense TransactionType = "expense"
	TxTopup   TransactionType = "topup"
)

type ResourceType string

const (
	ResourcePDF ResourceType = "PDF"
	ResourcePYQ ResourceType = "PYQ"
)

// User is the current session's student profile. Exactly one exists per store.
type User struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	StudentID            string `json:"studentId"`
	ProfilePicture       string `json:"profilePicture,omitempty"`
	AssignmentsCompleted int    `json:"assignmentsCompleted"`
	EventsAttended       int    `json:"eventsAttended"`
	Email                string `json:"email"`
}

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Date        time.Time `json:"date"`
	IsExam      bool      `json:"isExam,omitempty"`
	Description string    `json:"description,omitempty"`
	Course      string    `json:"course,omitempty"`
	Slot        string    `json:"slot,omitempty"`
	Faculty     string    `json:"faculty,omitempty"`
}

// ClassEvent is one weekly recurring timetable slot.
type ClassEvent struct {
	ID      string `json:"id"`
	Course  string `json:"course"`
	Day     string `json:"day"`
	Time    string `json:"time"`
	Slot    string `json:"slot"`
	Faculty string `json:"faculty"`
}

type Assignment struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	DueDate     time.Time `json:"dueDate"`
	Priority    Priority  `json:"priority"`
	Completed   bool      `json:"completed"`
	Description string    `json:"description,omitempty"`
	Course      string    `json:"course,omitempty"`
}

// ChatMessage is a direct or group message. ReceiverID is either a user id
// or a group-chat id.
type ChatMessage struct {
	ID         string    `json:"id"`
	SenderID   string    `json:"senderId"`
	ReceiverID string    `json:"receiverId"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	IsRead     bool      `json:"isRead"`
}

type GroupChat struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Members  []string      `json:"members"`
	Messages []ChatMessage `json:"messages"`
}

type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type CommunityPost struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Likes     []string  `json:"likes"`
	Comments  []Comment `json:"comments"`
	Timestamp time.Time `json:"timestamp"`
}

// Friend models the relationship row with another student, not a second
// user profile.
type Friend struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	ProfilePicture string       `json:"profilePicture,omitempty"`
	Status         FriendStatus `json:"status"`
}

type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Date      time.Time        `json:"date"`
	IsRead    bool             `json:"isRead"`
	Type      NotificationType `json:"type"`
	RelatedID string           `json:"relatedId,omitempty"`
}

type Transaction struct {
	ID       string          `json:"id"`
	Amount   float64         `json:"amount"`
	Shop     string          `json:"shop"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
	Type     TransactionType `json:"type"`
}

type Budget struct {
	Monthly    float64            `json:"monthly"`
	Categories map[string]float64 `json:"categories"`
}

// Wallet is the session's mock balance tracker. Balance moves only through
// AddTransaction; it is never recomputed from the transaction log.
type Wallet struct {
	Balance     float64 `json:"balance"`
	SavingsGoal float64 `json:"savingsGoal"`
	SavedAmount float64 `json:"savedAmount"`
	Budget      Budget  `json:"budget"`
}

type Resource struct {
	ID         string       `json:"id"`
	Title      string       `json:"title"`
	Course     string       `json:"course"`
	UploadDate time.Time    `json:"uploadDate"`
	Type       ResourceType `json:"type"`
	URL        string       `json:"url"`
}

type MenuItem struct {
	Item  string  `json:"item"`
	Price float64 `json:"price"`
}

type ShopHours struct {
	Name  string `json:"name"`
	Hours string `json:"hours"`
}

type StationeryItem struct {
	Item      string `json:"item"`
	Available int    `json:"available"`
}

// CampusInfo is static reference data about campus facilities.
type CampusInfo struct {
	Menu            []MenuItem       `json:"menu"`
	ShopHours       []ShopHours      `json:"shopHours"`
	StationeryStock []StationeryItem `json:"stationeryStock"`
}

package universe

import "time"

// NewSeeded builds a store preloaded with the demo dataset the dashboard
// ships with, so a dev server starts populated. Seed records keep their
// well-known ids ("user1", "event1", ...) because the demo UI links to them.
func NewSeeded(opts Options) *Store {
	opts.User = User{
		ID:                   "user1",
		Name:                 "Alex Smith",
		StudentID:            "ST12345",
		ProfilePicture:       "https://i.pravatar.cc/300",
		AssignmentsCompleted: 5,
		EventsAttended:       3,
		Email:                "alex.smith@university.edu",
	}
	s := New(opts)
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = []Event{
		{ID: "event1", Title: "Calculus Final Exam", Date: date(2025, 4, 20, 10, 0), IsExam: true, Description: "Covers chapters 1-8", Course: "MATH 101"},
		{ID: "event2", Title: "Physics Lab", Date: date(2025, 4, 15, 14, 0), Description: "Optics experiment", Course: "PHYS 102"},
		{ID: "event3", Title: "Group Project Meeting", Date: date(2025, 4, 17, 16, 0), Description: "Discuss project timeline", Course: "ENG 201"},
	}
	s.classes = []ClassEvent{
		{ID: "class1", Course: "Mathematics", Day: "Monday", Time: "09:00", Slot: "A1", Faculty: "Dr. Johnson"},
		{ID: "class2", Course: "Physics", Day: "Tuesday", Time: "11:00", Slot: "B2", Faculty: "Prof. Richards"},
		{ID: "class3", Course: "Computer Science", Day: "Wednesday", Time: "14:00", Slot: "C3", Faculty: "Dr. Park"},
		{ID: "class4", Course: "English", Day: "Thursday", Time: "10:00", Slot: "D1", Faculty: "Prof. Williams"},
		{ID: "class5", Course: "Chemistry", Day: "Friday", Time: "13:00", Slot: "E2", Faculty: "Dr. Miller"},
	}
	s.assignments = []Assignment{
		{ID: "assignment1", Title: "Calculus Problem Set", DueDate: date(2025, 4, 18, 0, 0), Priority: PriorityHigh, Course: "MATH 101"},
		{ID: "assignment2", Title: "Physics Lab Report", DueDate: date(2025, 4, 22, 0, 0), Priority: PriorityMedium, Course: "PHYS 102"},
		{ID: "assignment3", Title: "English Essay", DueDate: date(2025, 4, 25, 0, 0), Priority: PriorityLow, Course: "ENG 201"},
	}
	s.groupChats = []GroupChat{
		{
			ID:      "groupchat1",
			Name:    "Mathematics A1",
			Members: []string{"user1", "user2", "user3"},
			Messages: []ChatMessage{
				{ID: "msg1", SenderID: "user2", ReceiverID: "groupchat1", Content: "Hey, is there a quiz tomorrow?", Timestamp: date(2025, 4, 12, 15, 30), IsRead: true},
				{ID: "msg2", SenderID: "user3", ReceiverID: "groupchat1", Content: "Yes, on chapters 3-4", Timestamp: date(2025, 4, 12, 15, 32), IsRead: true},
			},
		},
		{
			ID:      "groupchat2",
			Name:    "Physics B2",
			Members: []string{"user1", "user4", "user5"},
			Messages: []ChatMessage{
				{ID: "msg3", SenderID: "user4", ReceiverID: "groupchat2", Content: "Did anyone understand today's lecture?", Timestamp: date(2025, 4, 12, 16, 10), IsRead: true},
				{ID: "msg4", SenderID: "user1", ReceiverID: "groupchat2", Content: "I can help explain it if you want", Timestamp: date(2025, 4, 12, 16, 15), IsRead: true},
			},
		},
		{
			ID:      "groupchat3",
			Name:    "Computer Science C3",
			Members: []string{"user1", "user6", "user7"},
			Messages: []ChatMessage{
				{ID: "msg5", SenderID: "user6", ReceiverID: "groupchat3", Content: "Who's doing the project together?", Timestamp: date(2025, 4, 13, 10, 5)},
			},
		},
	}
	s.friends = []Friend{
		{ID: "user2", Name: "Jamie Lee", ProfilePicture: "https://i.pravatar.cc/300?img=2", Status: FriendAccepted},
		{ID: "user3", Name: "Taylor Wong", ProfilePicture: "https://i.pravatar.cc/300?img=3", Status: FriendAccepted},
		{ID: "user4", Name: "Jordan Smith", ProfilePicture: "https://i.pravatar.cc/300?img=4", Status: FriendPending},
	}
	s.messages = []ChatMessage{
		{ID: "dmsg1", SenderID: "user2", ReceiverID: "user1", Content: "Hey, let's study together for the exam?", Timestamp: date(2025, 4, 13, 14, 25)},
		{ID: "dmsg2", SenderID: "user3", ReceiverID: "user1", Content: "Did you get the notes from yesterday?", Timestamp: date(2025, 4, 13, 9, 10), IsRead: true},
	}
	s.wallet = Wallet{
		Balance:     500,
		SavingsGoal: 5000,
		SavedAmount: 1000,
		Budget: Budget{
			Monthly: 2000,
			Categories: map[string]float64{
				"Food":          800,
				"Stationery":    400,
				"Entertainment": 500,
				"Others":        300,
			},
		},
	}
	s.transactions = []Transaction{
		{ID: "trans1", Amount: 50, Shop: "Cafe", Category: "Food", Date: date(2025, 4, 12, 0, 0), Type: TxExpense},
		{ID: "trans2", Amount: 30, Shop: "Bookstore", Category: "Stationery", Date: date(2025, 4, 11, 0, 0), Type: TxExpense},
		{ID: "trans3", Amount: 100, Shop: "Movie Theater", Category: "Entertainment", Date: date(2025, 4, 10, 0, 0), Type: TxExpense},
		{ID: "trans4", Amount: 200, Shop: "UPI Transfer", Category: "Topup", Date: date(2025, 4, 9, 0, 0), Type: TxTopup},
	}
	s.posts = []CommunityPost{
		{
			ID:       "post1",
			UserID:   "user3",
			Title:    "My AI Art",
			Category: "Art",
			Content:  "Created this using the new AI tool in the lab",
			Likes:    []string{"user2", "user4", "user5", "user6", "user7"},
			Comments: []Comment{
				{ID: "comment1", UserID: "user2", Content: "This looks amazing!", Timestamp: date(2025, 4, 11, 15, 30)},
				{ID: "comment2", UserID: "user4", Content: "What tool did you use?", Timestamp: date(2025, 4, 11, 16, 5)},
			},
			Timestamp: date(2025, 4, 11, 14, 0),
		},
		{
			ID:       "post2",
			UserID:   "user4",
			Title:    "Robotics Club Project",
			Category: "Tech",
			Content:  "Our team built this autonomous robot for the competition",
			Likes:    []string{"user1", "user5", "user7"},
			Comments: []Comment{
				{ID: "comment3", UserID: "user1", Content: "This is so cool!", Timestamp: date(2025, 4, 12, 10, 15)},
			},
			Timestamp: date(2025, 4, 12, 9, 0),
		},
		{
			ID:        "post3",
			UserID:    "user5",
			Title:     "Campus Band Performance",
			Category:  "Music",
			Content:   "We'll be performing this Friday at the Student Center",
			Likes:     []string{"user2", "user3", "user6"},
			Comments:  []Comment{},
			Timestamp: date(2025, 4, 13, 11, 30),
		},
	}
	s.resources = []Resource{
		{ID: "resource1", Title: "Calculus Formulas", Course: "MATH 101", UploadDate: date(2025, 4, 5, 0, 0), Type: ResourcePDF, URL: "#"},
		{ID: "resource2", Title: "Physics Previous Year Questions", Course: "PHYS 102", UploadDate: date(2025, 4, 8, 0, 0), Type: ResourcePYQ, URL: "#"},
		{ID: "resource3", Title: "Programming Basics", Course: "CS 101", UploadDate: date(2025, 4, 10, 0, 0), Type: ResourcePDF, URL: "#"},
	}
	s.campus = CampusInfo{
		Menu: []MenuItem{
			{Item: "Burger", Price: 50},
			{Item: "Pizza", Price: 80},
			{Item: "Sandwich", Price: 40},
			{Item: "Coffee", Price: 30},
			{Item: "Tea", Price: 20},
		},
		ShopHours: []ShopHours{
			{Name: "Cafe", Hours: "8 AM - 8 PM"},
			{Name: "Bookstore", Hours: "9 AM - 6 PM"},
			{Name: "Library", Hours: "7 AM - 11 PM"},
			{Name: "Gym", Hours: "6 AM - 10 PM"},
		},
		StationeryStock: []StationeryItem{
			{Item: "Pens", Available: 50},
			{Item: "Notebooks", Available: 30},
			{Item: "Markers", Available: 25},
			{Item: "Calculators", Available: 10},
		},
	}
	s.notifications = []Notification{
		{ID: "notif1", Title: "Exam Reminder", Message: "Calculus Final Exam tomorrow at 10 AM", Date: date(2025, 4, 19, 9, 0), Type: NotifyExam, RelatedID: "event1"},
		{ID: "notif2", Title: "Assignment Due", Message: "Physics Lab Report due in 2 days", Date: date(2025, 4, 20, 10, 0), Type: NotifyAssignment, RelatedID: "assignment2"},
		{ID: "notif3", Title: "New Message", Message: "Jamie Lee: Hey, let's study together for the exam?", Date: date(2025, 4, 13, 14, 25), Type: NotifyMessage, RelatedID: "dmsg1"},
		{ID: "notif4", Title: "Friend Request", Message: "Jordan Smith sent you a friend request", Date: date(2025, 4, 12, 15, 0), IsRead: true, Type: NotifyFriend, RelatedID: "user4"},
		{ID: "notif5", Title: "Event Tomorrow", Message: "Physics Lab tomorrow at 2 PM", Date: date(2025, 4, 14, 10, 0), Type: NotifyEvent, RelatedID: "event2"},
	}
	return s
}

func date(year, month, day, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
}

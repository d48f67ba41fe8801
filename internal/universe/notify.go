package universe

import "fmt"

const messagePreviewLen = 30

// NotificationPolicy turns domain events into Notification records. It is
// the only place that knows which mutations produce notifications, keeping
// that knowledge out of the store's mutators.
//
// Triggers: a new assignment, a new exam-type calendar event, and a direct
// message addressed to the current user. Friend status changes never produce
// notifications, and deleting an event or assignment drops the notifications
// that referenced it.
type NotificationPolicy struct {
	store *Store
}

// AttachNotificationPolicy subscribes a new policy to the store's events.
func AttachNotificationPolicy(s *Store) *NotificationPolicy {
	p := &NotificationPolicy{store: s}
	s.Subscribe(p.handle)
	return p
}

func (p *NotificationPolicy) handle(event DomainEvent) {
	switch e := event.(type) {
	case AssignmentAdded:
		p.store.AddNotification(Notification{
			Title:     "New Assignment",
			Message:   fmt.Sprintf("%s due on %s", e.Assignment.Title, e.Assignment.DueDate.Format("1/2/2006")),
			Type:      NotifyAssignment,
			RelatedID: e.Assignment.ID,
		})
	case EventAdded:
		if !e.Event.IsExam {
			return
		}
		p.store.AddNotification(Notification{
			Title:     "New Exam Added",
			Message:   fmt.Sprintf("%s on %s", e.Event.Title, e.Event.Date.Format("1/2/2006")),
			Type:      NotifyExam,
			RelatedID: e.Event.ID,
		})
	case MessageAdded:
		if e.Message.ReceiverID != p.store.CurrentUser().ID {
			return
		}
		p.store.AddNotification(Notification{
			Title:     "New Message",
			Message:   fmt.Sprintf("%s: %s", p.senderName(e.Message.SenderID), preview(e.Message.Content)),
			Type:      NotifyMessage,
			RelatedID: e.Message.ID,
		})
	case MessageRead:
		p.store.MarkNotificationsReadByRelatedID(e.MessageID)
	case AssignmentDeleted:
		p.store.RemoveNotificationsByRelatedID(e.ID)
	case EventDeleted:
		p.store.RemoveNotificationsByRelatedID(e.ID)
	}
}

func (p *NotificationPolicy) senderName(senderID string) string {
	for _, f := range p.store.Friends() {
		if f.ID == senderID {
			return f.Name
		}
	}
	return "Someone"
}

// preview truncates message content to 30 characters and marks the cut with
// an ellipsis.
func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= messagePreviewLen {
		return content
	}
	return string(runes[:messagePreviewLen]) + "..."
}

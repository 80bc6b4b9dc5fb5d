package store

import (
	"beacon-care-server/internal/models"
)

// AddNotification prepends an unread notification to the feed. An empty
// userID targets the coordination desk (the first NURSE user).
func (s *Store) AddNotification(message, userID string) {
	s.update(func(cur models.State) (models.State, bool) {
		target := userID
		if target == "" {
			for _, u := range cur.Users {
				if u.Role == models.RoleNurse {
					target = u.ID
					break
				}
			}
		}

		n := models.Notification{
			ID:        newID("n"),
			UserID:    target,
			Message:   message,
			Status:    models.NotificationUnread,
			CreatedAt: s.now(),
		}

		next := cur
		next.Notifications = append([]models.Notification{n}, cur.Notifications...)
		return next, true
	})
}

// MarkNotificationRead flips a notification to read. Reading is the only
// mutation the feed supports.
func (s *Store) MarkNotificationRead(id string) bool {
	return s.update(func(cur models.State) (models.State, bool) {
		found := false
		feed := make([]models.Notification, len(cur.Notifications))
		for i, n := range cur.Notifications {
			if n.ID == id {
				n.Status = models.NotificationRead
				found = true
			}
			feed[i] = n
		}
		if !found {
			return cur, false
		}

		next := cur
		next.Notifications = feed
		return next, true
	})
}

// SendMessage appends a message to the chronological message log.
func (s *Store) SendMessage(senderID, receiverID, text string) models.Message {
	msg := models.Message{
		ID:         newID("m"),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Text:       text,
		Timestamp:  s.now(),
	}

	s.update(func(cur models.State) (models.State, bool) {
		next := cur
		next.Messages = append(append([]models.Message{}, cur.Messages...), msg)
		return next, true
	})
	return msg
}

// ToggleVirtualDoctor switches between the virtual doctor persona and
// the standard assistant, announcing the mode change on the feed.
func (s *Store) ToggleVirtualDoctor(active bool) {
	s.update(func(cur models.State) (models.State, bool) {
		next := cur
		next.SystemConfig.VirtualDoctorActive = active
		return next, true
	})

	if active {
		s.AddNotification("VIRTUAL DOCTOR MODE ENGAGED", "")
	} else {
		s.AddNotification("BEACON ASSISTANT ENGAGED", "")
	}
}

// SetTheme sets the portal display mode directly. Emergency transitions
// are normally driven by the SOS operations; this exists for sign-out
// style resets.
func (s *Store) SetTheme(theme models.Theme) {
	s.update(func(cur models.State) (models.State, bool) {
		next := cur
		next.SystemConfig.Theme = theme
		return next, true
	})
}

// SetSeniorMode toggles the large-type accessibility mode.
func (s *Store) SetSeniorMode(on bool) {
	s.update(func(cur models.State) (models.State, bool) {
		next := cur
		next.SystemConfig.SeniorMode = on
		return next, true
	})
}

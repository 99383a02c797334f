package model

import "time"

// Session represents a bookable yoga class session.
type Session struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	TeacherID   int64     `json:"teacher_id"`
	Users       []int64   `json:"users"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HasParticipant reports whether the given user is enrolled as an
// attendee of this session.
func (s *Session) HasParticipant(userID int64) bool {
	for _, id := range s.Users {
		if id == userID {
			return true
		}
	}
	return false
}

// SessionRequest is the payload for creating or updating a session.
// Date accepts RFC 3339 or a bare date (2006-01-02).
type SessionRequest struct {
	Name        string `json:"name" binding:"required,max=50"`
	Date        string `json:"date" binding:"required"`
	TeacherID   int64  `json:"teacher_id" binding:"required"`
	Description string `json:"description" binding:"required,max=2000"`
}

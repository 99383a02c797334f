// Package stubserver is a hermetic, in-memory implementation of the
// remote booking API contract. It exists for local development and
// tests of the client; it is not a production backend, but it issues
// real JWTs and checks real bcrypt hashes so the client's token
// plumbing is exercised end to end.
package stubserver

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/savasana-dev/yogabook/internal/model"
)

// Store errors.
var (
	ErrNotFound             = errors.New("record not found")
	ErrEmailTaken           = errors.New("email is already taken")
	ErrAlreadyParticipating = errors.New("user already participates")
	ErrNotParticipating     = errors.New("user does not participate")
)

// Store holds all stub data behind one lock.
type Store struct {
	mu            sync.RWMutex
	users         map[int64]*model.User
	teachers      map[int64]*model.Teacher
	sessions      map[int64]*model.Session
	nextUserID    int64
	nextTeacherID int64
	nextSessionID int64
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		users:         make(map[int64]*model.User),
		teachers:      make(map[int64]*model.Teacher),
		sessions:      make(map[int64]*model.Session),
		nextUserID:    1,
		nextTeacherID: 1,
		nextSessionID: 1,
	}
}

// CreateUser inserts a user, rejecting duplicate emails.
func (s *Store) CreateUser(u model.User) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.Email == u.Email {
			return nil, ErrEmailTaken
		}
	}

	now := time.Now().UTC()
	u.ID = s.nextUserID
	s.nextUserID++
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users[u.ID] = &u

	copied := u
	return &copied, nil
}

// UserByEmail looks a user up by email.
func (s *Store) UserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// UserByID looks a user up by id.
func (s *Store) UserByID(id int64) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

// DeleteUser removes a user account.
func (s *Store) DeleteUser(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return ErrNotFound
	}
	delete(s.users, id)
	return nil
}

// CreateTeacher inserts a teacher record.
func (s *Store) CreateTeacher(t model.Teacher) *model.Teacher {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	t.ID = s.nextTeacherID
	s.nextTeacherID++
	t.CreatedAt = now
	t.UpdatedAt = now
	s.teachers[t.ID] = &t

	copied := t
	return &copied
}

// Teachers returns all teachers ordered by id.
func (s *Store) Teachers() []model.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Teacher, 0, len(s.teachers))
	for _, t := range s.teachers {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// TeacherByID looks a teacher up by id.
func (s *Store) TeacherByID(id int64) (*model.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teachers[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

// CreateSession inserts a session.
func (s *Store) CreateSession(sess model.Session) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	sess.ID = s.nextSessionID
	s.nextSessionID++
	if sess.Users == nil {
		sess.Users = []int64{}
	}
	sess.CreatedAt = now
	sess.UpdatedAt = now
	s.sessions[sess.ID] = &sess

	copied := cloneSession(&sess)
	return &copied
}

// Sessions returns all sessions ordered by id.
func (s *Store) Sessions() []model.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, cloneSession(sess))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// SessionByID looks a session up by id.
func (s *Store) SessionByID(id int64) (*model.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := cloneSession(sess)
	return &copied, nil
}

// UpdateSession replaces a session's mutable fields.
func (s *Store) UpdateSession(id int64, update model.Session) (*model.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.Name = update.Name
	sess.Description = update.Description
	sess.Date = update.Date
	sess.TeacherID = update.TeacherID
	sess.UpdatedAt = time.Now().UTC()

	copied := cloneSession(sess)
	return &copied, nil
}

// DeleteSession removes a session.
func (s *Store) DeleteSession(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Participate enrolls a user in a session's participant set.
func (s *Store) Participate(sessionID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	if _, ok := s.users[userID]; !ok {
		return ErrNotFound
	}
	if sess.HasParticipant(userID) {
		return ErrAlreadyParticipating
	}
	sess.Users = append(sess.Users, userID)
	sess.UpdatedAt = time.Now().UTC()
	return nil
}

// UnParticipate removes a user from a session's participant set.
func (s *Store) UnParticipate(sessionID, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return ErrNotFound
	}
	if !sess.HasParticipant(userID) {
		return ErrNotParticipating
	}
	filtered := sess.Users[:0]
	for _, id := range sess.Users {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	sess.Users = filtered
	sess.UpdatedAt = time.Now().UTC()
	return nil
}

func cloneSession(sess *model.Session) model.Session {
	copied := *sess
	copied.Users = append([]int64(nil), sess.Users...)
	return copied
}

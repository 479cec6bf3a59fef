// Package identity is the session collaborator: sign-up, password sign-in,
// token-scoped current-user lookup, and a session-change stream consumers
// subscribe to and release deterministically.
package identity

import (
	"errors"
	"sync"

	"frontera/app/apperrors"
	"frontera/app/models"
	"frontera/app/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when email/password sign-in fails.
var ErrInvalidCredentials = errors.New("invalid email or password")

// EventType distinguishes session-change notifications.
type EventType string

const (
	EventSignedIn  EventType = "signed_in"
	EventSignedOut EventType = "signed_out"
)

// Event is one session-change notification.
type Event struct {
	Type   EventType
	UserID string
}

// Service manages sessions over the profile repository. Tokens live in
// memory; profiles persist in the store.
type Service struct {
	profiles repositories.ProfileRepository

	mu       sync.Mutex
	sessions map[string]string // token -> user id
	subs     map[int]chan Event
	nextSub  int
}

// NewService creates an identity service over the given profile repository.
func NewService(profiles repositories.ProfileRepository) *Service {
	return &Service{
		profiles: profiles,
		sessions: make(map[string]string),
		subs:     make(map[int]chan Event),
	}
}

// SignUp registers a profile and opens a session. A duplicate email fails
// with ErrConflict.
func (s *Service) SignUp(email, password string, profile models.Profile) (*models.Profile, string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", apperrors.Transient("hash password", err)
	}

	profile.Email = email
	profile.PasswordHash = hash
	if err := s.profiles.Create(&profile); err != nil {
		return nil, "", err
	}

	token := s.openSession(profile.ID)
	return &profile, token, nil
}

// SignInWithPassword opens a session for an existing profile.
func (s *Service) SignInWithPassword(email, password string) (*models.Profile, string, error) {
	profile, err := s.profiles.GetByEmail(email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword(profile.PasswordHash, []byte(password)) != nil {
		return nil, "", ErrInvalidCredentials
	}

	token := s.openSession(profile.ID)
	return profile, token, nil
}

// SignOut closes the session for the token. Unknown tokens are a no-op.
func (s *Service) SignOut(token string) {
	s.mu.Lock()
	userID, ok := s.sessions[token]
	delete(s.sessions, token)
	s.mu.Unlock()

	if ok {
		s.publish(Event{Type: EventSignedOut, UserID: userID})
	}
}

// CurrentUser resolves the token to its profile, or nil when the session is
// absent or expired.
func (s *Service) CurrentUser(token string) (*models.Profile, error) {
	s.mu.Lock()
	userID, ok := s.sessions[token]
	s.mu.Unlock()

	if !ok {
		return nil, nil
	}
	profile, err := s.profiles.GetByID(userID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return profile, nil
}

// Subscribe registers for session-change events. The returned cancel must
// be called when the consuming view is torn down; it closes the channel.
func (s *Service) Subscribe() (<-chan Event, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	ch := make(chan Event, 16)
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if sub, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Service) openSession(userID string) string {
	token := uuid.NewString()
	s.mu.Lock()
	s.sessions[token] = userID
	s.mu.Unlock()

	s.publish(Event{Type: EventSignedIn, UserID: userID})
	return token
}

// publish delivers an event to every subscriber, dropping it for any whose
// buffer is full rather than blocking a sign-in on a slow consumer.
func (s *Service) publish(event Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

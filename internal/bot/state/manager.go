package state

import (
	"context"
	"sync"
	"time"

	"github.com/vladimiradmaev/akashic-rays/internal/domain"
)

// User states constants
const (
	None                 = "none"
	WaitingForName       = "waiting_for_name"
	WaitingForBirthDate  = "waiting_for_birth_date"
	WaitingForBirthTime  = "waiting_for_birth_time"
	WaitingForBirthPlace = "waiting_for_birth_place"
)

// Temp data keys
const (
	KeyName       = "name"
	KeyBirthDate  = "birth_date"
	KeyBirthTime  = "birth_time"
	KeyBirthPlace = "birth_place"
	KeyReadingID  = "reading_id"
	KeySynthesis  = "synthesis"
)

// DefaultTTL bounds how long an idle session survives
const DefaultTTL = 30 * time.Minute

// StateManager stores the per-user form state and scratch values of a session
type StateManager interface {
	SetUserState(ctx context.Context, userID int64, state string) error
	GetUserState(ctx context.Context, userID int64) (string, error)
	ClearUserState(ctx context.Context, userID int64) error
	SetTempData(ctx context.Context, userID int64, key, value string) error
	GetTempData(ctx context.Context, userID int64, key string) (string, bool, error)
	ClearTempData(ctx context.Context, userID int64) error
}

type session struct {
	state     string
	tempData  map[string]string
	expiresAt time.Time
}

// Manager manages user states and temporary data in process memory
type Manager struct {
	sessions map[int64]*session
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

// NewManager creates a new state manager. A non-positive ttl uses DefaultTTL.
func NewManager(ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		sessions: make(map[int64]*session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// live returns the user's session unless it has expired. Callers hold the lock.
func (m *Manager) live(userID int64) *session {
	s, exists := m.sessions[userID]
	if !exists || m.now().After(s.expiresAt) {
		return nil
	}
	return s
}

// touch returns a live session, creating one if needed, and extends its TTL
func (m *Manager) touch(userID int64) *session {
	s := m.live(userID)
	if s == nil {
		s = &session{state: None, tempData: make(map[string]string)}
		m.sessions[userID] = s
	}
	s.expiresAt = m.now().Add(m.ttl)
	return s
}

// SetUserState sets the state for a user
func (m *Manager) SetUserState(_ context.Context, userID int64, state string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch(userID).state = state
	return nil
}

// GetUserState gets the state for a user
func (m *Manager) GetUserState(_ context.Context, userID int64) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.live(userID)
	if s == nil {
		return None, nil
	}
	return s.state, nil
}

// ClearUserState clears the state for a user
func (m *Manager) ClearUserState(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.live(userID); s != nil {
		s.state = None
	}
	return nil
}

// SetTempData sets temporary data for a user
func (m *Manager) SetTempData(_ context.Context, userID int64, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touch(userID).tempData[key] = value
	return nil
}

// GetTempData gets temporary data for a user
func (m *Manager) GetTempData(_ context.Context, userID int64, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s := m.live(userID)
	if s == nil {
		return "", false, nil
	}
	value, exists := s.tempData[key]
	return value, exists, nil
}

// ClearTempData clears all temporary data for a user
func (m *Manager) ClearTempData(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s := m.live(userID); s != nil {
		s.tempData = make(map[string]string)
	}
	return nil
}

// Sweep drops expired sessions and reports how many were removed
func (m *Manager) Sweep() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	now := m.now()
	for id, s := range m.sessions {
		if now.After(s.expiresAt) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done
func (m *Manager) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

// SaveProfile stores the profile fields of a reading in temp data
func SaveProfile(ctx context.Context, m StateManager, userID int64, profile domain.UserProfile) error {
	fields := []struct{ key, value string }{
		{KeyName, profile.Name},
		{KeyBirthDate, profile.BirthDate},
		{KeyBirthTime, profile.BirthTime},
		{KeyBirthPlace, profile.BirthPlace},
	}
	for _, f := range fields {
		if err := m.SetTempData(ctx, userID, f.key, f.value); err != nil {
			return err
		}
	}
	return nil
}

// LoadProfile rebuilds the profile saved by SaveProfile. ok is false when
// no name is stored, which happens once the session has expired.
func LoadProfile(ctx context.Context, m StateManager, userID int64) (domain.UserProfile, bool, error) {
	var profile domain.UserProfile
	name, ok, err := m.GetTempData(ctx, userID, KeyName)
	if err != nil || !ok {
		return profile, false, err
	}
	profile.Name = name

	for key, dst := range map[string]*string{
		KeyBirthDate:  &profile.BirthDate,
		KeyBirthTime:  &profile.BirthTime,
		KeyBirthPlace: &profile.BirthPlace,
	} {
		value, _, err := m.GetTempData(ctx, userID, key)
		if err != nil {
			return profile, false, err
		}
		*dst = value
	}
	return profile, true, nil
}
